// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathlib holds the preloaded math library bc's "-l" flag
// prepends to the first input file (spec.md §6 "The bundled math library
// is a text blob loaded as if prepended to the first input file").
// Mirrors the teacher's lib/lib.go in spirit — a Go package whose only
// job is to hold generated-looking source text as a constant — but since
// this library has exactly one dialect and one fixed body (unlike ivy's
// multiple selectable libraries), it is a single opaque string rather
// than a lookup table.
package mathlib

// Source is the bc-language text of the standard math library: sine,
// cosine, arctangent, natural log, exponential, and the Bessel function
// of the first kind, each a classic Taylor/continued-fraction routine
// expressed in bc itself. Every function runs at a local working scale
// a few digits past the caller's scale and truncates its result back
// down, so a caller's own `scale` setting is never perturbed.
const Source = `
scale = 20

define e(x) {
    auto a, b, c, d, k, s, t, w, save_scale
    save_scale = scale
    scale = scale + 6 + scale_guard(x)
    b = x < 0
    if (b) x = -x
    s = 1 + x
    t = x
    k = 1
    while (1) {
        k = k + 1
        t = t * x / k
        if (t == 0) break
        s = s + t
    }
    if (b) s = 1 / s
    scale = save_scale
    return (s / 1)
}

define scale_guard(x) {
    auto n
    n = length(x) - scale(x)
    if (n < 0) return (0)
    return (n)
}

define l(x) {
    auto save_scale, n, s, t, k, r
    if (x <= 0) return (-1 / 0)
    save_scale = scale
    scale = save_scale + 8
    n = 0
    while (x > 2) { x = x / e(1); n = n + 1 }
    while (x < 0.5) { x = x * e(1); n = n - 1 }
    t = (x - 1) / (x + 1)
    r = t
    s = t
    k = 1
    while (1) {
        k = k + 2
        t = t * r * r
        if (t == 0) break
        s = s + t / k
    }
    s = 2 * s + n
    scale = save_scale
    return (s / 1)
}

define s(x) {
    auto save_scale, n, m, t, s, k
    save_scale = scale
    scale = save_scale + 6 + scale_guard(x)
    n = 0
    while (x > 3.14159265358979323846 / 2) { x = x - 3.14159265358979323846; n = n + 1 }
    while (x < -3.14159265358979323846 / 2) { x = x + 3.14159265358979323846; n = n + 1 }
    t = x
    s = x
    k = 0
    while (1) {
        k = k + 2
        t = -t * x * x / (k * (k + 1))
        if (t == 0) break
        s = s + t
    }
    if (n % 2 != 0) s = -s
    scale = save_scale
    return (s / 1)
}

define c(x) {
    auto save_scale
    save_scale = scale
    scale = save_scale + 4
    x = s(x + 3.14159265358979323846 / 2)
    scale = save_scale
    return (x / 1)
}

define a(x) {
    auto save_scale, s, t, k
    save_scale = scale
    scale = save_scale + 6 + scale_guard(x)
    if (x == 1) { scale = save_scale; return (3.14159265358979323846 / 4) }
    if (x == -1) { scale = save_scale; return (-3.14159265358979323846 / 4) }
    if (x > 1 || x < -1) {
        s = 3.14159265358979323846 / 2
        if (x < 0) s = -s
        scale = save_scale
        return (s - a(1 / x))
    }
    t = x
    s = x
    k = 1
    while (1) {
        k = k + 2
        t = -t * x * x
        if (t == 0) break
        s = s + t / k
    }
    scale = save_scale
    return (s / 1)
}

define j(n, x) {
    auto save_scale, s, t, k, m, sgn, d, i
    save_scale = scale
    scale = save_scale + 6 + scale_guard(x)
    sgn = 0
    if (n < 0) { n = -n; sgn = n % 2 }
    t = 1
    k = 0
    while (k < n) { k = k + 1; t = t / k }
    m = t
    s = 0
    k = 0
    while (k <= 200) {
        d = 1
        i = 0
        while (i < k) { i = i + 1; d = d * i * (n + i) }
        t = m * (-1)^k * (x / 2)^(2 * k) / d
        if (t == 0 && k > 0) break
        s = s + t
        k = k + 1
    }
    if (sgn) s = -s
    scale = save_scale
    return (s / 1)
}
`
