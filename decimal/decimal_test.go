// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decimal

import "testing"

func mustParse(t *testing.T, s string, ibase, scale int) Number {
	t.Helper()
	n, _, err := Parse(s, ibase, scale)
	if err != nil {
		t.Fatalf("Parse(%q, %d, %d): %v", s, ibase, scale, err)
	}
	return n
}

func TestParsePrintRoundTrip(t *testing.T) {
	cases := []struct {
		in    string
		ibase int
	}{
		{"0", 10},
		{"7", 10},
		{"-7", 10},
		{"3.14159", 10},
		{"-3.14159", 10},
		{"100.001", 10},
		{"0.5", 10},
	}
	for _, c := range cases {
		n := mustParse(t, c.in, c.ibase, 20)
		got := n.Print(10)
		// Print drops the leading zero of a value below one, while Parse
		// requires at least one integer digit, so restore it to re-read.
		lit := got
		switch {
		case len(lit) > 0 && lit[0] == '.':
			lit = "0" + lit
		case len(lit) > 1 && lit[0] == '-' && lit[1] == '.':
			lit = "-0" + lit[1:]
		}
		again := mustParse(t, lit, 10, 20)
		if Cmp(n, again) != 0 {
			t.Errorf("round trip %q -> %q -> mismatch", c.in, got)
		}
	}
}

func TestPrintCanonical(t *testing.T) {
	cases := []struct {
		s    string
		want string
	}{
		{"0", "0"},
		{"7", "7"},
		{"0.5", ".5"},
		{"-0.5", "-.5"},
		{"100.001", "100.001"},
	}
	for _, c := range cases {
		n := mustParse(t, c.s, 10, 10)
		if got := n.Print(10); got != c.want {
			t.Errorf("Print(%q) = %q, want %q", c.s, got, c.want)
		}
	}
}

func TestHexBases(t *testing.T) {
	n, _, err := Parse("FF", 16, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Print(2); got != "11111111" {
		t.Errorf("FF in base 2 = %q, want 11111111", got)
	}
	if got := n.Print(10); got != "255" {
		t.Errorf("FF in base 10 = %q, want 255", got)
	}
}

func TestAddCommutative(t *testing.T) {
	a := mustParse(t, "123.456", 10, 10)
	b := mustParse(t, "-98765.4321", 10, 10)
	if Cmp(Add(a, b), Add(b, a)) != 0 {
		t.Errorf("addition is not commutative")
	}
}

func TestMulCommutative(t *testing.T) {
	a := mustParse(t, "123.456", 10, 10)
	b := mustParse(t, "98765.4321", 10, 10)
	if Cmp(Mul(a, b, 20), Mul(b, a, 20)) != 0 {
		t.Errorf("multiplication is not commutative")
	}
}

func TestAddAssociative(t *testing.T) {
	a := mustParse(t, "1", 10, 0)
	b := mustParse(t, "2", 10, 0)
	c := mustParse(t, "3", 10, 0)
	left := Add(Add(a, b), c)
	right := Add(a, Add(b, c))
	if Cmp(left, right) != 0 {
		t.Errorf("addition is not associative: %s vs %s", left, right)
	}
}

func TestDivMulInverse(t *testing.T) {
	x := mustParse(t, "100", 10, 0)
	y := mustParse(t, "7", 10, 0)
	q, err := Div(x, y, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := q.Print(10); got != "14" {
		t.Errorf("100/7 at scale 0 = %q, want 14", got)
	}
	q2, err := Div(x, y, 5)
	if err != nil {
		t.Fatal(err)
	}
	if got := q2.Print(10); got != "14.28571" {
		t.Errorf("100/7 at scale 5 = %q, want 14.28571", got)
	}
}

func TestModIdentity(t *testing.T) {
	x := mustParse(t, "100", 10, 0)
	y := mustParse(t, "7", 10, 0)
	q, _ := Div(x, y, 0)
	r, err := Mod(x, y)
	if err != nil {
		t.Fatal(err)
	}
	sum := Add(Mul(q, y, 0), r)
	if Cmp(sum, x) != 0 {
		t.Errorf("mod identity failed: q=%s r=%s sum=%s want %s", q, r, sum, x)
	}
}

func TestDivideByZero(t *testing.T) {
	x := mustParse(t, "1", 10, 0)
	if _, err := Div(x, Zero, 5); err != ErrDivideByZero {
		t.Errorf("Div by zero = %v, want ErrDivideByZero", err)
	}
	if _, err := Mod(x, Zero); err != ErrDivideByZero {
		t.Errorf("Mod by zero = %v, want ErrDivideByZero", err)
	}
}

func TestPow(t *testing.T) {
	a := mustParse(t, "2", 10, 0)
	b := mustParse(t, "10", 10, 0)
	p, err := Pow(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Print(10); got != "1024" {
		t.Errorf("2^10 = %q, want 1024", got)
	}
}

func TestPowNonInteger(t *testing.T) {
	a := mustParse(t, "2", 10, 0)
	b := mustParse(t, "1.5", 10, 2)
	if _, err := Pow(a, b, 5); err != ErrNonInteger {
		t.Errorf("Pow with fractional exponent = %v, want ErrNonInteger", err)
	}
}

func TestModExp(t *testing.T) {
	a := mustParse(t, "4", 10, 0)
	b := mustParse(t, "13", 10, 0)
	c := mustParse(t, "497", 10, 0)
	got, err := ModExp(a, b, c)
	if err != nil {
		t.Fatal(err)
	}
	want, err := Pow(a, b, 0)
	if err != nil {
		t.Fatal(err)
	}
	want, err = Mod(want, c)
	if err != nil {
		t.Fatal(err)
	}
	if Cmp(got, want) != 0 {
		t.Errorf("ModExp(4,13,497) = %s, want %s", got, want)
	}
}

func TestSqrt(t *testing.T) {
	x := mustParse(t, "2", 10, 0)
	root, err := Sqrt(x, 20)
	if err != nil {
		t.Fatal(err)
	}
	lo := Mul(root, root, 40)
	upper := Add(root, smallestAtScale(19))
	hi := Mul(upper, upper, 40)
	if Cmp(lo, x) > 0 {
		t.Errorf("sqrt(2)^2 > 2: %s", lo)
	}
	if Cmp(x, hi) >= 0 {
		t.Errorf("2 >= (sqrt(2)+eps)^2: %s", hi)
	}
}

func TestSqrtNegative(t *testing.T) {
	x := mustParse(t, "-1", 10, 0)
	if _, err := Sqrt(x, 10); err != ErrNegativeSqrt {
		t.Errorf("Sqrt(-1) = %v, want ErrNegativeSqrt", err)
	}
}

func TestKaratsubaMatchesSchoolbook(t *testing.T) {
	a := make([]uint32, 100)
	b := make([]uint32, 80)
	for i := range a {
		a[i] = uint32(i%999999999 + 1)
	}
	for i := range b {
		b[i] = uint32(i%123456789 + 1)
	}
	got := mulLimbs(a, b)
	want := mulLimbsSchool(a, b)
	if cmpLimbs(got, want) != 0 {
		t.Errorf("karatsuba result does not match schoolbook result")
	}
}

func TestShifts(t *testing.T) {
	x := mustParse(t, "12.345", 10, 3)
	if got := LShift(x, 2).Print(10); got != "1234.5" {
		t.Errorf("lshift(12.345,2) = %q, want 1234.5", got)
	}
	if got := RShift(x, 2).Print(10); got != ".12345" {
		t.Errorf("rshift(12.345,2) = %q, want .12345", got)
	}
}

func TestPlaces(t *testing.T) {
	x := mustParse(t, "1.5", 10, 1)
	if got := Places(x, 4).Print(10); got != "1.5000" {
		t.Errorf("places(1.5,4) = %q, want 1.5000", got)
	}
	if got := Places(x, 0).Print(10); got != "1" {
		t.Errorf("places(1.5,0) = %q, want 1", got)
	}
}

func TestRandBounds(t *testing.T) {
	s := NewSource()
	bound := mustParse(t, "1000", 10, 0)
	for i := 0; i < 50; i++ {
		n, err := s.Irand(bound)
		if err != nil {
			t.Fatal(err)
		}
		if n.neg || Cmp(n, bound) >= 0 {
			t.Fatalf("irand(1000) out of range: %s", n)
		}
	}
}
