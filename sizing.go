// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcgo

import "github.com/antheory/bcgo/decimal"

// The sizing helpers below wrap decimal's pure capacity-estimation
// functions (spec.md §6 "Sizing helpers num_addReq/mulReq/divReq/powReq/
// placesReq predict output capacity") for the handle-based ABI. None of
// these consume their inputs.

// AddReq predicts the digit count Add(a, b) will need.
func AddReq(a, b Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, err
	}
	return decimal.AddReq(x, y), nil
}

// MulReq predicts the digit count Mul(a, b) will need at the context's
// scale.
func MulReq(a, b Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, err
	}
	return decimal.MulReq(x, y, c.scale), nil
}

// DivReq predicts the digit count Div(a, b) will need at the context's
// scale.
func DivReq(a Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	return decimal.DivReq(x, c.scale), nil
}

// PowReq predicts the digit count Pow(a, b) will need at the context's
// scale.
func PowReq(a, b Handle) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	y, err := c.lookup(b)
	if err != nil {
		return 0, err
	}
	return decimal.PowReq(x, y, c.scale), nil
}

// PlacesReq predicts the digit count Places(a, p) will need.
func PlacesReq(a Handle, p int) (int, error) {
	c, err := current()
	if err != nil {
		return 0, err
	}
	x, err := c.lookup(a)
	if err != nil {
		return 0, err
	}
	return decimal.PlacesReq(x, p), nil
}
