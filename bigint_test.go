// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package cntun

import "testing"

//********************************************************************************************

func TestBigAdd(t *testing.T) {
	var addTests = []struct {
		a, b, sum string
	}{
		{"0", "0", "0"},
		{"1", "2", "3"},
		{"", "5", "5"},
		{"999", "1", "1000"},
		{"123456789012345678901234567890", "1", "123456789012345678901234567891"},
		{"007", "3", "10"},
	}
	for _, tt := range addTests {
		actual := bigAdd(tt.a, tt.b)
		if actual != tt.sum {
			t.Errorf("bigAdd(%q, %q): expected %q, actual %q", tt.a, tt.b, tt.sum, actual)
		}
	}
}

func TestBigDivide(t *testing.T) {
	var divTests = []struct {
		a         string
		d         int
		quotient  string
		remainder int
	}{
		{"10", 2, "5", 0},
		{"7", 2, "3", 1},
		{"0", 4, "0", 0},
		{"1000", 8, "125", 0},
		{"123456789012345678901234567891", 3, "41152263004115226300411522630", 1},
	}
	for _, tt := range divTests {
		q, r := bigDivide(tt.a, tt.d)
		if q != tt.quotient || r != tt.remainder {
			t.Errorf("bigDivide(%q, %d): expected (%q, %d), actual (%q, %d)", tt.a, tt.d, tt.quotient, tt.remainder, q, r)
		}
	}
}

func TestTrimLeadingZeros(t *testing.T) {
	var trimTests = []struct {
		in, out string
	}{
		{"0", "0"},
		{"00", "0"},
		{"0012", "12"},
		{"120", "120"},
	}
	for _, tt := range trimTests {
		actual := trimLeadingZeros(tt.in)
		if actual != tt.out {
			t.Errorf("trimLeadingZeros(%q): expected %q, actual %q", tt.in, tt.out, actual)
		}
	}
}
