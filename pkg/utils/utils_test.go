package utils

import (
	"math"
	"testing"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"monthly payment", 676.4268, 676.43},
		{"half cent rounds away from zero", 867.605, 867.61},
		{"whole dollars", 35000, 35000},
		{"negative difference", -10.555, -10.56},
		{"NaN becomes zero", math.NaN(), 0},
		{"infinity becomes zero", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Round2(tt.in); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	for in, want := range map[float64]bool{
		0:            true,
		35000:        true,
		-1:           true,
		math.Inf(1):  false,
		math.Inf(-1): false,
	} {
		if got := IsFinite(in); got != want {
			t.Errorf("IsFinite(%v) = %v, want %v", in, got, want)
		}
	}
	if IsFinite(math.NaN()) {
		t.Error("IsFinite(NaN) = true")
	}
}

func TestMoney(t *testing.T) {
	if got := Money(1038.7649).String(); got != "1038.76" {
		t.Errorf("Money(1038.7649) = %s, want 1038.76", got)
	}
	if !Money(math.NaN()).IsZero() {
		t.Error("Money(NaN) should be zero")
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.999, "$1,000.00"},
		{1234.5, "$1,234.50"},
		{35000, "$35,000.00"},
		{1234567.891, "$1,234,567.89"},
		{-2500.25, "-$2,500.25"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.input); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(0.0872); got != "8.72%" {
		t.Errorf("FormatPercent(0.0872) = %q, want 8.72%%", got)
	}
	if got := FormatPercent(0); got != "0.00%" {
		t.Errorf("FormatPercent(0) = %q, want 0.00%%", got)
	}
}
