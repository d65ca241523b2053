package engine

import (
	"math"
	"testing"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "целое", in: 42, want: "42"},
		{name: "дробь", in: 3.5, want: "3.5"},
		{name: "отрицательное", in: -7, want: "-7"},
		{name: "минус ноль", in: math.Copysign(0, -1), want: "0"},
		{name: "большое без экспоненты", in: 1e20, want: "100000000000000000000"},
		{name: "порог экспоненты", in: 1e21, want: "1e+21"},
		{name: "маленькое без экспоненты", in: 0.000001, want: "0.000001"},
		{name: "маленькое в экспоненте", in: 1.5e-7, want: "1.5e-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatNumber(tt.in); got != tt.want {
				t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundResult(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0.1 + 0.2, want: 0.3},
		{in: 0.7 + 0.1, want: 0.8},
		{in: 1.0 / 3, want: 0.33333333},
		{in: 2.0 / 3, want: 0.66666667},
		{in: 999999998000000000, want: 999999998000000000},
		{in: -0.000000001, want: 0},
	}
	for _, tt := range tests {
		if got := roundResult(tt.in); got != tt.want {
			t.Errorf("roundResult(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "короткое как есть", in: "123456789012", want: "123456789012"},
		{name: "13 символов в экспоненту", in: "1234567890123", want: "1.234568e+12"},
		{name: "маленькая дробь", in: "0.00000012345678", want: "1.234568e-7"},
		{name: "отрицательное", in: "-12345678901234", want: "-1.234568e+13"},
		{name: "ошибка как есть", in: "Error", want: "Error"},
		{name: "не число как есть", in: "not-a-number-at-all", want: "not-a-number-at-all"},
		{name: "точка в конце", in: "123456789012.", want: "1.234568e+11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDisplay(tt.in); got != tt.want {
				t.Errorf("formatDisplay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimExponent(t *testing.T) {
	cases := map[string]string{
		"1e-07":        "1e-7",
		"1.000000e+18": "1.000000e+18",
		"5e+00":        "5e+0",
		"42":           "42",
	}
	for in, want := range cases {
		if got := trimExponent(in); got != want {
			t.Errorf("trimExponent(%q) = %q, want %q", in, got, want)
		}
	}
}
