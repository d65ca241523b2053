package engine

import (
	"math"
	"strconv"
	"strings"
)

const (
	// maxInputLen — предел длины Current при наборе цифр.
	maxInputLen = 16
	// maxDisplayLen — длиннее этого Display переходит в экспоненту.
	maxDisplayLen = 12
	// resultDecimals — до скольки знаков округляется результат вычисления.
	resultDecimals = 8
	// displayExpDigits — знаков после точки в экспоненциальном Display.
	displayExpDigits = 6
)

// parseOperand возвращает значение операнда. ok == false для пустой строки, "Error" и бесконечностей.
func parseOperand(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// roundResult округляет до resultDecimals знаков после точки, убирая шум двоичной арифметики (0.1+0.2).
// Округление идёт через десятичную запись, поэтому большие числа не теряют точность на умножении на 1e8.
func roundResult(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', resultDecimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// formatNumber — каноническая десятичная запись: кратчайшая, обратимая,
// экспонента только для |v| >= 1e21 и |v| < 1e-6.
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // в том числе -0
	}
	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		return trimExponent(strconv.FormatFloat(v, 'e', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// formatDisplay переводит длинный операнд в вид d.dddddde±x. Нечисловые значения возвращаются как есть.
func formatDisplay(current string) string {
	if len(current) <= maxDisplayLen {
		return current
	}
	v, ok := parseOperand(current)
	if !ok {
		return current
	}
	return trimExponent(strconv.FormatFloat(v, 'e', displayExpDigits, 64))
}

// trimExponent убирает ведущие нули порядка: "1e-07" -> "1e-7".
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 >= len(s) {
		return s
	}
	mant, sign, exp := s[:i], s[i+1], strings.TrimLeft(s[i+2:], "0")
	if exp == "" {
		exp = "0"
	}
	return mant + "e" + string(sign) + exp
}
