package evaluator

import (
	"math"
	"regexp"
	"strconv"

	"github.com/cloudyluna/nickel/ast"
)

var matchLeading0Exponent = regexp.MustCompile(`([eE][\+\-])0+([1-9])`) // 1e-07 => 1e-7

// formatNumber renders a number in minimal decimal notation: integral
// values print without a decimal point, and only magnitudes past what
// decimal notation can sensibly carry fall back to exponent form.
func formatNumber(value float64) string {
	if value == 0 {
		return "0" // take care not to return -0
	}
	if math.IsNaN(value) {
		return "NaN"
	}
	if math.IsInf(value, 0) {
		if math.Signbit(value) {
			return "-Infinity"
		}
		return "Infinity"
	}
	exponent := math.Log10(math.Abs(value))
	if exponent >= 21 || exponent < -6 {
		return matchLeading0Exponent.ReplaceAllString(strconv.FormatFloat(value, 'g', -1, 64), "$1$2")
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ToDisplayString converts v to the text an interpolation splices in:
// strings pass through, numbers use minimal decimal notation, booleans
// and null their keywords. Arrays, records and functions have no
// canonical text form; they fail with an error wrapping
// ErrMalformedInterpolation at the given range.
func ToDisplayString(v Value, start, end ast.Idx) (string, error) {
	switch v.kind {
	case valueString:
		return v.str(), nil
	case valueNumber:
		return formatNumber(v.number()), nil
	case valueBool:
		return strconv.FormatBool(v.bool()), nil
	case valueNull:
		return "null", nil
	}
	return "", notDisplayable(v, start, end)
}
