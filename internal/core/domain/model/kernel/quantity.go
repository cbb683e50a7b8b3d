package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"dietrack/internal/pkg/errs"
)

// Weights are stored as numeric(12,3) and lengths as numeric(10,3).
const (
	QuantityDecimals = 3
	MaxKg            = 999_999_999.999
	MaxMm            = 9_999_999.999
)

// ValidateKg rejects weights the store would round or refuse.
func ValidateKg(param string, kg float64) error {
	return validateDecimal(param, kg, MaxKg)
}

// ValidateMm rejects lengths the store would round or refuse.
func ValidateMm(param string, mm float64) error {
	return validateDecimal(param, mm, MaxMm)
}

// RoundQuantity rounds to the stored scale. Arithmetic on stored quantities goes through it
// so that float drift never reaches the database.
func RoundQuantity(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func validateDecimal(param string, v, limit float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%v is not a number", v))
	}
	if math.Abs(v) > limit {
		return errs.NewValueIsOutOfRangeError(param, v, -limit, limit)
	}

	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 && len(formatted)-dot-1 > QuantityDecimals {
		return errs.NewValueIsInvalidErrorWithCause(
			param,
			fmt.Errorf("%s has more than %d decimal places", formatted, QuantityDecimals),
		)
	}
	return nil
}
