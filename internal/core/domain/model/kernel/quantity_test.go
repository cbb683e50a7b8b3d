package kernel_test

import (
	"math"
	"testing"

	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKg(t *testing.T) {
	tests := []struct {
		name    string
		kg      float64
		wantErr error
	}{
		{"whole kilograms", 412, nil},
		{"grams", 14.2, nil},
		{"three decimals", 0.125, nil},
		{"largest stored weight", kernel.MaxKg, nil},
		{"negative values are left to the caller", -2.5, nil},
		{"four decimals", 0.1234, errs.ErrValueIsInvalid},
		{"float noise", 0.1 + 0.2, errs.ErrValueIsInvalid},
		{"too heavy", 1e9, errs.ErrValueIsOutOfRange},
		{"not a number", math.NaN(), errs.ErrValueIsInvalid},
		{"infinite", math.Inf(1), errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := kernel.ValidateKg("quantity kg", tt.kg)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateMm(t *testing.T) {
	require.NoError(t, kernel.ValidateMm("diameter mm", 250.5))
	require.ErrorIs(t, kernel.ValidateMm("diameter mm", 1e7), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, kernel.ValidateMm("diameter mm", 0.0005), errs.ErrValueIsInvalid)
}

func TestRoundQuantity(t *testing.T) {
	assert.Equal(t, 0.3, kernel.RoundQuantity(0.1+0.2))
	assert.Equal(t, 387.9, kernel.RoundQuantity(400-12.1))
	require.NoError(t, kernel.ValidateKg("remaining kg", kernel.RoundQuantity(400-12.1)))
}
