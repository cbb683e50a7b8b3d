package services_test

import (
	"testing"

	"dietrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestOrderNumberGenerator_ProductionOrderNumber(t *testing.T) {
	g := services.NewOrderNumberGenerator()

	tests := []struct {
		name     string
		die      string
		latest   string
		expected string
	}{
		{"should continue after the latest number", "100", "UE-100-002", "UE-100-003"},
		{"should start at one for an empty history", "100", "", "UE-100-001"},
		{"should start at one when the latest number is unparsable", "100", "UE-100-abc", "UE-100-001"},
		{"should grow past three digits", "7", "UE-7-999", "UE-7-1000"},
		{"should keep hyphenated die numbers intact", "1100-1", "UE-1100-1-002", "UE-1100-1-003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.ProductionOrderNumber(tt.die, tt.latest))
		})
	}
}

func TestOrderNumberGenerator_ProductionOrderPrefix(t *testing.T) {
	assert.Equal(t, "UE-1100-", services.NewOrderNumberGenerator().ProductionOrderPrefix("1100"))
}

func TestOrderNumberGenerator_WorkOrderNumber(t *testing.T) {
	g := services.NewOrderNumberGenerator()

	t.Run("should derive the sequence from the production order", func(t *testing.T) {
		assert.Equal(t, "IE-100-003-01", g.WorkOrderNumber("100", "UE-100-003", 1))
		assert.Equal(t, "IE-100-003-02", g.WorkOrderNumber("100", "UE-100-003", 2))
	})

	t.Run("should fall back to the die number for foreign formats", func(t *testing.T) {
		assert.Equal(t, "IE-100-001-01", g.WorkOrderNumber("100", "LEGACY42", 1))
		assert.Equal(t, "IE-100-001-01", g.WorkOrderNumber("100", "UE-200-004", 1))
	})

	t.Run("should accept hyphenated die numbers", func(t *testing.T) {
		number := g.ProductionOrderNumber("1100-1", "UE-1100-1-002")

		assert.Equal(t, "UE-1100-1-003", number)
		assert.Equal(t, "IE-1100-1-003-01", g.WorkOrderNumber("1100-1", number, 1))
	})
}
