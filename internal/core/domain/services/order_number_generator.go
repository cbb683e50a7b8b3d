package services

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	ProductionOrderPrefix = "UE"
	WorkOrderPrefix       = "IE"

	// fallbackProductionSequence is used for work order numbers when the parent number
	// does not start with the die's production order prefix.
	fallbackProductionSequence = "001"
)

// OrderNumberGenerator derives order numbers from a die number and sequence counters.
//
// Formats:
//   - production order: UE-<DIE>-<NNN>, NNN scoped to the die
//   - work order:       IE-<DIE>-<PO_SEQ>-<NN>, PO_SEQ taken from the parent production order
//
// The generator holds no state. Uniqueness under concurrent creation is left to the
// store's unique constraint; callers regenerate once on a duplicate.
type OrderNumberGenerator struct{}

func NewOrderNumberGenerator() OrderNumberGenerator {
	return OrderNumberGenerator{}
}

// ProductionOrderPrefix returns the prefix shared by all production orders of a die,
// including the trailing separator ("UE-1100-").
func (OrderNumberGenerator) ProductionOrderPrefix(dieNumber string) string {
	return fmt.Sprintf("%s-%s-", ProductionOrderPrefix, dieNumber)
}

// ProductionOrderNumber returns the number following latestExisting, the lexicographically
// greatest number already issued for the die. An empty or unparsable latestExisting
// starts the sequence at 1.
//
// Example:
//
//	g.ProductionOrderNumber("100", "UE-100-002") // UE-100-003
//	g.ProductionOrderNumber("100", "")           // UE-100-001
func (g OrderNumberGenerator) ProductionOrderNumber(dieNumber, latestExisting string) string {
	seq := 1
	if latestExisting != "" {
		parts := strings.Split(latestExisting, "-")
		if n, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			seq = n + 1
		}
	}
	return fmt.Sprintf("%s%03d", g.ProductionOrderPrefix(dieNumber), seq)
}

// WorkOrderNumber returns the number of the index-th (1-based) work order of a production order.
// The production sequence is whatever follows the die's own prefix, so die numbers may
// contain hyphens.
//
// Example:
//
//	g.WorkOrderNumber("100", "UE-100-003", 2)      // IE-100-003-02
//	g.WorkOrderNumber("1100-1", "UE-1100-1-003", 1) // IE-1100-1-003-01
func (g OrderNumberGenerator) WorkOrderNumber(dieNumber, productionOrderNumber string, index int) string {
	poSeq := fallbackProductionSequence
	if seq, ok := strings.CutPrefix(productionOrderNumber, g.ProductionOrderPrefix(dieNumber)); ok && seq != "" {
		poSeq = seq
	}
	return fmt.Sprintf("%s-%s-%s-%02d", WorkOrderPrefix, dieNumber, poSeq, index)
}
