package salesreturn

import "retailops/internal/core/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Returns move money back to customers, so numbers must be gapless.
	NumeratorStrategy = numerator.StrategyStrict

	// NumeratorPrefix for generated document numbers (RET-2026-00001).
	NumeratorPrefix = "RET"
)
