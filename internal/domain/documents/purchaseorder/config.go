package purchaseorder

import "retailops/internal/core/numerator"

const (
	// NumeratorStrategy defines the numbering strategy for this document type.
	// Purchase orders are internal documents, gaps in numbering are acceptable.
	NumeratorStrategy = numerator.StrategyCached

	// NumeratorPrefix for generated document numbers (PO-2026-00001).
	NumeratorPrefix = "PO"
)
