// Package context provides request-scoped values extraction.
package context

import (
	"context"
)

// OperatorContext identifies the back-office operator or POS terminal
// performing the request. It carries attribution only; permission
// enforcement is out of scope for this service.
type OperatorContext struct {
	OperatorID string
	Name       string
	StoreID    string // home store of the terminal, if known
	TerminalID string
}

type operatorContextKey struct{}

// WithOperator adds OperatorContext to context.
func WithOperator(ctx context.Context, op *OperatorContext) context.Context {
	return context.WithValue(ctx, operatorContextKey{}, op)
}

// GetOperator returns OperatorContext from context.
func GetOperator(ctx context.Context) *OperatorContext {
	if v, ok := ctx.Value(operatorContextKey{}).(*OperatorContext); ok {
		return v
	}
	return nil
}

// GetOperatorID returns operator ID from context or empty string.
func GetOperatorID(ctx context.Context) string {
	if op := GetOperator(ctx); op != nil {
		return op.OperatorID
	}
	return ""
}

// GetTerminalStoreID returns the terminal's home store ID or empty string.
func GetTerminalStoreID(ctx context.Context) string {
	if op := GetOperator(ctx); op != nil {
		return op.StoreID
	}
	return ""
}
