package middleware

import (
	"github.com/gin-gonic/gin"

	appctx "retailops/internal/core/context"
)

const (
	HeaderOperatorID   = "X-Operator-ID"
	HeaderOperatorName = "X-Operator-Name"
	HeaderStoreID      = "X-Store-ID"
	HeaderTerminalID   = "X-Terminal-ID"
)

// Operator extracts operator attribution headers sent by the POS terminal
// and adds them to the request context. Attribution only; permission
// enforcement lives in the gateway in front of this service.
func Operator() gin.HandlerFunc {
	return func(c *gin.Context) {
		operatorID := c.GetHeader(HeaderOperatorID)
		if operatorID == "" {
			c.Next()
			return
		}

		op := &appctx.OperatorContext{
			OperatorID: operatorID,
			Name:       c.GetHeader(HeaderOperatorName),
			StoreID:    c.GetHeader(HeaderStoreID),
			TerminalID: c.GetHeader(HeaderTerminalID),
		}

		ctx := appctx.WithOperator(c.Request.Context(), op)
		c.Request = c.Request.WithContext(ctx)

		// Store in gin context for easy access
		c.Set("operator_id", operatorID)

		c.Next()
	}
}
