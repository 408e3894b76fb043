package api

import (
	"fmt"

	"tacticalalloc/internal/app"
	"tacticalalloc/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// allocations previews a rebalance without touching the ledger. On a first
// run the capital comes from ?initialCapital=
func (m ApiHandler) allocations(c *gin.Context) {
	in := app.RebalanceInput{
		DryRun: true,
	}
	if raw := c.Query("initialCapital"); raw != "" {
		capital, err := decimal.NewFromString(raw)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid initialCapital %q: %w", raw, err), c, 400)
			return
		}
		in.InitialCapital = util.DecimalPointer(capital)
	}

	report, err := m.Rebalancer.Rebalance(c.Request.Context(), in)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to compute allocations: %w", err), c, rebalanceErrorCode(err))
		return
	}

	writeReport(c, 200, report)
}
