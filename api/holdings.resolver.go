package api

import (
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/renderer"

	"github.com/gin-gonic/gin"
)

type holdingResponse struct {
	Symbol   string  `json:"symbol"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	Value    float64 `json:"value"`
}

type holdingsResponse struct {
	Holdings   []holdingResponse `json:"holdings"`
	TotalValue float64           `json:"totalValue"`
	Source     string            `json:"source,omitempty"`
}

func holdingsResponseFromDomain(snapshot *domain.PortfolioSnapshot) *holdingsResponse {
	if snapshot == nil {
		return nil
	}
	out := &holdingsResponse{
		Holdings:   []holdingResponse{},
		TotalValue: snapshot.TotalValue.InexactFloat64(),
		Source:     snapshot.Source,
	}
	for _, h := range snapshot.Holdings {
		out.Holdings = append(out.Holdings, holdingResponse{
			Symbol:   h.Symbol,
			Quantity: h.Quantity.InexactFloat64(),
			Price:    h.Price,
			Value:    h.Value.InexactFloat64(),
		})
	}
	return out
}

func (m ApiHandler) holdings(c *gin.Context) {
	snapshot, err := m.Rebalancer.CurrentHoldings(c.Request.Context())
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to get holdings: %w", err), c)
		return
	}

	if c.Query("format") == "markdown" {
		c.Data(200, "text/markdown; charset=utf-8", []byte(renderer.HoldingsMarkdown(snapshot)))
		return
	}
	c.JSON(200, holdingsResponseFromDomain(snapshot))
}
