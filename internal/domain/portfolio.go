package domain

import (
	"github.com/shopspring/decimal"
)

// Holding is a ticker position reconstructed from the ledger and valued at
// the latest quote
type Holding struct {
	Symbol   string
	Quantity decimal.Decimal
	Price    float64
	Value    decimal.Decimal
}

type PortfolioSnapshot struct {
	Holdings   []Holding
	TotalValue decimal.Decimal
	// ledger file the quantities were read from
	Source string
}

func (p PortfolioSnapshot) IsEmpty() bool {
	return len(p.Holdings) == 0 || !p.TotalValue.IsPositive()
}

// NewPortfolioSnapshot values the given quantities. Non-positive quantities
// and symbols missing from priceMap are dropped, the same way a row with a
// blank price would be dropped from the sheet.
func NewPortfolioSnapshot(symbols []string, quantities map[string]decimal.Decimal, priceMap map[string]float64) *PortfolioSnapshot {
	snapshot := &PortfolioSnapshot{
		Holdings:   []Holding{},
		TotalValue: decimal.Zero,
	}
	for _, symbol := range symbols {
		quantity, ok := quantities[symbol]
		if !ok || !quantity.IsPositive() {
			continue
		}
		price, ok := priceMap[symbol]
		if !ok || price <= 0 {
			continue
		}
		value := quantity.Mul(decimal.NewFromFloat(price))
		snapshot.Holdings = append(snapshot.Holdings, Holding{
			Symbol:   symbol,
			Quantity: quantity,
			Price:    price,
			Value:    value,
		})
		snapshot.TotalValue = snapshot.TotalValue.Add(value)
	}

	return snapshot
}

// LedgerPosition is one Ticker/Quantity pair read back from the details sheet
type LedgerPosition struct {
	Symbol   string
	Quantity decimal.Decimal
}

// AggregatePositions sums quantities by symbol, keeping first-seen order
func AggregatePositions(rows []LedgerPosition) ([]string, map[string]decimal.Decimal) {
	symbols := []string{}
	quantities := map[string]decimal.Decimal{}
	for _, row := range rows {
		if _, ok := quantities[row.Symbol]; !ok {
			symbols = append(symbols, row.Symbol)
			quantities[row.Symbol] = decimal.Zero
		}
		quantities[row.Symbol] = quantities[row.Symbol].Add(row.Quantity)
	}
	return symbols, quantities
}
