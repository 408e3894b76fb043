package renderer

import (
	"bytes"
	"fmt"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/util"

	money "github.com/Rhymond/go-money"
	"github.com/charmbracelet/glamour"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// usd formats amount with the USD symbol, grouping and two decimals
func usd(amount decimal.Decimal) string {
	cur := money.GetCurrency(money.USD)
	factor, _ := decimal.NewFromInt(10).PowInt32(int32(cur.Fraction))
	return money.New(amount.Mul(factor).Round(0).IntPart(), money.USD).Display()
}

func usdFloat(amount float64) string {
	return usd(decimal.NewFromFloat(amount))
}

func percent(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}

func optionalUSD(v *float64) string {
	if v == nil {
		return ""
	}
	return usdFloat(*v)
}

func optionalPercent(v *float64) string {
	if v == nil {
		return ""
	}
	return percent(*v)
}

func RebalanceMarkdown(r *domain.RebalanceReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rebalance %s", util.DateKey(r.Date)))

	overview := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Total Value"), md.Bold(usd(r.TotalValue))},
		Rows: [][]string{
			{"Run", r.RunID.String()},
		},
	}
	if r.LedgerFile != "" {
		overview.Rows = append(overview.Rows, []string{"Ledger", r.LedgerFile})
	}
	doc.Table(overview)

	if r.Snapshot != nil && !r.Snapshot.IsEmpty() {
		doc.H2("Current Holdings")
		holdingsTable(doc, r.Snapshot)
	}

	// details are grouped by strategy in evaluation order
	strategies := []string{}
	byStrategy := map[string][]domain.StrategyDetail{}
	for _, d := range r.Details {
		if _, ok := byStrategy[d.Strategy]; !ok {
			strategies = append(strategies, d.Strategy)
		}
		byStrategy[d.Strategy] = append(byStrategy[d.Strategy], d)
	}
	for _, strategy := range strategies {
		rows := byStrategy[strategy]
		doc.H2(fmt.Sprintf("%s (%s)", strategy, percent(rows[0].StrategyRatio)))
		doc.Table(detailsTable(rows))
	}

	if len(r.Failures) > 0 {
		doc.H2("Failed Strategies")
		items := []string{}
		for _, f := range r.Failures {
			items = append(items, fmt.Sprintf("%s: %v", f.Strategy, f.Err))
		}
		doc.BulletList(items...)
	}

	doc.H2("Target Portfolio")
	target := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Quantity", "Amount"},
	}
	for _, line := range r.Summary.Lines {
		target.Rows = append(target.Rows, []string{
			line.Symbol,
			fmt.Sprintf("%d", line.Quantity),
			usd(line.Amount),
		})
	}
	doc.Table(target)

	return doc.String()
}

func detailsTable(rows []domain.StrategyDetail) md.TableSet {
	withMomentum := rows[0].Returns != nil

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Description", "Price", "Ratio", "Amount", "Quantity"},
	}
	if withMomentum {
		for _, lookback := range domain.MomentumLookbacks {
			table.Header = append(table.Header, lookback.Label)
			table.Alignment = append(table.Alignment, md.AlignRight)
		}
		table.Header = append(table.Header, "Score")
		table.Alignment = append(table.Alignment, md.AlignRight)
	}

	for _, d := range rows {
		row := []string{
			d.Symbol,
			d.Description,
			optionalUSD(d.Price),
			percent(d.Ratio),
			usd(d.Amount),
			fmt.Sprintf("%d", d.Quantity),
		}
		if withMomentum {
			for _, lookback := range domain.MomentumLookbacks {
				row = append(row, optionalPercent(d.Returns[lookback.Label]))
			}
			score := ""
			if d.Score != nil {
				score = fmt.Sprintf("%.4f", *d.Score)
			}
			row = append(row, score)
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func holdingsTable(doc *md.Markdown, snapshot *domain.PortfolioSnapshot) {
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Quantity", "Price", "Value"},
	}
	for _, h := range snapshot.Holdings {
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			h.Quantity.String(),
			usdFloat(h.Price),
			usd(h.Value),
		})
	}
	table.Rows = append(table.Rows, []string{md.Bold("Total"), "", "", md.Bold(usd(snapshot.TotalValue))})
	doc.Table(table)
}

// HoldingsMarkdown lists the positions of the latest ledger valued at the
// latest quotes
func HoldingsMarkdown(snapshot *domain.PortfolioSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	if snapshot == nil || snapshot.IsEmpty() {
		doc.PlainText("No holdings recorded yet.")
		return doc.String()
	}
	if snapshot.Source != "" {
		doc.PlainText(fmt.Sprintf("From %s", snapshot.Source))
	}
	holdingsTable(doc, snapshot)

	return doc.String()
}

// RenderTerminal styles markdown for a terminal
func RenderTerminal(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create terminal renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
