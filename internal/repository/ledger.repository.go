package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tacticalalloc/internal/domain"
	"tacticalalloc/internal/logger"
	"tacticalalloc/internal/util"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	SummarySheet = "Portfolio Summary"
	DetailsSheet = "Strategy Details"

	ledgerFileSuffix = "_asset_allocation_results.xlsx"
)

// LedgerRepository persists rebalances as one dated workbook per day
type LedgerRepository interface {
	// LatestPositions reads Ticker/Quantity rows from the details sheet of
	// the most recently modified workbook. source is empty when there is no
	// workbook yet.
	LatestPositions(ctx context.Context) (positions []domain.LedgerPosition, source string, err error)
	SaveSummary(ctx context.Context, summary domain.PortfolioSummary) (string, error)
	SaveDetails(ctx context.Context, date time.Time, details []domain.StrategyDetail) (string, error)
}

type ledgerRepositoryHandler struct {
	Dir string
}

func NewLedgerRepository(dir string) LedgerRepository {
	return ledgerRepositoryHandler{
		Dir: dir,
	}
}

func LedgerFileName(date time.Time) string {
	return util.LedgerFilePrefix(date) + ledgerFileSuffix
}

func (h ledgerRepositoryHandler) latestFile() (string, error) {
	entries, err := os.ReadDir(h.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to list %s: %w", h.Dir, err)
	}

	latest := ""
	var latestModTime time.Time
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if latest == "" || info.ModTime().After(latestModTime) {
			latest = filepath.Join(h.Dir, name)
			latestModTime = info.ModTime()
		}
	}

	return latest, nil
}

func (h ledgerRepositoryHandler) LatestPositions(ctx context.Context) ([]domain.LedgerPosition, string, error) {
	path, err := h.latestFile()
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		logger.FromContext(ctx).Infof("no ledger found in %s", h.Dir)
		return nil, "", nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	idx, err := f.GetSheetIndex(DetailsSheet)
	if err != nil || idx < 0 {
		return nil, path, fmt.Errorf("%w: %s has no %q sheet", domain.ErrLedgerFormat, path, DetailsSheet)
	}

	rows, err := f.GetRows(DetailsSheet)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read %q from %s: %w", DetailsSheet, path, err)
	}
	if len(rows) == 0 {
		return nil, path, fmt.Errorf("%w: %q in %s is empty", domain.ErrLedgerFormat, DetailsSheet, path)
	}

	tickerCol, quantityCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case "Ticker":
			tickerCol = i
		case "Quantity":
			quantityCol = i
		}
	}
	if tickerCol < 0 || quantityCol < 0 {
		return nil, path, fmt.Errorf("%w: %q in %s is missing Ticker or Quantity column", domain.ErrLedgerFormat, DetailsSheet, path)
	}

	out := []domain.LedgerPosition{}
	for rowNum, row := range rows[1:] {
		if tickerCol >= len(row) || strings.TrimSpace(row[tickerCol]) == "" {
			continue
		}
		quantity := decimal.Zero
		if quantityCol < len(row) && strings.TrimSpace(row[quantityCol]) != "" {
			quantity, err = decimal.NewFromString(strings.TrimSpace(row[quantityCol]))
			if err != nil {
				return nil, path, fmt.Errorf("%w: row %d has invalid quantity %q: %w", domain.ErrLedgerFormat, rowNum+2, row[quantityCol], err)
			}
		}
		out = append(out, domain.LedgerPosition{
			Symbol:   strings.TrimSpace(row[tickerCol]),
			Quantity: quantity,
		})
	}

	return out, path, nil
}

func (h ledgerRepositoryHandler) SaveSummary(ctx context.Context, summary domain.PortfolioSummary) (string, error) {
	header := []any{"Rebalance Date", "Run ID", "Asset Value"}
	values := []any{summary.Date, summary.RunID.String(), summary.TotalValue.InexactFloat64()}
	for _, line := range summary.Lines {
		header = append(header, line.Symbol+" Quantity", line.Symbol+" Amount")
		values = append(values, line.Quantity, line.Amount.InexactFloat64())
	}

	return h.saveSheet(ctx, summary.Date, SummarySheet, [][]any{header, values})
}

func detailsHeader() []any {
	header := []any{"Strategy", "Description", "Ticker", "Price", "Ratio", "Strategy ratio", "Final ratio", "Assets", "Quantity"}
	for _, lookback := range domain.MomentumLookbacks {
		header = append(header, lookback.Label)
	}
	return append(header, "Score")
}

func optionalCell(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func (h ledgerRepositoryHandler) SaveDetails(ctx context.Context, date time.Time, details []domain.StrategyDetail) (string, error) {
	rows := [][]any{detailsHeader()}
	for _, d := range details {
		row := []any{
			d.Strategy,
			d.Description,
			d.Symbol,
			optionalCell(d.Price),
			d.Ratio,
			d.StrategyRatio,
			d.FinalRatio,
			d.Amount.InexactFloat64(),
			d.Quantity,
		}
		for _, lookback := range domain.MomentumLookbacks {
			row = append(row, optionalCell(d.Returns[lookback.Label]))
		}
		row = append(row, optionalCell(d.Score))
		rows = append(rows, row)
	}

	return h.saveSheet(ctx, date, DetailsSheet, rows)
}

// saveSheet replaces sheet in the workbook for date, creating the workbook
// with both sheets when it does not exist yet
func (h ledgerRepositoryHandler) saveSheet(ctx context.Context, date time.Time, sheet string, rows [][]any) (string, error) {
	if err := os.MkdirAll(h.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", h.Dir, err)
	}
	path := filepath.Join(h.Dir, LedgerFileName(date))

	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
	} else if errors.Is(err, os.ErrNotExist) {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
			return "", fmt.Errorf("failed to create %q sheet: %w", SummarySheet, err)
		}
		if _, err := f.NewSheet(DetailsSheet); err != nil {
			return "", fmt.Errorf("failed to create %q sheet: %w", DetailsSheet, err)
		}
	} else {
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}
	defer f.Close()

	if err := replaceSheet(f, sheet); err != nil {
		return "", err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return "", err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return "", fmt.Errorf("failed to write row %d of %q: %w", i+1, sheet, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}

	logger.FromContext(ctx).Infof("saved %s to %s", sheet, path)

	return path, nil
}

// replaceSheet leaves an empty sheet with the given name in f
func replaceSheet(f *excelize.File, sheet string) error {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return fmt.Errorf("failed to look up %q: %w", sheet, err)
	}
	if idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create %q sheet: %w", sheet, err)
		}
		return nil
	}

	tmp := sheet + "~"
	if _, err := f.NewSheet(tmp); err != nil {
		return fmt.Errorf("failed to create %q sheet: %w", tmp, err)
	}
	if err := f.DeleteSheet(sheet); err != nil {
		return fmt.Errorf("failed to remove %q sheet: %w", sheet, err)
	}
	if err := f.SetSheetName(tmp, sheet); err != nil {
		return fmt.Errorf("failed to rename %q sheet: %w", tmp, err)
	}

	return nil
}
