package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tacticalalloc/internal/app"

	"github.com/shopspring/decimal"
)

// parseAmount accepts "10000", "10,000.50" or "$10000"
func parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount", raw)
	}
	return amount, nil
}

func promptCapital(in io.Reader, out io.Writer) app.CapitalPrompter {
	reader := bufio.NewReader(in)

	return func(ctx context.Context) (decimal.Decimal, error) {
		fmt.Fprintln(out, "No existing asset allocation file found or current asset value is zero.")
		fmt.Fprint(out, "Enter your initial investment amount: $")

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return decimal.Zero, fmt.Errorf("failed to read initial investment: %w", err)
		}

		return parseAmount(line)
	}
}
