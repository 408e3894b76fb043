package domain

import "errors"

var (
	// ErrDataUnavailable means a price or series point could not be found,
	// or too few points came back to compute anything from them.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrInsufficientSignalData means a strategy could not be evaluated
	// because one of its inputs was unavailable.
	ErrInsufficientSignalData = errors.New("insufficient signal data")

	// ErrProviderError is a transport or provider level failure. It is the
	// only error the market data layer retries.
	ErrProviderError = errors.New("market data provider error")

	// ErrLedgerFormat means an expected sheet or column is missing from the
	// ledger, or a cell could not be parsed.
	ErrLedgerFormat = errors.New("ledger format error")
)
