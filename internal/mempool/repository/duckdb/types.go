package duckdb

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import "time"

type (
	// Metrics records ledger operation outcomes.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
