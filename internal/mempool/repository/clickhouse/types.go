package clickhouse

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"time"

	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

type (
	// Metrics records repository operation outcomes.
	Metrics interface {
		Observe(operation string, coin model.Coin, network model.Network, rows int, err error, started time.Time)
	}

	// Conn is the part of a ClickHouse connection the repository uses.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Ping(ctx context.Context) error
		Close() error
	}

	// Batch is a prepared insert batch.
	Batch interface {
		Append(v ...any) error
		Abort() error
		Send() error
	}
)
