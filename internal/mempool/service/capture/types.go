package capture

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/feed"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gateway interface {
		IsMine(address btcutil.Address) (bool, error)
		GetNewAddress() (btcutil.Address, error)
		GetMempoolEntry(txid string) (model.MempoolEntry, error)
		MinRelayFeeRate() (btcutil.Amount, error)
		SendRawTransaction(tx model.Transaction) (string, error)
	}
	PrevoutResolver interface {
		Resolve(ctx context.Context, inputs []model.Input) ([]btcutil.Amount, error)
	}
	Ledger interface {
		InsertVulnerableInput(ctx context.Context, in model.VulnerableInput) (int64, error)
		InsertVulnerableTransaction(ctx context.Context, vt model.VulnerableTransaction) (int64, error)
		RecordHijack(ctx context.Context, hijack model.HijackTransaction, prevOuts []model.OutPoint) (model.HijackTransaction, []model.HijackInputSpend, error)
	}
	ObservationSink interface {
		Emit(obs model.Observation)
	}
	ObservationRepository interface {
		InsertObservations(ctx context.Context, observations []model.Observation) error
	}
	Metrics interface {
		ObserveHandle(outcome model.Outcome, started time.Time)
		ObserveEligible(inputs int)
		ObserveCaptured(value btcutil.Amount)
		ObserveObservationDropped()
	}
	Feed interface {
		Run(ctx context.Context, handle feed.Handler) error
	}
)
