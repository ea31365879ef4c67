package service

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerscope-backend/internal/analysis"
	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

// hash rate estimation windows, in blocks
const (
	hashRateWindowShort  = 10
	hashRateWindowMedium = 120
	hashRateWindowEpoch  = 2016
)

// InsightsService answers the API queries: difficulty and mining-time
// summaries over recent blocks, block pass-throughs, template fee summary
// and node status.
type InsightsService struct {
	source BlockSource
	node   NodeStatusClient
	logger *zap.Logger
}

// NewInsightsService builds the insights service with its collaborators.
func NewInsightsService(source BlockSource, node NodeStatusClient, logger *zap.Logger) *InsightsService {
	return &InsightsService{
		source: source,
		node:   node,
		logger: logger,
	}
}

// DifficultySummary fetches count recent blocks newest-first and reduces
// them into a difficulty summary.
func (s *InsightsService) DifficultySummary(ctx context.Context, count int) (model.DifficultySummary, error) {
	blocks, err := s.source.RecentBlocks(ctx, count)
	if err != nil {
		return model.DifficultySummary{}, fmt.Errorf("fetch recent blocks: %w", err)
	}
	return analysis.AnalyzeBlockDifficulty(blocks)
}

// MiningTimeSummary fetches count recent blocks and reduces their raw
// timestamps.
func (s *InsightsService) MiningTimeSummary(ctx context.Context, count int) (model.MiningTimeSummary, error) {
	blocks, err := s.source.RecentBlocks(ctx, count)
	if err != nil {
		return model.MiningTimeSummary{}, fmt.Errorf("fetch recent blocks: %w", err)
	}
	return analysis.AnalyzeMiningTime(blocks), nil
}

// RecentBlocks passes through the newest-first block records.
func (s *InsightsService) RecentBlocks(ctx context.Context, count int) ([]model.BlockRecord, error) {
	return s.source.RecentBlocks(ctx, count)
}

// BlockDetails passes through the verbose block for a hash.
func (s *InsightsService) BlockDetails(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error) {
	return s.source.BlockDetails(ctx, hash)
}

// TemplateSummary condenses the current block template: coinbase reward,
// transaction count and the top fee among template transactions.
func (s *InsightsService) TemplateSummary(ctx context.Context) (model.TemplateSummary, error) {
	template, err := s.source.Template(ctx)
	if err != nil {
		return model.TemplateSummary{}, err
	}

	var topFee int64
	for _, tx := range template.Transactions {
		if tx.Fee > topFee {
			topFee = tx.Fee
		}
	}

	var coinbase int64
	if template.CoinbaseValue != nil {
		coinbase = *template.CoinbaseValue
	}

	s.logger.Debug("template summary",
		zap.String("previous_hash", template.PreviousHash),
		zap.Int("tx_count", len(template.Transactions)),
		zap.Float64("top_fee_btc", btcutil.Amount(topFee).ToBTC()),
		zap.Float64("coinbase_btc", btcutil.Amount(coinbase).ToBTC()))

	return model.TemplateSummary{
		PreviousHash:  template.PreviousHash,
		CoinbaseValue: coinbase,
		TXCount:       len(template.Transactions),
		TopFee:        topFee,
	}, nil
}

// NodeStatus aggregates chain, mining and hash rate info from the node.
func (s *InsightsService) NodeStatus(ctx context.Context) (model.NodeStatus, error) {
	if err := ctx.Err(); err != nil {
		return model.NodeStatus{}, err
	}

	chainInfo, err := s.node.GetBlockChainInfo()
	if err != nil {
		return model.NodeStatus{}, fmt.Errorf("get blockchain info: %w", err)
	}
	miningInfo, err := s.node.GetMiningInfo()
	if err != nil {
		return model.NodeStatus{}, fmt.Errorf("get mining info: %w", err)
	}
	bestHash, err := s.node.GetBestBlockHash()
	if err != nil {
		return model.NodeStatus{}, fmt.Errorf("get best block hash: %w", err)
	}
	difficulty, err := s.node.GetDifficulty()
	if err != nil {
		return model.NodeStatus{}, fmt.Errorf("get difficulty: %w", err)
	}

	status := model.NodeStatus{
		Chain:         chainInfo.Chain,
		Blocks:        int64(chainInfo.Blocks),
		Headers:       int64(chainInfo.Headers),
		BestBlockHash: bestHash.String(),
		Difficulty:    difficulty,
		PooledTX:      int64(miningInfo.PooledTx),
	}

	for _, window := range []struct {
		blocks int
		dest   *int64
	}{
		{hashRateWindowShort, &status.NetworkHashPS10},
		{hashRateWindowMedium, &status.NetworkHashPS120},
		{hashRateWindowEpoch, &status.NetworkHashPS},
	} {
		rate, err := s.node.GetNetworkHashPS2(window.blocks)
		if err != nil {
			return model.NodeStatus{}, fmt.Errorf("get network hash rate over %d blocks: %w", window.blocks, err)
		}
		*window.dest = rate
	}

	return status, nil
}
