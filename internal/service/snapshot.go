package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/minerscope-backend/internal/analysis"
	"github.com/goodnatureofminers/minerscope-backend/internal/clock"
	"github.com/goodnatureofminers/minerscope-backend/internal/model"
	"github.com/goodnatureofminers/minerscope-backend/pkg/batcher"
	"github.com/goodnatureofminers/minerscope-backend/pkg/safe"
)

// SnapshotConfig tunes the periodic snapshot loop.
type SnapshotConfig struct {
	Network       string
	WindowSize    int
	Interval      time.Duration
	FlushSize     int
	FlushInterval time.Duration
	FlushRPS      int
}

// DefaultSnapshotConfig returns sane snapshot loop defaults.
func DefaultSnapshotConfig(network string) SnapshotConfig {
	return SnapshotConfig{
		Network:       network,
		WindowSize:    144,
		Interval:      time.Minute,
		FlushSize:     10,
		FlushInterval: 30 * time.Second,
		FlushRPS:      1,
	}
}

// SnapshotService periodically reduces the recent block window into a
// difficulty snapshot and batches the rows into the snapshot repository.
type SnapshotService struct {
	source  BlockSource
	repo    SnapshotRepository
	metrics SnapshotterMetrics
	cfg     SnapshotConfig
	logger  *zap.Logger
}

// NewSnapshotService builds the snapshot service with the provided dependencies.
func NewSnapshotService(
	source BlockSource,
	repo SnapshotRepository,
	snapMetrics SnapshotterMetrics,
	cfg SnapshotConfig,
	logger *zap.Logger,
) (*SnapshotService, error) {
	if cfg.Network == "" {
		return nil, errors.New("network is required")
	}
	if cfg.WindowSize <= 0 || cfg.Interval <= 0 || cfg.FlushSize <= 0 || cfg.FlushInterval <= 0 || cfg.FlushRPS <= 0 {
		cfg = DefaultSnapshotConfig(cfg.Network)
	}
	return &SnapshotService{
		source:  source,
		repo:    repo,
		metrics: snapMetrics,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

// Run drives the snapshot loop until the context is canceled. RPC failures
// on a single tick are logged and counted, not fatal.
func (s *SnapshotService) Run(ctx context.Context) error {
	flush := func(ctx context.Context, rows []model.DifficultySnapshot) error {
		err := s.repo.InsertSnapshots(ctx, rows)
		s.metrics.ObserveFlush(err, len(rows))
		if err != nil {
			return fmt.Errorf("insert snapshots: %w", err)
		}
		return nil
	}

	b := batcher.New(s.logger, flush, s.cfg.FlushSize, s.cfg.FlushInterval, s.cfg.FlushRPS)
	b.Start(ctx)
	defer b.Stop()

	s.logger.Info("starting snapshot loop",
		zap.String("network", s.cfg.Network),
		zap.Int("window_size", s.cfg.WindowSize),
		zap.Duration("interval", s.cfg.Interval))

	err := clock.Every(ctx, s.cfg.Interval, func(ctx context.Context) error {
		started := time.Now()
		snapshot, err := s.take(ctx)
		s.metrics.ObserveTake(err, started)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			s.logger.Error("snapshot failed", zap.Error(err))
			return nil
		}
		if snapshot == nil {
			s.logger.Warn("snapshot window produced no data", zap.String("network", s.cfg.Network))
			return nil
		}
		s.logger.Info("snapshot taken",
			zap.Uint64("tip_height", snapshot.TipHeight),
			zap.Float64("current", snapshot.Current),
			zap.String("trend", string(snapshot.Trend)))
		return b.Add(ctx, *snapshot)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// take fetches the window and reduces it. A nil snapshot with nil error
// means the window held no analyzable records.
func (s *SnapshotService) take(ctx context.Context) (*model.DifficultySnapshot, error) {
	blocks, err := s.source.RecentBlocks(ctx, s.cfg.WindowSize)
	if err != nil {
		return nil, fmt.Errorf("fetch recent blocks: %w", err)
	}

	difficulty, err := analysis.AnalyzeBlockDifficulty(blocks)
	if err != nil {
		return nil, err
	}
	miningTime := analysis.AnalyzeMiningTime(blocks)

	if difficulty.Current == nil || miningTime.Average == nil {
		return nil, nil
	}

	tip, err := safe.Uint64(blocks[0].Height)
	if err != nil {
		return nil, fmt.Errorf("tip height: %w", err)
	}
	window, err := safe.Uint32(len(blocks))
	if err != nil {
		return nil, fmt.Errorf("window size: %w", err)
	}

	return &model.DifficultySnapshot{
		Network:    s.cfg.Network,
		TakenAt:    time.Now().UTC(),
		TipHeight:  tip,
		WindowSize: window,
		Current:    *difficulty.Current,
		Average:    *difficulty.Average,
		Min:        *difficulty.Min,
		Max:        *difficulty.Max,
		Trend:      difficulty.Trend,
		AvgBlockTS: *miningTime.Average,
		OldestTS:   *miningTime.Slowest,
		NewestTS:   *miningTime.Fastest,
	}, nil
}
