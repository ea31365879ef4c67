// Package service orchestrates block analysis over the node RPC and the
// snapshot store.
package service

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockSource yields fully materialized block data; implemented by
	// analysis.Analyzer.
	BlockSource interface {
		RecentBlocks(ctx context.Context, count int) ([]model.BlockRecord, error)
		BlockDetails(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error)
		Template(ctx context.Context) (*btcjson.GetBlockTemplateResult, error)
	}

	// NodeStatusClient covers the node-wide info calls used by the status
	// endpoint.
	NodeStatusClient interface {
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
		GetMiningInfo() (*btcjson.GetMiningInfoResult, error)
		GetDifficulty() (float64, error)
		GetNetworkHashPS2(blocks int) (int64, error)
	}

	// SnapshotRepository persists difficulty snapshots.
	SnapshotRepository interface {
		InsertSnapshots(ctx context.Context, snapshots []model.DifficultySnapshot) error
	}

	// SnapshotterMetrics records snapshot loop outcomes.
	SnapshotterMetrics interface {
		ObserveTake(err error, started time.Time)
		ObserveFlush(err error, rows int)
	}
)
