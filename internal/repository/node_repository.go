// Package repository contains the concrete collaborators: the bitcoin node
// RPC wrapper and the ClickHouse snapshot store.
package repository

import (
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
)

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// NodeRepository wraps btc rpcclient with metrics instrumentation. It is the
// only concrete implementation of analysis.NodeClient.
type NodeRepository struct {
	client     *rpcclient.Client
	rpcMetrics RPCMetrics
}

// NewNodeRepository constructs an instrumented node RPC wrapper.
func NewNodeRepository(client *rpcclient.Client, rpcMetrics RPCMetrics) *NodeRepository {
	return &NodeRepository{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

// GetBlockCount returns the latest block count.
func (r *NodeRepository) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash for a height.
func (r *NodeRepository) GetBlockHash(blockHeight int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(blockHeight)
}

// GetBlockVerbose returns a verbose block without transaction details.
func (r *NodeRepository) GetBlockVerbose(blockHash *chainhash.Hash) (res *btcjson.GetBlockVerboseResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_verbose", err, started)
	}()
	return r.client.GetBlockVerbose(blockHash)
}

// GetBlockTemplate returns a block template for mining.
func (r *NodeRepository) GetBlockTemplate(req *btcjson.TemplateRequest) (res *btcjson.GetBlockTemplateResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_block_template", err, started)
	}()
	return r.client.GetBlockTemplate(req)
}

// GetBestBlockHash returns the hash of the chain tip.
func (r *NodeRepository) GetBestBlockHash() (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_best_block_hash", err, started)
	}()
	return r.client.GetBestBlockHash()
}

// GetBlockChainInfo returns chain state info.
func (r *NodeRepository) GetBlockChainInfo() (res *btcjson.GetBlockChainInfoResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_blockchain_info", err, started)
	}()
	return r.client.GetBlockChainInfo()
}

// GetMiningInfo returns mining-related node info.
func (r *NodeRepository) GetMiningInfo() (res *btcjson.GetMiningInfoResult, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_mining_info", err, started)
	}()
	return r.client.GetMiningInfo()
}

// GetDifficulty returns the current proof-of-work difficulty.
func (r *NodeRepository) GetDifficulty() (difficulty float64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_difficulty", err, started)
	}()
	return r.client.GetDifficulty()
}

// GetNetworkHashPS2 returns the estimated network hash rate over the last
// blocks blocks.
func (r *NodeRepository) GetNetworkHashPS2(blocks int) (rate int64, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("get_network_hash_ps", err, started)
	}()
	hashPS, err := r.client.GetNetworkHashPS2(blocks)
	return int64(hashPS), err
}
