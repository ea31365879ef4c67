package analysis

import (
	"context"
	"fmt"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
	"github.com/goodnatureofminers/minerscope-backend/pkg/workerpool"
)

const defaultFetchWorkers = 4

// Analyzer fetches block data through a NodeClient and feeds it to the pure
// aggregators. It holds no state besides its dependencies and is safe for
// concurrent use.
type Analyzer struct {
	rpc          NodeClient
	fetchWorkers int
}

// NewAnalyzer constructs an Analyzer. fetchWorkers bounds the RPC fan-out
// when walking recent blocks; values below 1 fall back to the default.
func NewAnalyzer(rpc NodeClient, fetchWorkers int) *Analyzer {
	if fetchWorkers < 1 {
		fetchWorkers = defaultFetchWorkers
	}
	return &Analyzer{
		rpc:          rpc,
		fetchWorkers: fetchWorkers,
	}
}

// BlockDetails returns the verbose block for a hash.
func (a *Analyzer) BlockDetails(ctx context.Context, hash string) (*btcjson.GetBlockVerboseResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	blockHash, err := chainhash.NewHashFromStr(hash)
	if err != nil {
		return nil, fmt.Errorf("parse block hash %q: %w", hash, err)
	}
	block, err := a.rpc.GetBlockVerbose(blockHash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	return block, nil
}

// RecentBlocks walks count heights back from the chain tip and returns the
// block records newest-first. Fetches run on a bounded worker pool; the
// returned order matches the height walk regardless of fetch completion
// order.
func (a *Analyzer) RecentBlocks(ctx context.Context, count int) ([]model.BlockRecord, error) {
	if count < 1 {
		return nil, fmt.Errorf("block count %d must be positive", count)
	}

	tip, err := a.rpc.GetBlockCount()
	if err != nil {
		return nil, fmt.Errorf("get block count: %w", err)
	}
	if int64(count) > tip+1 {
		count = int(tip + 1)
	}

	heights := make([]int64, 0, count)
	for h := tip; h > tip-int64(count); h-- {
		heights = append(heights, h)
	}

	return workerpool.Map(ctx, a.fetchWorkers, heights, a.fetchRecord)
}

func (a *Analyzer) fetchRecord(ctx context.Context, height int64) (model.BlockRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.BlockRecord{}, err
	}
	hash, err := a.rpc.GetBlockHash(height)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	block, err := a.rpc.GetBlockVerbose(hash)
	if err != nil {
		return model.BlockRecord{}, fmt.Errorf("get block %s: %w", hash, err)
	}
	return BlockRecordFromVerbose(*block)
}

// Template returns a block template with the segwit rule, mirroring what the
// node expects from modern miners.
func (a *Analyzer) Template(ctx context.Context) (*btcjson.GetBlockTemplateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	template, err := a.rpc.GetBlockTemplate(&btcjson.TemplateRequest{
		Rules: []string{"segwit"},
	})
	if err != nil {
		return nil, fmt.Errorf("get block template: %w", err)
	}
	return template, nil
}
