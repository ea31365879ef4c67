package analysis

import (
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// NodeClient is the single RPC surface the analysis side consumes.
	// Implementations issue the call and return the decoded result or an
	// error; no retries, pooling or caching are expected here.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlockVerbose(blockHash *chainhash.Hash) (*btcjson.GetBlockVerboseResult, error)
		GetBlockTemplate(req *btcjson.TemplateRequest) (*btcjson.GetBlockTemplateResult, error)
		GetBestBlockHash() (*chainhash.Hash, error)
		GetBlockChainInfo() (*btcjson.GetBlockChainInfoResult, error)
		GetMiningInfo() (*btcjson.GetMiningInfoResult, error)
		GetDifficulty() (float64, error)
		GetNetworkHashPS2(blocks int) (int64, error)
	}
)
