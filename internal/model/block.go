// Package model holds the data types shared between analysis, services and
// repositories.
package model

import "time"

// Trend describes how difficulty moved across an ordered block sequence,
// comparing the last computed value against the first.
type Trend string

const (
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// BlockRecord is the minimal view of a block the analysis core consumes.
// Bits and Time are nil when the node response did not carry the field;
// aggregators skip such records instead of failing.
type BlockRecord struct {
	Hash   string  `json:"hash"`
	Height int64   `json:"height"`
	Bits   *uint32 `json:"bits"`
	Time   *int64  `json:"time"`
	TXCnt  int     `json:"ntx"`
	Size   int32   `json:"size"`
}

// DifficultyRange is the (min, max) pair of a difficulty sequence.
type DifficultyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// DifficultySummary aggregates per-block difficulties. All fields are nil
// when no difficulty could be computed from the input, except Trend which
// defaults to stable.
type DifficultySummary struct {
	Current *float64         `json:"current_difficulty"`
	Average *float64         `json:"average_difficulty"`
	Min     *float64         `json:"min_difficulty"`
	Max     *float64         `json:"max_difficulty"`
	Trend   Trend            `json:"trend"`
	Range   *DifficultyRange `json:"difficulties_range"`
}

// MiningTimeSummary aggregates raw block timestamps. Slowest is the minimum
// and Fastest the maximum timestamp value; the fields do not measure
// inter-block intervals even though the names suggest so. The naming is kept
// for compatibility with existing consumers.
type MiningTimeSummary struct {
	Average *float64 `json:"average_mining_time"`
	Slowest *int64   `json:"slowest_mining_time"`
	Fastest *int64   `json:"fastest_mining_time"`
}

// TemplateSummary condenses a block template: the coinbase reward, the
// transaction count and the highest fee among template transactions.
type TemplateSummary struct {
	PreviousHash  string `json:"previous_hash"`
	CoinbaseValue int64  `json:"coinbase_value_sats"`
	TXCount       int    `json:"tx_count"`
	TopFee        int64  `json:"top_fee_sats"`
}

// NodeStatus aggregates node-wide mining state for the status endpoint.
type NodeStatus struct {
	Chain            string  `json:"chain"`
	Blocks           int64   `json:"blocks"`
	Headers          int64   `json:"headers"`
	BestBlockHash    string  `json:"best_block_hash"`
	Difficulty       float64 `json:"difficulty"`
	NetworkHashPS10  int64   `json:"network_hash_ps_10"`
	NetworkHashPS120 int64   `json:"network_hash_ps_120"`
	NetworkHashPS    int64   `json:"network_hash_ps_2016"`
	PooledTX         int64   `json:"pooled_tx"`
}

// DifficultySnapshot is one periodic observation persisted to ClickHouse.
type DifficultySnapshot struct {
	Network    string
	TakenAt    time.Time
	TipHeight  uint64
	WindowSize uint32
	Current    float64
	Average    float64
	Min        float64
	Max        float64
	Trend      Trend
	AvgBlockTS float64
	OldestTS   int64
	NewestTS   int64
}
