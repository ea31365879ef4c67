package analysis

import (
	"fmt"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

// AnalyzeBlockDifficulty reduces an ordered block sequence into a difficulty
// summary. Records without a bits value are skipped; a record whose bits
// decode to a zero target is an error. Current is the difficulty of the
// first record in input order, so callers wanting "most recent" must pass
// blocks newest-first. An empty result leaves every field nil and the trend
// stable.
func AnalyzeBlockDifficulty(blocks []model.BlockRecord) (model.DifficultySummary, error) {
	difficulties := make([]float64, 0, len(blocks))
	for _, block := range blocks {
		if block.Bits == nil {
			continue
		}
		difficulty, err := BitsToDifficulty(*block.Bits)
		if err != nil {
			return model.DifficultySummary{}, fmt.Errorf("block %s: %w", block.Hash, err)
		}
		difficulties = append(difficulties, difficulty)
	}

	summary := model.DifficultySummary{Trend: model.TrendStable}
	if len(difficulties) == 0 {
		return summary, nil
	}

	sum := 0.0
	minD, maxD := difficulties[0], difficulties[0]
	for _, d := range difficulties {
		sum += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}

	current := difficulties[0]
	average := sum / float64(len(difficulties))

	summary.Current = &current
	summary.Average = &average
	summary.Min = &minD
	summary.Max = &maxD
	summary.Range = &model.DifficultyRange{Min: minD, Max: maxD}

	// Trend is last-vs-first, not block-over-block deltas.
	if len(difficulties) > 1 {
		last, first := difficulties[len(difficulties)-1], difficulties[0]
		switch {
		case last > first:
			summary.Trend = model.TrendIncreasing
		case last < first:
			summary.Trend = model.TrendDecreasing
		}
	}

	return summary, nil
}

// AnalyzeMiningTime reduces block timestamps into a mining-time summary.
// Slowest/Fastest are the min/max of the raw time fields, not inter-block
// intervals; see model.MiningTimeSummary. Records without a time value are
// skipped and an empty result leaves every field nil.
func AnalyzeMiningTime(blocks []model.BlockRecord) model.MiningTimeSummary {
	times := make([]int64, 0, len(blocks))
	for _, block := range blocks {
		if block.Time == nil {
			continue
		}
		times = append(times, *block.Time)
	}

	var summary model.MiningTimeSummary
	if len(times) == 0 {
		return summary
	}

	var sum int64
	slowest, fastest := times[0], times[0]
	for _, ts := range times {
		sum += ts
		if ts < slowest {
			slowest = ts
		}
		if ts > fastest {
			fastest = ts
		}
	}

	average := float64(sum) / float64(len(times))
	summary.Average = &average
	summary.Slowest = &slowest
	summary.Fastest = &fastest
	return summary
}
