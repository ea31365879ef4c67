package analysis

import (
	"fmt"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

// BlockRecordFromVerbose maps a verbose block result into the record shape
// the aggregators consume. An absent bits string leaves Bits nil (the record
// is then skipped by the difficulty aggregator); a malformed one is an error.
// The verbose result carries time as a plain integer, so a zero value is the
// only signal that the node omitted the field; it leaves Time nil rather
// than feeding epoch zero into the timestamp aggregator.
func BlockRecordFromVerbose(src btcjson.GetBlockVerboseResult) (model.BlockRecord, error) {
	record := model.BlockRecord{
		Hash:   src.Hash,
		Height: src.Height,
		TXCnt:  len(src.Tx),
		Size:   src.Size,
	}

	if src.Bits != "" {
		bits, err := ParseBits(src.Bits)
		if err != nil {
			return model.BlockRecord{}, fmt.Errorf("block %s bits parse: %w", src.Hash, err)
		}
		record.Bits = &bits
	}

	if src.Time != 0 {
		ts := src.Time
		record.Time = &ts
	}

	return record, nil
}
