package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/goodnatureofminers/minerscope-backend/internal/model"
)

// SnapshotRepository persists periodic difficulty snapshots in ClickHouse.
type SnapshotRepository struct {
	conn clickhouse.Conn
}

// NewSnapshotRepository opens a ClickHouse connection from a DSN.
func NewSnapshotRepository(dsn string) (*SnapshotRepository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &SnapshotRepository{conn: conn}, nil
}

// InsertSnapshots writes a batch of difficulty snapshots.
func (r *SnapshotRepository) InsertSnapshots(ctx context.Context, snapshots []model.DifficultySnapshot) error {
	if len(snapshots) == 0 {
		return nil
	}

	const query = `
INSERT INTO difficulty_snapshots (
	network, taken_at, tip_height, window_size,
	current, average, min, max, trend,
	avg_block_ts, oldest_ts, newest_ts
)`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare snapshot batch: %w", err)
	}

	for _, s := range snapshots {
		if err := batch.Append(
			s.Network,
			s.TakenAt,
			s.TipHeight,
			s.WindowSize,
			s.Current,
			s.Average,
			s.Min,
			s.Max,
			string(s.Trend),
			s.AvgBlockTS,
			s.OldestTS,
			s.NewestTS,
		); err != nil {
			return fmt.Errorf("append snapshot at height %d: %w", s.TipHeight, err)
		}
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("send snapshot batch: %w", err)
	}
	return nil
}

// LatestSnapshot returns the most recent snapshot for a network, with a
// found flag when the table has no rows yet.
func (r *SnapshotRepository) LatestSnapshot(ctx context.Context, network string) (model.DifficultySnapshot, bool, error) {
	const query = `
SELECT network, taken_at, tip_height, window_size,
       current, average, min, max, trend,
       avg_block_ts, oldest_ts, newest_ts
FROM difficulty_snapshots
WHERE network = ?
ORDER BY taken_at DESC
LIMIT 1`

	rows, err := r.conn.Query(ctx, query, network)
	if err != nil {
		return model.DifficultySnapshot{}, false, fmt.Errorf("query latest snapshot: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return model.DifficultySnapshot{}, false, nil
	}

	var (
		s     model.DifficultySnapshot
		trend string
	)
	if err := rows.Scan(
		&s.Network,
		&s.TakenAt,
		&s.TipHeight,
		&s.WindowSize,
		&s.Current,
		&s.Average,
		&s.Min,
		&s.Max,
		&trend,
		&s.AvgBlockTS,
		&s.OldestTS,
		&s.NewestTS,
	); err != nil {
		return model.DifficultySnapshot{}, false, fmt.Errorf("scan latest snapshot: %w", err)
	}
	s.Trend = model.Trend(trend)
	return s, true, nil
}

// Close releases the underlying connection.
func (r *SnapshotRepository) Close() error {
	return r.conn.Close()
}
