/*

Package persistence is a passive SQL sink for the two record kinds the
tracking engine's consumers care about keeping: spell card capture
snapshots and stage practice snapshots. It owns only the schema and the
insert statements; nothing here reads from a score file or an attached
process.

*/
package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hakurei-works/thstat/types"
)

// CardSnapshot is one observation of a spell card's cumulative capture
// statistics, keyed by (card, shot type, timestamp).
type CardSnapshot struct {
	Timestamp time.Time
	Card      types.AnySpell
	ShotType  types.AnyShot
	Captures  uint32
	Attempts  uint32
	MaxBonus  uint32
}

// PracticeSnapshot is one observation of a stage practice's cumulative
// statistics, keyed by (difficulty, shot type, stage, timestamp).
type PracticeSnapshot struct {
	Timestamp  time.Time
	Difficulty uint8
	ShotType   types.AnyShot
	Stage      uint8
	Attempts   uint32
	HighScore  uint64
}

const schema = `
CREATE TABLE IF NOT EXISTS spellcards (
	ts         INTEGER NOT NULL,
	card_id    INTEGER NOT NULL,
	shot_type  INTEGER NOT NULL,
	game       INTEGER NOT NULL,
	captures   INTEGER NOT NULL,
	attempts   INTEGER NOT NULL,
	max_bonus  INTEGER NOT NULL,
	PRIMARY KEY (card_id, shot_type, ts)
);

CREATE TABLE IF NOT EXISTS practices (
	ts         INTEGER NOT NULL,
	difficulty INTEGER NOT NULL,
	shot_type  INTEGER NOT NULL,
	game       INTEGER NOT NULL,
	stage      INTEGER NOT NULL,
	attempts   INTEGER NOT NULL,
	high_score INTEGER NOT NULL,
	PRIMARY KEY (difficulty, shot_type, stage, ts)
);
`

// SQLiteSink writes card and practice snapshots to a SQLite database,
// creating its schema on first open if it does not already exist.
type SQLiteSink struct {
	db *sql.DB
}

// Open opens (creating if necessary) a SQLite database at path and
// ensures its schema exists. path is passed straight to the driver, so a
// DSN of ":memory:" or one carrying query-string pragmas works the same
// as a plain file path.
func Open(ctx context.Context, path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persistence: open %q: %w", path, err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("persistence: create schema: %w", err)
	}

	return &SQLiteSink{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}

// InsertCard records one spell card capture snapshot.
func (s *SQLiteSink) InsertCard(ctx context.Context, snap CardSnapshot) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO spellcards (ts, card_id, shot_type, game, captures, attempts, max_bonus)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.Timestamp.UnixNano(),
		snap.Card.PackCardID(),
		snap.ShotType.PackShotType(),
		uint8(snap.Card.Game),
		snap.Captures,
		snap.Attempts,
		snap.MaxBonus,
	)
	if err != nil {
		return fmt.Errorf("persistence: insert spellcard: %w", err)
	}
	return nil
}

// InsertPractice records one stage practice snapshot.
func (s *SQLiteSink) InsertPractice(ctx context.Context, snap PracticeSnapshot) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO practices (ts, difficulty, shot_type, game, stage, attempts, high_score)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.Timestamp.UnixNano(),
		snap.Difficulty,
		snap.ShotType.PackShotType(),
		uint8(snap.ShotType.Game),
		snap.Stage,
		snap.Attempts,
		snap.HighScore,
	)
	if err != nil {
		return fmt.Errorf("persistence: insert practice: %w", err)
	}
	return nil
}
