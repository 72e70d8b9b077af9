package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/hakurei-works/thstat/types"
)

func TestInsertCardAndPracticeRoundTrip(t *testing.T) {
	ctx := context.Background()
	sink, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer sink.Close()

	card := CardSnapshot{
		Timestamp: time.Unix(1000, 0),
		Card:      types.AnySpell{Game: types.PCB, RawID: 42},
		ShotType:  types.AnyShot{Game: types.PCB, RawID: 0},
		Captures:  3,
		Attempts:  10,
		MaxBonus:  500000,
	}
	if err := sink.InsertCard(ctx, card); err != nil {
		t.Fatalf("InsertCard: %v", err)
	}

	practice := PracticeSnapshot{
		Timestamp:  time.Unix(2000, 0),
		Difficulty: 1,
		ShotType:   types.AnyShot{Game: types.PCB, RawID: 0},
		Stage:      2,
		Attempts:   7,
		HighScore:  123456789,
	}
	if err := sink.InsertPractice(ctx, practice); err != nil {
		t.Fatalf("InsertPractice: %v", err)
	}

	var count int
	row := sink.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM spellcards WHERE card_id = ?`, card.Card.PackCardID())
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan spellcards count: %v", err)
	}
	if count != 1 {
		t.Errorf("spellcards count = %d, want 1", count)
	}

	row = sink.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM practices WHERE stage = ?`, practice.Stage)
	if err := row.Scan(&count); err != nil {
		t.Fatalf("scan practices count: %v", err)
	}
	if count != 1 {
		t.Errorf("practices count = %d, want 1", count)
	}
}

func TestInsertCardDuplicateKeyFails(t *testing.T) {
	ctx := context.Background()
	sink, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer sink.Close()

	card := CardSnapshot{
		Timestamp: time.Unix(1000, 0),
		Card:      types.AnySpell{Game: types.PCB, RawID: 1},
		ShotType:  types.AnyShot{Game: types.PCB, RawID: 0},
	}
	if err := sink.InsertCard(ctx, card); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := sink.InsertCard(ctx, card); err == nil {
		t.Error("expected a primary-key violation on a duplicate (card, shot type, timestamp)")
	}
}

func TestOpenCreatesSchemaIdempotently(t *testing.T) {
	ctx := context.Background()
	sink, err := Open(ctx, ":memory:")
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	defer sink.Close()

	if _, err := sink.db.ExecContext(ctx, schema); err != nil {
		t.Errorf("re-applying schema should be a no-op, got: %v", err)
	}
}
