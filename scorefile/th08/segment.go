package th08

import (
	"bytes"

	"github.com/hakurei-works/thstat/segment"
)

// RecordKind tags which concrete field of a Record is populated.
type RecordKind int

const (
	KindHeader RecordKind = iota
	KindHighScore
	KindSpellCard
	KindPracticeScore
	KindRaw
)

// Record is one decoded segment from an Imperishable Night score file.
// Imperishable Night's segment catalog is smaller than Perfect Cherry
// Blossom's -- no clear-data, play-status or last-name segments exist --
// but one PSCR segment explodes into many PracticeScore entries, so
// PracticeScores holds a slice rather than a single value.
type Record struct {
	Kind RecordKind

	HighScore      HighScore
	SpellCard      SpellCardData
	PracticeScores []PracticeScore
	Raw            segment.Segment
}

// decodeSegment dispatches a raw segment.Segment to its typed Record by
// signature. Imperishable Night only defines four segment signatures;
// everything else is passed through as KindRaw.
func decodeSegment(seg segment.Segment) (Record, error) {
	body := bytes.NewReader(seg.Body)

	switch seg.SignatureString() {
	case "TH8K":
		return Record{Kind: KindHeader}, nil

	case "HSCR":
		hs, err := readHighScore(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindHighScore, HighScore: hs}, nil

	case "CATK":
		scd, err := readSpellCardData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindSpellCard, SpellCard: scd}, nil

	case "PSCR":
		scores, err := readPracticeData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindPracticeScore, PracticeScores: scores}, nil

	default:
		return Record{Kind: KindRaw, Raw: seg}, nil
	}
}
