package th07

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/segment"
)

// RecordKind tags which concrete field of a Record is populated.
type RecordKind int

const (
	KindHeader RecordKind = iota
	KindHighScore
	KindClear
	KindSpellCard
	KindPracticeScore
	KindPlayStatus
	KindLastName
	KindVersion
	KindRaw
)

// Record is one decoded segment from a Perfect Cherry Blossom score file.
// Exactly one field matching Kind is populated; the rest are zero.
type Record struct {
	Kind RecordKind

	HighScore     HighScore
	Clear         ClearData
	SpellCard     SpellCardData
	PracticeScore PracticeData
	PlayStatus    PlayData
	LastName      [12]byte
	Version       [6]byte
	Raw           segment.Segment
}

// decodeSegment dispatches a raw segment.Segment to its typed Record by
// signature. Unlike the original decoder's LSNM/VRSM arms (which read past
// the segment's own declared body into whatever the stream cursor
// happened to be sitting on next), every signature here reads strictly
// from seg.Body, since package segment has already sliced that body out
// by size1/size2 -- there is no "rest of the stream" to misread from.
func decodeSegment(seg segment.Segment) (Record, error) {
	body := bytes.NewReader(seg.Body)

	switch seg.SignatureString() {
	case "TH7K":
		return Record{Kind: KindHeader}, nil

	case "HSCR":
		hs, err := readHighScore(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindHighScore, HighScore: hs}, nil

	case "CLRD":
		cd, err := readClearData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindClear, Clear: cd}, nil

	case "CATK":
		scd, err := readSpellCardData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindSpellCard, SpellCard: scd}, nil

	case "PSCR":
		pd, err := readPracticeData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindPracticeScore, PracticeScore: pd}, nil

	case "PLST":
		pd, err := readPlayData(body)
		if err != nil {
			return Record{}, err
		}
		return Record{Kind: KindPlayStatus, PlayStatus: pd}, nil

	case "LSNM":
		var skip [4]byte
		if _, err := io.ReadFull(body, skip[:]); err != nil {
			return Record{}, fmt.Errorf("th07: reading last name: %w", err)
		}
		var name [12]byte
		if _, err := io.ReadFull(body, name[:]); err != nil {
			return Record{}, fmt.Errorf("th07: reading last name: %w", err)
		}
		return Record{Kind: KindLastName, LastName: name}, nil

	case "VRSM":
		var head [4]byte
		if _, err := io.ReadFull(body, head[:]); err != nil {
			return Record{}, fmt.Errorf("th07: reading version marker: %w", err)
		}
		var version [6]byte
		if _, err := io.ReadFull(body, version[:]); err != nil {
			return Record{}, fmt.Errorf("th07: reading version marker: %w", err)
		}
		var tail [10]byte
		if _, err := io.ReadFull(body, tail[:]); err != nil {
			return Record{}, fmt.Errorf("th07: reading version marker: %w", err)
		}
		return Record{Kind: KindVersion, Version: version}, nil

	default:
		return Record{Kind: KindRaw, Raw: seg}, nil
	}
}
