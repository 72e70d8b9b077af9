package th07

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/scorefile"
	"github.com/hakurei-works/thstat/types"
	"github.com/hakurei-works/thstat/types/th07"
)

// SpellCardData is one card's career statistics, read from a CATK
// segment: per-shot attempt/capture counts plus the best single-attempt
// bonus, with a 7th slot (index 6) holding the total across every shot.
type SpellCardData struct {
	MaxBonuses [7]uint32
	CardID     uint16 // 1-based
	CardName   [0x30]byte
	Attempts   [7]uint16
	Captures   [7]uint16
}

func readSpellCardData(r io.Reader) (SpellCardData, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}

	var maxBonusBuf [28]byte
	if _, err := io.ReadFull(r, maxBonusBuf[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}

	var scd SpellCardData
	for i := 0; i < 7; i++ {
		scd.MaxBonuses[i] = binary.LittleEndian.Uint32(maxBonusBuf[4*i : 4*i+4])
	}

	var cardIDBuf [2]byte
	if _, err := io.ReadFull(r, cardIDBuf[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}
	scd.CardID = binary.LittleEndian.Uint16(cardIDBuf[:]) + 1

	var pad [1]byte
	if _, err := io.ReadFull(r, pad[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}
	if _, err := io.ReadFull(r, scd.CardName[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}
	if _, err := io.ReadFull(r, pad[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}

	var attemptsBuf [14]byte
	if _, err := io.ReadFull(r, attemptsBuf[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}
	var capturesBuf [14]byte
	if _, err := io.ReadFull(r, capturesBuf[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th07: reading spell card data: %w", err)
	}
	for i := 0; i < 7; i++ {
		scd.Attempts[i] = binary.LittleEndian.Uint16(attemptsBuf[2*i : 2*i+2])
		scd.Captures[i] = binary.LittleEndian.Uint16(capturesBuf[2*i : 2*i+2])
	}

	return scd, nil
}

// Card wraps the card id as a cross-game types.AnySpell.
func (scd SpellCardData) Card() types.AnySpell {
	return types.AnySpell{Game: types.PCB, RawID: uint32(scd.CardID)}
}

// Info returns the catalog entry this record's card id identifies.
func (scd SpellCardData) Info() (*th07.SpellCardInfo, error) {
	return th07.SpellByID(scd.CardID)
}

// CardNameString decodes the fixed-size CP932 name buffer.
func (scd SpellCardData) CardNameString() (string, error) {
	return scorefile.DecodeCP932(scd.CardName[:])
}

func (scd SpellCardData) Attempts(shot types.AnyShot) uint32 { return uint32(scd.attemptsAt(shot)) }
func (scd SpellCardData) Captures(shot types.AnyShot) uint32 { return uint32(scd.capturesAt(shot)) }
func (scd SpellCardData) MaxBonus(shot types.AnyShot) uint32 { return scd.MaxBonuses[shot.RawID] }

func (scd SpellCardData) attemptsAt(shot types.AnyShot) uint16 { return scd.Attempts[shot.RawID] }
func (scd SpellCardData) capturesAt(shot types.AnyShot) uint16 { return scd.Captures[shot.RawID] }

// TotalAttempts, TotalCaptures and TotalMaxBonus report the 7th ("total
// across every shot") slot of their respective arrays, as read from disk.
// See AttemptsConsistent for cross-checking this against the per-shot sum.
func (scd SpellCardData) TotalAttempts() uint32 { return uint32(scd.Attempts[6]) }
func (scd SpellCardData) TotalCaptures() uint32 { return uint32(scd.Captures[6]) }
func (scd SpellCardData) TotalMaxBonus() uint32 { return scd.MaxBonuses[6] }

// AttemptsConsistent reports whether the stored total attempts equals the
// sum of every per-shot attempt count.
func (scd SpellCardData) AttemptsConsistent() bool {
	var sum uint16
	for _, a := range scd.Attempts[:6] {
		sum += a
	}
	return sum == scd.Attempts[6]
}
