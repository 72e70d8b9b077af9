package th08

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hakurei-works/thstat/scorefile"
	"github.com/hakurei-works/thstat/types"
	"github.com/hakurei-works/thstat/types/th08"
)

// SpellCardCareer is one shot type's story-mode and practice-mode tallies
// for a single spell card -- Imperishable Night tracks both independently,
// where Perfect Cherry Blossom tracks only one combined figure.
type SpellCardCareer struct {
	MaxBonusStory    uint32
	MaxBonusPractice uint32
	AttemptsStory    uint32
	AttemptsPractice uint32
	CapturesStory    uint32
	CapturesPractice uint32
}

// SpellCardData is the CATK segment: one spell card's per-shot career
// statistics, its flavor text, and the totals slot in index 12.
type SpellCardData struct {
	CardID     uint16 // 1-based
	Difficulty *th08.Difficulty
	CardName   [0x30]byte
	EnemyName  [0x30]byte
	Comment    [0x80]byte
	PerShot    [12]SpellCardCareer
	Total      SpellCardCareer
}

func readSpellCardData(r io.Reader) (SpellCardData, error) {
	var skip [4]byte
	if _, err := io.ReadFull(r, skip[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}

	var idBuf [2]byte
	if _, err := io.ReadFull(r, idBuf[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}

	var pad [1]byte
	if _, err := io.ReadFull(r, pad[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}

	var diffByte [1]byte
	if _, err := io.ReadFull(r, diffByte[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}
	difficulty, err := th08.DifficultyByID(diffByte[0])
	if err != nil {
		return SpellCardData{}, err
	}

	var scd SpellCardData
	scd.CardID = binary.LittleEndian.Uint16(idBuf[:]) + 1
	scd.Difficulty = difficulty

	if _, err := io.ReadFull(r, scd.CardName[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}
	if _, err := io.ReadFull(r, scd.EnemyName[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}
	if _, err := io.ReadFull(r, scd.Comment[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}

	// Six flat arrays of 13 u32s each: story max_bonus, story attempts,
	// story captures, practice max_bonus, practice attempts, practice
	// captures. Index 12 of every array is the "across all shots" total.
	var arrays [6][13]uint32
	for i := range arrays {
		var buf [13 * 4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
		}
		for j := range arrays[i] {
			arrays[i][j] = binary.LittleEndian.Uint32(buf[j*4 : j*4+4])
		}
	}

	var tail [4]byte
	if _, err := io.ReadFull(r, tail[:]); err != nil {
		return SpellCardData{}, fmt.Errorf("th08: reading spell card data: %w", err)
	}

	buildCareer := func(i int) SpellCardCareer {
		return SpellCardCareer{
			MaxBonusStory:    arrays[0][i],
			AttemptsStory:    arrays[1][i],
			CapturesStory:    arrays[2][i],
			MaxBonusPractice: arrays[3][i],
			AttemptsPractice: arrays[4][i],
			CapturesPractice: arrays[5][i],
		}
	}
	for i := range scd.PerShot {
		scd.PerShot[i] = buildCareer(i)
	}
	scd.Total = buildCareer(12)

	return scd, nil
}

// Card wraps this record's spell card id as a cross-game types.AnySpell.
func (scd SpellCardData) Card() types.AnySpell {
	return types.AnySpell{Game: types.IN, RawID: uint32(scd.CardID)}
}

// Info resolves the catalog entry for this card.
func (scd SpellCardData) Info() (*th08.SpellCardInfo, error) {
	return th08.SpellByID(scd.CardID)
}

// CardNameString decodes the CP932-encoded card name.
func (scd SpellCardData) CardNameString() (string, error) {
	return scorefile.DecodeCP932(scd.CardName[:])
}

// EnemyNameString decodes the CP932-encoded enemy name.
func (scd SpellCardData) EnemyNameString() (string, error) {
	return scorefile.DecodeCP932(scd.EnemyName[:])
}

// CommentString decodes the CP932-encoded flavor text.
func (scd SpellCardData) CommentString() (string, error) {
	return scorefile.DecodeCP932(scd.Comment[:])
}

func (scd SpellCardData) career(shot types.AnyShot) SpellCardCareer {
	if int(shot.RawID) < len(scd.PerShot) {
		return scd.PerShot[shot.RawID]
	}
	return SpellCardCareer{}
}

// Attempts returns the story-mode attempt count for shot (the common
// statistic across all Touhou score file formats).
func (scd SpellCardData) Attempts(shot types.AnyShot) uint32 {
	return scd.career(shot).AttemptsStory
}

// Captures returns the story-mode capture count for shot.
func (scd SpellCardData) Captures(shot types.AnyShot) uint32 {
	return scd.career(shot).CapturesStory
}

// MaxBonus returns the story-mode best bonus for shot.
func (scd SpellCardData) MaxBonus(shot types.AnyShot) uint32 {
	return scd.career(shot).MaxBonusStory
}

// TotalAttempts returns the stored story-mode attempt total (slot 12 on
// disk); AttemptsConsistent checks it against the per-shot sum.
func (scd SpellCardData) TotalAttempts() uint32 { return scd.Total.AttemptsStory }

// TotalCaptures returns the stored story-mode capture total (slot 12 on disk).
func (scd SpellCardData) TotalCaptures() uint32 { return scd.Total.CapturesStory }

// TotalMaxBonus is the story-mode best bonus across every shot type.
func (scd SpellCardData) TotalMaxBonus() uint32 { return scd.Total.MaxBonusStory }

// PracticeAttempts returns the practice-mode attempt count for shot.
func (scd SpellCardData) PracticeAttempts(shot types.AnyShot) uint32 {
	return scd.career(shot).AttemptsPractice
}

// PracticeCaptures returns the practice-mode capture count for shot.
func (scd SpellCardData) PracticeCaptures(shot types.AnyShot) uint32 {
	return scd.career(shot).CapturesPractice
}

// PracticeMaxBonus returns the practice-mode best bonus for shot.
func (scd SpellCardData) PracticeMaxBonus(shot types.AnyShot) uint32 {
	return scd.career(shot).MaxBonusPractice
}

// PracticeTotalAttempts returns the stored practice-mode attempt total
// (slot 12 on disk).
func (scd SpellCardData) PracticeTotalAttempts() uint32 { return scd.Total.AttemptsPractice }

// PracticeTotalCaptures returns the stored practice-mode capture total
// (slot 12 on disk).
func (scd SpellCardData) PracticeTotalCaptures() uint32 { return scd.Total.CapturesPractice }

// PracticeTotalMaxBonus is the practice-mode best bonus across every shot.
func (scd SpellCardData) PracticeTotalMaxBonus() uint32 { return scd.Total.MaxBonusPractice }

// AttemptsConsistent reports whether the stored story-mode total attempts
// equals the sum of every per-shot story-mode attempt count.
func (scd SpellCardData) AttemptsConsistent() bool {
	var sum uint32
	for _, c := range scd.PerShot {
		sum += c.AttemptsStory
	}
	return sum == scd.Total.AttemptsStory
}
