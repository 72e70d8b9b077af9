package th07

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/hakurei-works/thstat/segment"
	"github.com/hakurei-works/thstat/types"
	"github.com/hakurei-works/thstat/types/th07"
)

// buildSpellCardBody encodes one CATK segment body byte-for-byte per the
// on-disk layout: a 4-byte skip, 7 max-bonus u32s, a 0-based card id u16,
// a padding byte, a 0x30-byte name buffer, a padding byte, 7 attempt u16s,
// and 7 capture u16s.
func buildSpellCardBody(cardID0Based uint16, maxBonuses [7]uint32, attempts, captures [7]uint16) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	for _, v := range maxBonuses {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	binary.Write(&buf, binary.LittleEndian, cardID0Based)
	buf.WriteByte(0)
	buf.Write(make([]byte, 0x30))
	buf.WriteByte(0)
	for _, v := range attempts {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	for _, v := range captures {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	return buf.Bytes()
}

func TestReadSpellCardDataMatchesScenarioE1(t *testing.T) {
	// Card 93 (1-based) = index 92 on disk: attempts=10, captures=3,
	// max_bonus=12345678 for shot ReimuA (index 0).
	var maxBonuses [7]uint32
	var attempts, captures [7]uint16
	maxBonuses[0] = 12345678
	attempts[0] = 10
	captures[0] = 3

	body := buildSpellCardBody(92, maxBonuses, attempts, captures)

	scd, err := readSpellCardData(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("readSpellCardData: %v", err)
	}

	if scd.CardID != 93 {
		t.Errorf("CardID = %d, want 93", scd.CardID)
	}
	reimuA := types.AnyShot{Game: types.PCB, RawID: 0}
	if got := scd.Attempts(reimuA); got != 10 {
		t.Errorf("Attempts(ReimuA) = %d, want 10", got)
	}
	if got := scd.Captures(reimuA); got != 3 {
		t.Errorf("Captures(ReimuA) = %d, want 3", got)
	}
	if got := scd.MaxBonus(reimuA); got != 12345678 {
		t.Errorf("MaxBonus(ReimuA) = %d, want 12345678", got)
	}
}

func buildPracticeDataBody(attempts, highScore uint32, shotType, difficulty, stage byte) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	binary.Write(&buf, binary.LittleEndian, attempts)
	binary.Write(&buf, binary.LittleEndian, highScore)
	buf.WriteByte(shotType)
	buf.WriteByte(difficulty)
	buf.WriteByte(stage)
	buf.WriteByte(0)
	return buf.Bytes()
}

// TestDecodeSegmentDispatch mirrors Scenario E6: a CATK segment, an
// unknown 32-byte FOO_ segment, and a PSCR segment, decoded in sequence
// via decodeSegment -- a parsed SpellCardData, an opaque Raw passthrough,
// then a parsed PracticeData.
func TestDecodeSegmentDispatch(t *testing.T) {
	var zeroBonus [7]uint32
	var zeroU16 [7]uint16
	catkBody := buildSpellCardBody(0, zeroBonus, zeroU16, zeroU16)

	catk := segment.Segment{Signature: [4]byte{'C', 'A', 'T', 'K'}, Body: catkBody}
	rec, err := decodeSegment(catk)
	if err != nil {
		t.Fatalf("decodeSegment(CATK): %v", err)
	}
	if rec.Kind != KindSpellCard {
		t.Errorf("CATK kind = %v, want KindSpellCard", rec.Kind)
	}

	unknownBody := make([]byte, 32)
	foo := segment.Segment{Signature: [4]byte{'F', 'O', 'O', '_'}, Size1: 40, Body: unknownBody}
	rec, err = decodeSegment(foo)
	if err != nil {
		t.Fatalf("decodeSegment(FOO_): %v", err)
	}
	if rec.Kind != KindRaw {
		t.Errorf("FOO_ kind = %v, want KindRaw", rec.Kind)
	}
	if len(rec.Raw.Body) != 32 {
		t.Errorf("FOO_ raw body length = %d, want 32", len(rec.Raw.Body))
	}

	pscrBody := buildPracticeDataBody(5, 1000, 0, 1, 2)
	pscr := segment.Segment{Signature: [4]byte{'P', 'S', 'C', 'R'}, Body: pscrBody}
	rec, err = decodeSegment(pscr)
	if err != nil {
		t.Fatalf("decodeSegment(PSCR): %v", err)
	}
	if rec.Kind != KindPracticeScore {
		t.Errorf("PSCR kind = %v, want KindPracticeScore", rec.Kind)
	}
	if rec.PracticeScore.Attempts() != 5 || rec.PracticeScore.HighScore() != 1000 {
		t.Errorf("PracticeScore = %+v", rec.PracticeScore)
	}
}

func TestReadClearDataByDifficulty(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	buf.Write([]byte{1, 0, 1, 0, 1, 0}) // story flags
	buf.Write([]byte{0, 1, 0, 1, 0, 1}) // practice flags
	binary.Write(&buf, binary.LittleEndian, uint32(2))

	cd, err := readClearData(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readClearData: %v", err)
	}
	if cd.ShotType != th07.MarisaA {
		t.Errorf("ShotType = %v, want MarisaA", cd.ShotType)
	}
	if cd.StoryFlag(th07.Hard) != 1 {
		t.Errorf("StoryFlag(Hard) = %d, want 1", cd.StoryFlag(th07.Hard))
	}
}

func TestAttemptsConsistent(t *testing.T) {
	consistent := SpellCardData{Attempts: [7]uint16{1, 2, 3, 0, 0, 0, 6}}
	if !consistent.AttemptsConsistent() {
		t.Error("AttemptsConsistent() = false, want true for 1+2+3 == 6")
	}

	broken := SpellCardData{Attempts: [7]uint16{1, 2, 3, 0, 0, 0, 7}}
	if broken.AttemptsConsistent() {
		t.Error("AttemptsConsistent() = true, want false for 1+2+3 != 7")
	}
}

func TestReadPlayDataPlayCounts(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4)) // skip

	writeStoredTime := func(h, m, s, ms uint32) {
		binary.Write(&buf, binary.LittleEndian, h)
		binary.Write(&buf, binary.LittleEndian, m)
		binary.Write(&buf, binary.LittleEndian, s)
		binary.Write(&buf, binary.LittleEndian, ms)
	}
	writeStoredTime(1, 2, 3, 4)
	writeStoredTime(5, 6, 7, 8)

	for i := 0; i < 7; i++ {
		binary.Write(&buf, binary.LittleEndian, uint32(i)) // total_attempts
		for j := 0; j < 6; j++ {
			binary.Write(&buf, binary.LittleEndian, uint32(0))
		}
		binary.Write(&buf, binary.LittleEndian, uint32(0)) // retries
		binary.Write(&buf, binary.LittleEndian, uint32(0)) // clears
		binary.Write(&buf, binary.LittleEndian, uint32(0)) // continues
		binary.Write(&buf, binary.LittleEndian, uint32(0)) // practices
	}

	pd, err := readPlayData(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("readPlayData: %v", err)
	}
	if pd.RunningTime.Hours != 1 || pd.PlayTime.Minutes != 6 {
		t.Errorf("times = %+v %+v", pd.RunningTime, pd.PlayTime)
	}
	if pd.TotalPlayCount().TotalAttempts != 6 {
		t.Errorf("total play count = %d, want 6", pd.TotalPlayCount().TotalAttempts)
	}
}
