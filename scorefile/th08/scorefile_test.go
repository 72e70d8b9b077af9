package th08

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/hakurei-works/thstat/segment"
	"github.com/hakurei-works/thstat/types"
)

// buildSpellCardBody encodes one CATK segment body byte-for-byte: a
// 4-byte skip, a 0-based card id u16, a padding byte, a difficulty byte,
// name/enemy/comment buffers, six flat 13-u32 arrays, and a trailing
// 4-byte skip.
func buildSpellCardBody(cardID0Based uint16, difficulty byte, arrays [6][13]uint32) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	binary.Write(&buf, binary.LittleEndian, cardID0Based)
	buf.WriteByte(0)
	buf.WriteByte(difficulty)
	buf.Write(make([]byte, 0x30)) // card name
	buf.Write(make([]byte, 0x30)) // enemy name
	buf.Write(make([]byte, 0x80)) // comment
	for _, arr := range arrays {
		for _, v := range arr {
			binary.Write(&buf, binary.LittleEndian, v)
		}
	}
	buf.Write(make([]byte, 4))
	return buf.Bytes()
}

func TestReadSpellCardDataStoryAndPractice(t *testing.T) {
	var arrays [6][13]uint32
	arrays[0][0] = 5000  // story max bonus, shot 0
	arrays[1][0] = 7     // story attempts, shot 0
	arrays[2][0] = 2     // story captures, shot 0
	arrays[3][0] = 9000  // practice max bonus, shot 0
	arrays[4][0] = 20    // practice attempts, shot 0
	arrays[5][0] = 15    // practice captures, shot 0
	arrays[1][12] = 100  // story attempts, total
	arrays[4][12] = 250  // practice attempts, total

	body := buildSpellCardBody(10, 2, arrays) // Hard difficulty

	scd, err := readSpellCardData(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("readSpellCardData: %v", err)
	}
	if scd.CardID != 11 {
		t.Errorf("CardID = %d, want 11", scd.CardID)
	}
	if scd.Difficulty.Name != "Hard" {
		t.Errorf("Difficulty = %v, want Hard", scd.Difficulty)
	}

	shot0 := types.AnyShot{Game: types.IN, RawID: 0}
	if got := scd.Attempts(shot0); got != 7 {
		t.Errorf("Attempts = %d, want 7", got)
	}
	if got := scd.Captures(shot0); got != 2 {
		t.Errorf("Captures = %d, want 2", got)
	}
	if got := scd.MaxBonus(shot0); got != 5000 {
		t.Errorf("MaxBonus = %d, want 5000", got)
	}
	if got := scd.PracticeAttempts(shot0); got != 20 {
		t.Errorf("PracticeAttempts = %d, want 20", got)
	}
	if got := scd.PracticeCaptures(shot0); got != 15 {
		t.Errorf("PracticeCaptures = %d, want 15", got)
	}
	if got := scd.PracticeMaxBonus(shot0); got != 9000 {
		t.Errorf("PracticeMaxBonus = %d, want 9000", got)
	}
	if got := scd.TotalAttempts(); got != 100 {
		t.Errorf("TotalAttempts = %d, want 100", got)
	}
	if got := scd.PracticeTotalAttempts(); got != 250 {
		t.Errorf("PracticeTotalAttempts = %d, want 250", got)
	}
}

func TestAttemptsConsistent(t *testing.T) {
	consistent := SpellCardData{
		PerShot: [12]SpellCardCareer{{AttemptsStory: 3}, {AttemptsStory: 4}},
		Total:   SpellCardCareer{AttemptsStory: 7},
	}
	if !consistent.AttemptsConsistent() {
		t.Error("AttemptsConsistent() = false, want true for 3+4 == 7")
	}

	broken := SpellCardData{
		PerShot: [12]SpellCardCareer{{AttemptsStory: 3}, {AttemptsStory: 4}},
		Total:   SpellCardCareer{AttemptsStory: 100},
	}
	if broken.AttemptsConsistent() {
		t.Error("AttemptsConsistent() = true, want false for 3+4 != 100")
	}
}

func buildPracticeDataBody(shotType byte, playCounts, highScores [45]uint32) []byte {
	var buf bytes.Buffer
	buf.Write(make([]byte, 4))
	for _, v := range playCounts {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	for _, v := range highScores {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	buf.WriteByte(shotType)
	buf.Write(make([]byte, 3))
	return buf.Bytes()
}

func TestReadPracticeDataExplodesFortyFiveRecords(t *testing.T) {
	var playCounts, highScores [45]uint32
	// Stage index 3 (StageFourA), difficulty index 2 (Hard) is flat index
	// 3*5+2 = 17 under the stage-outer, difficulty-inner flattening order.
	playCounts[17] = 42
	highScores[17] = 999999

	body := buildPracticeDataBody(6, playCounts, highScores) // shot 6 = Marisa

	scores, err := readPracticeData(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("readPracticeData: %v", err)
	}
	if len(scores) != 45 {
		t.Fatalf("len(scores) = %d, want 45", len(scores))
	}

	found := scores[17]
	if found.Stage.Name != "Stage 4 Uncanny" {
		t.Errorf("Stage = %v, want Stage 4 Uncanny", found.Stage)
	}
	if found.DifficultyVal.Name != "Hard" {
		t.Errorf("Difficulty = %v, want Hard", found.DifficultyVal)
	}
	if found.Attempts() != 42 || found.HighScore() != 999999 {
		t.Errorf("practice score = %+v", found)
	}
	if found.ShotTypeValue.Name != "Marisa" {
		t.Errorf("ShotType = %v, want Marisa", found.ShotTypeValue)
	}
}

func TestDecodeSegmentDispatch(t *testing.T) {
	var arrays [6][13]uint32
	catkBody := buildSpellCardBody(0, 0, arrays)
	catk := segment.Segment{Signature: [4]byte{'C', 'A', 'T', 'K'}, Body: catkBody}
	rec, err := decodeSegment(catk)
	if err != nil {
		t.Fatalf("decodeSegment(CATK): %v", err)
	}
	if rec.Kind != KindSpellCard {
		t.Errorf("CATK kind = %v, want KindSpellCard", rec.Kind)
	}

	var playCounts, highScores [45]uint32
	pscrBody := buildPracticeDataBody(0, playCounts, highScores)
	pscr := segment.Segment{Signature: [4]byte{'P', 'S', 'C', 'R'}, Body: pscrBody}
	rec, err = decodeSegment(pscr)
	if err != nil {
		t.Fatalf("decodeSegment(PSCR): %v", err)
	}
	if rec.Kind != KindPracticeScore || len(rec.PracticeScores) != 45 {
		t.Errorf("PSCR record = %+v", rec)
	}

	unknownBody := make([]byte, 16)
	foo := segment.Segment{Signature: [4]byte{'F', 'O', 'O', '_'}, Size1: 24, Body: unknownBody}
	rec, err = decodeSegment(foo)
	if err != nil {
		t.Fatalf("decodeSegment(FOO_): %v", err)
	}
	if rec.Kind != KindRaw || len(rec.Raw.Body) != 16 {
		t.Errorf("FOO_ record = %+v", rec)
	}
}
