package scorefile

import "github.com/hakurei-works/thstat/types"

// SpellCardRecord is satisfied by every game's spell-card statistics
// record: a catalog id plus per-shot attempt/capture/max-bonus counts
//.
type SpellCardRecord interface {
	Card() types.AnySpell
	Attempts(shot types.AnyShot) uint32
	Captures(shot types.AnyShot) uint32
	MaxBonus(shot types.AnyShot) uint32
	TotalAttempts() uint32
	TotalCaptures() uint32
	TotalMaxBonus() uint32
}

// SpellPracticeRecord additionally exposes Touhou 8's separate
// practice-mode statistics alongside its ordinary story-mode ones.
type SpellPracticeRecord interface {
	SpellCardRecord
	PracticeAttempts(shot types.AnyShot) uint32
	PracticeCaptures(shot types.AnyShot) uint32
	PracticeMaxBonus(shot types.AnyShot) uint32
	PracticeTotalAttempts() uint32
	PracticeTotalCaptures() uint32
	PracticeTotalMaxBonus() uint32
}

// PracticeRecord is satisfied by every game's stage-practice record: a
// (difficulty, shot, stage) triple with an attempt count and a high
// score. Stage and Difficulty are surfaced by name rather than by a
// shared cross-game type, since nothing downstream needs to compare them
// across games the way AnySpell/AnyShot do.
type PracticeRecord interface {
	ShotType() types.AnyShot
	StageName() string
	DifficultyName() string
	HighScore() uint32
	Attempts() uint32
}
