package th10

import (
	"github.com/hakurei-works/thstat/memory"
	th10types "github.com/hakurei-works/thstat/types/th10"
)

// practice_flag reads 16 when the run was entered through stage
// practice; anything else (normally 0) is a main run.
const practiceFlagStagePractice = 16

// PlayerState is the player-character half of a running-game snapshot.
type PlayerState struct {
	ShotType      *th10types.ShotType
	Difficulty    *th10types.Difficulty
	Lives         uint32
	Power         uint16
	ContinuesUsed uint32
	Score         uint64
	Faith         uint32
	Extends       uint32
}

// NewPlayerState validates and builds a PlayerState from a snapshot.
// Mountain of Faith encodes the shot type as a (character, subtype)
// pair rather than one flat id, so the two raw bytes are combined
// through FromCharacterAndSubtype.
func NewPlayerState(snap Snapshot) (PlayerState, error) {
	shotType, err := th10types.FromCharacterAndSubtype(snap.Character, snap.CharacterSubtype)
	if err != nil {
		return PlayerState{}, err
	}
	difficulty, err := th10types.DifficultyByID(snap.Difficulty)
	if err != nil {
		return PlayerState{}, err
	}

	return PlayerState{
		ShotType:      shotType,
		Difficulty:    difficulty,
		Lives:         snap.Lives,
		Power:         snap.Power,
		ContinuesUsed: snap.ContinuesUsed,
		Score:         uint64(snap.Score),
		Faith:         snap.Faith,
		Extends:       snap.Extends,
	}, nil
}

// ActiveSpell is a boss's currently-active spell card plus its faith
// bonus, which Mountain of Faith tracks alongside the capture flag
// rather than resolving it after the fact.
type ActiveSpell struct {
	Spell memory.SpellState[th10types.SpellID]
	Bonus uint32
}

// readActiveSpell mirrors the attached process's active-spell-status
// flag: bit 0 marks a spell active, bit 2 marks it captured.
func readActiveSpell(snap Snapshot) (*ActiveSpell, bool) {
	if snap.ActiveSpellStatus&1 == 0 {
		return nil, false
	}

	rawID := snap.ActiveSpell + 1
	if rawID > 0xFFFF {
		return nil, true
	}
	spellID, err := th10types.NewSpellID(uint16(rawID))
	if err != nil {
		return nil, true
	}

	captured := snap.ActiveSpellStatus&4 != 0
	return &ActiveSpell{Spell: memory.NewSpellState(spellID, captured), Bonus: snap.ActiveSpellBonus}, false
}

// BossState is the currently-active boss encounter, if any.
type BossState struct {
	RemainingLifebars uint32
	ActiveSpell       *ActiveSpell
}

// NewBossState builds a BossState from a snapshot.
func NewBossState(snap Snapshot) (BossState, bool) {
	spell, warned := readActiveSpell(snap)
	return BossState{RemainingLifebars: snap.BossLifebars, ActiveSpell: spell}, warned
}

// ActivityKind distinguishes what part of a stage is currently playing.
type ActivityKind int

const (
	ActivityStageSection ActivityKind = iota
	ActivityStageDialogue
	ActivityPostDialogue
	ActivityMidboss
	ActivityBoss
)

// Activity is the stage's current phase, with BossState populated only
// for ActivityMidboss and ActivityBoss.
type Activity struct {
	Kind      ActivityKind
	BossState *BossState
}

// NewActivity classifies the current stage phase. Stages Two and Four
// suppress their midboss once game_state_frame has passed 900 -- a run
// that starts mid-stage from stage practice never sees a midboss
// encounter at all.
func NewActivity(snap Snapshot, stage *th10types.Stage) (Activity, error) {
	bossActive := snap.BossLifebars > 0 || snap.ActiveSpellStatus&1 != 0

	if bossActive {
		boss, _ := NewBossState(snap)
		if stage.HasMidboss() && snap.GameStateFrame < 900 {
			return Activity{Kind: ActivityMidboss, BossState: &boss}, nil
		}
		return Activity{Kind: ActivityBoss, BossState: &boss}, nil
	}

	return Activity{Kind: ActivityStageSection}, nil
}

// StageState is the active stage's progress within a run.
type StageState struct {
	Stage    *th10types.Stage
	Activity Activity
}

// NewStageState builds a StageState from a snapshot.
func NewStageState(snap Snapshot) (StageState, error) {
	stage, err := th10types.StageByID(snap.Stage)
	if err != nil {
		return StageState{}, err
	}

	activity, err := NewActivity(snap, stage)
	if err != nil {
		return StageState{}, err
	}

	return StageState{Stage: stage, Activity: activity}, nil
}

// RunState bundles the difficulty, player and stage state for a run in
// progress.
type RunState struct {
	Difficulty *th10types.Difficulty
	Practice   bool
	Player     PlayerState
	Stage      StageState
}

// NewRunState builds a RunState from a snapshot.
func NewRunState(snap Snapshot) (RunState, error) {
	difficulty, err := th10types.DifficultyByID(snap.Difficulty)
	if err != nil {
		return RunState{}, err
	}

	player, err := NewPlayerState(snap)
	if err != nil {
		return RunState{}, err
	}

	stage, err := NewStageState(snap)
	if err != nil {
		return RunState{}, err
	}

	return RunState{
		Difficulty: difficulty,
		Practice:   snap.PracticeFlag == practiceFlagStagePractice,
		Player:     player,
		Stage:      stage,
	}, nil
}

// GameMenuKind distinguishes the sub-screens reachable while in a menu.
type GameMenuKind int

const (
	MenuMain GameMenuKind = iota
	MenuSubmenu
	MenuUnknown
)

// GameStateKind is the top-level GameState variant, dispatched by the
// attached process's background-music id rather than a dedicated
// program-state field.
type GameStateKind int

const (
	KindTitleScreen GameStateKind = iota
	KindInMenu
	KindInGame
	KindInReplay
	KindEnding
	KindStaffRoll
	KindGameOver
	KindUnknown
)

// GameState is the sum type every poll tick resolves to.
type GameState struct {
	Kind    GameStateKind
	Menu    GameMenuKind
	Run     *RunState
	BgmID   string
	StateID uint32
}

// gameIsActive mirrors the attached process's own check for whether a
// BGM id corresponds to gameplay music rather than a menu or cutscene
// track.
func gameIsActive(bgm string) bool {
	switch bgm {
	case "th10_01.mid", "th10_02.mid", "th10_03.mid", "th10_04.mid",
		"th10_05.mid", "th10_06.mid", "th10_07.mid", "th10_08.mid",
		"th10_09.mid", "th10_10.mid", "th10_11.mid", "th10_12.mid",
		"th10_14.mid":
		return true
	default:
		return false
	}
}

func bgmFilename(raw [16]byte) string {
	n := 0
	for n < len(raw) && raw[n] != 0 {
		n++
	}
	return string(raw[:n])
}

// RunIsActive reports whether the attached process currently has a
// trackable run in progress.
func RunIsActive(snap Snapshot) bool {
	return gameIsActive(bgmFilename(snap.BgmFilename)) && snap.ReplayFlag == 0
}

// NewGameState builds a GameState from a snapshot. Mountain of Faith
// has no unified program_state field the way Perfect Cherry Blossom and
// Imperishable Night do; state is instead inferred from the currently
// playing BGM track together with the submenu and replay flags.
func NewGameState(snap Snapshot) (GameState, error) {
	bgm := bgmFilename(snap.BgmFilename)
	replay := snap.ReplayFlag != 0

	switch {
	case bgm == "th10_00.mid" || bgm == "":
		if snap.SubmenuFlag != 0 {
			menu := MenuSubmenu
			if snap.SubmenuSelection == 0 {
				menu = MenuMain
			}
			return GameState{Kind: KindInMenu, Menu: menu}, nil
		}
		return GameState{Kind: KindTitleScreen}, nil

	case gameIsActive(bgm):
		run, err := NewRunState(snap)
		if err != nil {
			return GameState{}, err
		}
		if replay {
			return GameState{Kind: KindInReplay, Run: &run, BgmID: bgm}, nil
		}
		return GameState{Kind: KindInGame, Run: &run, BgmID: bgm}, nil

	case bgm == "th10_13.mid":
		return GameState{Kind: KindEnding, BgmID: bgm}, nil

	case bgm == "th10_15.mid":
		return GameState{Kind: KindStaffRoll, BgmID: bgm}, nil

	case bgm == "th10_16.mid":
		return GameState{Kind: KindGameOver, BgmID: bgm}, nil

	default:
		return GameState{Kind: KindUnknown, BgmID: bgm, StateID: snap.GameState}, nil
	}
}
