package th07

import (
	"fmt"

	"github.com/hakurei-works/thstat/memory"
	"github.com/hakurei-works/thstat/types"
	th07types "github.com/hakurei-works/thstat/types/th07"
)

// gameModeFlags. The binding table (§6.2) only names game_mode's offset,
// not its bit layout; Touhou 8's own memory reader documents this same
// generation's mode byte explicitly (practice/demo/pause/replay/cleared
// in bits 0-4), so these constants extend that layout to Touhou 7 by
// analogy rather than from a Touhou-7-specific source.
const (
	modePractice = 0x01
	modeDemo     = 0x02
	modeUnpaused = 0x04
	modeReplay   = 0x08
	modeCleared  = 0x10
)

func floatToRangedU8(value float32, field string, max uint8) (uint8, error) {
	if value < 0 || value > float32(max) {
		return 0, &types.FieldError{
			Kind:  types.ErrInvalidFloat,
			Game:  types.PCB,
			Field: field,
			Value: value,
			Range: fmt.Sprintf("0..=%d", max),
		}
	}
	return uint8(value), nil
}

// PlayerState is the player-character half of a running-game snapshot
// (§3.2).
type PlayerState struct {
	ShotType      *th07types.ShotType
	Difficulty    *th07types.Difficulty
	Lives         uint8
	Bombs         uint8
	Power         types.Gen1Power
	ContinuesUsed uint8
	TotalMisses   uint32
	TotalBombs    uint32
	Score         uint64
	Graze         uint32
	BorderActive  bool
	CherryBase    uint32
	Cherry        uint32
	CherryMax     uint32
	CherryPlus    uint32
}

// NewPlayerState validates and builds a PlayerState from a snapshot.
func NewPlayerState(snap Snapshot) (PlayerState, error) {
	if snap.PlayerCharacter > 255 {
		return PlayerState{}, &types.FieldError{Kind: types.ErrInvalidShotType, Game: types.PCB, Field: "player_character", Value: snap.PlayerCharacter}
	}
	shotType, err := th07types.ShotTypeByID(snap.PlayerCharacter)
	if err != nil {
		return PlayerState{}, err
	}

	if snap.Difficulty > 255 {
		return PlayerState{}, &types.FieldError{Kind: types.ErrInvalidDifficulty, Game: types.PCB, Field: "difficulty", Value: snap.Difficulty}
	}
	difficulty, err := th07types.DifficultyByID(uint8(snap.Difficulty))
	if err != nil {
		return PlayerState{}, err
	}

	lives, err := floatToRangedU8(snap.PlayerLives, "lives", 8)
	if err != nil {
		return PlayerState{}, err
	}
	bombs, err := floatToRangedU8(snap.PlayerBombs, "bombs", 8)
	if err != nil {
		return PlayerState{}, err
	}
	rawPower, err := floatToRangedU8(snap.PlayerPower, "power", 128)
	if err != nil {
		return PlayerState{}, err
	}
	power, err := types.NewGen1Power(rawPower)
	if err != nil {
		return PlayerState{}, err
	}

	continuesUsed, err := floatRangedOrByte(snap.PlayerContinues, "continues", 5)
	if err != nil {
		return PlayerState{}, err
	}

	return PlayerState{
		ShotType:      shotType,
		Difficulty:    difficulty,
		Lives:         lives,
		Bombs:         bombs,
		Power:         power,
		ContinuesUsed: continuesUsed,
		TotalMisses:   uint32(snap.PlayerMisses),
		TotalBombs:    uint32(snap.PlayerBombsUsed),
		Score:         uint64(snap.Score),
		Graze:         snap.Graze,
		BorderActive:  snap.BorderState != 0,
		CherryBase:    snap.CherryBase,
		Cherry:        snap.Cherry,
		CherryMax:     snap.CherryMax,
		CherryPlus:    snap.CherryPlus,
	}, nil
}

func floatRangedOrByte(raw uint8, field string, max uint8) (uint8, error) {
	if raw > max {
		return 0, &types.FieldError{Kind: types.ErrInvalidOther, Game: types.PCB, Field: field, Value: raw, Range: fmt.Sprintf("0..=%d", max)}
	}
	return raw, nil
}

// BossState is the currently-active boss encounter, if any (§3.2).
type BossState struct {
	RemainingLifebars uint8
	ActiveSpell       *memory.SpellState[th07types.SpellID]
}

// NewBossState builds a BossState from a snapshot. If the "spell active"
// flag is set but the spell id is out of range, ActiveSpell is left nil
// and the caller is expected to surface a warning rather than treat this
// as fatal (§4.8).
func NewBossState(snap Snapshot) (BossState, bool) {
	bs := BossState{RemainingLifebars: uint8(snap.BossHealthbars)}

	warned := false
	if snap.SpellActive != 0 {
		rawID := snap.CurrentSpellID + 1
		if rawID > 0xFFFF {
			warned = true
		} else {
			spellID, err := th07types.NewSpellID(uint16(rawID))
			if err != nil {
				warned = true
			} else {
				captured := snap.SpellCaptured != 0
				spell := memory.NewSpellState(spellID, captured)
				bs.ActiveSpell = &spell
			}
		}
	}

	return bs, warned
}

// StageState is the active stage's progress within a run (§3.2).
type StageState struct {
	Stage     *th07types.Stage
	EclTime   uint32
	BossState *BossState
}

// NewStageState builds a StageState from a snapshot.
func NewStageState(snap Snapshot) (StageState, error) {
	if snap.Stage > 255 {
		return StageState{}, &types.FieldError{Kind: types.ErrInvalidStage, Game: types.PCB, Field: "stage", Value: snap.Stage}
	}
	stage, err := th07types.StageByID(uint8(snap.Stage))
	if err != nil {
		return StageState{}, err
	}

	ss := StageState{Stage: stage, EclTime: snap.EclTime}
	if snap.BossFlag != 0 {
		boss, _ := NewBossState(snap)
		ss.BossState = &boss
	}

	return ss, nil
}

// RunState bundles the difficulty, player and stage state for a run in
// progress (§3.2).
type RunState struct {
	Difficulty *th07types.Difficulty
	Player     PlayerState
	Stage      StageState
	Paused     bool
	Practice   bool
}

// NewRunState builds a RunState from a snapshot.
func NewRunState(snap Snapshot) (RunState, error) {
	if snap.Difficulty > 255 {
		return RunState{}, &types.FieldError{Kind: types.ErrInvalidDifficulty, Game: types.PCB, Field: "difficulty", Value: snap.Difficulty}
	}
	difficulty, err := th07types.DifficultyByID(uint8(snap.Difficulty))
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
		Player:     player,
		Stage:      stage,
		Paused:     snap.GameMode&modeUnpaused == 0,
		Practice:   snap.GameMode&modePractice != 0,
	}, nil
}

// MenuKind distinguishes the sub-screens reachable from program_state 1.
type MenuKind int

const (
	MenuMusicRoom MenuKind = iota
	MenuPlayerData
	MenuPracticeStart
	MenuGameStart
	MenuUnknown
)

// GameStateKind is the top-level GameState variant (§4.8's decision
// table).
type GameStateKind int

const (
	KindInMenu GameStateKind = iota
	KindTitleScreen
	KindInReplay
	KindInGame
	KindLoadingStage
	KindReplayEnded
	KindGameOver
	KindRetryingGame
	KindUnknown
)

// GameState is the sum type every poll tick resolves to (§3.2, §4.8).
// Only one subset of its fields is meaningful for a given Kind: Menu and
// MenuStateRaw under KindInMenu, Run under KindInGame/KindInReplay/
// KindGameOver, Cleared under KindGameOver, StateID/ModeRaw under
// KindUnknown.
type GameState struct {
	Kind         GameStateKind
	Menu         MenuKind
	MenuStateRaw uint32
	Run          *RunState
	Cleared      bool
	StateID      uint32
	ModeRaw      uint32
}

// RunIsActive reports whether the attached process currently has a run
// in progress worth constructing a tracker for (the T2 driver's
// "WaitingForGame" query).
func RunIsActive(snap Snapshot) bool {
	replay := snap.GameMode&modeReplay != 0
	state := snap.GameState
	return (state == 2 || state == 3 || state == 10) && !replay
}

// NewGameState builds a GameState from a snapshot per §4.8's decision
// table.
func NewGameState(snap Snapshot) (GameState, error) {
	mode := snap.GameMode
	practice := mode&modePractice != 0
	replay := mode&modeReplay != 0
	cleared := mode&modeCleared != 0

	switch state := snap.GameState; state {
	case 1:
		switch snap.MenuState {
		case 35:
			return GameState{Kind: KindInMenu, Menu: MenuMusicRoom}, nil
		case 47:
			return GameState{Kind: KindInMenu, Menu: MenuPlayerData}, nil
		case 129:
			if practice {
				return GameState{Kind: KindInMenu, Menu: MenuPracticeStart}, nil
			}
			return GameState{Kind: KindInMenu, Menu: MenuGameStart}, nil
		case 130:
			return GameState{Kind: KindTitleScreen}, nil
		default:
			return GameState{Kind: KindInMenu, Menu: MenuUnknown, MenuStateRaw: snap.MenuState}, nil
		}

	case 2:
		run, err := NewRunState(snap)
		if err != nil {
			return GameState{}, err
		}
		if replay {
			return GameState{Kind: KindInReplay, Run: &run}, nil
		}
		return GameState{Kind: KindInGame, Run: &run}, nil

	case 3:
		return GameState{Kind: KindLoadingStage}, nil

	case 6, 7, 9:
		if replay {
			return GameState{Kind: KindReplayEnded}, nil
		}
		run, err := NewRunState(snap)
		if err != nil {
			return GameState{}, err
		}
		return GameState{Kind: KindGameOver, Run: &run, Cleared: cleared}, nil

	case 10:
		return GameState{Kind: KindRetryingGame}, nil

	case 5, 8, 11, 12:
		return GameState{Kind: KindUnknown, StateID: state, ModeRaw: uint32(mode)}, nil

	case 0xFFFFFFFF:
		return GameState{}, &types.FieldError{Kind: types.ErrNotConnected, Game: types.PCB, Field: "program_state", Value: state}

	default:
		return GameState{}, &types.FieldError{Kind: types.ErrInvalidOther, Game: types.PCB, Field: "program_state", Value: state}
	}
}
