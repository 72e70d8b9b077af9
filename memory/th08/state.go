package th08

import (
	"fmt"

	"github.com/hakurei-works/thstat/memory"
	"github.com/hakurei-works/thstat/types"
	th08types "github.com/hakurei-works/thstat/types/th08"
)

// game_mode's bit layout: practice (0x01), demo (0x02), unpaused (0x04),
// replay (0x08), cleared (0x10), and a wider spell-practice flag spanning
// 0x0180 plus an independent 0x4000 bit -- the two-game-mode OR Touhou 8
// itself uses to flag spell practice regardless of which of its two
// spell-practice entry points was used.
const (
	modePractice       = 0x01
	modeReplay         = 0x08
	modeCleared        = 0x10
	modeUnpaused       = 0x04
	modeSpellPractice  = 0x0180
	modeSpellPractice2 = 0x4000
)

func floatToRangedU8(value float32, field string, max uint8) (uint8, error) {
	if value < 0 || value > float32(max) {
		return 0, &types.FieldError{Kind: types.ErrInvalidFloat, Game: types.IN, Field: field, Value: value, Range: fmt.Sprintf("0..=%d", max)}
	}
	return uint8(value), nil
}

// PlayerState is the player-character half of a running-game snapshot.
type PlayerState struct {
	ShotType      *th08types.ShotType
	Difficulty    *th08types.Difficulty
	Lives         uint8
	Bombs         uint8
	Power         types.Gen1Power
	ContinuesUsed uint8
	TotalMisses   uint32
	TotalBombs    uint32
	Score         uint64
	Gauge         uint16
	Value         uint32
	Night         uint8
	Time          uint32
}

// NewPlayerState validates and builds a PlayerState from a snapshot.
func NewPlayerState(snap Snapshot) (PlayerState, error) {
	shotType, err := th08types.ShotTypeByID(snap.Character)
	if err != nil {
		return PlayerState{}, err
	}
	difficulty, err := th08types.DifficultyByID(snap.Difficulty)
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

	return PlayerState{
		ShotType:      shotType,
		Difficulty:    difficulty,
		Lives:         lives,
		Bombs:         bombs,
		Power:         power,
		ContinuesUsed: snap.ContinuesUsed,
		TotalMisses:   snap.Misses,
		TotalBombs:    snap.BombsUsed,
		Score:         uint64(snap.Score1),
		Gauge:         snap.Gauge,
		Value:         snap.Value,
		Night:         snap.Night,
		Time:          snap.Time1,
	}, nil
}

// BossState is the currently-active boss encounter, if any.
type BossState struct {
	RemainingLifebars uint32
	ActiveSpell       *memory.SpellState[th08types.SpellID]
}

// readActiveSpell mirrors Self::read_active_spell: bit 0 of cur_spell_state
// marks a spell active, bit 2 marks it captured (or on track to be).
func readActiveSpell(snap Snapshot) (*memory.SpellState[th08types.SpellID], bool) {
	if snap.CurSpellState&1 == 0 {
		return nil, false
	}

	rawID := snap.CurSpellID + 1
	if rawID > 0xFFFF {
		return nil, true
	}
	spellID, err := th08types.NewSpellID(uint16(rawID))
	if err != nil {
		return nil, true
	}

	captured := snap.CurSpellState&4 != 0
	spell := memory.NewSpellState(spellID, captured)
	return &spell, false
}

// NewBossState builds a BossState from a snapshot. The bool result
// reports whether the spell-active flag was set but its id could not be
// resolved -- a non-fatal condition the caller should log.
func NewBossState(snap Snapshot) (BossState, bool) {
	spell, warned := readActiveSpell(snap)
	return BossState{RemainingLifebars: snap.BossHealthbars, ActiveSpell: spell}, warned
}

// StageState is the active stage's progress within a run.
type StageState struct {
	Stage     *th08types.Stage
	Frame     uint32
	BossState *BossState
}

// NewStageState builds a StageState from a snapshot.
func NewStageState(snap Snapshot) (StageState, error) {
	stage, err := th08types.StageByID(snap.Stage)
	if err != nil {
		return StageState{}, err
	}

	ss := StageState{Stage: stage, Frame: snap.Frame}
	if snap.BossActive != 0 {
		boss, _ := NewBossState(snap)
		ss.BossState = &boss
	}

	return ss, nil
}

// RunState bundles the difficulty, player and stage state for a run in
// progress.
type RunState struct {
	Difficulty *th08types.Difficulty
	Player     PlayerState
	Stage      StageState
	Paused     bool
}

// NewRunState builds a RunState from a snapshot.
func NewRunState(snap Snapshot) (RunState, error) {
	difficulty, err := th08types.DifficultyByID(snap.Difficulty)
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
	}, nil
}

// RunKind distinguishes the three ways a game-memory run can be entered.
type RunKind int

const (
	RunMain RunKind = iota
	RunStagePractice
	RunSpellPractice
)

// GameType is a RunState tagged with which of the three run kinds
// produced it. Only the field matching Kind is populated.
type GameType struct {
	Kind          RunKind
	Run           RunState                              // RunMain, RunStagePractice
	SpellPractice PlayerState                            // RunSpellPractice
	ActiveSpell   memory.SpellState[th08types.SpellID]   // RunSpellPractice
	SpellPaused   bool                                   // RunSpellPractice
}

// GameStateKind is the top-level GameState variant.
type GameStateKind int

const (
	KindPlayerData GameStateKind = iota
	KindMusicRoom
	KindGameStartMenu
	KindPracticeStartMenu
	KindUnknownMenu
	KindInGame
	KindInReplay
	KindReplayEnded
	KindGameOver
	KindLoadingStage
	KindRetryingGame
	KindUnknown
)

// GameState is the sum type every poll tick resolves to.
type GameState struct {
	Kind         GameStateKind
	MenuStateRaw uint32 // KindUnknownMenu
	Game         *GameType
	Demo         bool // KindInReplay
	Paused       bool // KindInGame, KindInReplay
	Cleared      bool // KindGameOver
	StateID      uint32
	ModeRaw      uint32
}

// RunIsActive reports whether the attached process currently has a
// trackable run in progress.
func RunIsActive(snap Snapshot) bool {
	mode := snap.GameMode
	replay := mode&modeReplay != 0
	spellPractice := mode&modeSpellPractice != 0 || mode&modeSpellPractice2 != 0
	state := snap.ProgramState
	return (state == 2 || state == 3 || state == 10) && !replay && !spellPractice
}

func buildGameType(snap Snapshot, mode uint32, practice, paused bool) (GameType, error) {
	spellPractice := mode&modeSpellPractice != 0 || mode&modeSpellPractice2 != 0

	if spellPractice {
		spell, _ := readActiveSpell(snap)
		if spell == nil {
			return GameType{}, &types.FieldError{Kind: types.ErrInvalidOther, Game: types.IN, Field: "cur_spell_state", Value: snap.CurSpellState}
		}
		player, err := NewPlayerState(snap)
		if err != nil {
			return GameType{}, err
		}
		return GameType{Kind: RunSpellPractice, SpellPractice: player, ActiveSpell: *spell, SpellPaused: paused}, nil
	}

	run, err := NewRunState(snap)
	if err != nil {
		return GameType{}, err
	}
	if practice {
		return GameType{Kind: RunStagePractice, Run: run}, nil
	}
	return GameType{Kind: RunMain, Run: run}, nil
}

// NewGameState builds a GameState from a snapshot per the decision table
// this game's source encodes in GameState::new.
func NewGameState(snap Snapshot) (GameState, error) {
	mode := snap.GameMode
	practice := mode&modePractice != 0
	demo := mode&0x02 != 0
	paused := mode&modeUnpaused == 0
	replay := mode&modeReplay != 0
	cleared := mode&modeCleared != 0

	switch state := snap.ProgramState; state {
	case 1:
		switch snap.MenuState {
		case 8:
			return GameState{Kind: KindMusicRoom}, nil
		case 5:
			return GameState{Kind: KindPlayerData}, nil
		case 1:
			if practice {
				return GameState{Kind: KindPracticeStartMenu}, nil
			}
			return GameState{Kind: KindGameStartMenu}, nil
		default:
			return GameState{Kind: KindUnknownMenu, MenuStateRaw: snap.MenuState}, nil
		}

	case 2:
		game, err := buildGameType(snap, mode, practice, paused)
		if err != nil {
			return GameState{}, err
		}
		if replay {
			return GameState{Kind: KindInReplay, Game: &game, Demo: demo, Paused: paused}, nil
		}
		return GameState{Kind: KindInGame, Game: &game, Paused: paused}, nil

	case 3:
		return GameState{Kind: KindLoadingStage}, nil

	case 6, 7, 9:
		if replay {
			return GameState{Kind: KindReplayEnded}, nil
		}
		game, err := buildGameType(snap, mode, practice, paused)
		if err != nil {
			return GameState{}, err
		}
		return GameState{Kind: KindGameOver, Game: &game, Cleared: cleared}, nil

	case 10:
		return GameState{Kind: KindRetryingGame}, nil

	case 5, 8, 11, 12:
		return GameState{Kind: KindUnknown, StateID: state, ModeRaw: mode}, nil

	case 0xFFFFFFFF:
		return GameState{}, &types.FieldError{Kind: types.ErrNotConnected, Game: types.IN, Field: "program_state", Value: state}

	default:
		return GameState{}, &types.FieldError{Kind: types.ErrInvalidOther, Game: types.IN, Field: "program_state", Value: state}
	}
}
