/*

Package th08 reads the live memory of a running Imperishable Night
process. No offset table for this game survives in the reference source
this module was grounded on (only its state-builder logic does); the
binding table below follows the same pointer-chain shape Perfect Cherry
Blossom's table uses (§6.2: "Game 8 and game 10 tables follow the same
shape with game-specific offsets") with placeholder addresses a real
binding would replace.

*/
package th08

import "github.com/hakurei-works/thstat/memory"

// ProcessNamePrefixes identifies a running Imperishable Night process by
// its executable's file stem (§6.3).
var ProcessNamePrefixes = []string{"th08"}

// MemoryAccess holds one pointer-chain Field per tracked quantity.
type MemoryAccess struct {
	ProgramState   memory.Field[uint32]
	MenuState      memory.Field[uint32]
	GameMode       memory.Field[uint32]
	Character      memory.Field[uint8]
	Difficulty     memory.Field[uint8]
	PlayerLives    memory.Field[float32]
	PlayerBombs    memory.Field[float32]
	PlayerPower    memory.Field[float32]
	ContinuesUsed  memory.Field[uint8]
	Misses         memory.Field[uint32]
	BombsUsed      memory.Field[uint32]
	Score1         memory.Field[uint32]
	Gauge          memory.Field[uint16]
	Value          memory.Field[uint32]
	Night          memory.Field[uint8]
	Time1          memory.Field[uint32]
	CurSpellState  memory.Field[uint32]
	CurSpellID     memory.Field[uint32]
	BossHealthbars memory.Field[uint32]
	BossActive     memory.Field[uint32]
	Stage          memory.Field[uint8]
	Frame          memory.Field[uint32]
}

// NewMemoryAccess constructs the binding table.
func NewMemoryAccess() *MemoryAccess {
	return &MemoryAccess{
		ProgramState:   memory.NewU32Field(0x00575ac8),
		MenuState:      memory.NewU32Field(0x004b9e64, 0x0c),
		GameMode:       memory.NewU32Field(0x0062fa48),
		Character:      memory.NewU8Field(0x0062fa47),
		Difficulty:     memory.NewU8Field(0x00626290),
		PlayerLives:    memory.NewF32Field(0x00626298, 0x5c),
		PlayerBombs:    memory.NewF32Field(0x00626298, 0x68),
		PlayerPower:    memory.NewF32Field(0x00626298, 0x7c),
		ContinuesUsed:  memory.NewU8Field(0x00626298, 0x20),
		Misses:         memory.NewU32Field(0x00626298, 0x50),
		BombsUsed:      memory.NewU32Field(0x00626298, 0x6c),
		Score1:         memory.NewU32Field(0x00626298, 0x04),
		Gauge:          memory.NewU16Field(0x00626298, 0x90),
		Value:          memory.NewU32Field(0x00626298, 0x94),
		Night:          memory.NewU8Field(0x00626298, 0x98),
		Time1:          memory.NewU32Field(0x00626298, 0x9c),
		CurSpellState:  memory.NewU32Field(0x012fe0e8),
		CurSpellID:     memory.NewU32Field(0x012fe0ec),
		BossHealthbars: memory.NewU32Field(0x0049fc28),
		BossActive:     memory.NewU32Field(0x0049fc34),
		Stage:          memory.NewU8Field(0x0062fa5c),
		Frame:          memory.NewU32Field(0x009a9b18),
	}
}

// Snapshot is every tracked field's value read in a single atomic pass.
type Snapshot struct {
	ProgramState   uint32
	MenuState      uint32
	GameMode       uint32
	Character      uint8
	Difficulty     uint8
	PlayerLives    float32
	PlayerBombs    float32
	PlayerPower    float32
	ContinuesUsed  uint8
	Misses         uint32
	BombsUsed      uint32
	Score1         uint32
	Gauge          uint16
	Value          uint32
	Night          uint8
	Time1          uint32
	CurSpellState  uint32
	CurSpellID     uint32
	BossHealthbars uint32
	BossActive     uint32
	Stage          uint8
	Frame          uint32
}

// ReadSnapshot materializes every field in one pass.
func (m *MemoryAccess) ReadSnapshot(h memory.ProcessHandle) (Snapshot, error) {
	var s Snapshot
	var err error

	if s.ProgramState, err = m.ProgramState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.MenuState, err = m.MenuState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.GameMode, err = m.GameMode.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Character, err = m.Character.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Difficulty, err = m.Difficulty.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerLives, err = m.PlayerLives.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerBombs, err = m.PlayerBombs.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerPower, err = m.PlayerPower.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ContinuesUsed, err = m.ContinuesUsed.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Misses, err = m.Misses.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BombsUsed, err = m.BombsUsed.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Score1, err = m.Score1.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Gauge, err = m.Gauge.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Value, err = m.Value.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Night, err = m.Night.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Time1, err = m.Time1.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CurSpellState, err = m.CurSpellState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CurSpellID, err = m.CurSpellID.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossHealthbars, err = m.BossHealthbars.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossActive, err = m.BossActive.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Stage, err = m.Stage.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Frame, err = m.Frame.Read(h); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
