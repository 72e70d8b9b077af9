/*

Package th07 reads the live memory of a running Perfect Cherry Blossom
process: a binding table of pointer-chain fields (§6.2), and the
GameState/RunState/PlayerState/BossState/StageState builders (§4.8) that
turn one snapshot of those fields into a value model.

*/
package th07

import (
	"github.com/hakurei-works/thstat/memory"
)

// ProcessNamePrefixes identifies a running Perfect Cherry Blossom process
// by its executable's file stem (§6.3).
var ProcessNamePrefixes = []string{"th07"}

// MemoryAccess holds one pointer-chain Field per tracked quantity,
// constructed once when a process is attached. The offsets below
// transcribe the game's known binding table (§6.2) verbatim, including
// ecl_time's second "offset" -- a second absolute address rather than a
// small displacement, which is what the source itself declares.
type MemoryAccess struct {
	Stage            memory.Field[uint32]
	MenuState        memory.Field[uint32]
	GameState        memory.Field[uint32]
	GameMode         memory.Field[uint8]
	Difficulty       memory.Field[uint32]
	EclTime          memory.Field[uint32]
	SpellActive      memory.Field[uint32]
	SpellCaptured    memory.Field[uint32]
	CurrentSpellID   memory.Field[uint32]
	BossFlag         memory.Field[uint32]
	MidbossFlag      memory.Field[uint8]
	BossID           memory.Field[uint8]
	BossHealthbars   memory.Field[uint32]
	PlayerCharacter  memory.Field[uint8]
	PlayerLives      memory.Field[float32]
	PlayerBombs      memory.Field[float32]
	PlayerPower      memory.Field[float32]
	PlayerMisses     memory.Field[float32]
	PlayerBombsUsed  memory.Field[float32]
	PlayerContinues  memory.Field[uint8]
	BorderState      memory.Field[uint8]
	Score            memory.Field[uint32]
	Graze            memory.Field[uint32]
	CherryBase       memory.Field[uint32]
	Cherry           memory.Field[uint32]
	CherryMax        memory.Field[uint32]
	CherryPlus       memory.Field[uint32]
}

// NewMemoryAccess constructs the fixed binding table. It never fails: no
// process interaction happens until a field is actually read.
func NewMemoryAccess() *MemoryAccess {
	return &MemoryAccess{
		Stage:           memory.NewU32Field(0x0062f85c),
		MenuState:       memory.NewU32Field(0x004b9e44, 0x0c),
		GameState:       memory.NewU32Field(0x00575aa8),
		GameMode:        memory.NewU8Field(0x0062f648),
		Difficulty:      memory.NewU32Field(0x00626280),
		EclTime:         memory.NewU32Field(0x009a9af8, 0x009545fc),
		SpellActive:     memory.NewU32Field(0x012fe0c8),
		SpellCaptured:   memory.NewU32Field(0x012fe0c4),
		CurrentSpellID:  memory.NewU32Field(0x012fe0d8),
		BossFlag:        memory.NewU32Field(0x0049fc14),
		MidbossFlag:     memory.NewU8Field(0x009b655a),
		BossID:          memory.NewU8Field(0x009b1879),
		BossHealthbars:  memory.NewU32Field(0x0049fc08),
		PlayerCharacter: memory.NewU8Field(0x0062f647),
		PlayerLives:     memory.NewF32Field(0x00626278, 0x5c),
		PlayerBombs:     memory.NewF32Field(0x00626278, 0x68),
		PlayerPower:     memory.NewF32Field(0x00626278, 0x7c),
		PlayerMisses:    memory.NewF32Field(0x00626278, 0x50),
		PlayerBombsUsed: memory.NewF32Field(0x00626278, 0x6c),
		PlayerContinues: memory.NewU8Field(0x00626278, 0x20),
		BorderState:     memory.NewU8Field(0x004bfee5),
		Score:           memory.NewU32Field(0x00626278, 0x04),
		Graze:           memory.NewU32Field(0x00626278, 0x18),
		CherryBase:      memory.NewU32Field(0x00626278, 0x88),
		Cherry:          memory.NewU32Field(0x0062f88c),
		CherryMax:       memory.NewU32Field(0x0062f888),
		CherryPlus:      memory.NewU32Field(0x0062f890),
	}
}

// Snapshot is every tracked field's value read in a single atomic pass.
// All later validation (ranges, enum decoding, invariants) runs against
// a Snapshot, never against individual live field reads (§4.7).
type Snapshot struct {
	Stage           uint32
	MenuState       uint32
	GameState       uint32
	GameMode        uint8
	Difficulty      uint32
	EclTime         uint32
	SpellActive     uint32
	SpellCaptured   uint32
	CurrentSpellID  uint32
	BossFlag        uint32
	MidbossFlag     uint8
	BossID          uint8
	BossHealthbars  uint32
	PlayerCharacter uint8
	PlayerLives     float32
	PlayerBombs     float32
	PlayerPower     float32
	PlayerMisses    float32
	PlayerBombsUsed float32
	PlayerContinues uint8
	BorderState     uint8
	Score           uint32
	Graze           uint32
	CherryBase      uint32
	Cherry          uint32
	CherryMax       uint32
	CherryPlus      uint32
}

// ReadSnapshot materializes every field in one pass.
func (m *MemoryAccess) ReadSnapshot(h memory.ProcessHandle) (Snapshot, error) {
	var s Snapshot
	var err error

	if s.Stage, err = m.Stage.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.MenuState, err = m.MenuState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.GameState, err = m.GameState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.GameMode, err = m.GameMode.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Difficulty, err = m.Difficulty.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.EclTime, err = m.EclTime.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.SpellActive, err = m.SpellActive.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.SpellCaptured, err = m.SpellCaptured.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CurrentSpellID, err = m.CurrentSpellID.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossFlag, err = m.BossFlag.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.MidbossFlag, err = m.MidbossFlag.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossID, err = m.BossID.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossHealthbars, err = m.BossHealthbars.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerCharacter, err = m.PlayerCharacter.Read(h); err != nil {
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
	if s.PlayerMisses, err = m.PlayerMisses.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerBombsUsed, err = m.PlayerBombsUsed.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PlayerContinues, err = m.PlayerContinues.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BorderState, err = m.BorderState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Score, err = m.Score.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Graze, err = m.Graze.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CherryBase, err = m.CherryBase.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Cherry, err = m.Cherry.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CherryMax, err = m.CherryMax.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CherryPlus, err = m.CherryPlus.Read(h); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
