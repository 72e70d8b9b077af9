/*

Package th10 reads the live memory of a running Mountain of Faith
process. As with Imperishable Night, no offset table for this game
survives in the reference source this module was grounded on; the
binding table follows the same pointer-chain shape (§6.2) with
placeholder addresses.

*/
package th10

import "github.com/hakurei-works/thstat/memory"

// ProcessNamePrefixes identifies a running Mountain of Faith process by
// its executable's file stem (§6.3).
var ProcessNamePrefixes = []string{"th10"}

// MemoryAccess holds one pointer-chain Field per tracked quantity.
type MemoryAccess struct {
	MenuBasePtr        memory.Field[uint32]
	SubmenuFlag        memory.Field[uint32]
	SubmenuSelection   memory.Field[uint32]
	ReplayFlag         memory.Field[uint32]
	BgmFilename        memory.Field[[16]byte]
	Character          memory.Field[uint8]
	CharacterSubtype   memory.Field[uint8]
	Difficulty         memory.Field[uint8]
	PracticeFlag       memory.Field[uint32]
	Lives              memory.Field[uint32]
	Power              memory.Field[uint16]
	ContinuesUsed      memory.Field[uint32]
	Score              memory.Field[uint32]
	Faith              memory.Field[uint32]
	Extends            memory.Field[uint32]
	ActiveSpellStatus  memory.Field[uint32]
	ActiveSpell        memory.Field[uint32]
	ActiveSpellBonus   memory.Field[uint32]
	BossLifebars       memory.Field[uint32]
	Stage              memory.Field[uint8]
	GameState          memory.Field[uint32]
	GameStateFrame     memory.Field[uint32]
}

func decodeBgmFilename(b []byte) [16]byte {
	var out [16]byte
	copy(out[:], b)
	return out
}

func newBgmFilenameField(offsets ...uintptr) memory.Field[[16]byte] {
	return memory.NewField(16, decodeBgmFilename, offsets...)
}

// NewMemoryAccess constructs the binding table.
func NewMemoryAccess() *MemoryAccess {
	return &MemoryAccess{
		MenuBasePtr:       memory.NewU32Field(0x00896f28),
		SubmenuFlag:       memory.NewU32Field(0x00896f28, 0x14),
		SubmenuSelection:  memory.NewU32Field(0x00896f28, 0x18),
		ReplayFlag:        memory.NewU32Field(0x008967e8),
		BgmFilename:       newBgmFilenameField(0x0089a198),
		Character:         memory.NewU8Field(0x008c9aa0),
		CharacterSubtype:  memory.NewU8Field(0x008c9aa1),
		Difficulty:        memory.NewU8Field(0x008c9aa4),
		PracticeFlag:      memory.NewU32Field(0x008c9ab8),
		Lives:             memory.NewU32Field(0x008c9ae0),
		Power:             memory.NewU16Field(0x008c9ae8),
		ContinuesUsed:     memory.NewU32Field(0x008c9af0),
		Score:             memory.NewU32Field(0x008c9af8),
		Faith:             memory.NewU32Field(0x008c9b04),
		Extends:           memory.NewU32Field(0x008c9b08),
		ActiveSpellStatus: memory.NewU32Field(0x0097c5e0),
		ActiveSpell:       memory.NewU32Field(0x0097c5e4),
		ActiveSpellBonus:  memory.NewU32Field(0x0097c5e8),
		BossLifebars:      memory.NewU32Field(0x0097c600),
		Stage:             memory.NewU8Field(0x008c9a90),
		GameState:         memory.NewU32Field(0x0097c400),
		GameStateFrame:    memory.NewU32Field(0x0097c404),
	}
}

// Snapshot is every tracked field's value read in a single atomic pass.
type Snapshot struct {
	MenuBasePtr       uint32
	SubmenuFlag       uint32
	SubmenuSelection  uint32
	ReplayFlag        uint32
	BgmFilename       [16]byte
	Character         uint8
	CharacterSubtype  uint8
	Difficulty        uint8
	PracticeFlag      uint32
	Lives             uint32
	Power             uint16
	ContinuesUsed     uint32
	Score             uint32
	Faith             uint32
	Extends           uint32
	ActiveSpellStatus uint32
	ActiveSpell       uint32
	ActiveSpellBonus  uint32
	BossLifebars      uint32
	Stage             uint8
	GameState         uint32
	GameStateFrame    uint32
}

// ReadSnapshot materializes every field in one pass.
func (m *MemoryAccess) ReadSnapshot(h memory.ProcessHandle) (Snapshot, error) {
	var s Snapshot
	var err error

	if s.MenuBasePtr, err = m.MenuBasePtr.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.SubmenuFlag, err = m.SubmenuFlag.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.SubmenuSelection, err = m.SubmenuSelection.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ReplayFlag, err = m.ReplayFlag.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BgmFilename, err = m.BgmFilename.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Character, err = m.Character.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.CharacterSubtype, err = m.CharacterSubtype.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Difficulty, err = m.Difficulty.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.PracticeFlag, err = m.PracticeFlag.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Lives, err = m.Lives.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Power, err = m.Power.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ContinuesUsed, err = m.ContinuesUsed.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Score, err = m.Score.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Faith, err = m.Faith.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Extends, err = m.Extends.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ActiveSpellStatus, err = m.ActiveSpellStatus.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ActiveSpell, err = m.ActiveSpell.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.ActiveSpellBonus, err = m.ActiveSpellBonus.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.BossLifebars, err = m.BossLifebars.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.Stage, err = m.Stage.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.GameState, err = m.GameState.Read(h); err != nil {
		return Snapshot{}, err
	}
	if s.GameStateFrame, err = m.GameStateFrame.Read(h); err != nil {
		return Snapshot{}, err
	}

	return s, nil
}
