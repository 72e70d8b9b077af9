package th07

import (
	"github.com/hakurei-works/thstat/location"
	th07mem "github.com/hakurei-works/thstat/memory/th07"
)

// bossState adapts a memory/th07.BossState to this package's BossQuery.
type bossState struct {
	state *th07mem.BossState
}

func (b bossState) RemainingLifebars() uint8 {
	return b.state.RemainingLifebars
}

func (b bossState) ActiveSpellID() (uint32, bool) {
	if b.state.ActiveSpell == nil {
		return 0, false
	}
	return uint32(b.state.ActiveSpell.Spell), true
}

// ResolveFromMemory resolves a location directly from the state-model
// builder's own StageState, sparing callers from hand-building a
// BossQuery themselves.
func ResolveFromMemory(stage *th07mem.StageState) (location.Location, bool) {
	if stage.BossState == nil {
		return Resolve(stage.Stage, stage.EclTime, nil)
	}
	return Resolve(stage.Stage, stage.EclTime, bossState{state: stage.BossState})
}
