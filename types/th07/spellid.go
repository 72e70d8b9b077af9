package th07

import "github.com/hakurei-works/thstat/types"

// SpellID is a validated, 1-based spell card identifier.
type SpellID uint16

// NewSpellID validates raw against the catalog and returns a SpellID.
func NewSpellID(raw uint16) (SpellID, error) {
	if _, err := SpellByID(raw); err != nil {
		return 0, err
	}
	return SpellID(raw), nil
}

// Info returns the catalog entry this SpellID identifies. It never
// returns an error: a SpellID can only be constructed from a raw value
// that NewSpellID already validated.
func (id SpellID) Info() *SpellCardInfo {
	c, _ := SpellByID(uint16(id))
	return c
}

// Any wraps id as a cross-game types.AnySpell.
func (id SpellID) Any() types.AnySpell {
	return types.AnySpell{Game: types.PCB, RawID: uint32(id)}
}
