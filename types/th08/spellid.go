package th08

import "github.com/hakurei-works/thstat/types"

// SpellID is a validated raw spell card identifier.
type SpellID uint16

// NewSpellID validates raw against the catalog and returns a SpellID.
func NewSpellID(raw uint16) (SpellID, error) {
	if _, err := SpellByID(raw); err != nil {
		return 0, err
	}
	return SpellID(raw), nil
}

// Info returns the catalog entry this SpellID identifies.
func (id SpellID) Info() *SpellCardInfo {
	c, _ := SpellByID(uint16(id))
	return c
}

// Any wraps id as a cross-game types.AnySpell.
func (id SpellID) Any() types.AnySpell {
	return types.AnySpell{Game: types.IN, RawID: uint32(id)}
}
