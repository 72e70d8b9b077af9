// Package types holds the game-value types shared across every supported
// title: the closed GameID sum type, the ShotPower domain, and the
// cross-game Any* wrappers used to persist identifiers independent of
// which game produced them. Per-game concrete enums (ShotType, Stage,
// Difficulty, SpellID) live in the types/th07, types/th08 and types/th10
// subpackages.
package types

import "fmt"

// Enum is the common base embedded by every static enumeration value in
// this module and its per-game subpackages.
type Enum struct {
	Name string
}

func (e Enum) String() string { return e.Name }

// UnknownEnum builds an Enum for a raw value outside its declared domain,
// preserving the value in the name rather than discarding it.
func UnknownEnum(id any) Enum {
	return Enum{fmt.Sprintf("Unknown 0x%x", id)}
}
