package types

// AnySpell identifies a spell card independent of which game it belongs
// to. It stores the owning game alongside the game's own 1-based spell id
// and round-trips through the packed integer encoding used by the
// persistence layer's card_id column.
type AnySpell struct {
	Game  GameID
	RawID uint32
}

// PackCardID encodes an AnySpell as the packed integer persistence schema
// expects: (game_id << 24) | raw_spell_id.
func (s AnySpell) PackCardID() uint32 {
	return uint32(s.Game)<<24 | (s.RawID & 0x00FFFFFF)
}

// UnpackCardID decodes a packed card_id column value back into an
// AnySpell. It never panics; a game id outside the supported set is
// returned as-is (GameID.Valid will report false), letting the caller
// decide how to surface the inconsistency.
func UnpackCardID(packed uint32) AnySpell {
	return AnySpell{
		Game:  GameID(packed >> 24),
		RawID: packed & 0x00FFFFFF,
	}
}

// AnyShot identifies a shot type (player/option combination) independent
// of which game it belongs to, round-tripping through the packed integer
// encoding used by the persistence layer's shot_type column.
type AnyShot struct {
	Game  GameID
	RawID uint8
}

// PackShotType encodes an AnyShot as (game_id << 8) | raw_shot_id.
func (s AnyShot) PackShotType() uint32 {
	return uint32(s.Game)<<8 | uint32(s.RawID)
}

// UnpackShotType decodes a packed shot_type column value back into an
// AnyShot.
func UnpackShotType(packed uint32) AnyShot {
	return AnyShot{
		Game:  GameID(packed >> 8),
		RawID: uint8(packed),
	}
}

// AnyLocation identifies a resolved in-stage location independent of
// which game it belongs to. Payload is an opaque, game-specific 24-bit
// value; no package in this module builds one from a resolved location.
// This type only owns the game-tagging and the shared packed-integer
// round trip, following the same
// (game_id << 24) | payload shape the persistence schema uses for spells.
type AnyLocation struct {
	Game    GameID
	Payload uint32
}

// Pack encodes an AnyLocation as (game_id << 24) | payload. Only the low
// 24 bits of Payload are kept.
func (l AnyLocation) Pack() uint32 {
	return uint32(l.Game)<<24 | (l.Payload & 0x00FFFFFF)
}

// UnpackLocation decodes a packed value back into an AnyLocation.
func UnpackLocation(packed uint32) AnyLocation {
	return AnyLocation{
		Game:    GameID(packed >> 24),
		Payload: packed & 0x00FFFFFF,
	}
}
