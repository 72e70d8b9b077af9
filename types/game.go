package types

// GameID is the closed set of PC Touhou Project installments this module
// understands. It is deliberately a small integer type, not an interface
// or pointer-to-struct enum, so it stays cheap to use as a map key and in
// the packed Any* identifier encodings.
type GameID uint8

// The three supported games. Values match each game's numbered title, as
// the source and every packed identifier encoding expect.
const (
	PCB GameID = 7  // Perfect Cherry Blossom
	IN  GameID = 8  // Imperishable Night
	MoF GameID = 10 // Mountain of Faith
)

type gameIDInfo struct {
	name         string
	abbreviation string
	numberedName string
}

var gameIDTable = map[GameID]gameIDInfo{
	PCB: {"Perfect Cherry Blossom", "PCB", "Touhou 7"},
	IN:  {"Imperishable Night", "IN", "Touhou 8"},
	MoF: {"Mountain of Faith", "MoF", "Touhou 10"},
}

// Valid reports whether g is one of the three supported games.
func (g GameID) Valid() bool {
	_, ok := gameIDTable[g]
	return ok
}

// String returns the game's full title, or "Unknown 0x.." if g is not one
// of the supported games.
func (g GameID) String() string {
	if info, ok := gameIDTable[g]; ok {
		return info.name
	}
	return UnknownEnum(uint8(g)).String()
}

// Abbreviation returns the game's short name (e.g. "PCB"), or "" if g is
// not one of the supported games.
func (g GameID) Abbreviation() string {
	return gameIDTable[g].abbreviation
}

// NumberedName returns the game's numbered title (e.g. "Touhou 7"), or ""
// if g is not one of the supported games.
func (g GameID) NumberedName() string {
	return gameIDTable[g].numberedName
}

// AllGames returns every supported game, in numbered order.
func AllGames() []GameID {
	return []GameID{PCB, IN, MoF}
}
