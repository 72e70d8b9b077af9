package types

import "fmt"

// ShotPower abstracts over the two shapes Touhou games represent player
// power in: a small integer scale (gen-1) and a larger decimal-presented
// scale with a game-specific maximum (gen-2). Callers that need the raw
// game value use Raw; callers that want a comparable, game-independent
// notion of "how full is the power gauge" use Fraction.
type ShotPower interface {
	// Raw returns the value as the game itself represents it.
	Raw() uint16
	// Max returns the maximum value Raw can take for this game.
	Max() uint16
	// Fraction returns Raw()/Max() as a value in [0, 1].
	Fraction() float64
	fmt.Stringer
}

// Gen1Power is the player power representation used by the games whose
// power gauge is a plain 0..=128 byte (e.g. Perfect Cherry Blossom).
type Gen1Power uint8

const gen1PowerMax = 128

// NewGen1Power validates and constructs a Gen1Power, rejecting values
// outside 0..=128.
func NewGen1Power(raw uint8) (Gen1Power, error) {
	if raw > gen1PowerMax {
		return 0, &FieldError{
			Kind:  ErrInvalidShotPower,
			Field: "power",
			Value: raw,
			Range: "0..=128",
		}
	}
	return Gen1Power(raw), nil
}

func (p Gen1Power) Raw() uint16       { return uint16(p) }
func (p Gen1Power) Max() uint16       { return gen1PowerMax }
func (p Gen1Power) Fraction() float64 { return float64(p) / gen1PowerMax }
func (p Gen1Power) String() string    { return fmt.Sprintf("%d/%d", p, gen1PowerMax) }

// Gen2Power is the player power representation used by games whose power
// gauge is a 0..=Max u16 presented to the player as a decimal fraction
// (Max/100), e.g. a raw value of 400 with Max 400 displays as "4.00".
type Gen2Power struct {
	raw uint16
	max uint16
}

// NewGen2Power validates and constructs a Gen2Power, rejecting a raw value
// greater than max.
func NewGen2Power(raw, max uint16) (Gen2Power, error) {
	if raw > max {
		return Gen2Power{}, &FieldError{
			Kind:  ErrInvalidShotPower,
			Field: "power",
			Value: raw,
			Range: fmt.Sprintf("0..=%d", max),
		}
	}
	return Gen2Power{raw: raw, max: max}, nil
}

func (p Gen2Power) Raw() uint16       { return p.raw }
func (p Gen2Power) Max() uint16       { return p.max }
func (p Gen2Power) Fraction() float64 { return float64(p.raw) / float64(p.max) }

// String renders the decimal presentation the games themselves use, e.g.
// "4.00" for a raw value of 400.
func (p Gen2Power) String() string {
	return fmt.Sprintf("%d.%02d", p.raw/100, p.raw%100)
}
