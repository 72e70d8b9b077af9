package types

import "testing"

func TestAnySpellRoundTrip(t *testing.T) {
	for _, game := range AllGames() {
		for _, raw := range []uint32{0, 1, 93, 140, 0x00FFFFFF} {
			s := AnySpell{Game: game, RawID: raw}
			got := UnpackCardID(s.PackCardID())
			if got != s {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
			}
		}
	}
}

func TestAnyShotRoundTrip(t *testing.T) {
	for _, game := range AllGames() {
		for _, raw := range []uint8{0, 1, 4, 255} {
			s := AnyShot{Game: game, RawID: raw}
			got := UnpackShotType(s.PackShotType())
			if got != s {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, s)
			}
		}
	}
}

func TestAnyLocationRoundTrip(t *testing.T) {
	for _, game := range AllGames() {
		for _, payload := range []uint32{0, 1, 0x123456, 0x00FFFFFF} {
			l := AnyLocation{Game: game, Payload: payload}
			got := UnpackLocation(l.Pack())
			if got != l {
				t.Errorf("round trip mismatch: got %+v, want %+v", got, l)
			}
		}
	}
}

func TestGameIDStringAndAbbreviation(t *testing.T) {
	cases := []struct {
		g            GameID
		abbreviation string
	}{
		{PCB, "PCB"},
		{IN, "IN"},
		{MoF, "MoF"},
	}
	for _, c := range cases {
		if !c.g.Valid() {
			t.Errorf("%v: expected Valid", c.g)
		}
		if got := c.g.Abbreviation(); got != c.abbreviation {
			t.Errorf("%v: Abbreviation() = %q, want %q", c.g, got, c.abbreviation)
		}
	}

	unknown := GameID(200)
	if unknown.Valid() {
		t.Errorf("GameID(200): expected not Valid")
	}
}

func TestGen1PowerRange(t *testing.T) {
	if _, err := NewGen1Power(128); err != nil {
		t.Errorf("128 should be in range: %v", err)
	}
	if _, err := NewGen1Power(129); err == nil {
		t.Errorf("129 should be out of range")
	}
}

func TestGen2PowerDecimalString(t *testing.T) {
	p, err := NewGen2Power(400, 400)
	if err != nil {
		t.Fatalf("NewGen2Power: %v", err)
	}
	if got := p.String(); got != "4.00" {
		t.Errorf("String() = %q, want 4.00", got)
	}
	if got := p.Fraction(); got != 1.0 {
		t.Errorf("Fraction() = %v, want 1.0", got)
	}

	if _, err := NewGen2Power(401, 400); err == nil {
		t.Errorf("401 should be out of range for max 400")
	}
}
