package th10

import "testing"

func TestCatalogHas110Cards(t *testing.T) {
	if len(SpellCards) != 110 {
		t.Fatalf("got %d cards, want 110", len(SpellCards))
	}
}

func TestCatalogSplitAcrossDifficultiesWithoutEasy(t *testing.T) {
	// "Normal | Hard: #51" has no Easy variant at all -- ids 51 and 52
	// belong to Normal and Hard respectively, and 50 belongs to the prior
	// Lunatic-only entry.
	c51, err := SpellByID(51)
	if err != nil {
		t.Fatalf("SpellByID(51): %v", err)
	}
	if c51.Difficulty != Normal || c51.Name != `"Illusionary Dominance"` {
		t.Errorf("card 51 = %+v", c51)
	}

	c52, err := SpellByID(52)
	if err != nil {
		t.Fatalf("SpellByID(52): %v", err)
	}
	if c52.Difficulty != Hard || c52.Name != `"Illusionary Dominance"` {
		t.Errorf("card 52 = %+v", c52)
	}
}

func TestCatalogExtraStageHasNoDifficultySplit(t *testing.T) {
	c, err := SpellByID(110)
	if err != nil {
		t.Fatalf("SpellByID(110): %v", err)
	}
	if c.Stage != StageExtra || c.Difficulty != Extra {
		t.Errorf("card 110 = %+v", c)
	}
}

func TestCatalogOutOfRange(t *testing.T) {
	if _, err := SpellByID(0); err == nil {
		t.Errorf("expected error for id 0")
	}
	if _, err := SpellByID(111); err == nil {
		t.Errorf("expected error for id 111")
	}
}

func TestShotTypeFromCharacterAndSubtype(t *testing.T) {
	s, err := FromCharacterAndSubtype(0, 2)
	if err != nil {
		t.Fatalf("FromCharacterAndSubtype(0, 2): %v", err)
	}
	if s != ReimuC {
		t.Errorf("got %v, want ReimuC", s)
	}

	if _, err := FromCharacterAndSubtype(2, 0); err == nil {
		t.Errorf("expected error for character 2")
	}
	if _, err := FromCharacterAndSubtype(0, 3); err == nil {
		t.Errorf("expected error for subtype 3")
	}
}

func TestStageMidbossFlags(t *testing.T) {
	if !StageTwo.HasMidboss() || !StageFour.HasMidboss() {
		t.Errorf("stages two and four should report a midboss")
	}
	if StageOne.HasMidboss() {
		t.Errorf("stage one should not report a midboss")
	}
	if !StageExtra.IsExtra() {
		t.Errorf("StageExtra.IsExtra() = false")
	}
}
