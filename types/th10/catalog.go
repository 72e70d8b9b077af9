package th10

import (
	"fmt"

	"github.com/hakurei-works/thstat/types"
)

// SpellCardInfo describes one entry in Mountain of Faith's spell card
// catalog: its 1-based numeric id, display name, stage, difficulty, and
// midboss/boss classification. Mountain of Faith has no last-spell or
// last-word slot.
type SpellCardInfo struct {
	ID         uint16
	Name       string
	Stage      *Stage
	Difficulty *Difficulty
	Type       types.SpellType
}

// spellVariant is one named move and the consecutive run of difficulties
// it spans, starting at a fixed raw id, the same shape used by th08's
// catalog.
type spellVariant struct {
	id    uint16
	name  string
	diffs []*Difficulty
}

func sv(id uint16, name string, diffs ...*Difficulty) spellVariant {
	return spellVariant{id: id, name: name, diffs: diffs}
}

type spellGroup struct {
	stage    *Stage
	kind     types.SpellType
	variants []spellVariant
}

var spellGroups = []spellGroup{
	{StageOne, types.Midboss, []spellVariant{
		sv(1, `Leaf Sign "Falling Leaves of Madness"`, Hard, Lunatic),
	}},
	{StageOne, types.Boss, []spellVariant{
		sv(3, `Fall Sign "Autumn Sky"`, Easy, Normal),
		sv(5, `Fall Sign "The Fall Sky and a Maiden's Heart"`, Hard, Lunatic),
		sv(7, `Plenty Sign "Owotoshi Harvester"`, Easy, Normal),
		sv(9, `Bumper Crop "Promise of the Wheat God"`, Hard, Lunatic),
	}},

	{StageTwo, types.Midboss, []spellVariant{
		sv(11, `Misfortune Sign "Bad Fortune"`, Easy, Normal),
		sv(13, `Misfortune Sign "Biorhythm of the Misfortune God"`, Hard, Lunatic),
	}},
	{StageTwo, types.Boss, []spellVariant{
		sv(15, `Flawed Sign "Broken Amulet"`, Easy, Normal),
		sv(17, `Scar "Broken Charm of Protection"`, Hard, Lunatic),
		sv(19, `Evil Spirit "Misfortune's Wheel"`, Easy, Normal),
		sv(21, `Tragic Fate "Old Lady Ohgane's Fire"`, Hard, Lunatic),
		sv(23, `Wound Sign "Pain Flow"`, Easy, Normal),
		sv(25, `Wound Sign "Exiled Doll"`, Hard, Lunatic),
	}},

	{StageThree, types.Midboss, []spellVariant{
		sv(27, `Optics "Optical Camouflage"`, Easy, Normal),
		sv(29, `Optics "Hydro Camouflage"`, Hard, Lunatic),
	}},
	{StageThree, types.Boss, []spellVariant{
		sv(31, `Flood "Ooze Flooding"`, Easy, Normal),
		sv(33, `Flood "Diluvial Mere"`, Hard),
		sv(34, `Drown "Trauma in the Glimmering Depths"`, Lunatic),
		sv(35, `Water Sign "Kappa's Pororoca"`, Easy, Normal),
		sv(37, `Water Sign "Kappa's Flash Flood"`, Hard),
		sv(38, `Water Sign "Kappa's Great Illusionary Waterfall"`, Lunatic),
		sv(39, `Kappa "Monster Cucumber"`, Easy, Normal),
		sv(41, `Kappa "Exteeeending Aaaaarm"`, Hard),
		sv(42, `Kappa "Spin the Cephalic Plate"`, Lunatic),
	}},

	{StageFour, types.Boss, []spellVariant{
		sv(43, `Crossroad Sign "Crossroads of Heaven"`, Easy, Normal),
		sv(45, `Crossroad Sign "Saruta Cross"`, Hard, Lunatic),
		sv(47, `Wind God "Wind God's Leaf-Veiling"`, Easy, Normal),
		sv(49, `Wind God "Tengu's Fall Wind"`, Hard),
		sv(50, `Wind God "Storm Day"`, Lunatic),
		sv(51, `"Illusionary Dominance"`, Normal, Hard),
		sv(53, `"Peerless Wind God"`, Lunatic),
		sv(54, `Blockade Sign "Mountain God's Procession"`, Easy, Normal),
		sv(56, `Blockade Sign "Advent of the Divine Grandson"`, Hard),
		sv(57, `Blockade Sign "Terukuni Shining Through Heaven and Earth"`, Lunatic),
	}},

	{StageFive, types.Midboss, []spellVariant{
		sv(58, `Esoterica "Gray Thaumaturgy"`, Easy, Normal),
		sv(60, `Esoterica "Forgotten Ritual"`, Hard),
		sv(61, `Esoterica "Secretly Inherited Art of Danmaku"`, Lunatic),
	}},
	{StageFive, types.Boss, []spellVariant{
		sv(62, `Miracle "Daytime Guest Stars"`, Easy, Normal),
		sv(64, `Miracle "Night with Bright Guest Stars"`, Hard),
		sv(65, `Miracle "Night with Overly Bright Guest Stars"`, Lunatic),
		sv(66, `Sea Opening "The Day the Sea Split"`, Easy, Normal),
		sv(68, `Sea Opening "Moses' Miracle"`, Hard, Lunatic),
		sv(70, `Preparation "Star Ritual to Call the Godly Winds"`, Easy, Normal),
		sv(72, `Preparation "Summon Takeminakata"`, Hard, Lunatic),
		sv(74, `Miracle "God's Wind"`, Easy, Normal),
		sv(76, `Great Miracle "Yasaka's Divine Wind"`, Hard, Lunatic),
	}},

	{StageSix, types.Boss, []spellVariant{
		sv(78, `Divine Festival "Expanded Onbashira"`, Easy, Normal),
		sv(80, `Weird Festival "Medoteko Boisterous Dance"`, Hard, Lunatic),
		sv(82, `Rice Porridge in Tube "God's Rice Porridge"`, Easy, Normal),
		sv(84, `Forgotten Grain "Unremembered Crop"`, Hard),
		sv(85, `Divine Grain "Divining Crop"`, Lunatic),
		sv(86, `Sacrifice Sign "Misayama Hunting Shrine Ritual"`, Easy, Normal),
		sv(88, `Mystery "Kuzui Clear Water"`, Hard),
		sv(89, `Mystery "Yamato Torus"`, Lunatic),
		sv(90, `Heaven's Stream "Miracle of Otensui"`, Easy, Normal),
		sv(92, `Heaven's Dragon "Source of Rains"`, Hard, Lunatic),
		sv(94, `"Mountain of Faith"`, Easy, Normal),
		sv(96, `"Divine Virtues of Wind God"`, Hard, Lunatic),
	}},

	{StageExtra, types.Midboss, []spellVariant{
		sv(98, `God Sign "Beautiful Spring like Suiga"`, Extra),
		sv(99, `God Sign "Ancient Fate Linked by Cedars"`, Extra),
		sv(100, `God Sign "Omiwatari that God Walked"`, Extra),
	}},
	{StageExtra, types.Boss, []spellVariant{
		sv(101, `Party Start "Two Bows, Two Claps, and One Bow"`, Extra),
		sv(102, `Native God "Lord Long-Arm and Lord Long-Leg"`, Extra),
		sv(103, `Divine Tool "Moriya's Iron Ring"`, Extra),
		sv(104, `Spring Sign "Jade of the Horrid River"`, Extra),
		sv(105, `Frog Hunt "The Snake Eats the Croaking Frog"`, Extra),
		sv(106, `Native God "Seven Stones and Seven Trees"`, Extra),
		sv(107, `Native God "Froggy Braves the Wind and Rain"`, Extra),
		sv(108, `Native God "Red Frogs of Houei Four"`, Extra),
		sv(109, `"Suwa War ~ Native Myth vs. Central Myth"`, Extra),
		sv(110, `Scourge Sign "Mishaguji-sama"`, Extra),
	}},
}

const expectedSpellCardCount = 110

// SpellCards holds every catalog entry, ordered by id.
var SpellCards []*SpellCardInfo

var bySpellID map[uint16]*SpellCardInfo

func init() {
	bySpellID = make(map[uint16]*SpellCardInfo, expectedSpellCardCount)
	for _, group := range spellGroups {
		for _, variant := range group.variants {
			for i, diff := range variant.diffs {
				card := &SpellCardInfo{
					ID:         variant.id + uint16(i),
					Name:       variant.name,
					Stage:      group.stage,
					Difficulty: diff,
					Type:       group.kind,
				}
				SpellCards = append(SpellCards, card)
				bySpellID[card.ID] = card
			}
		}
	}
	if len(SpellCards) != expectedSpellCardCount {
		panic(fmt.Sprintf("th10: built %d spell cards, want %d", len(SpellCards), expectedSpellCardCount))
	}
}

// SpellByID returns the catalog entry for a raw 1-based id.
func SpellByID(id uint16) (*SpellCardInfo, error) {
	if c, ok := bySpellID[id]; ok {
		return c, nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidSpellCard,
		Game:  types.MoF,
		Field: "spell_id",
		Value: id,
		Range: "1..=110 (with gaps)",
	}
}

// Any wraps c as a cross-game types.AnySpell.
func (c *SpellCardInfo) Any() types.AnySpell {
	return types.AnySpell{Game: types.MoF, RawID: uint32(c.ID)}
}
