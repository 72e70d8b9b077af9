package th07

import "github.com/hakurei-works/thstat/types"

// SpellCardInfo is one entry of the static per-game spell card catalog:
// a spell id maps to its name, owning stage, difficulty slot, and whether
// it belongs to a midboss or boss encounter.
type SpellCardInfo struct {
	// ID is the 1-based spell id used everywhere outside score file disk
	// layout (stored 0-based on disk; normalized to 1-based everywhere
	// else).
	ID         uint16
	Name       string
	Stage      *Stage
	Difficulty *Difficulty
	Type       types.SpellType
}

// diffVariant is one difficulty's name within a spellGroup -- the source's
// spellcards! macro groups card ids this way, one id per difficulty a
// given spell occurs under.
type diffVariant struct {
	difficulty *Difficulty
	name       string
}

// spellGroup is one encounter's set of per-difficulty spell card
// variants, assigned consecutive ids in the order declared. This mirrors
// the declarative, per-stage grouping a code-generating macro would
// consume, expressed here as plain const arrays with per-stage resolver
// functions spelled out by hand.
type spellGroup struct {
	stage    *Stage
	kind     types.SpellType
	variants []diffVariant
}

func v(d *Difficulty, name string) diffVariant { return diffVariant{d, name} }

// spellGroups transcribes Perfect Cherry Blossom's 141-card catalog,
// stage by stage, in on-disk id order.
var spellGroups = []spellGroup{
	// Stage 1
	{StageOne, types.Midboss, []diffVariant{
		v(Hard, `Frost Sign "Frost Columns"`),
		v(Lunatic, `Frost Sign "Frost Columns -Lunatic-"`),
	}},
	{StageOne, types.Boss, []diffVariant{
		v(Easy, `Cold Sign "Lingering Cold -Easy-"`),
		v(Normal, `Cold Sign "Lingering Cold"`),
		v(Hard, `Cold Sign "Lingering Cold -Hard-"`),
		v(Lunatic, `Cold Sign "Lingering Cold -Lunatic-"`),
	}},
	{StageOne, types.Boss, []diffVariant{
		v(Easy, `Winter Sign "Flower Wither Away -Easy-"`),
		v(Normal, `Winter Sign "Flower Wither Away"`),
		v(Hard, `White Sign "Undulation Ray"`),
		v(Lunatic, `Mystic Sign "Table-Turning"`),
	}},

	// Stage 2
	{StageTwo, types.Midboss, []diffVariant{
		v(Easy, `Hermit Sign "Fenghuang Egg -Easy-"`),
		v(Normal, `Hermit Sign "Fenghuang Egg"`),
		v(Hard, `Hermit Sign "Fenghuang's Spread Wings"`),
		v(Lunatic, `Hermit Sign "Fenghuang's Spread Wings -Lunatic-"`),
	}},
	{StageTwo, types.Boss, []diffVariant{
		v(Easy, `Shikigami Sign "Soaring Seiman -Easy-"`),
		v(Normal, `Shikigami Sign "Soaring Seiman"`),
		v(Hard, `Yin Yang "Douman-Seiman"`),
		v(Lunatic, `Yin Yang "Seiman-Daimon"`),
	}},
	{StageTwo, types.Boss, []diffVariant{
		v(Easy, `Heaven Sign "Tianxian's Rumbling -Easy-"`),
		v(Normal, `Heaven Sign "Tianxian's Rumbling"`),
		v(Hard, `Flight Sign "Soaring Idaten"`),
		v(Lunatic, `Servant Sign "Gouhou-Tendou's Wild Dance"`),
	}},
	{StageTwo, types.Boss, []diffVariant{
		v(Easy, `Hermit Sign "Shikai Immortality -Easy-"`),
		v(Normal, `Hermit Sign "Shikai Immortality"`),
		v(Hard, `Oni Sign "Kimon Konjin"`),
		v(Lunatic, `Direction Sign "Kimontonkou"`),
	}},

	// Stage 3
	{StageThree, types.Midboss, []diffVariant{
		v(Hard, `Puppeteer Sign "Maiden's Bunraku"`),
		v(Lunatic, `Puppeteer Sign "Maiden's Bunraku -Lunatic-"`),
	}},
	{StageThree, types.Boss, []diffVariant{
		v(Easy, `Blue Sign "Fraternal French Dolls -Easy-"`),
		v(Normal, `Blue Sign "Fraternal French Dolls"`),
		v(Hard, `Blue Sign "Fraternal French Dolls -Hard-"`),
		v(Lunatic, `Blue Sign "Fraternal Orléans Dolls"`),
	}},
	{StageThree, types.Boss, []diffVariant{
		v(Easy, `Scarlet Sign "Red-Haired Dutch Dolls -Easy-"`),
		v(Normal, `Scarlet Sign "Red-Haired Dutch Dolls"`),
		v(Hard, `White Sign "Chalk-White Russian Dolls"`),
		v(Lunatic, `White Sign "Chalk-White Russian Dolls -Lunatic-"`),
	}},
	{StageThree, types.Boss, []diffVariant{
		v(Easy, `Darkness Sign "Foggy London Dolls -Easy-"`),
		v(Normal, `Darkness Sign "Foggy London Dolls"`),
		v(Hard, `Cycle Sign "Samsaric Tibetan Dolls"`),
		v(Lunatic, `Elegant Sign "Spring Kyoto Dolls"`),
	}},
	{StageThree, types.Boss, []diffVariant{
		v(Easy, `Malediction "Magically Luminous Shanghai Dolls -Easy-"`),
		v(Normal, `Malediction "Magically Luminous Shanghai Dolls"`),
		v(Hard, `Malediction "Magically Luminous Shanghai Dolls -Hard-"`),
		v(Lunatic, `Malediction "Hanged Hourai Dolls"`),
	}},

	// Stage 4
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `Noisy Sign "Phantom Dinning -Easy-"`),
		v(Normal, `Noisy Sign "Phantom Dinning"`),
		v(Hard, `Noisy Sign "Live Poltergeist"`),
		v(Lunatic, `Noisy Sign "Live Poltergeist -Lunatic-"`),
	}},
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `String Performance "Guarneri del Gesù -Easy-"`),
		v(Normal, `String Performance "Guarneri del Gesù"`),
		v(Hard, `Divine Strings "Stradivarius"`),
		v(Lunatic, `Fake Strings "Pseudo Stradivarius"`),
	}},
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `Trumpet Spirit "Hino Phantasm -Easy-"`),
		v(Normal, `Trumpet Spirit "Hino Phantasm"`),
		v(Hard, `Nether Trumpet "Ghost Clifford"`),
		v(Lunatic, `Nether Trumpet "Ghost Clifford -Lunatic-"`),
	}},
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `Nether Keys "Fazioli Nether Performance -Easy-"`),
		v(Normal, `Nether Keys "Fazioli Nether Performance"`),
		v(Hard, `Key Spirit "Bösendorfer Divine Performance"`),
		v(Lunatic, `Key Spirit "Bösendorfer Divine Performance -Lunatic-"`),
	}},
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `Funeral Concert "Prism Concerto -Easy-"`),
		v(Normal, `Funeral Concert "Prism Concerto"`),
		v(Hard, `Noisy Funeral "Stygian Riverside"`),
		v(Lunatic, `Noisy Funeral "Stygian Riverside -Lunatic-"`),
	}},
	{StageFour, types.Boss, []diffVariant{
		v(Easy, `Great Funeral Concert "Spirit Wheel Concerto Grosso -Easy-"`),
		v(Normal, `Great Funeral Concert "Spirit Wheel Concerto Grosso"`),
		v(Hard, `Great Funeral Concert "Spirit Wheel Concerto Grosso: Revised"`),
		v(Lunatic, `Great Funeral Concert "Spirit Wheel Concerto Grosso: Wondrous"`),
	}},

	// Stage 5
	{StageFive, types.Midboss, []diffVariant{
		v(Easy, `Ghost Sword "Fasting of the Young Preta -Easy-"`),
		v(Normal, `Ghost Sword "Fasting of the Young Preta"`),
		v(Hard, `Preta Sword "Scroll of the Preta Realm"`),
		v(Lunatic, `Hungry King Sword "Ten Kings' Retribution on the Preta"`),
	}},
	{StageFive, types.Boss, []diffVariant{
		v(Easy, `Hell Realm Sword "Two Hundred Yojana in One Slash -Easy-"`),
		v(Normal, `Hell Realm Sword "Two Hundred Yojana in One Slash"`),
		v(Hard, `Hell Fire Sword "Sudden Phantom Formation Slash of Karmic Wind"`),
		v(Lunatic, `Hell God Sword "Sudden Divine Severing of Karmic Wind"`),
	}},
	{StageFive, types.Boss, []diffVariant{
		v(Easy, `Animal Realm Sword "Karmic Punishment of the Idle and Unfocused -Easy-"`),
		v(Normal, `Animal Realm Sword "Karmic Punishment of the Idle and Unfocused"`),
		v(Hard, `Asura Sword "Obsession with the Present World"`),
		v(Lunatic, `Asura Sword "Obsession with the Present World -Lunatic-"`),
	}},
	{StageFive, types.Boss, []diffVariant{
		v(Easy, `Human Realm Sword "Fantasy of Entering Enlightenment -Easy-"`),
		v(Normal, `Human Realm Sword "Fantasy of Entering Enlightenment"`),
		v(Hard, `Human Era Sword "Great Enlightenment Appearing and Disappearing"`),
		v(Lunatic, `Human God Sword "Constancy of the Conventional Truth"`),
	}},
	{StageFive, types.Boss, []diffVariant{
		v(Easy, `Heaven Sword "Five Signs of the Dying Deva -Easy-"`),
		v(Normal, `Heaven Sword "Five Signs of the Dying Deva"`),
		v(Hard, `Deva Realm Sword "Displeasure of the Seven Hakus"`),
		v(Lunatic, `Heaven God Sword "Three Kons, Seven Hakus"`),
	}},

	// Stage 6
	{StageSix, types.Midboss, []diffVariant{
		v(Easy, `Six Realms Sword "A Single Thought and Infinite Kalpas -Easy-"`),
		v(Normal, `Six Realms Sword "A Single Thought and Infinite Kalpas"`),
		v(Hard, `Six Realms Sword "A Single Thought and Infinite Kalpas -Hard-"`),
		v(Lunatic, `Six Realms Sword "A Single Thought and Infinite Kalpas -Lunatic-"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `Losing Hometown "Death of One's Home -Wandering Soul-"`),
		v(Normal, `Losing Hometown "Death of One's Home -Past Sin-"`),
		v(Hard, `Losing Hometown "Death of One's Home -Trackless Path-"`),
		v(Lunatic, `Losing Hometown "Death of One's Home -Suicide-"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `Deadly Dance "Law of Mortality -Bewilderment-"`),
		v(Normal, `Deadly Dance "Law of Mortality -Dead Butterfly-"`),
		v(Hard, `Deadly Dance "Law of Mortality -Poisonous Moth-"`),
		v(Lunatic, `Deadly Dance "Law of Mortality -Demon World-"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `Flowery Soul "Ghost Butterfly"`),
		v(Normal, `Flowery Soul "Swallowtail Butterfly"`),
		v(Hard, `Flowery Soul "Deep-Rooted Butterfly"`),
		v(Lunatic, `Flowery Soul "Butterfly Delusion"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `Subtle Melody "Repository of Hirokawa -False Spirit-"`),
		v(Normal, `Subtle Melody "Repository of Hirokawa -Dead Spirit-"`),
		v(Hard, `Subtle Melody "Repository of Hirokawa -Phantom Spirit-"`),
		v(Lunatic, `Subtle Melody "Repository of Hirokawa -Divine Spirit-"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `Cherry Blossom Sign "Perfect Ink-Black Cherry Blossom -Seal-"`),
		v(Normal, `Cherry Blossom Sign "Perfect Ink-Black Cherry Blossom -Self-Loss-"`),
		v(Hard, `Cherry Blossom Sign "Perfect Ink-Black Cherry Blossom -Spring Sleep-"`),
		v(Lunatic, `Cherry Blossom Sign "Perfect Ink-Black Cherry Blossom -Bloom-"`),
	}},
	{StageSix, types.Boss, []diffVariant{
		v(Easy, `"Resurrection Butterfly -10% Reflowering-"`),
		v(Normal, `"Resurrection Butterfly -30% Reflowering-"`),
		v(Hard, `"Resurrection Butterfly -50% Reflowering-"`),
		v(Lunatic, `"Resurrection Butterfly -80% Reflowering-"`),
	}},

	// Extra Stage
	{StageExtra, types.Midboss, []diffVariant{v(Extra, `Oni Sign "Blue Oni, Red Oni"`)}},
	{StageExtra, types.Midboss, []diffVariant{v(Extra, `Kishin "Soaring Bishamonten"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shikigami "Senko Thoughtful Meditation"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shikigami "Banquet of the Twelve General Gods"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shiki Brilliance "Kitsune-Tanuki Youkai Laser"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shiki Brilliance "Charming Siege from All Sides"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shiki Brilliance "Princess Tenko -Illusion-"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shiki Shot "Ultimate Buddhist"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shiki Shot "Unilateral Contact"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Shikigami "Chen"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `"Kokkuri-san's Contract"`)}},
	{StageExtra, types.Boss, []diffVariant{v(Extra, `Illusion God "Descent of Izuna Gongen"`)}},

	// Phantasm Stage
	{StagePhantasm, types.Midboss, []diffVariant{v(Phantasm, `Shikigami "Protection of Zenki and Goki"`)}},
	{StagePhantasm, types.Midboss, []diffVariant{v(Phantasm, `Shikigami "Channeling Dakiniten"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Barrier "Curse of Dreams and Reality"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Barrier "Balance of Motion and Stillness"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Barrier "Mesh of Light and Darkness"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Evil Spirits "Dreamland of Straight and Curve"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Evil Spirits "Yukari Yakumo's Spiriting Away"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Evil Spirits "Bewitching Butterfly Living in the Zen Temple"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Sinister Spirits "Double Black Death Butterfly"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Shikigami "Ran Yakumo"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `"Boundary of Humans and Youkai"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Barrier "Boundary of Life and Death"`)}},
	{StagePhantasm, types.Boss, []diffVariant{v(Phantasm, `Yukari's Arcanum "Danmaku Barrier"`)}},
}

// SpellCards is the flattened, 1-based-id catalog built from spellGroups
// at package init, mirroring the source's code-generating macro at
// compile time as closely as a hand-written Go table can.
var SpellCards []*SpellCardInfo

// bySpellID indexes SpellCards by 1-based id for SpellByID.
var bySpellID map[uint16]*SpellCardInfo

func init() {
	var diskID uint16
	for _, g := range spellGroups {
		for _, variant := range g.variants {
			diskID++
			SpellCards = append(SpellCards, &SpellCardInfo{
				ID:         diskID,
				Name:       variant.name,
				Stage:      g.stage,
				Difficulty: variant.difficulty,
				Type:       g.kind,
			})
		}
	}

	if len(SpellCards) != 141 {
		panic("th07: spell card catalog must contain exactly 141 entries")
	}

	bySpellID = make(map[uint16]*SpellCardInfo, len(SpellCards))
	for _, c := range SpellCards {
		bySpellID[c.ID] = c
	}
}

// SpellByID returns the catalog entry for a 1-based spell id, or an error
// if id is outside 1..=141.
func SpellByID(id uint16) (*SpellCardInfo, error) {
	if c, ok := bySpellID[id]; ok {
		return c, nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidSpellCard,
		Game:  types.PCB,
		Field: "spell_id",
		Value: id,
		Range: "1..=141",
	}
}

// Any wraps this catalog entry's id as a cross-game types.AnySpell.
func (c *SpellCardInfo) Any() types.AnySpell {
	return types.AnySpell{Game: types.PCB, RawID: uint32(c.ID)}
}
