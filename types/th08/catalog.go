package th08

import (
	"fmt"

	"github.com/hakurei-works/thstat/types"
)

// SpellCardInfo describes one entry in Imperishable Night's spell card
// catalog: its 1-based numeric id, display name, stage, difficulty, and
// midboss/boss/last-spell/last-word classification.
//
// Unlike Perfect Cherry Blossom, Imperishable Night does not mint a fresh
// id for every (stage, difficulty) pair: many cards share one name and
// danmaku pattern across adjacent difficulties, in which case the source
// data gives a single starting id and the id is assigned consecutively,
// one per listed difficulty, in the order the difficulties are written.
type SpellCardInfo struct {
	ID         uint16
	Name       string
	Stage      *Stage
	Difficulty *Difficulty
	Type       types.SpellType
}

// spellVariant is one named move and the consecutive run of difficulties
// it spans, starting at a fixed raw id.
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
		sv(1, `Firefly Sign "Earthly Meteor"`, Hard),
		sv(2, `Firefly Sign "Earthly Comet"`, Lunatic),
	}},
	{StageOne, types.Boss, []spellVariant{
		sv(3, `Lamp Sign "Firefly Phenomenon"`, Easy, Normal, Hard, Lunatic),
		sv(7, `Wriggle Sign "Little Bug"`, Easy),
		sv(8, `Wriggle Sign "Little Bug Storm"`, Normal),
		sv(9, `Wriggle Sign "Nightbug Storm"`, Hard),
		sv(10, `Wriggle Sign "Nightbug Tornado"`, Lunatic),
	}},
	{StageOne, types.LastSpell, []spellVariant{
		sv(11, `Hidden Bug "Endless Night Seclusion"`, Normal, Hard, Lunatic),
	}},

	{StageTwo, types.Midboss, []spellVariant{
		sv(14, `Vocal Sign "Hooting in the Night"`, Easy, Normal),
		sv(16, `Vocal Sign "Howl of the Horned Owl"`, Hard, Lunatic),
	}},
	{StageTwo, types.Boss, []spellVariant{
		sv(18, `Moth Sign "Hawk Moth's Insect Curse"`, Easy, Normal),
		sv(20, `Toxin Sign "Poisonous Moth's Scales"`, Hard),
		sv(21, `Deadly Toxin "Poisonous Moth's Dance in the Dark"`, Lunatic),
		sv(22, `Hawk Sign "Ill-Starred Dive"`, Easy, Normal, Hard, Lunatic),
		sv(26, `Night-Blindness "Song of the Night Sparrow"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageTwo, types.LastSpell, []spellVariant{
		sv(30, `Night-Sparrow "Midnight Chorus-Master"`, Normal, Hard, Lunatic),
	}},

	{StageThree, types.Midboss, []spellVariant{
		sv(33, `Spiritual Birth "First Pyramid"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageThree, types.Boss, []spellVariant{
		sv(37, `Origin Sign "Ephemerality 137"`, Normal, Hard, Lunatic),
		sv(40, `Ambition Sign "Buretsu Crisis"`, Easy),
		sv(41, `Ambition Sign "Masakado Crisis"`, Normal),
		sv(42, `Ambition Sign "Yoshimitsu Crisis"`, Hard),
		sv(43, `Ambition Sign "General Headquarters Crisis"`, Lunatic),
		sv(44, `Land Sign "Three Sacred Treasures - Sword"`, Easy),
		sv(45, `Land Sign "Three Sacred Treasures - Orb"`, Normal),
		sv(46, `Land Sign "Three Sacred Treasures - Mirror"`, Hard),
		sv(47, `Land Scheme "Three Sacred Treasures - Country"`, Lunatic),
		sv(48, `Ending Sign "Phantasmal Emperor"`, Easy, Normal),
		sv(50, `Pseudo-History "The Legend of Gensokyo"`, Hard, Lunatic),
	}},
	{StageThree, types.LastSpell, []spellVariant{
		sv(52, `Future "Gods' Realm"`, Normal, Hard, Lunatic),
	}},

	{StageFourA, types.Midboss, []spellVariant{
		sv(55, `Dream Sign "Duplex Barrier"`, Easy, Normal),
		sv(57, `Dream Land "Great Duplex Barrier"`, Hard, Lunatic),
		sv(59, `Spirit Sign "Fantasy Seal -Spread-"`, Easy, Normal),
		sv(61, `Scattered Spirit "Fantasy Seal -Worn-"`, Hard, Lunatic),
	}},
	{StageFourA, types.Boss, []spellVariant{
		sv(63, `Dream Sign "Evil-Sealing Circle"`, Easy, Normal),
		sv(65, `Divine Arts "Omnidirectional Oni-Binding Circle"`, Hard),
		sv(66, `Divine Arts "Omnidirectional Dragon-Slaying Circle"`, Lunatic),
		sv(67, `Spirit Sign "Fantasy Seal -Concentrate-"`, Easy, Normal),
		sv(69, `Migrating Spirit "Fantasy Seal -Marred-"`, Hard, Lunatic),
		sv(71, `Boundary "Duplex Danmaku Barrier"`, Easy, Normal),
		sv(73, `Great Barrier "Hakurei Danmaku Barrier"`, Hard, Lunatic),
	}},
	{StageFourA, types.LastSpell, []spellVariant{
		sv(75, `Divine Spirit "Fantasy Seal -Blink-"`, Normal, Hard, Lunatic),
	}},

	{StageFourB, types.Midboss, []spellVariant{
		sv(78, `Magic Sign "Milky Way"`, Easy, Normal),
		sv(80, `Magic Space "Asteroid Belt"`, Hard, Lunatic),
		sv(82, `Magic Sign "Stardust Reverie"`, Easy, Normal),
		sv(84, `Black Magic "Event Horizon"`, Hard, Lunatic),
	}},
	{StageFourB, types.Boss, []spellVariant{
		sv(86, `Love Sign "Non-Directional Laser"`, Easy, Normal),
		sv(88, `Love Storm "Starlight Typhoon"`, Hard, Lunatic),
		sv(90, `Love Sign "Master Spark"`, Easy, Normal),
		sv(92, `Loving Heart "Double Spark"`, Hard, Lunatic),
		sv(94, `Light Sign "Earthlight Ray"`, Easy, Normal),
		sv(96, `Light Blast "Shoot the Moon"`, Hard, Lunatic),
	}},
	{StageFourB, types.LastSpell, []spellVariant{
		sv(98, `Magicannon "Final Spark"`, Normal, Hard),
		sv(100, `Magicannon "Final Master Spark"`, Lunatic),
	}},

	{StageFive, types.Boss, []spellVariant{
		sv(101, `Wave Sign "Red-Eyed Hypnosis (Mind Shaker)"`, Easy, Normal),
		sv(103, `Illusion Wave "Red-Eyed Hypnosis (Mind Blowing)"`, Hard, Lunatic),
		sv(105, `Lunatic Sign "Hallucinogenic Tuning (Visionary Tuning)"`, Easy, Normal),
		sv(107, `Lunatic Gaze "Lunatic Stare Tuning (Illusion Seeker)"`, Hard, Lunatic),
		sv(109, `Loafing Sign "Life & Spirit Stopping (Idling Wave)"`, Easy, Normal),
		sv(111, `Indolence "Life & Spirit Stopping (Mind Stopper)"`, Hard, Lunatic),
		sv(113, `Spread Sign "Moon of Truth (Invisible Full Moon)"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageFive, types.LastSpell, []spellVariant{
		sv(117, `Lunar Eyes "Lunar Rabbit's Remote Mesmerism (Tele-Mesmerism)"`, Normal, Hard, Lunatic),
	}},

	{StageFinalA, types.Midboss, []spellVariant{
		sv(120, `Spacesphere "Earth in a Pot"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageFinalA, types.Boss, []spellVariant{
		sv(124, `Awakened God "Memories of the Age of the Gods"`, Easy, Normal),
		sv(126, `God Sign "Genealogy of the Celestials"`, Hard, Lunatic),
		sv(128, `Revival "Seimei Yugi -Life Game-"`, Easy, Normal),
		sv(130, `Resurrection "Rising Game"`, Hard, Lunatic),
		sv(132, `Leading God "Omoikane's Device"`, Easy, Normal),
		sv(134, `Mind of God "Omoikane's Brain"`, Hard, Lunatic),
		sv(136, `Curse of the Heavens "Apollo 13"`, Easy, Normal, Hard, Lunatic),
		sv(140, `Esoterica "Astronomical Entombing"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageFinalA, types.LastSpell, []spellVariant{
		sv(144, `Forbidden Elixir "Hourai Elixir"`, Easy, Normal, Hard, Lunatic),
	}},

	{StageFinalB, types.Midboss, []spellVariant{
		sv(148, `Medicine Sign "Galaxy in a Pot"`, Easy, Normal, Hard, Lunatic),
	}},
	{StageFinalB, types.Boss, []spellVariant{
		sv(152, `Impossible Request "Dragon's Neck's Jewel -Five-Colored Shots-"`, Easy, Normal),
		sv(154, `Divine Treasure "Brilliant Dragon Bullet"`, Hard, Lunatic),
		sv(156, `Impossible Request "Buddha's Stone Bowl -Indomitable Will-"`, Easy, Normal),
		sv(158, `Divine Treasure "Buddhist Diamond"`, Hard, Lunatic),
		sv(160, `Impossible Request "Robe of Fire Rat -Patient Mind-"`, Easy, Normal),
		sv(162, `Divine Treasure "Salamander Shield"`, Hard, Lunatic),
		sv(164, `Impossible Request "Swallow's Cowrie Shell -Everlasting Life-"`, Easy, Normal),
		sv(166, `Divine Treasure "Life Spring Infinity"`, Hard, Lunatic),
		sv(168, `Impossible Request "Bullet Branch of Hourai -Rainbow Danmaku-"`, Easy, Normal),
		sv(170, `Divine Treasure "Jeweled Branch of Hourai -Dreamlike Paradise-"`, Hard, Lunatic),
	}},
	{StageFinalB, types.LastSpell, []spellVariant{
		sv(172, `"End of Imperishable Night -New Moon-"`, Easy),
		sv(173, `"End of Imperishable Night -Crescent Moon-"`, Normal),
		sv(174, `"End of Imperishable Night -1st Quarter's Moon-"`, Hard),
		sv(175, `"End of Imperishable Night -Matsuyoi-"`, Lunatic),
		sv(176, `"End of Imperishable Night -11 o'Clock-"`, Easy),
		sv(177, `"End of Imperishable Night -Half to Midnight-"`, Normal),
		sv(178, `"End of Imperishable Night -Midnight-"`, Hard),
		sv(179, `"End of Imperishable Night -Half Past Midnight-"`, Lunatic),
		sv(180, `"End of Imperishable Night -1 o'Clock-"`, Easy),
		sv(181, `"End of Imperishable Night -Half Past 1-"`, Normal),
		sv(182, `"End of Imperishable Night -Dead of Night-"`, Hard),
		sv(183, `"End of Imperishable Night -Half Past 2-"`, Lunatic),
		sv(184, `"End of Imperishable Night -3 o'Clock-"`, Easy),
		sv(185, `"End of Imperishable Night -Half Past 3-"`, Normal),
		sv(186, `"End of Imperishable Night -4 o'Clock-"`, Hard),
		sv(187, `"End of Imperishable Night -Half Past 4-"`, Lunatic),
		sv(188, `"End of Imperishable Night -Morning Mist-"`, Easy),
		sv(189, `"End of Imperishable Night -Dawn-"`, Normal),
		sv(190, `"End of Imperishable Night -Morning Star-"`, Hard),
		sv(191, `"End of Imperishable Night -Rising World-"`, Lunatic),
	}},

	{StageExtra, types.Midboss, []spellVariant{
		sv(192, `Past "Old History of an Untrodden Land -Old History-"`, Extra),
		sv(193, `Reincarnation "Ichijou Returning Bridge"`, Extra),
		sv(194, `Future "New History of Fantasy -Next History-"`, Extra),
	}},
	{StageExtra, types.Boss, []spellVariant{
		sv(195, `Limiting Edict "Curse of Tsuki-no-Iwakasa"`, Extra),
		sv(196, `Undying "Fire Bird -Feng Wing Ascension-"`, Extra),
		sv(197, `Fujiwara "Wounds of Metsuzai Temple"`, Extra),
		sv(198, `Undying "Xu Fu's Dimension"`, Extra),
		sv(199, `Expiation "Honest Man's Death"`, Extra),
		sv(200, `Hollow Being "Wu"`, Extra),
		sv(201, `Inextinguishable "Phoenix's Tail"`, Extra),
		sv(202, `Hourai "South Wind, Clear Sky -Fujiyama Volcano-"`, Extra),
		sv(203, `"Possessed by Phoenix"`, Extra),
		sv(204, `"Hourai Doll"`, Extra),
	}},
	{StageExtra, types.LastSpell, []spellVariant{
		sv(205, `"Imperishable Shooting"`, Extra),
	}},

	{StageLastWord, types.LastWord, []spellVariant{
		sv(206, `"Unseasonal Butterfly Storm"`, LastWord),
		sv(207, `"Blind Nightbird"`, LastWord),
		sv(208, `"Emperor of the Land of the Rising Sun"`, LastWord),
		sv(209, `"Stare of the Hazy Phantom Moon (Lunatic Red Eyes)"`, LastWord),
		sv(210, `"Heaven Spider's Butterfly-Capturing Web"`, LastWord),
		sv(211, `"Tree-Ocean of Hourai"`, LastWord),
		sv(212, `"Phoenix Rebirth"`, LastWord),
		sv(213, `"Ancient Duper"`, LastWord),
		sv(214, `"Total Purification"`, LastWord),
		sv(215, `"Fantasy Nature"`, LastWord),
		sv(216, `"Blazing Star"`, LastWord),
		sv(217, `"Deflation World"`, LastWord),
		sv(218, `"Matsuyoi-Reflecting Satellite Slash"`, LastWord),
		sv(219, `"The Phantom of the Grand Guignol"`, LastWord),
		sv(220, `"Scarlet Destiny"`, LastWord),
		sv(221, `"Saigyouji Parinirvana"`, LastWord),
		sv(222, `"Profound Danmaku Barrier -Phantasm, Foam, and Shadow-"`, LastWord),
	}},
}

// expectedSpellCardCount is the highest raw spell id in the catalog,
// transcribed from the source data's own declared total.
const expectedSpellCardCount = 222

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
		panic(fmt.Sprintf("th08: built %d spell cards, want %d", len(SpellCards), expectedSpellCardCount))
	}
}

// SpellByID returns the catalog entry for a raw 1-based id.
func SpellByID(id uint16) (*SpellCardInfo, error) {
	if c, ok := bySpellID[id]; ok {
		return c, nil
	}
	return nil, &types.FieldError{
		Kind:  types.ErrInvalidSpellCard,
		Game:  types.IN,
		Field: "spell_id",
		Value: id,
		Range: "1..=222 (with gaps)",
	}
}

// IsForDifficulty reports whether c is tracked under d. Extra and Last
// Word stage cards always answer against their own pseudo-difficulty.
func (c *SpellCardInfo) IsForDifficulty(d *Difficulty) bool {
	return c.Difficulty == d
}

// Any wraps c as a cross-game types.AnySpell.
func (c *SpellCardInfo) Any() types.AnySpell {
	return types.AnySpell{Game: types.IN, RawID: uint32(c.ID)}
}
