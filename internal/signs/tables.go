// Package signs holds the compiled-in sign tables for every supported
// classification system. Tables are process constants: accessors hand out
// copies so nothing can mutate the originals.
package signs

import (
	"maps"

	"github.com/ppiankov/calsigns/internal/model"
)

func dm(day, month int) model.DayMonth {
	return model.DayMonth{Day: day, Month: month}
}

func zodiac(element, modality string) map[string]string {
	return map[string]string{
		model.AttrElement:  element,
		model.AttrModality: modality,
	}
}

func stone(s string) map[string]string {
	return map[string]string{model.AttrStone: s}
}

var traditional = model.SignTable{
	ID:   IDTraditional,
	Name: "Traditional Astrological Zodiac",
	Options: []string{
		TAAquarius, TAAries, TACancer, TACapricorn, TAGemini, TALeo,
		TALibra, TAPisces, TASagittarius, TAScorpio, TATaurus, TAVirgo,
	},
	Entries: []model.SignEntry{
		{Start: dm(21, 3), End: dm(20, 4), Sign: TAAries, Attributes: zodiac(model.ElementFire, model.ModalityCardinal)},
		{Start: dm(21, 4), End: dm(20, 5), Sign: TATaurus, Attributes: zodiac(model.ElementEarth, model.ModalityFixed)},
		{Start: dm(21, 5), End: dm(21, 6), Sign: TAGemini, Attributes: zodiac(model.ElementAir, model.ModalityMutable)},
		{Start: dm(22, 6), End: dm(22, 7), Sign: TACancer, Attributes: zodiac(model.ElementWater, model.ModalityCardinal)},
		{Start: dm(23, 7), End: dm(22, 8), Sign: TALeo, Attributes: zodiac(model.ElementFire, model.ModalityFixed)},
		{Start: dm(23, 8), End: dm(21, 9), Sign: TAVirgo, Attributes: zodiac(model.ElementEarth, model.ModalityMutable)},
		{Start: dm(22, 9), End: dm(22, 10), Sign: TALibra, Attributes: zodiac(model.ElementAir, model.ModalityCardinal)},
		{Start: dm(23, 10), End: dm(22, 11), Sign: TAScorpio, Attributes: zodiac(model.ElementWater, model.ModalityFixed)},
		{Start: dm(23, 11), End: dm(21, 12), Sign: TASagittarius, Attributes: zodiac(model.ElementFire, model.ModalityMutable)},
		{Start: dm(22, 12), End: dm(20, 1), Sign: TACapricorn, Attributes: zodiac(model.ElementEarth, model.ModalityCardinal)},
		{Start: dm(21, 1), End: dm(19, 2), Sign: TAAquarius, Attributes: zodiac(model.ElementAir, model.ModalityFixed)},
		{Start: dm(20, 2), End: dm(20, 3), Sign: TAPisces, Attributes: zodiac(model.ElementWater, model.ModalityMutable)},
	},
}

// Bamboo and Pebble each span three calendar months, so May and September
// never match under the start/end month test.
var japanZen = model.SignTable{
	ID:   IDJapanZen,
	Name: "Japan Zen Signs",
	Options: []string{
		JZTurtle, JZCherry, JZSun, JZBamboo, JZBuffalo, JZLotus,
		JZBridge, JZPebble, JZCaesar, JZEmpress, JZMoon,
	},
	Entries: []model.SignEntry{
		{Start: dm(19, 1), End: dm(14, 2), Sign: JZTurtle},
		{Start: dm(15, 2), End: dm(20, 3), Sign: JZCherry},
		{Start: dm(21, 3), End: dm(29, 4), Sign: JZSun},
		{Start: dm(30, 4), End: dm(4, 6), Sign: JZBamboo},
		{Start: dm(5, 6), End: dm(6, 7), Sign: JZBuffalo},
		{Start: dm(7, 7), End: dm(1, 8), Sign: JZLotus},
		{Start: dm(2, 8), End: dm(27, 8), Sign: JZBridge},
		{Start: dm(28, 8), End: dm(10, 10), Sign: JZPebble},
		{Start: dm(11, 10), End: dm(18, 11), Sign: JZCaesar},
		{Start: dm(19, 11), End: dm(26, 12), Sign: JZEmpress},
		{Start: dm(27, 12), End: dm(18, 1), Sign: JZMoon},
	},
}

var nativeAmerican = model.SignTable{
	ID:   IDNativeAmerican,
	Name: "Native American Signs",
	Options: []string{
		NAFalcon, NABeaver, NADeer, NAWoodpecker, NASalmon, NABear,
		NARaven, NASnake, NAOwl, NAGoose, NAOtter, NAWolf,
	},
	Entries: []model.SignEntry{
		{Start: dm(21, 3), End: dm(19, 4), Sign: NAFalcon, Attributes: stone(model.StoneOpal)},
		{Start: dm(20, 4), End: dm(20, 5), Sign: NABeaver, Attributes: stone(model.StoneJasper)},
		{Start: dm(21, 5), End: dm(20, 6), Sign: NADeer, Attributes: stone(model.StoneAgate)},
		{Start: dm(21, 6), End: dm(21, 7), Sign: NAWoodpecker, Attributes: stone(model.StoneRoseQuartz)},
		{Start: dm(22, 7), End: dm(21, 8), Sign: NASalmon, Attributes: stone(model.StoneCarnelian)},
		{Start: dm(22, 8), End: dm(21, 9), Sign: NABear, Attributes: stone(model.StoneAmethyst)},
		{Start: dm(22, 9), End: dm(22, 10), Sign: NARaven, Attributes: stone(model.StoneAzurite)},
		{Start: dm(23, 10), End: dm(22, 11), Sign: NASnake, Attributes: stone(model.StoneCopper)},
		{Start: dm(21, 11), End: dm(21, 12), Sign: NAOwl, Attributes: stone(model.StoneObsidian)},
		{Start: dm(22, 12), End: dm(19, 1), Sign: NAGoose, Attributes: stone(model.StoneQuartz)},
		{Start: dm(20, 1), End: dm(18, 2), Sign: NAOtter, Attributes: stone(model.StoneTurquoise)},
		{Start: dm(19, 2), End: dm(20, 3), Sign: NAWolf, Attributes: stone(model.StoneJade)},
	},
}

// Most Egyptian signs own several windows across the year. Windows overlap
// in places; listing order decides.
var egyptian = model.SignTable{
	ID:   IDEgyptian,
	Name: "Egyptian Signs",
	Options: []string{
		ENile, EAmunRa, EMut, EGeb, EOsiris, EIsis,
		EThoth, EHorus, EAnubis, ESeth, EBastet, ESekhmet,
	},
	Entries: []model.SignEntry{
		{Start: dm(1, 1), End: dm(7, 1), Sign: ENile},
		{Start: dm(8, 1), End: dm(21, 1), Sign: EAmunRa},
		{Start: dm(22, 1), End: dm(31, 1), Sign: EMut},
		{Start: dm(12, 2), End: dm(29, 2), Sign: EGeb},
		{Start: dm(1, 3), End: dm(10, 3), Sign: EOsiris},
		{Start: dm(11, 3), End: dm(31, 3), Sign: EIsis},
		{Start: dm(1, 4), End: dm(19, 4), Sign: EThoth},
		{Start: dm(20, 4), End: dm(7, 8), Sign: EHorus},
		{Start: dm(8, 5), End: dm(27, 5), Sign: EAnubis},
		{Start: dm(28, 5), End: dm(18, 6), Sign: ESeth},
		{Start: dm(14, 7), End: dm(28, 7), Sign: EBastet},
		{Start: dm(29, 7), End: dm(11, 8), Sign: ESekhmet},
		{Start: dm(19, 6), End: dm(28, 6), Sign: ENile},
		{Start: dm(1, 2), End: dm(11, 2), Sign: EAmunRa},
		{Start: dm(8, 9), End: dm(22, 9), Sign: EMut},
		{Start: dm(20, 8), End: dm(31, 8), Sign: EGeb},
		{Start: dm(27, 11), End: dm(18, 12), Sign: EOsiris},
		{Start: dm(18, 10), End: dm(29, 10), Sign: EIsis},
		{Start: dm(8, 11), End: dm(17, 11), Sign: EThoth},
		{Start: dm(12, 8), End: dm(19, 8), Sign: EHorus},
		{Start: dm(29, 6), End: dm(13, 7), Sign: EAnubis},
		{Start: dm(28, 9), End: dm(2, 10), Sign: ESeth},
		{Start: dm(23, 9), End: dm(27, 9), Sign: EBastet},
		{Start: dm(30, 10), End: dm(7, 11), Sign: ESekhmet},
		{Start: dm(1, 9), End: dm(7, 9), Sign: ENile},
		{Start: dm(19, 12), End: dm(31, 12), Sign: EIsis},
		{Start: dm(3, 10), End: dm(17, 10), Sign: EBastet},
		{Start: dm(18, 11), End: dm(26, 11), Sign: ENile},
	},
}

var celtic = model.SignTable{
	ID:   IDCeltic,
	Name: "Celtic Signs",
	Options: []string{
		CRowan, CAsh, CAlder, CWillow, CHawthorn, COak, CHolly,
		CHazel, CVine, CIvy, CReed, CElder, CBirch,
	},
	Entries: []model.SignEntry{
		{Start: dm(21, 1), End: dm(17, 2), Sign: CRowan},
		{Start: dm(18, 2), End: dm(17, 3), Sign: CAsh},
		{Start: dm(18, 3), End: dm(14, 4), Sign: CAlder},
		{Start: dm(15, 4), End: dm(12, 5), Sign: CWillow},
		{Start: dm(13, 5), End: dm(9, 6), Sign: CHawthorn},
		{Start: dm(10, 6), End: dm(7, 7), Sign: COak},
		{Start: dm(8, 7), End: dm(4, 8), Sign: CHolly},
		{Start: dm(5, 8), End: dm(1, 9), Sign: CHazel},
		{Start: dm(2, 9), End: dm(29, 9), Sign: CVine},
		{Start: dm(30, 9), End: dm(27, 10), Sign: CIvy},
		{Start: dm(28, 10), End: dm(24, 11), Sign: CReed},
		{Start: dm(25, 11), End: dm(23, 12), Sign: CElder},
		{Start: dm(24, 12), End: dm(20, 1), Sign: CBirch},
	},
}

var builtin = []*model.SignTable{&traditional, &japanZen, &nativeAmerican, &egyptian, &celtic}

// All returns copies of every built-in table in registration order
func All() []*model.SignTable {
	out := make([]*model.SignTable, len(builtin))
	for i, t := range builtin {
		out[i] = Clone(t)
	}
	return out
}

// Lookup returns a copy of the built-in table with the given ID
func Lookup(id string) (*model.SignTable, bool) {
	for _, t := range builtin {
		if t.ID == id {
			return Clone(t), true
		}
	}
	return nil, false
}

// IDs returns the built-in system IDs in registration order
func IDs() []string {
	ids := make([]string, len(builtin))
	for i, t := range builtin {
		ids[i] = t.ID
	}
	return ids
}

// Clone deep-copies a table
func Clone(t *model.SignTable) *model.SignTable {
	c := &model.SignTable{
		ID:      t.ID,
		Name:    t.Name,
		Options: append([]string(nil), t.Options...),
		Entries: make([]model.SignEntry, len(t.Entries)),
	}
	for i, e := range t.Entries {
		c.Entries[i] = e
		if e.Attributes != nil {
			c.Entries[i].Attributes = maps.Clone(e.Attributes)
		}
	}
	return c
}
