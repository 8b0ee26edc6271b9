package model

import (
	"fmt"
	"maps"
	"time"
)

// DayMonth is a calendar day without a year
type DayMonth struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
}

// DayMonthOf returns the day and month of an already-localized time
func DayMonthOf(t time.Time) DayMonth {
	return DayMonth{Day: t.Day(), Month: int(t.Month())}
}

func (d DayMonth) String() string {
	return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
}

// SignEntry maps one date range to a sign
type SignEntry struct {
	Start      DayMonth          `json:"start" yaml:"start"`
	End        DayMonth          `json:"end" yaml:"end"`
	Sign       string            `json:"sign" yaml:"sign"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
}

// SignTable is the ordered entry list of one classification system.
// Entry order is significant: the first entry that matches a date wins.
type SignTable struct {
	ID      string      `json:"id" yaml:"id"`           // Stable identifier used by the host
	Name    string      `json:"name" yaml:"name"`       // Display name
	Options []string    `json:"options" yaml:"options"` // Closed set of signs the table can produce
	Entries []SignEntry `json:"entries" yaml:"entries"`
}

// HasOption reports whether sign belongs to the table's vocabulary
func (t *SignTable) HasOption(sign string) bool {
	for _, o := range t.Options {
		if o == sign {
			return true
		}
	}
	return false
}

// DistinctSigns returns each sign appearing in Entries once, in first-seen order
func (t *SignTable) DistinctSigns() []string {
	seen := make(map[string]bool, len(t.Entries))
	var out []string
	for _, e := range t.Entries {
		if !seen[e.Sign] {
			seen[e.Sign] = true
			out = append(out, e.Sign)
		}
	}
	return out
}

// Result is the classification of one date against one table
type Result struct {
	Sign       string            `json:"sign" yaml:"sign"`
	Attributes map[string]string `json:"attributes" yaml:"attributes"`
}

// ResultOf builds a Result from an entry. Attributes are copied and never nil.
func ResultOf(e SignEntry) Result {
	attrs := make(map[string]string, len(e.Attributes))
	maps.Copy(attrs, e.Attributes)
	return Result{Sign: e.Sign, Attributes: attrs}
}

// Clone returns a deep copy of the result
func (r Result) Clone() Result {
	attrs := make(map[string]string, len(r.Attributes))
	maps.Copy(attrs, r.Attributes)
	return Result{Sign: r.Sign, Attributes: attrs}
}

// Attribute keys carried by table entries
const (
	AttrElement  = "element"
	AttrModality = "modality"
	AttrStone    = "stone"
)

// Elements
const (
	ElementFire  = "Fire"
	ElementEarth = "Earth"
	ElementAir   = "Air"
	ElementWater = "Water"
)

// Modalities
const (
	ModalityCardinal = "Cardinal"
	ModalityFixed    = "Fixed"
	ModalityMutable  = "Mutable"
)

// Birthstones
const (
	StoneOpal       = "Opal"
	StoneJasper     = "Jasper"
	StoneAgate      = "Agate"
	StoneRoseQuartz = "Rose Quartz"
	StoneCarnelian  = "Carnelian"
	StoneAmethyst   = "Amethyst"
	StoneAzurite    = "Azurite"
	StoneCopper     = "Copper"
	StoneObsidian   = "Obsidian"
	StoneQuartz     = "Quartz"
	StoneTurquoise  = "Turquoise"
	StoneJade       = "Jade"
)
