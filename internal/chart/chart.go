// Package chart manages chord charts: named fretboard diagrams that can be
// shared between items through an attachment list.
package chart

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/fretlog/fretlog/internal/wire"
)

// Diagram payload defaults. These match what chart editors assume when a
// field is omitted.
const (
	DefaultTuning       = "EADGBE"
	DefaultStartingFret = 1
	DefaultNumFrets     = 5
	DefaultNumStrings   = 6
)

// Finger is one fretted position as a [string, fret] pair, optionally
// followed by a finger number. JSON nulls inside the pair are dropped on
// decode; chart editors emit them for unset slots.
type Finger []int

// UnmarshalJSON decodes a finger entry leniently. Entries usually arrive as
// arrays, where null elements and non-numeric noise are skipped rather than
// failing the whole payload; older common-chord rows store them as
// {string, fret, finger} objects instead.
func (f *Finger) UnmarshalJSON(data []byte) error {
	var raw []*float64
	if err := json.Unmarshal(data, &raw); err == nil {
		out := make(Finger, 0, len(raw))
		for _, v := range raw {
			if v == nil {
				continue
			}
			out = append(out, int(*v))
		}
		*f = out
		return nil
	}

	var obj struct {
		String *float64 `json:"string"`
		Fret   *float64 `json:"fret"`
		Finger *float64 `json:"finger"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("decode finger entry: %w", err)
	}
	if obj.String == nil || obj.Fret == nil {
		*f = nil
		return nil
	}
	out := Finger{int(*obj.String), int(*obj.Fret)}
	if obj.Finger != nil {
		out = append(out, int(*obj.Finger))
	}
	*f = out
	return nil
}

// Barre is a bar across several strings at one fret.
type Barre struct {
	FromString int `json:"fromString"`
	ToString   int `json:"toString"`
	Fret       int `json:"fret"`
}

// Payload is the structured diagram stored in a chart's data column.
// Open and muted strings are listed separately and never appear as zero or
// negative frets in Fingers.
type Payload struct {
	Fingers            []Finger `json:"fingers"`
	Barres             []Barre  `json:"barres"`
	Tuning             string   `json:"tuning"`
	Capo               int      `json:"capo"`
	StartingFret       int      `json:"startingFret"`
	NumFrets           int      `json:"numFrets"`
	NumStrings         int      `json:"numStrings"`
	OpenStrings        []int    `json:"openStrings"`
	MutedStrings       []int    `json:"mutedStrings"`
	SectionID          string   `json:"sectionId,omitempty"`
	SectionLabel       string   `json:"sectionLabel,omitempty"`
	SectionRepeatCount string   `json:"sectionRepeatCount,omitempty"`
	HasLineBreakAfter  bool     `json:"hasLineBreakAfter"`
}

// Normalize fills in diagram defaults and drops finger entries that violate
// the payload shape: entries shorter than a [string, fret] pair and entries
// with a non-positive fret (open and muted strings belong in their own
// lists).
func (p Payload) Normalize() Payload {
	if p.Tuning == "" {
		p.Tuning = DefaultTuning
	}
	if p.StartingFret == 0 {
		p.StartingFret = DefaultStartingFret
	}
	if p.NumFrets == 0 {
		p.NumFrets = DefaultNumFrets
	}
	if p.NumStrings == 0 {
		p.NumStrings = DefaultNumStrings
	}
	fingers := make([]Finger, 0, len(p.Fingers))
	for _, f := range p.Fingers {
		if len(f) < 2 || f[1] <= 0 {
			continue
		}
		fingers = append(fingers, f)
	}
	p.Fingers = fingers
	if p.Barres == nil {
		p.Barres = []Barre{}
	}
	if p.OpenStrings == nil {
		p.OpenStrings = []int{}
	}
	if p.MutedStrings == nil {
		p.MutedStrings = []int{}
	}
	return p
}

// Scan implements sql.Scanner, decoding the stored JSON column.
func (p *Payload) Scan(src any) error {
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*p = Payload{}
		return nil
	default:
		return fmt.Errorf("scan chart payload: unsupported type %T", src)
	}
	if len(data) == 0 {
		*p = Payload{}
		return nil
	}
	if err := json.Unmarshal(data, p); err != nil {
		return fmt.Errorf("decode chart payload: %w", err)
	}
	return nil
}

// Value implements driver.Valuer, encoding the payload as JSON.
func (p Payload) Value() (driver.Value, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode chart payload: %w", err)
	}
	return string(data), nil
}

// ChordChart is one diagram row. Items is the set of items the chart is
// attached to; it must never be empty while the row exists. Order is scoped
// per owning item, not global.
type ChordChart struct {
	ID        int64          `db:"chord_id"`
	Items     AttachmentList `db:"item_id"`
	Title     string         `db:"title"`
	Payload   Payload        `db:"chord_data"`
	CreatedAt string         `db:"created_at"`
	Order     int            `db:"order_col"`
}

// Wire renders the chart in the column-letter record shape. Column D is the
// structured payload; everything else is a string.
func (c ChordChart) Wire() wire.Record {
	return wire.Record{
		"A": strconv.FormatInt(c.ID, 10),
		"B": c.Items.String(),
		"C": c.Title,
		"D": c.Payload,
		"E": c.CreatedAt,
		"F": strconv.Itoa(c.Order),
	}
}

// Flattened renders the chart in the editor's flattened record shape: chart
// metadata and payload fields hoisted to one level.
func (c ChordChart) Flattened() map[string]any {
	p := c.Payload.Normalize()
	return map[string]any{
		"id":                 strconv.FormatInt(c.ID, 10),
		"itemId":             c.Items.String(),
		"title":              c.Title,
		"order":              c.Order,
		"createdAt":          c.CreatedAt,
		"fingers":            p.Fingers,
		"barres":             p.Barres,
		"tuning":             p.Tuning,
		"capo":               p.Capo,
		"startingFret":       p.StartingFret,
		"numFrets":           p.NumFrets,
		"numStrings":         p.NumStrings,
		"openStrings":        p.OpenStrings,
		"mutedStrings":       p.MutedStrings,
		"sectionId":          p.SectionID,
		"sectionLabel":       p.SectionLabel,
		"sectionRepeatCount": p.SectionRepeatCount,
		"hasLineBreakAfter":  p.HasLineBreakAfter,
	}
}
