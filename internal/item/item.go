// Package item manages practice items (songs and exercises) and the
// resolution between their two identifier spaces.
package item

import (
	"strconv"

	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

// Item is a practice subject. Key is the storage primary key; ExternalID is
// the stable client-facing identifier (see package id for why they differ).
type Item struct {
	Key         id.Internal `db:"id"`
	ExternalID  id.External `db:"item_id"`
	Title       string      `db:"title"`
	Notes       string      `db:"notes"`
	Duration    string      `db:"duration"`
	Description string      `db:"description"`
	Order       int         `db:"order"`
	Tuning      string      `db:"tuning"`
	Songbook    string      `db:"songbook"`
	CreatedAt   string      `db:"created_at"`
	UpdatedAt   string      `db:"updated_at"`
}

// Summary is the lightweight listing shape: enough to render an item picker
// without dragging notes and descriptions across the wire.
type Summary struct {
	Key        id.Internal `db:"id"`
	ExternalID id.External `db:"item_id"`
	Title      string      `db:"title"`
	Order      int         `db:"order"`
	Tuning     string      `db:"tuning"`
}

// Wire renders the item in the column-letter record shape expected by
// existing clients.
func (i Item) Wire() wire.Record {
	return wire.Record{
		"A": strconv.FormatInt(int64(i.Key), 10),
		"B": string(i.ExternalID),
		"C": i.Title,
		"D": i.Notes,
		"E": i.Duration,
		"F": i.Description,
		"G": strconv.Itoa(i.Order),
		"H": i.Tuning,
		"I": i.Songbook,
	}
}

// Wire renders the summary using the same letters as the full shape, minus
// the columns it does not carry.
func (s Summary) Wire() wire.Record {
	return wire.Record{
		"A": strconv.FormatInt(int64(s.Key), 10),
		"B": string(s.ExternalID),
		"C": s.Title,
		"G": strconv.Itoa(s.Order),
		"H": s.Tuning,
	}
}

// FromWire builds an item from a column-letter record. Column A is ignored:
// the storage key is assigned by the database, never by callers.
func FromWire(rec wire.Record) Item {
	return Item{
		ExternalID:  id.External(rec.String("B")),
		Title:       rec.String("C"),
		Notes:       rec.String("D"),
		Duration:    rec.String("E"),
		Description: rec.String("F"),
		Order:       rec.Int("G"),
		Tuning:      rec.String("H"),
		Songbook:    rec.String("I"),
	}
}
