// Package routine manages practice routines: ordered item sequences with
// per-item completion tracking, plus the active-routine marker.
package routine

import (
	"strconv"

	"github.com/fretlog/fretlog/internal/id"
	"github.com/fretlog/fretlog/internal/wire"
)

// Routine is a named ordered collection of items. Order is a drag-and-drop
// display hint and may contain gaps; listings always use creation order.
type Routine struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	CreatedAt string `db:"created_at"`
	Order     int    `db:"order"`
}

// Wire renders the routine in the column-letter record shape.
func (r Routine) Wire() wire.Record {
	return wire.Record{
		"A": strconv.FormatInt(r.ID, 10),
		"B": r.Name,
		"C": r.CreatedAt,
		"D": strconv.Itoa(r.Order),
	}
}

// FromWire builds a routine from a column-letter record. A non-empty column
// A carries an explicit identifier to preserve, used when replaying rows
// from the spreadsheet backend.
func FromWire(rec wire.Record) Routine {
	var routineID int64
	if a := rec.String("A"); a != "" {
		routineID, _ = strconv.ParseInt(a, 10, 64)
	}
	return Routine{
		ID:    routineID,
		Name:  rec.String("B"),
		Order: rec.Int("D"),
	}
}

// Entry is one routine_items join row, attaching an item to a routine with
// position and progress. ItemKey holds the item's storage key, never its
// external identifier; ItemExternalID is joined in for the wire shape,
// which carries only external identifiers. The row's creation order, not
// Order, is the authoritative traversal order.
type Entry struct {
	ID             int64       `db:"id"`
	RoutineID      int64       `db:"routine_id"`
	ItemKey        id.Internal `db:"item_id"`
	Order          int         `db:"order"`
	Completed      bool        `db:"completed"`
	CreatedAt      string      `db:"created_at"`
	ItemExternalID id.External `db:"item_external_id"`
}

// Wire renders the entry in the column-letter record shape. Column B is the
// item's external identifier; the storage key never crosses the wire.
func (e Entry) Wire() wire.Record {
	return wire.Record{
		"A": strconv.FormatInt(e.ID, 10),
		"B": string(e.ItemExternalID),
		"C": strconv.Itoa(e.Order),
		"D": wire.FormatBool(e.Completed),
	}
}
