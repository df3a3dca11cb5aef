// Package id defines the two identifier spaces for practice items.
//
// Items carry two identifiers that must never be confused: the external
// identifier, a historically stable string originating from the legacy
// spreadsheet's row keys, and the internal identifier, the storage-assigned
// numeric primary key. The types here keep the two spaces apart at compile
// time; conversion happens only through the item repository's resolver.
package id

import "strconv"

// External is the stable, string-typed item identifier used by clients and
// by the legacy spreadsheet backend. It is opaque text: even when it looks
// numeric it must never be parsed as a number, because historical values can
// collide with autoincrement ranges.
type External string

func (e External) String() string {
	return string(e)
}

// IsEmpty reports whether the identifier is unset.
func (e External) IsEmpty() bool {
	return e == ""
}

// Internal is the storage-engine-assigned numeric primary key of an item row.
type Internal int64

func (i Internal) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// DefaultExternal derives the external identifier assigned to an item created
// without one: the stringified internal key.
func (i Internal) DefaultExternal() External {
	return External(i.String())
}
