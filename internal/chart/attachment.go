package chart

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/fretlog/fretlog/internal/id"
)

// listSeparator joins attachment lists in storage. The spacing is part of
// the persisted representation and must not change: existing rows were
// written with it.
const listSeparator = ", "

// AttachmentList is the ordered set of items a chord chart is attached to.
// In storage it is a single comma-and-space-separated text column (for
// example "107, 61"); in memory it behaves as a set keyed by external item
// identifier. A chart's list must never be empty while the row exists; the
// repository deletes the row when the last attachment is removed.
type AttachmentList []id.External

// ParseAttachmentList reads the stored comma-separated representation.
// Blank tokens are dropped.
func ParseAttachmentList(s string) AttachmentList {
	var list AttachmentList
	for _, token := range strings.Split(s, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		list = append(list, id.External(token))
	}
	return list
}

// String renders the stored representation.
func (l AttachmentList) String() string {
	parts := make([]string, len(l))
	for i, ext := range l {
		parts[i] = string(ext)
	}
	return strings.Join(parts, listSeparator)
}

// Contains reports membership by exact identifier equality. Identifiers are
// compared as whole tokens, never as substrings: a list attached to item
// "107" does not contain item "7".
func (l AttachmentList) Contains(ext id.External) bool {
	for _, e := range l {
		if e == ext {
			return true
		}
	}
	return false
}

// WithAttached returns the list with ext appended, or the list unchanged if
// ext is already present.
func (l AttachmentList) WithAttached(ext id.External) AttachmentList {
	if l.Contains(ext) {
		return l
	}
	return append(l, ext)
}

// WithDetached returns the list with ext removed, and whether it was
// present.
func (l AttachmentList) WithDetached(ext id.External) (AttachmentList, bool) {
	for i, e := range l {
		if e == ext {
			return append(l[:i:i], l[i+1:]...), true
		}
	}
	return l, false
}

// IsEmpty reports whether the list has no attachments. An empty list is an
// illegal persistent state.
func (l AttachmentList) IsEmpty() bool {
	return len(l) == 0
}

// Scan implements sql.Scanner, reading the stored comma-separated text.
func (l *AttachmentList) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*l = ParseAttachmentList(v)
	case []byte:
		*l = ParseAttachmentList(string(v))
	case nil:
		*l = nil
	default:
		return fmt.Errorf("scan attachment list: unsupported type %T", src)
	}
	return nil
}

// Value implements driver.Valuer, writing the stored comma-separated text.
func (l AttachmentList) Value() (driver.Value, error) {
	return l.String(), nil
}
