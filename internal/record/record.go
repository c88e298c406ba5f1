// Package record defines the four tracked record kinds and the row codec
// that maps each of them onto one sheet of the workbook. Column order is
// the only contract between a record and its persisted row: position is
// meaning, and every kind serializes in exactly its declared header order.
package record

import "time"

// Identity carries the columns shared by every record kind. ID is assigned
// once at creation and never changes; UpdatedAt is refreshed on every
// successful update.
type Identity struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i *Identity) identity() *Identity { return i }

// Record is the closed set of row-serializable tracker records. Only types
// in this package implement it.
type Record interface {
	// Kind reports which of the four record kinds this is.
	Kind() Kind

	identity() *Identity

	// fields returns the cells between the ID column and the CreatedAt
	// column, in declared header order. Nil entries are empty cells.
	fields() []any
}

// ID returns the record's identifier, empty until assigned.
func ID(r Record) string { return r.identity().ID }

// Assign stamps a fresh identity onto r at creation time, discarding
// whatever identifier the caller may have set.
func Assign(r Record, id string, now time.Time) {
	ident := r.identity()
	ident.ID = id
	ident.CreatedAt = now
	ident.UpdatedAt = now
}

// Touch refreshes the modification stamp ahead of an update.
func Touch(r Record, now time.Time) {
	r.identity().UpdatedAt = now
}
