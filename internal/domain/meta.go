package domain

import "time"

// Meta carries the identity fields shared by every stored record: a
// server-generated id, the owning user, and the creation timestamp.
// Seq is a per-collection insertion counter used as an ordering
// tiebreak; it never leaves the process.
type Meta struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	Seq       uint64    `json:"-"`
}

// EntityID returns the record's generated identifier.
func (m *Meta) EntityID() string { return m.ID }

// Owner returns the owning user's id.
func (m *Meta) Owner() string { return m.UserID }

// Sequence returns the per-collection insertion counter.
func (m *Meta) Sequence() uint64 { return m.Seq }

// Stamp assigns the server-side identity fields at creation time.
func (m *Meta) Stamp(id string, seq uint64, at time.Time) {
	m.ID = id
	m.Seq = seq
	m.CreatedAt = at
}
