package models

import (
	"time"

	"github.com/google/uuid"
)

// IBase is implemented by every persisted entity through the embedded Base.
type IBase interface {
	GenIDIfEmpty()
	GetID() string
	Stamp(now time.Time)
}

// Base carries the storage-assigned identity of an entity.
type Base struct {
	ID        string    `bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

func (m *Base) GenIDIfEmpty() {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
}

func (m *Base) GetID() string {
	return m.ID
}

// Stamp assigns the id (if missing) and the creation timestamp. Called by the store on insert.
func (m *Base) Stamp(now time.Time) {
	m.GenIDIfEmpty()
	m.CreatedAt = now.UTC()
}

// Kind names an entity collection.
type Kind string

const (
	KindProperty    Kind = "properties"
	KindRoom        Kind = "rooms"
	KindContractor  Kind = "contractors"
	KindContract    Kind = "contracts"
	KindTransaction Kind = "transactions"
	KindInquiry     Kind = "inquiries"
)

// Collection returns the Mongo collection backing the kind.
func (k Kind) Collection() string {
	return string(k)
}

// ListingPath is the dashboard path that lists the kind. It doubles as the cache key prefix.
func (k Kind) ListingPath() string {
	return "/dashboard/" + string(k)
}
