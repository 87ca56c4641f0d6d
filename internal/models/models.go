package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CatalogEntry is the stored form of one candidate. The payload column holds
// the variant's JSON; Position keeps the category's display order.
type CatalogEntry struct {
	Category  Category  `gorm:"primaryKey;type:varchar(32)" json:"category"`
	ID        string    `gorm:"primaryKey;type:varchar(128)" json:"id"`
	Position  int       `gorm:"not null;index" json:"position"`
	Payload   []byte    `gorm:"type:jsonb;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCatalogEntry encodes c for storage at the given position.
func NewCatalogEntry(c Candidate, position int) (CatalogEntry, error) {
	payload, err := json.Marshal(c)
	if err != nil {
		return CatalogEntry{}, fmt.Errorf("failed to encode %s %q: %w", c.Category(), c.CandidateID(), err)
	}
	return CatalogEntry{
		Category: c.Category(),
		ID:       c.CandidateID(),
		Position: position,
		Payload:  payload,
	}, nil
}

// Candidate decodes the stored payload.
func (e CatalogEntry) Candidate() (Candidate, error) {
	return DecodeCandidate(e.Category, e.Payload)
}
