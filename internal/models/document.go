package models

import (
	"time"

	"gorm.io/datatypes"
)

// StoredDocument is the row used when documents are kept in a relational database.
type StoredDocument struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	Collection string         `gorm:"size:128;index;not null" json:"collection"`
	Body       datatypes.JSON `gorm:"type:json;not null" json:"body"`
	CreatedAt  time.Time      `json:"created_at"`
}

// TableName keeps every collection in a single table.
func (StoredDocument) TableName() string {
	return "documents"
}
