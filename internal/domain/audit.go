package domain

import "time"

// Audit carries the bookkeeping fields shared by every entity. Soft-deleted
// rows are excluded from all default queries but retained for audit.
type Audit struct {
	IsActive  bool       `json:"is_active"`
	CreatedBy string     `json:"created_by"`
	UpdatedBy *string    `json:"updated_by,omitempty"`
	DeletedBy *string    `json:"deleted_by,omitempty"`
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
