package domain

import "time"

// BaseModel is the common base struct for all persisted records.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt: every delete in this system is a hard delete.
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageRequest holds listing parameters parsed from the query string.
// Search is the free-text term matched against an entity's designated text
// columns; Filter holds the remaining recognized scalar filters keyed by
// query parameter name. Absence of a filter means "no constraint".
type PageRequest struct {
	Page   int
	Limit  int
	Search string
	Filter map[string]string
}

// Offset converts the 1-indexed page into a row offset.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Pagination is the metadata block of a paginated listing response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// PageResult is a bounded slice of records plus pagination metadata.
// Total always reflects a count query executed with the same filter
// conjunction as the data query.
type PageResult[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
