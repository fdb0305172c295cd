package dining

import (
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/dining"
)

// CreateTableRequest represents a request to create a table
type CreateTableRequest struct {
	Label string `json:"label" binding:"required,min=1,max=40"`
}

// RenameTableRequest represents a request to rename a table
type RenameTableRequest struct {
	Label string `json:"label" binding:"required,min=1,max=40"`
}

// TableResponse represents a table in API responses
type TableResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	Code      string    `json:"code"`
	JoinURL   string    `json:"join_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JoinResponse is what a diner sees after scanning a table QR code
type JoinResponse struct {
	RestaurantID uuid.UUID `json:"restaurant_id"`
	TableID      uuid.UUID `json:"table_id"`
	TableLabel   string    `json:"table_label"`
}

// toTableResponse converts a table to its API representation
func toTableResponse(table *dining.Table, joinBaseURL string) TableResponse {
	return TableResponse{
		ID:        table.ID,
		Label:     table.Label,
		Code:      table.Code,
		JoinURL:   joinURL(joinBaseURL, table.Code),
		CreatedAt: table.CreatedAt,
		UpdatedAt: table.UpdatedAt,
	}
}
