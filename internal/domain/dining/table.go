package dining

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tableside/backend/internal/domain/shared"
)

// JoinCodeLength is the length of the hex join code printed on table QR codes
const JoinCodeLength = 10

// Table represents a physical table in the dining room. Each table carries a
// short unique join code that diners scan to open the menu for the right
// restaurant and table.
type Table struct {
	shared.TenantAggregateRoot
	Label string `gorm:"type:varchar(40);not null"`
	Code  string `gorm:"type:varchar(80);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Table) TableName() string {
	return "tables"
}

// NewTable creates a new table with a generated join code
func NewTable(restaurantID uuid.UUID, label string) (*Table, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return nil, shared.NewDomainError("INVALID_LABEL", "Table label cannot be empty")
	}
	if len(label) > 40 {
		return nil, shared.NewDomainError("INVALID_LABEL", "Table label cannot exceed 40 characters")
	}

	return &Table{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(restaurantID),
		Label:               label,
		Code:                generateJoinCode(),
	}, nil
}

// Rename changes the table's label
func (t *Table) Rename(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return shared.NewDomainError("INVALID_LABEL", "Table label cannot be empty")
	}

	t.Label = label
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// generateJoinCode produces a short opaque code unique enough for QR joins
func generateJoinCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return raw[:JoinCodeLength]
}
