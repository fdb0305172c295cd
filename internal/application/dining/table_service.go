package dining

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/tableside/backend/internal/domain/dining"
)

// QRCodeSize is the pixel width of generated table QR codes
const QRCodeSize = 256

// TableService handles dining table business operations
type TableService struct {
	tableRepo   dining.TableRepository
	joinBaseURL string
}

// NewTableService creates a new TableService. joinBaseURL is the public
// frontend URL prefix encoded into QR codes, e.g. https://app.example.com/join.
func NewTableService(tableRepo dining.TableRepository, joinBaseURL string) *TableService {
	return &TableService{
		tableRepo:   tableRepo,
		joinBaseURL: strings.TrimRight(joinBaseURL, "/"),
	}
}

// Create creates a new table with a generated join code
func (s *TableService) Create(ctx context.Context, restaurantID uuid.UUID, req CreateTableRequest) (*TableResponse, error) {
	table, err := dining.NewTable(restaurantID, req.Label)
	if err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	response := toTableResponse(table, s.joinBaseURL)
	return &response, nil
}

// GetByID retrieves a table by ID for a restaurant
func (s *TableService) GetByID(ctx context.Context, restaurantID, tableID uuid.UUID) (*TableResponse, error) {
	table, err := s.tableRepo.FindByIDForTenant(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}
	response := toTableResponse(table, s.joinBaseURL)
	return &response, nil
}

// List retrieves all tables for a restaurant
func (s *TableService) List(ctx context.Context, restaurantID uuid.UUID) ([]TableResponse, error) {
	tables, err := s.tableRepo.FindAllForTenant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	responses := make([]TableResponse, len(tables))
	for i := range tables {
		responses[i] = toTableResponse(&tables[i], s.joinBaseURL)
	}
	return responses, nil
}

// Rename changes a table's label. The join code never changes, so printed
// QR codes stay valid.
func (s *TableService) Rename(ctx context.Context, restaurantID, tableID uuid.UUID, req RenameTableRequest) (*TableResponse, error) {
	table, err := s.tableRepo.FindByIDForTenant(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}

	if err := table.Rename(req.Label); err != nil {
		return nil, err
	}

	if err := s.tableRepo.Save(ctx, table); err != nil {
		return nil, err
	}

	response := toTableResponse(table, s.joinBaseURL)
	return &response, nil
}

// Delete removes a table
func (s *TableService) Delete(ctx context.Context, restaurantID, tableID uuid.UUID) error {
	return s.tableRepo.DeleteForTenant(ctx, restaurantID, tableID)
}

// QRCodePNG renders the table's join URL as a PNG QR code
func (s *TableService) QRCodePNG(ctx context.Context, restaurantID, tableID uuid.UUID) ([]byte, error) {
	table, err := s.tableRepo.FindByIDForTenant(ctx, restaurantID, tableID)
	if err != nil {
		return nil, err
	}

	png, err := qrcode.Encode(joinURL(s.joinBaseURL, table.Code), qrcode.Medium, QRCodeSize)
	if err != nil {
		return nil, fmt.Errorf("encode table QR code: %w", err)
	}
	return png, nil
}

// Join resolves a scanned join code to the restaurant and table it belongs to
func (s *TableService) Join(ctx context.Context, code string) (*JoinResponse, error) {
	table, err := s.tableRepo.FindByCode(ctx, strings.ToLower(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}

	return &JoinResponse{
		RestaurantID: table.RestaurantID,
		TableID:      table.ID,
		TableLabel:   table.Label,
	}, nil
}

func joinURL(base, code string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(base, "/"), code)
}
