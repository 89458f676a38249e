package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"scalehouse/internal/domain/ticket"
	"scalehouse/internal/infrastructure/persistence/mappers"
	"scalehouse/internal/infrastructure/persistence/models"
	"scalehouse/internal/shared/db"
	sharederrors "scalehouse/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateKeyError(err) {
			return sharederrors.NewDuplicateKeyError(
				fmt.Sprintf("ticket %s already exists", t.Number()))
		}
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *TicketRepository) FindByNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Where("ticket_number = ?", number).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sharederrors.NewNotFoundError(
				fmt.Sprintf("ticket %s not found", number))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// searchColumns is everything except the document blob; search results
// carry metadata only.
var searchColumns = []string{
	"id", "ticket_number", "ticket_year", "ticket_sequence", "direction",
	"created_at", "job_id", "job_code_snapshot", "job_name_snapshot",
	"customer_snapshot", "truck_id", "truck_number_snapshot", "material_id",
	"material_name_snapshot", "quantity", "unit", "notes", "pdf_path",
}

func (r *TicketRepository) Search(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	query := applyTicketFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter).
		Select(searchColumns).
		Order("created_at DESC, id DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var modelList []models.TicketModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to search tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket %s: %w", modelList[i].TicketNumber, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *TicketRepository) Document(ctx context.Context, number string) ([]byte, string, error) {
	var model models.TicketModel
	err := r.db.WithContext(ctx).
		Select("pdf_blob", "pdf_path").
		Where("ticket_number = ?", number).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", sharederrors.NewNotFoundError(
				fmt.Sprintf("ticket %s not found", number))
		}
		return nil, "", fmt.Errorf("failed to load ticket document: %w", err)
	}
	return model.PDFBlob, model.PDFPath, nil
}

func (r *TicketRepository) TotalsByUnit(ctx context.Context, filter ticket.TicketFilter) ([]ticket.UnitTotal, error) {
	var rows []struct {
		Unit          string
		TotalQuantity float64
	}
	err := applyTicketFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter).
		Select("unit, SUM(quantity) AS total_quantity").
		Group("unit").
		Order("unit").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total tickets by unit: %w", err)
	}

	totals := make([]ticket.UnitTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, ticket.UnitTotal{
			Unit:          row.Unit,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return totals, nil
}

func (r *TicketRepository) TotalsByMaterial(ctx context.Context, filter ticket.TicketFilter) ([]ticket.MaterialTotal, error) {
	var rows []struct {
		MaterialNameSnapshot string
		Unit                 string
		TotalQuantity        float64
	}
	err := applyTicketFilter(r.db.WithContext(ctx).Model(&models.TicketModel{}), filter).
		Select("material_name_snapshot, unit, SUM(quantity) AS total_quantity").
		Group("material_name_snapshot, unit").
		Order("material_name_snapshot, unit").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total tickets by material: %w", err)
	}

	totals := make([]ticket.MaterialTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, ticket.MaterialTotal{
			MaterialName:  row.MaterialNameSnapshot,
			Unit:          row.Unit,
			TotalQuantity: row.TotalQuantity,
		})
	}
	return totals, nil
}

// likeEscaper neutralizes LIKE metacharacters in user-supplied filter
// text, so the prefix match stays literal.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func prefixPattern(s string) string {
	return likeEscaper.Replace(s) + "%"
}

func applyTicketFilter(query *gorm.DB, filter ticket.TicketFilter) *gorm.DB {
	if filter.Number != "" {
		query = query.Where(`ticket_number LIKE ? ESCAPE '\'`, prefixPattern(filter.Number))
	}
	if filter.JobCode != "" {
		query = query.Where(`job_code_snapshot LIKE ? ESCAPE '\'`, prefixPattern(filter.JobCode))
	}
	if filter.TruckNumber != "" {
		query = query.Where(`truck_number_snapshot LIKE ? ESCAPE '\'`, prefixPattern(filter.TruckNumber))
	}
	if filter.MaterialName != "" {
		query = query.Where(`material_name_snapshot LIKE ? ESCAPE '\'`, prefixPattern(filter.MaterialName))
	}
	if filter.Direction != nil {
		query = query.Where("direction = ?", filter.Direction.String())
	}
	if filter.JobID != nil {
		query = query.Where("job_id = ?", *filter.JobID)
	}
	if filter.MaterialID != nil {
		query = query.Where("material_id = ?", *filter.MaterialID)
	}
	if filter.DateFrom != nil {
		query = query.Where("created_at >= ?", filter.DateFrom.UnixMilli())
	}
	if filter.DateTo != nil {
		query = query.Where("created_at <= ?", filter.DateTo.UnixMilli())
	}
	return query
}
