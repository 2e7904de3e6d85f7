package campaign

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/brandlink/brandlink-api/internal/middleware"
)

// Filter represents campaign search filters
type Filter struct {
	Query   *string
	Status  *Status
	Type    *Type
	StoreID *uuid.UUID
	Country *string
	City    *string
}

// SortBy represents sort options
type SortBy string

const (
	SortByNewest     SortBy = "newest"
	SortByBudgetDesc SortBy = "budget_desc"
)

// Pagination for listing
type Pagination struct {
	Page  int
	Limit int
}

// Repository defines campaign data access interface
type Repository interface {
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	Update(ctx context.Context, c *Campaign) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *Filter, sortBy SortBy, pagination *Pagination) ([]*Campaign, int, error)
}

type repository struct {
	db *sqlx.DB
}

const campaignSelectColumns = `
	id, store_id, title, description, budget, currency,
	duration_days, target_country, target_city,
	platforms, goal_tags, content_type_tags,
	type, type_specific_data, status,
	created_at, updated_at
`

// NewRepository creates new campaign repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *Campaign) error {
	query := `
		INSERT INTO campaigns (
			id, store_id, title, description, budget, currency,
			duration_days, target_country, target_city,
			platforms, goal_tags, content_type_tags,
			type, type_specific_data, status
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9,
			$10, $11, $12,
			$13, $14, $15
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.StoreID, c.Title, c.Description, c.Budget, c.Currency,
		c.DurationDays, c.TargetCountry, c.TargetCity,
		c.Platforms, c.GoalTags, c.ContentTypeTags,
		c.Type, nullableJSON(c.TypeSpecificData), c.Status,
	)
	if err != nil {
		evt := log.Error().
			Str("request_id", middleware.GetRequestID(ctx)).
			Str("query", "campaigns.create").
			Str("campaign_id", c.ID.String()).
			Str("store_id", c.StoreID.String()).
			Str("type", string(c.Type)).
			Str("status", string(c.Status)).
			Err(err)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			evt = evt.
				Str("pg_code", string(pqErr.Code)).
				Str("pg_constraint", pqErr.Constraint)
		}

		evt.Msg("campaign insert failed")
		return mapDBError(err)
	}

	return nil
}

// mapDBError translates SQLSTATE codes into the campaign error taxonomy.
// Anything unrecognized passes through untouched for the generic mapper.
func mapDBError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	switch pqErr.Code {
	case "23505", "23514":
		return NewDatabaseConstraintError(err)
	default:
		// FK violations keep the raw pq error; the response mapper
		// distinguishes them by SQLSTATE.
		return err
	}
}

// nullableJSON keeps empty payloads as SQL NULL instead of an empty blob
func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error) {
	query := `
		SELECT ` + campaignSelectColumns + ` FROM campaigns
		WHERE id = $1 AND status != 'deleted'
	`

	var c Campaign
	err := r.db.GetContext(ctx, &c, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

func (r *repository) Update(ctx context.Context, c *Campaign) error {
	query := `
		UPDATE campaigns SET
			title = $2, description = $3, budget = $4, currency = $5,
			duration_days = $6, target_country = $7, target_city = $8,
			platforms = $9, goal_tags = $10, content_type_tags = $11,
			type = $12, type_specific_data = $13,
			updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Title, c.Description, c.Budget, c.Currency,
		c.DurationDays, c.TargetCountry, c.TargetCity,
		c.Platforms, c.GoalTags, c.ContentTypeTags,
		c.Type, nullableJSON(c.TypeSpecificData),
	)
	if err != nil {
		return mapDBError(err)
	}

	return nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) error {
	query := `UPDATE campaigns SET status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return mapDBError(err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE campaigns SET status = 'deleted', updated_at = NOW() WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *repository) List(ctx context.Context, filter *Filter, sortBy SortBy, pagination *Pagination) ([]*Campaign, int, error) {
	conditions := []string{"c.status != 'deleted'"}
	args := []interface{}{}
	argIndex := 1

	// Default to published campaigns if not specified
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("c.status = $%d", argIndex))
		args = append(args, *filter.Status)
		argIndex++
	} else if filter.StoreID == nil {
		conditions = append(conditions, "c.status = 'published'")
	}

	if filter.Type != nil {
		conditions = append(conditions, fmt.Sprintf("c.type = $%d", argIndex))
		args = append(args, *filter.Type)
		argIndex++
	}

	if filter.StoreID != nil {
		conditions = append(conditions, fmt.Sprintf("c.store_id = $%d", argIndex))
		args = append(args, *filter.StoreID)
		argIndex++
	}

	if filter.Country != nil && *filter.Country != "" {
		conditions = append(conditions, fmt.Sprintf("c.target_country ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.Country+"%")
		argIndex++
	}

	if filter.City != nil && *filter.City != "" {
		conditions = append(conditions, fmt.Sprintf("c.target_city ILIKE $%d", argIndex))
		args = append(args, "%"+*filter.City+"%")
		argIndex++
	}

	if filter.Query != nil && *filter.Query != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(c.title ILIKE $%d OR c.description ILIKE $%d)",
			argIndex, argIndex,
		))
		args = append(args, "%"+*filter.Query+"%")
		argIndex++
	}

	where := "WHERE " + strings.Join(conditions, " AND ")

	// Count total
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM campaigns c %s", where)
	var total int
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	var orderBy string
	switch sortBy {
	case SortByBudgetDesc:
		orderBy = "ORDER BY c.budget DESC"
	default:
		orderBy = "ORDER BY c.created_at DESC"
	}

	offset := (pagination.Page - 1) * pagination.Limit
	query := fmt.Sprintf(`
		SELECT %s FROM campaigns c
		%s %s
		LIMIT $%d OFFSET $%d
	`, campaignSelectColumns, where, orderBy, argIndex, argIndex+1)
	args = append(args, pagination.Limit, offset)

	var campaigns []*Campaign
	if err := r.db.SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, 0, err
	}

	return campaigns, total, nil
}
