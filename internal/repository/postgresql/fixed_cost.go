package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/fixedcost"
	"github.com/softhouse-dev/backoffice-backend-go/internal/pkg/database"
)

type fixedCostRepository struct {
	db *database.DB
}

func NewFixedCostRepository(db *database.DB) fixedcost.FixedCostRepository {
	return &fixedCostRepository{db: db}
}

const fixedCostColumns = `id, company_id, name, amount, frequency, is_active, created_at, updated_at`

func scanFixedCost(row pgx.Row) (fixedcost.FixedCost, error) {
	var f fixedcost.FixedCost
	err := row.Scan(&f.ID, &f.CompanyID, &f.Name, &f.Amount, &f.Frequency, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *fixedCostRepository) Create(ctx context.Context, cost fixedcost.FixedCost) (fixedcost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fixed_costs (company_id, name, amount, frequency, is_active)
		VALUES ($1, $2, $3, $4, TRUE)
		RETURNING ` + fixedCostColumns

	created, err := scanFixedCost(q.QueryRow(ctx, query, cost.CompanyID, cost.Name, cost.Amount, cost.Frequency))
	if err != nil {
		return fixedcost.FixedCost{}, fmt.Errorf("failed to create fixed cost: %w", err)
	}
	return created, nil
}

func (r *fixedCostRepository) Update(ctx context.Context, cost fixedcost.FixedCost) (fixedcost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE fixed_costs SET name = $3, amount = $4, frequency = $5, is_active = $6, updated_at = NOW()
		WHERE id = $1 AND company_id = $2
		RETURNING ` + fixedCostColumns

	updated, err := scanFixedCost(q.QueryRow(ctx, query,
		cost.ID, cost.CompanyID, cost.Name, cost.Amount, cost.Frequency, cost.IsActive,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fixedcost.FixedCost{}, fixedcost.ErrFixedCostNotFound
		}
		return fixedcost.FixedCost{}, fmt.Errorf("failed to update fixed cost: %w", err)
	}
	return updated, nil
}

func (r *fixedCostRepository) GetByID(ctx context.Context, id, companyID string) (fixedcost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + fixedCostColumns + ` FROM fixed_costs WHERE id = $1 AND company_id = $2`

	f, err := scanFixedCost(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fixedcost.FixedCost{}, fixedcost.ErrFixedCostNotFound
		}
		return fixedcost.FixedCost{}, fmt.Errorf("failed to get fixed cost: %w", err)
	}
	return f, nil
}

func (r *fixedCostRepository) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]fixedcost.FixedCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + fixedCostColumns + ` FROM fixed_costs WHERE company_id = $1`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []fixedcost.FixedCost
	for rows.Next() {
		f, err := scanFixedCost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fixed cost: %w", err)
		}
		costs = append(costs, f)
	}
	return costs, rows.Err()
}

func (r *fixedCostRepository) Delete(ctx context.Context, id, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fixed_costs WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete fixed cost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fixedcost.ErrFixedCostNotFound
	}
	return nil
}
