package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/pdv-api/internal/domain"
	"github.com/jhoicas/pdv-api/internal/domain/entity"
	"github.com/jhoicas/pdv-api/internal/domain/repository"
)

var _ repository.CashFlowRepository = (*CashFlowRepo)(nil)

const cashFlowColumns = `id, date, description, type, amount, category, sale_id`

// CashFlowRepo persiste movimientos en cash_flow.
type CashFlowRepo struct {
	q Querier
}

func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

func (r *CashFlowRepo) Create(ctx context.Context, e *entity.CashFlowEntry) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO cash_flow (`+cashFlowColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.Date, e.Description, e.Type, e.Amount, nullIfEmpty(e.Category), nullIfEmpty(e.SaleID),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cash flow: %w", err)
	}
	return nil
}

func (r *CashFlowRepo) GetByID(ctx context.Context, id string) (*entity.CashFlowEntry, error) {
	e, err := scanCashFlow(r.q.QueryRow(ctx, `SELECT `+cashFlowColumns+` FROM cash_flow WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cash flow: %w", err)
	}
	return e, nil
}

func (r *CashFlowRepo) List(ctx context.Context) ([]*entity.CashFlowEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT `+cashFlowColumns+` FROM cash_flow ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list cash flow: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashFlowEntry
	for rows.Next() {
		e, err := scanCashFlow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cash flow: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *CashFlowRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM cash_flow WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete cash flow: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanCashFlow(row pgx.Row) (*entity.CashFlowEntry, error) {
	var (
		e                entity.CashFlowEntry
		category, saleID *string
	)
	if err := row.Scan(&e.ID, &e.Date, &e.Description, &e.Type, &e.Amount, &category, &saleID); err != nil {
		return nil, err
	}
	e.Category = fromNullable(category)
	e.SaleID = fromNullable(saleID)
	return &e, nil
}
