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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo persiste ventas en sales + sale_items.
type SaleRepo struct {
	q Querier
}

func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y sus ítems. Debe llamarse dentro de una transacción
// para que cabecera e ítems queden juntos.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO sales (id, date, total, payment_method, card_type) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.Date, s.Total, s.PaymentMethod, nullIfEmpty(s.CardType),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	for i, it := range s.Items {
		_, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, line_no, product_id, product_name, category, quantity, price_at_time_of_sale)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			s.ID, i+1, it.ProductID, it.ProductName, it.Category, it.Quantity, it.UnitPrice,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	var (
		s        entity.Sale
		cardType *string
	)
	err := r.q.QueryRow(ctx,
		`SELECT id, date, total, payment_method, card_type FROM sales WHERE id = $1`, id,
	).Scan(&s.ID, &s.Date, &s.Total, &s.PaymentMethod, &cardType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	s.CardType = fromNullable(cardType)
	items, err := r.itemsBySale(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	s.Items = items[id]
	return &s, nil
}

// List devuelve las ventas (fecha descendente) con sus ítems, en dos consultas.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, date, total, payment_method, card_type FROM sales ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	var (
		list []*entity.Sale
		ids  []string
	)
	for rows.Next() {
		var (
			s        entity.Sale
			cardType *string
		)
		if err := rows.Scan(&s.ID, &s.Date, &s.Total, &s.PaymentMethod, &cardType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		s.CardType = fromNullable(cardType)
		list = append(list, &s)
		ids = append(ids, s.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}
	items, err := r.itemsBySale(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range list {
		s.Items = items[s.ID]
	}
	return list, nil
}

func (r *SaleRepo) itemsBySale(ctx context.Context, saleIDs []string) (map[string][]entity.SaleItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, product_id, product_name, category, quantity, price_at_time_of_sale
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY sale_id, line_no`, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("list sale items: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var (
			saleID string
			it     entity.SaleItem
		)
		if err := rows.Scan(&saleID, &it.ProductID, &it.ProductName, &it.Category, &it.Quantity, &it.UnitPrice); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out[saleID] = append(out[saleID], it)
	}
	return out, rows.Err()
}

// Delete elimina la venta; sale_items cae por ON DELETE CASCADE.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
