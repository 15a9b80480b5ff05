package product_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"AfterpayEngine/internal/domain/payment"
	"AfterpayEngine/pkg/postgres"
)

// PgProductRepo resolves the product projection mirrored from the host
// catalog. A nil result means the product is unknown; the caller decides
// whether that is an error.
type PgProductRepo struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgProductRepo(pg *postgres.Postgres) payment.ProductCatalog {
	return &PgProductRepo{
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (r *PgProductRepo) GetByID(ctx context.Context, id string) (*payment.Product, error) {
	query, args, err := r.builder.Select("id", "product_number", "label", "page_url", "image_url").
		From("products").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var p payment.Product
	row := r.db.QueryRow(ctx, query, args...)
	if err := row.Scan(&p.ID, &p.Number, &p.Label, &p.PageURL, &p.ImageURL); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}
