package order_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/order"
	"AfterpayEngine/pkg/postgres"
)

// PgOrderRepo stores the engine's mirror of host orders. The aggregate's
// nested collections live in JSONB columns; the capture sweep filters on
// them directly.
type PgOrderRepo struct {
	pg      *postgres.Postgres
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

func NewPgOrderRepo(pg *postgres.Postgres) order.Repo {
	return &PgOrderRepo{
		pg:      pg,
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (r *PgOrderRepo) Upsert(ctx context.Context, ord *order.Order) error {
	jsonCols, err := encodeOrder(ord)
	if err != nil {
		return err
	}

	values := []any{
		ord.ID,
		ord.Number,
		ord.SalesChannelID,
		ord.CurrencyCode,
		ord.AmountTotal,
		ord.ShippingTotal,
		ord.ShippingTaxRate,
		ord.ShippingTaxAmount,
		ord.ShippingHasTax,
		ord.State,
		ord.OrderDate,
	}
	for _, col := range jsonCols {
		values = append(values, col)
	}

	query, args, err := r.builder.Insert("orders").
		Columns(orderColumns...).
		Values(values...).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			order_number = EXCLUDED.order_number,
			sales_channel_id = EXCLUDED.sales_channel_id,
			currency_code = EXCLUDED.currency_code,
			amount_total = EXCLUDED.amount_total,
			shipping_total = EXCLUDED.shipping_total,
			shipping_tax_rate = EXCLUDED.shipping_tax_rate,
			shipping_tax_amount = EXCLUDED.shipping_tax_amount,
			shipping_has_tax = EXCLUDED.shipping_has_tax,
			state = EXCLUDED.state,
			order_date = EXCLUDED.order_date,
			custom_fields = orders.custom_fields || EXCLUDED.custom_fields,
			customer = EXCLUDED.customer,
			billing_address = EXCLUDED.billing_address,
			shipping_address = EXCLUDED.shipping_address,
			line_items = EXCLUDED.line_items,
			transactions = EXCLUDED.transactions,
			deliveries = EXCLUDED.deliveries,
			documents = EXCLUDED.documents,
			updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert order: %w", err)
	}
	return nil
}

func (r *PgOrderRepo) GetByID(ctx context.Context, id string) (*order.Order, error) {
	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query order: %w", err)
	}
	defer rows.Close()

	orders, err := parseOrderRows(rows)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperror.ErrOrderNotFound
	}
	return &orders[0], nil
}

// FindCapturable selects authorized, uncaptured orders whose order state is
// in the configured set and where at least one transaction matches the
// payment-method and payment-state sets and at least one delivery matches the
// delivery-state set. Oldest orders come first so retries keep their relative
// order.
func (r *PgOrderRepo) FindCapturable(ctx context.Context, q order.CapturableQuery) ([]order.Order, error) {
	if !q.Complete() {
		return nil, apperror.ErrCaptureStatesNotConfigured
	}

	query, args, err := r.builder.Select(orderColumns...).
		From("orders").
		Where(squirrel.Expr("(custom_fields->>'afterpay_captured' IS NULL OR custom_fields->>'afterpay_captured' IN ('', '0'))")).
		Where(squirrel.Expr("COALESCE(custom_fields->>'afterpay_transaction_id', '') <> ''")).
		Where(squirrel.Eq{"state": q.OrderStates}).
		Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(transactions) AS t WHERE t->>'payment_method' = ANY(?))",
			pq.Array(q.PaymentMethods),
		)).
		Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(transactions) AS t WHERE t->>'state' = ANY(?))",
			pq.Array(q.PaymentStates),
		)).
		Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements(deliveries) AS d WHERE d->>'state' = ANY(?))",
			pq.Array(q.DeliveryStates),
		)).
		OrderBy("order_date", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build capturable query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query capturable orders: %w", err)
	}
	defer rows.Close()

	return parseOrderRows(rows)
}

func (r *PgOrderRepo) SetCustomFields(ctx context.Context, orderID string, fields order.CustomFields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("encode custom fields: %w", err)
	}

	query, args, err := r.builder.Update("orders").
		Set("custom_fields", squirrel.Expr("custom_fields || ?::jsonb", json.RawMessage(data))).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update query: %w", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set custom fields: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.ErrOrderNotFound
	}
	return nil
}

func (r *PgOrderRepo) Delete(ctx context.Context, orderID string) error {
	query, args, err := r.builder.Delete("orders").
		Where(squirrel.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}
