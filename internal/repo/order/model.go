package order_repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"AfterpayEngine/internal/domain/order"
)

var orderColumns = []string{
	"id",
	"order_number",
	"sales_channel_id",
	"currency_code",
	"amount_total",
	"shipping_total",
	"shipping_tax_rate",
	"shipping_tax_amount",
	"shipping_has_tax",
	"state",
	"order_date",
	"custom_fields",
	"customer",
	"billing_address",
	"shipping_address",
	"line_items",
	"transactions",
	"deliveries",
	"documents",
}

// orderRow buffers the raw JSONB columns of one row before decoding.
type orderRow struct {
	customFields    []byte
	customer        []byte
	billingAddress  []byte
	shippingAddress []byte
	lineItems       []byte
	transactions    []byte
	deliveries      []byte
	documents       []byte
}

func parseOrderRows(rows pgx.Rows) ([]order.Order, error) {
	var orders []order.Order
	for rows.Next() {
		var (
			ord       order.Order
			raw       orderRow
			orderDate time.Time
		)
		err := rows.Scan(
			&ord.ID,
			&ord.Number,
			&ord.SalesChannelID,
			&ord.CurrencyCode,
			&ord.AmountTotal,
			&ord.ShippingTotal,
			&ord.ShippingTaxRate,
			&ord.ShippingTaxAmount,
			&ord.ShippingHasTax,
			&ord.State,
			&orderDate,
			&raw.customFields,
			&raw.customer,
			&raw.billingAddress,
			&raw.shippingAddress,
			&raw.lineItems,
			&raw.transactions,
			&raw.deliveries,
			&raw.documents,
		)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		ord.OrderDate = orderDate

		if err := decodeOrderRow(&ord, raw); err != nil {
			return nil, err
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}
	return orders, nil
}

func decodeOrderRow(ord *order.Order, raw orderRow) error {
	targets := []struct {
		name string
		data []byte
		dst  any
	}{
		{"custom_fields", raw.customFields, &ord.CustomFields},
		{"customer", raw.customer, &ord.Customer},
		{"billing_address", raw.billingAddress, &ord.BillingAddress},
		{"shipping_address", raw.shippingAddress, &ord.ShippingAddress},
		{"line_items", raw.lineItems, &ord.LineItems},
		{"transactions", raw.transactions, &ord.Transactions},
		{"deliveries", raw.deliveries, &ord.Deliveries},
		{"documents", raw.documents, &ord.Documents},
	}
	for _, t := range targets {
		if len(t.data) == 0 {
			continue
		}
		if err := json.Unmarshal(t.data, t.dst); err != nil {
			return fmt.Errorf("decode %s for order %s: %w", t.name, ord.ID, err)
		}
	}
	return nil
}

// encodeOrder marshals the aggregate's JSONB columns in insert column order.
// json.RawMessage keeps pgx encoding the parameters as json, not bytea.
func encodeOrder(ord *order.Order) ([]json.RawMessage, error) {
	sources := []struct {
		name string
		src  any
	}{
		{"custom_fields", ord.CustomFields},
		{"customer", ord.Customer},
		{"billing_address", ord.BillingAddress},
		{"shipping_address", ord.ShippingAddress},
		{"line_items", ord.LineItems},
		{"transactions", ord.Transactions},
		{"deliveries", ord.Deliveries},
		{"documents", ord.Documents},
	}
	encoded := make([]json.RawMessage, 0, len(sources))
	for _, s := range sources {
		data, err := json.Marshal(s.src)
		if err != nil {
			return nil, fmt.Errorf("encode %s for order %s: %w", s.name, ord.ID, err)
		}
		encoded = append(encoded, data)
	}
	return encoded, nil
}
