package payment

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"AfterpayEngine/internal/controller/apperror"
	"AfterpayEngine/internal/domain/order"
)

const shippingLineDescription = "Versandkosten"

// ShopInfo identifies the integration towards the provider.
type ShopInfo struct {
	Provider        string
	Version         string
	Platform        string
	PlatformVersion string
}

// AuthorizeData carries the request-scoped inputs of an authorization.
type AuthorizeData struct {
	Method          Method
	SessionToken    string
	ClientIP        string
	TrackingConsent bool
}

// PayloadBuilder translates order aggregates into provider request payloads.
type PayloadBuilder struct {
	catalog ProductCatalog
	shop    ShopInfo
}

func NewPayloadBuilder(catalog ProductCatalog, shop ShopInfo) *PayloadBuilder {
	return &PayloadBuilder{catalog: catalog, shop: shop}
}

// AuthorizePayload builds the checkout/authorize body. The generated order
// number doubles as the provider-side transaction reference, so every call
// produces a fresh one. A nil payment block yields the checkout/payment-methods
// body instead.
func (b *PayloadBuilder) AuthorizePayload(ctx context.Context, ord *order.Order, cfg MerchantConfig, data AuthorizeData, pay *WirePayment) (*AuthorizePayload, error) {
	items, err := b.orderItems(ctx, ord)
	if err != nil {
		return nil, err
	}

	customer := wireCustomer(ord.Customer, ord.BillingAddress)
	customer.RiskData = riskData(ord.Customer, cfg, data)

	payload := &AuthorizePayload{
		Payment:  pay,
		Customer: customer,
		Order: WireOrder{
			Number:           GenerateOrderNumber(),
			TotalNetAmount:   totalNetAmount(items),
			TotalGrossAmount: round2(ord.AmountTotal),
			Currency:         ord.CurrencyCode,
			Items:            items,
		},
		AdditionalData: WireAdditionalData{
			PluginProvider:      b.shop.Provider,
			PluginVersion:       b.shop.Version,
			ShopURL:             cfg.ShopURL,
			ShopPlatform:        b.shop.Platform,
			ShopPlatformVersion: b.shop.PlatformVersion,
		},
	}

	if ord.ShippingAddress.ID != ord.BillingAddress.ID {
		delivery := wireCustomer(ord.Customer, ord.ShippingAddress)
		payload.DeliveryCustomer = &delivery
	}

	return payload, nil
}

// CapturePayload builds the orders/{transactionId}/captures body.
func (b *PayloadBuilder) CapturePayload(ctx context.Context, ord *order.Order) (*CapturePayload, error) {
	items, err := b.orderItems(ctx, ord)
	if err != nil {
		return nil, err
	}

	return &CapturePayload{
		OrderDetails: WireOrder{
			TotalNetAmount:   totalNetAmount(items),
			TotalGrossAmount: round2(ord.AmountTotal),
			Currency:         ord.CurrencyCode,
			Items:            items,
		},
		References: WireReferences{
			YourReference: ord.Number,
			ContractDate:  ord.OrderDate.Format("2006-01-02 15:04:05"),
		},
		InvoiceNumber:              ord.InvoiceNumber(),
		ParentTransactionReference: ord.Number,
	}, nil
}

// orderItems projects the order's line items onto the wire schema, appending
// a shipping cost line when shipping was charged. Line numbers are 1-based in
// projection order.
func (b *PayloadBuilder) orderItems(ctx context.Context, ord *order.Order) ([]WireItem, error) {
	items := make([]WireItem, 0, len(ord.LineItems)+1)
	var counters syntheticCounters
	for _, li := range ord.LineItems {
		item, err := b.wireItem(ctx, li, len(items)+1, &counters)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if ord.ShippingTotal > 0 {
		items = append(items, shippingItem(ord, len(items)+1))
	}
	return items, nil
}

// syntheticCounters number the synthetic product ids of non-product lines.
// They are scoped to a single payload.
type syntheticCounters struct {
	promotion int
	credit    int
	custom    int
	unknown   int
}

func (c *syntheticCounters) next(prefix string, n *int) string {
	*n++
	return fmt.Sprintf("%s%d", prefix, *n)
}

func (b *PayloadBuilder) wireItem(ctx context.Context, li order.LineItem, lineNumber int, counters *syntheticCounters) (WireItem, error) {
	var productID, pageURL, imageURL string
	switch li.Type {
	case order.LineItemProduct:
		product, err := b.catalog.GetByID(ctx, li.ProductID)
		if err != nil {
			return WireItem{}, err
		}
		if product == nil {
			return WireItem{}, fmt.Errorf("%w: product not found with id %s", apperror.ErrProductNotFound, li.ProductID)
		}
		productID = product.Number
		pageURL = product.PageURL
		imageURL = product.ImageURL
	case order.LineItemPromotion:
		if li.PromotionCode != "" {
			productID = li.PromotionCode
		} else {
			productID = counters.next("PROMOTION", &counters.promotion)
		}
	case order.LineItemCredit:
		productID = counters.next("CREDIT", &counters.credit)
	case order.LineItemCustom:
		productID = counters.next("CUSTOM", &counters.custom)
	default:
		productID = counters.next("UNKNOWN", &counters.unknown)
	}

	grossUnitPrice := round2(li.UnitPrice)
	netUnitPrice := grossUnitPrice
	var taxRate float64
	if li.HasTax {
		taxRate = li.TaxRate
		taxUnitAmount := round2(grossUnitPrice - grossUnitPrice/(1+taxRate/100))
		netUnitPrice -= taxUnitAmount
	}

	item := WireItem{
		ProductID:      productID,
		Description:    li.Label,
		NetUnitPrice:   round2(netUnitPrice),
		GrossUnitPrice: grossUnitPrice,
		Quantity:       li.Quantity,
		VatPercent:     taxRate,
		VatAmount:      round2(grossUnitPrice - netUnitPrice),
		LineNumber:     lineNumber,
		PageURL:        pageURL,
		ImageURL:       imageURL,
	}
	return item, nil
}

// shippingItem builds the synthetic shipping cost line. Unlike product lines
// the tax amount comes from the order's calculated shipping tax, not from the
// rate formula.
func shippingItem(ord *order.Order, lineNumber int) WireItem {
	grossPrice := round2(ord.ShippingTotal)
	netPrice := grossPrice
	var taxRate float64
	if ord.ShippingHasTax {
		taxRate = ord.ShippingTaxRate
		netPrice -= round2(ord.ShippingTaxAmount)
	}

	return WireItem{
		ProductID:      "SHIPPINGCOST",
		Description:    shippingLineDescription,
		NetUnitPrice:   round2(netPrice),
		GrossUnitPrice: grossPrice,
		Quantity:       1,
		VatPercent:     taxRate,
		VatAmount:      round2(grossPrice - netPrice),
		LineNumber:     lineNumber,
	}
}

func wireCustomer(cust order.Customer, addr order.Address) WireCustomer {
	birthDate := ""
	if cust.Birthday != nil {
		birthDate = cust.Birthday.Format("2006-01-02")
	}

	wc := WireCustomer{
		CustomerNumber:   cust.Number,
		Salutation:       salutationName(addr.Salutation),
		FirstName:        addr.FirstName,
		LastName:         addr.LastName,
		Email:            cust.Email,
		BirthDate:        birthDate,
		CustomerCategory: "Person",
		Address: WireAddress{
			Street:      addr.Street,
			PostalCode:  addr.Zipcode,
			PostalPlace: addr.City,
			CountryCode: addr.CountryCode,
			CareOf:      addr.AdditionalLine,
		},
	}
	// The provider only accepts phone numbers in NL and BE.
	if addr.PhoneNumber != "" && (addr.CountryCode == "NL" || addr.CountryCode == "BE") {
		wc.MobilePhone = addr.PhoneNumber
	}
	return wc
}

func riskData(cust order.Customer, cfg MerchantConfig, data AuthorizeData) *WireRiskData {
	rd := &WireRiskData{
		ExistingCustomer:     cust.OrderCount > 0,
		NumberOfTransactions: cust.OrderCount,
	}
	if cust.FirstLogin != nil {
		rd.CustomerSince = cust.FirstLogin.Format("2006-01-02")
	}
	if cfg.ProfileTrackingEnabled() {
		rd.IPAddress = data.ClientIP
		if data.TrackingConsent {
			rd.ProfileTrackingID = data.SessionToken
		}
	}
	return rd
}

func salutationName(key string) string {
	switch key {
	case "mr":
		return "Mr"
	case "mrs":
		return "Mrs"
	default:
		return ""
	}
}

func totalNetAmount(items []WireItem) float64 {
	var total float64
	for _, item := range items {
		total += item.NetUnitPrice * float64(item.Quantity)
	}
	return round2(total)
}

// round2 rounds to two decimals, halves away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

const orderNumberAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// GenerateOrderNumber returns the 16-character random reference sent as the
// provider-side order number. Each authorization attempt gets a new one; the
// provider deduplicates on it.
func GenerateOrderNumber() string {
	buf := make([]byte, 16)
	for i := range buf {
		buf[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return string(buf)
}
