package payment

// Wire types mirror the provider's JSON request schema. Field names and
// omission rules follow the remote API, not the internal order model.

type WireAddress struct {
	Street       string `json:"street"`
	StreetNumber string `json:"streetNumber,omitempty"`
	PostalCode   string `json:"postalCode"`
	PostalPlace  string `json:"postalPlace"`
	CountryCode  string `json:"countryCode"`
	CareOf       string `json:"careOf"`
}

type WireRiskData struct {
	ExistingCustomer     bool   `json:"existingCustomer"`
	NumberOfTransactions int    `json:"numberOfTransactions"`
	CustomerSince        string `json:"customerSince,omitempty"`
	IPAddress            string `json:"ipAddress,omitempty"`
	ProfileTrackingID    string `json:"profileTrackingId,omitempty"`
}

type WireCustomer struct {
	CustomerNumber   string        `json:"customerNumber"`
	Salutation       string        `json:"salutation"`
	FirstName        string        `json:"firstName"`
	LastName         string        `json:"lastName"`
	Email            string        `json:"email"`
	BirthDate        string        `json:"birthDate"`
	CustomerCategory string        `json:"customerCategory"`
	Address          WireAddress   `json:"address"`
	RiskData         *WireRiskData `json:"riskData,omitempty"`
	MobilePhone      string        `json:"mobilePhone,omitempty"`
}

type WireItem struct {
	ProductID      string  `json:"productId"`
	Description    string  `json:"description"`
	NetUnitPrice   float64 `json:"netUnitPrice"`
	GrossUnitPrice float64 `json:"grossUnitPrice"`
	Quantity       int     `json:"quantity"`
	VatPercent     float64 `json:"vatPercent"`
	VatAmount      float64 `json:"vatAmount"`
	LineNumber     int     `json:"lineNumber"`
	PageURL        string  `json:"pageUrl,omitempty"`
	ImageURL       string  `json:"imageUrl,omitempty"`
}

type WireOrder struct {
	Number           string     `json:"number,omitempty"`
	TotalNetAmount   float64    `json:"totalNetAmount"`
	TotalGrossAmount float64    `json:"totalGrossAmount"`
	Currency         string     `json:"currency"`
	Items            []WireItem `json:"items"`
}

type WireDirectDebit struct {
	BankAccount string `json:"bankAccount"`
}

type WireInstallment struct {
	ProfileNo            int     `json:"profileNo"`
	CustomerInterestRate float64 `json:"customerInterestRate"`
	NumberOfInstallments int     `json:"numberOfInstallments"`
}

type WirePayment struct {
	Type        string           `json:"type"`
	DirectDebit *WireDirectDebit `json:"directDebit,omitempty"`
	Installment *WireInstallment `json:"installment,omitempty"`
}

type WireAdditionalData struct {
	PluginProvider      string `json:"pluginProvider"`
	PluginVersion       string `json:"pluginVersion"`
	ShopURL             string `json:"shopUrl"`
	ShopPlatform        string `json:"shopPlatform"`
	ShopPlatformVersion string `json:"shopPlatformVersion"`
}

// AuthorizePayload is the body of checkout/authorize and, without the
// payment block, of checkout/payment-methods.
type AuthorizePayload struct {
	Payment          *WirePayment       `json:"payment,omitempty"`
	Customer         WireCustomer       `json:"customer"`
	DeliveryCustomer *WireCustomer      `json:"deliveryCustomer,omitempty"`
	Order            WireOrder          `json:"order"`
	AdditionalData   WireAdditionalData `json:"additionalData"`
}

type WireReferences struct {
	YourReference string `json:"yourReference"`
	ContractDate  string `json:"contractDate"`
}

// CapturePayload is the body of orders/{id}/captures.
type CapturePayload struct {
	OrderDetails               WireOrder      `json:"orderDetails"`
	References                 WireReferences `json:"references"`
	InvoiceNumber              string         `json:"invoiceNumber"`
	ParentTransactionReference string         `json:"parentTransactionReference"`
}

// InstallmentPlan is one entry of a lookup/installment-plans response.
type InstallmentPlan struct {
	ProfileNumber                 int     `json:"installmentProfileNumber"`
	BasketAmount                  float64 `json:"basketAmount"`
	NumberOfInstallments          int     `json:"numberOfInstallments"`
	InstallmentAmount             float64 `json:"installmentAmount"`
	FirstInstallmentAmount        float64 `json:"firstInstallmentAmount"`
	LastInstallmentAmount         float64 `json:"lastInstallmentAmount"`
	InterestRate                  float64 `json:"interestRate"`
	EffectiveInterestRate         float64 `json:"effectiveInterestRate"`
	EffectiveAnnualPercentageRate float64 `json:"effectiveAnnualPercentageRate"`
	TotalInterestAmount           float64 `json:"totalInterestAmount"`
	TotalAmount                   float64 `json:"totalAmount"`
	ReadMore                      string  `json:"readMore,omitempty"`
}
