package payment

import (
	"encoding/json"
	"strings"
)

const nilContractID = "00000000-0000-0000-0000-000000000000"

// Customer-facing fallback texts for risk check action codes that come
// without a message of their own.
var actionCodeMessages = map[string]string{
	"AskConsumerToReEnterData":  "Please check your address details and try again.",
	"AskConsumerToConfirm":      "Please confirm your details and try again.",
	"OfferSecurePaymentMethods": "This payment method is currently not available. Please choose a different payment method.",
}

// AddressSuggestion is a corrected address proposed by the provider's risk
// check.
type AddressSuggestion struct {
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Outcome is the interpreted result of a provider response.
type Outcome struct {
	Success bool
	Message string

	CheckoutID                string
	CaptureNumber             string
	AvailableInstallmentPlans []InstallmentPlan
	PaymentMethods            []map[string]any
	RefundNumbers             []string
	TotalAuthorizedAmount     float64
	TotalCapturedAmount       float64

	// SuggestedAddress is set when the risk check proposed a correction.
	// AddressFlagged is set when it demanded one without proposing any.
	SuggestedAddress *AddressSuggestion
	AddressFlagged   bool
}

// Interpret classifies a decoded provider response. The API signals success
// through several response shapes, one per endpoint family; everything else
// is a failure whose message is assembled from the most specific source
// available.
func Interpret(raw any) Outcome {
	var out Outcome
	body, _ := raw.(map[string]any)

	if isSuccess(body) {
		out.Success = true
		out.CheckoutID = getString(body, "checkoutId")
		out.CaptureNumber = getString(body, "captureNumber")
		if plans, ok := body["availableInstallmentPlans"].([]any); ok && len(plans) > 0 {
			out.AvailableInstallmentPlans = decodeInstallmentPlans(plans)
		}
		if methods, ok := body["paymentMethods"].([]any); ok {
			for _, m := range methods {
				if mm, ok := m.(map[string]any); ok {
					out.PaymentMethods = append(out.PaymentMethods, mm)
				}
			}
		}
		if refunds, ok := body["refundNumbers"].([]any); ok && len(refunds) > 0 {
			for _, r := range refunds {
				if s, ok := r.(string); ok {
					out.RefundNumbers = append(out.RefundNumbers, s)
				}
			}
			out.TotalAuthorizedAmount = getFloat(body, "totalAuthorizedAmount")
			out.TotalCapturedAmount = getFloat(body, "totalCapturedAmount")
		}
		return out
	}

	out.interpretFailure(raw, body)
	return out
}

// isSuccess checks the union of success shapes: accepted authorizations,
// valid bank accounts, contract lookups, captures, installment lookups and
// refunds.
func isSuccess(body map[string]any) bool {
	if len(body) == 0 {
		return false
	}
	if getString(body, "outcome") == "Accepted" {
		return true
	}
	if isValid, ok := body["isValid"].(bool); ok && isValid {
		return true
	}
	contractID := getString(body, "contractId")
	if contractID != "" && contractID != nilContractID {
		if list, ok := body["contractList"].([]any); ok && len(list) > 0 {
			return true
		}
	}
	if getString(body, "captureNumber") != "" {
		return true
	}
	if plans, ok := body["availableInstallmentPlans"].([]any); ok && len(plans) > 0 {
		return true
	}
	if refunds, ok := body["refundNumbers"].([]any); ok && len(refunds) > 0 {
		return true
	}
	return false
}

// interpretFailure assembles the failure message. Precedence: risk check
// messages, then a list-wrapped customer-facing message, then a top-level
// one, then the plain message field.
func (out *Outcome) interpretFailure(raw any, body map[string]any) {
	if riskMessages, ok := body["riskCheckMessages"].([]any); ok && len(riskMessages) > 0 {
		var sb strings.Builder
		for _, rm := range riskMessages {
			riskMessage, ok := rm.(map[string]any)
			if !ok {
				continue
			}
			actionCode := getString(riskMessage, "actionCode")
			if msg := getString(riskMessage, "customerFacingMessage"); msg != "" {
				sb.WriteString(msg)
				sb.WriteString("<br/>")
			} else if fallback, ok := actionCodeMessages[actionCode]; ok {
				sb.WriteString(fallback)
				sb.WriteString("<br/>")
			}
			if actionCode == "AskConsumerToReEnterData" || actionCode == "AskConsumerToConfirm" {
				out.suggestAddress(riskMessage, body)
			}
		}
		out.Message = strings.TrimSuffix(sb.String(), "<br/>")
		return
	}

	if list, ok := raw.([]any); ok && len(list) > 0 {
		if first, ok := list[0].(map[string]any); ok {
			if msg := getString(first, "customerFacingMessage"); msg != "" {
				out.Message = msg
				return
			}
		}
	}
	if msg := getString(body, "customerFacingMessage"); msg != "" {
		out.Message = msg
		return
	}
	out.Message = getString(body, "message")
}

// suggestAddress extracts the first proposed address, if any. Candidates can
// sit on the risk message itself or on the top-level customer; the risk
// message wins. Only the first qualifying risk message decides; later ones
// never overwrite it.
func (out *Outcome) suggestAddress(riskMessage, body map[string]any) {
	if out.SuggestedAddress != nil || out.AddressFlagged {
		return
	}

	addressList := customerAddressList(riskMessage)
	if len(addressList) == 0 {
		addressList = customerAddressList(body)
	}
	if len(addressList) == 0 {
		out.AddressFlagged = true
		return
	}
	address, ok := addressList[0].(map[string]any)
	if !ok {
		out.AddressFlagged = true
		return
	}

	street := getString(address, "street")
	if streetNumber := getString(address, "streetNumber"); streetNumber != "" {
		street += " " + streetNumber
	}
	out.SuggestedAddress = &AddressSuggestion{
		Street:  street,
		Zipcode: getString(address, "postalCode"),
		City:    getString(address, "postalPlace"),
		Country: getString(address, "countryCode"),
	}
}

func customerAddressList(m map[string]any) []any {
	customer, _ := m["customer"].(map[string]any)
	list, _ := customer["addressList"].([]any)
	return list
}

// methodAvailable checks a checkout/payment-methods response for the named
// payment variant.
func methodAvailable(methods []map[string]any, name string) bool {
	for _, m := range methods {
		block, ok := m[name].(map[string]any)
		if !ok {
			continue
		}
		if available, ok := block["available"].(bool); ok && available {
			return true
		}
	}
	return false
}

func decodeInstallmentPlans(plans []any) []InstallmentPlan {
	data, err := json.Marshal(plans)
	if err != nil {
		return nil
	}
	var decoded []InstallmentPlan
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil
	}
	return decoded
}

func getString(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func getFloat(m map[string]any, key string) float64 {
	f, _ := m[key].(float64)
	return f
}
