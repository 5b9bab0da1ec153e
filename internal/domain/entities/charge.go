package entities

import "time"

// PaymentMethod selects the payment rail for a charge.
type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "PIX"
	PaymentMethodCard PaymentMethod = "CARTAO"
)

// ChargeStatus is the internal charge state machine:
//
//	pending -> confirmed
//	pending -> failed
//
// confirmed and failed are terminal. Gateway vocabularies are mapped to this
// set at the gateway boundary and never leak downstream.
type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pendente"
	ChargeStatusConfirmed ChargeStatus = "confirmado"
	ChargeStatusFailed    ChargeStatus = "falhou"
)

func (s ChargeStatus) Terminal() bool {
	return s == ChargeStatusConfirmed || s == ChargeStatusFailed
}

// Charge is one payment attempt created through the gateway.
//
// Storage model (DynamoDB):
//   - PK: id (gateway charge id)
//   - GSI1 (idempotency_key-index): idempotency_key
//
// For PIX charges PixPayload carries the copy&paste code and PixQRImage the
// base64-encoded QR picture. Card charges may be confirmed synchronously by
// the gateway, in which case Status is already terminal on creation.
type Charge struct {
	ID                 string        `json:"id"`
	Slug               string        `json:"slug"`
	InternalCustomerID string        `json:"customer_id"`
	GatewayCustomerID  string        `json:"asaas_customer_id"`
	IdempotencyKey     string        `json:"idempotency_key,omitempty"`
	Method             PaymentMethod `json:"method"`
	Amount             float64       `json:"amount"`
	Status             ChargeStatus  `json:"status"`
	PixPayload         string        `json:"pix_payload,omitempty"`
	PixQRImage         string        `json:"pix_qr_image,omitempty"`
	InvoiceURL         string        `json:"invoice_url,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}
