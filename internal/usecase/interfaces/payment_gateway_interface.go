package interfaces

import (
	"context"
	"time"

	"datebook_funnel/internal/domain/entities"
)

// CardDetails carries credit card data plus the holder information the
// gateway requires alongside it. Never persisted.
type CardDetails struct {
	HolderName  string
	Number      string
	ExpiryMonth string
	ExpiryYear  string
	CVV         string

	HolderEmail         string
	HolderDocument      string
	HolderPostalCode    string
	HolderAddressNumber string
	HolderPhone         string
}

// GatewayChargeRequest is one charge attempt sent to the gateway.
type GatewayChargeRequest struct {
	GatewayCustomerID string
	Method            entities.PaymentMethod
	Amount            float64
	DueDate           time.Time
	Description       string
	Card              *CardDetails
}

// GatewayCharge is the gateway's answer to a charge attempt, already mapped
// into the internal status vocabulary. For PIX the payload/QR pair is filled
// by a follow-up pixQrCode call made by the gateway client itself.
type GatewayCharge struct {
	ID         string
	Status     entities.ChargeStatus
	InvoiceURL string
	PixPayload string
	PixQRImage string
}

// IPaymentGateway abstracts the external payment provider (Asaas).
//
// The funnel uses it to reuse-or-create the gateway-side customer entity,
// create charges and observe their status. Responses are decoded into strict
// types at this boundary; HTML-shaped or otherwise non-JSON bodies surface
// as errors, never as parsed data.
type IPaymentGateway interface {
	CreateCustomer(ctx context.Context, c entities.Customer) (gatewayCustomerID string, err error)
	CreateCharge(ctx context.Context, req GatewayChargeRequest) (GatewayCharge, error)
	GetChargeStatus(ctx context.Context, chargeID string) (entities.ChargeStatus, error)
	GetPixQRCode(ctx context.Context, chargeID string) (payload, image string, err error)
}
