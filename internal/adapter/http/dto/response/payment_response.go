package response

import (
	"datebook_funnel/internal/domain/entities"
)

type PaymentResponse struct {
	Success        bool   `json:"success"`
	AsaasPaymentID string `json:"asaasPaymentId,omitempty"`
	Status         string `json:"status,omitempty"`
	PixCode        string `json:"pixCode,omitempty"`
	PixQrCode      string `json:"pixQrCode,omitempty"`
	InvoiceURL     string `json:"invoiceUrl,omitempty"`
	Message        string `json:"message,omitempty"`
	Error          string `json:"error,omitempty"`
}

func FromCharge(c entities.Charge) PaymentResponse {
	return PaymentResponse{
		Success:        true,
		AsaasPaymentID: c.ID,
		Status:         string(c.Status),
		PixCode:        c.PixPayload,
		PixQrCode:      c.PixQRImage,
		InvoiceURL:     c.InvoiceURL,
	}
}

type PaymentStatusResponse struct {
	Success        bool   `json:"success"`
	Status         string `json:"status"`
	AsaasPaymentID string `json:"asaasPaymentId,omitempty"`
	Error          string `json:"error,omitempty"`
}

func FromChargeStatus(c entities.Charge) PaymentStatusResponse {
	return PaymentStatusResponse{
		Success:        true,
		Status:         string(c.Status),
		AsaasPaymentID: c.ID,
	}
}
