package request

import (
	"errors"
	"strings"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/internal/usecase/interfaces"
	"datebook_funnel/internal/validation"
)

var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// CardRequest carries raw card data for CARTAO charges. Values may arrive
// masked; digits are stripped before they reach the gateway.
type CardRequest struct {
	Numero          string `json:"numero" binding:"required"`
	NomeTitular     string `json:"nomeTitular" binding:"required"`
	Validade        string `json:"validade" binding:"required"` // MM/YY
	CVV             string `json:"cvv" binding:"required"`
	EmailTitular    string `json:"emailTitular"`
	CpfCnpjTitular  string `json:"cpfCnpjTitular"`
	CepTitular      string `json:"cepTitular"`
	NumeroEndereco  string `json:"numeroEndereco"`
	TelefoneTitular string `json:"telefoneTitular"`
}

// PaymentCreateRequest is the charge creation payload.
type PaymentCreateRequest struct {
	AsaasCustomerID string       `json:"asaasCustomerId" binding:"required"`
	CustomerID      string       `json:"customerId" binding:"required"`
	Valor           float64      `json:"valor"`
	Metodo          string       `json:"metodo" binding:"required"` // PIX | CARTAO
	Slug            string       `json:"slug" binding:"required"`
	IdempotencyKey  string       `json:"idempotencyKey"`
	Cartao          *CardRequest `json:"cartao"`
}

// ToCommand converts the wire payload into a charge command.
func (r PaymentCreateRequest) ToCommand() (usecase.CreateChargeCommand, error) {
	method := entities.PaymentMethod(strings.ToUpper(strings.TrimSpace(r.Metodo)))
	if method != entities.PaymentMethodPix && method != entities.PaymentMethodCard {
		return usecase.CreateChargeCommand{}, ErrInvalidPaymentMethod
	}

	cmd := usecase.CreateChargeCommand{
		Slug:               r.Slug,
		InternalCustomerID: r.CustomerID,
		GatewayCustomerID:  r.AsaasCustomerID,
		Amount:             r.Valor,
		Method:             method,
		IdempotencyKey:     strings.TrimSpace(r.IdempotencyKey),
	}
	if r.Cartao != nil {
		cmd.Card = r.Cartao.toDetails()
	}
	return cmd, nil
}

func (c CardRequest) toDetails() *interfaces.CardDetails {
	expiry := validation.Digits(c.Validade)
	month, year := "", ""
	if len(expiry) >= 2 {
		month = expiry[:2]
	}
	if len(expiry) == 4 {
		year = "20" + expiry[2:]
	}
	return &interfaces.CardDetails{
		HolderName:          strings.TrimSpace(c.NomeTitular),
		Number:              validation.Digits(c.Numero),
		ExpiryMonth:         month,
		ExpiryYear:          year,
		CVV:                 validation.Digits(c.CVV),
		HolderEmail:         strings.TrimSpace(c.EmailTitular),
		HolderDocument:      validation.Digits(c.CpfCnpjTitular),
		HolderPostalCode:    validation.Digits(c.CepTitular),
		HolderAddressNumber: strings.TrimSpace(c.NumeroEndereco),
		HolderPhone:         validation.Digits(c.TelefoneTitular),
	}
}
