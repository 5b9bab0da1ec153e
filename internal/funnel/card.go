package funnel

import (
	"strings"

	"datebook_funnel/internal/usecase/interfaces"
	"datebook_funnel/internal/validation"
)

// CardForm is the card step's form state. The masks are cosmetic only: no
// Luhn check happens client-side, the gateway validates the card itself.
type CardForm struct {
	Number     string
	HolderName string
	Expiry     string // MM/YY
	CVV        string

	HolderEmail         string
	HolderDocument      string
	HolderPostalCode    string
	HolderAddressNumber string
	HolderPhone         string
}

// Masked returns the display representation of the card fields.
func (f CardForm) Masked() CardForm {
	f.Number = validation.MaskCardNumber(f.Number)
	f.Expiry = validation.MaskCardExpiry(f.Expiry)
	f.CVV = validation.MaskCardCVV(f.CVV)
	return f
}

func (f CardForm) toGateway() *interfaces.CardDetails {
	expiry := validation.Digits(f.Expiry)
	month, year := "", ""
	if len(expiry) >= 2 {
		month = expiry[:2]
	}
	if len(expiry) == 4 {
		year = "20" + expiry[2:]
	}
	return &interfaces.CardDetails{
		HolderName:          strings.TrimSpace(f.HolderName),
		Number:              validation.Digits(f.Number),
		ExpiryMonth:         month,
		ExpiryYear:          year,
		CVV:                 validation.Digits(f.CVV),
		HolderEmail:         strings.TrimSpace(f.HolderEmail),
		HolderDocument:      validation.Digits(f.HolderDocument),
		HolderPostalCode:    validation.Digits(f.HolderPostalCode),
		HolderAddressNumber: strings.TrimSpace(f.HolderAddressNumber),
		HolderPhone:         validation.Digits(f.HolderPhone),
	}
}
