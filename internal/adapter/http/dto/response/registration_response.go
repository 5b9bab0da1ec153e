package response

import (
	"datebook_funnel/internal/domain/entities"
)

type RegistrationResponse struct {
	Success         bool   `json:"success"`
	CustomerID      string `json:"customerId,omitempty"`
	AsaasCustomerID string `json:"asaasCustomerId,omitempty"`
	Redirect        string `json:"redirect,omitempty"`
	Message         string `json:"message,omitempty"`
	Error           string `json:"error,omitempty"`
}

func FromRegistration(reg entities.Registration) RegistrationResponse {
	return RegistrationResponse{
		Success:         true,
		CustomerID:      reg.InternalCustomerID,
		AsaasCustomerID: reg.GatewayCustomerID,
		Redirect:        reg.RedirectURL,
	}
}

// SiteSlugAvailabilityResponse answers the debounced site-slug check.
type SiteSlugAvailabilityResponse struct {
	Disponivel bool `json:"disponivel"`
}

// ValidationErrorResponse itemizes form validation failures per field so the
// front end can attach each message to its input.
type ValidationErrorResponse struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

func FromFieldErrors(fields map[string]string) ValidationErrorResponse {
	return ValidationErrorResponse{
		Success: false,
		Error:   "VALIDATION_ERROR",
		Fields:  fields,
	}
}
