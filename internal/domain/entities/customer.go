package entities

// PersonType follows the gateway vocabulary for CPF vs CNPJ holders.
type PersonType string

const (
	PersonTypeIndividual   PersonType = "FISICA"
	PersonTypeOrganization PersonType = "JURIDICA"
)

// Customer is the registering person/entity as submitted by the funnel form.
// DocumentNumber is kept in digits-only canonical form; PersonType must agree
// with its length (11 digits FISICA, 14 JURIDICA). Built once at submission
// time and not mutated after being sent to the gateway.
type Customer struct {
	FullName       string     `json:"full_name"`
	Email          string     `json:"email"`
	Whatsapp       string     `json:"whatsapp"`
	DocumentNumber string     `json:"document_number"`
	PersonType     PersonType `json:"person_type"`

	CompanyName  string `json:"company_name,omitempty"`
	Street       string `json:"street,omitempty"`
	Number       string `json:"number,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	StateCode    string `json:"state_code,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// Registration is the outcome of submitting a Customer for a slug.
//
// Both identifiers are required for any subsequent payment call; callers must
// treat a registration missing either one as failed regardless of flags set
// by the transport layer.
type Registration struct {
	InternalCustomerID string `json:"customer_id"`
	GatewayCustomerID  string `json:"asaas_customer_id"`
	RedirectURL        string `json:"redirect_url,omitempty"`
}

func (r Registration) Complete() bool {
	return r.InternalCustomerID != "" && r.GatewayCustomerID != ""
}
