package request

import (
	"strings"

	"datebook_funnel/internal/domain/entities"
)

// RegistrationRequest is the funnel registration payload. Field names follow
// the Portuguese wire contract consumed by the funnel front end.
type RegistrationRequest struct {
	Nome       string `json:"nome" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Whatsapp   string `json:"whatsapp" binding:"required"`
	CpfCnpj    string `json:"cpfCnpj" binding:"required"`
	TipoPessoa string `json:"tipoPessoa"`
	Companhia  string `json:"companhia"`

	Endereco    string `json:"endereco"`
	Numero      string `json:"numero"`
	Bairro      string `json:"bairro"`
	Cidade      string `json:"cidade"`
	Estado      string `json:"estado"`
	Cep         string `json:"cep"`
	Observacoes string `json:"observacoes"`

	Slug  string `json:"slug" binding:"required"`
	Plano string `json:"plano"`
}

// ToEntity builds the domain customer. Canonicalization (digit stripping,
// person type derivation) is the registration use case's job, not ours.
func (r RegistrationRequest) ToEntity() entities.Customer {
	return entities.Customer{
		FullName:       strings.TrimSpace(r.Nome),
		Email:          strings.TrimSpace(r.Email),
		Whatsapp:       r.Whatsapp,
		DocumentNumber: r.CpfCnpj,
		PersonType:     entities.PersonType(r.TipoPessoa),
		CompanyName:    strings.TrimSpace(r.Companhia),
		Street:         strings.TrimSpace(r.Endereco),
		Number:         strings.TrimSpace(r.Numero),
		Neighborhood:   strings.TrimSpace(r.Bairro),
		City:           strings.TrimSpace(r.Cidade),
		StateCode:      r.Estado,
		PostalCode:     r.Cep,
		Notes:          strings.TrimSpace(r.Observacoes),
	}
}
