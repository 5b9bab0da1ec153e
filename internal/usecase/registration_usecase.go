package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"
	"datebook_funnel/internal/validation"

	"github.com/google/uuid"
)

var (
	ErrRegistrationGateway  = errors.New("customer registration rejected by gateway")
	ErrInvalidSiteSlug      = errors.New("invalid site slug")
	ErrIncompleteGatewayIDs = errors.New("registration succeeded without both customer ids")
)

// FieldErrors itemizes client-side validation failures per field. Requests
// carrying any are rejected before any network call to the gateway.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	fields := make([]string, 0, len(f))
	for k := range f {
		fields = append(fields, k)
	}
	sort.Strings(fields)
	return "invalid fields: " + strings.Join(fields, ", ")
}

// IRegistrationUseCase submits a validated customer record for a slug and
// returns both the internal and the gateway-side customer identifiers.

type IRegistrationUseCase interface {
	Register(ctx context.Context, slug, planCode string, c entities.Customer) (entities.Registration, error)
	IsSiteSlugAvailable(ctx context.Context, siteSlug string) (bool, error)
}

type RegistrationUseCase struct {
	slugRepo     interfaces.ISlugConfigRepository
	siteSlugRepo interfaces.ISiteSlugRepository
	gateway      interfaces.IPaymentGateway
}

var _ IRegistrationUseCase = (*RegistrationUseCase)(nil)

func NewRegistrationUseCase(slugRepo interfaces.ISlugConfigRepository, siteSlugRepo interfaces.ISiteSlugRepository, gateway interfaces.IPaymentGateway) *RegistrationUseCase {
	return &RegistrationUseCase{slugRepo: slugRepo, siteSlugRepo: siteSlugRepo, gateway: gateway}
}

// Register validates the record, resolves the configuration of the selected
// plan and creates (or reuses) the gateway customer. The internal customer id
// is minted here; idempotency of the gateway-side entity is the gateway's
// responsibility, not ours, so resubmitting the same form is safe.
func (u *RegistrationUseCase) Register(ctx context.Context, slug, planCode string, c entities.Customer) (entities.Registration, error) {
	log.Printf("[registration][usecase] register start slug=%s plano=%s email=%s", slug, planCode, c.Email)

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.Registration{}, ErrInvalidSlug
	}
	planCode = strings.TrimSpace(planCode)

	c = canonicalizeCustomer(c)
	if ferrs := ValidateCustomer(c); len(ferrs) > 0 {
		log.Printf("[registration][usecase] validation failed slug=%s err=%v", slug, ferrs)
		return entities.Registration{}, ferrs
	}

	// The selected plan decides the amount and therefore whether the
	// promotional bypass applies; the default plan is only a fallback.
	cfg, err := u.slugRepo.GetBySlugAndPlan(ctx, slug, planCode)
	if err != nil {
		log.Printf("[registration][usecase] slug lookup failed slug=%s plano=%s err=%v", slug, planCode, err)
		return entities.Registration{}, err
	}
	if cfg.Slug == "" {
		return entities.Registration{}, ErrSlugConfigNotFound
	}

	gatewayID, err := u.gateway.CreateCustomer(ctx, c)
	if err != nil {
		log.Printf("[registration][usecase] gateway create customer failed slug=%s err=%v", slug, err)
		return entities.Registration{}, err
	}

	reg := entities.Registration{
		InternalCustomerID: uuid.NewString(),
		GatewayCustomerID:  gatewayID,
	}
	if cfg.IsPromotional() {
		// Promotional plans skip payment; the registration carries the
		// tenant redirect so the funnel can navigate straight to it.
		reg.RedirectURL = cfg.RedirectURL
	}

	if !reg.Complete() {
		log.Printf("[registration][usecase] incomplete ids slug=%s gateway_id=%q", slug, gatewayID)
		return entities.Registration{}, ErrIncompleteGatewayIDs
	}

	log.Printf("[registration][usecase] register success slug=%s customer_id=%s asaas_customer_id=%s", slug, reg.InternalCustomerID, reg.GatewayCustomerID)
	return reg, nil
}

// IsSiteSlugAvailable backs the debounced uniqueness check on the form.
func (u *RegistrationUseCase) IsSiteSlugAvailable(ctx context.Context, siteSlug string) (bool, error) {
	siteSlug = strings.ToLower(strings.TrimSpace(siteSlug))
	if siteSlug == "" {
		return false, ErrInvalidSiteSlug
	}
	taken, err := u.siteSlugRepo.Exists(ctx, siteSlug)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// canonicalizeCustomer reduces document/phone/postal code to digits and
// derives the person type from the document length.
func canonicalizeCustomer(c entities.Customer) entities.Customer {
	c.FullName = strings.TrimSpace(c.FullName)
	c.Email = strings.TrimSpace(c.Email)
	c.Whatsapp = validation.Digits(c.Whatsapp)
	c.DocumentNumber = validation.Digits(c.DocumentNumber)
	c.PostalCode = validation.Digits(c.PostalCode)
	c.StateCode = validation.MaskStateCode(c.StateCode)
	if c.PersonType == "" {
		c.PersonType = entities.PersonType(validation.DetectPersonType(c.DocumentNumber))
	}
	return c
}

// ValidateCustomer applies the form validity rules. Required: name, email,
// whatsapp and document; the optional address fields are checked only when
// present. The person type must agree with the document length.
func ValidateCustomer(c entities.Customer) FieldErrors {
	ferrs := FieldErrors{}

	if c.FullName == "" {
		ferrs["nome"] = "Nome é obrigatório"
	}
	if !validation.IsValidEmail(c.Email) {
		ferrs["email"] = "E-mail inválido"
	}
	if !validation.IsValidPhone(c.Whatsapp) {
		ferrs["whatsapp"] = "WhatsApp deve ter 10 ou 11 dígitos"
	}

	switch len(c.DocumentNumber) {
	case 11:
		if !validation.IsValidCPF(c.DocumentNumber) {
			ferrs["cpfCnpj"] = "CPF inválido"
		} else if c.PersonType != entities.PersonTypeIndividual {
			ferrs["tipoPessoa"] = "Tipo de pessoa não corresponde ao CPF"
		}
	case 14:
		if !validation.IsValidCNPJ(c.DocumentNumber) {
			ferrs["cpfCnpj"] = "CNPJ inválido"
		} else if c.PersonType != entities.PersonTypeOrganization {
			ferrs["tipoPessoa"] = "Tipo de pessoa não corresponde ao CNPJ"
		}
	default:
		ferrs["cpfCnpj"] = "Documento deve ser um CPF ou CNPJ"
	}

	if c.PostalCode != "" && !validation.IsValidPostalCode(c.PostalCode) {
		ferrs["cep"] = "CEP deve ter 8 dígitos"
	}
	if c.StateCode != "" && !validation.IsValidStateCode(c.StateCode) {
		ferrs["estado"] = "UF inválida"
	}

	if len(ferrs) == 0 {
		return nil
	}
	return ferrs
}
