package handlers

import (
	"errors"
	"log"
	"net/http"

	request "datebook_funnel/internal/adapter/http/dto/request"
	response "datebook_funnel/internal/adapter/http/dto/response"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistrationPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRATION_INPUT", "Invalid registration payload", http.StatusBadRequest)

// RegistrationHandler handles customer registration and the debounced
// site-slug availability check.

type RegistrationHandler struct {
	usecase usecase.IRegistrationUseCase
}

func NewRegistrationHandler(uc usecase.IRegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{usecase: uc}
}

// CreateRegistration validates the form and registers the customer with the
// payment gateway. Validation failures come back itemized per field and never
// reach the gateway.
func (h *RegistrationHandler) CreateRegistration(c *gin.Context) {
	var payload request.RegistrationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistrationPayload.HTTPStatus, errInvalidRegistrationPayload.ToHTTPError())
		return
	}
	log.Printf("[registration][handler] create start slug=%s plano=%s email=%s", payload.Slug, payload.Plano, payload.Email)

	reg, err := h.usecase.Register(c.Request.Context(), payload.Slug, payload.Plano, payload.ToEntity())
	if err != nil {
		var ferrs usecase.FieldErrors
		if errors.As(err, &ferrs) {
			log.Printf("[registration][handler] validation failed slug=%s fields=%d", payload.Slug, len(ferrs))
			c.JSON(http.StatusBadRequest, response.FromFieldErrors(ferrs))
			return
		}
		log.Printf("[registration][handler] create failed slug=%s err=%v", payload.Slug, err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[registration][handler] create success slug=%s customer_id=%s asaas_customer_id=%s", payload.Slug, reg.InternalCustomerID, reg.GatewayCustomerID)

	c.JSON(http.StatusCreated, response.FromRegistration(reg))
}

// CheckSiteSlugAvailability answers whether a candidate site slug is still
// free. The front end debounces calls; the endpoint itself is stateless.
func (h *RegistrationHandler) CheckSiteSlugAvailability(c *gin.Context) {
	siteSlug := c.Param("site_slug")

	available, err := h.usecase.IsSiteSlugAvailable(c.Request.Context(), siteSlug)
	if err != nil {
		log.Printf("[registration][handler] site slug check failed site_slug=%s err=%v", siteSlug, err)
		appErr := mapRegistrationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SiteSlugAvailabilityResponse{Disponivel: available})
}

func mapRegistrationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlug), errors.Is(err, usecase.ErrInvalidSiteSlug):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlugConfigNotFound):
		return pkg.NewDomainErrorSimple("SLUG_CONFIG_NOT_FOUND", "Configuração não encontrada para este link", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRegistrationGateway), errors.Is(err, usecase.ErrIncompleteGatewayIDs):
		return pkg.NewDomainErrorSimple("REGISTRATION_GATEWAY_ERROR", "Não foi possível concluir o cadastro. Tente novamente.", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
