package handlers

import (
	"errors"
	"log"
	"net/http"

	response "datebook_funnel/internal/adapter/http/dto/response"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/pkg"

	"github.com/gin-gonic/gin"
)

// SlugConfigHandler resolves funnel configurations by slug.

type SlugConfigHandler struct {
	usecase usecase.ISlugConfigUseCase
}

func NewSlugConfigHandler(uc usecase.ISlugConfigUseCase) *SlugConfigHandler {
	return &SlugConfigHandler{usecase: uc}
}

// GetSlugConfig returns the tenant configuration for a slug. The optional
// `plano` query parameter selects a plan tier.
func (h *SlugConfigHandler) GetSlugConfig(c *gin.Context) {
	slug := c.Param("slug")
	plano := c.Query("plano")
	log.Printf("[slug-config][handler] lookup start slug=%s plano=%s", slug, plano)

	cfg, err := h.usecase.Resolve(c.Request.Context(), slug, plano)
	if err != nil {
		log.Printf("[slug-config][handler] lookup failed slug=%s err=%v", slug, err)
		appErr := mapSlugConfigError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[slug-config][handler] lookup success slug=%s valor=%.2f", slug, cfg.Amount)

	c.JSON(http.StatusOK, response.FromSlugConfig(cfg))
}

func mapSlugConfigError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSlug):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSlugConfigNotFound):
		return pkg.NewDomainErrorSimple("SLUG_CONFIG_NOT_FOUND", "Configuração não encontrada para este link", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
