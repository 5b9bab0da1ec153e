package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	request "datebook_funnel/internal/adapter/http/dto/request"
	response "datebook_funnel/internal/adapter/http/dto/response"
	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/funnel"
	"datebook_funnel/internal/usecase"
	"datebook_funnel/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentHandler creates charges and answers status queries. Pending PIX
// charges additionally get a server-side status watcher so transitions are
// persisted even if the browser stops polling.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	watcher *funnel.StatusPoller
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, watcher *funnel.StatusPoller) *PaymentHandler {
	return &PaymentHandler{usecase: uc, watcher: watcher}
}

// CreatePayment creates a PIX or card charge. Clients may send their own
// idempotencyKey; one is minted otherwise so a retried request cannot create
// a duplicate gateway charge.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		log.Printf("[payment][handler] invalid method slug=%s metodo=%s", payload.Slug, payload.Metodo)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	if cmd.IdempotencyKey == "" {
		cmd.IdempotencyKey = uuid.NewString()
	}
	log.Printf("[payment][handler] create start slug=%s metodo=%s valor=%.2f", cmd.Slug, cmd.Method, cmd.Amount)

	charge, err := h.usecase.CreateCharge(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[payment][handler] create failed slug=%s err=%v", cmd.Slug, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success charge_id=%s status=%s", charge.ID, charge.Status)

	if charge.Method == entities.PaymentMethodPix && !charge.Status.Terminal() {
		h.watchCharge(charge.ID)
	}

	c.JSON(http.StatusCreated, response.FromCharge(charge))
}

// GetPaymentStatus returns the current charge status, querying the gateway
// when the local record is still pending.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	paymentID := c.Param("payment_id")

	status, err := h.usecase.GetStatus(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] status failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChargeStatus(entities.Charge{ID: paymentID, Status: status}))
}

// GetPaymentPixQRCode re-fetches the PIX payload and QR image for a charge,
// used when the front end lost them (page reload).
func (h *PaymentHandler) GetPaymentPixQRCode(c *gin.Context) {
	paymentID := c.Param("payment_id")

	charge, err := h.usecase.RefreshPixQRCode(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[payment][handler] pix refresh failed payment_id=%s err=%v", paymentID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCharge(charge))
}

// watchCharge polls the charge in the background until terminal or timeout.
// The request context is about to die, so the watcher runs on its own.
func (h *PaymentHandler) watchCharge(chargeID string) {
	if h.watcher == nil {
		return
	}
	h.watcher.Start(context.Background(), func(ctx context.Context) (entities.ChargeStatus, error) {
		return h.usecase.GetStatus(ctx, chargeID)
	}, func(status entities.ChargeStatus) {
		if status.Terminal() {
			log.Printf("[payment][watcher] charge settled charge_id=%s status=%s", chargeID, status)
		}
	})
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChargeCustomer),
		errors.Is(err, usecase.ErrInvalidChargeAmount),
		errors.Is(err, usecase.ErrInvalidChargeMethod),
		errors.Is(err, usecase.ErrMissingCardDetails):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
