package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"
)

var (
	ErrInvalidChargeCustomer = errors.New("missing customer ids for charge")
	ErrInvalidChargeAmount   = errors.New("invalid charge amount")
	ErrInvalidChargeMethod   = errors.New("invalid payment method")
	ErrMissingCardDetails    = errors.New("missing card details")
	ErrChargeNotFound        = errors.New("charge not found")
)

// CreateChargeCommand is one charge attempt. IdempotencyKey is generated by
// the caller (the funnel controller mints a UUID per payment attempt); when
// a charge already exists for the key the existing charge is returned
// instead of creating a duplicate on the gateway.
type CreateChargeCommand struct {
	Slug               string
	InternalCustomerID string
	GatewayCustomerID  string
	Amount             float64
	Method             entities.PaymentMethod
	IdempotencyKey     string
	Card               *interfaces.CardDetails
}

// IPaymentUseCase creates charges and observes their status.

type IPaymentUseCase interface {
	CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.Charge, error)
	GetStatus(ctx context.Context, chargeID string) (entities.ChargeStatus, error)
	RefreshPixQRCode(ctx context.Context, chargeID string) (entities.Charge, error)
}

type PaymentUseCase struct {
	repo    interfaces.IChargeRepository
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IChargeRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, gateway: gateway}
}

// CreateCharge creates exactly one gateway charge per idempotency key.
// PIX charges come back pending with the copy&paste payload and QR image;
// card charges may already be terminal when the gateway answers
// synchronously, and callers must branch on the returned status rather than
// assume confirmation.
func (u *PaymentUseCase) CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.Charge, error) {
	log.Printf("[payment][usecase] create charge start slug=%s metodo=%s valor=%.2f", cmd.Slug, cmd.Method, cmd.Amount)

	if strings.TrimSpace(cmd.GatewayCustomerID) == "" || strings.TrimSpace(cmd.InternalCustomerID) == "" {
		return entities.Charge{}, ErrInvalidChargeCustomer
	}
	if cmd.Amount <= 0 {
		return entities.Charge{}, ErrInvalidChargeAmount
	}
	switch cmd.Method {
	case entities.PaymentMethodPix:
	case entities.PaymentMethodCard:
		if cmd.Card == nil {
			return entities.Charge{}, ErrMissingCardDetails
		}
	default:
		return entities.Charge{}, ErrInvalidChargeMethod
	}

	if key := strings.TrimSpace(cmd.IdempotencyKey); key != "" {
		existing, err := u.repo.GetByIdempotencyKey(ctx, key)
		if err != nil {
			return entities.Charge{}, err
		}
		if existing.ID != "" {
			log.Printf("[payment][usecase] reusing charge for idempotency key slug=%s charge_id=%s", cmd.Slug, existing.ID)
			return existing, nil
		}
	}

	now := time.Now().UTC()
	gc, err := u.gateway.CreateCharge(ctx, interfaces.GatewayChargeRequest{
		GatewayCustomerID: cmd.GatewayCustomerID,
		Method:            cmd.Method,
		Amount:            cmd.Amount,
		DueDate:           now,
		Description:       "Assinatura Datebook",
		Card:              cmd.Card,
	})
	if err != nil {
		log.Printf("[payment][usecase] gateway create charge failed slug=%s err=%v", cmd.Slug, err)
		return entities.Charge{}, err
	}

	c := entities.Charge{
		ID:                 gc.ID,
		Slug:               cmd.Slug,
		InternalCustomerID: cmd.InternalCustomerID,
		GatewayCustomerID:  cmd.GatewayCustomerID,
		IdempotencyKey:     strings.TrimSpace(cmd.IdempotencyKey),
		Method:             cmd.Method,
		Amount:             cmd.Amount,
		Status:             gc.Status,
		PixPayload:         gc.PixPayload,
		PixQRImage:         gc.PixQRImage,
		InvoiceURL:         gc.InvoiceURL,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[payment][usecase] charge repository create failed charge_id=%s err=%v", c.ID, err)
		return entities.Charge{}, err
	}
	log.Printf("[payment][usecase] create charge success charge_id=%s status=%s", created.ID, created.Status)
	return created, nil
}

// GetStatus queries the gateway and persists any transition out of pending.
// Terminal local statuses are returned as-is without another gateway call.
func (u *PaymentUseCase) GetStatus(ctx context.Context, chargeID string) (entities.ChargeStatus, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return "", ErrChargeNotFound
	}

	c, err := u.repo.GetByID(ctx, chargeID)
	if err != nil {
		return "", err
	}
	if c.ID == "" {
		return "", ErrChargeNotFound
	}
	if c.Status.Terminal() {
		return c.Status, nil
	}

	status, err := u.gateway.GetChargeStatus(ctx, chargeID)
	if err != nil {
		return "", err
	}
	if status != c.Status {
		if _, err := u.repo.UpdateStatus(ctx, chargeID, status); err != nil {
			log.Printf("[payment][usecase] status persist failed charge_id=%s status=%s err=%v", chargeID, status, err)
			return "", err
		}
		log.Printf("[payment][usecase] status transition charge_id=%s %s -> %s", chargeID, c.Status, status)
	}
	return status, nil
}

// RefreshPixQRCode re-fetches the PIX payload/QR pair for an existing charge.
func (u *PaymentUseCase) RefreshPixQRCode(ctx context.Context, chargeID string) (entities.Charge, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}

	c, err := u.repo.GetByID(ctx, chargeID)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.ID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}

	payload, image, err := u.gateway.GetPixQRCode(ctx, chargeID)
	if err != nil {
		return entities.Charge{}, err
	}
	c.PixPayload = payload
	c.PixQRImage = image
	return c, nil
}
