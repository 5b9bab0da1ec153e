package interfaces

import (
	"context"
	"datebook_funnel/internal/domain/entities"
)

// IChargeRepository abstracts DynamoDB persistence for Charge.

type IChargeRepository interface {
	Create(ctx context.Context, c entities.Charge) (entities.Charge, error)
	GetByID(ctx context.Context, id string) (entities.Charge, error)
	GetByIdempotencyKey(ctx context.Context, key string) (entities.Charge, error)
	UpdateStatus(ctx context.Context, id string, status entities.ChargeStatus) (entities.Charge, error)
}
