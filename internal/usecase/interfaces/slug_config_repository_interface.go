package interfaces

import (
	"context"
	"datebook_funnel/internal/domain/entities"
)

// ISlugConfigRepository abstracts DynamoDB persistence for SlugConfig.
//
// A funnel session resolves its configuration exactly once, at registration
// page load; there is no write path through the funnel itself.
type ISlugConfigRepository interface {
	GetBySlugAndPlan(ctx context.Context, slug, planCode string) (entities.SlugConfig, error)
}
