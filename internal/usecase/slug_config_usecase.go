package usecase

import (
	"context"
	"errors"
	"strings"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces"
)

var (
	ErrInvalidSlug        = errors.New("invalid slug")
	ErrSlugConfigNotFound = errors.New("slug config not found")
)

// ISlugConfigUseCase resolves the tenant/funnel configuration for a session.
//
// A lookup failure is blocking for the funnel: there is no retry policy
// beyond the user reloading with a valid link.

type ISlugConfigUseCase interface {
	Resolve(ctx context.Context, slug, planCode string) (entities.SlugConfig, error)
}

type SlugConfigUseCase struct {
	repo interfaces.ISlugConfigRepository
}

var _ ISlugConfigUseCase = (*SlugConfigUseCase)(nil)

func NewSlugConfigUseCase(repo interfaces.ISlugConfigRepository) *SlugConfigUseCase {
	return &SlugConfigUseCase{repo: repo}
}

func (u *SlugConfigUseCase) Resolve(ctx context.Context, slug, planCode string) (entities.SlugConfig, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return entities.SlugConfig{}, ErrInvalidSlug
	}

	cfg, err := u.repo.GetBySlugAndPlan(ctx, slug, strings.TrimSpace(planCode))
	if err != nil {
		return entities.SlugConfig{}, err
	}
	if cfg.Slug == "" {
		return entities.SlugConfig{}, ErrSlugConfigNotFound
	}
	return cfg, nil
}
