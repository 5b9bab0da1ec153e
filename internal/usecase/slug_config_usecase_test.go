package usecase

import (
	"context"
	"errors"
	"testing"

	"datebook_funnel/internal/domain/entities"
	"datebook_funnel/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSlugConfigUseCase_Resolve(t *testing.T) {
	t.Run("empty slug", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISlugConfigRepository(ctrl)
		uc := NewSlugConfigUseCase(repo)

		_, err := uc.Resolve(context.Background(), "   ", "")
		if !errors.Is(err, ErrInvalidSlug) {
			t.Fatalf("expected ErrInvalidSlug, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISlugConfigRepository(ctrl)
		uc := NewSlugConfigUseCase(repo)

		repo.EXPECT().GetBySlugAndPlan(gomock.Any(), "nope", "").Return(entities.SlugConfig{}, nil)

		_, err := uc.Resolve(context.Background(), "nope", "")
		if !errors.Is(err, ErrSlugConfigNotFound) {
			t.Fatalf("expected ErrSlugConfigNotFound, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISlugConfigRepository(ctrl)
		uc := NewSlugConfigUseCase(repo)

		boom := errors.New("dynamo down")
		repo.EXPECT().GetBySlugAndPlan(gomock.Any(), "datebook", "").Return(entities.SlugConfig{}, boom)

		_, err := uc.Resolve(context.Background(), "datebook", "")
		if !errors.Is(err, boom) {
			t.Fatalf("expected repo error, got %v", err)
		}
	})

	t.Run("success trims plan code", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockISlugConfigRepository(ctrl)
		uc := NewSlugConfigUseCase(repo)

		want := entities.SlugConfig{Slug: "datebook", PlanCode: "anual", Amount: 49.90, RecipientName: "Datebook"}
		repo.EXPECT().GetBySlugAndPlan(gomock.Any(), "datebook", "anual").Return(want, nil)

		got, err := uc.Resolve(context.Background(), " datebook ", " anual ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Fatalf("unexpected config: %+v", got)
		}
	})
}
