package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/fincheck/backend/internal/domain/entity"
	domainerror "github.com/fincheck/backend/internal/domain/error"
)

func TestCategoryRepository_OwnerScoping(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	repo := NewCategoryRepository(db)

	owner := seedUser(t, db, "owner@example.com")
	other := seedUser(t, db, "other@example.com")

	t.Run("each user sees only their seed", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(categories) != 12 {
			t.Errorf("expected 12 categories, got %d", len(categories))
		}
	})

	t.Run("foreign category lookup is not found", func(t *testing.T) {
		ownerCategories, err := repo.FindByUser(ctx, owner.ID)
		if err != nil || len(ownerCategories) == 0 {
			t.Fatalf("failed to list owner categories: %v", err)
		}
		if _, err := repo.FindByIDAndUser(ctx, ownerCategories[0].ID, other.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("update replaces fields", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		target := categories[0]
		target.Name = "Renamed"
		target.Type = entity.TransactionTypeOutcome
		if err := repo.Update(ctx, target); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByIDAndUser(ctx, target.ID, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found.Name != "Renamed" || found.Type != entity.TransactionTypeOutcome {
			t.Errorf("update did not persist: %+v", found)
		}
	})

	t.Run("delete removes the category", func(t *testing.T) {
		categories, err := repo.FindByUser(ctx, owner.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		target := categories[0]
		if err := repo.Delete(ctx, target.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.FindByIDAndUser(ctx, target.ID, owner.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound after delete, got %v", err)
		}
	})
}
