package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/Beka01247/bites/internal/domain"
)

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("push reports log length and list is newest first", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewReviewRepository(client)

		for i, id := range []string{"rev1", "rev2", "rev3"} {
			length, err := repo.PushID(ctx, "r1", id)
			if err != nil {
				t.Fatalf("PushID failed: %v", err)
			}
			if length != int64(i+1) {
				t.Errorf("Expected length %d, got %d", i+1, length)
			}
		}

		ids, err := repo.ListIDs(ctx, "r1", 0, 9)
		if err != nil {
			t.Fatalf("ListIDs failed: %v", err)
		}
		want := []string{"rev3", "rev2", "rev1"}
		if len(ids) != len(want) {
			t.Fatalf("Expected %d ids, got %d", len(want), len(ids))
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("Expected ids[%d]=%s, got %s", i, want[i], ids[i])
			}
		}
	})

	t.Run("detail record round-trips", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewReviewRepository(client)

		review := &domain.Review{
			ID:           "rev1",
			RestaurantID: "r1",
			Rating:       4,
			Comment:      "good pasta",
			Timestamp:    1700000000000,
		}
		if err := repo.Create(ctx, review); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		got, err := repo.GetByID(ctx, "rev1")
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if got.Rating != 4 || got.Comment != "good pasta" || got.RestaurantID != "r1" {
			t.Errorf("Unexpected review: %+v", got)
		}
		if got.Timestamp != 1700000000000 {
			t.Errorf("Expected timestamp to survive, got %d", got.Timestamp)
		}
	})

	t.Run("missing detail is not found", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewReviewRepository(client)

		if _, err := repo.GetByID(ctx, "ghost"); !errors.Is(err, domain.ErrReviewNotFound) {
			t.Errorf("Expected ErrReviewNotFound, got %v", err)
		}
	})

	t.Run("remove and delete report affected counts", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewReviewRepository(client)

		if _, err := repo.PushID(ctx, "r1", "rev1"); err != nil {
			t.Fatalf("PushID failed: %v", err)
		}
		if err := repo.Create(ctx, &domain.Review{ID: "rev1", RestaurantID: "r1", Rating: 3}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		removed, err := repo.RemoveID(ctx, "r1", "rev1")
		if err != nil {
			t.Fatalf("RemoveID failed: %v", err)
		}
		if removed != 1 {
			t.Errorf("Expected 1 removed, got %d", removed)
		}

		deleted, err := repo.DeleteDetail(ctx, "rev1")
		if err != nil {
			t.Fatalf("DeleteDetail failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("Expected 1 deleted, got %d", deleted)
		}

		removed, err = repo.RemoveID(ctx, "r1", "rev1")
		if err != nil {
			t.Fatalf("RemoveID failed: %v", err)
		}
		deleted, err = repo.DeleteDetail(ctx, "rev1")
		if err != nil {
			t.Fatalf("DeleteDetail failed: %v", err)
		}
		if removed != 0 || deleted != 0 {
			t.Errorf("Expected zero affected on second delete, got %d/%d", removed, deleted)
		}
	})
}
