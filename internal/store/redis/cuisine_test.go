package redis

import (
	"context"
	"sort"
	"testing"
)

func TestCuisineRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("membership is symmetric when written together", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewCuisineRepository(client)

		if err := repo.Register(ctx, "italian"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if err := repo.AddRestaurant(ctx, "italian", "r1"); err != nil {
			t.Fatalf("AddRestaurant failed: %v", err)
		}
		if err := repo.TagRestaurant(ctx, "r1", "italian"); err != nil {
			t.Fatalf("TagRestaurant failed: %v", err)
		}

		names, err := repo.Names(ctx)
		if err != nil {
			t.Fatalf("Names failed: %v", err)
		}
		if len(names) != 1 || names[0] != "italian" {
			t.Errorf("Expected registry [italian], got %v", names)
		}

		members, err := repo.Members(ctx, "italian")
		if err != nil {
			t.Fatalf("Members failed: %v", err)
		}
		if len(members) != 1 || members[0] != "r1" {
			t.Errorf("Expected members [r1], got %v", members)
		}

		reverse, err := repo.ForRestaurant(ctx, "r1")
		if err != nil {
			t.Fatalf("ForRestaurant failed: %v", err)
		}
		if len(reverse) != 1 || reverse[0] != "italian" {
			t.Errorf("Expected reverse set [italian], got %v", reverse)
		}
	})

	t.Run("sets are duplicate free", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewCuisineRepository(client)

		for i := 0; i < 3; i++ {
			if err := repo.Register(ctx, "thai"); err != nil {
				t.Fatalf("Register failed: %v", err)
			}
			if err := repo.AddRestaurant(ctx, "thai", "r1"); err != nil {
				t.Fatalf("AddRestaurant failed: %v", err)
			}
		}

		members, err := repo.Members(ctx, "thai")
		if err != nil {
			t.Fatalf("Members failed: %v", err)
		}
		if len(members) != 1 {
			t.Errorf("Expected one member, got %v", members)
		}
	})

	t.Run("registry accumulates across restaurants", func(t *testing.T) {
		_, client := newTestStore(t)
		repo := NewCuisineRepository(client)

		for _, name := range []string{"italian", "thai", "mexican"} {
			if err := repo.Register(ctx, name); err != nil {
				t.Fatalf("Register failed: %v", err)
			}
		}

		names, err := repo.Names(ctx)
		if err != nil {
			t.Fatalf("Names failed: %v", err)
		}
		sort.Strings(names)
		want := []string{"italian", "mexican", "thai"}
		if len(names) != len(want) {
			t.Fatalf("Expected %v, got %v", want, names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("Expected %v, got %v", want, names)
				break
			}
		}
	})
}
