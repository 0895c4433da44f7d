package affinity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/affinity"
	"github.com/heartmarshall/fortune-watch/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/fortune-watch/internal/domain"
)

func TestRepo_TopPersona_DB(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := affinity.New(pool)
	ctx := context.Background()

	userID := testhelper.SeedUser(t, pool)
	testhelper.SeedAffinity(t, pool, userID, "tsukuyo", 3)
	testhelper.SeedAffinity(t, pool, userID, "hoshino", 9)
	testhelper.SeedAffinity(t, pool, userID, "akane", 9)

	got, err := repo.TopPersona(ctx, userID)
	if err != nil {
		t.Fatalf("TopPersona: %v", err)
	}
	// Tie at level 9 resolves to the lowest persona id.
	if got != "akane" {
		t.Errorf("TopPersona: got %q, want %q", got, "akane")
	}
}

func TestRepo_TopPersona_NoRows_DB(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	repo := affinity.New(pool)

	userID := testhelper.SeedUser(t, pool)

	_, err := repo.TopPersona(context.Background(), userID)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("TopPersona: got %v, want ErrNotFound", err)
	}
}
