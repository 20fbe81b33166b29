package repo

import (
	"context"

	"github.com/Beka01247/bites/internal/domain"
)

type SearchIndexRepository interface {
	// DropIndex fails when no index exists; callers treat that as a no-op.
	DropIndex(ctx context.Context) error
	// CreateIndex builds the full-text schema over the restaurant hash prefix.
	CreateIndex(ctx context.Context) error
	Search(ctx context.Context, query string) (*domain.SearchResult, error)
}
