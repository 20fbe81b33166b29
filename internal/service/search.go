package service

import (
	"context"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/Beka01247/bites/internal/repo"
	"go.uber.org/zap"
)

type SearchService struct {
	searchRepo repo.SearchIndexRepository
	logger     *zap.SugaredLogger
}

func NewSearchService(searchRepo repo.SearchIndexRepository, logger *zap.SugaredLogger) *SearchService {
	return &SearchService{
		searchRepo: searchRepo,
		logger:     logger,
	}
}

// Rebuild drops and recreates the full-text index. Dropping fails on the very
// first run when no index exists yet; that is logged and ignored. Idempotent,
// meant for out-of-band reconciliation, never the request path.
func (s *SearchService) Rebuild(ctx context.Context) error {
	if err := s.searchRepo.DropIndex(ctx); err != nil {
		s.logger.Infow("no existing search index to drop", "error", err)
	}

	if err := s.searchRepo.CreateIndex(ctx); err != nil {
		return fmt.Errorf("failed to rebuild search index: %w", err)
	}

	s.logger.Infow("search index rebuilt")

	return nil
}

func (s *SearchService) Query(ctx context.Context, q string) (*domain.SearchResult, error) {
	return s.searchRepo.Search(ctx, q)
}
