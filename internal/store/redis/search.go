package redis

import (
	"context"
	"fmt"

	"github.com/Beka01247/bites/internal/domain"
	"github.com/redis/go-redis/v9"
)

type SearchIndexRepository struct {
	client *redis.Client
}

func NewSearchIndexRepository(client *redis.Client) *SearchIndexRepository {
	return &SearchIndexRepository{
		client: client,
	}
}

func (r *SearchIndexRepository) DropIndex(ctx context.Context) error {
	if err := r.client.FTDropIndex(ctx, searchIndexKey).Err(); err != nil {
		return fmt.Errorf("failed to drop search index: %w", err)
	}

	return nil
}

func (r *SearchIndexRepository) CreateIndex(ctx context.Context) error {
	err := r.client.FTCreate(ctx, searchIndexKey,
		&redis.FTCreateOptions{
			OnHash: true,
			Prefix: []interface{}{restaurantKeyPrefix},
		},
		&redis.FieldSchema{
			FieldName: "id",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "name",
			FieldType: redis.SearchFieldTypeText,
		},
		&redis.FieldSchema{
			FieldName: "avgStars",
			FieldType: redis.SearchFieldTypeNumeric,
			Sortable:  true,
		},
	).Err()
	if err != nil {
		return fmt.Errorf("failed to create search index: %w", err)
	}

	return nil
}

func (r *SearchIndexRepository) Search(ctx context.Context, query string) (*domain.SearchResult, error) {
	res, err := r.client.FTSearch(ctx, searchIndexKey, fmt.Sprintf("@name:(%s)", query)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to search restaurants: %w", err)
	}

	docs := make([]domain.SearchDoc, 0, len(res.Docs))
	for _, doc := range res.Docs {
		docs = append(docs, domain.SearchDoc{
			Key:    doc.ID,
			Fields: doc.Fields,
		})
	}

	return &domain.SearchResult{
		Total: int64(res.Total),
		Docs:  docs,
	}, nil
}
