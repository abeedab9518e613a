package store

import (
	"context"
	"fmt"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// BunDocumentRepository implements DocumentRepository with optional caching.
type BunDocumentRepository struct {
	repo repository.Repository[*Document]
}

// NewBunDocumentRepository creates a document repository without caching.
func NewBunDocumentRepository(db *bun.DB) *BunDocumentRepository {
	return NewBunDocumentRepositoryWithCache(db, nil, nil)
}

// NewBunDocumentRepositoryWithCache creates a document repository with caching services.
func NewBunDocumentRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunDocumentRepository {
	base := NewDocumentRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunDocumentRepository{repo: base}
}

func (r *BunDocumentRepository) Create(ctx context.Context, doc *Document) (*Document, error) {
	record, err := r.repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("document repository error: %w", err)
	}
	return record, nil
}

func (r *BunDocumentRepository) GetByID(ctx context.Context, id uuid.UUID) (*Document, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "document", id.String())
	}
	return record, nil
}

func (r *BunDocumentRepository) GetBySlug(ctx context.Context, slug string) (*Document, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "document", slug)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: "document", Key: slug}
	}
	return records[0], nil
}

func (r *BunDocumentRepository) List(ctx context.Context) ([]*Document, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("slug ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("document repository error: %w", err)
	}
	return records, nil
}

func (r *BunDocumentRepository) Update(ctx context.Context, doc *Document) (*Document, error) {
	updated, err := r.repo.Update(ctx, doc,
		repository.UpdateByID(doc.ID.String()),
		repository.UpdateColumns(
			"title",
			"slug",
			"state",
			"markdown",
			"checksum",
			"updated_at",
		),
	)
	if err != nil {
		return nil, fmt.Errorf("document repository error: %w", err)
	}
	return updated, nil
}

func (r *BunDocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.repo.Delete(ctx, &Document{ID: id})
}

func mapRepositoryError(err error, resource, key string) error {
	if err == nil {
		return nil
	}

	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: resource, Key: key}
	}

	return fmt.Errorf("%s repository error: %w", resource, err)
}
