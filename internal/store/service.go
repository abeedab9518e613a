package store

import (
	"bytes"
	"context"
	"crypto/sha256"
	"strings"
	"time"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/goliatone/go-richtext/internal/identity"
	"github.com/goliatone/go-richtext/internal/logging"
	"github.com/goliatone/go-richtext/pkg/interfaces"
)

// SaveInput carries everything needed to persist a document revision.
type SaveInput struct {
	Title string
	// Slug is optional; when empty it is derived from the title.
	Slug  string
	State []byte
}

// Service persists documents alongside the Markdown derived from their
// editor state. Saves are idempotent per slug: the document ID is derived
// deterministically and unchanged states short-circuit before serializing.
type Service struct {
	repo     *BunDocumentRepository
	exporter interfaces.Exporter
	export   interfaces.ExportOptions
	clock    func() time.Time
	logger   interfaces.Logger
}

// NewService constructs a document store service.
func NewService(repo *BunDocumentRepository, exporter interfaces.Exporter, export interfaces.ExportOptions, logger interfaces.Logger) *Service {
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		repo:     repo,
		exporter: exporter,
		export:   export,
		clock:    time.Now,
		logger:   logger,
	}
}

// Save exports the supplied editor state and upserts the document keyed by
// its slug. When the stored checksum already matches the incoming state the
// existing record is returned untouched.
func (s *Service) Save(ctx context.Context, input SaveInput) (*Document, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if len(input.State) == 0 {
		return nil, ErrStateRequired
	}

	docSlug := normalizeSlug(input.Slug)
	if docSlug == "" {
		docSlug = normalizeSlug(title)
	}
	if docSlug == "" {
		return nil, ErrSlugRequired
	}

	sum := sha256.Sum256(input.State)
	id := identity.DocumentUUID(docSlug)

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	if existing != nil && bytes.Equal(existing.Checksum, sum[:]) {
		logging.WithFields(s.logger, map[string]any{"slug": docSlug}).
			Debug("store.save.unchanged")
		return existing, nil
	}

	markdown, err := s.exporter.Export(ctx, input.State, s.export)
	if err != nil {
		return nil, err
	}

	now := s.clock().UTC()
	doc := &Document{
		ID:        id,
		Title:     title,
		Slug:      docSlug,
		State:     append([]byte(nil), input.State...),
		Markdown:  markdown,
		Checksum:  sum[:],
		UpdatedAt: now,
	}

	if existing == nil {
		doc.CreatedAt = now
		created, err := s.repo.Create(ctx, doc)
		if err != nil {
			return nil, err
		}
		logging.WithFields(s.logger, map[string]any{"slug": docSlug, "id": id}).
			Info("store.save.created")
		return created, nil
	}

	doc.CreatedAt = existing.CreatedAt
	updated, err := s.repo.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	logging.WithFields(s.logger, map[string]any{"slug": docSlug, "id": id}).
		Info("store.save.updated")
	return updated, nil
}

// Get returns a document by ID.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return s.repo.GetByID(ctx, id)
}

// GetBySlug returns a document by slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*Document, error) {
	return s.repo.GetBySlug(ctx, normalizeSlug(slug))
}

// List returns every stored document ordered by slug.
func (s *Service) List(ctx context.Context) ([]*Document, error) {
	return s.repo.List(ctx)
}

// Delete removes a document by ID.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Export re-serializes the stored editor state. The persisted Markdown is a
// cache of exactly this output; the two only diverge if the exporter changes
// between saves.
func (s *Service) Export(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return s.exporter.Export(ctx, doc.State, s.export)
}

func normalizeSlug(input string) string {
	candidate := strings.TrimSpace(input)
	if candidate == "" {
		return ""
	}
	normalizer := slug.Default()
	normalized, err := normalizer.Normalize(candidate)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.ReplaceAll(candidate, " ", "-"))
	}
	return normalized
}
