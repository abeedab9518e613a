package store

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-richtext/internal/document"
	"github.com/goliatone/go-richtext/internal/markdown"
	"github.com/goliatone/go-richtext/pkg/interfaces"
	"github.com/goliatone/go-richtext/pkg/testsupport"
)

const storeState = `{
	"root": {
		"type": "root",
		"children": [
			{"type": "heading", "tag": "h1", "children": [{"type": "text", "text": "Release Notes"}]},
			{"type": "paragraph", "children": [{"type": "text", "text": "Shipped."}]}
		]
	}
}`

const storeStateUpdated = `{
	"root": {
		"type": "root",
		"children": [
			{"type": "heading", "tag": "h1", "children": [{"type": "text", "text": "Release Notes"}]},
			{"type": "paragraph", "children": [{"type": "text", "text": "Shipped twice."}]}
		]
	}
}`

func TestService_SaveCreateAndUpdate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Save(ctx, SaveInput{Title: "Release Notes", State: []byte(storeState)})
	if err != nil {
		t.Fatalf("Save() create error = %v", err)
	}
	if doc.Slug != "release-notes" {
		t.Fatalf("expected derived slug, got %q", doc.Slug)
	}
	if doc.Markdown != "# Release Notes\nShipped." {
		t.Fatalf("unexpected markdown %q", doc.Markdown)
	}

	// Same state again: no new revision, same record back.
	again, err := svc.Save(ctx, SaveInput{Title: "Release Notes", State: []byte(storeState)})
	if err != nil {
		t.Fatalf("Save() unchanged error = %v", err)
	}
	if again.ID != doc.ID {
		t.Fatalf("unchanged save should return the stored record, got %s vs %s", again.ID, doc.ID)
	}
	if again.Markdown != doc.Markdown {
		t.Fatal("unchanged save should not re-serialize")
	}

	updated, err := svc.Save(ctx, SaveInput{Title: "Release Notes", State: []byte(storeStateUpdated)})
	if err != nil {
		t.Fatalf("Save() update error = %v", err)
	}
	if updated.ID != doc.ID {
		t.Fatalf("update should keep the deterministic ID, got %s vs %s", updated.ID, doc.ID)
	}
	if updated.Markdown != "# Release Notes\nShipped twice." {
		t.Fatalf("unexpected markdown after update %q", updated.Markdown)
	}
}

func TestService_SaveValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, SaveInput{State: []byte(storeState)}); err != ErrTitleRequired {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Save(ctx, SaveInput{Title: "x"}); err != ErrStateRequired {
		t.Fatalf("expected ErrStateRequired, got %v", err)
	}
}

func TestService_GetBySlugAndList(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Save(ctx, SaveInput{Title: "Beta Doc", State: []byte(storeState)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, err := svc.Save(ctx, SaveInput{Title: "Alpha Doc", State: []byte(storeState)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	doc, err := svc.GetBySlug(ctx, "alpha-doc")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if doc.Title != "Alpha Doc" {
		t.Fatalf("GetBySlug() returned %q", doc.Title)
	}

	docs, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 2 || docs[0].Slug != "alpha-doc" || docs[1].Slug != "beta-doc" {
		t.Fatalf("List() order unexpected: %+v", docs)
	}

	if _, err := svc.GetBySlug(ctx, "missing"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestService_ExportMatchesStoredMarkdown(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.Save(ctx, SaveInput{Title: "Export Check", State: []byte(storeState)})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rendered, err := svc.Export(ctx, doc.ID)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if rendered != doc.Markdown {
		t.Fatalf("Export() = %q, stored markdown %q", rendered, doc.Markdown)
	}
}

func newTestService(t *testing.T) *Service {
	t.Helper()

	db := newTestDB(t)
	exporter := stateExporter{}
	return NewService(NewBunDocumentRepository(db), exporter, interfaces.ExportOptions{}, nil)
}

// stateExporter adapts the core exporter to the interfaces.Exporter contract
// without pulling in the filesystem-backed service.
type stateExporter struct{}

func (stateExporter) Export(ctx context.Context, state []byte, opts interfaces.ExportOptions) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}
	if opts.ValidateState {
		if err := document.ValidateState(state); err != nil {
			return "", err
		}
	}
	tree, err := document.Decode(state)
	if err != nil {
		return "", err
	}
	return markdown.NewExporter().Serialize(tree.Flatten()), nil
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := testsupport.NewSQLiteMemoryDB("store_test")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Document)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
	if _, err := db.NewDelete().Model((*Document)(nil)).Where("1=1").Exec(ctx); err != nil {
		t.Fatalf("reset table: %v", err)
	}
	return db
}
