package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Document persists a rich-text document: the raw editor state it was saved
// with, the Markdown rendered from that state, and the checksum linking the
// two. Markdown is always regenerated from State, never edited in place.
type Document struct {
	bun.BaseModel `bun:"table:richtext_documents,alias:rd"`

	ID       uuid.UUID `bun:",pk,type:uuid" json:"id"`
	Title    string    `bun:"title,notnull" json:"title"`
	Slug     string    `bun:"slug,notnull,unique" json:"slug"`
	State    []byte    `bun:"state,notnull" json:"state"`
	Markdown string    `bun:"markdown,notnull" json:"markdown"`
	// Checksum stores the SHA-256 digest of State so save paths can detect
	// unchanged documents without re-serializing.
	Checksum  []byte    `bun:"checksum" json:"checksum,omitempty"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
