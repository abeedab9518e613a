package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := UUID("go-richtext:document:getting-started")
	second := UUID("go-richtext:document:getting-started")

	if first == uuid.Nil {
		t.Fatal("expected a non-nil UUID")
	}
	if first != second {
		t.Fatalf("expected stable UUIDs, got %s and %s", first, second)
	}
}

func TestUUIDDistinguishesKeys(t *testing.T) {
	if UUID("go-richtext:document:a") == UUID("go-richtext:document:b") {
		t.Fatal("expected different keys to produce different UUIDs")
	}
}

func TestUUIDEmptyKeyReturnsNil(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatal("expected nil UUID for blank key")
	}
}

func TestDocumentUUIDNormalizesSlugCase(t *testing.T) {
	if DocumentUUID("Getting-Started") != DocumentUUID("getting-started") {
		t.Fatal("expected slug case to be normalized")
	}
}
