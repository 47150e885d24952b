package usecase

import (
	"context"
	"fmt"

	"github.com/okikae/mdtask/internal/domain"
)

// InitDocumentInput contains the parameters for scaffolding a document.
type InitDocumentInput struct {
	Path  string // Task document path
	Title string // Optional frontmatter title
}

// InitDocumentOutput contains the created document.
type InitDocumentOutput struct {
	Document *domain.Document
}

// InitDocument is the use case for creating a new task-list file.
type InitDocument struct {
	store domain.DocumentStore
}

// NewInitDocument creates a new InitDocument use case.
func NewInitDocument(store domain.DocumentStore) *InitDocument {
	return &InitDocument{store: store}
}

// Execute writes an empty task-list scaffold to the given path.
// Fails if a document already exists there.
func (uc *InitDocument) Execute(_ context.Context, in InitDocumentInput) (*InitDocumentOutput, error) {
	exists, err := uc.store.Exists(in.Path)
	if err != nil {
		return nil, fmt.Errorf("check document: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentExists, in.Path)
	}

	doc := &domain.Document{
		Path: in.Path,
		Meta: domain.Meta{Title: in.Title},
	}
	if err := uc.store.Save(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	return &InitDocumentOutput{Document: doc}, nil
}
