package usecase

import (
	"context"
	"fmt"

	"github.com/okikae/mdtask/internal/domain"
)

// RecordFileInput contains the parameters for recording a relevant file.
type RecordFileInput struct {
	Path        string // Task document path
	FilePath    string // File to record
	Description string // One-line description
}

// RecordFileOutput contains the updated ledger.
type RecordFileOutput struct {
	Files []domain.FileEntry
}

// RecordFile is the use case for maintaining the Relevant Files ledger.
type RecordFile struct {
	store domain.DocumentStore
}

// NewRecordFile creates a new RecordFile use case.
func NewRecordFile(store domain.DocumentStore) *RecordFile {
	return &RecordFile{store: store}
}

// Execute inserts or updates a ledger entry and saves the document.
// Recording the same path and description twice is idempotent.
func (uc *RecordFile) Execute(_ context.Context, in RecordFileInput) (*RecordFileOutput, error) {
	doc, err := uc.store.Load(in.Path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	if err := doc.RecordFile(in.FilePath, in.Description); err != nil {
		return nil, err
	}
	if err := uc.store.Save(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}

	return &RecordFileOutput{Files: doc.Files}, nil
}
