// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/okikae/mdtask/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockDocumentStore is an in-memory test double for domain.DocumentStore.
// Load returns a deep copy so test fixtures stay isolated; Save stores a
// deep copy and appends a snapshot to Saved.
type MockDocumentStore struct {
	Docs    map[string]*domain.Document
	Saved   []*domain.Document
	LoadErr error
	SaveErr error
}

// NewMockDocumentStore creates a store with initialized maps.
func NewMockDocumentStore() *MockDocumentStore {
	return &MockDocumentStore{Docs: make(map[string]*domain.Document)}
}

// Exists reports whether a document is registered at path.
func (m *MockDocumentStore) Exists(path string) (bool, error) {
	_, ok := m.Docs[path]
	return ok, nil
}

// Load returns a deep copy of the registered document.
func (m *MockDocumentStore) Load(path string) (*domain.Document, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	doc, ok := m.Docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrDocumentNotFound, path)
	}
	return doc.Clone(), nil
}

// Save stores a deep copy of doc and records the snapshot.
func (m *MockDocumentStore) Save(doc *domain.Document) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	clone := doc.Clone()
	m.Docs[doc.Path] = clone
	m.Saved = append(m.Saved, clone)
	return nil
}

// MockTestRunner is a test double for domain.TestRunner.
type MockTestRunner struct {
	Output   string
	Err      error
	Commands []string
}

// Run records the command and returns the configured result.
func (m *MockTestRunner) Run(_ context.Context, _, command string) (string, error) {
	m.Commands = append(m.Commands, command)
	return m.Output, m.Err
}

// MockGit is a test double for domain.Git.
type MockGit struct {
	Changed    []string
	ChangedErr error
	StageErr   error
	CommitErr  error
	Hash       string
	StagedN    int
	Messages   []string
}

// ChangedFiles returns the configured changed paths.
func (m *MockGit) ChangedFiles() ([]string, error) {
	return m.Changed, m.ChangedErr
}

// StageAll counts invocations.
func (m *MockGit) StageAll() error {
	if m.StageErr != nil {
		return m.StageErr
	}
	m.StagedN++
	return nil
}

// Commit records the message and returns the configured hash.
func (m *MockGit) Commit(message string) (string, error) {
	if m.CommitErr != nil {
		return "", m.CommitErr
	}
	m.Messages = append(m.Messages, message)
	if m.Hash == "" {
		return "deadbeef", nil
	}
	return m.Hash, nil
}

// MockCleaner is a test double for domain.Cleaner.
type MockCleaner struct {
	Removed  []string
	Err      error
	Patterns [][]string
}

// Sweep records the patterns and returns the configured result.
func (m *MockCleaner) Sweep(_ string, patterns []string) ([]string, error) {
	m.Patterns = append(m.Patterns, patterns)
	return m.Removed, m.Err
}

// MockPrompter is a test double for domain.Prompter.
// Confirm answers are consumed in order; when exhausted, false is returned.
type MockPrompter struct {
	ConfirmAnswers []bool
	AskAnswer      string
	AskErr         error
	Questions      []string
}

// Confirm pops the next configured answer.
func (m *MockPrompter) Confirm(question string) (bool, error) {
	m.Questions = append(m.Questions, question)
	if len(m.ConfirmAnswers) == 0 {
		return false, nil
	}
	answer := m.ConfirmAnswers[0]
	m.ConfirmAnswers = m.ConfirmAnswers[1:]
	return answer, nil
}

// Ask records the question and returns the configured answer.
func (m *MockPrompter) Ask(question string) (string, error) {
	m.Questions = append(m.Questions, question)
	return m.AskAnswer, m.AskErr
}
