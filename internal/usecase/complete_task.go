package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/okikae/mdtask/internal/domain"
)

// CompleteTaskInput contains the parameters for completing a task.
type CompleteTaskInput struct {
	Path   string // Task document path
	TaskID string // Sub-task id, or a parent id to retry its protocol
	Ticket string // Ticket reference override (skips the prompt)
}

// CompleteTaskOutput contains the result of completing a task.
type CompleteTaskOutput struct {
	Task            *domain.Task // The completed task
	ParentCompleted bool         // True if the completion protocol ran and the parent completed
	ParentID        string       // Set when ParentCompleted
	TestOutput      string       // Output of the protocol's test step
	Removed         []string     // Artifacts removed by the cleanup step
	CommitHash      string       // Hash of the protocol's commit
	CommitMessage   string       // Message of the protocol's commit
}

// CompleteTask marks a sub-task completed and, when that finishes a parent
// task, runs the completion protocol: test, stage, cleanup, commit. The
// parent is marked completed only after every protocol step succeeded.
//
// Invoked with a parent id whose sub-tasks are all completed, it retries
// just the protocol. This is the recovery path after a step failure.
type CompleteTask struct {
	store    domain.DocumentStore
	runner   domain.TestRunner
	git      domain.Git
	cleaner  domain.Cleaner
	prompter domain.Prompter
	config   *domain.Config
	logger   domain.Logger
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(
	store domain.DocumentStore,
	runner domain.TestRunner,
	git domain.Git,
	cleaner domain.Cleaner,
	prompter domain.Prompter,
	config *domain.Config,
	logger domain.Logger,
) *CompleteTask {
	return &CompleteTask{
		store:    store,
		runner:   runner,
		git:      git,
		cleaner:  cleaner,
		prompter: prompter,
		config:   config,
		logger:   logger,
	}
}

// Execute completes the identified task.
//
// For a sub-task: its status flips to completed and is saved immediately,
// so a later protocol failure never rolls it back. For a parent id (or a
// sub-task whose completion makes its parent ready), the protocol runs
// and the parent flips to completed only on full success. On protocol
// failure the partial output collected so far is returned with the error.
func (uc *CompleteTask) Execute(ctx context.Context, in CompleteTaskInput) (*CompleteTaskOutput, error) {
	doc, err := uc.store.Load(in.Path)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	task := doc.Find(in.TaskID)
	if task == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, in.TaskID)
	}

	// Retry path: a parent whose sub-tasks are done but whose protocol
	// previously failed.
	if task.IsParent() {
		if task.Completed() {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, in.TaskID)
		}
		if !task.SubtasksCompleted() {
			return nil, fmt.Errorf("%w: %s", domain.ErrSubtasksPending, in.TaskID)
		}
		out := &CompleteTaskOutput{Task: task}
		if err := uc.finishParent(ctx, doc, task, in.Ticket, out); err != nil {
			return out, err
		}
		return out, nil
	}

	parent := doc.ParentOf(in.TaskID)
	if parent == nil {
		// A childless top-level task is its own unit of committed work:
		// it flips to completed only after the protocol succeeds.
		if task.Completed() {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaskAlreadyCompleted, in.TaskID)
		}
		out := &CompleteTaskOutput{Task: task}
		if err := uc.finishParent(ctx, doc, task, in.Ticket, out); err != nil {
			return out, err
		}
		return out, nil
	}

	if err := doc.MarkCompleted(in.TaskID); err != nil {
		return nil, err
	}
	if err := uc.store.Save(doc); err != nil {
		return nil, fmt.Errorf("save document: %w", err)
	}
	uc.logger.Info("tasks", fmt.Sprintf("sub-task %s completed", in.TaskID))

	out := &CompleteTaskOutput{Task: task}

	if !doc.ParentReady(parent.ID) {
		return out, nil
	}
	if err := uc.finishParent(ctx, doc, parent, in.Ticket, out); err != nil {
		return out, err
	}
	return out, nil
}

// finishParent runs the completion protocol and, only on success, marks
// the parent completed and saves the document.
func (uc *CompleteTask) finishParent(ctx context.Context, doc *domain.Document, parent *domain.Task, ticket string, out *CompleteTaskOutput) error {
	if err := uc.runProtocol(ctx, doc, parent, ticket, out); err != nil {
		uc.logger.Error("protocol", fmt.Sprintf("parent %s stays pending: %v", parent.ID, err))
		return err
	}

	parent.Status = domain.StatusCompleted
	if err := uc.store.Save(doc); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	out.ParentCompleted = true
	out.ParentID = parent.ID
	uc.logger.Info("protocol", fmt.Sprintf("parent %s completed (%s)", parent.ID, out.CommitHash))
	return nil
}

// runProtocol executes the fixed step sequence, short-circuiting on the
// first failure and reporting the failing step.
func (uc *CompleteTask) runProtocol(ctx context.Context, doc *domain.Document, parent *domain.Task, ticket string, out *CompleteTaskOutput) error {
	dir := filepath.Dir(doc.Path)

	// Step 1: run the test command.
	command := doc.Meta.TestCommand
	if command == "" {
		command = uc.config.Test.Command
	}
	if command == "" {
		return &domain.ProtocolStepError{Step: domain.StepTest, Cause: domain.ErrNoTestCommand}
	}
	uc.logger.Debug("protocol", fmt.Sprintf("running tests: %s", command))
	output, err := uc.runner.Run(ctx, dir, command)
	out.TestOutput = output
	if err != nil {
		return &domain.ProtocolStepError{Step: domain.StepTest, Cause: err}
	}

	// Step 2: record touched files in the ledger, then stage everything.
	changed, err := uc.git.ChangedFiles()
	if err != nil {
		return &domain.ProtocolStepError{Step: domain.StepStage, Cause: err}
	}
	uc.recordChanged(doc, parent, changed)
	if err := uc.store.Save(doc); err != nil {
		return &domain.ProtocolStepError{Step: domain.StepStage, Cause: err}
	}
	if err := uc.git.StageAll(); err != nil {
		return &domain.ProtocolStepError{Step: domain.StepStage, Cause: err}
	}

	// Step 3: remove temporary artifacts. Patterns come from config;
	// nothing is inferred.
	removed, err := uc.cleaner.Sweep(dir, uc.config.Cleanup.Patterns)
	out.Removed = removed
	if err != nil {
		return &domain.ProtocolStepError{Step: domain.StepCleanup, Cause: err}
	}

	// Step 4: build the commit message and commit.
	if ticket == "" {
		ticket = doc.Meta.Ticket
	}
	if ticket == "" && uc.config.Commit.AskTicket {
		answer, err := uc.prompter.Ask("Ticket reference (blank for none):")
		if err != nil {
			return &domain.ProtocolStepError{Step: domain.StepCommit, Cause: err}
		}
		ticket = answer
	}
	message, err := domain.BuildCommitMessage(uc.config.Commit.Template, domain.CommitData{
		Type:     uc.config.Commit.Type,
		Summary:  parent.Title,
		TaskID:   parent.ID,
		Document: filepath.Base(doc.Path),
		Ticket:   ticket,
		Details:  parent.CompletedTitles(),
	})
	if err != nil {
		return &domain.ProtocolStepError{Step: domain.StepCommit, Cause: err}
	}
	hash, err := uc.git.Commit(message)
	if err != nil {
		return &domain.ProtocolStepError{Step: domain.StepCommit, Cause: err}
	}
	out.CommitHash = hash
	out.CommitMessage = message
	return nil
}

// recordChanged adds ledger entries for paths touched while working on
// the parent task. Existing descriptions are preserved.
func (uc *CompleteTask) recordChanged(doc *domain.Document, parent *domain.Task, changed []string) {
	known := make(map[string]bool, len(doc.Files))
	for _, f := range doc.Files {
		known[f.Path] = true
	}
	for _, path := range changed {
		if known[path] {
			continue
		}
		desc := fmt.Sprintf("Touched while completing task %s.", parent.ID)
		_ = doc.RecordFile(path, desc)
	}
}
