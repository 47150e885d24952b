// Package app provides the dependency injection container for the application.
package app

import (
	"github.com/okikae/mdtask/internal/domain"
	"github.com/okikae/mdtask/internal/infra/cleanup"
	"github.com/okikae/mdtask/internal/infra/config"
	"github.com/okikae/mdtask/internal/infra/git"
	"github.com/okikae/mdtask/internal/infra/logging"
	"github.com/okikae/mdtask/internal/infra/prompt"
	"github.com/okikae/mdtask/internal/infra/runner"
	"github.com/okikae/mdtask/internal/infra/taskfile"
	"github.com/okikae/mdtask/internal/usecase"
)

// Paths holds the resolved filesystem locations for the session.
type Paths struct {
	WorkDir   string // Current working directory
	MdtaskDir string // Per-project state directory (.mdtask)
	TaskFile  string // Task document path from config (flags may override)
}

// Container provides dependency injection for the application.
// It holds port implementations and provides factory methods for use cases.
type Container struct {
	Store        domain.DocumentStore
	Runner       domain.TestRunner
	Cleaner      domain.Cleaner
	Prompter     domain.Prompter
	ConfigLoader domain.ConfigLoader
	Clock        domain.Clock
	Logger       domain.Logger
	Config       *domain.Config
	Paths        Paths

	// gitClient is created lazily; only the completion protocol needs a
	// repository, the other commands work anywhere.
	gitClient domain.Git
}

// New creates a new Container rooted at the given working directory.
func New(workDir string) (*Container, error) {
	mdtaskDir := domain.MdtaskDir(workDir)

	loader := config.NewLoader(mdtaskDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger := logging.New(mdtaskDir, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Store:        taskfile.New(),
		Runner:       runner.NewClient(),
		Cleaner:      cleanup.NewClient(),
		Prompter:     prompt.New(),
		ConfigLoader: loader,
		Clock:        domain.RealClock{},
		Logger:       logger,
		Config:       cfg,
		Paths: Paths{
			WorkDir:   workDir,
			MdtaskDir: mdtaskDir,
			TaskFile:  cfg.File,
		},
	}, nil
}

// NewWithDeps creates a Container with custom dependencies for testing.
func NewWithDeps(paths Paths, cfg *domain.Config, store domain.DocumentStore, r domain.TestRunner, g domain.Git, c domain.Cleaner, p domain.Prompter) *Container {
	return &Container{
		Store:     store,
		Runner:    r,
		Cleaner:   c,
		Prompter:  p,
		Clock:     domain.RealClock{},
		Logger:    domain.NopLogger{},
		Config:    cfg,
		Paths:     paths,
		gitClient: g,
	}
}

// Git returns the git client, opening the repository on first use.
func (c *Container) Git() (domain.Git, error) {
	if c.gitClient != nil {
		return c.gitClient, nil
	}
	client, err := git.NewClient(c.Paths.WorkDir)
	if err != nil {
		return nil, err
	}
	c.gitClient = client
	return client, nil
}

// Close releases resources held by the container.
func (c *Container) Close() {
	if l, ok := c.Logger.(*logging.Logger); ok {
		_ = l.Close()
	}
}

// UseCase factory methods

// NextTaskUseCase returns a new NextTask use case.
func (c *Container) NextTaskUseCase() *usecase.NextTask {
	return usecase.NewNextTask(c.Store)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
// The completion protocol needs a git repository.
func (c *Container) CompleteTaskUseCase() (*usecase.CompleteTask, error) {
	g, err := c.Git()
	if err != nil {
		return nil, err
	}
	return usecase.NewCompleteTask(c.Store, c.Runner, g, c.Cleaner, c.Prompter, c.Config, c.Logger), nil
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// RecordFileUseCase returns a new RecordFile use case.
func (c *Container) RecordFileUseCase() *usecase.RecordFile {
	return usecase.NewRecordFile(c.Store)
}

// InitDocumentUseCase returns a new InitDocument use case.
func (c *Container) InitDocumentUseCase() *usecase.InitDocument {
	return usecase.NewInitDocument(c.Store)
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Store)
}
