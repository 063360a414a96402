package install

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/vsext-labs/vsext/internal/genconfig"
	"github.com/vsext-labs/vsext/internal/log"
)

// Finalizer runs the post-generation commands for a project.
type Finalizer struct {
	runner      Runner
	skipInstall bool
	skipGit     bool
	logger      zerolog.Logger
}

// Option configures a Finalizer.
type Option func(*Finalizer)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(f *Finalizer) {
		if r != nil {
			f.runner = r
		}
	}
}

// SkipInstall disables the dependency installation step.
func SkipInstall(skip bool) Option {
	return func(f *Finalizer) { f.skipInstall = skip }
}

// SkipGit disables the git init step.
func SkipGit(skip bool) Option {
	return func(f *Finalizer) { f.skipGit = skip }
}

// NewFinalizer creates a Finalizer backed by an ExecRunner.
func NewFinalizer(opts ...Option) *Finalizer {
	f := &Finalizer{
		runner: &ExecRunner{},
		logger: log.WithComponent("install"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Plan returns the commands Run executes for cfg, in order.
func (f *Finalizer) Plan(cfg *genconfig.GenerationConfig, dir string) []Command {
	var cmds []Command
	if cfg.InstallDependencies && !f.skipInstall {
		cmds = append(cmds, Command{Name: string(cfg.PkgManager()), Args: []string{"install"}, Dir: dir})
	}
	if cfg.GitInit() && !f.skipGit {
		cmds = append(cmds, Command{Name: "git", Args: []string{"init", "--quiet"}, Dir: dir})
	}
	return cmds
}

// Run executes the planned commands in dir. A failing command does not stop
// the ones after it; all failures are returned joined.
func (f *Finalizer) Run(ctx context.Context, cfg *genconfig.GenerationConfig, dir string) error {
	var errs []error
	for _, c := range f.Plan(cfg, dir) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		f.logger.Info().Str(log.FieldCommand, c.String()).Str(log.FieldPath, dir).Msg("running")
		if err := f.runner.Run(ctx, c); err != nil {
			f.logger.Warn().Err(err).Str(log.FieldCommand, c.String()).Msg("command failed")
			errs = append(errs, fmt.Errorf("%s: %w", c, err))
		}
	}
	return errors.Join(errs...)
}
