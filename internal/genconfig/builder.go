package genconfig

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vsext-labs/vsext/internal/log"
	"github.com/vsext-labs/vsext/internal/prompt"
)

// DefaultFallbackEngine is used when the engine lookup fails and no other
// fallback was configured.
const DefaultFallbackEngine = "^1.54.0"

// EngineResolver looks up the editor engine range written into the manifest.
type EngineResolver interface {
	LatestEngine(ctx context.Context) (string, error)
}

// ExtensionLister enumerates the extensions installed in the local editor.
type ExtensionLister interface {
	InstalledExtensions(ctx context.Context) ([]string, error)
}

// Question texts, shared with the tests that assert on the question order.
const (
	MsgType            = "What type of extension do you want to create?"
	MsgAddInstalled    = "Add the currently installed extensions to the extension pack?"
	MsgDisplayName     = "What's the name of your extension?"
	MsgName            = "What's the identifier of your extension?"
	MsgDescription     = "What's the description of your extension?"
	MsgCheckJavaScript = "Enable JavaScript type checking in 'jsconfig.json'?"
	MsgGitInit         = "Initialize a git repository?"
	MsgPkgManager      = "Which package manager to use?"
)

// Builder assembles a GenerationConfig. A Builder may be reused; each Build
// call starts from an empty record.
type Builder struct {
	asker          prompt.Asker
	engine         EngineResolver
	lister         ExtensionLister
	fallbackEngine string
	logger         zerolog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithEngineResolver sets the engine version lookup.
func WithEngineResolver(r EngineResolver) Option {
	return func(b *Builder) { b.engine = r }
}

// WithExtensionLister sets the installed-extensions query.
func WithExtensionLister(l ExtensionLister) Option {
	return func(b *Builder) { b.lister = l }
}

// WithFallbackEngine overrides the engine used when the lookup fails.
func WithFallbackEngine(engine string) Option {
	return func(b *Builder) {
		if engine != "" {
			b.fallbackEngine = engine
		}
	}
}

// WithLogger overrides the component logger.
func WithLogger(l zerolog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

// NewBuilder returns a Builder that asks its questions through asker.
func NewBuilder(asker prompt.Asker, opts ...Option) *Builder {
	b := &Builder{
		asker:          asker,
		fallbackEngine: DefaultFallbackEngine,
		logger:         log.WithComponent("genconfig"),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// buildState is the in-progress record of one Build call.
type buildState struct {
	opts Options
	cfg  GenerationConfig
}

type step struct {
	name string
	run  func(ctx context.Context, st *buildState) error
}

// steps returns the prompt sequence in its required order.
func (b *Builder) steps() []step {
	return []step{
		{"type", b.askForType},
		{"extension-pack", b.askForExtensionPackInfo},
		{"display-name", b.askForDisplayName},
		{"name", b.askForName},
		{"description", b.askForDescription},
		{"check-javascript", b.askForJavaScriptInfo},
		{"git-init", b.askForGit},
		{"package-manager", b.askForPackageManager},
	}
}

// Build resolves the engine version, runs every step in order and returns the
// completed record. Errors only come from the prompt itself (ErrAborted,
// context cancellation); invalid input is re-asked and collaborator failures
// are reported and tolerated.
func (b *Builder) Build(ctx context.Context, opts Options) (*GenerationConfig, error) {
	if b.asker == nil {
		return nil, errors.New("genconfig: asker is nil")
	}

	st := &buildState{opts: opts}
	st.cfg.VSCodeEngine = b.resolveEngine(ctx)

	for _, s := range b.steps() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.run(ctx, st); err != nil {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		b.logger.Debug().Str(log.FieldStep, s.name).Msg("step resolved")
	}

	st.cfg.InstallDependencies = st.cfg.Type == TypeNewExtension

	if err := Validate(&st.cfg); err != nil {
		return nil, err
	}
	cfg := st.cfg
	return &cfg, nil
}

func (b *Builder) resolveEngine(ctx context.Context) string {
	if b.engine == nil {
		return b.fallbackEngine
	}
	engine, err := b.engine.LatestEngine(ctx)
	if err != nil || engine == "" {
		b.logger.Warn().Err(err).Str(log.FieldVersion, b.fallbackEngine).Msg("engine lookup failed, using fallback")
		b.info(ctx, "Unable to evaluate the latest VS Code version. Using fallback version: "+b.fallbackEngine)
		return b.fallbackEngine
	}
	return engine
}

func (b *Builder) askForType(ctx context.Context, st *buildState) error {
	pre := none[ExtensionType]()
	if raw := st.opts.ExtensionType; raw != "" {
		if t, ok := ParseType(raw); ok {
			pre = some(t)
		} else {
			b.info(ctx, fmt.Sprintf("Invalid extension type: %s. Possible types are: %s", raw, strings.Join(TypeNames(), ", ")))
		}
	}

	t, err := resolveField(ctx, b, pre, func(ctx context.Context) (ExtensionType, error) {
		labels := make([]string, len(typeChoices))
		for i, c := range typeChoices {
			labels[i] = c.label
		}
		idx, err := b.asker.Select(ctx, prompt.SelectConfig{Message: MsgType, Options: labels})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(typeChoices) {
			return "", nil
		}
		return typeChoices[idx].value, nil
	}, func(t ExtensionType) error {
		if t == "" {
			return errors.New("please select one of the listed extension types")
		}
		return nil
	})
	if err != nil {
		return err
	}
	st.cfg.Type = t
	return nil
}

func (b *Builder) askForExtensionPackInfo(ctx context.Context, st *buildState) error {
	if st.cfg.Type != TypeExtensionPack {
		return nil
	}
	pack := &PackSettings{}
	st.cfg.Pack = pack

	pre := none[bool]()
	switch strings.ToLower(strings.TrimSpace(st.opts.ExtensionParam)) {
	case "y":
		pre = some(true)
	case "n":
		pre = some(false)
	}

	addInstalled, err := resolveField(ctx, b, pre, func(ctx context.Context) (bool, error) {
		return b.asker.Confirm(ctx, prompt.ConfirmConfig{Message: MsgAddInstalled, Default: true})
	}, nil)
	if err != nil {
		return err
	}
	if !addInstalled {
		pack.ExtensionList = DefaultExtensionList()
		return nil
	}

	if b.lister == nil {
		b.info(ctx, "Cannot list installed extensions: no editor command configured")
		return nil
	}
	list, err := b.lister.InstalledExtensions(ctx)
	if err != nil {
		b.logger.Warn().Err(err).Msg("listing installed extensions failed")
		b.info(ctx, fmt.Sprintf("Could not list installed extensions: %v", err))
		return nil
	}
	if len(list) > 0 {
		pack.ExtensionList = list
	}
	return nil
}

func (b *Builder) askForDisplayName(ctx context.Context, st *buildState) error {
	name, err := resolveField(ctx, b, optionalString(st.opts.ExtensionDisplayName), func(ctx context.Context) (string, error) {
		return b.asker.Input(ctx, prompt.InputConfig{Message: MsgDisplayName, Default: st.cfg.DisplayName})
	}, nil)
	if err != nil {
		return err
	}
	st.cfg.DisplayName = name
	return nil
}

func (b *Builder) askForName(ctx context.Context, st *buildState) error {
	def := st.cfg.Name
	if def == "" && st.cfg.DisplayName != "" {
		def = Slugify(st.cfg.DisplayName)
	}

	name, err := resolveField(ctx, b, optionalString(st.opts.ExtensionName), func(ctx context.Context) (string, error) {
		return b.asker.Input(ctx, prompt.InputConfig{Message: MsgName, Default: def, Validator: ValidateExtensionID})
	}, ValidateExtensionID)
	if err != nil {
		return err
	}
	st.cfg.Name = name
	return nil
}

func (b *Builder) askForDescription(ctx context.Context, st *buildState) error {
	desc, err := resolveField(ctx, b, optionalString(st.opts.ExtensionDescription), func(ctx context.Context) (string, error) {
		return b.asker.Input(ctx, prompt.InputConfig{Message: MsgDescription})
	}, nil)
	if err != nil {
		return err
	}
	st.cfg.Description = desc
	return nil
}

func (b *Builder) askForJavaScriptInfo(ctx context.Context, st *buildState) error {
	if st.cfg.Type != TypeNewExtension {
		return nil
	}
	st.cfg.Project = &ProjectSettings{PkgManager: PackageManagerNPM}

	check, err := resolveField(ctx, b, none[bool](), func(ctx context.Context) (bool, error) {
		return b.asker.Confirm(ctx, prompt.ConfirmConfig{Message: MsgCheckJavaScript, Default: false})
	}, nil)
	if err != nil {
		return err
	}
	st.cfg.Project.CheckJavaScript = check
	return nil
}

func (b *Builder) askForGit(ctx context.Context, st *buildState) error {
	if st.cfg.Type != TypeNewExtension {
		return nil
	}
	gitInit, err := resolveField(ctx, b, none[bool](), func(ctx context.Context) (bool, error) {
		return b.asker.Confirm(ctx, prompt.ConfirmConfig{Message: MsgGitInit, Default: true})
	}, nil)
	if err != nil {
		return err
	}
	st.cfg.Project.GitInit = gitInit
	return nil
}

func (b *Builder) askForPackageManager(ctx context.Context, st *buildState) error {
	if st.cfg.Type != TypeNewExtension {
		return nil
	}
	pm, err := resolveField(ctx, b, none[PackageManager](), func(ctx context.Context) (PackageManager, error) {
		options := make([]string, len(packageManagers))
		for i, p := range packageManagers {
			options[i] = string(p)
		}
		idx, err := b.asker.Select(ctx, prompt.SelectConfig{Message: MsgPkgManager, Options: options})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(packageManagers) {
			return PackageManagerNPM, nil
		}
		return packageManagers[idx], nil
	}, nil)
	if err != nil {
		return err
	}
	st.cfg.Project.PkgManager = pm
	return nil
}

func (b *Builder) info(ctx context.Context, msg string) {
	if err := b.asker.Info(ctx, msg); err != nil {
		b.logger.Debug().Err(err).Msg("printing diagnostic failed")
	}
}
