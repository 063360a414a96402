package prompt

import "context"

// Kind identifies the shape of a question.
type Kind string

const (
	KindSelect  Kind = "select"
	KindInput   Kind = "input"
	KindConfirm Kind = "confirm"
)

// SelectConfig configures a single-choice list.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
}

// InputConfig configures a free-text question. Validator, when set, rejects
// answers the caller will not accept.
type InputConfig struct {
	Message   string
	Default   string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no question.
type ConfirmConfig struct {
	Message string
	Default bool
}

// Asker renders one question at a time and blocks until it is answered.
type Asker interface {
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	// Info prints a diagnostic line between questions.
	Info(ctx context.Context, msg string) error
}
