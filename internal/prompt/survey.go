package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey renders questions on the terminal.
type Survey struct {
	stdio terminal.Stdio
	out   io.Writer
}

// SurveyOption configures a Survey asker.
type SurveyOption func(*Survey)

// WithStdio overrides the terminal streams (defaults to the process stdio).
func WithStdio(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) SurveyOption {
	return func(s *Survey) {
		s.stdio = terminal.Stdio{In: in, Out: out, Err: errOut}
		s.out = out
	}
}

// NewSurvey constructs a terminal asker.
func NewSurvey(opts ...SurveyOption) *Survey {
	s := &Survey{
		stdio: terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr},
		out:   os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

var _ Asker = (*Survey)(nil)

// Select shows a single-choice list and returns the chosen index.
func (s *Survey) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	q := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
	}
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		q.Default = cfg.Options[cfg.DefaultIndex]
	}
	var idx int
	if err := survey.AskOne(q, &idx, s.askOpts()...); err != nil {
		return 0, translateSurveyErr(err)
	}
	return idx, nil
}

// Input reads a line of text, re-asking until Validator accepts it.
func (s *Survey) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	q := &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	opts := s.askOpts()
	if cfg.Validator != nil {
		validate := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			str, _ := ans.(string)
			return validate(str)
		}))
	}
	var out string
	if err := survey.AskOne(q, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

// Confirm asks a yes/no question.
func (s *Survey) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	q := &survey.Confirm{
		Message: cfg.Message,
		Default: cfg.Default,
	}
	var out bool
	if err := survey.AskOne(q, &out, s.askOpts()...); err != nil {
		return false, translateSurveyErr(err)
	}
	return out, nil
}

// Info prints a diagnostic line without waiting for an answer.
func (s *Survey) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.out, msg)
	return err
}

func (s *Survey) askOpts() []survey.AskOpt {
	return []survey.AskOpt{survey.WithStdio(s.stdio.In, s.stdio.Out, s.stdio.Err)}
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
