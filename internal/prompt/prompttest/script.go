// Package prompttest provides a scripted prompt.Asker for tests. Answers are
// consumed in order and every rendered question is recorded so tests can
// assert on the exact question sequence.
package prompttest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vsext-labs/vsext/internal/prompt"
)

// ErrExhausted is returned when a question is asked after the script ran out
// of answers.
var ErrExhausted = errors.New("prompttest: no scripted answer left")

// Question records one rendered question.
type Question struct {
	Kind    prompt.Kind
	Message string
	Options []string
	Default any
}

// Answer is one scripted reply.
type Answer struct {
	kind    prompt.Kind
	value   any
	useDflt bool
	err     error
}

// Choose answers a select question with the option at index i.
func Choose(i int) Answer { return Answer{kind: prompt.KindSelect, value: i} }

// Text answers an input question with s.
func Text(s string) Answer { return Answer{kind: prompt.KindInput, value: s} }

// Yes answers a confirm question with true.
func Yes() Answer { return Answer{kind: prompt.KindConfirm, value: true} }

// No answers a confirm question with false.
func No() Answer { return Answer{kind: prompt.KindConfirm, value: false} }

// Default accepts whatever default the question offers, for any kind.
func Default() Answer { return Answer{useDflt: true} }

// Fail makes the next question return err.
func Fail(err error) Answer { return Answer{err: err} }

// Script is a prompt.Asker backed by a fixed list of answers.
type Script struct {
	mu      sync.Mutex
	answers []Answer
	asked   []Question
	infos   []string
}

var _ prompt.Asker = (*Script)(nil)

// New returns a Script that replies with answers in order.
func New(answers ...Answer) *Script {
	return &Script{answers: answers}
}

// Asked returns every question rendered so far.
func (s *Script) Asked() []Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Question(nil), s.asked...)
}

// Messages returns the message text of every question rendered so far.
func (s *Script) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.asked))
	for i, q := range s.asked {
		out[i] = q.Message
	}
	return out
}

// Infos returns every diagnostic printed through Info.
func (s *Script) Infos() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.infos...)
}

// Remaining reports how many scripted answers were not consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.answers)
}

func (s *Script) next(q Question) (Answer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.asked = append(s.asked, q)
	if len(s.answers) == 0 {
		return Answer{}, fmt.Errorf("%w (question %q)", ErrExhausted, q.Message)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	if a.err != nil {
		return Answer{}, a.err
	}
	if !a.useDflt && a.kind != q.Kind {
		return Answer{}, fmt.Errorf("prompttest: question %q is a %s, scripted answer is a %s", q.Message, q.Kind, a.kind)
	}
	return a, nil
}

func (s *Script) Select(ctx context.Context, cfg prompt.SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	a, err := s.next(Question{Kind: prompt.KindSelect, Message: cfg.Message, Options: cfg.Options, Default: cfg.DefaultIndex})
	if err != nil {
		return 0, err
	}
	if a.useDflt {
		return cfg.DefaultIndex, nil
	}
	return a.value.(int), nil
}

func (s *Script) Input(ctx context.Context, cfg prompt.InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	a, err := s.next(Question{Kind: prompt.KindInput, Message: cfg.Message, Default: cfg.Default})
	if err != nil {
		return "", err
	}
	if a.useDflt {
		return cfg.Default, nil
	}
	return a.value.(string), nil
}

func (s *Script) Confirm(ctx context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	a, err := s.next(Question{Kind: prompt.KindConfirm, Message: cfg.Message, Default: cfg.Default})
	if err != nil {
		return false, err
	}
	if a.useDflt {
		return cfg.Default, nil
	}
	return a.value.(bool), nil
}

func (s *Script) Info(ctx context.Context, msg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.infos = append(s.infos, msg)
	return nil
}
