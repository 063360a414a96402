package genconfig

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"
)

type fakeEngine struct {
	versions []string
	err      error
	calls    int
}

func (f *fakeEngine) LatestEngine(context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.versions) == 0 {
		return "^1.90.0", nil
	}
	v := f.versions[0]
	if len(f.versions) > 1 {
		f.versions = f.versions[1:]
	}
	return v, nil
}

type fakeLister struct {
	list  []string
	err   error
	calls int
}

func (f *fakeLister) InstalledExtensions(context.Context) ([]string, error) {
	f.calls++
	return f.list, f.err
}

var errQuery = errors.New("code: command not found")

func quietLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
