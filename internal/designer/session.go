// SPDX-License-Identifier: MIT

// Package designer holds the caller-side editing workflow: inputs are
// previewed, possibly many times, and then explicitly applied.
package designer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/thatcatcamp/huekit/internal/harmony"
	"github.com/thatcatcamp/huekit/internal/themes"
	"github.com/thatcatcamp/huekit/internal/tokens"
)

// ErrInvalidTransition is returned when an event is not allowed in the
// session's current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is a session state.
type State string

const (
	Idle       State = "idle"
	Previewing State = "previewing"
	Applying   State = "applying"
)

// Inputs is what a user edits.
type Inputs struct {
	Primary            string                    `json:"primary"`
	Secondary          string                    `json:"secondary,omitempty"`
	Harmony            harmony.Type              `json:"harmony"`
	BackgroundStrategy tokens.BackgroundStrategy `json:"background_strategy"`
	Radius             float64                   `json:"radius"`
}

// Request turns inputs into a generation request on top of opts.
func (in Inputs) Request(opts themes.Options) themes.Request {
	if in.BackgroundStrategy != "" {
		opts.BackgroundStrategy = in.BackgroundStrategy
	}
	return themes.Request{
		Primary:   in.Primary,
		Secondary: in.Secondary,
		Harmony:   in.Harmony,
		Options:   opts,
	}
}

// Generator produces themes. *themes.Memo satisfies it.
type Generator interface {
	Generate(req themes.Request) (*themes.GeneratedTheme, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(themes.Request) (*themes.GeneratedTheme, error)

func (f GeneratorFunc) Generate(req themes.Request) (*themes.GeneratedTheme, error) { return f(req) }

// Session is one user's preview/apply workflow. It is safe for concurrent
// use; transitions are serialized.
type Session struct {
	mu   sync.Mutex
	gen  Generator
	opts themes.Options

	state   State
	preview Inputs
	theme   *themes.GeneratedTheme

	applied    Inputs
	hasApplied bool
}

// NewSession starts an idle session. A nil gen uses themes.Generate.
func NewSession(gen Generator, opts themes.Options) *Session {
	if gen == nil {
		gen = GeneratorFunc(themes.Generate)
	}
	return &Session{gen: gen, opts: opts, state: Idle}
}

// Restore marks in as already applied, e.g. when loading a saved project.
func (s *Session) Restore(in Inputs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applied = in
	s.hasApplied = true
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Preview generates a theme for in and enters Previewing. It may be called
// again while previewing to replace the preview. A failed generation leaves
// the session idle.
func (s *Session) Preview(in Inputs) (*themes.GeneratedTheme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Applying {
		return nil, fmt.Errorf("%w: preview while %s", ErrInvalidTransition, s.state)
	}

	th, err := s.gen.Generate(in.Request(s.opts))
	if err != nil {
		s.state, s.theme = Idle, nil
		return nil, err
	}
	s.state, s.preview, s.theme = Previewing, in, th
	return th, nil
}

// Previewed returns the inputs and theme under preview.
func (s *Session) Previewed() (Inputs, *themes.GeneratedTheme, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Previewing {
		return Inputs{}, nil, false
	}
	return s.preview, s.theme, true
}

// Cancel drops the preview and returns to Idle.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Previewing {
		return fmt.Errorf("%w: cancel while %s", ErrInvalidTransition, s.state)
	}
	s.state, s.theme = Idle, nil
	return nil
}

// Apply commits the previewed inputs. The session is Applying while commit
// runs and Idle afterwards. When commit fails the previous applied inputs
// are kept.
func (s *Session) Apply(commit func(Inputs) error) (Inputs, error) {
	s.mu.Lock()
	if s.state != Previewing {
		state := s.state
		s.mu.Unlock()
		return Inputs{}, fmt.Errorf("%w: apply while %s", ErrInvalidTransition, state)
	}
	s.state = Applying
	in := s.preview
	s.mu.Unlock()

	var err error
	if commit != nil {
		err = commit(in)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state, s.theme = Idle, nil
	if err != nil {
		return Inputs{}, err
	}
	s.applied, s.hasApplied = in, true
	return in, nil
}

// Applied returns the last applied inputs.
func (s *Session) Applied() (Inputs, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied, s.hasApplied
}
