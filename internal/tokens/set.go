// SPDX-License-Identifier: MIT
package tokens

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/thatcatcamp/huekit/internal/oklch"
)

// ErrIncomplete is returned when a Set would be missing slots.
var ErrIncomplete = errors.New("incomplete token set")

// Set holds one color per token. It is a value type: With returns a copy and
// no Set is ever shared mutably.
type Set struct {
	values [numTokens]oklch.Color
}

// Get returns the color for t.
func (s Set) Get(t Token) oklch.Color {
	return s.values[t]
}

// With returns a copy of s with t set to c.
func (s Set) With(t Token, c oklch.Color) Set {
	s.values[t] = c
	return s
}

// Each calls fn for every token in canonical order.
func (s Set) Each(fn func(Token, oklch.Color)) {
	for i, c := range s.values {
		fn(Token(i), c)
	}
}

// MarshalJSON writes an object in canonical token order with oklch() strings
// as values.
func (s Set) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range s.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(names[i])
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(oklch.Format(c))
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON accepts the MarshalJSON form. Every token must be present.
func (s *Set) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var b Builder
	for name, value := range raw {
		t, err := ParseToken(name)
		if err != nil {
			return err
		}
		c, err := oklch.Parse(value)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		b.Set(t, c)
	}
	out, err := b.Build()
	if err != nil {
		return err
	}
	*s = out
	return nil
}

// Builder collects slots and refuses to produce a Set until every token has
// been assigned.
type Builder struct {
	set    Set
	filled [numTokens]bool
}

// Set assigns t and returns the builder for chaining.
func (b *Builder) Set(t Token, c oklch.Color) *Builder {
	b.set.values[t] = c
	b.filled[t] = true
	return b
}

// Missing lists unassigned tokens in canonical order.
func (b *Builder) Missing() []Token {
	var out []Token
	for i, ok := range b.filled {
		if !ok {
			out = append(out, Token(i))
		}
	}
	return out
}

// Build returns the Set, or ErrIncomplete naming the missing tokens.
func (b *Builder) Build() (Set, error) {
	if missing := b.Missing(); len(missing) > 0 {
		parts := make([]string, len(missing))
		for i, t := range missing {
			parts[i] = t.String()
		}
		return Set{}, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(parts, ", "))
	}
	return b.set, nil
}
