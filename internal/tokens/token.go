// SPDX-License-Identifier: MIT

// Package tokens maps palette anchors onto the closed set of semantic UI
// color tokens for one appearance mode.
package tokens

import (
	"fmt"
)

// Token is one semantic color slot.
type Token int

const (
	Background Token = iota
	Foreground
	Card
	CardForeground
	Popover
	PopoverForeground
	Primary
	PrimaryForeground
	Secondary
	SecondaryForeground
	Muted
	MutedForeground
	Accent
	AccentForeground
	Destructive
	DestructiveForeground
	Border
	Input
	Ring
	Chart1
	Chart2
	Chart3
	Chart4
	Chart5
	Sidebar
	SidebarForeground
	SidebarPrimary
	SidebarPrimaryForeground
	SidebarAccent
	SidebarAccentForeground
	SidebarBorder
	SidebarRing

	numTokens
)

// Count is the number of tokens in every Set.
const Count = int(numTokens)

var names = [numTokens]string{
	"background",
	"foreground",
	"card",
	"card-foreground",
	"popover",
	"popover-foreground",
	"primary",
	"primary-foreground",
	"secondary",
	"secondary-foreground",
	"muted",
	"muted-foreground",
	"accent",
	"accent-foreground",
	"destructive",
	"destructive-foreground",
	"border",
	"input",
	"ring",
	"chart-1",
	"chart-2",
	"chart-3",
	"chart-4",
	"chart-5",
	"sidebar",
	"sidebar-foreground",
	"sidebar-primary",
	"sidebar-primary-foreground",
	"sidebar-accent",
	"sidebar-accent-foreground",
	"sidebar-border",
	"sidebar-ring",
}

var byName = func() map[string]Token {
	m := make(map[string]Token, numTokens)
	for i, n := range names {
		m[n] = Token(i)
	}
	return m
}()

// All returns every token in canonical order.
func All() []Token {
	out := make([]Token, numTokens)
	for i := range out {
		out[i] = Token(i)
	}
	return out
}

func (t Token) Valid() bool { return t >= 0 && t < numTokens }

func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("token(%d)", int(t))
	}
	return names[t]
}

// ParseToken looks a token up by its CSS name, e.g. "card-foreground".
func ParseToken(name string) (Token, error) {
	t, ok := byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown token %q", name)
	}
	return t, nil
}

func (t Token) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid token %d", int(t))
	}
	return []byte(names[t]), nil
}

func (t *Token) UnmarshalText(b []byte) error {
	v, err := ParseToken(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
