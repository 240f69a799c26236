// SPDX-License-Identifier: MIT
package themes

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mitchellh/hashstructure/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultMemoSize bounds a Memo built with a non-positive size.
const DefaultMemoSize = 256

type memoKey struct {
	Primary            string
	Secondary          string
	Harmony            string
	BackgroundStrategy string
	Gamut              string
	Model              string
}

// Key hashes the exact input tuple of req. Diagnostics are not part of it.
func (req Request) Key() (uint64, error) {
	model := ""
	if req.Options.Model != nil {
		model = req.Options.Model.Name()
	}
	return hashstructure.Hash(memoKey{
		Primary:            req.Primary,
		Secondary:          req.Secondary,
		Harmony:            string(req.Harmony),
		BackgroundStrategy: string(req.Options.BackgroundStrategy),
		Gamut:              string(req.Options.Gamut),
		Model:              model,
	}, hashstructure.FormatV2, nil)
}

// ETag returns Key as a quoted HTTP entity tag.
func (req Request) ETag() (string, error) {
	k, err := req.Key()
	if err != nil {
		return "", err
	}
	return `"` + strconv.FormatUint(k, 16) + `"`, nil
}

// Memo caches generated themes by request tuple, evicting the least recently
// used entry once full. Concurrent misses on one key generate once.
type Memo struct {
	cache *lru.Cache[uint64, *GeneratedTheme]
	group singleflight.Group
}

// NewMemo returns a memo holding at most size themes.
func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	cache, err := lru.New[uint64, *GeneratedTheme](size)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Memo{cache: cache}
}

// Generate returns a cached theme for req or generates and stores one.
// Failed generations are not cached.
func (m *Memo) Generate(req Request) (*GeneratedTheme, error) {
	key, err := req.Key()
	if err != nil {
		return nil, err
	}

	if th, ok := m.cache.Get(key); ok {
		return cloneTheme(th), nil
	}

	v, err, _ := m.group.Do(strconv.FormatUint(key, 16), func() (any, error) {
		if th, ok := m.cache.Get(key); ok {
			return th, nil
		}
		th, err := Generate(req)
		if err != nil {
			return nil, err
		}
		m.cache.Add(key, th)
		return th, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneTheme(v.(*GeneratedTheme)), nil
}

// Len reports the number of cached themes.
func (m *Memo) Len() int {
	return m.cache.Len()
}

// cloneTheme copies the warning slice so callers cannot alter cached
// entries. Token sets are values and copy with the struct.
func cloneTheme(th *GeneratedTheme) *GeneratedTheme {
	out := *th
	out.ContrastWarnings = append([]ContrastWarning(nil), th.ContrastWarnings...)
	return &out
}
