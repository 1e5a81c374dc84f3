// Package catalog provides the items shown by the demo, either decoded from a
// TOML file or generated.
package catalog

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	ErrMissingTitle = errors.New("item has no title")
	ErrDuplicateID  = errors.New("duplicate item id")
	ErrUnknownKey   = errors.New("unknown key")
)

// Item is one entry of the catalog.
type Item struct {
	ID    int    `toml:"id"`
	Title string `toml:"title"`
	Kind  string `toml:"kind"`
}

func (i Item) String() string {
	if i.Kind == "" {
		return i.Title
	}
	return i.Title + " · " + i.Kind
}

type file struct {
	Items []Item `toml:"item"`
}

// Load decodes the [[item]] tables of the TOML file at path. Items without an
// id are numbered after the largest id seen so far.
func Load(path string) ([]Item, error) {
	var f file
	meta, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrUnknownKey, path, undecoded[0])
	}

	seen := make(map[int]bool, len(f.Items))
	next := 1
	for _, item := range f.Items {
		next = max(next, item.ID+1)
	}
	for i := range f.Items {
		item := &f.Items[i]
		if item.Title == "" {
			return nil, fmt.Errorf("%w: entry %d", ErrMissingTitle, i+1)
		}
		if item.ID == 0 {
			item.ID = next
			next++
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, item.ID)
		}
		seen[item.ID] = true
	}
	return f.Items, nil
}

var kinds = []string{"alpha", "beta", "gamma", "delta"}

// Generate returns n numbered items starting at id start.
func Generate(start, n int) []Item {
	out := make([]Item, 0, max(n, 0))
	for i := range max(n, 0) {
		id := start + i
		out = append(out, Item{ID: id, Title: fmt.Sprintf("item %03d", id), Kind: kinds[id%len(kinds)]})
	}
	return out
}
