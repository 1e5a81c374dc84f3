package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeCatalog(t, `
[[item]]
title = "first"
kind = "alpha"

[[item]]
id = 10
title = "second"

[[item]]
title = "third"
`)

	got, err := Load(path)
	require.NoError(t, err)
	want := []Item{
		{ID: 11, Title: "first", Kind: "alpha"},
		{ID: 10, Title: "second"},
		{ID: 12, Title: "third"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{name: "missing title", body: "[[item]]\nkind = \"x\"\n", want: ErrMissingTitle},
		{name: "duplicate id", body: "[[item]]\nid = 2\ntitle = \"a\"\n[[item]]\nid = 2\ntitle = \"b\"\n", want: ErrDuplicateID},
		{name: "unknown key", body: "[[item]]\ntitle = \"a\"\ncolour = \"red\"\n", want: ErrUnknownKey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalog(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadBrokenFile(t *testing.T) {
	_, err := Load(writeCatalog(t, "[[item]\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadEmpty(t *testing.T) {
	got, err := Load(writeCatalog(t, ""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerate(t *testing.T) {
	got := Generate(1, 3)
	assert.Equal(t, []Item{
		{ID: 1, Title: "item 001", Kind: "beta"},
		{ID: 2, Title: "item 002", Kind: "gamma"},
		{ID: 3, Title: "item 003", Kind: "delta"},
	}, got)
	assert.Empty(t, Generate(1, 0))
	assert.Empty(t, Generate(1, -2))
}

func TestItemString(t *testing.T) {
	assert.Equal(t, "a · b", Item{Title: "a", Kind: "b"}.String())
	assert.Equal(t, "a", Item{Title: "a"}.String())
}
