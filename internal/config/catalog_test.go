package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCatalog_EmptyPathUsesDefault(t *testing.T) {
	catalog, err := LoadCatalog("")
	require.NoError(t, err)

	if diff := cmp.Diff(DefaultCatalog(), catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "bbc-news", catalog.Sources["bbc"])
	assert.Equal(t, "us", catalog.Country)
	assert.Equal(t, "general", catalog.DefaultCategory)
}

func TestLoadCatalog_OverridesFromFile(t *testing.T) {
	path := writeCatalog(t, `
country: gb
categories:
  - name: Tech
    query: technology
  - name: Reuters
    query: reuters
sources:
  reuters: reuters
`)

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)

	want := &NewsCatalog{
		Country:         "gb",
		DefaultCategory: "general",
		Categories: []Category{
			{Name: "Tech", Query: "technology"},
			{Name: "Reuters", Query: "reuters"},
		},
		Sources: map[string]string{"reuters": "reuters"},
	}
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Errorf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalog_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "malformed yaml",
			content: "country: [us",
			wantErr: "failed to parse catalog",
		},
		{
			name:    "blank category query",
			content: "categories:\n  - name: Empty\n    query: \" \"\n",
			wantErr: "categories[0].query",
		},
		{
			name:    "default category reserved",
			content: "default_category: bbc\n",
			wantErr: "reserved source token",
		},
		{
			name:    "empty source id",
			content: "sources:\n  cnn: \"\"\n",
			wantErr: "sources entries",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeCatalog(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog file")
}

func TestNewsCatalog_CategoryNames(t *testing.T) {
	names := DefaultCatalog().CategoryNames()

	assert.Equal(t, "BBC News", names["bbc"])
	assert.Equal(t, "General", names["general"])
	assert.Len(t, names, 8)
}
