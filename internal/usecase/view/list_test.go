package view

import (
	"errors"
	"testing"

	"newsbrief/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListState_InitialLoad(t *testing.T) {
	s := NewListState("general")
	assert.Equal(t, ListIdle, s.Status)

	f := s.Load()
	assert.Equal(t, Fetch{Category: "general"}, f)
	assert.False(t, f.IsSearch())
	assert.Equal(t, ListLoading, s.Status)
}

func TestListState_SelectCategoryClearsSearch(t *testing.T) {
	s := NewListState("general")
	_, ok := s.SubmitSearch("climate")
	require.True(t, ok)
	s.Resolve(nil, nil)

	f := s.SelectCategory("sports")

	assert.Equal(t, Fetch{Category: "sports"}, f)
	assert.Empty(t, s.Query)
	assert.Empty(t, s.SearchInput)
	assert.Equal(t, "sports", s.Category)
	assert.Equal(t, ListLoading, s.Status)
}

func TestListState_SubmitSearchClearsCategory(t *testing.T) {
	s := NewListState("general")

	f, ok := s.SubmitSearch("  mars rover ")

	require.True(t, ok)
	assert.Equal(t, Fetch{Query: "mars rover"}, f)
	assert.True(t, f.IsSearch())
	assert.Empty(t, s.Category)
	assert.Equal(t, "mars rover", s.Query)
	assert.Equal(t, ListLoading, s.Status)
}

func TestListState_BlankSearchIgnored(t *testing.T) {
	for _, q := range []string{"", " ", "\t"} {
		s := NewListState("business")
		s.Load()
		s.Resolve([]entity.Article{{Title: "a"}}, nil)

		_, ok := s.SubmitSearch(q)

		assert.False(t, ok)
		assert.Equal(t, "business", s.Category)
		assert.Empty(t, s.Query)
		assert.Equal(t, ListSuccess, s.Status)
		assert.Len(t, s.Articles, 1)
	}
}

func TestListState_Resolve(t *testing.T) {
	s := NewListState("general")
	s.Load()
	s.Resolve([]entity.Article{{Title: "one"}, {Title: "two"}}, nil)
	assert.Equal(t, ListSuccess, s.Status)
	assert.Len(t, s.Articles, 2)

	s.Load()
	s.Resolve(nil, errors.New("HTTP error! Status: 500\nbody follows"))
	assert.Equal(t, ListError, s.Status)
	assert.Equal(t, "HTTP error! Status: 500", s.Err)
	assert.Nil(t, s.Articles)

	s.Load()
	assert.Empty(t, s.Err, "a new fetch clears the previous error")
}

func TestListState_Heading(t *testing.T) {
	names := map[string]string{"general": "General", "bbc": "BBC News"}

	tests := []struct {
		name  string
		setup func(*ListState)
		want  string
	}{
		{name: "known category", setup: func(s *ListState) { s.SelectCategory("bbc") }, want: "BBC News"},
		{name: "unknown category", setup: func(s *ListState) { s.SelectCategory("weather") }, want: "General"},
		{name: "search", setup: func(s *ListState) { s.SubmitSearch("go") }, want: `Search Results for: "go"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewListState("general")
			tt.setup(s)
			assert.Equal(t, tt.want, s.Heading(names))
		})
	}
}

func TestListStatus_String(t *testing.T) {
	assert.Equal(t, "idle", ListIdle.String())
	assert.Equal(t, "loading", ListLoading.String())
	assert.Equal(t, "success", ListSuccess.String())
	assert.Equal(t, "error", ListError.String())
	assert.Equal(t, "unknown", ListStatus(42).String())
}
