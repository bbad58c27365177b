package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kbase/internal/catalog"
	"kbase/internal/domain"
)

func seed(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return c
}

func ids(articles []domain.Article) []int {
	out := make([]int, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ID)
	}
	return out
}

func TestDefaultsMatchWholeCatalog(t *testing.T) {
	c := seed(t)
	s := New()

	assert.Equal(t, "", s.SearchQuery())
	assert.Equal(t, domain.CategoryAll, s.SelectedCategory())
	assert.Empty(t, s.SelectedTags())
	assert.False(t, s.IsFiltered())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ids(s.FilteredArticles(c)))
}

func TestCategoryDevelopment(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSelectedCategory(domain.CategoryDevelopment)

	got := s.FilteredArticles(c)
	assert.Equal(t, []int{1, 4, 6}, ids(got))
	for _, a := range got {
		assert.Equal(t, domain.CategoryDevelopment, a.Category)
	}
}

func TestCategoryIsCaseSensitive(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSelectedCategory(domain.Category(strings.ToLower(string(domain.CategoryDevelopment))))

	assert.Empty(t, s.FilteredArticles(c))
}

func TestUnknownCategoryMatchesNothing(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSelectedCategory("Кулинария")

	assert.Empty(t, s.FilteredArticles(c))
}

func TestTagsAreOrCombined(t *testing.T) {
	c := seed(t)
	s := New()
	s.ToggleTag("API")
	s.ToggleTag("SQL")

	assert.Equal(t, []int{1, 6}, ids(s.FilteredArticles(c)), "union, not intersection")
}

func TestSharedTagMatchesEveryCarrier(t *testing.T) {
	c := seed(t)
	s := New()
	s.ToggleTag("Performance")

	assert.Equal(t, []int{4, 6}, ids(s.FilteredArticles(c)))
}

func TestUnknownTagMatchesNothing(t *testing.T) {
	c := seed(t)
	s := New()
	s.ToggleTag("Cooking")

	assert.Empty(t, s.FilteredArticles(c))
}

func TestSearchTitleAndDescription(t *testing.T) {
	c := seed(t)

	tests := []struct {
		query string
		want  []int
	}{
		{"api", []int{1}},
		{"данных", []int{2, 6}},
		{"SQL", []int{6}},
		{"agile", []int{3}},
		{"приложений", []int{4}},
		{"Иван", nil}, // author is not searched
		{"Содержание", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			s := New()
			s.SetSearchQuery(tt.query)
			got := s.FilteredArticles(c)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := seed(t)

	variants := []string{"данных", "ДАННЫХ", "ДаНнЫх", "Данных"}
	var want []int
	for i, q := range variants {
		s := New()
		s.SetSearchQuery(q)
		got := ids(s.FilteredArticles(c))
		if i == 0 {
			want = got
			require.NotEmpty(t, want)
			continue
		}
		assert.Equal(t, want, got, "query %q", q)
	}
}

func TestSearchIsNotTrimmed(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSearchQuery("\tAPI")

	assert.Empty(t, s.FilteredArticles(c))
}

func TestAbsentQueryYieldsEmptyResult(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSearchQuery("квантовая телепортация")

	got := s.FilteredArticles(c)
	assert.Len(t, got, 0)
	assert.Equal(t, "Найдено 0 статей", s.Summary(len(got)))
}

func TestPredicatesAreAndCombined(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSelectedCategory(domain.CategoryDevelopment)
	s.ToggleTag("Performance")
	s.SetSearchQuery("баз")

	assert.Equal(t, []int{6}, ids(s.FilteredArticles(c)))

	s.SetSelectedCategory(domain.CategorySecurity)
	assert.Empty(t, s.FilteredArticles(c))
}

func TestToggleTagTwiceIsIdentity(t *testing.T) {
	s := New()
	s.ToggleTag("API")
	s.ToggleTag("Web")
	before := s.SelectedTags()

	for _, tag := range []string{"SQL", "API", "Web", "Unknown"} {
		s.ToggleTag(tag)
		s.ToggleTag(tag)
		assert.ElementsMatch(t, before, s.SelectedTags(), "toggling %q twice", tag)
	}
}

func TestToggleKeepsInsertionOrder(t *testing.T) {
	s := New()
	s.ToggleTag("SQL")
	s.ToggleTag("API")
	s.ToggleTag("Web")
	s.ToggleTag("API")
	s.ToggleTag("GDPR")

	assert.Equal(t, []string{"SQL", "Web", "GDPR"}, s.SelectedTags())
	assert.True(t, s.IsTagSelected("Web"))
	assert.False(t, s.IsTagSelected("API"))
}

func TestSelectedTagsReturnsCopy(t *testing.T) {
	s := New()
	s.ToggleTag("API")
	tags := s.SelectedTags()
	tags[0] = "changed"

	assert.Equal(t, []string{"API"}, s.SelectedTags())
}

func TestClearTagsRestoresZeroTagResult(t *testing.T) {
	c := seed(t)
	s := New()
	s.SetSelectedCategory(domain.CategoryDevelopment)
	s.SetSearchQuery("о")
	baseline := ids(s.FilteredArticles(c))

	s.ToggleTag("API")
	s.ToggleTag("Database")
	require.NotEqual(t, baseline, ids(s.FilteredArticles(c)))

	s.ClearTags()
	assert.Empty(t, s.SelectedTags())
	assert.Equal(t, baseline, ids(s.FilteredArticles(c)))
}

func TestAddingTagNeverWidensZeroTagResult(t *testing.T) {
	c := seed(t)
	queries := []string{"", "о", "данных"}

	for _, cat := range c.Categories() {
		for _, q := range queries {
			s := New()
			s.SetSelectedCategory(cat)
			s.SetSearchQuery(q)
			base := len(s.FilteredArticles(c))

			for _, tag := range c.TagUniverse() {
				s.ToggleTag(tag)
				assert.LessOrEqual(t, len(s.FilteredArticles(c)), base,
					"category=%s query=%q tag=%s", cat, q, tag)
				s.ToggleTag(tag)
			}
		}
	}
}

func TestResultIsSubsetWithoutDuplicates(t *testing.T) {
	c := seed(t)
	catalogIDs := map[int]bool{}
	for _, a := range c.Articles() {
		catalogIDs[a.ID] = true
	}

	states := []func(*State){
		func(s *State) {},
		func(s *State) { s.SetSearchQuery("а") },
		func(s *State) { s.SetSelectedCategory(domain.CategoryDocumentation) },
		func(s *State) { s.ToggleTag("Performance"); s.ToggleTag("Web") },
		func(s *State) { s.SetSearchQuery("zzz") },
	}

	for i, apply := range states {
		s := New()
		apply(s)
		seen := map[int]bool{}
		prev := 0
		for _, a := range s.FilteredArticles(c) {
			assert.True(t, catalogIDs[a.ID], "state %d: article %d not in catalog", i, a.ID)
			assert.False(t, seen[a.ID], "state %d: duplicate article %d", i, a.ID)
			assert.Greater(t, a.ID, prev, "state %d: catalog order broken", i)
			seen[a.ID] = true
			prev = a.ID
		}
	}
}

func TestFilteringDoesNotMutateCatalog(t *testing.T) {
	c := seed(t)
	before := c.Articles()

	s := New()
	s.ToggleTag("API")
	got := s.FilteredArticles(c)
	require.NotEmpty(t, got)
	got[0].Tags[0] = "mutated"
	got[0].Title = "mutated"

	assert.Equal(t, before, c.Articles())
}

func TestHeadingAndSummary(t *testing.T) {
	s := New()
	assert.Equal(t, "Все статьи", s.Heading())
	assert.Equal(t, "Найдено 6 статей", s.Summary(6))

	s.SetSelectedCategory(domain.CategoryManagement)
	s.ToggleTag("API")
	s.ToggleTag("SQL")
	assert.Equal(t, "Менеджмент", s.Heading())
	assert.Equal(t, "Найдено 0 статей с тегами: API, SQL", s.Summary(0))
}

func TestResetAndEvent(t *testing.T) {
	s := New()
	s.SetSearchQuery("api")
	s.SetSelectedCategory(domain.CategorySecurity)
	s.ToggleTag("GDPR")
	require.True(t, s.IsFiltered())

	ev := s.Event(0)
	assert.Equal(t, "api", ev.SearchQuery)
	assert.Equal(t, domain.CategorySecurity, ev.SelectedCategory)
	assert.Equal(t, []string{"GDPR"}, ev.SelectedTags)

	s.Reset()
	assert.False(t, s.IsFiltered())
	assert.Equal(t, Snapshot{SelectedCategory: domain.CategoryAll}, s.Snapshot())
}
