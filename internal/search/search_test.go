package search

import (
	"testing"

	"github.com/bunchhieng/lv/internal/model"
)

func fixture() []model.Link {
	return []model.Link{
		{ID: "1", Title: "Go Docs", URL: "https://go.dev", Tags: []string{"go", "docs"}},
		{ID: "2", Title: "Web Design Weekly", URL: "https://webdesignweekly.com", Description: "newsletter"},
		{ID: "3", Title: "Rust Book", URL: "https://doc.rust-lang.org/book", Description: "Systems DESIGN notes"},
		{ID: "4", Title: "Figma", URL: "https://figma.com", Tags: []string{"UI-Design"}},
		{ID: "5", Title: "Hacker News", URL: "https://news.ycombinator.com"},
	}
}

func ids(links []model.Link) []string {
	out := make([]string, len(links))
	for i, l := range links {
		out[i] = l.ID
	}
	return out
}

func TestFilterEmptyQuery(t *testing.T) {
	links := fixture()
	got := Filter(links, "")
	if len(got) != len(links) {
		t.Fatalf("Expected %d links, got %d", len(links), len(got))
	}
	for i := range links {
		if got[i].ID != links[i].ID {
			t.Errorf("Expected order preserved at %d: %s vs %s", i, links[i].ID, got[i].ID)
		}
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"design", []string{"2", "3", "4"}},
		{"GO", []string{"1"}},
		{"docs", []string{"1"}},
		{"ycombinator", []string{"5"}},
		{"newsletter", []string{"2"}},
		{"nothing-matches", []string{}},
		{"rust", []string{"3"}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := ids(Filter(fixture(), tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q) = %v, want %v", tt.query, got, tt.want)
				}
			}
		})
	}
}

func TestFilterDoesNotMutate(t *testing.T) {
	links := fixture()
	Filter(links, "design")
	if len(links) != 5 || links[0].Title != "Go Docs" {
		t.Errorf("Expected input untouched, got %v", links)
	}
}

func TestFilterTagScenario(t *testing.T) {
	links := []model.Link{{Title: "Go Docs", URL: "go.dev", Tags: []string{"go", "docs"}}}
	got := Filter(links, "GO")
	if len(got) != 1 {
		t.Errorf("Expected 1 match, got %d", len(got))
	}
}
