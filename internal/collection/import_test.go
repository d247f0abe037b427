package collection

import (
	"context"
	"testing"

	"github.com/bunchhieng/lv/internal/model"
)

func TestImport(t *testing.T) {
	c, rec := seeded(t)
	existing := c.Links()[0]
	existing.Title = "One (imported)"

	res := c.Import(context.Background(), []model.Link{
		existing,
		{ID: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", Title: "Kept ID", URL: "kept.example"},
		{ID: "?", Title: "Fresh ID", URL: "https://fresh.example", Tags: []string{" a ", ""}},
		{Title: "", URL: "https://invalid.example"},
		{Title: "Bad URL", URL: "not a url"},
	})

	if res.Updated != 1 || res.Added != 2 || res.Skipped != 2 {
		t.Errorf("Unexpected result %+v", res)
	}
	if len(rec.saves) != 1 {
		t.Errorf("Expected a single save, got %d", len(rec.saves))
	}

	links := c.Links()
	if len(links) != 5 {
		t.Fatalf("Expected 5 links, got %d", len(links))
	}
	if links[0].Title != "One (imported)" {
		t.Errorf("Expected in-place update, got %q", links[0].Title)
	}
	if links[3].ID != "3f2504e0-4f89-11d3-9a0c-0305e82c3301" {
		t.Errorf("Expected imported ID kept, got %s", links[3].ID)
	}
	if links[3].URL != "https://kept.example" {
		t.Errorf("Expected normalized URL, got %s", links[3].URL)
	}
	if links[4].ID == "?" || !model.ValidateShortID(links[4].ID) {
		t.Errorf("Expected fresh ID, got %s", links[4].ID)
	}
	if len(links[4].Tags) != 1 || links[4].Tags[0] != "a" {
		t.Errorf("Expected cleaned tags, got %v", links[4].Tags)
	}
}

func TestImportNothingValid(t *testing.T) {
	c, rec := seeded(t)

	res := c.Import(context.Background(), []model.Link{{Title: "x"}})
	if res.Skipped != 1 || res.Added != 0 {
		t.Errorf("Unexpected result %+v", res)
	}
	if len(rec.saves) != 0 {
		t.Errorf("Expected no save, got %d", len(rec.saves))
	}
}

func TestImportKeepsCommasInTags(t *testing.T) {
	c, _ := seeded(t)

	c.Import(context.Background(), []model.Link{
		{Title: "Langs", URL: "https://langs.example", Tags: []string{"c,c++", " go "}},
	})

	links := c.Links()
	got := links[len(links)-1].Tags
	if len(got) != 2 || got[0] != "c,c++" || got[1] != "go" {
		t.Errorf("Expected [c,c++ go], got %q", got)
	}
}
