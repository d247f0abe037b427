package model

import (
	"reflect"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		draft     Draft
		wantValid bool
		wantErrs  []Field
	}{
		{"valid", Draft{Title: "Go Docs", URL: "https://go.dev"}, true, nil},
		{"scheme-less url", Draft{Title: "Example", URL: "example.com"}, true, nil},
		{"path and query", Draft{Title: "Search", URL: "https://www.example.com/a/b?q=go"}, true, nil},
		{"port", Draft{Title: "Local", URL: "http://dev.example.org:8080/x"}, true, nil},
		{"empty title", Draft{Title: "", URL: "go.dev"}, false, []Field{FieldTitle}},
		{"whitespace title", Draft{Title: "   ", URL: "go.dev"}, false, []Field{FieldTitle}},
		{"empty url", Draft{Title: "Go", URL: ""}, false, []Field{FieldURL}},
		{"no domain label", Draft{Title: "Go", URL: "localhost"}, false, []Field{FieldURL}},
		{"spaces in url", Draft{Title: "Go", URL: "not a url"}, false, []Field{FieldURL}},
		{"unsupported scheme", Draft{Title: "Go", URL: "ftp://example.com"}, false, []Field{FieldURL}},
		{"both missing", Draft{}, false, []Field{FieldTitle, FieldURL}},
		{"upper-case scheme", Draft{Title: "x", URL: "HTTPS://Example.com"}, true, nil},
		{"mixed-case scheme", Draft{Title: "x", URL: "Http://example.com/x"}, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Validate(tt.draft)
			if v.Valid != tt.wantValid {
				t.Errorf("Expected valid=%v, got %v (%v)", tt.wantValid, v.Valid, v.FieldErrors)
			}
			if len(v.FieldErrors) != len(tt.wantErrs) {
				t.Errorf("Expected %d field errors, got %v", len(tt.wantErrs), v.FieldErrors)
			}
			for _, f := range tt.wantErrs {
				if v.Error(f) == "" {
					t.Errorf("Expected error for field %s", f)
				}
			}
		})
	}
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"example.com", "https://example.com"},
		{"  example.com/a  ", "https://example.com/a"},
		{"http://example.com", "http://example.com"},
		{"https://example.com", "https://example.com"},
		{"ftp://files.example", "ftp://files.example"},
		{"", ""},
		{"httpbin.org/get", "https://httpbin.org/get"},
		{"HTTPS://Example.com/Path", "https://Example.com/Path"},
		{"Http://example.com", "http://example.com"},
	}
	for _, tt := range tests {
		if got := NormalizeURL(tt.in); got != tt.want {
			t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTags(t *testing.T) {
	got := ParseTags(" go, docs ,, ,go,reference ")
	want := []string{"go", "docs", "go", "reference"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if tags := ParseTags(""); len(tags) != 0 {
		t.Errorf("Expected no tags, got %v", tags)
	}
}

func TestCleanTags(t *testing.T) {
	got := CleanTags([]string{" c,c++ ", "", "  ", "go"})
	want := []string{"c,c++", "go"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if tags := CleanTags(nil); tags == nil || len(tags) != 0 {
		t.Errorf("Expected empty non-nil tags, got %#v", tags)
	}
}

func TestDraftLink(t *testing.T) {
	d := Draft{Title: "  Example  ", URL: "example.com", Description: "a site", Tags: "web, example"}
	l := d.Link("abc")

	if l.ID != "abc" {
		t.Errorf("Expected ID abc, got %s", l.ID)
	}
	if l.Title != "Example" {
		t.Errorf("Expected trimmed title, got %q", l.Title)
	}
	if l.URL != "https://example.com" {
		t.Errorf("Expected normalized URL, got %s", l.URL)
	}
	if !reflect.DeepEqual(l.Tags, []string{"web", "example"}) {
		t.Errorf("Unexpected tags %v", l.Tags)
	}

	back := DraftFrom(l)
	if back.Tags != "web, example" {
		t.Errorf("Expected tags text 'web, example', got %q", back.Tags)
	}
}

func TestClone(t *testing.T) {
	l := Link{ID: "a", Tags: []string{"x"}}
	c := l.Clone()
	c.Tags[0] = "y"
	if l.Tags[0] != "x" {
		t.Error("Expected clone not to share tags")
	}
}

func TestShortID(t *testing.T) {
	id := GenerateShortID()
	if len(id) != 26 {
		t.Errorf("Expected 26 chars, got %d (%s)", len(id), id)
	}
	if !ValidateShortID(id) {
		t.Errorf("Expected generated id %s to validate", id)
	}
	if GenerateShortID() == id {
		t.Error("Expected ids to be unique")
	}
	if !ValidateShortID("3f2504e0-4f89-11d3-9a0c-0305e82c3301") {
		t.Error("Expected canonical UUID to validate")
	}
	if ValidateShortID("xyz") {
		t.Error("Expected short id to be rejected")
	}
	if ValidateShortID("bad id with spaces") {
		t.Error("Expected id with spaces to be rejected")
	}
}
