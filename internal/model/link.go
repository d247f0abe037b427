package model

import (
	"strings"
)

// Link represents a bookmarked resource.
type Link struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	URL         string   `json:"url" yaml:"url"`
	Description string   `json:"description" yaml:"description"`
	Tags        []string `json:"tags" yaml:"tags"`
}

// Clone returns a copy of the link that shares no memory with the original.
func (l Link) Clone() Link {
	c := l
	c.Tags = make([]string, len(l.Tags))
	copy(c.Tags, l.Tags)
	return c
}

// TagString joins the tags the way they are typed into the form.
func (l Link) TagString() string {
	return strings.Join(l.Tags, ", ")
}

// ParseTags splits comma-separated input into trimmed, non-empty tags.
// Order and duplicates are kept.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, tag := range parts {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// CleanTags trims each tag and drops empty ones, without splitting on commas.
func CleanTags(in []string) []string {
	tags := make([]string, 0, len(in))
	for _, tag := range in {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Draft holds the raw contents of the create/update form.
type Draft struct {
	Title       string
	URL         string
	Description string
	Tags        string
}

// DraftFrom fills a form from an existing link, for editing.
func DraftFrom(l Link) Draft {
	return Draft{
		Title:       l.Title,
		URL:         l.URL,
		Description: l.Description,
		Tags:        l.TagString(),
	}
}

// Link builds the normalized record for the draft. Callers are expected to
// have run Validate first.
func (d Draft) Link(id string) Link {
	return Link{
		ID:          id,
		Title:       strings.TrimSpace(d.Title),
		URL:         NormalizeURL(d.URL),
		Description: d.Description,
		Tags:        ParseTags(d.Tags),
	}
}
