// Package search filters a link collection by free-text query.
package search

import (
	"strings"

	"github.com/bunchhieng/lv/internal/model"
)

// Filter returns the links whose title, URL, description or any tag contains
// query, ignoring case. Order is preserved. An empty query returns links as is.
func Filter(links []model.Link, query string) []model.Link {
	if query == "" {
		return links
	}

	q := strings.ToLower(query)
	filtered := make([]model.Link, 0, len(links))
	for _, link := range links {
		if Matches(link, q) {
			filtered = append(filtered, link)
		}
	}
	return filtered
}

// Matches reports whether link contains the already lower-cased query.
func Matches(link model.Link, lowered string) bool {
	if strings.Contains(strings.ToLower(link.Title), lowered) ||
		strings.Contains(strings.ToLower(link.URL), lowered) ||
		strings.Contains(strings.ToLower(link.Description), lowered) {
		return true
	}
	for _, tag := range link.Tags {
		if strings.Contains(strings.ToLower(tag), lowered) {
			return true
		}
	}
	return false
}
