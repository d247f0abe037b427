package model

import (
	"regexp"
	"strings"
)

// Field names a form field that can carry a validation error.
type Field string

const (
	FieldTitle Field = "title"
	FieldURL   Field = "url"
)

const (
	msgTitleRequired = "Title is required"
	msgURLRequired   = "URL is required"
	msgURLInvalid    = "Please enter a valid URL"
)

var (
	schemePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

	// scheme, one or more dot-separated labels, a TLD, optional port and path
	urlPattern = regexp.MustCompile(`^https?://([a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(:[0-9]{1,5})?(/\S*)?$`)
)

// Validation is the outcome of checking a Draft.
type Validation struct {
	Valid       bool
	FieldErrors map[Field]string
}

// Error returns the message recorded for field, or "".
func (v Validation) Error(field Field) string {
	return v.FieldErrors[field]
}

// NormalizeURL trims the input, lower-cases an existing scheme and prefixes
// https:// when none is present.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if loc := schemePattern.FindStringIndex(raw); loc != nil {
		return strings.ToLower(raw[:loc[1]]) + raw[loc[1]:]
	}
	return "https://" + raw
}

// Validate checks the required fields and the shape of the normalized URL.
func Validate(d Draft) Validation {
	errs := make(map[Field]string)

	if strings.TrimSpace(d.Title) == "" {
		errs[FieldTitle] = msgTitleRequired
	}

	if strings.TrimSpace(d.URL) == "" {
		errs[FieldURL] = msgURLRequired
	} else if !urlPattern.MatchString(NormalizeURL(d.URL)) {
		errs[FieldURL] = msgURLInvalid
	}

	return Validation{Valid: len(errs) == 0, FieldErrors: errs}
}
