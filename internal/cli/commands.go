package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bunchhieng/lv/internal/browser"
	"github.com/bunchhieng/lv/internal/collection"
	"github.com/bunchhieng/lv/internal/model"
)

// Commands handles all CLI command execution.
type Commands struct {
	links  *collection.Collection
	out    io.Writer
	opener func(url string) error
	styles styles
}

// NewCommands creates a Commands instance printing to out.
func NewCommands(links *collection.Collection, out io.Writer) *Commands {
	return &Commands{
		links:  links,
		out:    out,
		opener: browser.Open,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Changes lists the fields an edit overrides. Nil fields keep their value.
type Changes struct {
	Title       *string
	URL         *string
	Description *string
	Tags        *string
}

// Add validates the form values and appends a new link.
func (c *Commands) Add(ctx context.Context, url, title, description, tags string) error {
	link, v, err := c.links.Submit(ctx, "", model.Draft{
		Title:       title,
		URL:         url,
		Description: description,
		Tags:        tags,
	})
	if err != nil {
		return submitError(err, v)
	}

	fmt.Fprintf(c.out, "%s link %s: %s\n",
		c.styles.added.Render("Added"), c.styles.id.Render(link.ID), c.styles.url.Render(link.URL))
	return nil
}

// Edit replaces the link with id by its current values merged with changes.
func (c *Commands) Edit(ctx context.Context, id string, changes Changes) error {
	existing, err := c.links.Get(id)
	if err != nil {
		return c.notFound(err, id, "get link")
	}

	d := model.DraftFrom(existing)
	if changes.Title != nil {
		d.Title = *changes.Title
	}
	if changes.URL != nil {
		d.URL = *changes.URL
	}
	if changes.Description != nil {
		d.Description = *changes.Description
	}
	if changes.Tags != nil {
		d.Tags = *changes.Tags
	}

	link, v, err := c.links.Submit(ctx, id, d)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return c.notFound(err, id, "update link")
		}
		return submitError(err, v)
	}

	fmt.Fprintf(c.out, "%s link %s: %s\n",
		c.styles.updated.Render("Updated"), c.styles.id.Render(link.ID), c.styles.url.Render(link.URL))
	return nil
}

// Remove deletes one or more links.
func (c *Commands) Remove(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("at least one ID required")
	}

	var deleted, failed []string
	for _, id := range ids {
		if err := c.links.Delete(ctx, id); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				msg := fmt.Sprintf("%s (not found)", id)
				if suggestion := c.suggestID(id); suggestion != "" {
					msg += fmt.Sprintf(" - did you mean %s?", suggestion)
				}
				failed = append(failed, msg)
			} else {
				failed = append(failed, fmt.Sprintf("%s (%v)", id, err))
			}
			continue
		}
		deleted = append(deleted, id)
	}

	switch len(deleted) {
	case 0:
	case 1:
		fmt.Fprintf(c.out, "%s link %s.\n", c.styles.deleted.Render("Deleted"), c.styles.id.Render(deleted[0]))
	default:
		fmt.Fprintf(c.out, "%s %d links: %s\n", c.styles.deleted.Render("Deleted"), len(deleted),
			c.styles.id.Render(strings.Join(deleted, ", ")))
	}

	if len(failed) > 0 {
		return fmt.Errorf("failed to delete: %s", strings.Join(failed, ", "))
	}
	return nil
}

// List prints every link, or only those carrying tag (case-insensitive).
func (c *Commands) List(tag string) error {
	links := c.links.Links()
	if tag != "" {
		links = withTag(links, tag)
	}
	return c.printLinks(links)
}

// Search prints the links matching query.
func (c *Commands) Search(query string) error {
	return c.printLinks(c.links.Filtered(query))
}

// Show prints every field of one link.
func (c *Commands) Show(id string) error {
	link, err := c.links.Get(id)
	if err != nil {
		return c.notFound(err, id, "get link")
	}
	fmt.Fprintln(c.out, c.renderDetail(link))
	return nil
}

// Open opens a link in the default browser.
func (c *Commands) Open(id string) error {
	link, err := c.links.Get(id)
	if err != nil {
		return c.notFound(err, id, "get link")
	}
	if err := c.opener(link.URL); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s %s\n", c.styles.added.Render("Opened:"), c.styles.url.Render(link.URL))
	return nil
}

func (c *Commands) printLinks(links []model.Link) error {
	if len(links) == 0 {
		fmt.Fprintln(c.out, "No links found.")
		return nil
	}
	fmt.Fprintln(c.out, c.renderTable(links))
	return nil
}

func (c *Commands) notFound(err error, id string, action string) error {
	if !errors.Is(err, model.ErrNotFound) {
		return fmt.Errorf("%s: %w", action, err)
	}
	msg := fmt.Sprintf("link %s not found", id)
	if suggestion := c.suggestID(id); suggestion != "" {
		msg += fmt.Sprintf("\n\nDid you mean: %s?", suggestion)
	}
	return fmt.Errorf("%s: %w", msg, model.ErrNotFound)
}

func withTag(links []model.Link, tag string) []model.Link {
	var out []model.Link
	for _, l := range links {
		for _, t := range l.Tags {
			if strings.EqualFold(t, tag) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

// ValidationError carries the per-field messages of a rejected form.
type ValidationError struct {
	Validation model.Validation
}

func (e *ValidationError) Error() string {
	var parts []string
	for _, f := range []model.Field{model.FieldTitle, model.FieldURL} {
		if msg := e.Validation.Error(f); msg != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", f, msg))
		}
	}
	return "invalid link: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return model.ErrInvalidLink
}

func submitError(err error, v model.Validation) error {
	if errors.Is(err, model.ErrInvalidLink) {
		return &ValidationError{Validation: v}
	}
	return err
}

// ParseID validates an ID string format.
func ParseID(s string) (string, error) {
	if !model.ValidateShortID(s) {
		return "", fmt.Errorf("invalid ID format: %s", s)
	}
	return s, nil
}
