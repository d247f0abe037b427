// Package collection owns the ordered, in-memory set of links and writes it
// back to storage after every mutation.
package collection

import (
	"context"
	"fmt"

	"github.com/bunchhieng/lv/internal/model"
	"github.com/bunchhieng/lv/internal/search"
)

// Persister receives the full collection after each change.
type Persister interface {
	Save(ctx context.Context, links []model.Link)
}

// Loader returns the persisted collection.
type Loader interface {
	Load(ctx context.Context) []model.Link
}

// Store is a Persister that can also rehydrate a collection.
type Store interface {
	Persister
	Loader
}

// Collection is the ordered list of links. Insertion order is display order.
// It is not safe for concurrent use.
type Collection struct {
	links []model.Link
	store Persister
}

// New returns a collection holding a copy of links. store may be nil.
func New(links []model.Link, store Persister) *Collection {
	c := &Collection{store: store}
	for _, l := range links {
		c.links = append(c.links, l.Clone())
	}
	return c
}

// Open rehydrates a collection from store.
func Open(ctx context.Context, store Store) *Collection {
	return New(store.Load(ctx), store)
}

// Len returns the number of links.
func (c *Collection) Len() int {
	return len(c.links)
}

// Links returns a copy of the collection in display order.
func (c *Collection) Links() []model.Link {
	out := make([]model.Link, len(c.links))
	for i, l := range c.links {
		out[i] = l.Clone()
	}
	return out
}

// Filtered returns the links matching query, in display order.
func (c *Collection) Filtered(query string) []model.Link {
	return search.Filter(c.Links(), query)
}

// Get returns the link with id.
func (c *Collection) Get(id string) (model.Link, error) {
	i := c.index(id)
	if i < 0 {
		return model.Link{}, model.ErrNotFound
	}
	return c.links[i].Clone(), nil
}

// Add appends link under a freshly generated id and persists.
func (c *Collection) Add(ctx context.Context, link model.Link) model.Link {
	link = link.Clone()
	link.ID = c.newID()
	c.links = append(c.links, link)
	c.persist(ctx)
	return link.Clone()
}

// Update replaces the link with the same id, keeping its position.
// A missing id leaves the collection untouched and returns model.ErrNotFound.
func (c *Collection) Update(ctx context.Context, link model.Link) error {
	i := c.index(link.ID)
	if i < 0 {
		return fmt.Errorf("update %s: %w", link.ID, model.ErrNotFound)
	}
	c.links[i] = link.Clone()
	c.persist(ctx)
	return nil
}

// Delete removes the link with id. A missing id leaves the collection
// untouched and returns model.ErrNotFound.
func (c *Collection) Delete(ctx context.Context, id string) error {
	i := c.index(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, model.ErrNotFound)
	}
	c.links = append(c.links[:i:i], c.links[i+1:]...)
	c.persist(ctx)
	return nil
}

// Submit runs the create/update form flow. The draft is validated first; an
// invalid draft is returned with its field errors and nothing is stored.
// An empty id adds a new link, otherwise the link with id is replaced.
func (c *Collection) Submit(ctx context.Context, id string, d model.Draft) (model.Link, model.Validation, error) {
	v := model.Validate(d)
	if !v.Valid {
		return model.Link{}, v, model.ErrInvalidLink
	}
	if id == "" {
		return c.Add(ctx, d.Link("")), v, nil
	}
	link := d.Link(id)
	if err := c.Update(ctx, link); err != nil {
		return model.Link{}, v, err
	}
	return link, v, nil
}

func (c *Collection) index(id string) int {
	for i := range c.links {
		if c.links[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Collection) newID() string {
	for {
		id := model.GenerateShortID()
		if c.index(id) < 0 {
			return id
		}
	}
}

func (c *Collection) persist(ctx context.Context) {
	if c.store == nil {
		return
	}
	c.store.Save(ctx, c.links)
}
