package collection

import (
	"context"

	"github.com/bunchhieng/lv/internal/model"
)

// ImportResult counts what Import did with each record.
type ImportResult struct {
	Added   int
	Updated int
	Skipped int
}

// Import merges links into the collection and persists once.
// Records are normalized and validated like form input; invalid ones are
// skipped. Tags are kept element by element, so a tag may contain a comma. A record whose id is already present replaces that entry in
// place, anything else is appended, keeping its id when it is well formed
// and unused.
func (c *Collection) Import(ctx context.Context, links []model.Link) ImportResult {
	var res ImportResult
	for _, in := range links {
		d := model.DraftFrom(in)
		if !model.Validate(d).Valid {
			res.Skipped++
			continue
		}
		link := d.Link(in.ID)
		link.Tags = model.CleanTags(in.Tags)

		if i := c.index(link.ID); link.ID != "" && i >= 0 {
			c.links[i] = link
			res.Updated++
			continue
		}
		if !model.ValidateShortID(link.ID) {
			link.ID = c.newID()
		}
		c.links = append(c.links, link)
		res.Added++
	}

	if res.Added+res.Updated > 0 {
		c.persist(ctx)
	}
	return res
}
