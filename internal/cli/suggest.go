package cli

// suggestID returns the existing id closest to id, if any is within three edits.
func (c *Commands) suggestID(id string) string {
	best := ""
	bestDistance := 4
	for _, link := range c.links.Links() {
		if d := levenshtein(id, link.ID); d < bestDistance {
			bestDistance = d
			best = link.ID
		}
	}
	return best
}

func levenshtein(a, b string) int {
	if a == "" {
		return len(b)
	}
	if b == "" {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(
				prev[j]+1,      // deletion
				cur[j-1]+1,     // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
