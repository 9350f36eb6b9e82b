package wordgen

// Collector is the terminal dedup stage: it keeps the first occurrence of
// each candidate in arrival order and drops every repeat. Equality is exact
// string equality. An optional limit acts as a soft cap on the output size.
type Collector struct {
	seen  map[string]struct{}
	out   []string
	limit int
}

// NewCollector returns a collector capped at limit entries; limit <= 0 means
// uncapped.
func NewCollector(limit int) *Collector {
	return &Collector{seen: make(map[string]struct{}), limit: limit}
}

// Add records s unless it was seen before. It reports whether production
// should continue; false means the cap is reached and upstream stages should
// stop generating.
func (c *Collector) Add(s string) bool {
	if c.limit > 0 && len(c.out) >= c.limit {
		return false
	}
	if _, dup := c.seen[s]; dup {
		return true
	}
	c.seen[s] = struct{}{}
	c.out = append(c.out, s)
	return c.limit <= 0 || len(c.out) < c.limit
}

// List returns the collected candidates in first-seen order.
func (c *Collector) List() []string {
	return c.out
}
