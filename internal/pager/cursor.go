// Package pager tracks the on-screen page and selected row over a list of
// entries that is split into fixed-capacity pages.
package pager

// Cursor is a (page, selected) position. Page is 1-based, Selected is the
// 0-based row within the page. The cursor never holds the entries; every
// method takes the current count or slice.
type Cursor struct {
	Page     int
	Selected int
	capacity int
}

// New returns a cursor at the first row of the first page. Capacity is the
// number of rows per page and is clamped to at least 1.
func New(capacity int) *Cursor {
	c := &Cursor{}
	c.SetCapacity(capacity)
	c.Reset()
	return c
}

// Capacity returns the rows per page
func (c *Cursor) Capacity() int {
	return c.capacity
}

// SetCapacity changes the rows per page. It reports whether the value changed;
// callers reset the cursor when it did.
func (c *Cursor) SetCapacity(capacity int) bool {
	if capacity < 1 {
		capacity = 1
	}
	changed := capacity != c.capacity
	c.capacity = capacity
	return changed
}

// Reset moves back to the first row of the first page
func (c *Cursor) Reset() {
	c.Page = 1
	c.Selected = 0
}

// Mod is the euclidean remainder of a by b, always in [0, b) for b > 0
func Mod(a, b int) int {
	return ((a % b) + b) % b
}

// PageCount returns the number of pages n entries fill. Zero entries make
// zero pages.
func PageCount(n, capacity int) int {
	if n <= 0 || capacity <= 0 {
		return 0
	}
	return (n + capacity - 1) / capacity
}

// Pages returns the number of pages for total entries
func (c *Cursor) Pages(total int) int {
	return PageCount(total, c.capacity)
}

// pageSize returns how many entries are on page (1-based)
func (c *Cursor) pageSize(total, page int) int {
	start := (page - 1) * c.capacity
	if page < 1 || start >= total {
		return 0
	}
	return min(c.capacity, total-start)
}

// GotoPage turns dir pages forward (dir > 0) or backward, wrapping around
// both ends. With no entries it stays on page 1. The selection is clamped to
// the new page.
func (c *Cursor) GotoPage(total, dir int) {
	pages := c.Pages(total)
	if pages == 0 {
		c.Page = 1
		c.Selected = 0
		return
	}
	c.Page = Mod(c.Page-1+dir, pages) + 1

	if size := c.pageSize(total, c.Page); c.Selected >= size {
		c.Selected = max(size-1, 0)
	}
}

// MoveSelection moves the selected row by dir (+1 down, -1 up). Moving past
// the last row turns to the next page at its first row; moving above the
// first row turns to the previous page at its last row.
func (c *Cursor) MoveSelection(total, dir int) {
	size := c.pageSize(total, c.Page)
	if size == 0 {
		return
	}

	c.Selected = Mod(c.Selected+dir, size)
	switch {
	case dir > 0 && c.Selected == 0:
		c.GotoPage(total, 1)
		c.Selected = 0
	case dir < 0 && c.Selected == size-1:
		c.GotoPage(total, -1)
		c.Selected = c.pageSize(total, c.Page) - 1
	}
}

// CurrentPage returns the slice of entries shown on the current page, or nil
// if the page is out of range.
func CurrentPage[T any](c *Cursor, entries []T) []T {
	start := (c.Page - 1) * c.capacity
	if c.Page < 1 || start >= len(entries) {
		return nil
	}
	end := min(start+c.capacity, len(entries))
	return entries[start:end]
}

// SelectedEntry returns the entry under the cursor. ok is false when the
// current page is empty or the selection is out of range.
func SelectedEntry[T any](c *Cursor, entries []T) (entry T, ok bool) {
	page := CurrentPage(c, entries)
	if c.Selected < 0 || c.Selected >= len(page) {
		return entry, false
	}
	return page[c.Selected], true
}
