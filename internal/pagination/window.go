// Package pagination computes which page controls a listing shows and guards page changes.
// Everything here is a pure function of its arguments: no state, no I/O, safe for concurrent use.
package pagination

import (
	"encoding/json"
	"fmt"
)

// collapseThreshold is the largest page count rendered without ellipses.
const collapseThreshold = 7

// Item is one slot of a pagination control: a page number or an ellipsis gap marker.
// The zero value is not a valid item; use Page or Ellipsis.
type Item struct {
	page     int
	ellipsis bool
}

// Page returns an item pointing at page n.
func Page(n int) Item { return Item{page: n} }

// Ellipsis returns a gap marker.
func Ellipsis() Item { return Item{ellipsis: true} }

// IsEllipsis reports whether the item is a gap marker.
func (i Item) IsEllipsis() bool { return i.ellipsis }

// Number returns the page number, or 0 for an ellipsis.
func (i Item) Number() int {
	if i.ellipsis {
		return 0
	}
	return i.page
}

func (i Item) String() string {
	if i.ellipsis {
		return "…"
	}
	return fmt.Sprintf("%d", i.page)
}

type itemJSON struct {
	Type string `json:"type"`
	Page int    `json:"page,omitempty"`
}

// MarshalJSON encodes pages as {"type":"page","page":n} and gaps as {"type":"ellipsis"}.
func (i Item) MarshalJSON() ([]byte, error) {
	if i.ellipsis {
		return json.Marshal(itemJSON{Type: "ellipsis"})
	}
	return json.Marshal(itemJSON{Type: "page", Page: i.page})
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (i *Item) UnmarshalJSON(b []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "ellipsis":
		*i = Ellipsis()
	case "page":
		if raw.Page < 1 {
			return fmt.Errorf("pagination item: page must be >= 1, got %d", raw.Page)
		}
		*i = Page(raw.Page)
	default:
		return fmt.Errorf("pagination item: unknown type %q", raw.Type)
	}
	return nil
}

// ComputeWindow returns the ordered items to display for a listing with total pages
// while current is active.
//
// Up to seven pages are all shown. Above that the first and last pages are always shown,
// together with the pages adjacent to current; skipped runs become an ellipsis. A run of
// exactly one skipped page is shown as that page instead, so an ellipsis always hides two
// or more pages.
//
// A current outside [1, total] is clamped for windowing only; total below 1 is treated as 1.
func ComputeWindow(total, current int) []Item {
	if total < 1 {
		total = 1
	}
	if total <= collapseThreshold {
		items := make([]Item, 0, total)
		for p := 1; p <= total; p++ {
			items = append(items, Page(p))
		}
		return items
	}

	current = Clamp(current, total)
	left := max(2, current-1)
	right := min(total-1, current+min(1, total-current))

	items := make([]Item, 0, 7)
	items = append(items, Page(1))
	switch {
	case left == 3:
		items = append(items, Page(2))
	case left > 3:
		items = append(items, Ellipsis())
	}
	for p := left; p <= right; p++ {
		items = append(items, Page(p))
	}
	switch {
	case right == total-2:
		items = append(items, Page(total-1))
	case right < total-2:
		items = append(items, Ellipsis())
	}
	return append(items, Page(total))
}

// Clamp pulls page into [1, total]. A total below 1 is treated as 1.
func Clamp(page, total int) int {
	if total < 1 {
		total = 1
	}
	if page < 1 {
		return 1
	}
	if page > total {
		return total
	}
	return page
}

// TotalPages returns how many pages count items span at size items per page.
// An empty listing still has one (empty) page.
func TotalPages(count, size int) int {
	if size < 1 || count < 1 {
		return 1
	}
	return (count + size - 1) / size
}

// Offset returns the index of the first item on page, which is clamped to at least 1.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	if size < 0 {
		size = 0
	}
	return (page - 1) * size
}
