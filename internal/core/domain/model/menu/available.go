package menu

import (
	"cmp"
	"iter"
	"slices"
	"strings"
)

// ListAvailable returns the customer facing menu: active categories ordered by
// display order (then name), each paired with its available items ordered by
// name. Categories without available items are skipped.
//
// The sequence is lazy and restartable: nothing is sorted until it is ranged
// over, and every range starts again from the given slices.
//
// Example:
//
//	for category, items := range menu.ListAvailable(categories, items) {
//	    fmt.Println(category.Name(), len(items))
//	}
func ListAvailable(categories []*Category, items []*Item) iter.Seq2[*Category, []*Item] {
	return func(yield func(*Category, []*Item) bool) {
		byCategory := make(map[string][]*Item)
		for _, item := range items {
			if !item.IsAvailable() {
				continue
			}
			key := item.CategoryID().String()
			byCategory[key] = append(byCategory[key], item)
		}

		ordered := make([]*Category, 0, len(categories))
		for _, c := range categories {
			if c.IsActive() {
				ordered = append(ordered, c)
			}
		}
		slices.SortStableFunc(ordered, func(a, b *Category) int {
			return cmp.Or(
				cmp.Compare(a.DisplayOrder(), b.DisplayOrder()),
				strings.Compare(a.Name(), b.Name()),
			)
		})

		for _, c := range ordered {
			section := byCategory[c.ID().String()]
			if len(section) == 0 {
				continue
			}
			slices.SortStableFunc(section, func(a, b *Item) int {
				return strings.Compare(a.Name(), b.Name())
			})
			if !yield(c, section) {
				return
			}
		}
	}
}
