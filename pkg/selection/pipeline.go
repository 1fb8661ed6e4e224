package selection

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ghalymotors/showroom/pkg/catalog"
)

// VisibleList computes the ordered list of vehicles the view should show for
// the current state. It is a pure function of its inputs: the catalog is
// never mutated and sorting operates on a copy, so it is safe to call on
// every keystroke.
//
// All active filters combine with AND, then the sort key is applied. Equal
// sort keys keep their filtered order (stable sort); popularity keeps the
// catalog order untouched.
func VisibleList(c *catalog.Catalog, s *State) []catalog.Vehicle {
	s.mu.Lock()
	search := strings.ToLower(s.searchText)
	activeMake := s.activeMake
	activeStyle := s.activeBodyStyle
	sortKey := s.sortKey
	s.mu.Unlock()

	visible := make([]catalog.Vehicle, 0, c.Len())
	for _, v := range c.Vehicles() {
		if !matchesSearch(v, search) {
			continue
		}
		if activeMake != "" && v.Make != activeMake {
			continue
		}
		if activeStyle != "" && catalog.DeriveBodyStyle(v.Type) != activeStyle {
			continue
		}
		visible = append(visible, v)
	}

	switch sortKey {
	case SortPriceAsc:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Price < visible[j].Price })
	case SortPriceDesc:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Price > visible[j].Price })
	case SortFuelEconomy:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Model < visible[j].Model })
	case SortReliability:
		sort.SliceStable(visible, func(i, j int) bool { return visible[i].Year > visible[j].Year })
	}

	return visible
}

// matchesSearch reports whether the lower-cased search term is a substring of
// the vehicle's make, model or year. An empty term matches everything.
func matchesSearch(v catalog.Vehicle, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(v.Make), term) ||
		strings.Contains(strings.ToLower(v.Model), term) ||
		strings.Contains(strconv.Itoa(v.Year), term)
}
