// Package selection holds the user-adjustable view state of the storefront:
// filters, sort, favorites, the compare list and the open vehicle. The state
// is an explicit object owned by its caller, never package-level globals, so
// it can be exercised directly in tests.
package selection

import (
	"sort"
	"sync"

	"github.com/ghalymotors/showroom/pkg/catalog"
)

// MaxCompare is the compare list bound.
const MaxCompare = 3

// Sort keys accepted by SetSortKey. Fuel economy and reliability are
// placeholder proxies: the catalog carries no real data for either, so they
// sort by model name and year respectively.
const (
	SortPopularity  = "popularity"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortFuelEconomy = "fuel-economy"
	SortReliability = "reliability"
)

// Store receives durable-state writes. Implementations must absorb their own
// failures: a persistence error never blocks or rolls back a mutation.
type Store interface {
	SaveFavorites(ids []int)
	SaveCompare(ids []int)
}

// Options configures a new State.
type Options struct {
	// Store receives favorites (and optionally compare list) writes.
	// Nil means session-only state.
	Store Store

	// PersistCompare selects the storefront variant that mirrors the
	// compare list to durable storage alongside favorites.
	PersistCompare bool

	// Catalog, when set, is used to validate vehicle ids on OpenVehicle.
	Catalog *catalog.Catalog

	// Favorites and Compare seed the state from a previous session.
	Favorites []int
	Compare   []int
}

// State is the mutable selection state for one storefront session. All
// methods are safe for concurrent use.
type State struct {
	mu sync.Mutex

	searchText      string
	activeMake      string
	activeBodyStyle string
	sortKey         string

	favorites     map[int]bool
	compareIDs    []int
	openVehicleID int // 0 = none

	store          Store
	persistCompare bool
	cat            *catalog.Catalog
}

// New builds a State seeded from opts. Compare entries beyond the bound are
// dropped, keeping the first MaxCompare.
func New(opts Options) *State {
	s := &State{
		sortKey:        SortPopularity,
		favorites:      make(map[int]bool),
		store:          opts.Store,
		persistCompare: opts.PersistCompare,
		cat:            opts.Catalog,
	}
	for _, id := range opts.Favorites {
		s.favorites[id] = true
	}
	for _, id := range opts.Compare {
		if len(s.compareIDs) == MaxCompare {
			break
		}
		if !containsID(s.compareIDs, id) {
			s.compareIDs = append(s.compareIDs, id)
		}
	}
	return s
}

// SetSearchText replaces the search text verbatim. Lower-casing happens at
// filter-evaluation time, not here.
func (s *State) SetSearchText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = text
}

// ToggleMakeFilter selects make as the single active make filter, or clears
// the filter when make is already active.
func (s *State) ToggleMakeFilter(make string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeMake == make {
		s.activeMake = ""
	} else {
		s.activeMake = make
	}
}

// ToggleBodyStyleFilter has the same single-select-with-deselect semantics as
// ToggleMakeFilter, independent of it.
func (s *State) ToggleBodyStyleFilter(style string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeBodyStyle == style {
		s.activeBodyStyle = ""
	} else {
		s.activeBodyStyle = style
	}
}

// SetSortKey replaces the sort key. Unrecognized keys fall back to
// popularity.
func (s *State) SetSortKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch key {
	case SortPopularity, SortPriceAsc, SortPriceDesc, SortFuelEconomy, SortReliability:
		s.sortKey = key
	default:
		s.sortKey = SortPopularity
	}
}

// ResetFilters reverts search, make, body style and sort to their defaults.
// Favorites and the compare list are untouched.
func (s *State) ResetFilters() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchText = ""
	s.activeMake = ""
	s.activeBodyStyle = ""
	s.sortKey = SortPopularity
}

// ToggleFavorite adds or removes id from the favorites set and persists the
// result. It reports whether the id is now favorited, so callers can pick
// the right notification message.
func (s *State) ToggleFavorite(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	favorited := !s.favorites[id]
	if favorited {
		s.favorites[id] = true
	} else {
		delete(s.favorites, id)
	}
	if s.store != nil {
		s.store.SaveFavorites(s.favoriteIDsLocked())
	}
	return favorited
}

// ToggleCompare removes id from the compare list if present, preserving the
// order of the rest. Otherwise it appends id, unless the list is already
// full: then it returns ErrCompareLimit and the state is unchanged, with no
// persistence write. The returned bool reports whether id is now compared.
func (s *State) ToggleCompare(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := indexOfID(s.compareIDs, id); i >= 0 {
		s.compareIDs = append(s.compareIDs[:i], s.compareIDs[i+1:]...)
		s.saveCompareLocked()
		return false, nil
	}
	if len(s.compareIDs) >= MaxCompare {
		return false, ErrCompareLimit
	}
	s.compareIDs = append(s.compareIDs, id)
	s.saveCompareLocked()
	return true, nil
}

// ClearCompare empties the compare list unconditionally.
func (s *State) ClearCompare() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.compareIDs = nil
	s.saveCompareLocked()
}

// OpenVehicle marks id as the vehicle whose detail panel is shown. Opening an
// id that is not in the catalog is a no-op.
func (s *State) OpenVehicle(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cat != nil {
		if _, ok := s.cat.ByID(id); !ok {
			return
		}
	}
	s.openVehicleID = id
}

// CloseVehicle clears the open vehicle.
func (s *State) CloseVehicle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.openVehicleID = 0
}

// Favorited reports whether id is in the favorites set.
func (s *State) Favorited(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[id]
}

// Compared reports whether id is in the compare list.
func (s *State) Compared(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return indexOfID(s.compareIDs, id) >= 0
}

// Favorites returns the favorited ids in ascending order.
func (s *State) Favorites() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favoriteIDsLocked()
}

// CompareIDs returns the compare list in insertion order.
func (s *State) CompareIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.compareIDs))
	copy(out, s.compareIDs)
	return out
}

// OpenVehicleID returns the open vehicle id and whether one is open.
func (s *State) OpenVehicleID() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openVehicleID, s.openVehicleID != 0
}

// SearchText returns the current search text.
func (s *State) SearchText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchText
}

// ActiveMake returns the active make filter, "" when unset.
func (s *State) ActiveMake() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeMake
}

// ActiveBodyStyle returns the active body-style filter, "" when unset.
func (s *State) ActiveBodyStyle() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeBodyStyle
}

// SortKey returns the active sort key.
func (s *State) SortKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortKey
}

func (s *State) favoriteIDsLocked() []int {
	ids := make([]int, 0, len(s.favorites))
	for id := range s.favorites {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (s *State) saveCompareLocked() {
	if s.store == nil || !s.persistCompare {
		return
	}
	ids := make([]int, len(s.compareIDs))
	copy(ids, s.compareIDs)
	s.store.SaveCompare(ids)
}

func containsID(ids []int, id int) bool {
	return indexOfID(ids, id) >= 0
}

func indexOfID(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
