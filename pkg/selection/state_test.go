package selection

import (
	"errors"
	"testing"
)

// recordingStore captures persistence writes for assertions.
type recordingStore struct {
	favorites    [][]int
	compareLists [][]int
}

func (r *recordingStore) SaveFavorites(ids []int) {
	r.favorites = append(r.favorites, ids)
}

func (r *recordingStore) SaveCompare(ids []int) {
	r.compareLists = append(r.compareLists, ids)
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	store := &recordingStore{}
	s := New(Options{Store: store})

	if !s.ToggleFavorite(5) {
		t.Fatal("first toggle should favorite the vehicle")
	}
	if !s.Favorited(5) {
		t.Fatal("vehicle 5 should be favorited")
	}
	if s.ToggleFavorite(5) {
		t.Fatal("second toggle should unfavorite the vehicle")
	}
	if s.Favorited(5) {
		t.Fatal("vehicle 5 should no longer be favorited")
	}
	if len(s.Favorites()) != 0 {
		t.Fatalf("favorites should be empty, got %v", s.Favorites())
	}

	// Both directions persist.
	if len(store.favorites) != 2 {
		t.Fatalf("expected 2 persistence writes, got %d", len(store.favorites))
	}
	if len(store.favorites[0]) != 1 || store.favorites[0][0] != 5 {
		t.Fatalf("first write should contain [5], got %v", store.favorites[0])
	}
	if len(store.favorites[1]) != 0 {
		t.Fatalf("second write should be empty, got %v", store.favorites[1])
	}
}

func TestToggleCompareLimit(t *testing.T) {
	s := New(Options{Compare: []int{1, 2, 3}})

	_, err := s.ToggleCompare(4)
	if !errors.Is(err, ErrCompareLimit) {
		t.Fatalf("expected ErrCompareLimit, got %v", err)
	}
	if got := s.CompareIDs(); !equalIDs(got, []int{1, 2, 3}) {
		t.Fatalf("compare list must be unchanged, got %v", got)
	}
}

func TestCompareLimitWritesNothing(t *testing.T) {
	store := &recordingStore{}
	s := New(Options{Store: store, PersistCompare: true, Compare: []int{1, 2, 3}})

	if _, err := s.ToggleCompare(4); err == nil {
		t.Fatal("expected an error on the 4th compare add")
	}
	if len(store.compareLists) != 0 {
		t.Fatalf("a failed add must not persist, got %d writes", len(store.compareLists))
	}
}

func TestToggleCompareRemovePreservesOrder(t *testing.T) {
	s := New(Options{Compare: []int{1, 2, 3}})

	added, err := s.ToggleCompare(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatal("toggling a present id should remove it")
	}
	if got := s.CompareIDs(); !equalIDs(got, []int{1, 3}) {
		t.Fatalf("expected [1 3], got %v", got)
	}

	// There is room again.
	if _, err := s.ToggleCompare(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.CompareIDs(); !equalIDs(got, []int{1, 3, 4}) {
		t.Fatalf("expected [1 3 4], got %v", got)
	}
}

func TestComparePersistenceVariants(t *testing.T) {
	t.Run("persisting variant", func(t *testing.T) {
		store := &recordingStore{}
		s := New(Options{Store: store, PersistCompare: true})
		s.ToggleCompare(1)
		s.ClearCompare()
		if len(store.compareLists) != 2 {
			t.Fatalf("expected 2 compare writes, got %d", len(store.compareLists))
		}
	})

	t.Run("session-only variant", func(t *testing.T) {
		store := &recordingStore{}
		s := New(Options{Store: store, PersistCompare: false})
		s.ToggleCompare(1)
		s.ClearCompare()
		if len(store.compareLists) != 0 {
			t.Fatalf("expected no compare writes, got %d", len(store.compareLists))
		}
	})
}

func TestResetFilters(t *testing.T) {
	s := New(Options{Favorites: []int{7}, Compare: []int{8}})
	s.SetSearchText("bmw")
	s.ToggleMakeFilter("BMW")
	s.ToggleBodyStyleFilter("SUV")
	s.SetSortKey(SortPriceDesc)

	s.ResetFilters()

	if s.SearchText() != "" || s.ActiveMake() != "" || s.ActiveBodyStyle() != "" {
		t.Fatal("filters should be cleared")
	}
	if s.SortKey() != SortPopularity {
		t.Fatalf("sort should revert to popularity, got %q", s.SortKey())
	}
	if !s.Favorited(7) {
		t.Fatal("reset must not touch favorites")
	}
	if got := s.CompareIDs(); !equalIDs(got, []int{8}) {
		t.Fatalf("reset must not touch the compare list, got %v", got)
	}

	// Idempotent.
	s.ResetFilters()
	if s.SearchText() != "" || s.SortKey() != SortPopularity {
		t.Fatal("repeated reset changed state")
	}
}

func TestOpenVehicle(t *testing.T) {
	c := testCatalog()
	s := New(Options{Catalog: c})

	s.OpenVehicle(3)
	if id, ok := s.OpenVehicleID(); !ok || id != 3 {
		t.Fatalf("expected open vehicle 3, got %d (open=%v)", id, ok)
	}

	// Unknown id is a no-op.
	s.OpenVehicle(999)
	if id, _ := s.OpenVehicleID(); id != 3 {
		t.Fatalf("opening an unknown id must not change state, got %d", id)
	}

	s.CloseVehicle()
	if _, ok := s.OpenVehicleID(); ok {
		t.Fatal("expected no open vehicle after close")
	}
}

func TestNewDropsExcessSeedCompareEntries(t *testing.T) {
	s := New(Options{Compare: []int{1, 2, 3, 4, 2}})
	if got := s.CompareIDs(); !equalIDs(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
}
