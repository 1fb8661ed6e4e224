// Package catalog loads and holds the vehicle inventory. The catalog is
// fetched exactly once per session and is read-only afterwards.
package catalog

import "fmt"

// Catalog is the immutable backing list for a session. Consumers must not
// mutate the vehicles it returns.
type Catalog struct {
	vehicles []Vehicle
	byID     map[int]int
}

// New builds a catalog from a loaded vehicle list, preserving order. The
// original order is the "popularity" order used by the default sort.
func New(vehicles []Vehicle) *Catalog {
	c := &Catalog{
		vehicles: vehicles,
		byID:     make(map[int]int, len(vehicles)),
	}
	for i, v := range vehicles {
		c.byID[v.ID] = i
	}
	return c
}

// Vehicles returns the full list in catalog order. The returned slice is
// shared; callers that need to reorder must copy it first.
func (c *Catalog) Vehicles() []Vehicle {
	return c.vehicles
}

// ByID returns the vehicle with the given id, or false if it is not in the
// catalog.
func (c *Catalog) ByID(id int) (Vehicle, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Vehicle{}, false
	}
	return c.vehicles[i], true
}

func (c *Catalog) Len() int {
	return len(c.vehicles)
}

// LoadError marks a catalog fetch or parse failure. It is permanent for the
// session: there is no retry and no partial-catalog fallback.
type LoadError struct {
	URL string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog from %s: %v", e.URL, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
