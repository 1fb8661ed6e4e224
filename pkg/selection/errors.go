package selection

import "errors"

var (
	// ErrCompareLimit is returned when a vehicle is added to an already
	// full compare list. The list is left unchanged.
	ErrCompareLimit = errors.New("compare list is full")

	// ErrTooFewVehicles is returned when a comparison matrix is requested
	// for fewer than two vehicles.
	ErrTooFewVehicles = errors.New("at least 2 vehicles are required for comparison")
)
