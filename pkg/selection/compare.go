package selection

import "github.com/ghalymotors/showroom/pkg/catalog"

// NotApplicable is the matrix cell for a vehicle that has no spec with the
// row's label.
const NotApplicable = "N/A"

// MatrixRow is one feature row of the comparison table: the spec label plus
// one cell per compared vehicle, in selection order.
type MatrixRow struct {
	Label  string   `json:"label"`
	Values []string `json:"values"`
}

// Matrix is the side-by-side comparison of 2 or 3 vehicles.
type Matrix struct {
	Vehicles []catalog.Vehicle `json:"vehicles"`
	Rows     []MatrixRow       `json:"rows"`
}

// BuildMatrix builds the comparison matrix for the given vehicles. Rows are
// the union of the spec labels across all vehicles, deduplicated in
// first-seen order; a vehicle without a matching spec gets the N/A sentinel.
// Fewer than two vehicles returns ErrTooFewVehicles.
func BuildMatrix(vehicles []catalog.Vehicle) (*Matrix, error) {
	if len(vehicles) < 2 {
		return nil, ErrTooFewVehicles
	}

	seen := make(map[string]bool)
	var labels []string
	for _, v := range vehicles {
		for _, s := range v.Specs {
			if !seen[s.Label] {
				seen[s.Label] = true
				labels = append(labels, s.Label)
			}
		}
	}

	m := &Matrix{Vehicles: vehicles}
	for _, label := range labels {
		row := MatrixRow{Label: label}
		for _, v := range vehicles {
			row.Values = append(row.Values, specValue(v, label))
		}
		m.Rows = append(m.Rows, row)
	}
	return m, nil
}

// specValue returns the first spec value matching label, or the N/A sentinel.
func specValue(v catalog.Vehicle, label string) string {
	for _, s := range v.Specs {
		if s.Label == label {
			return s.Value
		}
	}
	return NotApplicable
}
