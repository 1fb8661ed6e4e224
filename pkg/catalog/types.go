package catalog

// Spec is a single labeled specification value (e.g. "Engine" / "3.0L I6").
// Labels are not guaranteed to be unique across vehicles.
type Spec struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Vehicle is a single catalog record. Vehicles are immutable after load;
// everything downstream references them by ID, never by pointer identity.
type Vehicle struct {
	ID        int      `json:"id"`
	Make      string   `json:"make"`
	Model     string   `json:"model"`
	Year      int      `json:"year"`
	Mileage   float64  `json:"mileage"`
	Price     float64  `json:"price"`
	Type      string   `json:"type"`
	Tags      []string `json:"tags"`
	Specs     []Spec   `json:"specs"`
	Images    []string `json:"images"`
	Thumbnail string   `json:"thumbnail"`
}

// Body styles the storefront filters on.
const (
	BodyStyleSUV   = "SUV"
	BodyStyleSedan = "Sedan"
	BodyStyleTruck = "Truck"
	BodyStyleCoupe = "Coupe"
)

// DeriveBodyStyle maps a vehicle type to its filter bucket. Anything that is
// not an SUV, Sedan or Truck collapses into the Coupe bucket, including
// unrecognized types. This matches the storefront's bucketing rule exactly.
func DeriveBodyStyle(vehicleType string) string {
	switch vehicleType {
	case BodyStyleSUV:
		return BodyStyleSUV
	case BodyStyleSedan:
		return BodyStyleSedan
	case BodyStyleTruck:
		return BodyStyleTruck
	default:
		return BodyStyleCoupe
	}
}
