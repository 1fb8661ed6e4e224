package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleJSON = `[
  {
    "id": 1,
    "make": "BMW",
    "model": "X5",
    "year": 2022,
    "mileage": 12000,
    "price": 500000,
    "type": "SUV",
    "tags": ["Certified", "Top Safety Pick"],
    "specs": [
      {"label": "Engine", "value": "3.0L I6"},
      {"label": "Drivetrain", "value": "AWD"}
    ],
    "images": ["/img/x5-1.jpg", "/img/x5-2.jpg"],
    "thumbnail": "/img/x5-thumb.jpg"
  },
  {
    "id": 2,
    "make": "BYD",
    "model": "Seal",
    "year": 2023,
    "mileage": 500,
    "price": 300000,
    "type": "Sedan",
    "tags": [],
    "specs": [{"label": "Range", "value": "570 km"}],
    "images": [],
    "thumbnail": "/img/seal-thumb.jpg"
  }
]`

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleJSON))
	}))
	defer srv.Close()

	c, err := NewFetcher(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 vehicles, got %d", c.Len())
	}

	v, ok := c.ByID(1)
	if !ok {
		t.Fatal("vehicle 1 missing")
	}
	if v.Make != "BMW" || v.Model != "X5" || v.Year != 2022 || v.Price != 500000 {
		t.Fatalf("unexpected vehicle: %+v", v)
	}
	if len(v.Tags) != 2 || len(v.Specs) != 2 || len(v.Images) != 2 {
		t.Fatalf("collections not decoded: %+v", v)
	}
	if v.Specs[0] != (Spec{Label: "Engine", Value: "3.0L I6"}) {
		t.Fatalf("unexpected spec: %+v", v.Specs[0])
	}
}

func TestFetchHTMLShowroomPage(t *testing.T) {
	page := `<html><head><title>Showroom</title></head><body>
		<script id="vehicle-data" type="application/json">[
			{"id": 3, "make": "BMW", "model": "M4", "year": 2022, "price": 650000, "type": "Convertible",
			 "specs": [{"label": "Engine", "value": "<b>3.0L</b> twin-turbo"}]}
		]</script>
	</body></html>`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer srv.Close()

	c, err := NewFetcher(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := c.ByID(3)
	if !ok {
		t.Fatal("vehicle 3 missing")
	}
	// Markup in scraped spec values gets stripped.
	if v.Specs[0].Value != "3.0L twin-turbo" {
		t.Fatalf("expected stripped spec value, got %q", v.Specs[0].Value)
	}
}

func TestFetchFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"not an array", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"vehicles": []}`))
		}},
		{"record without id", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"make": "BMW"}]`))
		}},
		{"html without vehicle data", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(`<html><body>nothing here</body></html>`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewFetcher(srv.URL).Fetch(context.Background())
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected *LoadError, got %v", err)
			}
		})
	}
}

func TestFetchUnreachable(t *testing.T) {
	// Closed server: the fetch fails permanently, no retry.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewFetcher(srv.URL).Fetch(context.Background())
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}
}

func TestFetchEmptyCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewFetcher(srv.URL).Fetch(context.Background())
	if err != nil {
		t.Fatalf("empty catalog is not an error: %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d", c.Len())
	}
}
