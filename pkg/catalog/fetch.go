package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"
)

const userAgent = "showroom-catalog-client/1.0"

// Fetcher performs the one-time catalog load. The underlying client does not
// retry: a failed load is permanent for the session and the caller renders a
// fixed error state instead.
type Fetcher struct {
	URL    string
	client *retryablehttp.Client
}

// NewFetcher builds a fetcher for the given catalog resource.
func NewFetcher(url string) *Fetcher {
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.Logger = nil
	return &Fetcher{URL: url, client: client}
}

// Fetch performs exactly one GET of the catalog resource and parses the
// vehicle list. The resource is either a JSON array of vehicle records or an
// HTML showroom page carrying the same JSON in a script#vehicle-data element.
// Any non-success response or parse failure returns a *LoadError.
func (f *Fetcher) Fetch(ctx context.Context) (*Catalog, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, &LoadError{URL: f.URL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &LoadError{URL: f.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{URL: f.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{URL: f.URL, Err: err}
	}

	var vehicles []Vehicle
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		vehicles, err = parseHTML(string(body))
	} else {
		vehicles, err = parseJSON(string(body))
	}
	if err != nil {
		return nil, &LoadError{URL: f.URL, Err: err}
	}
	return New(vehicles), nil
}

// parseJSON decodes a JSON array of vehicle records.
func parseJSON(body string) ([]Vehicle, error) {
	parsed := gjson.Parse(body)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("catalog body is not a JSON array")
	}

	var vehicles []Vehicle
	for _, rec := range parsed.Array() {
		v, err := decodeVehicle(rec)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, nil
}

// parseHTML extracts the vehicle JSON embedded in a showroom page. Spec
// values scraped this way may carry markup, so they are stripped down to
// plain text.
func parseHTML(body string) ([]Vehicle, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing showroom page: %w", err)
	}

	payload := doc.Find("script#vehicle-data").First().Text()
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("showroom page has no vehicle-data element")
	}

	vehicles, err := parseJSON(payload)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		for j, s := range vehicles[i].Specs {
			vehicles[i].Specs[j].Value = strings.TrimSpace(strip.StripTags(s.Value))
		}
	}
	return vehicles, nil
}

func decodeVehicle(rec gjson.Result) (Vehicle, error) {
	id := rec.Get("id")
	if !id.Exists() {
		return Vehicle{}, fmt.Errorf("vehicle record missing id: %s", rec.Raw)
	}

	v := Vehicle{
		ID:        int(id.Int()),
		Make:      rec.Get("make").String(),
		Model:     rec.Get("model").String(),
		Year:      int(rec.Get("year").Int()),
		Mileage:   rec.Get("mileage").Float(),
		Price:     rec.Get("price").Float(),
		Type:      rec.Get("type").String(),
		Thumbnail: rec.Get("thumbnail").String(),
	}
	for _, t := range rec.Get("tags").Array() {
		v.Tags = append(v.Tags, t.String())
	}
	for _, s := range rec.Get("specs").Array() {
		v.Specs = append(v.Specs, Spec{
			Label: s.Get("label").String(),
			Value: s.Get("value").String(),
		})
	}
	for _, img := range rec.Get("images").Array() {
		v.Images = append(v.Images, img.String())
	}
	return v, nil
}
