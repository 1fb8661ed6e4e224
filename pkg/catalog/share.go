package catalog

import "fmt"

// ShareInfo is the shareable summary for a single vehicle.
type ShareInfo struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareMessage builds the share text and deep link for a vehicle.
func ShareMessage(v Vehicle, baseURL, currency, company string) ShareInfo {
	return ShareInfo{
		Title: fmt.Sprintf("%s %s", v.Make, v.Model),
		Text: fmt.Sprintf("Check out this %d %s %s for %s%s at %s!",
			v.Year, v.Make, v.Model, currency, FormatNumber(v.Price), company),
		URL: fmt.Sprintf("%s?car=%d", baseURL, v.ID),
	}
}
