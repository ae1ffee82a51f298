// Package tracking derives acquisition-attribution metadata from the
// navigation context of a submission. Enrichment is a pure function of the
// request: it never blocks, never calls out, and never fails - a missing or
// malformed query string yields empty fields.
package tracking

import (
	"net/http"
	"net/url"
)

// Data holds the tracking fields captured at submission time.
type Data struct {
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
	Referrer    string `json:"referrer"`
	LandingPage string `json:"landing_page"`
}

// FromRequest derives tracking fields from an incoming HTTP request: UTM
// parameters from the query string and the referrer from the Referer
// header. The landing page is never derived server-side; the API request
// path is not the page the visitor landed on, so a body that omits it
// leaves the field blank.
func FromRequest(r *http.Request) Data {
	if r == nil || r.URL == nil {
		return Data{}
	}
	return FromURL(r.URL, r.Referer())
}

// FromURL derives tracking fields from a URL and a referrer value.
func FromURL(u *url.URL, referrer string) Data {
	if u == nil {
		return Data{}
	}

	// Query ignores malformed pairs rather than failing
	q := u.Query()
	return Data{
		UTMSource:   q.Get("utm_source"),
		UTMMedium:   q.Get("utm_medium"),
		UTMCampaign: q.Get("utm_campaign"),
		Referrer:    referrer,
	}
}

// Merge fills the blanks of primary with values from fallback. A client that
// captured tracking state at submission time wins over values derived
// server-side from the API request itself.
func Merge(primary, fallback Data) Data {
	if primary.UTMSource == "" {
		primary.UTMSource = fallback.UTMSource
	}
	if primary.UTMMedium == "" {
		primary.UTMMedium = fallback.UTMMedium
	}
	if primary.UTMCampaign == "" {
		primary.UTMCampaign = fallback.UTMCampaign
	}
	if primary.Referrer == "" {
		primary.Referrer = fallback.Referrer
	}
	if primary.LandingPage == "" {
		primary.LandingPage = fallback.LandingPage
	}
	return primary
}
