package wizard

import (
	"net/url"

	"github.com/kaptureops/lead-intake/internal/leads"
)

// utmParams are the query parameters captured from the landing page URL.
var utmParams = []string{"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content"}

// CollectAttribution extracts marketing attribution from the page context:
// the five UTM query parameters, the referrer, and the full landing-page
// URL. Absent values stay nil so the persistence layer never stores an
// empty string for them.
func CollectAttribution(pageURL, referrer string) leads.Attribution {
	var attr leads.Attribution

	if referrer != "" {
		attr.Referrer = &referrer
	}

	if pageURL == "" {
		return attr
	}
	attr.LandingPage = &pageURL

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return attr
	}

	query := parsed.Query()
	assign := func(dst **string, key string) {
		if query.Has(key) {
			v := query.Get(key)
			*dst = &v
		}
	}
	assign(&attr.UTMSource, utmParams[0])
	assign(&attr.UTMMedium, utmParams[1])
	assign(&attr.UTMCampaign, utmParams[2])
	assign(&attr.UTMTerm, utmParams[3])
	assign(&attr.UTMContent, utmParams[4])

	return attr
}
