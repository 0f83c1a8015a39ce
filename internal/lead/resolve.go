package lead

import (
	"net/url"
	"strings"
	"unicode"
)

// fallbackCompanyName is used when no usable host can be derived.
const fallbackCompanyName = "Company"

// CompanyName derives a display name from a company URL: the first DNS label
// of the host, minus any leading "www.", title-cased. Total over any string
// input; unusable URLs degrade to "Company".
func CompanyName(rawURL string) string {
	host := ""
	if parsed, err := url.Parse(rawURL); err == nil {
		host = parsed.Host
		if host == "" {
			host = parsed.Path
		}
	}
	if strings.HasPrefix(strings.ToLower(host), "www.") {
		host = host[4:]
	}
	label, _, _ := strings.Cut(host, ".")
	name := strings.TrimSpace(titleCase(label))
	if name == "" {
		return fallbackCompanyName
	}
	return name
}

// titleCase uppercases the first letter of each run of letters and lowercases
// the rest, so "acme-industries" becomes "Acme-Industries".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
