package urlhandler

import (
	"net/url"
	"strings"

	"ticketwatch/internal/common"
)

// ValidateURLFormat checks that a string parses as an absolute http(s) URL.
func ValidateURLFormat(rawURL string) error {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return common.WrapErrorf(err, "invalid URL '%s'", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return common.NewError("URL '%s' must use http or https", rawURL)
	}
	if u.Host == "" {
		return common.NewError("URL '%s' has no host", rawURL)
	}
	return nil
}

// ResolveURL turns an extracted href into an absolute URL relative to the
// page it was found on. Absolute values pass through, protocol-relative
// values get https:, root-relative values keep the base's scheme and host,
// and anything else is joined onto the base with a single separating slash.
func ResolveURL(baseURL, href string) string {
	href = strings.TrimSpace(href)
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	if strings.HasPrefix(href, "/") {
		if u, err := url.Parse(baseURL); err == nil && u.Scheme != "" && u.Host != "" {
			return u.Scheme + "://" + u.Host + href
		}
		return strings.TrimSuffix(baseURL, "/") + href
	}
	return strings.TrimSuffix(baseURL, "/") + "/" + strings.TrimPrefix(href, "/")
}
