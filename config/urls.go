package config

import (
	"net/url"
	"strings"
)

// Origin is the scheme and host of url. Any path in url is ignored since
// baseUrl carries the site path.
func (c *SiteConfiguration) Origin() string {
	u, err := url.Parse(c.URL)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(c.URL, "/")
	}
	return u.Scheme + "://" + u.Host
}

// SiteRoot is the absolute URL of the site, always ending in a slash.
func (c *SiteConfiguration) SiteRoot() string {
	return c.Origin() + c.BaseURL
}

// PagePath is the root-relative path of a generated page. Without cleanUrl
// pages carry a .html suffix.
func (c *SiteConfiguration) PagePath(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return c.BaseURL
	}
	if !c.CleanURL && !strings.HasSuffix(p, ".html") && !strings.HasSuffix(p, "/") {
		p += ".html"
	}
	return c.BaseURL + p
}

// DocPath is the root-relative path of the doc page with the given id.
func (c *SiteConfiguration) DocPath(id string) string {
	return c.PagePath("docs/" + id)
}

// PageURL is the absolute URL of a generated page.
func (c *SiteConfiguration) PageURL(p string) string {
	return c.Origin() + c.PagePath(p)
}

// DocURL is the absolute URL of the doc page with the given id.
func (c *SiteConfiguration) DocURL(id string) string {
	return c.PageURL("docs/" + id)
}

// AssetPath is the root-relative path of a static asset.
func (c *SiteConfiguration) AssetPath(asset string) string {
	return c.BaseURL + assetPath(asset)
}

// LinkHref resolves a header link to the href rendered in navigation.
func (c *SiteConfiguration) LinkHref(link HeaderLink) string {
	switch l := link.(type) {
	case ExternalLink:
		return l.Href
	case DocLink:
		return c.DocPath(l.Doc)
	default:
		return ""
	}
}
