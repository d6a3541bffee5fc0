package config

import (
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var (
	hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	urlSafePattern  = regexp.MustCompile(`^[A-Za-z0-9._~-]+$`)
)

// Validate checks field presence and shape, returning the first problem found
// as a *ConfigurationError.
func Validate(cfg *SiteConfiguration) error {
	if cfg == nil {
		return fieldError("config", "", "is nil")
	}

	checks := []func(*SiteConfiguration) error{
		validateRequired,
		validateURLs,
		validateNames,
		validatePaths,
		validateHeaderLinks,
		validateColors,
		validateScripts,
		validatePresentation,
	}
	for _, check := range checks {
		if err := check(cfg); err != nil {
			return err
		}
	}
	return nil
}

func validateRequired(cfg *SiteConfiguration) error {
	required := []struct {
		field string
		value string
	}{
		{"title", cfg.Title},
		{"tagline", cfg.Tagline},
		{"url", cfg.URL},
		{"baseUrl", cfg.BaseURL},
		{"projectName", cfg.ProjectName},
		{"organizationName", cfg.OrganizationName},
		{"customDocsPath", cfg.CustomDocsPath},
		{"headerIcon", cfg.HeaderIcon},
		{"titleIcon", cfg.TitleIcon},
		{"favicon", cfg.Favicon},
		{"colors.primaryColor", cfg.Colors.PrimaryColor},
		{"colors.secondaryColor", cfg.Colors.SecondaryColor},
		{"copyright", cfg.Copyright},
		{"highlight.theme", cfg.Highlight.Theme},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fieldError(r.field, "", "must not be empty")
		}
	}
	return nil
}

func validateURLs(cfg *SiteConfiguration) error {
	if !isAbsoluteURL(cfg.URL) {
		return fieldError("url", cfg.URL, "must be an absolute http(s) URL")
	}
	if !ValidBaseURL(cfg.BaseURL) {
		return fieldError("baseUrl", cfg.BaseURL, "must start and end with /")
	}
	return nil
}

// ValidBaseURL reports whether s is a root-relative path starting and ending
// with a slash.
func ValidBaseURL(s string) bool {
	return strings.HasPrefix(s, "/") && strings.HasSuffix(s, "/") && !strings.ContainsAny(s, " ?#")
}

// ValidHexColor reports whether s is # followed by 3, 6 or 8 hex digits.
func ValidHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

func isAbsoluteURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateNames(cfg *SiteConfiguration) error {
	if !urlSafePattern.MatchString(cfg.ProjectName) {
		return fieldError("projectName", cfg.ProjectName, "must be URL-safe")
	}
	if !urlSafePattern.MatchString(cfg.OrganizationName) {
		return fieldError("organizationName", cfg.OrganizationName, "must be URL-safe")
	}
	return nil
}

func validatePaths(cfg *SiteConfiguration) error {
	if isAbsolutePath(cfg.CustomDocsPath) {
		return fieldError("customDocsPath", cfg.CustomDocsPath, "must be a relative path")
	}

	assets := []struct {
		field string
		value string
	}{
		{"headerIcon", cfg.HeaderIcon},
		{"titleIcon", cfg.TitleIcon},
		{"favicon", cfg.Favicon},
	}
	for _, a := range assets {
		if isAbsolutePath(a.value) || strings.Contains(a.value, "://") {
			return fieldError(a.field, a.value, "must be a relative path")
		}
	}
	return nil
}

func isAbsolutePath(p string) bool {
	return filepath.IsAbs(p) || path.IsAbs(filepath.ToSlash(p))
}

func validateHeaderLinks(cfg *SiteConfiguration) error {
	for i, link := range cfg.HeaderLinks {
		field := fmt.Sprintf("headerLinks[%d]", i)
		switch l := link.(type) {
		case ExternalLink:
			if strings.TrimSpace(l.Href) == "" {
				return fieldError(field+".href", "", "must not be empty")
			}
		case DocLink:
			if strings.TrimSpace(l.Doc) == "" {
				return fieldError(field+".doc", "", "must not be empty")
			}
		default:
			return fieldError(field, "", "must be an href link or a doc link")
		}
		if strings.TrimSpace(link.LinkLabel()) == "" {
			return fieldError(field+".label", "", "must not be empty")
		}
	}
	return nil
}

func validateColors(cfg *SiteConfiguration) error {
	if !ValidHexColor(cfg.Colors.PrimaryColor) {
		return fieldError("colors.primaryColor", cfg.Colors.PrimaryColor, "must be a hex color")
	}
	if !ValidHexColor(cfg.Colors.SecondaryColor) {
		return fieldError("colors.secondaryColor", cfg.Colors.SecondaryColor, "must be a hex color")
	}
	return nil
}

func validateScripts(cfg *SiteConfiguration) error {
	for i, s := range cfg.Scripts {
		if !isAbsoluteURL(s) {
			return fieldError(fmt.Sprintf("scripts[%d]", i), s, "must be an absolute http(s) URL")
		}
	}
	return nil
}

func validatePresentation(cfg *SiteConfiguration) error {
	switch cfg.OnPageNav {
	case OnPageNavNone, OnPageNavSeparate:
	default:
		return fieldError("onPageNav", string(cfg.OnPageNav), "allowed: separate")
	}
	for i, css := range cfg.SeparateCSS {
		if strings.TrimSpace(css) == "" {
			return fieldError(fmt.Sprintf("separateCss[%d]", i), "", "must not be empty")
		}
	}
	return nil
}
