package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func testParams(year int) Params {
	return Params{
		RepoURL: DefaultRepoURL,
		APIURL:  DefaultAPIURL,
		Now: func() time.Time {
			return time.Date(year, time.March, 14, 12, 0, 0, 0, time.UTC)
		},
	}
}

func loadDefault(t *testing.T) *SiteConfiguration {
	t.Helper()
	p := testParams(2026)
	cfg, err := Load(Default(p), p)
	require.NoError(t, err)
	return cfg
}

func TestLoadDefault(t *testing.T) {
	cfg := loadDefault(t)

	assert.Equal(t, "lunium", cfg.Title)
	assert.Equal(t, "/lunium/", cfg.BaseURL)
	assert.Equal(t, "img/noctali.png", cfg.HeaderIcon)
	assert.Equal(t, "img/umbreon.png", cfg.Favicon)
	assert.Equal(t, "#171717", cfg.Colors.PrimaryColor)
	assert.Equal(t, "Copyright © 2026 Pierre Nodet", cfg.Copyright)
	assert.Equal(t, DefaultRepoURL, cfg.RepoURL)
	assert.Equal(t, DefaultAPIURL, cfg.APIURL)
	assert.Equal(t, OnPageNavSeparate, cfg.OnPageNav)
	assert.True(t, cfg.CleanURL)

	require.Len(t, cfg.HeaderLinks, 3)
	assert.Equal(t, ExternalLink{Href: DefaultAPIURL, Label: "API Docs"}, cfg.HeaderLinks[0])
	assert.Equal(t, DocLink{Doc: "overview", Label: "Documentation"}, cfg.HeaderLinks[1])
	assert.Equal(t, ExternalLink{Href: DefaultRepoURL, Label: "GitHub"}, cfg.HeaderLinks[2])
}

func TestLoadCopyrightUsesClockAtCallTime(t *testing.T) {
	p2025 := testParams(2025)
	p2026 := testParams(2026)

	a, err := Load(Default(p2025), p2025)
	require.NoError(t, err)
	b, err := Load(Default(p2026), p2026)
	require.NoError(t, err)

	assert.Contains(t, a.Copyright, "2025")
	assert.Contains(t, b.Copyright, "2026")
	assert.NotEqual(t, a.Copyright, b.Copyright)
}

func TestLoadDefaultsToWallClock(t *testing.T) {
	p := Params{RepoURL: DefaultRepoURL, APIURL: DefaultAPIURL}
	cfg, err := Load(Default(p), p)
	require.NoError(t, err)
	assert.Contains(t, cfg.Copyright, time.Now().Format("2006"))
}

func TestLoadDoesNotShareSlicesWithDefinition(t *testing.T) {
	p := testParams(2026)
	def := Default(p)
	cfg, err := Load(def, p)
	require.NoError(t, err)

	def.Scripts[0] = "https://example.com/other.js"
	def.HeaderLinks[0] = DocLink{Doc: "x", Label: "x"}

	assert.Equal(t, "https://buttons.github.io/buttons.js", cfg.Scripts[0])
	assert.IsType(t, ExternalLink{}, cfg.HeaderLinks[0])
}

func TestLoadRejectsInvalidDefinition(t *testing.T) {
	p := testParams(2026)

	tests := []struct {
		name   string
		mutate func(*Definition)
		field  string
	}{
		{"empty title", func(d *Definition) { d.Title = "" }, "title"},
		{"empty owner", func(d *Definition) { d.CopyrightOwner = "" }, "copyrightOwner"},
		{"blank owner", func(d *Definition) { d.CopyrightOwner = "   " }, "copyrightOwner"},
		{"bad base url", func(d *Definition) { d.BaseURL = "lunium/" }, "baseUrl"},
		{"bad color", func(d *Definition) { d.Colors.SecondaryColor = "blue" }, "colors.secondaryColor"},
		{"broken link", func(d *Definition) { d.HeaderLinks = append(d.HeaderLinks, DocLink{Label: "Broken"}) }, "headerLinks[3].doc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := Default(p)
			tt.mutate(&def)

			cfg, err := Load(def, p)
			assert.Nil(t, cfg)

			var cerr *ConfigurationError
			require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %v", err)
			assert.Equal(t, tt.field, cerr.Field)
		})
	}
}

const siteYAML = `title: lunium
tagline: Tagless and bifunctor based library for WebDrivers
url: https://pierrenodet.github.io/lunium
baseUrl: /lunium/
projectName: lunium
organizationName: pierrenodet
customDocsPath: modules/lunium-docs/target/mdoc
headerLinks:
  - href: ${apiUrl}
    label: API Docs
  - doc: overview
    label: Documentation
  - href: ${repoUrl}
    label: GitHub
headerIcon: img/noctali.png
titleIcon: img/noctali.png
favicon: img/umbreon.png
colors:
  primaryColor: "#171717"
  secondaryColor: "#3D3D42"
copyrightOwner: Pierre Nodet
highlight:
  theme: github
scripts:
  - https://buttons.github.io/buttons.js
onPageNav: separate
separateCss:
  - api
cleanUrl: true
`

func TestLoadFileMatchesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(siteYAML), 0644))

	p := testParams(2026)
	fromFile, err := LoadFile(path, p)
	require.NoError(t, err)

	assert.Equal(t, loadDefault(t), fromFile)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), testParams(2026))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseDefinitionRejectsBrokenLink(t *testing.T) {
	data := []byte("title: x\nheaderLinks:\n  - label: Broken\n")

	_, err := ParseDefinition(data, testParams(2026))

	var cerr *ConfigurationError
	require.True(t, errors.As(err, &cerr), "expected ConfigurationError, got %v", err)
	assert.Equal(t, "headerLinks[0]", cerr.Field)
}

func TestParseDefinitionRejectsUnknownKeys(t *testing.T) {
	_, err := ParseDefinition([]byte("title: x\nheaderIcons: img/a.png\n"), testParams(2026))
	assert.Error(t, err)
}

func TestParseDefinitionKeepsUnknownPlaceholders(t *testing.T) {
	tests := []struct {
		name    string
		tagline string
	}{
		{"braced", "cost ${price}"},
		{"bare word", "pay with $cash"},
		{"digits", "Costs $10"},
		{"lone dollar", "cost in $"},
		{"unterminated", "A ${oops"},
		{"placeholder outside links", "see ${repoUrl}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := yaml.Marshal(map[string]string{"tagline": tt.tagline})
			require.NoError(t, err)

			def, err := ParseDefinition(data, testParams(2026))
			require.NoError(t, err)
			assert.Equal(t, tt.tagline, def.Tagline)
		})
	}
}

func TestParseDefinitionSubstitutesParams(t *testing.T) {
	p := testParams(2026)
	p.APIURL = "/api #v2"
	p.RepoURL = "https://example.com/$fork"
	data := []byte(`headerLinks:
  - href: ${apiUrl}
    label: API
  - href: ${repoUrl}/issues
    label: Issues
  - doc: overview
    label: Docs
scripts:
  - ${repoUrl}/buttons.js
`)

	def, err := ParseDefinition(data, p)
	require.NoError(t, err)

	assert.Equal(t, HeaderLinks{
		ExternalLink{Href: "/api #v2", Label: "API"},
		ExternalLink{Href: "https://example.com/$fork/issues", Label: "Issues"},
		DocLink{Doc: "overview", Label: "Docs"},
	}, def.HeaderLinks)
	assert.Equal(t, []string{"https://example.com/$fork/buttons.js"}, def.Scripts)
}

func TestSiteConfigurationJSONRoundTrip(t *testing.T) {
	cfg := loadDefault(t)

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded SiteConfiguration
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
	assert.NoError(t, Validate(&decoded))
}

func TestSiteConfigurationYAMLRoundTrip(t *testing.T) {
	cfg := loadDefault(t)

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	var decoded SiteConfiguration
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestSiteConfigurationRoundTripWithoutLists(t *testing.T) {
	p := testParams(2026)
	def := Default(p)
	def.HeaderLinks = nil
	def.Scripts = nil
	def.SeparateCSS = nil
	cfg, err := Load(def, p)
	require.NoError(t, err)

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	var fromYAML SiteConfiguration
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, *cfg, fromYAML)

	data, err = json.Marshal(cfg)
	require.NoError(t, err)
	var fromJSON SiteConfiguration
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, *cfg, fromJSON)
}
