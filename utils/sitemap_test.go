package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pierrenodet/lunium-site/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.SiteConfiguration {
	t.Helper()
	p := config.Params{RepoURL: config.DefaultRepoURL, APIURL: config.DefaultAPIURL}
	cfg, err := config.Load(config.Default(p), p)
	require.NoError(t, err)
	return cfg
}

func TestGenerateSitemapContent(t *testing.T) {
	cfg := testConfig(t)
	pages := []config.DocPage{{ID: "overview"}, {ID: "guides/selectors"}}
	lastMod := time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)

	out, err := GenerateSitemapContent(cfg, pages, lastMod)
	require.NoError(t, err)

	var sitemap Sitemap
	require.NoError(t, xml.Unmarshal(out, &sitemap))
	require.Len(t, sitemap.Urls, 3)
	assert.Equal(t, "https://pierrenodet.github.io/lunium/", sitemap.Urls[0].Loc)
	assert.Equal(t, "https://pierrenodet.github.io/lunium/docs/overview", sitemap.Urls[1].Loc)
	assert.Equal(t, "https://pierrenodet.github.io/lunium/docs/guides/selectors", sitemap.Urls[2].Loc)
	assert.Equal(t, "2026-10-17", sitemap.Urls[1].LastMod)
}

func TestWriteSitemap(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(t)

	require.NoError(t, WriteSitemap(dir, cfg, nil, time.Now()))

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), xml.Header))
	assert.Contains(t, string(data), "<loc>https://pierrenodet.github.io/lunium/</loc>")
}
