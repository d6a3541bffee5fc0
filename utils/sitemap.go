package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"time"

	"github.com/pierrenodet/lunium-site/config"
	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// WriteSitemap writes sitemap.xml for the site root and its doc pages into outDir.
func WriteSitemap(outDir string, cfg *config.SiteConfiguration, pages []config.DocPage, lastMod time.Time) error {
	xmlOutput, err := GenerateSitemapContent(cfg, pages, lastMod)
	if err != nil {
		return err
	}

	data := append([]byte(xml.Header), xmlOutput...)
	if err := os.WriteFile(filepath.Join(outDir, "sitemap.xml"), data, 0644); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func GenerateSitemapContent(cfg *config.SiteConfiguration, pages []config.DocPage, lastMod time.Time) ([]byte, error) {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	mod := lastMod.Format("2006-01-02")
	sitemap.Urls = append(sitemap.Urls, Url{
		Loc:      cfg.SiteRoot(),
		LastMod:  mod,
		Priority: "1.0",
	})

	for _, page := range pages {
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     cfg.DocURL(page.ID),
			LastMod: mod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return xmlOutput, nil
}
