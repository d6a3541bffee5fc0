package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	DefaultRepoURL = "https://github.com/pierrenodet/lunium"
	DefaultAPIURL  = "/lunium/api/lunium/index.html"
)

// Params are the values a build passes in when constructing the configuration.
type Params struct {
	RepoURL string
	APIURL  string
	// Now supplies the clock used for the copyright year. Defaults to time.Now.
	Now func() time.Time
}

func (p Params) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

// Default returns the lunium site definition.
func Default(p Params) Definition {
	return Definition{
		Title:            "lunium",
		Tagline:          "Tagless and bifunctor based library for WebDrivers",
		URL:              "https://pierrenodet.github.io/lunium",
		BaseURL:          "/lunium/",
		ProjectName:      "lunium",
		OrganizationName: "pierrenodet",
		CustomDocsPath:   "modules/lunium-docs/target/mdoc",
		HeaderLinks: HeaderLinks{
			ExternalLink{Href: p.APIURL, Label: "API Docs"},
			DocLink{Doc: "overview", Label: "Documentation"},
			ExternalLink{Href: p.RepoURL, Label: "GitHub"},
		},
		HeaderIcon: "img/noctali.png",
		TitleIcon:  "img/noctali.png",
		Favicon:    "img/umbreon.png",
		Colors: Colors{
			PrimaryColor:   "#171717",
			SecondaryColor: "#3D3D42",
		},
		CopyrightOwner: "Pierre Nodet",
		Highlight:      Highlight{Theme: "github"},
		Scripts:        []string{"https://buttons.github.io/buttons.js"},
		OnPageNav:      OnPageNavSeparate,
		SeparateCSS:    []string{"api"},
		CleanURL:       true,
	}
}

// Load resolves def into a validated SiteConfiguration. The copyright year
// is taken from the clock at call time.
func Load(def Definition, p Params) (*SiteConfiguration, error) {
	cfg := &SiteConfiguration{
		Title:            def.Title,
		Tagline:          def.Tagline,
		URL:              def.URL,
		BaseURL:          def.BaseURL,
		ProjectName:      def.ProjectName,
		OrganizationName: def.OrganizationName,
		CustomDocsPath:   def.CustomDocsPath,
		HeaderLinks:      append(HeaderLinks(nil), def.HeaderLinks...),
		HeaderIcon:       def.HeaderIcon,
		TitleIcon:        def.TitleIcon,
		Favicon:          def.Favicon,
		Colors:           def.Colors,
		Copyright:        copyright(p.now(), def.CopyrightOwner),
		Highlight:        def.Highlight,
		Scripts:          append([]string(nil), def.Scripts...),
		OnPageNav:        def.OnPageNav,
		SeparateCSS:      append([]string(nil), def.SeparateCSS...),
		CleanURL:         def.CleanURL,
		RepoURL:          p.RepoURL,
		APIURL:           p.APIURL,
	}

	if strings.TrimSpace(def.CopyrightOwner) == "" {
		return nil, fieldError("copyrightOwner", "", "must not be empty")
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func copyright(now time.Time, owner string) string {
	return fmt.Sprintf("Copyright © %d %s", now.Year(), owner)
}

// LoadFile reads a YAML definition from path and resolves it with Load.
// ${repoUrl} and ${apiUrl} in header link hrefs and scripts are replaced with
// the values from p.
func LoadFile(path string, p Params) (*SiteConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	def, err := ParseDefinition(data, p)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	return Load(def, p)
}

// ParseDefinition decodes a YAML definition, then replaces the exact
// ${repoUrl} and ${apiUrl} tokens in header link hrefs and scripts with the
// values from p. Any other $ is kept as written.
func ParseDefinition(data []byte, p Params) (Definition, error) {
	var def Definition
	if err := yaml.UnmarshalStrict(data, &def); err != nil {
		return Definition{}, err
	}

	expand := strings.NewReplacer("${repoUrl}", p.RepoURL, "${apiUrl}", p.APIURL).Replace
	for i, link := range def.HeaderLinks {
		if l, ok := link.(ExternalLink); ok {
			l.Href = expand(l.Href)
			def.HeaderLinks[i] = l
		}
	}
	for i, script := range def.Scripts {
		def.Scripts[i] = expand(script)
	}
	return def, nil
}
