package handlers

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gobuffalo/plush"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pierrenodet/lunium-site/config"
	"github.com/pkg/errors"
)

//go:embed templates/*.plush.html
var templates embed.FS

type navLink struct {
	Href  string
	Label string
}

type docEntry struct {
	Href  string
	Title string
}

// layoutContext exposes the branding fields of cfg to the plush templates.
func layoutContext(cfg *config.SiteConfiguration, pageTitle string) *plush.Context {
	ctx := plush.NewContext()

	links := make([]navLink, 0, len(cfg.HeaderLinks))
	for _, link := range cfg.HeaderLinks {
		links = append(links, navLink{Href: cfg.LinkHref(link), Label: link.LinkLabel()})
	}

	if pageTitle == "" {
		pageTitle = cfg.Title
	} else {
		pageTitle = pageTitle + " · " + cfg.Title
	}

	ctx.Set("pageTitle", pageTitle)
	ctx.Set("title", cfg.Title)
	ctx.Set("tagline", cfg.Tagline)
	ctx.Set("home", cfg.BaseURL)
	ctx.Set("links", links)
	ctx.Set("headerIcon", cfg.AssetPath(cfg.HeaderIcon))
	ctx.Set("titleIcon", cfg.AssetPath(cfg.TitleIcon))
	ctx.Set("favicon", cfg.AssetPath(cfg.Favicon))
	ctx.Set("primaryColor", cfg.Colors.PrimaryColor)
	ctx.Set("secondaryColor", cfg.Colors.SecondaryColor)
	ctx.Set("copyright", cfg.Copyright)
	ctx.Set("scripts", cfg.Scripts)

	return ctx
}

func renderPlushTemplate(name string, ctx *plush.Context) (string, error) {
	content, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.WithStack(err)
	}

	template, err := plush.Parse(string(content))
	if err != nil {
		return "", errors.Wrapf(err, "parsing %s", name)
	}

	out, err := template.Exec(ctx)
	if err != nil {
		return "", errors.Wrapf(err, "executing %s", name)
	}
	return out, nil
}

// renderPage renders the named body template, then wraps it in the layout.
func renderPage(cfg *config.SiteConfiguration, pageTitle, name string, vars map[string]interface{}) (string, error) {
	ctx := layoutContext(cfg, pageTitle)
	for k, v := range vars {
		ctx.Set(k, v)
	}

	content, err := renderPlushTemplate(name, ctx)
	if err != nil {
		return "", err
	}

	return renderLayout(ctx, content)
}

func renderLayout(ctx *plush.Context, content string) (string, error) {
	ctx.Set("yield", template.HTML(content))
	return renderPlushTemplate("layout.plush.html", ctx)
}

// renderMarkdown converts a doc page body to HTML.
func renderMarkdown(body []byte) string {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	p := parser.NewWithExtensions(extensions)
	htmlContent := markdown.ToHTML(body, p, nil)
	return strings.Replace(`
  <article class="doc">
  [content]
  </article>
  `, "[content]", string(htmlContent), 1)
}
