package config

import (
	"bytes"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// DocPage is a markdown page found in the generated docs directory.
type DocPage struct {
	ID    string
	Title string
	// Path is relative to the docs root.
	Path string
}

type frontMatter struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
}

// SplitFrontMatter separates a leading --- delimited YAML block from the
// markdown body. Content without front matter is returned unchanged.
func SplitFrontMatter(content []byte) (meta []byte, body []byte) {
	normalized := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return nil, content
	}

	rest := normalized[len("---\n"):]
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")], nil
		}
		return nil, content
	}
	return rest[:end], rest[end+len("\n---\n"):]
}

// ParseDocPage reads the id and title of a page. The id falls back to the
// file name without extension.
func ParseDocPage(name string, content []byte) (DocPage, error) {
	page := DocPage{
		ID:   strings.TrimSuffix(path.Base(name), path.Ext(name)),
		Path: name,
	}

	meta, _ := SplitFrontMatter(content)
	if len(meta) == 0 {
		return page, nil
	}

	var fm frontMatter
	if err := yaml.Unmarshal(meta, &fm); err != nil {
		return DocPage{}, errors.Wrapf(err, "parsing front matter of %s", name)
	}
	if fm.ID != "" {
		page.ID = fm.ID
	}
	page.Title = fm.Title
	return page, nil
}

// DocPages lists the markdown pages under the root of fsys, sorted by path.
// Pages in subdirectories keep their directory in the id.
func DocPages(fsys fs.FS) ([]DocPage, error) {
	var pages []DocPage
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".md" {
			return nil
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		page, err := ParseDocPage(p, content)
		if err != nil {
			return err
		}
		if dir := path.Dir(p); dir != "." && !strings.Contains(page.ID, "/") {
			page.ID = dir + "/" + page.ID
		}
		pages = append(pages, page)
		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}

// FindDocPage returns the page with the given id.
func FindDocPage(pages []DocPage, id string) (DocPage, bool) {
	for _, p := range pages {
		if p.ID == id {
			return p, true
		}
	}
	return DocPage{}, false
}

// ValidateDocLinks checks that every doc link in the header resolves to a
// page in fsys, which is rooted at the docs directory. All unresolved ids are
// reported together in a *MissingDocError.
func ValidateDocLinks(fsys fs.FS, cfg *SiteConfiguration) error {
	if cfg == nil {
		return fieldError("config", "", "is nil")
	}

	// A docs tree that was never generated resolves no doc link.
	pages, err := DocPages(fsys)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "reading doc pages")
	}

	var missing []string
	for _, link := range cfg.HeaderLinks {
		dl, ok := link.(DocLink)
		if !ok {
			continue
		}
		if _, found := FindDocPage(pages, dl.Doc); !found {
			missing = append(missing, dl.Doc)
		}
	}

	if len(missing) > 0 {
		return &MissingDocError{Missing: missing}
	}
	return nil
}
