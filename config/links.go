package config

import (
	"encoding/json"
	"fmt"
)

// HeaderLink is one navigation entry: either an ExternalLink or a DocLink.
type HeaderLink interface {
	LinkLabel() string
	headerLink()
}

// ExternalLink points at an absolute or site-relative URL.
type ExternalLink struct {
	Href  string
	Label string
}

// DocLink points at a documentation page by its id.
type DocLink struct {
	Doc   string
	Label string
}

func (l ExternalLink) LinkLabel() string { return l.Label }
func (l DocLink) LinkLabel() string { return l.Label }

func (ExternalLink) headerLink() {}
func (DocLink) headerLink() {}

// HeaderLinks keeps the order in which links appear in the header.
type HeaderLinks []HeaderLink

// rawHeaderLink is the wire shape shared by both variants.
type rawHeaderLink struct {
	Href  string `yaml:"href,omitempty" json:"href,omitempty"`
	Doc   string `yaml:"doc,omitempty" json:"doc,omitempty"`
	Label string `yaml:"label" json:"label"`
}

func (r rawHeaderLink) resolve(i int) (HeaderLink, error) {
	field := fmt.Sprintf("headerLinks[%d]", i)
	switch {
	case r.Href != "" && r.Doc != "":
		return nil, fieldError(field, r.Label, "has both href and doc")
	case r.Href != "":
		return ExternalLink{Href: r.Href, Label: r.Label}, nil
	case r.Doc != "":
		return DocLink{Doc: r.Doc, Label: r.Label}, nil
	default:
		return nil, fieldError(field, r.Label, "needs either href or doc")
	}
}

func toRaw(link HeaderLink) (rawHeaderLink, error) {
	switch l := link.(type) {
	case ExternalLink:
		return rawHeaderLink{Href: l.Href, Label: l.Label}, nil
	case DocLink:
		return rawHeaderLink{Doc: l.Doc, Label: l.Label}, nil
	default:
		return rawHeaderLink{}, fmt.Errorf("unknown header link type %T", link)
	}
}

func fromRaw(raw []rawHeaderLink) (HeaderLinks, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	links := make(HeaderLinks, 0, len(raw))
	for i, r := range raw {
		link, err := r.resolve(i)
		if err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, nil
}

func (hl HeaderLinks) raw() ([]rawHeaderLink, error) {
	if hl == nil {
		return nil, nil
	}
	raw := make([]rawHeaderLink, 0, len(hl))
	for _, link := range hl {
		r, err := toRaw(link)
		if err != nil {
			return nil, err
		}
		raw = append(raw, r)
	}
	return raw, nil
}

func (hl *HeaderLinks) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw []rawHeaderLink
	if err := unmarshal(&raw); err != nil {
		return err
	}
	links, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*hl = links
	return nil
}

func (hl HeaderLinks) MarshalYAML() (interface{}, error) {
	return hl.raw()
}

func (hl *HeaderLinks) UnmarshalJSON(data []byte) error {
	var raw []rawHeaderLink
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	links, err := fromRaw(raw)
	if err != nil {
		return err
	}
	*hl = links
	return nil
}

func (hl HeaderLinks) MarshalJSON() ([]byte, error) {
	raw, err := hl.raw()
	if err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}
