package config

// config/yaml.go

type Colors struct {
	PrimaryColor   string `yaml:"primaryColor" json:"primaryColor"`
	SecondaryColor string `yaml:"secondaryColor" json:"secondaryColor"`
}

type Highlight struct {
	Theme string `yaml:"theme" json:"theme"`
}

// OnPageNav selects how the generator renders the per-page table of contents.
type OnPageNav string

const (
	OnPageNavNone     OnPageNav = ""
	OnPageNavSeparate OnPageNav = "separate"
)

// Definition is the authored part of a site configuration, as it appears in
// site.yaml. Derived fields are added by Load.
type Definition struct {
	Title            string      `yaml:"title"`
	Tagline          string      `yaml:"tagline"`
	URL              string      `yaml:"url"`
	BaseURL          string      `yaml:"baseUrl"`
	ProjectName      string      `yaml:"projectName"`
	OrganizationName string      `yaml:"organizationName"`
	CustomDocsPath   string      `yaml:"customDocsPath"`
	HeaderLinks      HeaderLinks `yaml:"headerLinks"`
	HeaderIcon       string      `yaml:"headerIcon"`
	TitleIcon        string      `yaml:"titleIcon"`
	Favicon          string      `yaml:"favicon"`
	Colors           Colors      `yaml:"colors"`
	CopyrightOwner   string      `yaml:"copyrightOwner"`
	Highlight        Highlight   `yaml:"highlight"`
	Scripts          []string    `yaml:"scripts"`
	OnPageNav        OnPageNav   `yaml:"onPageNav"`
	SeparateCSS      []string    `yaml:"separateCss"`
	CleanURL         bool        `yaml:"cleanUrl"`
}

// SiteConfiguration is the resolved record handed to the site generator.
// It is built once by Load and must not be modified afterwards.
type SiteConfiguration struct {
	Title            string      `yaml:"title" json:"title"`
	Tagline          string      `yaml:"tagline" json:"tagline"`
	URL              string      `yaml:"url" json:"url"`
	BaseURL          string      `yaml:"baseUrl" json:"baseUrl"`
	ProjectName      string      `yaml:"projectName" json:"projectName"`
	OrganizationName string      `yaml:"organizationName" json:"organizationName"`
	CustomDocsPath   string      `yaml:"customDocsPath" json:"customDocsPath"`
	HeaderLinks      HeaderLinks `yaml:"headerLinks" json:"headerLinks"`
	HeaderIcon       string      `yaml:"headerIcon" json:"headerIcon"`
	TitleIcon        string      `yaml:"titleIcon" json:"titleIcon"`
	Favicon          string      `yaml:"favicon" json:"favicon"`
	Colors           Colors      `yaml:"colors" json:"colors"`
	Copyright        string      `yaml:"copyright" json:"copyright"`
	Highlight        Highlight   `yaml:"highlight" json:"highlight"`
	Scripts          []string    `yaml:"scripts,omitempty" json:"scripts"`
	OnPageNav        OnPageNav   `yaml:"onPageNav,omitempty" json:"onPageNav,omitempty"`
	SeparateCSS      []string    `yaml:"separateCss,omitempty" json:"separateCss"`
	CleanURL         bool        `yaml:"cleanUrl" json:"cleanUrl"`
	RepoURL          string      `yaml:"repoUrl" json:"repoUrl"`
	APIURL           string      `yaml:"apiUrl" json:"apiUrl"`
}
