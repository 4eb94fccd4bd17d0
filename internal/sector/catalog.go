// Package sector classifies a candidate into a coarse industry sector and
// enriches short texts with that sector's ATS keywords.
package sector

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Sector string

const (
	Tech      Sector = "tech"
	Marketing Sector = "marketing"
	Sales     Sector = "sales"
	Design    Sector = "design"
	General   Sector = "general"
)

// Bucket names a StructuredCV skills list.
type Bucket string

const (
	Technical Bucket = "technical"
	Soft      Bucket = "soft"
	Tools     Bucket = "tools"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Catalog is read-only keyword data. Build one at startup and share it.
type Catalog struct {
	Priority   []Sector            `yaml:"priority"`
	Indicators map[Sector][]string `yaml:"indicators"`
	Keywords   map[Sector][]string `yaml:"keywords"`
	Skills     map[Bucket][]string `yaml:"skills"`
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalog)
}

// LoadCatalog reads a catalog from path, or the embedded one when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return ParseCatalog(b)
}

func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(c.Priority) == 0 {
		return nil, fmt.Errorf("parse catalog: priority list is empty")
	}
	for _, s := range c.Priority {
		if len(c.Indicators[s]) == 0 {
			return nil, fmt.Errorf("parse catalog: sector %q has no indicators", s)
		}
	}
	return &c, nil
}

// KeywordsFor returns the ATS keywords of s, falling back to the general list.
func (c *Catalog) KeywordsFor(s Sector) []string {
	if kw, ok := c.Keywords[s]; ok {
		return kw
	}
	return c.Keywords[General]
}
