package backends

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindOpenAIChat        Kind = "openai_chat"
	KindAnthropicMessages Kind = "anthropic_messages"
	KindCohereGenerate    Kind = "cohere_generate"
	KindTogetherInference Kind = "together_inference"
	KindHFInference       Kind = "hf_inference"
	KindOllamaGenerate    Kind = "ollama_generate"
	KindMock              Kind = "mock"
)

type Pricing string

const (
	Free     Pricing = "free"
	Freemium Pricing = "freemium"
	Paid     Pricing = "paid"
)

// Label is the status text shown next to a backend in listings.
func (p Pricing) Label() string {
	switch p {
	case Free:
		return "Gratis"
	case Freemium:
		return "Nivel gratuito"
	case Paid:
		return "De pago"
	}
	return string(p)
}

type Model struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// Spec is one registry entry. It holds no secrets: KeyEnv only names the
// environment variable a key may come from.
type Spec struct {
	ID          string        `yaml:"id" json:"id"`
	Name        string        `yaml:"name" json:"name"`
	Kind        Kind          `yaml:"kind" json:"kind"`
	Endpoint    string        `yaml:"endpoint" json:"endpoint,omitempty"`
	RequiresKey bool          `yaml:"requires_key" json:"requires_key"`
	KeyEnv      string        `yaml:"key_env" json:"key_env,omitempty"`
	Pricing     Pricing       `yaml:"pricing" json:"pricing"`
	Timeout     time.Duration `yaml:"timeout" json:"-"`
	Description string        `yaml:"description" json:"description,omitempty"`
	DocsURL     string        `yaml:"docs_url" json:"docs_url,omitempty"`
	Models      []Model       `yaml:"models" json:"models"`
}

// DefaultModel is the first listed model id, or "" for an entry without models.
func (s Spec) DefaultModel() string {
	if len(s.Models) == 0 {
		return ""
	}
	return s.Models[0].ID
}

func (s Spec) HasModel(id string) bool {
	for _, m := range s.Models {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Registry is an ordered, read-only set of backend specs.
type Registry struct {
	specs []Spec
	byID  map[string]int
}

//go:embed registry.yaml
var defaultRegistry []byte

// DefaultRegistry returns the registry compiled into the binary.
func DefaultRegistry() (*Registry, error) {
	return ParseRegistry(defaultRegistry)
}

// LoadRegistry reads a registry file, or the embedded one when path is empty.
func LoadRegistry(path string) (*Registry, error) {
	if path == "" {
		return DefaultRegistry()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry: %w", err)
	}
	return ParseRegistry(b)
}

func ParseRegistry(b []byte) (*Registry, error) {
	var specs []Spec
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&specs); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	return NewRegistry(specs...)
}

func NewRegistry(specs ...Spec) (*Registry, error) {
	r := &Registry{byID: make(map[string]int, len(specs))}
	for _, s := range specs {
		if s.ID == "" {
			return nil, fmt.Errorf("registry: entry without id")
		}
		if _, dup := r.byID[s.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate id %q", s.ID)
		}
		if !knownKind(s.Kind) {
			return nil, fmt.Errorf("registry: %s: unknown kind %q", s.ID, s.Kind)
		}
		if s.Kind != KindMock && s.Endpoint == "" {
			return nil, fmt.Errorf("registry: %s: endpoint is required", s.ID)
		}
		r.byID[s.ID] = len(r.specs)
		r.specs = append(r.specs, s)
	}
	return r, nil
}

func knownKind(k Kind) bool {
	switch k {
	case KindOpenAIChat, KindAnthropicMessages, KindCohereGenerate, KindTogetherInference,
		KindHFInference, KindOllamaGenerate, KindMock:
		return true
	}
	return false
}

func (r *Registry) Lookup(id string) (Spec, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Spec{}, false
	}
	return r.specs[i], true
}

// All returns the specs in registry order.
func (r *Registry) All() []Spec {
	out := make([]Spec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Free lists backends usable at no cost, freemium ones included.
func (r *Registry) Free() []Spec {
	return r.filter(func(s Spec) bool { return s.Pricing == Free || s.Pricing == Freemium })
}

func (r *Registry) Paid() []Spec {
	return r.filter(func(s Spec) bool { return s.Pricing == Paid })
}

func (r *Registry) filter(keep func(Spec) bool) []Spec {
	var out []Spec
	for _, s := range r.specs {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
