package render

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"
)

type Theme string

const (
	Modern    Theme = "modern"
	Executive Theme = "executive"
	Creative  Theme = "creative"
	Technical Theme = "technical"
)

// Themes lists every theme in display order.
var Themes = []Theme{Modern, Executive, Creative, Technical}

// ParseTheme maps a case-insensitive name to a theme. Empty means Modern.
func ParseTheme(s string) (Theme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Modern, nil
	}
	t := Theme(s)
	if _, ok := styles[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
	return t, nil
}

type ContactLayout string

const (
	Inline  ContactLayout = "inline"
	Stacked ContactLayout = "stacked"
)

// Style holds every visual parameter a theme may change. Content never
// depends on it.
type Style struct {
	FontFamily     string
	BaseSize       string
	Text           string
	Muted          string
	Accent         string
	Secondary      string
	HeaderAlign    string
	HeaderBorder   string
	NameSize       string
	NameSpacing    string
	HeadingAlign   string
	HeadingBorder  string
	HeadingRule    string
	HeadingPadding string
	BodyIndent     string
	Contact        ContactLayout
}

var styles = map[Theme]Style{
	Modern: {
		FontFamily:     `"Helvetica Neue", Helvetica, Arial, sans-serif`,
		BaseSize:       "10.5pt",
		Text:           "#1f2937",
		Muted:          "#4b5563",
		Accent:         "#2563eb",
		Secondary:      "#1e40af",
		HeaderAlign:    "left",
		HeaderBorder:   "2px solid #2563eb",
		NameSize:       "22pt",
		NameSpacing:    "0.5pt",
		HeadingAlign:   "left",
		HeadingBorder:  "1px solid #bfdbfe",
		HeadingRule:    "none",
		HeadingPadding: "0 0 2pt 0",
		BodyIndent:     "0",
		Contact:        Inline,
	},
	Executive: {
		FontFamily:     `"Times New Roman", Times, Georgia, serif`,
		BaseSize:       "11pt",
		Text:           "#111827",
		Muted:          "#374151",
		Accent:         "#374151",
		Secondary:      "#111827",
		HeaderAlign:    "center",
		HeaderBorder:   "1px solid #111827",
		NameSize:       "24pt",
		NameSpacing:    "2pt",
		HeadingAlign:   "center",
		HeadingBorder:  "1px solid #9ca3af",
		HeadingRule:    "none",
		HeadingPadding: "0 0 2pt 0",
		BodyIndent:     "0",
		Contact:        Inline,
	},
	Creative: {
		FontFamily:     `Verdana, "Trebuchet MS", sans-serif`,
		BaseSize:       "10pt",
		Text:           "#1f2937",
		Muted:          "#6b7280",
		Accent:         "#7c3aed",
		Secondary:      "#2563eb",
		HeaderAlign:    "left",
		HeaderBorder:   "4px solid #7c3aed",
		NameSize:       "26pt",
		NameSpacing:    "1pt",
		HeadingAlign:   "left",
		HeadingBorder:  "3px solid #2563eb",
		HeadingRule:    "6px solid #7c3aed",
		HeadingPadding: "2pt 0 2pt 6pt",
		BodyIndent:     "0",
		Contact:        Stacked,
	},
	Technical: {
		FontFamily:     `"Courier New", Courier, monospace`,
		BaseSize:       "10pt",
		Text:           "#111827",
		Muted:          "#374151",
		Accent:         "#16a34a",
		Secondary:      "#15803d",
		HeaderAlign:    "left",
		HeaderBorder:   "1px dashed #16a34a",
		NameSize:       "20pt",
		NameSpacing:    "0",
		HeadingAlign:   "left",
		HeadingBorder:  "1px dashed #16a34a",
		HeadingRule:    "none",
		HeadingPadding: "0 0 2pt 0",
		BodyIndent:     "12pt",
		Contact:        Stacked,
	},
}

// StyleOf returns the style of t, or Modern's for an unknown theme.
func StyleOf(t Theme) Style {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[Modern]
}

//go:embed templates/theme.css.tmpl
var themeCSS string

var cssTemplate = template.Must(template.New("theme.css").Parse(themeCSS))

// CSS renders the stylesheet for s.
func (s Style) CSS() (string, error) {
	var b strings.Builder
	if err := cssTemplate.Execute(&b, s); err != nil {
		return "", err
	}
	return b.String(), nil
}
