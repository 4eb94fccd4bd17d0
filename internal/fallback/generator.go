// Package fallback builds a StructuredCV from the raw form with canned,
// sector-specific text. It needs no network and never fails.
package fallback

import (
	"regexp"
	"strconv"
	"strings"

	"cv-builder/internal/model"
	"cv-builder/internal/sector"
)

const (
	juniorBelow = 3
	seniorFrom  = 7

	yearsPerLine = 2
	maxLineYears = 8

	bulletsPerRole = 3
	leadingSkills  = 3

	maxTechnical = 8
	maxSoft      = 5
	maxTools     = 5

	defaultPeriod = "Período no especificado"
)

var yearRe = regexp.MustCompile(`\b(20\d{2})\b`)

type Generator struct {
	catalog *sector.Catalog
}

func New(catalog *sector.Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Generate produces a fully populated StructuredCV from in.
func (g *Generator) Generate(in model.CandidateInput) model.StructuredCV {
	s := g.catalog.Detect(in.WorkHistory, in.Skills, in.Objective)
	tpl := TemplateFor(s)
	tokens := SplitSkills(in.Skills)

	lead := tpl.DefaultSkills
	if len(tokens) > 0 {
		lead = strings.Join(first(tokens, leadingSkills), ", ")
	}

	years := EstimateYears(in.WorkHistory)
	summary := strings.NewReplacer(
		"{title}", tpl.Title,
		"{tier}", Tier(years),
		"{years}", strconv.Itoa(years),
		"{skills}", lead,
	).Replace(tpl.Summary)

	return model.StructuredCV{
		Summary:    g.catalog.Enhance(summary, s),
		Experience: parseRoles(in.WorkHistory, tpl, lead),
		Skills:     g.skills(tokens, s),
	}
}

// EstimateYears uses the span between the earliest and latest 20xx year in
// the work history. Without two years it counts non-blank lines at two years
// each, up to eight, and never returns zero from that path.
func EstimateYears(workHistory string) int {
	found := yearRe.FindAllString(workHistory, -1)
	if len(found) >= 2 {
		lo, hi := 0, 0
		for i, y := range found {
			n, _ := strconv.Atoi(y)
			if i == 0 || n < lo {
				lo = n
			}
			if i == 0 || n > hi {
				hi = n
			}
		}
		return hi - lo
	}
	lines := 0
	for _, l := range strings.Split(workHistory, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	years := lines * yearsPerLine
	if years > maxLineYears {
		years = maxLineYears
	}
	if years == 0 {
		return 1
	}
	return years
}

func Tier(years int) string {
	switch {
	case years < juniorBelow:
		return "Junior"
	case years < seniorFrom:
		return "Mid-level"
	default:
		return "Senior"
	}
}

// SplitSkills splits comma separated skills, trims them and drops blanks and
// case-insensitive duplicates while keeping the first spelling.
func SplitSkills(raw string) []string {
	seen := map[string]bool{}
	var out []string
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		key := strings.ToLower(tok)
		if tok == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tok)
	}
	return out
}

func parseRoles(workHistory string, tpl Template, stack string) []model.Role {
	roles := []model.Role{}
	for _, line := range strings.Split(workHistory, "\n") {
		line = strings.TrimSpace(line)
		if !strings.Contains(line, "-") {
			continue
		}
		sep := "-"
		if strings.Contains(line, " - ") {
			sep = " - "
		}
		parts := strings.SplitN(line, sep, 3)
		if len(parts) < 2 {
			continue
		}
		title, org := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if title == "" || org == "" {
			continue
		}
		period := defaultPeriod
		if len(parts) == 3 && strings.TrimSpace(parts[2]) != "" {
			period = strings.TrimSpace(parts[2])
		}
		roles = append(roles, model.Role{
			Title:        title,
			Organization: org,
			Period:       period,
			Bullets:      bullets(tpl, stack),
		})
	}
	return roles
}

func bullets(tpl Template, stack string) []string {
	r := strings.NewReplacer("{stack}", stack)
	out := make([]string, 0, bulletsPerRole)
	for _, b := range first(tpl.Bullets, bulletsPerRole) {
		out = append(out, r.Replace(b))
	}
	return out
}

func (g *Generator) skills(tokens []string, s sector.Sector) model.Skills {
	out := model.Skills{Technical: []string{}, Soft: []string{}, Tools: []string{}}
	var seen []string
	add := func(tok string) {
		switch g.catalog.BucketOf(tok) {
		case sector.Soft:
			out.Soft = append(out.Soft, tok)
		case sector.Tools:
			out.Tools = append(out.Tools, tok)
		default:
			out.Technical = append(out.Technical, tok)
		}
		seen = append(seen, strings.ToLower(tok))
	}
	for _, tok := range tokens {
		add(tok)
	}
	for _, kw := range g.catalog.KeywordsFor(s) {
		if !mentioned(seen, strings.ToLower(kw)) {
			add(kw)
		}
	}
	out.Technical = first(out.Technical, maxTechnical)
	out.Soft = first(out.Soft, maxSoft)
	out.Tools = first(out.Tools, maxTools)
	return out
}

func mentioned(tokens []string, kw string) bool {
	for _, t := range tokens {
		if strings.Contains(t, kw) {
			return true
		}
	}
	return false
}

func first(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
