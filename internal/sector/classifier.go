package sector

import (
	"strings"
)

const (
	shortTextWords = 30
	maxAppended    = 4
	keywordsLead   = "Competencias destacadas: "
)

// Detect scores every sector by how many of its indicators occur in the
// combined text. The highest score wins; ties go to the earlier sector in
// the catalog priority, and no hits at all yields General.
func (c *Catalog) Detect(experience, skills, objective string) Sector {
	text := strings.ToLower(strings.Join([]string{experience, skills, objective}, " "))
	best, bestScore := General, 0
	for _, s := range c.Priority {
		score := 0
		for _, ind := range c.Indicators[s] {
			if strings.Contains(text, strings.ToLower(ind)) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

// Enhance appends up to four sector keywords that the text does not already
// mention, but only to texts shorter than thirty words. Empty text is
// returned as is.
func (c *Catalog) Enhance(text string, s Sector) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	if len(strings.Fields(text)) >= shortTextWords {
		return text
	}
	lower := strings.ToLower(text)
	var missing []string
	for _, kw := range c.KeywordsFor(s) {
		if len(missing) == maxAppended {
			break
		}
		if !strings.Contains(lower, strings.ToLower(kw)) {
			missing = append(missing, kw)
		}
	}
	if len(missing) == 0 {
		return text
	}
	return text + " " + keywordsLead + strings.Join(missing, ", ") + "."
}

// BucketOf returns the skills bucket for token, checking technical, soft and
// then tools indicators. Unmatched tokens are technical.
func (c *Catalog) BucketOf(token string) Bucket {
	lower := strings.ToLower(token)
	for _, b := range []Bucket{Technical, Soft, Tools} {
		for _, ind := range c.Skills[b] {
			if strings.Contains(lower, ind) {
				return b
			}
		}
	}
	return Technical
}
