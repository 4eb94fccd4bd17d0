package render

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// PlainText returns the visible text of an HTML document, one text node per
// line. Head content and style sheets are skipped, so two themes of the same
// content give the same text.
func PlainText(doc string) (string, error) {
	z := html.NewTokenizer(strings.NewReader(doc))
	var out []string
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return "", err
			}
			return strings.Join(out, "\n"), nil
		case html.StartTagToken:
			if hidden(z) {
				skip++
			}
		case html.EndTagToken:
			if hidden(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip > 0 {
				continue
			}
			if t := strings.TrimSpace(string(z.Text())); t != "" {
				out = append(out, t)
			}
		}
	}
}

func hidden(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	switch string(name) {
	case "head", "style", "script", "title":
		return true
	}
	return false
}
