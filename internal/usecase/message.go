package usecase

import (
	"fmt"
	"regexp"
	"strings"
)

const summaryPreview = 150

// SuccessMessage tells the user which method produced the content, with the
// start of the summary.
func SuccessMessage(backendID, summary string) string {
	method := "IA"
	if backendID == "mock" {
		method = "Plantilla optimizada"
	}
	preview := []rune(strings.TrimSpace(summary))
	text := string(preview)
	if len(preview) > summaryPreview {
		text = string(preview[:summaryPreview]) + "..."
	}
	return fmt.Sprintf("¡CV generado exitosamente con %s! Resumen generado: %s", method, text)
}

var (
	unsafeFilenameRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	filenameSpaceRe  = regexp.MustCompile(`[-\s]+`)
)

// DownloadName builds the attachment name for a candidate, e.g. CV_Ana-Perez.pdf.
func DownloadName(candidateName string) string {
	s := unsafeFilenameRe.ReplaceAllString(strings.TrimSpace(candidateName), "")
	s = strings.Trim(filenameSpaceRe.ReplaceAllString(s, "-"), "-")
	if s == "" {
		s = "candidato"
	}
	return "CV_" + s + ".pdf"
}
