package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, "¡CV generado exitosamente con Plantilla optimizada! Resumen generado: Hola", SuccessMessage("mock", " Hola "))
	assert.Contains(t, SuccessMessage("openai", "Hola"), "con IA!")

	long := strings.Repeat("á", 200)
	msg := SuccessMessage("groq", long)
	assert.True(t, strings.HasSuffix(msg, strings.Repeat("á", 150)+"..."))
}

func TestDownloadName(t *testing.T) {
	assert.Equal(t, "CV_Ana-Pérez.pdf", DownloadName("Ana Pérez"))
	assert.Equal(t, "CV_Juan-Carlos-OBrien.pdf", DownloadName("  Juan  Carlos O'Brien "))
	assert.Equal(t, "CV_ab.pdf", DownloadName("a/../b"))
	assert.Equal(t, "CV_candidato.pdf", DownloadName("../.."))
}
