package ai

import (
	"fmt"
	"strings"

	"cv-builder/internal/model"
)

const notSpecified = "No especificado"

const promptTemplate = `Actúa como un experto en recursos humanos y redacción de CVs optimizados para sistemas ATS.

Con la siguiente información del candidato, genera contenido profesional para su CV:

INFORMACIÓN DEL CANDIDATO:
- Nombre: %s
- Email: %s
- Teléfono: %s
- Perfil profesional: %s
- Ubicación: %s
- Objetivo profesional: %s
- Años de experiencia: %s
- Experiencia laboral: %s
- Educación: %s
- Habilidades: %s
- Idiomas: %s

INSTRUCCIONES:
1. Redacta un resumen profesional de 2 a 4 frases, orientado a logros.
2. Reescribe cada experiencia con verbos de acción y resultados cuantificables.
3. Incluye palabras clave relevantes del sector para superar filtros ATS.
4. Clasifica las habilidades en técnicas, interpersonales y herramientas, sin repetir ninguna.
5. Mantén el orden original de las experiencias y no inventes empresas ni fechas.
6. Escribe todo el contenido en español con un tono profesional.

Responde ÚNICAMENTE con un objeto JSON válido, sin texto adicional ni bloques de código, con esta estructura:
{
  "summary": "resumen profesional",
  "experience": [
    {"title": "puesto", "organization": "empresa", "period": "periodo", "bullets": ["logro 1", "logro 2", "logro 3"]}
  ],
  "skills": {"technical": ["..."], "soft": ["..."], "tools": ["..."]}
}`

// BuildPrompt embeds every candidate field in the fixed instruction text.
func BuildPrompt(in model.CandidateInput) string {
	return fmt.Sprintf(promptTemplate,
		orNotSpecified(in.Name),
		orNotSpecified(in.Email),
		orNotSpecified(in.Phone),
		orNotSpecified(in.ProfileURL),
		orNotSpecified(in.Location),
		orNotSpecified(in.Objective),
		orNotSpecified(in.ExperienceYears),
		orNotSpecified(in.WorkHistory),
		orNotSpecified(in.Education),
		orNotSpecified(in.Skills),
		orNotSpecified(in.Languages),
	)
}

func orNotSpecified(s string) string {
	if s = strings.TrimSpace(s); s == "" {
		return notSpecified
	}
	return s
}
