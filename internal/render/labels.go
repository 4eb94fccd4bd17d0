package render

// Labels are the fixed section headings and skill line prefixes.
type Labels struct {
	Summary    string
	Experience string
	Education  string
	Skills     string
	Languages  string
	Technical  string
	Tools      string
	Soft       string
}

func DefaultLabels() Labels {
	return Labels{
		Summary:    "RESUMEN PROFESIONAL",
		Experience: "EXPERIENCIA PROFESIONAL",
		Education:  "EDUCACIÓN",
		Skills:     "HABILIDADES Y COMPETENCIAS",
		Languages:  "IDIOMAS",
		Technical:  "Habilidades Técnicas:",
		Tools:      "Herramientas y Software:",
		Soft:       "Habilidades Interpersonales:",
	}
}
