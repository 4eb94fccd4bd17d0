package fallback

import "cv-builder/internal/sector"

// Template is the canned text for one sector. Summary takes {title}, {tier},
// {years} and {skills}; bullets take {stack}. DefaultSkills fills both when the
// candidate lists no skills.
type Template struct {
	Title         string
	Summary       string
	Bullets       []string
	DefaultSkills string
}

var templates = map[sector.Sector]Template{
	sector.Tech: {
		Title:         "Desarrollador",
		Summary:       "{title} {tier} con {years}+ años de experiencia especializado en {skills} y arquitecturas escalables. Experiencia comprobada en metodologías Agile/Scrum, desarrollo Full Stack y soluciones cloud-native. Historial de liderazgo técnico y entrega de proyectos de alto impacto.",
		DefaultSkills: "tecnologías modernas",
		Bullets: []string{
			"Desarrollé y mantuve aplicaciones web escalables utilizando {stack}, mejorando el rendimiento en un 40%.",
			"Implementé arquitecturas de microservicios y APIs REST que redujeron los tiempos de respuesta en un 60%.",
			"Lideré la migración a la nube y la automatización de despliegues con pipelines CI/CD.",
			"Colaboré con equipos multifuncionales en entornos Agile/Scrum para entregar funcionalidades críticas.",
			"Optimicé consultas de bases de datos y procesos de backend, reduciendo costes operativos en un 25%.",
		},
	},
	sector.Marketing: {
		Title:         "Especialista en Marketing",
		Summary:       "{title} {tier} con {years}+ años de experiencia en estrategias digitales, {skills} y crecimiento de marca. Experiencia en campañas multicanal con ROI medible y optimización de conversiones. Orientado a resultados mediante análisis de datos y KPIs.",
		DefaultSkills: "marketing digital",
		Bullets: []string{
			"Diseñé y ejecuté campañas digitales apoyadas en {stack}, incrementando el ROI en un 150%.",
			"Gestioné estrategias de SEO/SEM que aumentaron el tráfico orgánico en un 200%.",
			"Lideré iniciativas de contenido y redes sociales que elevaron el engagement en un 85%.",
			"Implementé automatizaciones de email marketing con tasas de conversión superiores al 25%.",
			"Analicé métricas y KPIs para optimizar presupuestos publicitarios y reducir el CPA en un 30%.",
		},
	},
	sector.Sales: {
		Title:         "Profesional de Ventas",
		Summary:       "{title} {tier} con {years}+ años de experiencia en desarrollo de negocio, {skills} y gestión de cuentas clave. Historial comprobado superando objetivos comerciales y construyendo relaciones duraderas con clientes. Experto en negociación y gestión de pipeline.",
		DefaultSkills: "ventas consultivas",
		Bullets: []string{
			"Superé los objetivos de ventas anuales en un 125% apoyándome en {stack}.",
			"Desarrollé una cartera de más de 50 clientes corporativos, generando ingresos recurrentes.",
			"Negocié contratos estratégicos que incrementaron el valor medio por cuenta en un 40%.",
			"Implementé procesos de prospección y seguimiento en CRM que mejoraron la conversión en un 35%.",
			"Formé y mentoricé a nuevos miembros del equipo comercial.",
		},
	},
	sector.Design: {
		Title:         "Diseñador",
		Summary:       "{title} {tier} con {years}+ años de experiencia en {skills}, diseño centrado en el usuario e identidad visual. Experiencia en la creación de interfaces intuitivas y sistemas de diseño coherentes. Enfoque colaborativo orientado a resolver problemas reales de negocio.",
		DefaultSkills: "diseño visual",
		Bullets: []string{
			"Diseñé interfaces y prototipos interactivos con {stack}, mejorando la satisfacción de usuarios en un 45%.",
			"Creé y mantuve sistemas de diseño que aceleraron la entrega de nuevas pantallas.",
			"Realicé investigación con usuarios y pruebas de usabilidad para validar soluciones.",
			"Colaboré con equipos de producto y desarrollo para garantizar implementaciones fieles al diseño.",
		},
	},
	sector.General: {
		Title:         "Profesional",
		Summary:       "{title} {tier} con {years}+ años de experiencia en {skills}, gestión de proyectos y mejora de procesos. Capacidad demostrada para trabajar en equipo y alcanzar objetivos en entornos exigentes. Comprometido con la calidad y el aprendizaje continuo.",
		DefaultSkills: "múltiples áreas",
		Bullets: []string{
			"Gestioné proyectos y tareas clave aplicando {stack}, cumpliendo plazos y objetivos de calidad.",
			"Optimicé procesos internos, mejorando la eficiencia del área en un 30%.",
			"Colaboré con equipos multidisciplinares para resolver incidencias y mejorar el servicio.",
			"Participé en la formación de nuevos compañeros y en la documentación de procedimientos.",
		},
	},
}

// TemplateFor returns the template of s, or the general one.
func TemplateFor(s sector.Sector) Template {
	if t, ok := templates[s]; ok {
		return t
	}
	return templates[sector.General]
}
