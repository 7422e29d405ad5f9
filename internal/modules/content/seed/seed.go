// Package seed holds the compile-time static portfolio content. Seed records
// are never mutated: they exist independently of the database and are merged
// after dynamic rows at read time. Field shapes mirror the storage models
// (comma-joined lists) so both origins flow through the same normalization.
package seed

import "github.com/socampo/folio-core/internal/models"

// Projects returns a fresh copy of the static project records.
func Projects() []models.ProjectModel {
	return []models.ProjectModel{
		{
			Base:        models.Base{ID: "visually-impaired-software"},
			TitleEn:     "Software for the Visually Impaired",
			TitleEs:     "Software para No-videntes",
			ShortDescEn: "Development of an adaptability module for data acquisition software, aimed at visually impaired users.",
			ShortDescEs: "Desarrollo de un módulo de adaptabilidad para un software adquisidor de datos, orientado a usuarios no-videntes.",
			FullDescEn: "The ArSens Project for the Visually Impaired is an initiative to adapt and develop the ArSens interface, " +
				"a data acquisition system, to make it accessible for users with visual impairments. Creating an accessible " +
				"version for visually impaired users will expand access to a broader audience, fostering greater inclusion " +
				"in classrooms and university learning environments.",
			FullDescEs: "El Proyecto ArSens para no videntes es una propuesta de adaptación y desarrollo de la interfaz ArSens, " +
				"interfaz de adquisición de datos, para posibilitar su manejo por parte de usuarios con discapacidades " +
				"visuales. La creación de una versión accesible facilitará su acceso a un mayor espectro de personas, " +
				"fomentando un mayor nivel de inclusión en las aulas y los ámbitos de aprendizaje universitarios.",
			Year:         "2023-Present",
			Technologies: "Python,Tkinter,Google TTS",
			LiveURL:      "",
			CodeURL:      "https://github.com/BaltaMolteni/IEC-ANV",
			TagsEn:       "Python,Accessibility,Visually Impaired Users",
			TagsEs:       "Python,Accesibilidad,Usuarios no-videntes",
			MediaImages:  models.StringArray{"/arsens/arsens-1.png", "/arsens/arsens-2.png", "/arsens/arsens-3.png", "/arsens/arsens-4.png"},
			MediaVideos:  models.StringArray{"/arsens/arsens-demo.mp4"},
		},
		{
			Base:        models.Base{ID: "kinesiology-web-app"},
			TitleEn:     "Web App for Kinesiology Center",
			TitleEs:     "Web App para Centro de Kinesiología",
			ShortDescEn: "Development of a web app using Django + React for a kinesiology center, allowing management of medical records.",
			ShortDescEs: "Desarrollo de web app utilizando Django + React para un centro de kinesiología, permitiendo administrar historias clínicas.",
			FullDescEn: "Development of a comprehensive web application for kinesiology centers using Django and React. The " +
				"application allows for efficient management of patient medical records and integrates with other systems " +
				"to retrieve relevant data for the center. The system includes medical record management, patient " +
				"management, consultation logging, an administrator portal, and a main home page for patients.",
			FullDescEs: "Desarrollo de una aplicación web integral para centros de kinesiología utilizando Django y React. La " +
				"aplicación permite una gestión eficiente de historias clínicas de pacientes y se integra con otros " +
				"sistemas para obtener datos relevantes para el centro. El sistema incluye manejo de historiales, gestión " +
				"de pacientes, registro de consultas médicas, un portal para administradores y un home para pacientes.",
			Year:         "2024-2025",
			Technologies: "Django,React,Tailwind CSS",
			LiveURL:      "",
			CodeURL:      "https://github.com/mateogeffroy/KI-APP",
			TagsEn:       "Django,React,Full Stack",
			TagsEs:       "Django,React,Full Stack",
			MediaImages:  models.StringArray{"/kicenter/home-main.png", "/kicenter/kine-consultas.png", "/kicenter/kine-pacientes.png"},
			MediaVideos:  models.StringArray{"/kicenter/kicenter-demo.mp4"},
		},
	}
}

// Publications returns a fresh copy of the static publication records.
func Publications() []models.PublicationModel {
	return []models.PublicationModel{
		{
			Base:        models.Base{ID: "pub-en-1"},
			Title:       "Strategies for Stage II of Cosmological Arguments",
			CitationAPA: "Ocampo, S. T. (2024). Strategies for stage II of cosmological arguments. International Journal for Philosophy of Religion, 96(1), 55-88.",
			URL:         "https://rdcu.be/dWvzi",
			Lang:        "en",
			TagsEn:      "Indexed,Q1 Journal",
			TagsEs:      "Indexado,Revista Q1",
		},
		{
			Base:        models.Base{ID: "pub-es-1"},
			Title:       "Estrategias para la Fase II de los Argumentos Cosmológicos",
			CitationAPA: "Ocampo, S.T. (2023). Estrategias para la Fase II de los Argumentos Cosmológicos.",
			URL:         "https://philpapers.org/rec/OCAEPL",
			Lang:        "es",
			TagsEn:      "Pre-print",
			TagsEs:      "Pre-print",
		},
		{
			Base:        models.Base{ID: "pub-es-2"},
			Title:       "La Confiabilidad Histórica de los Evangelios",
			CitationAPA: "Ocampo, S.T. (2022). La Confiabilidad Histórica de los Evangelios.",
			URL:         "https://philpapers.org/rec/OCALCH",
			Lang:        "es",
			TagsEn:      "Essay",
			TagsEs:      "Ensayo",
		},
	}
}

// Skills returns a fresh copy of the static skill records.
func Skills() []models.SkillModel {
	return []models.SkillModel{
		{Base: models.Base{ID: "skill-full-stack"}, Name: "Full Stack Development", Category: models.SkillCategoryTechnical, Icon: "Layers"},
		{Base: models.Base{ID: "skill-react"}, Name: "React", Category: models.SkillCategoryTechnical, Icon: "Atom"},
		{Base: models.Base{ID: "skill-django"}, Name: "Django", Category: models.SkillCategoryTechnical, Icon: "Server"},
		{Base: models.Base{ID: "skill-python"}, Name: "Python", Category: models.SkillCategoryTechnical, Icon: "FileCode"},
		{Base: models.Base{ID: "skill-tkinter"}, Name: "Tkinter", Category: models.SkillCategoryTechnical, Icon: "AppWindow"},
		{Base: models.Base{ID: "skill-html5"}, Name: "HTML5", Category: models.SkillCategoryTechnical, Icon: "Code2"},
		{Base: models.Base{ID: "skill-css3"}, Name: "CSS3", Category: models.SkillCategoryTechnical, Icon: "Brush"},
		{Base: models.Base{ID: "skill-tailwind"}, Name: "Tailwind CSS", Category: models.SkillCategoryTechnical, Icon: "Wind"},
		{Base: models.Base{ID: "skill-javascript"}, Name: "JavaScript", Category: models.SkillCategoryTechnical, Icon: "Code2"},
		{Base: models.Base{ID: "skill-photoshop"}, Name: "Adobe Photoshop", Category: models.SkillCategoryTechnical, Icon: "Palette"},
		{Base: models.Base{ID: "skill-academic-writing"}, Name: "Academic Writing", Category: models.SkillCategoryAcademic, Icon: "PenTool"},
		{Base: models.Base{ID: "skill-research"}, Name: "Independent Research", Category: models.SkillCategoryAcademic, Icon: "BookOpen"},
		{Base: models.Base{ID: "skill-spanish"}, Name: "Spanish (Native)", Category: models.SkillCategoryLanguages, Icon: "Languages"},
		{Base: models.Base{ID: "skill-english"}, Name: "English (Advanced)", Category: models.SkillCategoryLanguages, Icon: "Languages"},
	}
}
