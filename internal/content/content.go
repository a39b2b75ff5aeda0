// Package content holds the static portfolio data. Everything here is plain
// data; layout and styling belong to the page renderer.
package content

import "github.com/degokisss/CS5709/internal/domain"

// Section ids in document order. The order drives nav display and the
// bottom-of-page override, which selects the last entry.
const (
	SectionHome      domain.SectionID = "home"
	SectionAbout     domain.SectionID = "about"
	SectionEducation domain.SectionID = "education"
	SectionSkills    domain.SectionID = "skills"
	SectionProjects  domain.SectionID = "projects"
	SectionGallery   domain.SectionID = "gallery"
	SectionContact   domain.SectionID = "contact"
)

func Sections() []domain.Section {
	return []domain.Section{
		{ID: SectionHome, Title: "Home"},
		{ID: SectionAbout, Title: "About"},
		{ID: SectionEducation, Title: "Education"},
		{ID: SectionSkills, Title: "Skills"},
		{ID: SectionProjects, Title: "Projects"},
		{ID: SectionGallery, Title: "Gallery"},
		{ID: SectionContact, Title: "Contact"},
	}
}

func Default() domain.Portfolio {
	return domain.Portfolio{
		Profile: domain.Profile{
			Name:     "Deniz Gokay",
			Headline: "Software Developer",
			Location: "Halifax, Nova Scotia",
			Bio: `I build software that starts as a question and ends as a tool someone
actually uses. Most of my work lives close to the terminal: services,
command-line tools, and the occasional visualization when a dataset
refuses to explain itself in text.

Right now I am finishing a graduate degree in computer science and
spending my evenings on side projects in **Go**, which keeps winning me
over with how far a small language can go. Before that I wrote a lot of
Python and enough JavaScript to respect people who do it full time.

Outside of code I climb, take film photos that mostly come out blurry,
and keep a sourdough starter alive against its will.`,
			Links: []domain.Link{
				{Label: "GitHub", URL: "https://github.com/degokisss"},
				{Label: "LinkedIn", URL: "https://linkedin.com/in/denizgokay"},
				{Label: "Email", URL: "mailto:deniz@denizgokay.dev"},
			},
		},
		Education: []domain.EducationEntry{
			{
				Degree:      "Master of Computer Science",
				Institution: "Dalhousie University",
				Start:       "Sep 2024",
				End:         "Present",
				Notes: []string{
					"Focus areas: data visualization, distributed systems",
					"Teaching assistant for the introductory programming course",
				},
			},
			{
				Degree:      "BSc, Computer Engineering",
				Institution: "Istanbul Technical University",
				Start:       "Sep 2019",
				End:         "Jun 2023",
				Notes: []string{
					"Graduated with honors",
					"Capstone: real-time transit arrival prediction from GTFS feeds",
				},
			},
		},
		Skills: []domain.SkillGroup{
			{Name: "Languages", Skills: []string{"Go", "Python", "TypeScript", "SQL", "C"}},
			{Name: "Backend", Skills: []string{"gRPC", "PostgreSQL", "Redis", "Docker", "Linux"}},
			{Name: "Frontend", Skills: []string{"React", "D3.js", "Tailwind CSS"}},
			{Name: "Practices", Skills: []string{"TDD", "CI/CD", "Code review", "Observability"}},
		},
		Projects: []domain.Project{
			{
				Name:    "driftwatch",
				Summary: "A daemon that watches config files across a fleet and reports drift against a declared baseline, with a terminal dashboard for diffs.",
				Tech:    []string{"Go", "fsnotify", "bubbletea"},
				Repo:    "github.com/degokisss/driftwatch",
			},
			{
				Name:    "ferryline",
				Summary: "Live Halifax ferry and bus tracker. Ingests the municipal GTFS-RT feed and renders arrival boards for the stops I actually use.",
				Tech:    []string{"Go", "Protocol Buffers", "SQLite"},
				Repo:    "github.com/degokisss/ferryline",
			},
			{
				Name:    "plotgrid",
				Summary: "Small-multiples chart generator for exploratory analysis; produced most of the figures in my visualization coursework.",
				Tech:    []string{"Python", "matplotlib", "pandas"},
				Repo:    "github.com/degokisss/plotgrid",
			},
			{
				Name:    "this site",
				Summary: "The page you are reading: a single-page portfolio with scroll-aware navigation, a rate-limited contact form, and a theme toggle.",
				Tech:    []string{"Go", "bubbletea", "lipgloss"},
				Repo:    "github.com/degokisss/CS5709",
			},
		},
		Gallery: []domain.GalleryItem{
			{
				Caption: "Peggy's Cove lighthouse, 35mm",
				Art: `        .
        |\
       /| \
      / |  \
     /__|___\
     |  ___  |
  ~~~| |   | |~~~
 ~~  |_|___|_|  ~~
~~~~~~~~~~~~~~~~~~~`,
			},
			{
				Caption: "The climbing gym problem board",
				Art: `+-----------------+
| o   .   o    .  |
|   .   o   .    o|
| .   o   .  o    |
|o  .    o    .   |
+-----------------+`,
			},
			{
				Caption: "Sourdough, attempt 14",
				Art: `   ________
  /        \
 |  ~~  ~~  |
 |  ~ ~~ ~  |
  \________/`,
			},
		},
		Contact: domain.ContactInfo{
			Email:  "deniz@denizgokay.dev",
			Blurb:  "Say hello about work, collaboration, or climbing beta. Messages go straight to my inbox.",
			ToName: "Deniz",
		},
	}
}
