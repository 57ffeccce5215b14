package service

import "github.com/portfolioapi/internal/db"

// PageService assembles the public page documents. Headlines and
// contact details come from the site settings; the works widgets embed
// the live work collection.
type PageService struct {
	works    *WorkService
	settings *SiteSettingService
}

// NewPageService returns a new PageService instance.
func NewPageService(works *WorkService, settings *SiteSettingService) *PageService {
	return &PageService{works: works, settings: settings}
}

type homeBannerData struct {
	Title string `json:"title"`
}

type serviceStackItem struct {
	Title string `json:"title"`
	Link  Link   `json:"link"`
}

type homeAboutData struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Link        Link               `json:"link"`
	StackTitle  string             `json:"stack_title"`
	Stack       []serviceStackItem `json:"stack"`
}

type titledEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type principlesData struct {
	Title      string        `json:"title"`
	MainTitle  string        `json:"main_title"`
	Principles []titledEntry `json:"principles"`
}

type hireData struct {
	Title     string        `json:"title"`
	MainTitle string        `json:"main_title"`
	Services  []titledEntry `json:"services"`
}

type workListData struct {
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Category    []categoryOption `json:"category,omitempty"`
	Works       []WorkCard       `json:"works"`
}

type categoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type aboutBannerData struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
}

type journeyEntry struct {
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Experience  string `json:"experince"` // field name kept as the front end reads it
	Designation string `json:"designation"`
	CompanyName string `json:"company_name"`
	URL         string `json:"url"`
}

type journeyData struct {
	Title  string         `json:"title"`
	Career []journeyEntry `json:"career"`
}

type skillItem struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type skillsData struct {
	Title  string      `json:"title"`
	Skills []skillItem `json:"skills"`
}

type socialLinks struct {
	Github   string `json:"github"`
	Linkedin string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

type contactData struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Description string      `json:"description"`
	Mobile      string      `json:"mobile"`
	Email       string      `json:"email"`
	Location    string      `json:"location"`
	Social      socialLinks `json:"social"`
}

// Homepage builds the homepage document with up to four featured works.
func (s *PageService) Homepage() (PageDocument, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return PageDocument{}, err
	}

	return PageDocument{
		Data: PageData{
			SEO: &SEO{
				MetaTitle:       settings.SEOTitle,
				MetaDescription: settings.SEODescription,
			},
			Widgets: []Widget{
				{
					WidgetType: "HomeBanner",
					Data:       homeBannerData{Title: settings.BannerTitle},
				},
				{
					WidgetType: "HomeAbout",
					Data: homeAboutData{
						Title:       settings.AboutTitle,
						Description: settings.AboutDescription,
						Link:        Link{Text: "ABOUT ME", URL: "/about"},
						StackTitle:  "SERVICE TYPE",
						Stack:       serviceTypes,
					},
				},
				{
					WidgetType: "HomeWorks",
					Data: workListData{
						Title: "FEATURED WORK",
						Works: workCards(s.works.Featured(4)),
					},
				},
				{
					WidgetType: "HomePrinciples",
					Data: principlesData{
						Title:      "PRINCIPLES",
						MainTitle:  "<span>DESIGN MEETS</span><span> DEVELOPMENT</span>",
						Principles: principles,
					},
				},
				{
					WidgetType: "HomeHire",
					Data:       hireWidget,
				},
			},
		},
	}, nil
}

// About builds the about page document.
func (s *PageService) About() (PageDocument, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return PageDocument{}, err
	}

	return PageDocument{
		Data: PageData{
			Widgets: []Widget{
				{
					WidgetType: "AboutBanner",
					Data: aboutBannerData{
						Title:       settings.AboutBannerTitle,
						Image:       settings.AboutBannerImage,
						Description: settings.AboutBannerDescription,
					},
				},
				{
					WidgetType: "AboutJourney",
					Data:       journeyData{Title: "CAREER", Career: career},
				},
				{
					WidgetType: "AboutSkills",
					Data:       skillsData{Title: "TECH STACK", Skills: skills},
				},
				{
					WidgetType: "HomeHire",
					Data:       hireWidget,
				},
			},
		},
	}, nil
}

// Works builds the works listing document over the full collection.
func (s *PageService) Works() (PageDocument, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return PageDocument{}, err
	}

	return PageDocument{
		Data: PageData{
			SEO: &SEO{
				MetaTitle:       "Works - " + settings.SEOTitle,
				MetaDescription: "Portfolio of web development projects by " + settings.SEOTitle,
			},
			Widgets: []Widget{
				{
					WidgetType: "WorkList",
					Data: workListData{
						Title:       "Works",
						Description: "A collection of some of my favorite Digital Design and Development projects from the past few years. 🤓",
						Category:    workCategories,
						Works:       workCards(s.works.List()),
					},
				},
			},
		},
	}, nil
}

// Contact builds the contact page document.
func (s *PageService) Contact() (PageDocument, error) {
	settings, err := s.settings.GetSettings()
	if err != nil {
		return PageDocument{}, err
	}

	return PageDocument{
		Data: PageData{
			SEO: &SEO{
				MetaTitle:       "Contact - " + settings.SEOTitle,
				MetaDescription: "Get in touch with " + settings.SEOTitle + " for web development projects",
			},
			Widgets: []Widget{
				{
					WidgetType: "ContactUs",
					Data: contactData{
						Title:       settings.ContactTitle,
						Subtitle:    "Let's work together",
						Description: "I'm always open to discussing new projects, creative ideas, or opportunities to be part of your visions.",
						Mobile:      settings.ContactMobile,
						Email:       settings.ContactEmail,
						Location:    settings.ContactLocation,
						Social: socialLinks{
							Github:   settings.SocialGithub,
							Linkedin: settings.SocialLinkedin,
							Twitter:  settings.SocialTwitter,
						},
					},
				},
			},
		},
	}, nil
}

func workCards(works []db.Work) []WorkCard {
	cards := make([]WorkCard, 0, len(works))
	for _, work := range works {
		cards = append(cards, WorkCard{
			Date:  work.Date,
			Title: work.Title,
			Image: work.Image,
			Stack: work.Category,
			URL:   "works/" + work.Slug,
		})
	}
	return cards
}

var serviceTypes = []serviceStackItem{
	{Title: "Web Application", Link: Link{Text: "KNOW MORE", URL: "/"}},
	{Title: "Progressive Web Application", Link: Link{Text: "KNOW MORE", URL: "/"}},
	{Title: "Decentralized applications", Link: Link{Text: "KNOW MORE", URL: "/"}},
}

var principles = []titledEntry{
	{
		Title:       "Systems-first",
		Description: "Building systems for anything from design and development, to scoping and documentation is at the core of my process to driving results for every project I work on.",
	},
	{
		Title:       "Accessibility and Usability",
		Description: "Accessibility and usability are two important principles of front-end development that aim to make a website or web application easy to use and understand for all users, regardless of their abilities, preferences, or devices",
	},
	{
		Title:       "Performance and Optimization",
		Description: "Performance and optimization are two related principles of front-end development that aim to make a website or web application fast and reliable for users.",
	},
	{
		Title:       "Responsiveness and Cross-Browser Compatibility",
		Description: "Responsiveness and cross-browser compatibility are two essential principles of front-end development that aim to make a website or web application adaptable and consistent across different devices and browsers",
	},
	{
		Title:       "Testing and Debugging",
		Description: "Testing and debugging are essential for web development, as they prevent problems, improve user experience, increase trust and ensure the quality.",
	},
}

var hireWidget = hireData{
	Title:     "SERVICES",
	MainTitle: "HIRE ME",
	Services: []titledEntry{
		{
			Title:       "Consulting",
			Description: "Agencies and in-house teams hire me to be embedded on their team for direct support on strategy, scoping, custom code, and training.",
		},
		{
			Title:       "Design",
			Description: "From strategy and brand, to web and product design, I help teams bring businesses to life with modern, memorable and minimal creative work.",
		},
		{
			Title:       "Development",
			Description: "With 3+ years creating for the web, I can join your upcoming project to lead development in a design-first, systematic way that will scale with your brand.",
		},
	},
}

var career = []journeyEntry{
	{StartDate: "2024", EndDate: "2025", Experience: "7 month", Designation: "Frontend Developer", CompanyName: "Nuox technologies"},
	{StartDate: "2022", EndDate: "2024", Experience: "2.5 year", Designation: "UI Developer", CompanyName: "Webandcrafts"},
	{StartDate: "2021", EndDate: "2022", Experience: "1 year", Designation: "Python Fullstack Developer", CompanyName: "Right Soft Options"},
}

var skills = []skillItem{
	{Name: "HTML5", Image: "/images/skills/Html5_logo.svg"},
	{Name: "CSS", Image: "/images/skills/cSS_logo.svg"},
	{Name: "JAVASCRIPT", Image: "/images/skills/Javascript_logo.svg"},
	{Name: "TYPESCRIPT", Image: "/images/skills/Typescript_logo.svg"},
	{Name: "REACT", Image: "/images/skills/React_logo.svg"},
	{Name: "NEXTJS", Image: "/images/skills/Nextjs_logo.svg"},
	{Name: "VUEJS", Image: "/images/skills/Vuejs_logo.svg"},
	{Name: "GSAP", Image: "/images/skills/Gsap_logo.svg"},
	{Name: "BOOTSTRAP", Image: "/images/skills/Bootstrap_logo.svg"},
	{Name: "TAILWIND", Image: "/images/skills/Tailwind_logo.svg"},
	{Name: "SASS", Image: "/images/skills/Sass_logo.svg"},
	{Name: "WORDPRESS", Image: "/images/skills/Wordpress_logo.svg"},
}

var workCategories = []categoryOption{
	{Value: "all", Label: "All"},
	{Value: "web-application", Label: "Web Application"},
	{Value: "e-commerce", Label: "E-commerce"},
	{Value: "management-system", Label: "Management System"},
	{Value: "education", Label: "Education"},
}
