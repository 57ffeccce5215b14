package service

import "github.com/portfolioapi/internal/db"

// Defaults applied when a work leaves optional fields empty. The
// synthesizer must stay total, so every field has an explicit
// fallback.
const (
	placeholderImage = "/images/works/placeholder.png"
	defaultCategory  = "Web Application"

	fallbackChallenges = "Balancing a polished user experience with fast load times required careful design trade-offs throughout the build."
	fallbackSolutions  = "Modern web tooling and an iterative build-and-measure cycle kept the implementation on track."
	fallbackResults    = "The project shipped on schedule and continues to serve its users reliably."
)

var fallbackTechStack = []db.TechStackEntry{
	{Name: "Web Development", Icon: "/images/skills/Html5_logo.svg"},
}

// WorkDetailBannerData heads a work detail page.
type WorkDetailBannerData struct {
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Date            string    `json:"date"`
	Category        string    `json:"category"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Image           string    `json:"image"`
	Featured        bool      `json:"featured"`
	Links           WorkLinks `json:"links"`
}

// WorkLinks carries the optional live and repository URLs of a work.
type WorkLinks struct {
	Live   string `json:"live,omitempty"`
	Github string `json:"github,omitempty"`
}

// WorkTechStackData lists the technologies and headline features.
type WorkTechStackData struct {
	Title    string              `json:"title"`
	Stack    []db.TechStackEntry `json:"stack"`
	Features []string            `json:"features,omitempty"`
}

// WorkNarrativeData tells the challenges/solutions/results story.
type WorkNarrativeData struct {
	Challenges string `json:"challenges"`
	Solutions  string `json:"solutions"`
	Results    string `json:"results"`
}

// WorkGalleryData holds the ordered screenshots of a work.
type WorkGalleryData struct {
	Images []string `json:"images"`
}

// SynthesizeWorkDetail builds the denormalized detail-page document
// for a work under the given slug. It is a pure, total function of the
// record: absent fields fall back to fixed defaults and the long
// description is rendered into a restricted HTML fragment, so the
// result is defined for any input.
func SynthesizeWorkDetail(work db.Work, slug string) PageDocument {
	image := work.Image
	if image == "" {
		image = placeholderImage
	}

	category := work.Category
	if category == "" {
		category = defaultCategory
	}

	longDescription := work.LongDescription
	if longDescription == "" {
		longDescription = work.Description
	}

	stack := work.TechStack
	if len(stack) == 0 {
		stack = fallbackTechStack
	}

	gallery := work.Gallery
	if len(gallery) == 0 {
		gallery = []string{image}
	}

	narrative := WorkNarrativeData{
		Challenges: work.Challenges,
		Solutions:  work.Solutions,
		Results:    work.Results,
	}
	if narrative.Challenges == "" {
		narrative.Challenges = fallbackChallenges
	}
	if narrative.Solutions == "" {
		narrative.Solutions = fallbackSolutions
	}
	if narrative.Results == "" {
		narrative.Results = fallbackResults
	}

	return PageDocument{
		Data: PageData{
			SEO: &SEO{
				MetaTitle:       work.Title + " - Project Details",
				MetaDescription: work.Description,
				MetaImage:       &MetaImage{URL: image},
			},
			Widgets: []Widget{
				{
					WidgetType: "WorkDetailBanner",
					Data: WorkDetailBannerData{
						Slug:            slug,
						Title:           work.Title,
						Date:            work.Date,
						Category:        category,
						Description:     work.Description,
						LongDescription: FormatLongDescription(longDescription),
						Image:           image,
						Featured:        work.Featured,
						Links: WorkLinks{
							Live:   work.LiveURL,
							Github: work.GithubURL,
						},
					},
				},
				{
					WidgetType: "WorkTechStack",
					Data: WorkTechStackData{
						Title:    "TECH STACK",
						Stack:    stack,
						Features: work.Features,
					},
				},
				{
					WidgetType: "WorkNarrative",
					Data:       narrative,
				},
				{
					WidgetType: "WorkGallery",
					Data:       WorkGalleryData{Images: gallery},
				},
			},
		},
	}
}
