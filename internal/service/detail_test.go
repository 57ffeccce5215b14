package service

import (
	"testing"

	"github.com/portfolioapi/internal/db"
)

func TestSynthesizeWorkDetailFullRecord(t *testing.T) {
	work := db.Work{
		ID:              7,
		Title:           "Furniro",
		Date:            "2024-03-01",
		Category:        "E-commerce",
		Description:     "An online furniture store.",
		LongDescription: "**Modern** storefront",
		Image:           "/images/works/furniro.png",
		Gallery:         []string{"/images/works/furniro-1.png", "/images/works/furniro-2.png"},
		TechStack:       []db.TechStackEntry{{Name: "React", Icon: "/images/skills/react.svg"}},
		Features:        []string{"Cart", "Checkout"},
		LiveURL:         "https://furniro.example.com",
		GithubURL:       "https://github.com/example/furniro",
		Challenges:      "Scaling the catalog.",
		Solutions:       "Incremental rendering.",
		Results:         "Faster page loads.",
		Featured:        true,
	}

	doc := SynthesizeWorkDetail(work, "furniro")

	seo := doc.Data.SEO
	if seo == nil {
		t.Fatal("expected SEO block")
	}
	if seo.MetaTitle != "Furniro - Project Details" {
		t.Fatalf("meta title: got %q", seo.MetaTitle)
	}
	if seo.MetaDescription != work.Description {
		t.Fatalf("meta description: got %q", seo.MetaDescription)
	}
	if seo.MetaImage == nil || seo.MetaImage.URL != work.Image {
		t.Fatalf("meta image: got %+v", seo.MetaImage)
	}

	if len(doc.Data.Widgets) != 4 {
		t.Fatalf("expected 4 widgets, got %d", len(doc.Data.Widgets))
	}
	order := []string{"WorkDetailBanner", "WorkTechStack", "WorkNarrative", "WorkGallery"}
	for i, want := range order {
		if doc.Data.Widgets[i].WidgetType != want {
			t.Fatalf("widget %d: got %q, want %q", i, doc.Data.Widgets[i].WidgetType, want)
		}
	}

	banner, ok := doc.Data.Widgets[0].Data.(WorkDetailBannerData)
	if !ok {
		t.Fatalf("banner data has type %T", doc.Data.Widgets[0].Data)
	}
	if banner.Slug != "furniro" || banner.Title != "Furniro" || !banner.Featured {
		t.Fatalf("unexpected banner: %+v", banner)
	}
	if banner.LongDescription != "<p><strong>Modern</strong> storefront</p>" {
		t.Fatalf("long description: got %q", banner.LongDescription)
	}
	if banner.Links.Live != work.LiveURL || banner.Links.Github != work.GithubURL {
		t.Fatalf("links: %+v", banner.Links)
	}

	stack, ok := doc.Data.Widgets[1].Data.(WorkTechStackData)
	if !ok {
		t.Fatalf("stack data has type %T", doc.Data.Widgets[1].Data)
	}
	if stack.Title != "TECH STACK" || len(stack.Stack) != 1 || stack.Stack[0].Name != "React" {
		t.Fatalf("unexpected stack: %+v", stack)
	}

	narrative := doc.Data.Widgets[2].Data.(WorkNarrativeData)
	if narrative.Challenges != work.Challenges || narrative.Results != work.Results {
		t.Fatalf("unexpected narrative: %+v", narrative)
	}

	gallery := doc.Data.Widgets[3].Data.(WorkGalleryData)
	if len(gallery.Images) != 2 {
		t.Fatalf("gallery: %+v", gallery)
	}
}

func TestSynthesizeWorkDetailFallbacks(t *testing.T) {
	work := db.Work{ID: 1, Title: "Bare", Description: "Just a description."}

	doc := SynthesizeWorkDetail(work, "bare")

	banner := doc.Data.Widgets[0].Data.(WorkDetailBannerData)
	if banner.Image != placeholderImage {
		t.Fatalf("image fallback: got %q", banner.Image)
	}
	if banner.Category != defaultCategory {
		t.Fatalf("category fallback: got %q", banner.Category)
	}
	// Long description falls back to the short description before
	// rendering.
	if banner.LongDescription != "<p>Just a description.</p>" {
		t.Fatalf("long description fallback: got %q", banner.LongDescription)
	}

	stack := doc.Data.Widgets[1].Data.(WorkTechStackData)
	if len(stack.Stack) != 1 || stack.Stack[0].Name != fallbackTechStack[0].Name {
		t.Fatalf("stack fallback: %+v", stack.Stack)
	}

	narrative := doc.Data.Widgets[2].Data.(WorkNarrativeData)
	if narrative.Challenges != fallbackChallenges ||
		narrative.Solutions != fallbackSolutions ||
		narrative.Results != fallbackResults {
		t.Fatalf("narrative fallback: %+v", narrative)
	}

	gallery := doc.Data.Widgets[3].Data.(WorkGalleryData)
	if len(gallery.Images) != 1 || gallery.Images[0] != placeholderImage {
		t.Fatalf("gallery fallback: %+v", gallery)
	}

	if doc.Data.SEO.MetaImage.URL != placeholderImage {
		t.Fatalf("seo image fallback: got %q", doc.Data.SEO.MetaImage.URL)
	}
}
