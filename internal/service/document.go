package service

// PageDocument is the envelope every content endpoint returns.
type PageDocument struct {
	Data PageData `json:"data"`
}

// PageData carries an optional SEO block and the ordered widgets the
// front end renders.
type PageData struct {
	SEO     *SEO     `json:"seo,omitempty"`
	Widgets []Widget `json:"widgets"`
}

// Widget is one named, typed data block inside a page document.
type Widget struct {
	WidgetType string `json:"widget_type"`
	Data       any    `json:"data"`
}

// SEO holds the metadata block of a page document.
type SEO struct {
	MetaTitle       string     `json:"metaTitle"`
	MetaDescription string     `json:"metaDescription"`
	MetaImage       *MetaImage `json:"metaImage,omitempty"`
}

// MetaImage wraps an image URL inside an SEO block.
type MetaImage struct {
	URL string `json:"url"`
}

// Link is a text/url pair used by several widgets.
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// WorkCard is the summary card embedded in work-list widgets.
type WorkCard struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Image string `json:"image"`
	Stack string `json:"stack"`
	URL   string `json:"url"`
}
