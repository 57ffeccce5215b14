package handler

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type previewPayload struct {
	Content string `json:"content"`
}

// PreviewMarkdown renders markdown from the admin editor into
// sanitized HTML so the long-description editor can show a preview.
func (a *API) PreviewMarkdown(c *gin.Context) {
	var payload previewPayload
	if !bindJSON(c, &payload, "invalid preview payload") {
		return
	}

	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(payload.Content), &buf); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to render preview")
		return
	}

	c.JSON(http.StatusOK, gin.H{"html": sanitizer.Sanitize(buf.String())})
}
