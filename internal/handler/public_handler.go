package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/service"
)

// Root 返回一个简单的存活信息。
func (a *API) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Portfolio API is running"})
}

// GetHomepage serves the homepage document.
func (a *API) GetHomepage(c *gin.Context) {
	a.servePage(c, a.pages.Homepage)
}

// GetAbout serves the about page document.
func (a *API) GetAbout(c *gin.Context) {
	a.servePage(c, a.pages.About)
}

// GetWorksPage serves the works listing document.
func (a *API) GetWorksPage(c *gin.Context) {
	a.servePage(c, a.pages.Works)
}

// GetContact serves the contact page document.
func (a *API) GetContact(c *gin.Context) {
	a.servePage(c, a.pages.Contact)
}

func (a *API) servePage(c *gin.Context, build func() (service.PageDocument, error)) {
	doc, err := build()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load page")
		return
	}
	c.JSON(http.StatusOK, doc)
}

// GetWorkDetail serves the synthesized detail document for a slug.
func (a *API) GetWorkDetail(c *gin.Context) {
	slug := c.Param("slug")

	doc, err := a.works.Detail(slug)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			respondError(c, http.StatusNotFound, "Work not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to load work")
		return
	}

	c.JSON(http.StatusOK, doc)
}
