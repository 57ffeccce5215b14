package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/service"
)

// GetSettings 返回站点设置（含默认值）。
func (a *API) GetSettings(c *gin.Context) {
	settings, err := a.settings.GetSettings()
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to load settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings 保存站点设置。
func (a *API) UpdateSettings(c *gin.Context) {
	var input service.SiteSettings
	if !bindJSON(c, &input, "invalid settings payload") {
		return
	}

	settings, err := a.settings.UpdateSettings(input)
	if err != nil {
		c.Error(err)
		respondError(c, http.StatusInternalServerError, "failed to save settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "settings updated", "settings": settings})
}
