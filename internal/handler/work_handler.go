package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolioapi/internal/db"
	"github.com/portfolioapi/internal/service"
)

// workResponse echoes a mutated work together with the outcome of the
// durable write. The in-memory record is authoritative either way.
type workResponse struct {
	db.Work
	Saved   bool   `json:"saved"`
	Message string `json:"message"`
}

func savedWorkResponse(work *db.Work, saved bool, action string) workResponse {
	message := "Work " + action + " and saved to the database"
	if !saved {
		message = "Work " + action + " but could not be saved to the database"
	}
	return workResponse{Work: *work, Saved: saved, Message: message}
}

// GetWorks 返回后台管理的全部作品列表。
func (a *API) GetWorks(c *gin.Context) {
	c.JSON(http.StatusOK, a.works.List())
}

// GetWork 按 id 返回单个作品。
func (a *API) GetWork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work id")
		return
	}

	work, err := a.works.Get(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "Work not found")
		return
	}

	c.JSON(http.StatusOK, work)
}

// CreateWork 创建新作品并同步生成详情页。
func (a *API) CreateWork(c *gin.Context) {
	var input service.WorkInput
	if !bindJSON(c, &input, "invalid work payload") {
		return
	}

	work, saved, err := a.works.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrTitleRequired) {
			respondError(c, http.StatusBadRequest, "title is required")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to create work")
		return
	}

	c.JSON(http.StatusOK, savedWorkResponse(work, saved, "created"))
}

// UpdateWork 合并请求中的字段到既有作品。
func (a *API) UpdateWork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work id")
		return
	}

	var input service.WorkInput
	if !bindJSON(c, &input, "invalid work payload") {
		return
	}

	work, saved, err := a.works.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			respondError(c, http.StatusNotFound, "Work not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to update work")
		return
	}

	c.JSON(http.StatusOK, savedWorkResponse(work, saved, "updated"))
}

// DeleteWork 删除作品并移除对应详情页。
func (a *API) DeleteWork(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid work id")
		return
	}

	work, saved, err := a.works.Delete(id)
	if err != nil {
		if errors.Is(err, service.ErrWorkNotFound) {
			respondError(c, http.StatusNotFound, "Work not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "failed to delete work")
		return
	}

	c.JSON(http.StatusOK, savedWorkResponse(work, saved, "deleted"))
}
