package handler

import (
	"github.com/portfolioapi/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	works     *service.WorkService
	pages     *service.PageService
	settings  *service.SiteSettingService
	uploadDir string
	uploadURL string
}

// NewAPI constructs a handler set with shared services. The work store
// loads the persisted collection into memory here, so construction can
// fail when the database is unreadable.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) (*API, error) {
	works, err := service.NewWorkService(gdb)
	if err != nil {
		return nil, err
	}

	settings := service.NewSiteSettingService(gdb)

	return &API{
		db:        gdb,
		works:     works,
		pages:     service.NewPageService(works, settings),
		settings:  settings,
		uploadDir: uploadDir,
		uploadURL: uploadURL,
	}, nil
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
