package service

import (
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/portfolioapi/internal/db"
	"gorm.io/gorm"
)

var (
	ErrWorkNotFound  = errors.New("work not found")
	ErrTitleRequired = errors.New("title is required")
)

// WorkInput carries the fields accepted when creating or updating a
// work. Pointer fields distinguish "absent" from "set to the zero
// value", so updates merge only what the caller actually supplied.
type WorkInput struct {
	Title           *string              `json:"title"`
	Date            *string              `json:"date"`
	Category        *string              `json:"category"`
	Description     *string              `json:"description"`
	LongDescription *string              `json:"longDescription"`
	Image           *string              `json:"image"`
	Gallery         *[]string            `json:"gallery"`
	TechStack       *[]db.TechStackEntry `json:"techStack"`
	Features        *[]string            `json:"features"`
	LiveURL         *string              `json:"liveUrl"`
	GithubURL       *string              `json:"githubUrl"`
	Challenges      *string              `json:"challenges"`
	Solutions       *string              `json:"solutions"`
	Results         *string              `json:"results"`
	Featured        *bool                `json:"featured"`
	Slug            *string              `json:"slug"`
}

// WorkService is the content store for works and their derived detail
// documents. The in-memory collections are authoritative for the
// process lifetime; every mutation is additionally written to the
// database best-effort, and the outcome is reported to the caller
// without rolling back memory when the write fails.
type WorkService struct {
	mu      sync.Mutex
	db      *gorm.DB
	works   []db.Work
	details map[string]PageDocument
	lastID  uint
}

// NewWorkService loads the persisted works, resynthesizes their detail
// documents and seeds the id counter with the highest persisted id.
func NewWorkService(gdb *gorm.DB) (*WorkService, error) {
	var works []db.Work
	if err := gdb.Order("id asc").Find(&works).Error; err != nil {
		return nil, err
	}

	s := &WorkService{
		db:      gdb,
		works:   works,
		details: make(map[string]PageDocument, len(works)),
	}
	for i := range s.works {
		work := &s.works[i]
		if work.Slug == "" {
			work.Slug = DeriveSlug(work.Title)
		}
		if work.ID > s.lastID {
			s.lastID = work.ID
		}
		s.details[work.Slug] = SynthesizeWorkDetail(*work, work.Slug)
	}
	return s, nil
}

// List returns all current works in creation order.
func (s *WorkService) List() []db.Work {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]db.Work, len(s.works))
	copy(out, s.works)
	return out
}

// Get fetches a work by id.
func (s *WorkService) Get(id uint) (*db.Work, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, ErrWorkNotFound
	}
	work := s.works[idx]
	return &work, nil
}

// Featured returns up to limit featured works, most recent first.
func (s *WorkService) Featured(limit int) []db.Work {
	s.mu.Lock()
	defer s.mu.Unlock()

	featured := make([]db.Work, 0, limit)
	for _, work := range s.works {
		if work.Featured {
			featured = append(featured, work)
		}
	}
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].CreatedAt.After(featured[j].CreatedAt)
	})
	if limit > 0 && len(featured) > limit {
		featured = featured[:limit]
	}
	return featured
}

// Detail fetches the synthesized detail document for a slug.
func (s *WorkService) Detail(slug string) (*PageDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.details[slug]
	if !ok {
		return nil, ErrWorkNotFound
	}
	return &doc, nil
}

// Create assigns the next id, applies defaults, derives the slug when
// absent and appends the record. The second return value reports
// whether the durable write succeeded.
func (s *WorkService) Create(input WorkInput) (*db.Work, bool, error) {
	title := strings.TrimSpace(deref(input.Title))
	if title == "" {
		return nil, false, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	s.lastID++
	work := db.Work{
		ID:        s.lastID,
		Title:     title,
		Category:  defaultCategory,
		Image:     placeholderImage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyInput(&work, input)

	work.Slug = strings.TrimSpace(deref(input.Slug))
	if work.Slug == "" {
		work.Slug = DeriveSlug(title)
	}

	s.works = append(s.works, work)
	// Duplicate slugs overwrite the previous detail: last write wins.
	s.details[work.Slug] = SynthesizeWorkDetail(work, work.Slug)

	saved := s.persist(s.db.Create(&work).Error, "create", work.ID)
	return &work, saved, nil
}

// Update shallow-merges the supplied fields over an existing work.
// The slug is re-derived only when the title or an explicit slug was
// part of the input; a slug change moves the detail document to the
// new key.
func (s *WorkService) Update(id uint, input WorkInput) (*db.Work, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false, ErrWorkNotFound
	}

	work := &s.works[idx]
	oldSlug := work.Slug

	if input.Title != nil {
		if title := strings.TrimSpace(*input.Title); title != "" {
			work.Title = title
		}
	}
	applyInput(work, input)

	switch {
	case input.Slug != nil && strings.TrimSpace(*input.Slug) != "":
		work.Slug = strings.TrimSpace(*input.Slug)
	case input.Title != nil:
		work.Slug = DeriveSlug(work.Title)
	}
	work.UpdatedAt = time.Now()

	if work.Slug != oldSlug {
		delete(s.details, oldSlug)
	}
	s.details[work.Slug] = SynthesizeWorkDetail(*work, work.Slug)

	saved := s.persist(s.db.Save(work).Error, "update", work.ID)
	updated := *work
	return &updated, saved, nil
}

// Delete removes a work together with its detail document and returns
// the removed record.
func (s *WorkService) Delete(id uint) (*db.Work, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, false, ErrWorkNotFound
	}

	removed := s.works[idx]
	s.works = append(s.works[:idx], s.works[idx+1:]...)
	delete(s.details, removed.Slug)

	saved := s.persist(s.db.Delete(&db.Work{}, id).Error, "delete", id)
	return &removed, saved, nil
}

func (s *WorkService) indexOf(id uint) int {
	for i := range s.works {
		if s.works[i].ID == id {
			return i
		}
	}
	return -1
}

// persist reports the durable-write outcome. Failures are logged and
// surfaced as saved=false; the in-memory state stays authoritative.
func (s *WorkService) persist(err error, op string, id uint) bool {
	if err != nil {
		log.Printf("work store: %s of work %d not persisted: %v", op, id, err)
		return false
	}
	return true
}

func applyInput(work *db.Work, input WorkInput) {
	if input.Date != nil {
		work.Date = strings.TrimSpace(*input.Date)
	}
	if input.Category != nil && strings.TrimSpace(*input.Category) != "" {
		work.Category = strings.TrimSpace(*input.Category)
	}
	if input.Description != nil {
		work.Description = *input.Description
	}
	if input.LongDescription != nil {
		work.LongDescription = *input.LongDescription
	}
	if input.Image != nil && strings.TrimSpace(*input.Image) != "" {
		work.Image = strings.TrimSpace(*input.Image)
	}
	if input.Gallery != nil {
		work.Gallery = *input.Gallery
	}
	if input.TechStack != nil {
		work.TechStack = *input.TechStack
	}
	if input.Features != nil {
		work.Features = *input.Features
	}
	if input.LiveURL != nil {
		work.LiveURL = strings.TrimSpace(*input.LiveURL)
	}
	if input.GithubURL != nil {
		work.GithubURL = strings.TrimSpace(*input.GithubURL)
	}
	if input.Challenges != nil {
		work.Challenges = *input.Challenges
	}
	if input.Solutions != nil {
		work.Solutions = *input.Solutions
	}
	if input.Results != nil {
		work.Results = *input.Results
	}
	if input.Featured != nil {
		work.Featured = *input.Featured
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
