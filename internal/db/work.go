package db

import "time"

// TechStackEntry 描述作品使用的一项技术及其图标。
type TechStackEntry struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Work 定义作品集中的项目模型。Id 由内存集合分配而非数据库自增，
// 以保证删除后编号不被复用。
type Work struct {
	ID              uint             `gorm:"primaryKey" json:"id"`
	Title           string           `gorm:"not null" json:"title"`
	Date            string           `json:"date"`
	Category        string           `json:"category"`
	Description     string           `gorm:"type:text" json:"description"`
	LongDescription string           `gorm:"type:text" json:"longDescription,omitempty"`
	Image           string           `json:"image"`
	Gallery         []string         `gorm:"serializer:json" json:"gallery"`
	TechStack       []TechStackEntry `gorm:"serializer:json" json:"techStack"`
	Features        []string         `gorm:"serializer:json" json:"features"`
	LiveURL         string           `json:"liveUrl,omitempty"`
	GithubURL       string           `json:"githubUrl,omitempty"`
	Challenges      string           `gorm:"type:text" json:"challenges,omitempty"`
	Solutions       string           `gorm:"type:text" json:"solutions,omitempty"`
	Results         string           `gorm:"type:text" json:"results,omitempty"`
	Featured        bool             `gorm:"default:false" json:"featured"`
	Slug            string           `gorm:"index" json:"slug"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
