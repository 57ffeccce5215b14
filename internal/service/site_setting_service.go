package service

import (
	"fmt"
	"strings"

	"github.com/portfolioapi/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SiteSettings 描述后台可配置的站点信息，未设置的键回退到默认文案。
type SiteSettings struct {
	SEOTitle               string `json:"seoTitle"`
	SEODescription         string `json:"seoDescription"`
	BannerTitle            string `json:"bannerTitle"`
	AboutTitle             string `json:"aboutTitle"`
	AboutDescription       string `json:"aboutDescription"`
	AboutBannerTitle       string `json:"aboutBannerTitle"`
	AboutBannerImage       string `json:"aboutBannerImage"`
	AboutBannerDescription string `json:"aboutBannerDescription"`
	ContactTitle           string `json:"contactTitle"`
	ContactMobile          string `json:"contactMobile"`
	ContactEmail           string `json:"contactEmail"`
	ContactLocation        string `json:"contactLocation"`
	SocialGithub           string `json:"socialGithub"`
	SocialLinkedin         string `json:"socialLinkedin"`
	SocialTwitter          string `json:"socialTwitter"`
}

var defaultSiteSettings = SiteSettings{
	SEOTitle:               "Mithun raj",
	SEODescription:         "Portfolio site",
	BannerTitle:            "FRONTEND DEVELOPER",
	AboutTitle:             "MITHUN RAJ",
	AboutDescription:       "I'm a lead WebApp Developer and Digital Designer building scalable, accessible, and technically tuned brands on the web.",
	AboutBannerTitle:       "CREATIVE MEETS TECHNICAL",
	AboutBannerImage:       "/images/about-me.png",
	AboutBannerDescription: "I'm a midwest family man with a love for design and front-end development. I have a deep desire to consistently learn from others and fuel my skills to design timeless brands, then develop them into reality with code.",
	ContactTitle:           "Get In Touch",
	ContactMobile:          "+91 7907348596",
	ContactEmail:           "mithunraj@example.com",
	ContactLocation:        "Chennai, India",
	SocialGithub:           "https://github.com/mithunraj",
	SocialLinkedin:         "https://linkedin.com/in/mithunraj",
	SocialTwitter:          "https://twitter.com/mithunraj",
}

// SiteSettingService 提供站点设置的读取与更新能力。
type SiteSettingService struct {
	db *gorm.DB
}

// NewSiteSettingService 构造 SiteSettingService。
func NewSiteSettingService(gdb *gorm.DB) *SiteSettingService {
	return &SiteSettingService{db: gdb}
}

var settingKeys = []string{
	db.SettingKeySEOTitle,
	db.SettingKeySEODescription,
	db.SettingKeyBannerTitle,
	db.SettingKeyAboutTitle,
	db.SettingKeyAboutDescription,
	db.SettingKeyAboutBannerTitle,
	db.SettingKeyAboutBannerImage,
	db.SettingKeyAboutBannerText,
	db.SettingKeyContactTitle,
	db.SettingKeyContactMobile,
	db.SettingKeyContactEmail,
	db.SettingKeyContactLocation,
	db.SettingKeySocialGithub,
	db.SettingKeySocialLinkedin,
	db.SettingKeySocialTwitter,
}

// GetSettings 读取站点设置，未设置的键返回默认值。
func (s *SiteSettingService) GetSettings() (SiteSettings, error) {
	result := defaultSiteSettings

	var records []db.SiteSetting
	if err := s.db.Where("key IN ?", settingKeys).Find(&records).Error; err != nil {
		return result, fmt.Errorf("load site settings: %w", err)
	}

	for _, record := range records {
		value := strings.TrimSpace(record.Value)
		if value == "" {
			continue
		}
		if field := result.fieldFor(record.Key); field != nil {
			*field = value
		}
	}

	return result, nil
}

// UpdateSettings 保存站点设置；置空的键在读取时回退默认文案。
func (s *SiteSettingService) UpdateSettings(input SiteSettings) (SiteSettings, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, key := range settingKeys {
			field := input.fieldFor(key)
			if field == nil {
				continue
			}
			if err := upsertSetting(tx, key, strings.TrimSpace(*field)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return SiteSettings{}, fmt.Errorf("update site settings: %w", err)
	}

	return s.GetSettings()
}

// fieldFor maps a setting key onto the matching struct field.
func (s *SiteSettings) fieldFor(key string) *string {
	switch key {
	case db.SettingKeySEOTitle:
		return &s.SEOTitle
	case db.SettingKeySEODescription:
		return &s.SEODescription
	case db.SettingKeyBannerTitle:
		return &s.BannerTitle
	case db.SettingKeyAboutTitle:
		return &s.AboutTitle
	case db.SettingKeyAboutDescription:
		return &s.AboutDescription
	case db.SettingKeyAboutBannerTitle:
		return &s.AboutBannerTitle
	case db.SettingKeyAboutBannerImage:
		return &s.AboutBannerImage
	case db.SettingKeyAboutBannerText:
		return &s.AboutBannerDescription
	case db.SettingKeyContactTitle:
		return &s.ContactTitle
	case db.SettingKeyContactMobile:
		return &s.ContactMobile
	case db.SettingKeyContactEmail:
		return &s.ContactEmail
	case db.SettingKeyContactLocation:
		return &s.ContactLocation
	case db.SettingKeySocialGithub:
		return &s.SocialGithub
	case db.SettingKeySocialLinkedin:
		return &s.SocialLinkedin
	case db.SettingKeySocialTwitter:
		return &s.SocialTwitter
	}
	return nil
}

func upsertSetting(tx *gorm.DB, key, value string) error {
	setting := db.SiteSetting{Key: key, Value: value}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&setting).Error; err != nil {
		return fmt.Errorf("upsert setting %s: %w", key, err)
	}
	return nil
}
