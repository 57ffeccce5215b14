package db

import "gorm.io/gorm"

// SiteSetting 存储后台可配置的站点级键值对。
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeySEOTitle 表示站点 SEO 标题。
	SettingKeySEOTitle = "seo_meta_title"
	// SettingKeySEODescription 表示站点 SEO 描述。
	SettingKeySEODescription = "seo_meta_description"
	// SettingKeyBannerTitle 表示首页横幅标题。
	SettingKeyBannerTitle = "home_banner_title"
	// SettingKeyAboutTitle 表示首页介绍标题。
	SettingKeyAboutTitle = "home_about_title"
	// SettingKeyAboutDescription 表示首页介绍文案。
	SettingKeyAboutDescription = "home_about_description"
	// SettingKeyAboutBannerTitle 表示关于页横幅标题。
	SettingKeyAboutBannerTitle = "about_banner_title"
	// SettingKeyAboutBannerImage 表示关于页横幅图片。
	SettingKeyAboutBannerImage = "about_banner_image"
	// SettingKeyAboutBannerText 表示关于页横幅文案。
	SettingKeyAboutBannerText = "about_banner_description"
	// SettingKeyContactTitle 表示联系页标题。
	SettingKeyContactTitle = "contact_title"
	// SettingKeyContactMobile 表示联系电话。
	SettingKeyContactMobile = "contact_mobile"
	// SettingKeyContactEmail 表示联系邮箱。
	SettingKeyContactEmail = "contact_email"
	// SettingKeyContactLocation 表示所在城市。
	SettingKeyContactLocation = "contact_location"
	// SettingKeySocialGithub 表示 GitHub 主页链接。
	SettingKeySocialGithub = "social_github"
	// SettingKeySocialLinkedin 表示 LinkedIn 主页链接。
	SettingKeySocialLinkedin = "social_linkedin"
	// SettingKeySocialTwitter 表示 Twitter 主页链接。
	SettingKeySocialTwitter = "social_twitter"
)
