package models

// ProjectModel stores portfolio projects with parallel EN/ES text fields.
// Technologies and tags are comma-joined strings; the merge layer splits
// them into sequences at read time.
type ProjectModel struct {
	Base
	TitleEn      string      `json:"title_en"       gorm:"not null"`
	TitleEs      string      `json:"title_es"       gorm:"not null"`
	ShortDescEn  string      `json:"short_desc_en"  gorm:"type:text"`
	ShortDescEs  string      `json:"short_desc_es"  gorm:"type:text"`
	FullDescEn   string      `json:"full_desc_en"   gorm:"type:longtext"`
	FullDescEs   string      `json:"full_desc_es"   gorm:"type:longtext"`
	Year         string      `json:"year"`
	Technologies string      `json:"technologies"`
	LiveURL      string      `json:"live_url"`
	CodeURL      string      `json:"code_url"`
	TagsEn       string      `json:"tags_en"`
	TagsEs       string      `json:"tags_es"`
	MediaImages  StringArray `json:"media_images"   gorm:"type:longtext"`
	MediaVideos  StringArray `json:"media_videos"   gorm:"type:longtext"`
}

func (ProjectModel) TableName() string { return "projects" }
