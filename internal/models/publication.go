package models

// PublicationModel stores academic publications. Title and citation are not
// bilingual; Lang is the two-letter code of the publication itself.
type PublicationModel struct {
	Base
	Title       string `json:"title"        gorm:"not null"`
	CitationAPA string `json:"citation_apa" gorm:"type:text"`
	URL         string `json:"url"`
	Lang        string `json:"lang"         gorm:"type:char(2)"`
	TagsEn      string `json:"tags_en"`
	TagsEs      string `json:"tags_es"`
}

func (PublicationModel) TableName() string { return "publications" }
