package models

// Skill categories accepted by the API.
const (
	SkillCategoryTechnical = "technical"
	SkillCategoryAcademic  = "academic"
	SkillCategoryLanguages = "languages"
)

// SkillCategories lists the fixed category enumeration in display order.
var SkillCategories = []string{
	SkillCategoryTechnical,
	SkillCategoryAcademic,
	SkillCategoryLanguages,
}

// ValidSkillCategory reports whether category is one of the fixed set.
func ValidSkillCategory(category string) bool {
	for _, c := range SkillCategories {
		if c == category {
			return true
		}
	}
	return false
}

// SkillModel stores a single skill entry. Icon is an optional icon
// identifier; unknown identifiers simply do not render client-side.
type SkillModel struct {
	Base
	Name     string `json:"name"     gorm:"not null"`
	Category string `json:"category" gorm:"index;not null"`
	Icon     string `json:"icon"`
}

func (SkillModel) TableName() string { return "skills" }
