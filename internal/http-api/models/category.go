package models

type Category struct {
	ID        int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" gorm:"uniqueIndex;size:80;not null"`
	Slug      string `json:"slug" gorm:"uniqueIndex;size:80;not null"`
	SortOrder int    `json:"order" gorm:"column:sort_order;default:0;not null"`
}

func (Category) TableName() string {
	return "categories"
}
