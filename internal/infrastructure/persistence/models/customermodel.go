package models

type CustomerModel struct {
	ID      uint   `gorm:"primaryKey"`
	Name    string `gorm:"uniqueIndex;size:255;not null"`
	Contact string `gorm:"size:255;not null;default:''"`
	Phone   string `gorm:"size:50;not null;default:''"`
	Notes   string `gorm:"type:text;not null;default:''"`
}

func (CustomerModel) TableName() string {
	return "customers"
}
