package models

type TruckModel struct {
	ID          uint   `gorm:"primaryKey"`
	TruckNumber string `gorm:"uniqueIndex;size:50;not null"`
	Description string `gorm:"size:255;not null;default:''"`
	TruckSize   string `gorm:"size:50;not null;default:''"`
	HauledBy    string `gorm:"size:255;not null;default:''"`
	Active      bool   `gorm:"not null;default:true;index"`
}

func (TruckModel) TableName() string {
	return "trucks"
}
