package models

type MaterialModel struct {
	ID           uint   `gorm:"primaryKey"`
	MaterialName string `gorm:"uniqueIndex;size:255;not null"`
	Active       bool   `gorm:"not null;default:true;index"`
}

func (MaterialModel) TableName() string {
	return "materials"
}

// MaterialPriceModel stores a per-axle price sheet for a material and
// haul direction. Axle columns are nullable because not every axle count
// is quoted.
type MaterialPriceModel struct {
	ID         uint   `gorm:"primaryKey"`
	MaterialID uint   `gorm:"not null;index"`
	Direction  string `gorm:"size:3;not null"`
	Category   string `gorm:"size:100;not null;default:''"`
	Axle1      *float64
	Axle2      *float64
	Axle3      *float64
	Axle4      *float64
	Axle5      *float64
	Axle6      *float64
	Axle7      *float64
	Axle8      *float64
	Axle9      *float64
	Active     bool `gorm:"not null;default:true"`
}

func (MaterialPriceModel) TableName() string {
	return "material_prices"
}
