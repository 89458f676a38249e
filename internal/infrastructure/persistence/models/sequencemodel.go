package models

// SequenceModel holds one counter row per ticket year. last_value only
// ever moves forward; rows are never deleted.
type SequenceModel struct {
	TicketYear int `gorm:"primaryKey;autoIncrement:false"`
	LastValue  int `gorm:"not null;default:0"`
}

func (SequenceModel) TableName() string {
	return "ticket_sequence"
}
