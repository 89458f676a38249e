package models

// TicketModel is the on-disk shape of a committed ticket. The snapshot
// columns record reference data as of creation; the nullable *_id columns
// may dangle if a reference row is later removed, which retrieval must
// tolerate.
type TicketModel struct {
	ID                   uint    `gorm:"primaryKey"`
	TicketNumber         string  `gorm:"uniqueIndex;size:20;not null"`
	TicketYear           int     `gorm:"not null;uniqueIndex:idx_tickets_year_sequence"`
	TicketSequence       int     `gorm:"not null;uniqueIndex:idx_tickets_year_sequence"`
	Direction            string  `gorm:"size:3;not null;index"`
	CreatedAt            int64   `gorm:"not null;index"`
	JobID                *uint   `gorm:"index"`
	JobCodeSnapshot      string  `gorm:"size:100;not null;index"`
	JobNameSnapshot      string  `gorm:"size:255;not null"`
	CustomerSnapshot     string  `gorm:"size:255;not null;default:''"`
	TruckID              *uint   `gorm:"index"`
	TruckNumberSnapshot  string  `gorm:"size:50;not null;index"`
	MaterialID           *uint   `gorm:"index"`
	MaterialNameSnapshot string  `gorm:"size:255;not null;index"`
	Quantity             float64 `gorm:"not null"`
	Unit                 string  `gorm:"size:50;not null"`
	Notes                string  `gorm:"type:text;not null;default:''"`
	PDFPath              string  `gorm:"size:512;not null"`
	PDFBlob              []byte  `gorm:"type:blob"`

	// No gorm associations: relationships are managed by application logic,
	// and snapshots must survive deletion of the referenced rows.
}

func (TicketModel) TableName() string {
	return "tickets"
}
