package entity

// PDV is a retail partner holding consigned stock.
//
// CompanyName doubles as the legacy join key against ledger records
// (case-insensitive match on Sale.Location); new records carry the
// stable Sale.PdvID instead.
type PDV struct {
	ID          string `gorm:"primaryKey"`
	CompanyName string `gorm:"not null"`
	ContactName string `gorm:"not null"`
	City        string `gorm:"not null"`
	Phone       string
}
