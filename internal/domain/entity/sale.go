package entity

const (
	ChannelRua = "Rua"
	ChannelPDV = "PDV"

	// Fixed placeholders used for street sales, which have no partner.
	StreetCity     = "Venda de Rua"
	StreetLocation = "Ponto Móvel"
)

// Sale is one ledger record: a street sale or a PDV consignment visit.
//
// Timestamp is authoritative for all date arithmetic; Date is a display
// label frozen at creation time and never re-derived. Total is a frozen
// snapshot of the channel prices at save time and must never be
// recomputed from the current catalog.
type Sale struct {
	ID          string `gorm:"primaryKey"`
	Timestamp   int64  `gorm:"not null;index"`
	Date        string `gorm:"not null"`
	Type        string `gorm:"not null"`
	City        string `gorm:"not null"`
	Location    string `gorm:"not null"`
	PdvID       string // empty on legacy and imported records
	OwnerName   string
	Observation string
	Total       float64    `gorm:"not null"`
	Items       []SaleItem `gorm:"foreignKey:SaleID"`
}

// SaleItem is the per-flavor stock movement of one visit.
//
// Quantity is units sold and paid for, LeftOverQuantity units returned
// unsold from the previous consignment, NewConsignedQuantity units left
// behind this visit. The latter two only apply to the PDV channel.
type SaleItem struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	SaleID               string `gorm:"not null;index"`
	TruffleID            string `gorm:"not null"` // may dangle after catalog deletion
	Quantity             int    `gorm:"not null"`
	LeftOverQuantity     int    `gorm:"not null"`
	NewConsignedQuantity int    `gorm:"not null"`
}

// IsZero reports whether the item carries no stock movement at all.
// All-zero items are excluded from turnover and revenue math.
func (i SaleItem) IsZero() bool {
	return i.Quantity == 0 && i.LeftOverQuantity == 0 && i.NewConsignedQuantity == 0
}
