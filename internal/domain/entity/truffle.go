package entity

// Truffle is a catalog flavor with one price per sales channel.
type Truffle struct {
	ID          string  `gorm:"primaryKey"`
	Name        string  `gorm:"not null"`
	Flavor      string  `gorm:"not null"`
	PriceStreet float64 `gorm:"not null"`
	PricePDV    float64 `gorm:"not null"`
	Icon        string  `gorm:"not null"`
	ImageURL    string
}

// PriceFor returns the unit price for the given sales channel.
func (t *Truffle) PriceFor(channel string) float64 {
	if channel == ChannelRua {
		return t.PriceStreet
	}
	return t.PricePDV
}
