package contract

type TruffleResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Flavor      string  `json:"flavor"`
	PriceStreet float64 `json:"priceStreet"`
	PricePDV    float64 `json:"pricePDV"`
	Icon        string  `json:"icon"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type TruffleRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=80"`
	Flavor      string  `json:"flavor" validate:"required,min=2,max=80"`
	PriceStreet float64 `json:"priceStreet" validate:"gte=0"`
	PricePDV    float64 `json:"pricePDV" validate:"gte=0"`
	Icon        string  `json:"icon" validate:"required,max=40"`
	ImageURL    string  `json:"imageUrl" validate:"omitempty,max=200000"`
}
