package contract

type SaleItemRequest struct {
	TruffleID            string `json:"truffleId" validate:"required"`
	Quantity             int    `json:"quantity" validate:"gte=0"`
	LeftOverQuantity     int    `json:"leftOverQuantity" validate:"gte=0"`
	NewConsignedQuantity int    `json:"newConsignedQuantity" validate:"gte=0"`
}

type SaleRequest struct {
	Type        string            `json:"type" validate:"required,channel"`
	City        string            `json:"city" validate:"omitempty,max=80"`
	Location    string            `json:"location" validate:"omitempty,max=100"`
	PdvID       string            `json:"pdvId" validate:"omitempty"`
	OwnerName   string            `json:"ownerName" validate:"omitempty,max=100"`
	Observation string            `json:"observation" validate:"omitempty,max=500"`
	Items       []SaleItemRequest `json:"items" validate:"required,min=1,dive"`

	// Optional visit date override as epoch millis; the record is
	// stamped at local noon of that day when set.
	Date int64 `json:"date" validate:"omitempty,gte=0"`
}

type SaleItemResponse struct {
	TruffleID            string `json:"truffleId"`
	Quantity             int    `json:"quantity"`
	LeftOverQuantity     int    `json:"leftOverQuantity"`
	NewConsignedQuantity int    `json:"newConsignedQuantity"`
}

type SaleResponse struct {
	ID          string             `json:"id"`
	Timestamp   int64              `json:"timestamp"`
	Date        string             `json:"date"`
	Type        string             `json:"type"`
	City        string             `json:"city"`
	Location    string             `json:"location"`
	PdvID       string             `json:"pdvId,omitempty"`
	OwnerName   string             `json:"ownerName,omitempty"`
	Observation string             `json:"observation,omitempty"`
	Total       float64            `json:"total"`
	Items       []SaleItemResponse `json:"items"`
}
