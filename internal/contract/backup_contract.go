package contract

import "encoding/json"

const BackupVersion = "2.0"

// BackupFile is the export document. Item keys keep the legacy
// camelCase wire names so old exports keep importing.
type BackupFile struct {
	Sales      []BackupSale    `json:"sales"`
	Truffles   []BackupTruffle `json:"truffles"`
	PDVs       []BackupPDV     `json:"pdvs"`
	Name       string          `json:"name"`
	Image      string          `json:"image"`
	Theme      string          `json:"theme"`
	Version    string          `json:"version"`
	ExportDate string          `json:"exportDate"`
}

type BackupTruffle struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Flavor      string  `json:"flavor"`
	PriceStreet float64 `json:"priceStreet"`
	PricePDV    float64 `json:"pricePDV"`
	Icon        string  `json:"icon"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type BackupPDV struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName"`
	City        string `json:"city"`
	Phone       string `json:"phone,omitempty"`
}

type BackupSale struct {
	ID          string           `json:"id"`
	Timestamp   int64            `json:"timestamp"`
	Date        string           `json:"date"`
	Type        string           `json:"type"`
	City        string           `json:"city"`
	Location    string           `json:"location"`
	PdvID       string           `json:"pdvId,omitempty"`
	OwnerName   string           `json:"ownerName,omitempty"`
	Observation string           `json:"observation,omitempty"`
	Total       float64          `json:"total"`
	Items       []BackupSaleItem `json:"items"`
}

type BackupSaleItem struct {
	TruffleID            string `json:"truffleId"`
	Quantity             int    `json:"quantity"`
	LeftOverQuantity     int    `json:"leftOverQuantity"`
	NewConsignedQuantity int    `json:"newConsignedQuantity"`
}

// HasRequiredKeys checks the import precondition: the three
// collection keys must be present. Nothing else is validated.
func HasRequiredKeys(raw []byte) bool {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return false
	}
	for _, key := range []string{"sales", "truffles", "pdvs"} {
		if _, ok := probe[key]; !ok {
			return false
		}
	}
	return true
}
