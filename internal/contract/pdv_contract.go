package contract

type PDVRequest struct {
	CompanyName string `json:"companyName" validate:"required,min=2,max=100"`
	ContactName string `json:"contactName" validate:"required,min=2,max=100"`
	City        string `json:"city" validate:"required,min=2,max=80"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
}

// PDVResponse carries the registry fields plus the reconciled route
// view for the partner.
type PDVResponse struct {
	ID          string  `json:"id"`
	CompanyName string  `json:"companyName"`
	ContactName string  `json:"contactName"`
	City        string  `json:"city"`
	Phone       string  `json:"phone,omitempty"`
	IsFuture    bool    `json:"isFuture"`
	DaysSince   int     `json:"daysSince"`
	Severity    string  `json:"severity"`
	Efficiency  float64 `json:"efficiency"`
	Revenue     float64 `json:"totalRevenue"`
	VisitCount  int     `json:"visitCount"`
	Consigned   int     `json:"lastConsigned"`
	LastVisit   string  `json:"lastVisit,omitempty"`
}

type PDVDetailResponse struct {
	PDVResponse
	Flavors []FlavorMovementResponse `json:"flavors"`
	History []MonthlyStatResponse    `json:"history"`
}

type FlavorMovementResponse struct {
	TruffleID string `json:"truffleId"`
	Name      string `json:"name"`
	Sold      int    `json:"sold"`
	LeftOver  int    `json:"leftOver"`
	Consigned int    `json:"consigned"`
}

type CityResponse struct {
	Name      string  `json:"name"`
	PDVCount  int     `json:"pdvCount"`
	Revenue   float64 `json:"revenue"`
	DaysSince int     `json:"daysSince"`
	Severity  string  `json:"severity"`
}
