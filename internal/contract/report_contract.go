package contract

type DashboardResponse struct {
	Today         float64                `json:"today"`
	MonthTotal    float64                `json:"monthTotal"`
	PercentChange float64                `json:"percentChange"`
	DailyAverage  float64                `json:"dailyAverage"`
	Cities        []CityActivityResponse `json:"cities"`
	Nudge         AlertResponse          `json:"nudge"`
	Alerts        []AlertResponse        `json:"alerts"`
}

type CityActivityResponse struct {
	Name       string  `json:"name"`
	DaysSince  int     `json:"daysSince"`
	Severity   string  `json:"severity"`
	Revenue    float64 `json:"total"`
	SalesCount int     `json:"salesCount"`
}

type AlertResponse struct {
	Level   string `json:"level"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type MonthlyStatResponse struct {
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Label        string  `json:"label"`
	Total        float64 `json:"total"`
	Street       float64 `json:"street"`
	PDV          float64 `json:"pdv"`
	Count        int     `json:"count"`
	PDVItemsSold int     `json:"pdvItemsSold"`
	PDVItemsLeft int     `json:"pdvItemsLeft"`
	Conversion   float64 `json:"conversion"`
}

type AnnualReportResponse struct {
	Year       int                   `json:"year"`
	Total      float64               `json:"total"`
	Street     float64               `json:"street"`
	PDV        float64               `json:"pdv"`
	Count      int                   `json:"count"`
	Conversion float64               `json:"conversion"`
	Months     []MonthlyStatResponse `json:"months"`
}
