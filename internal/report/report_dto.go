package report

type MonthlyStatResponse struct {
	Rank       int     `json:"rank"`
	EmployeeID string  `json:"employee_id"`
	Name       string  `json:"name"`
	Position   string  `json:"position"`
	OnTime     int     `json:"on_time"`
	Late       int     `json:"late"`
	VeryLate   int     `json:"very_late"`
	Absent     int     `json:"absent"`
	TotalDays  int     `json:"total_days"`
	Score      float64 `json:"score"`
	Percentage int     `json:"percentage"`
}

type MonthlyRankingResponse struct {
	Year      int                   `json:"year"`
	Month     int                   `json:"month"`
	MonthName string                `json:"month_name"`
	Ranking   []MonthlyStatResponse `json:"ranking"`
}
