package model

// TitleResponseRate is one entry of the per-title response rate
// breakdown: the display job title and the percentage of applications
// under that title which received a response beyond the automated
// confirmation or a rejection. Rate is rounded to 2 decimal places.
type TitleResponseRate struct {
	Title string  `json:"title"`
	Rate  float64 `json:"rate"`
}

// ResponseRateValue wraps the overall response rate percentage,
// rounded to 1 decimal place.
type ResponseRateValue struct {
	Value float64 `json:"value"`
}

// WeekBucket is one ISO-calendar-week count in the dashboard series.
// Week labels look like "2025-W23".
type WeekBucket struct {
	Week  string `json:"week"`
	Count int    `json:"count"`
}

// MonthBucket is one calendar-month count in the dashboard series.
// Month labels look like "Jun 2025".
type MonthBucket struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// DashboardMetrics is the flat summary served by the dashboard
// endpoint. All rates are percentages rounded to 1 decimal place.
// ApplicationsPerWeek always holds exactly 12 entries and
// ApplicationsPerMonth exactly 6, oldest first, regardless of input.
type DashboardMetrics struct {
	TotalApplications       int            `json:"total_applications"`
	InterviewRate           float64        `json:"interview_rate"`
	OfferRate               float64        `json:"offer_rate"`
	AvgTimeToResponse       float64        `json:"avg_time_to_response"`
	ApplicationsLast7Days   int            `json:"applications_last_7_days"`
	ApplicationsLast30Days  int            `json:"applications_last_30_days"`
	ActiveApplications      int            `json:"active_applications"`
	ApplicationsByStatus    map[string]int `json:"applications_by_status"`
	ApplicationsPerWeek     []WeekBucket   `json:"applications_per_week"`
	ApplicationsPerMonth    []MonthBucket  `json:"applications_per_month"`
}
