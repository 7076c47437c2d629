package domain

import "time"

// VisitLog is one tracked page view.
type VisitLog struct {
	ID        int64     `json:"id"`
	Page      string    `json:"page"`
	IPAddress string    `json:"ipAddress"`
	Country   string    `json:"country"`
	Timestamp time.Time `json:"timestamp"`
}

// AnalyticsStats aggregates the visit log for the admin dashboard.
// Session duration and bounce rate need client-side timing the tracker
// does not collect, so they stay "N/A".
type AnalyticsStats struct {
	TotalVisitors      int    `json:"totalVisitors"`
	UniqueVisitors     int    `json:"uniqueVisitors"`
	PageViews          int    `json:"pageViews"`
	AvgSessionDuration string `json:"avgSessionDuration"`
	BounceRate         string `json:"bounceRate"`
	TopCountry         string `json:"topCountry"`
}

type DailyStat struct {
	Date      string `json:"date"`
	Visitors  int    `json:"visitors"`
	PageViews int    `json:"pageViews"`
}

type PageStat struct {
	Page  string `json:"page"`
	Views int    `json:"views"`
}
