package model

// ClickStatistics summarizes every mouse press of a session.
type ClickStatistics struct {
	TotalClicks             int `json:"totalClicks"`
	ClicksWithDeadzone      int `json:"clicksWithDeadzone"`
	ClicksWithCounterstrafe int `json:"clicksWithCounterstrafe"`

	AvgDeadzoneMs float64 `json:"avgDeadzoneMs"`
	MinDeadzoneMs float64 `json:"minDeadzoneMs"`
	MaxDeadzoneMs float64 `json:"maxDeadzoneMs"`

	AvgCounterstrafeMs float64 `json:"avgCounterstrafeMs"`
	MinCounterstrafeMs float64 `json:"minCounterstrafeMs"`
	MaxCounterstrafeMs float64 `json:"maxCounterstrafeMs"`
}

// DeltaDistribution holds quantiles of one delta series.
type DeltaDistribution struct {
	N   int     `json:"n"`
	P50 float64 `json:"p50"`
	P90 float64 `json:"p90"`
	P99 float64 `json:"p99"`
}

// KeyHoldSummary aggregates the closed hold intervals of one key.
type KeyHoldSummary struct {
	Key       string  `json:"key"`
	Holds     int     `json:"holds"`
	AvgHoldMs float64 `json:"avgHoldMs"`
	MaxHoldMs float64 `json:"maxHoldMs"`
}

// SessionReport is the machine readable form of everything inspect prints.
type SessionReport struct {
	Events        int                `json:"events"`
	Recomputed    bool               `json:"recomputed"`
	Statistics    *ClickStatistics   `json:"statistics"`
	Deadzone      *DeltaDistribution `json:"deadzone"`
	Counterstrafe *DeltaDistribution `json:"counterstrafe"`
	Holds         []KeyHoldSummary   `json:"holds"`
}
