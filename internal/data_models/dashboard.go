package dto

type DashboardMetrics struct {
	TotalTasks           int64   `json:"totalTasks"`
	CompletedTasks       int64   `json:"completedTasks"`
	PendingTasks         int64   `json:"pendingTasks"`
	CompletionPercentage float64 `json:"completionPercentage"`
}
