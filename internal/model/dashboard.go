package model

// DashboardCounts are the headline counts of the salesman dashboard.
type DashboardCounts struct {
	TotalAssignBusiness   int64 `json:"total_assign_business"`
	TotalInactiveBusiness int64 `json:"total_inactive_business"`
	TotalPendingOrders    int64 `json:"total_pending_orders"`
}

// SalesmanPerformance is the salesman with their latest target progress.
type SalesmanPerformance struct {
	*Salesman
	TargetAmount   float64 `json:"target_amount"`
	TargetFrom     *Date   `json:"target_from"`
	TargetTo       *Date   `json:"target_to"`
	AchievedAmount float64 `json:"achieved_amount"`
	PendingAmount  float64 `json:"pending_amount"`
}

// DashboardData is the salesman dashboard response body.
type DashboardData struct {
	Success      bool                `json:"success"`
	Data         DashboardCounts     `json:"data"`
	SalesmanInfo SalesmanPerformance `json:"salesman_info"`
}

// SalesChart is a per-day series of delivered sales.
type SalesChart struct {
	Labels []string  `json:"labels"`
	Sales  []float64 `json:"sales"`
	Orders []int64   `json:"orders"`
}

// SalesPoint is one day of the sales chart.
type SalesPoint struct {
	Day    Date
	Sales  float64
	Orders int64
}

// TargetChart is the latest target against delivered sales.
type TargetChart struct {
	TotalTarget      float64 `json:"total_target_amount"`
	TotalAchievement float64 `json:"total_achievement_amount"`
	TotalPending     float64 `json:"total_pending_amount"`
	AboveAchievement float64 `json:"above_achievement_amount"`
	TargetFrom       *Date   `json:"target_from,omitempty"`
	TargetTo         *Date   `json:"target_to,omitempty"`
	TargetExpired    bool    `json:"target_expired"`
}

// DailySales aggregates delivered items on one day.
type DailySales struct {
	SaleDate    string  `json:"sale_date"`
	TotalOrders int64   `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
}

// DashboardStates are the compact dashboard counters.
type DashboardStates struct {
	TotalBusiness      int64 `json:"total_business"`
	TotalPendingOrders int64 `json:"total_pending_orders"`
}

// TeamLeaderStates are organisation-wide counters.
type TeamLeaderStates struct {
	TotalSalesman         int64   `json:"total_salesman"`
	TotalSalesmanTargets  float64 `json:"total_salesman_targets"`
	TotalAssignedBusiness int64   `json:"total_assigned_business"`
	BusinessInActive      int64   `json:"business_in_active"`
	TotalOrders           int64   `json:"total_orders"`
	TotalPendingOrders    int64   `json:"total_pending_orders"`
	PendingAmount         string  `json:"pending_amount"`
}

// OrderTotals is the order count and pending summary across businesses.
type OrderTotals struct {
	TotalOrders   int64
	PendingOrders int64
	PendingAmount float64
}

// TargetAchievement compares one target period with its sales.
type TargetAchievement struct {
	SalesmanID       int64   `json:"business_salesman_id"`
	SalesmanName     string  `json:"business_salesman_name"`
	SalesmanEmail    *string `json:"business_salesman_email"`
	SalesmanContact  *string `json:"business_salesman_contact_number"`
	TargetFrom       Date    `json:"business_salesman_target_from"`
	TargetTo         Date    `json:"business_salesman_target_to"`
	TotalTarget      float64 `json:"total_target"`
	TotalAchievement float64 `json:"total_achievement"`
	Difference       float64 `json:"difference"`
}

// TargetAchievementReport groups periods by whether the target was met.
type TargetAchievementReport struct {
	AboveTarget []TargetAchievement `json:"above_target"`
	BelowTarget []TargetAchievement `json:"below_target"`
}
