package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ghayaruae/crm-server/internal/http/middleware"
	"github.com/ghayaruae/crm-server/internal/pagination"
	"github.com/ghayaruae/crm-server/internal/service"
)

// Deps carries what the routes need.
type Deps struct {
	DB       Pinger
	Tokens   middleware.TokenVerifier
	Salesmen middleware.SalesmanChecker

	Users     service.UserService
	Masters   service.MasterService
	Business  service.BusinessService
	Documents service.DocumentService
	Dashboard service.DashboardService
	Reports   service.ReportService

	Pagination         pagination.Config
	LoginRatePerMinute int
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Everything except login and the operational endpoints requires a token.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post("/Users/Login", middleware.LoginLimiter(d.LoginRatePerMinute), Login(d.Users))

	authed := middleware.Auth(d.Tokens, d.Salesmen)
	cfg := d.Pagination

	users := app.Group("/Users", authed)
	users.Get("/GetSalesmanPrivilageList", PrivilegeCatalog(d.Users))
	users.Post("/UpdateSalesmanPermissions", UpdatePermissions(d.Users))
	users.Post("/CreatePrivillage", SavePrivilege(d.Users))
	users.Get("/GetPrivillage", ListPrivileges(d.Users, cfg))

	masters := app.Group("/Masters", authed)
	masters.Post("/CreateTarget", SaveTarget(d.Masters))
	masters.Get("/GetTargets", ListTargets(d.Masters, cfg))
	masters.Get("/GetTargetInfo", GetTarget(d.Masters))
	masters.Post("/DeleteTarget", DeleteTarget(d.Masters))
	masters.Get("/GetSalesmanList", SalesmanOptions(d.Masters))
	masters.Post("/CreateFollowup", SaveFollowup(d.Masters))
	masters.Get("/GetFollowups", ListFollowups(d.Masters, cfg))
	masters.Get("/GetFollowupInfo", GetFollowup(d.Masters))
	masters.Post("/DeleteFollowup", DeleteFollowup(d.Masters))
	masters.Post("/CreateRequestPartInquiry", SavePartRequest(d.Masters))
	masters.Get("/GetRequestPartInquiry", ListPartRequests(d.Masters, cfg))
	masters.Get("/GetRequestPartInquiryInfo", GetPartRequest(d.Masters))
	masters.Post("/DeleteRequestPartInquery", DeletePartRequest(d.Masters))

	business := app.Group("/Business", authed)
	business.Get("/GetBusinesses", ListBusinesses(d.Business, cfg))
	business.Get("/GetBusinessInfo", BusinessInfo(d.Business))
	business.Get("/GetBusinessDashboard", BusinessDashboard(d.Business))
	business.Get("/GetBusinessOrders", BusinessOrders(d.Business, cfg))
	business.Get("/GetOrderInfo", OrderInfo(d.Business))
	business.Get("/GetOrderStatusOptions", OrderStatusOptions(d.Business))
	business.Post("/UploadBusinessDocument", UploadDocument(d.Documents))
	business.Get("/GetBusinessDocuments", ListDocuments(d.Documents))
	business.Get("/DownloadBusinessDocument", DownloadDocument(d.Documents))
	business.Post("/DeleteBusinessDocument", DeleteDocument(d.Documents))

	dashboard := app.Group("/Dashboard", authed)
	dashboard.Get("/GetDashboardData", DashboardData(d.Dashboard))
	dashboard.Get("/GetBusinessesNoRecentOrders", IdleBusinesses(d.Dashboard, cfg))
	dashboard.Get("/GetMonthlySalesBySalesman", MonthlySales(d.Dashboard))
	dashboard.Get("/GetSalesmanTargetChartData", TargetChart(d.Dashboard))
	dashboard.Get("/GetSalesmanDailySales", DailySales(d.Dashboard))
	dashboard.Get("/GetDashboardStates", DashboardStates(d.Dashboard))
	dashboard.Get("/GetTeamLeaderDashboardStates", TeamLeaderStates(d.Dashboard))
	dashboard.Get("/GetTargetAchievementReport", TargetAchievement(d.Dashboard))
	dashboard.Get("/GetLastPartInquiries", LastPartInquiries(d.Dashboard))
	dashboard.Get("/GetFollowTypeChart", FollowTypeChart(d.Dashboard))

	reports := app.Group("/Reports", authed)
	reports.Get("/GetBusinessOrdersReport", BusinessOrdersReport(d.Reports, cfg))
	reports.Get("/GetBusinessAllOrdersReport", BusinessAllOrdersReport(d.Reports, cfg))
	reports.Get("/GetAllTargetReports", TargetReport(d.Reports))
	reports.Get("/GetAllFollowupsReports", FollowupReport(d.Reports))
	reports.Get("/AllSalesmanReport", SalesmanReport(d.Reports, cfg))
	reports.Get("/AllSalesmanOrderReport", SalesmanOrderReport(d.Reports, cfg))
	reports.Get("/AllSalesmanAssignBusinessReport", AssignedBusinessReport(d.Reports, cfg))
	reports.Get("/GetInventoryCrossParts", CrossParts(d.Reports, cfg))
	reports.Get("/GetSupplierBrands", SupplierBrands(d.Reports))
	reports.Get("/GetInactiveBusinessList", InactiveBusinesses(d.Reports))
}
