package router

import (
	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/middleware"
	"bizops/backend/internal/pkg/repository/postgresql"

	"bizops/backend/internal/controller/http/v1/file"
	"bizops/backend/internal/repository/postgres/account"
	"bizops/backend/internal/repository/postgres/asset"
	"bizops/backend/internal/repository/postgres/attendance"
	"bizops/backend/internal/repository/postgres/cashflow"
	"bizops/backend/internal/repository/postgres/commission"
	"bizops/backend/internal/repository/postgres/dailyreport"
	"bizops/backend/internal/repository/postgres/dashboard"
	"bizops/backend/internal/repository/postgres/device"
	"bizops/backend/internal/repository/postgres/group"
	"bizops/backend/internal/repository/postgres/user"

	account_controller "bizops/backend/internal/controller/http/v1/account"
	asset_controller "bizops/backend/internal/controller/http/v1/asset"
	attendance_controller "bizops/backend/internal/controller/http/v1/attendance"
	auth_controller "bizops/backend/internal/controller/http/v1/auth"
	cashflow_controller "bizops/backend/internal/controller/http/v1/cashflow"
	commission_controller "bizops/backend/internal/controller/http/v1/commission"
	dailyreport_controller "bizops/backend/internal/controller/http/v1/dailyreport"
	dashboard_controller "bizops/backend/internal/controller/http/v1/dashboard"
	device_controller "bizops/backend/internal/controller/http/v1/device"
	group_controller "bizops/backend/internal/controller/http/v1/group"
	user_controller "bizops/backend/internal/controller/http/v1/user"

	"github.com/redis/go-redis/v9"
)

type Router struct {
	*web.App
	postgresDB         *postgresql.Database
	redisDB            *redis.Client
	port               string
	auth               *auth.Auth
	baseUrl            string
	fileServerBasePath string
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	baseUrl string,
	fileServerBasePath string,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		baseUrl,
		fileServerBasePath,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware())

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	groupPostgres := group.NewRepository(r.postgresDB)
	devicePostgres := device.NewRepository(r.postgresDB)
	accountPostgres := account.NewRepository(r.postgresDB)
	assetPostgres := asset.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	dailyReportPostgres := dailyreport.NewRepository(r.postgresDB)
	commissionPostgres := commission.NewRepository(r.postgresDB)
	cashflowPostgres := cashflow.NewRepository(r.postgresDB)
	dashboardPostgres := dashboard.NewRepository(r.postgresDB, r.redisDB)

	// controller
	authController := auth_controller.NewController(userPostgres, r.auth)
	userController := user_controller.NewController(userPostgres, r.baseUrl)
	groupController := group_controller.NewController(groupPostgres)
	deviceController := device_controller.NewController(devicePostgres)
	accountController := account_controller.NewController(accountPostgres)
	assetController := asset_controller.NewController(assetPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres)
	dailyReportController := dailyreport_controller.NewController(dailyReportPostgres)
	commissionController := commission_controller.NewController(commissionPostgres)
	cashflowController := cashflow_controller.NewController(cashflowPostgres)
	dashboardController := dashboard_controller.NewController(dashboardPostgres)

	fileC := file.NewController(r.App, r.fileServerBasePath)

	// #auth
	r.Post("/api/v1/sign-in", authController.SignIn)
	r.Post("/api/v1/refresh-token", authController.RefreshToken)

	r.GET("/media/*filepath", fileC.File)
	r.HEAD("/media/*filepath", fileC.File)

	// #user
	r.Get("/api/v1/user/list", userController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/user/export", userController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/user/:id/qrcode", userController.GetQrCodeByEmployeeId, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Get("/api/v1/user/:id", userController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/user/create", userController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/v1/user/:id", userController.UpdateColumns, middleware.Authenticate(r.auth))
	r.Delete("/api/v1/user/:id", userController.Resign, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #group
	r.Get("/api/v1/group/list", groupController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/group/:id", groupController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/group/create", groupController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/group/:id", groupController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/group/:id", groupController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #device
	r.Get("/api/v1/device/list", deviceController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/device/:id", deviceController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/device/create", deviceController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Post("/api/v1/device/:id/photo", deviceController.UploadPhoto, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/device/:id", deviceController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/device/:id", deviceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #account
	r.Get("/api/v1/account/list", accountController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/account/:id", accountController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/account/create", accountController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/account/:id", accountController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/account/:id", accountController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #asset
	r.Get("/api/v1/asset/list", assetController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/asset/:id", assetController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/asset/create", assetController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Post("/api/v1/asset/:id/photo", assetController.UploadPhoto, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/asset/:id", assetController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/asset/:id", assetController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Get("/api/v1/attendance/today", attendanceController.Today, middleware.Authenticate(r.auth))
	r.Post("/api/v1/attendance/clock-in", attendanceController.ClockIn, middleware.Authenticate(r.auth))
	r.Post("/api/v1/attendance/clock-out", attendanceController.ClockOut, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/list", attendanceController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/attendance/export", attendanceController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/attendance/:id", attendanceController.GetDetailById, middleware.Authenticate(r.auth))
	r.Patch("/api/v1/attendance/:id/status", attendanceController.UpdateStatus, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/attendance/:id", attendanceController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #daily_report (append-only: no update or delete routes)
	r.Post("/api/v1/daily-report/submit", dailyReportController.Submit, middleware.Authenticate(r.auth))
	r.Get("/api/v1/daily-report/previous-closing", dailyReportController.PreviousClosing, middleware.Authenticate(r.auth))
	r.Get("/api/v1/daily-report/list", dailyReportController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/daily-report/sales-trend", dailyReportController.SalesTrend, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/daily-report/:id", dailyReportController.GetDetailById, middleware.Authenticate(r.auth))

	// #commission
	r.Get("/api/v1/commission/list", commissionController.GetList, middleware.Authenticate(r.auth))
	r.Get("/api/v1/commission/summary", commissionController.MonthSummary, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/commission/export", commissionController.ExportExcel, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/commission/statement/:id", commissionController.Statement, middleware.Authenticate(r.auth))
	r.Get("/api/v1/commission/:id", commissionController.GetDetailById, middleware.Authenticate(r.auth))
	r.Post("/api/v1/commission/create", commissionController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/commission/:id", commissionController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/commission/:id", commissionController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #cashflow
	r.Get("/api/v1/cashflow/list", cashflowController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Get("/api/v1/cashflow/totals", cashflowController.GetTotals, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Get("/api/v1/cashflow/:id", cashflowController.GetDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Post("/api/v1/cashflow/create", cashflowController.Create, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Patch("/api/v1/cashflow/:id", cashflowController.UpdateColumns, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader))
	r.Delete("/api/v1/cashflow/:id", cashflowController.Delete, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #dashboard
	r.Get("/api/v1/dashboard/metrics", dashboardController.GetMetrics, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))
	r.Get("/api/v1/dashboard/charts", dashboardController.GetCharts, middleware.Authenticate(r.auth, auth.RoleAdmin, auth.RoleLeader, auth.RoleViewer))

	return r.Run(r.port)
}
