package main

import (
	"fmt"
	"net/http"

	"github.com/fieldteam/attendance-backend-go/internal/config"
	appHTTP "github.com/fieldteam/attendance-backend-go/internal/handler/http"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/database"
	"github.com/fieldteam/attendance-backend-go/internal/pkg/jwt"
	"github.com/fieldteam/attendance-backend-go/internal/repository/postgresql"
	activityService "github.com/fieldteam/attendance-backend-go/internal/service/activity"
	attendanceService "github.com/fieldteam/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/fieldteam/attendance-backend-go/internal/service/auth"
	directoryService "github.com/fieldteam/attendance-backend-go/internal/service/directory"
	leaveService "github.com/fieldteam/attendance-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	dailyReportRepo := postgresql.NewDailyReportRepository(db)
	hourlyReportRepo := postgresql.NewHourlyReportRepository(db)
	minutesRepo := postgresql.NewMinutesRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	authSvc := serviceAuth.NewAuthService(userRepo, JWTService)
	activitySvc := activityService.NewActivityService(dailyReportRepo, hourlyReportRepo, minutesRepo)
	directorySvc := directoryService.NewDirectoryService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(userRepo, dailyReportRepo, hourlyReportRepo)
	leaveSvc := leaveService.NewLeaveService(db, balanceRepo, applicationRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	activityHandler := appHTTP.NewActivityHandler(activitySvc)
	directoryHandler := appHTTP.NewDirectoryHandler(directorySvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		cfg,
		JWTService,
		authHandler,
		activityHandler,
		directoryHandler,
		attendanceHandler,
		leaveHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
