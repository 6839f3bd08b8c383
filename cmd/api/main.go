package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peopledesk/hrops-backend-go/internal/config"
	appHTTP "github.com/peopledesk/hrops-backend-go/internal/handler/http"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/clock"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/database"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/email"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/hrops-backend-go/internal/pkg/oauth"
	"github.com/peopledesk/hrops-backend-go/internal/repository/postgresql"
	attendanceService "github.com/peopledesk/hrops-backend-go/internal/service/attendance"
	authService "github.com/peopledesk/hrops-backend-go/internal/service/auth"
	employeeService "github.com/peopledesk/hrops-backend-go/internal/service/employee"
	holidayService "github.com/peopledesk/hrops-backend-go/internal/service/holiday"
	leaveService "github.com/peopledesk/hrops-backend-go/internal/service/leave"
	reportService "github.com/peopledesk/hrops-backend-go/internal/service/report"
	salaryService "github.com/peopledesk/hrops-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	accountRepo := postgresql.NewAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	lateCheckInRepo := postgresql.NewLateCheckInRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	predefinedHolidayRepo := postgresql.NewPredefinedHolidayRepository(db)
	selectedHolidayRepo := postgresql.NewSelectedHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	clk := clock.System()

	authSvc := authService.NewAuthService(txManager, accountRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, lateCheckInRepo, employeeRepo, clk)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, salaryRepo, selectedHolidayRepo, clk)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo, attendanceRepo, lateCheckInRepo, clk)
	holidaySvc := holidayService.NewHolidayService(predefinedHolidayRepo, selectedHolidayRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, emailService)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Report:     appHTTP.NewReportHandler(reportSvc, clk),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
	}

	router := appHTTP.NewRouter(jwtService, handlers, cfg.App.FrontendURL, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
