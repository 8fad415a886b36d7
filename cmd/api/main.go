package main

import (
	"fmt"
	"net/http"

	"github.com/kalea-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/kalea-hr/payroll-backend-go/internal/handler/http"
	"github.com/kalea-hr/payroll-backend-go/internal/pkg/database"
	"github.com/kalea-hr/payroll-backend-go/internal/repository/postgresql"
	payslipService "github.com/kalea-hr/payroll-backend-go/internal/service/payslip"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)
	workShiftRepo := postgresql.NewWorkShiftRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	payslipSvc := payslipService.NewPayslipService(
		employeeRepo,
		workShiftRepo,
		attendanceRepo,
		holidayRepo,
		leaveRepo,
		payrollRepo,
	)

	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(cfg.App.Env, cfg.App.AllowedOrigins, payslipHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
