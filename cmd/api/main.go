package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/sheepai/hrms-backend-go/internal/config"
	appHTTP "github.com/sheepai/hrms-backend-go/internal/handler/http"
	openaiClient "github.com/sheepai/hrms-backend-go/internal/pkg/openai"
	"github.com/sheepai/hrms-backend-go/internal/pkg/pdf"
	sendgridClient "github.com/sheepai/hrms-backend-go/internal/pkg/sendgrid"
	"github.com/sheepai/hrms-backend-go/internal/repository/docdir"
	"github.com/sheepai/hrms-backend-go/internal/repository/spreadsheet"
	dashboardService "github.com/sheepai/hrms-backend-go/internal/service/dashboard"
	employeeService "github.com/sheepai/hrms-backend-go/internal/service/employee"
	jobdescService "github.com/sheepai/hrms-backend-go/internal/service/jobdesc"
	notificationService "github.com/sheepai/hrms-backend-go/internal/service/notification"
	payslipService "github.com/sheepai/hrms-backend-go/internal/service/payslip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	employeeRepo := spreadsheet.NewEmployeeRepository(cfg.Storage.EmployeeFile)
	documentStore := docdir.NewDocumentStore(cfg.Storage.DocumentDir)

	renderer, err := pdf.NewRenderer(cfg.Company, cfg.Storage.DocumentDir)
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer:", err)
	}

	jdGenerator := openaiClient.NewGenerator(cfg.OpenAI, cfg.Company)
	dispatcher := sendgridClient.NewDispatcher(cfg.SendGrid, cfg.Company)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payslipSvc := payslipService.NewPayslipService(employeeRepo, renderer)
	jdSvc := jobdescService.NewJobDescriptionService(jdGenerator, renderer, documentStore)
	notificationSvc := notificationService.NewNotificationService(employeeRepo, documentStore, dispatcher, cfg.Company)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, documentStore)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)
	jdHandler := appHTTP.NewJobDescriptionHandler(jdSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		employeeHandler,
		payslipHandler,
		jdHandler,
		notificationHandler,
		dashboardHandler,
		cfg.Storage.DocumentDir,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
