package main

import (
	"fmt"
	"net/http"

	"github.com/snenterprise/sitebooks-backend-go/internal/config"
	appHTTP "github.com/snenterprise/sitebooks-backend-go/internal/handler/http"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/database"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/gemini"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/jwt"
	"github.com/snenterprise/sitebooks-backend-go/internal/repository/postgresql"
	advanceService "github.com/snenterprise/sitebooks-backend-go/internal/service/advance"
	assistantService "github.com/snenterprise/sitebooks-backend-go/internal/service/assistant"
	authService "github.com/snenterprise/sitebooks-backend-go/internal/service/auth"
	backupService "github.com/snenterprise/sitebooks-backend-go/internal/service/backup"
	billingService "github.com/snenterprise/sitebooks-backend-go/internal/service/billing"
	executionService "github.com/snenterprise/sitebooks-backend-go/internal/service/execution"
	kharchiService "github.com/snenterprise/sitebooks-backend-go/internal/service/kharchi"
	ledgerService "github.com/snenterprise/sitebooks-backend-go/internal/service/ledger"
	messService "github.com/snenterprise/sitebooks-backend-go/internal/service/mess"
	paymentService "github.com/snenterprise/sitebooks-backend-go/internal/service/payment"
	projectService "github.com/snenterprise/sitebooks-backend-go/internal/service/project"
	purchaseService "github.com/snenterprise/sitebooks-backend-go/internal/service/purchase"
	workerService "github.com/snenterprise/sitebooks-backend-go/internal/service/worker"
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

	userRepo := postgresql.NewUserRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	billRepo := postgresql.NewBillRepository(db)
	clientPaymentRepo := postgresql.NewClientPaymentRepository(db)
	purchaseRepo := postgresql.NewPurchaseRepository(db)
	kharchiRepo := postgresql.NewKharchiRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	messRepo := postgresql.NewMessRepository(db)
	workerPaymentRepo := postgresql.NewWorkerPaymentRepository(db)
	executionLevelRepo := postgresql.NewExecutionLevelRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	geminiClient := gemini.NewClient(cfg.Gemini)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	projectSvc := projectService.NewProjectService(projectRepo)
	workerSvc := workerService.NewWorkerService(workerRepo)
	billingSvc := billingService.NewBillingService(billRepo, clientPaymentRepo, projectRepo)
	purchaseSvc := purchaseService.NewPurchaseService(purchaseRepo, projectRepo)
	kharchiSvc := kharchiService.NewKharchiService(kharchiRepo, workerRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, workerRepo)
	messSvc := messService.NewMessService(messRepo)
	paymentSvc := paymentService.NewPaymentService(workerPaymentRepo, workerRepo, kharchiRepo, advanceRepo)
	executionSvc := executionService.NewExecutionService(executionLevelRepo, projectRepo)
	ledgerSvc := ledgerService.NewLedgerService(
		projectRepo,
		billRepo,
		clientPaymentRepo,
		purchaseRepo,
		kharchiRepo,
		advanceRepo,
		workerPaymentRepo,
		messRepo,
	)
	backupSvc := backupService.NewBackupService(
		db,
		projectRepo,
		workerRepo,
		billRepo,
		clientPaymentRepo,
		kharchiRepo,
		advanceRepo,
		purchaseRepo,
		executionLevelRepo,
		messRepo,
		workerPaymentRepo,
	)
	assistantSvc := assistantService.NewAssistantService(geminiClient)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	workerHandler := appHTTP.NewWorkerHandler(workerSvc)
	billingHandler := appHTTP.NewBillingHandler(billingSvc)
	purchaseHandler := appHTTP.NewPurchaseHandler(purchaseSvc)
	kharchiHandler := appHTTP.NewKharchiHandler(kharchiSvc)
	advanceHandler := appHTTP.NewAdvanceHandler(advanceSvc)
	messHandler := appHTTP.NewMessHandler(messSvc)
	paymentHandler := appHTTP.NewPaymentHandler(paymentSvc)
	executionHandler := appHTTP.NewExecutionHandler(executionSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	backupHandler := appHTTP.NewBackupHandler(backupSvc)
	assistantHandler := appHTTP.NewAssistantHandler(assistantSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		projectHandler,
		workerHandler,
		billingHandler,
		purchaseHandler,
		kharchiHandler,
		advanceHandler,
		messHandler,
		paymentHandler,
		executionHandler,
		ledgerHandler,
		backupHandler,
		assistantHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
