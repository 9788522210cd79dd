package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/snenterprise/sitebooks-backend-go/internal/config"
	"github.com/snenterprise/sitebooks-backend-go/internal/handler/http/middleware"
	"github.com/snenterprise/sitebooks-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	projectHandler ProjectHandler,
	workerHandler WorkerHandler,
	billingHandler BillingHandler,
	purchaseHandler PurchaseHandler,
	kharchiHandler KharchiHandler,
	advanceHandler AdvanceHandler,
	messHandler MessHandler,
	paymentHandler PaymentHandler,
	executionHandler ExecutionHandler,
	ledgerHandler LedgerHandler,
	backupHandler BackupHandler,
	assistantHandler AssistantHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "sitebooks"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.GetByID)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", workerHandler.List)
				r.Post("/", workerHandler.Create)
				r.Get("/{id}", workerHandler.GetByID)
				r.Put("/{id}", workerHandler.Update)
				r.Delete("/{id}", workerHandler.Delete)
			})

			r.Route("/bills", func(r chi.Router) {
				r.Get("/", billingHandler.ListBills)
				r.Post("/", billingHandler.CreateBill)
				r.Get("/{id}", billingHandler.GetBill)
				r.Put("/{id}", billingHandler.UpdateBill)
				r.Delete("/{id}", billingHandler.DeleteBill)
			})

			r.Route("/client-payments", func(r chi.Router) {
				r.Get("/", billingHandler.ListClientPayments)
				r.Post("/", billingHandler.CreateClientPayment)
				r.Put("/{id}", billingHandler.UpdateClientPayment)
				r.Delete("/{id}", billingHandler.DeleteClientPayment)
			})

			r.Route("/purchases", func(r chi.Router) {
				r.Get("/", purchaseHandler.List)
				r.Post("/", purchaseHandler.Create)
				r.Put("/{id}", purchaseHandler.Update)
				r.Delete("/{id}", purchaseHandler.Delete)
			})

			r.Route("/kharchi", func(r chi.Router) {
				r.Get("/", kharchiHandler.List)
				r.Post("/", kharchiHandler.Save)
				r.Delete("/{id}", kharchiHandler.Delete)
			})

			r.Route("/advances", func(r chi.Router) {
				r.Get("/", advanceHandler.List)
				r.Post("/", advanceHandler.Create)
				r.Put("/{id}", advanceHandler.Update)
				r.Delete("/{id}", advanceHandler.Delete)
			})

			r.Route("/mess-entries", func(r chi.Router) {
				r.Get("/", messHandler.List)
				r.Post("/", messHandler.Create)
				r.Put("/{id}", messHandler.Update)
				r.Delete("/{id}", messHandler.Delete)
			})

			r.Route("/worker-payments", func(r chi.Router) {
				r.Get("/", paymentHandler.List)
				r.Post("/", paymentHandler.Save)
				r.Post("/preview", paymentHandler.Preview)
				r.Delete("/{id}", paymentHandler.Delete)
			})

			r.Route("/execution-levels", func(r chi.Router) {
				r.Get("/", executionHandler.List)
				r.Post("/", executionHandler.Create)
				r.Put("/{id}", executionHandler.Update)
				r.Delete("/{id}", executionHandler.Delete)
			})

			r.Route("/ledger", func(r chi.Router) {
				r.Get("/receivables", ledgerHandler.Receivables)
				r.Get("/trend", ledgerHandler.MonthlyTrend)
				r.Get("/profit-loss", ledgerHandler.ProfitAndLoss)
				r.Get("/gst-checklist", ledgerHandler.GSTChecklist)
			})

			r.Route("/backup", func(r chi.Router) {
				r.Get("/export", backupHandler.Export)
				r.Post("/import", backupHandler.Import)
			})

			r.Route("/assistant", func(r chi.Router) {
				r.Post("/estimate", assistantHandler.Estimate)
				r.Post("/chat", assistantHandler.Chat)
			})
		})
	})
	return r
}
