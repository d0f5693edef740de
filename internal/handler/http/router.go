package http

import (
	"log/slog"
	"os"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http/middleware"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	invoiceHandler InvoiceHandler,
	paystubHandler PaystubHandler,
	payrollHandler PayrollHandler,
	masterHandler MasterHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "choice-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/invoices", func(r chi.Router) {
				r.Post("/", invoiceHandler.Save)
				r.Get("/", invoiceHandler.Get)
			})

			r.Get("/paystubs", paystubHandler.List)

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/", payrollHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/paid", payrollHandler.MarkPaid)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/process-payroll/{date}", paystubHandler.Reprocess)
			})

			r.Route("/employees", func(r chi.Router) {
				// Admin/manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.ManagerOrAdmin)
					r.Get("/", masterHandler.ListEmployees)
					r.Get("/{id}", masterHandler.GetEmployee)
				})
			})

			r.Route("/vendors", func(r chi.Router) {
				r.Get("/", masterHandler.ListVendors)
				r.Get("/{id}", masterHandler.GetVendor)
			})
		})
	})
	return r
}
