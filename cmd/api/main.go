package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/config"
	paystubDomain "github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/paystub"
	appHTTP "github.com/drewpayment/choice-marketing-partners-sub002/internal/handler/http"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/cron"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/jwt"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/repository/postgresql"
	invoiceService "github.com/drewpayment/choice-marketing-partners-sub002/internal/service/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/service/master"
	payrollService "github.com/drewpayment/choice-marketing-partners-sub002/internal/service/payroll"
	paystubService "github.com/drewpayment/choice-marketing-partners-sub002/internal/service/paystub"
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

	invoiceRepo := postgresql.NewInvoiceRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)
	paystubRepo := postgresql.NewPaystubRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	vendorRepo := postgresql.NewVendorRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	paystubSvc := paystubService.NewPaystubService(paystubRepo, invoiceRepo, employeeRepo, vendorRepo, cfg.Payroll.SystemUserID)
	invoiceSvc := invoiceService.NewInvoiceService(db, invoiceRepo, ledgerRepo, employeeRepo, paystubSvc, cfg.Payroll.VendorScopedPaystubs)
	ledgerSvc := payrollService.NewLedgerService(ledgerRepo)
	masterSvc := master.NewMasterService(employeeRepo, vendorRepo)

	invoiceHandler := appHTTP.NewInvoiceHandler(invoiceSvc)
	paystubHandler := appHTTP.NewPaystubHandler(paystubSvc, cfg.Payroll.VendorScopedPaystubs)
	payrollHandler := appHTTP.NewPayrollHandler(ledgerSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	scheduler := cron.NewScheduler()
	if cfg.Cron.ReprocessEnabled {
		// Safety net for the current pay period: heals any gap left by a
		// rebuild that failed partway after an invoice save.
		scheduler.AddJob("reprocess-current-paystubs", cfg.Cron.ReprocessInterval, func(ctx context.Context) error {
			issueDate := dates.CurrentIssueDate(time.Now())
			_, err := paystubSvc.RebuildForDate(ctx, issueDate, paystubDomain.RebuildOptions{
				VendorScoped: cfg.Payroll.VendorScopedPaystubs,
				ModifiedBy:   cfg.Payroll.SystemUserID,
			})
			return err
		})
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		JWTService,
		invoiceHandler,
		paystubHandler,
		payrollHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
