package invoice

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/invoice"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/jwt"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/repository/postgresql"
	paystubService "github.com/drewpayment/choice-marketing-partners-sub002/internal/service/paystub"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSystemUserID = 7

var testInvoiceDB *database.DB

func invoiceTestInit(t *testing.T) {
	if testInvoiceDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testInvoiceDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncateInvoiceTables(t *testing.T, ctx context.Context) {
	tables := []string{"invoices", "overrides", "expenses", "paystubs", "payroll", "employees", "vendors"}
	for _, table := range tables {
		_, err := testInvoiceDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

func seedAgent(t *testing.T, ctx context.Context, id int, name string) {
	_, err := testInvoiceDB.Exec(ctx, `
		INSERT INTO employees (id, name, email, is_active, is_admin, is_mgr, hidden_payroll, created_at, updated_at)
		VALUES ($1, $2, $3, true, false, false, false, NOW(), NOW())
	`, id, name, fmt.Sprintf("agent%d@example.com", id))
	require.NoError(t, err)
}

func seedVendor(t *testing.T, ctx context.Context, id int, name string) {
	_, err := testInvoiceDB.Exec(ctx, `
		INSERT INTO vendors (id, name, is_active, created_at, updated_at)
		VALUES ($1, $2, true, NOW(), NOW())
	`, id, name)
	require.NoError(t, err)
}

func authContext(t *testing.T, userID, employeeID int, isAdmin bool) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	tokenString, _, err := jwtService.GenerateAccessToken(userID, fmt.Sprintf("user%d@example.com", userID), employeeID, isAdmin, false)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestServices() (invoice.InvoiceService, invoice.InvoiceRepository) {
	invoiceRepo := postgresql.NewInvoiceRepository(testInvoiceDB)
	ledgerRepo := postgresql.NewLedgerRepository(testInvoiceDB)
	paystubRepo := postgresql.NewPaystubRepository(testInvoiceDB)
	employeeRepo := postgresql.NewEmployeeRepository(testInvoiceDB)
	vendorRepo := postgresql.NewVendorRepository(testInvoiceDB)

	paystubSvc := paystubService.NewPaystubService(paystubRepo, invoiceRepo, employeeRepo, vendorRepo, testSystemUserID)
	invoiceSvc := NewInvoiceService(testInvoiceDB, invoiceRepo, ledgerRepo, employeeRepo, paystubSvc, false)

	return invoiceSvc, invoiceRepo
}

func TestSaveInvoice_CreatesBucket(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedVendor(t, ctx, 1, "Vendor One")

	svc, _ := newTestServices()
	authCtx := authContext(t, 12, 3, false)

	req := invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
		Sales: []invoice.SaleInput{
			{SaleDate: "2024-05-10", FirstName: "Jane", LastName: "Doe", Amount: amount("100.50")},
			{SaleDate: "2024-05-11", FirstName: "John", LastName: "Roe", Amount: amount("49.50")},
		},
		Overrides:    []invoice.OverrideInput{{Name: "mgr", NumSales: 2, Commission: amount("10")}},
		Expenses:     []invoice.ExpenseInput{{Type: "fuel", Amount: amount("-25")}},
		HasOverrides: true,
		HasExpenses:  true,
	}

	result, err := svc.SaveInvoice(authCtx, req)
	require.NoError(t, err)

	assert.False(t, result.Replaced)
	assert.Equal(t, 2, result.SalesSaved)
	assert.Equal(t, 1, result.OverridesSaved)
	assert.Equal(t, 1, result.ExpensesSaved)
	assert.False(t, result.Placeholder)
	// 100.50 + 49.50 + 2*10 - 25
	assert.True(t, result.PayrollTotal.Equal(decimal.NewFromInt(145)), "payroll total = %s", result.PayrollTotal)
	assert.Equal(t, 1, result.PaystubsCreated)
	assert.Empty(t, result.PaystubErrors)

	bucket, err := svc.GetBucket(authCtx, 3, 1, mustDate(t, "2024-05-15"))
	require.NoError(t, err)
	assert.Len(t, bucket.Sales, 2)
	assert.Len(t, bucket.Overrides, 1)
	assert.Len(t, bucket.Expenses, 1)
	// Override total recomputed server-side from count x commission.
	assert.True(t, bucket.Overrides[0].Total.Equal(decimal.NewFromInt(20)))
}

func TestSaveInvoice_ResaveReplaces(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedVendor(t, ctx, 1, "Vendor One")

	svc, invoiceRepo := newTestServices()
	authCtx := authContext(t, 12, 3, false)

	req := invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
		Sales: []invoice.SaleInput{
			{FirstName: "Jane", LastName: "Doe", Amount: amount("100")},
		},
	}

	first, err := svc.SaveInvoice(authCtx, req)
	require.NoError(t, err)
	assert.False(t, first.Replaced)

	// Second save of the same bucket replaces, never duplicates.
	req.Sales = append(req.Sales, invoice.SaleInput{FirstName: "John", LastName: "Roe", Amount: amount("50")})
	second, err := svc.SaveInvoice(authCtx, req)
	require.NoError(t, err)
	assert.True(t, second.Replaced)
	assert.Equal(t, 2, second.SalesSaved)

	sales, err := invoiceRepo.GetSales(ctx, invoice.BucketKey{AgentID: 3, VendorID: 1, IssueDate: mustDate(t, "2024-05-15")})
	require.NoError(t, err)
	assert.Len(t, sales, 2)

	// Exactly one ledger row for the key after the re-save, carrying the
	// recomputed total rather than accumulating a second row.
	ledgerRepo := postgresql.NewLedgerRepository(testInvoiceDB)
	rows, err := ledgerRepo.List(ctx, mustDate(t, "2024-05-15"), filter.Equals(3), filter.Equals(1), true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Amount.Equal(decimal.NewFromInt(150)), "ledger amount = %s", rows[0].Amount)
	assert.False(t, rows[0].IsPaid)
}

func TestSaveInvoice_EmptySalesWritesPlaceholder(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedVendor(t, ctx, 1, "Vendor One")

	svc, invoiceRepo := newTestServices()
	authCtx := authContext(t, 12, 3, false)

	result, err := svc.SaveInvoice(authCtx, invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
	})
	require.NoError(t, err)

	assert.True(t, result.Placeholder)
	assert.Equal(t, 1, result.SalesSaved)
	assert.True(t, result.PayrollTotal.IsZero())

	key := invoice.BucketKey{AgentID: 3, VendorID: 1, IssueDate: mustDate(t, "2024-05-15")}
	sales, err := invoiceRepo.GetSales(ctx, key)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].IsPlaceholder())
	// Week ending on the stub follows the legacy offset from the issue date.
	assert.Equal(t, "2024-05-04", dates.Format(sales[0].WeekEnding))
}

func TestSaveInvoice_NonWednesdayDateNormalized(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedVendor(t, ctx, 1, "Vendor One")

	svc, _ := newTestServices()
	authCtx := authContext(t, 12, 3, false)

	result, err := svc.SaveInvoice(authCtx, invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-17", // Friday
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", result.IssueDate)

	// Fetching with the same off-anchor date lands on the same bucket.
	bucket, err := svc.GetBucket(authCtx, 3, 1, mustDate(t, "2024-05-17"))
	require.NoError(t, err)
	assert.Equal(t, "2024-05-15", bucket.IssueDate)
	assert.Len(t, bucket.Sales, 1)
}

func TestSaveInvoice_AgentMismatch(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedAgent(t, ctx, 4, "Other Agent")
	seedVendor(t, ctx, 1, "Vendor One")

	svc, _ := newTestServices()
	otherCtx := authContext(t, 13, 4, false)

	_, err := svc.SaveInvoice(otherCtx, invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
	})
	assert.ErrorIs(t, err, invoice.ErrAgentMismatch)

	// Admins may save on behalf of any agent.
	adminCtx := authContext(t, 1, 1, true)
	_, err = svc.SaveInvoice(adminCtx, invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
	})
	assert.NoError(t, err)
}

func TestSaveInvoice_PaystubsAggregateAcrossVendors(t *testing.T) {
	ctx := context.Background()
	invoiceTestInit(t)
	truncateInvoiceTables(t, ctx)
	seedAgent(t, ctx, 3, "Test Agent")
	seedVendor(t, ctx, 1, "Vendor One")
	seedVendor(t, ctx, 2, "Vendor Two")

	svc, _ := newTestServices()
	authCtx := authContext(t, 12, 3, false)

	_, err := svc.SaveInvoice(authCtx, invoice.SaveInvoiceRequest{
		EmployeeID: 3,
		VendorID:   1,
		IssueDate:  "2024-05-15",
		Sales: []invoice.SaleInput{
			{FirstName: "Jane", LastName: "Doe", Amount: amount("100")},
		},
	})
	require.NoError(t, err)

	result, err := svc.SaveInvoice(authCtx, invoice.SaveInvoiceRequest{
		EmployeeID:   3,
		VendorID:     2,
		IssueDate:    "2024-05-15",
		Overrides:    []invoice.OverrideInput{{Name: "mgr", NumSales: 1, Commission: amount("50")}},
		HasOverrides: true,
	})
	require.NoError(t, err)

	// One row per vendor the agent has data under, each carrying the
	// agent-wide total in legacy mode.
	assert.Equal(t, 2, result.PaystubsCreated)

	paystubRepo := postgresql.NewPaystubRepository(testInvoiceDB)
	stubs, err := paystubRepo.List(ctx, mustDate(t, "2024-05-15"), filter.Equals(3), filter.None())
	require.NoError(t, err)
	require.Len(t, stubs, 2)
	for _, stub := range stubs {
		assert.True(t, stub.Amount.Equal(decimal.NewFromInt(150)), "stub amount = %s", stub.Amount)
	}
}

func amount(s string) invoice.Amount {
	d, _ := decimal.NewFromString(s)
	return invoice.Amount{Decimal: d}
}

func mustDate(t *testing.T, s string) (d time.Time) {
	t.Helper()
	d, err := dates.Parse(s)
	require.NoError(t, err)
	return d
}
