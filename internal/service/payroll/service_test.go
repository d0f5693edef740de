package payroll

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/drewpayment/choice-marketing-partners-sub002/internal/domain/payroll"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/database"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/dates"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/filter"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/jwt"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/pkg/validator"
	"github.com/drewpayment/choice-marketing-partners-sub002/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayrollDB *database.DB

func payrollTestInit(t *testing.T) {
	if testPayrollDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testPayrollDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
}

func truncatePayrollTables(t *testing.T, ctx context.Context) {
	_, err := testPayrollDB.Exec(ctx, "TRUNCATE TABLE payroll CASCADE")
	require.NoError(t, err)
}

func payrollAuthContext(t *testing.T, userID, employeeID int, isAdmin bool) context.Context {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	tokenString, _, err := jwtService.GenerateAccessToken(userID, fmt.Sprintf("user%d@example.com", userID), employeeID, isAdmin, false)
	require.NoError(t, err)
	token, err := jwtService.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func payrollDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := dates.Parse(s)
	require.NoError(t, err)
	return d
}

func seedLedgerRow(t *testing.T, ctx context.Context, repo payroll.LedgerRepository, agentID int, name string, amount int64, payDate time.Time) payroll.LedgerRow {
	row, err := repo.Insert(ctx, payroll.LedgerRow{
		AgentID:   agentID,
		AgentName: name,
		Amount:    decimal.NewFromInt(amount),
		IsPaid:    false,
		VendorID:  1,
		PayDate:   payDate,
	})
	require.NoError(t, err)
	return row
}

func TestListLedger(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	repo := postgresql.NewLedgerRepository(testPayrollDB)
	svc := NewLedgerService(repo)
	payDate := payrollDate(t, "2024-05-15")

	seedLedgerRow(t, ctx, repo, 3, "Agent Three", 145, payDate)
	seedLedgerRow(t, ctx, repo, 4, "Agent Four", 55, payDate)

	adminCtx := payrollAuthContext(t, 1, 1, true)
	result, err := svc.ListLedger(adminCtx, payDate, filter.None(), filter.None(), false)
	require.NoError(t, err)

	assert.Len(t, result.Rows, 2)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(200)), "total = %s", result.Total)
	assert.Equal(t, "2024-05-15", result.PayDate)
}

func TestListLedger_NonAdminScopedToSelf(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	repo := postgresql.NewLedgerRepository(testPayrollDB)
	svc := NewLedgerService(repo)
	payDate := payrollDate(t, "2024-05-15")

	seedLedgerRow(t, ctx, repo, 3, "Agent Three", 145, payDate)
	seedLedgerRow(t, ctx, repo, 4, "Agent Four", 55, payDate)

	result, err := svc.ListLedger(payrollAuthContext(t, 12, 3, false), payDate, filter.None(), filter.None(), false)
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, 3, result.Rows[0].AgentID)
	assert.True(t, result.Total.Equal(decimal.NewFromInt(145)))
}

func TestMarkPaid(t *testing.T) {
	ctx := context.Background()
	payrollTestInit(t)
	truncatePayrollTables(t, ctx)

	repo := postgresql.NewLedgerRepository(testPayrollDB)
	svc := NewLedgerService(repo)
	payDate := payrollDate(t, "2024-05-15")

	row1 := seedLedgerRow(t, ctx, repo, 3, "Agent Three", 145, payDate)
	seedLedgerRow(t, ctx, repo, 4, "Agent Four", 55, payDate)

	adminCtx := payrollAuthContext(t, 1, 1, true)
	updated, err := svc.MarkPaid(adminCtx, payroll.MarkPaidRequest{IDs: []int64{row1.ID}, IsPaid: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated)

	// Paid rows drop out of the default listing.
	unpaid, err := svc.ListLedger(adminCtx, payDate, filter.None(), filter.None(), false)
	require.NoError(t, err)
	require.Len(t, unpaid.Rows, 1)
	assert.Equal(t, 4, unpaid.Rows[0].AgentID)

	all, err := svc.ListLedger(adminCtx, payDate, filter.None(), filter.None(), true)
	require.NoError(t, err)
	assert.Len(t, all.Rows, 2)
}

func TestMarkPaid_Validation(t *testing.T) {
	payrollTestInit(t)
	repo := postgresql.NewLedgerRepository(testPayrollDB)
	svc := NewLedgerService(repo)

	_, err := svc.MarkPaid(context.Background(), payroll.MarkPaidRequest{})
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.True(t, errors.As(err, &errs), "error type = %T", err)
}
