package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

// BucketKey identifies one agent+vendor+issue-date bucket. Every save is
// a full replace of the bucket; there are no per-row updates.
type BucketKey struct {
	AgentID   int
	VendorID  int
	IssueDate time.Time
}

// Sale is one customer sale line.
type Sale struct {
	ID         int64
	VendorID   int
	AgentID    int
	IssueDate  time.Time
	SaleDate   time.Time
	WeekEnding time.Time
	FirstName  string
	LastName   string
	Address    string
	City       string
	Status     string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Placeholder field value for zero-sale stub rows.
const PlaceholderField = "---"

// NewPlaceholderSale builds the zero-amount stub row an agent gets when a
// bucket is saved with no sales. Downstream joins rely on every saved
// bucket having at least one sale row.
func NewPlaceholderSale(key BucketKey, weekEnding time.Time) Sale {
	return Sale{
		VendorID:   key.VendorID,
		AgentID:    key.AgentID,
		IssueDate:  key.IssueDate,
		SaleDate:   key.IssueDate,
		WeekEnding: weekEnding,
		FirstName:  PlaceholderField,
		LastName:   PlaceholderField,
		Address:    PlaceholderField,
		City:       PlaceholderField,
		Status:     PlaceholderField,
		Amount:     decimal.Zero,
	}
}

// IsPlaceholder reports whether the sale is a zero-sale stub row.
func (s Sale) IsPlaceholder() bool {
	return s.FirstName == PlaceholderField && s.LastName == PlaceholderField && s.Amount.IsZero()
}

// Override is a commission line not tied to an individual sale, e.g. a
// manager roll-up.
type Override struct {
	ID         int64
	VendorID   int
	AgentID    int
	IssueDate  time.Time
	WeekEnding time.Time
	Name       string
	NumSales   int
	Commission decimal.Decimal
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Expense is a deduction or reimbursement line.
type Expense struct {
	ID         int64
	VendorID   int
	AgentID    int
	IssueDate  time.Time
	WeekEnding time.Time
	Type       string
	Amount     decimal.Decimal
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Bucket is the full line-item set for one key.
type Bucket struct {
	Key       BucketKey
	Sales     []Sale
	Overrides []Override
	Expenses  []Expense
}

// Total computes the payroll total for a replacement set:
// sum of sale amounts, override totals and expense amounts.
func Total(sales []Sale, overrides []Override, expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Amount)
	}
	for _, o := range overrides {
		total = total.Add(o.Total)
	}
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}
