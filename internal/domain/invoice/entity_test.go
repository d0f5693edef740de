package invoice

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func testKey() BucketKey {
	return BucketKey{
		AgentID:   3,
		VendorID:  1,
		IssueDate: time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewPlaceholderSale(t *testing.T) {
	weekEnding := time.Date(2024, time.May, 4, 0, 0, 0, 0, time.UTC)
	s := NewPlaceholderSale(testKey(), weekEnding)

	if !s.IsPlaceholder() {
		t.Fatal("placeholder sale does not report IsPlaceholder")
	}
	if !s.Amount.IsZero() {
		t.Errorf("placeholder amount = %s, want 0", s.Amount)
	}
	if s.FirstName != PlaceholderField || s.LastName != PlaceholderField {
		t.Errorf("placeholder names = %q/%q", s.FirstName, s.LastName)
	}
	if !s.SaleDate.Equal(testKey().IssueDate) {
		t.Errorf("placeholder sale date = %v, want issue date", s.SaleDate)
	}
	if !s.WeekEnding.Equal(weekEnding) {
		t.Errorf("placeholder week ending = %v, want %v", s.WeekEnding, weekEnding)
	}
}

func TestIsPlaceholderRealSale(t *testing.T) {
	s := Sale{FirstName: "Jane", LastName: "Doe", Amount: decimal.NewFromInt(100)}
	if s.IsPlaceholder() {
		t.Error("real sale reported as placeholder")
	}
}

func TestTotal(t *testing.T) {
	sales := []Sale{
		{Amount: decimal.NewFromFloat(100.50)},
		{Amount: decimal.NewFromFloat(49.50)},
	}
	overrides := []Override{
		{Total: decimal.NewFromInt(50)},
	}
	expenses := []Expense{
		{Amount: decimal.NewFromInt(-25)},
	}

	got := Total(sales, overrides, expenses)
	if !got.Equal(decimal.NewFromInt(175)) {
		t.Errorf("Total = %s, want 175", got)
	}
}

func TestTotalEmpty(t *testing.T) {
	if !Total(nil, nil, nil).IsZero() {
		t.Error("Total of nothing is not zero")
	}
}
