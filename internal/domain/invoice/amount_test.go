package invoice

import (
	"encoding/json"
	"testing"
)

func TestAmountUnmarshalJSON(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{`12.34`, "12.34"},
		{`"12.34"`, "12.34"},
		{`"  12.34 "`, "12.34"},
		{`-5`, "-5"},
		{`""`, "0"},
		{`null`, "0"},
		{`"n/a"`, "0"},
		{`"12,34"`, "0"}, // comma decimals are not recognized
	}
	for _, c := range cases {
		var a Amount
		if err := json.Unmarshal([]byte(c.input), &a); err != nil {
			t.Fatalf("Unmarshal(%s) failed: %v", c.input, err)
		}
		if a.Decimal.String() != c.want {
			t.Errorf("Unmarshal(%s) = %s, want %s", c.input, a.Decimal.String(), c.want)
		}
	}
}

func TestAmountInStruct(t *testing.T) {
	var in SaleInput
	payload := `{"first_name":"Jane","last_name":"Doe","amount":"abc"}`
	if err := json.Unmarshal([]byte(payload), &in); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !in.Amount.Decimal.IsZero() {
		t.Errorf("non-numeric amount decoded to %s, want 0", in.Amount.Decimal)
	}
	if in.FirstName != "Jane" {
		t.Errorf("sibling field lost: %+v", in)
	}
}
