package parse

import "testing"

type budgetArgs struct {
	MonthlyIncome  float64 `json:"monthly_income"`
	SavingsGoalPct float64 `json:"savings_goal_pct"`
	Currency       string  `json:"currency"`
}

func TestStringAs_Struct(t *testing.T) {
	args, err := StringAs[budgetArgs](`{"monthly_income": 10000, "savings_goal_pct": 20, "currency": "MXN"}`)
	if err != nil {
		t.Fatalf("StringAs failed: %v", err)
	}
	if args.MonthlyIncome != 10000 {
		t.Errorf("expected 10000, got %v", args.MonthlyIncome)
	}
	if args.Currency != "MXN" {
		t.Errorf("expected MXN, got %q", args.Currency)
	}
}

func TestStringAs_RepairedJSON(t *testing.T) {
	// Single quotes and unquoted keys should be repaired and parsed.
	args, err := StringAs[budgetArgs](`{monthly_income: 5000, currency: 'USD'}`)
	if err != nil {
		t.Fatalf("StringAs failed on repairable JSON: %v", err)
	}
	if args.MonthlyIncome != 5000 {
		t.Errorf("expected 5000, got %v", args.MonthlyIncome)
	}
	if args.Currency != "USD" {
		t.Errorf("expected USD, got %q", args.Currency)
	}
}

func TestStringAs_Primitives(t *testing.T) {
	num, err := StringAs[int]("42")
	if err != nil || num != 42 {
		t.Errorf("expected 42, got %v (err=%v)", num, err)
	}

	flag, err := StringAs[bool]("true")
	if err != nil || !flag {
		t.Errorf("expected true, got %v (err=%v)", flag, err)
	}

	rate, err := StringAs[float64]("17.25")
	if err != nil || rate != 17.25 {
		t.Errorf("expected 17.25, got %v (err=%v)", rate, err)
	}

	text, err := StringAs[string]("hello")
	if err != nil || text != "hello" {
		t.Errorf("expected hello, got %q (err=%v)", text, err)
	}
}

func TestStringAs_Slice(t *testing.T) {
	answers, err := StringAs[[]int]("[1,2,3,4]")
	if err != nil {
		t.Fatalf("StringAs failed: %v", err)
	}
	if len(answers) != 4 || answers[3] != 4 {
		t.Errorf("unexpected slice: %v", answers)
	}
}

func TestStringAs_InvalidInt(t *testing.T) {
	if _, err := StringAs[int]("not a number"); err == nil {
		t.Error("expected error for non-numeric int input")
	}
}
