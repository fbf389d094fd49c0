package models

import (
	"fmt"
	"strings"
)

// Filter selects a subset of transactions by kind.
type Filter string

const (
	FilterAll     Filter = "all"
	FilterIncome  Filter = "income"
	FilterExpense Filter = "expense"
)

// ParseFilter parses all/income/expense. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	switch Filter(strings.ToLower(strings.TrimSpace(s))) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterIncome:
		return FilterIncome, nil
	case FilterExpense:
		return FilterExpense, nil
	default:
		return "", fmt.Errorf("unknown filter %q (expected all, income or expense)", s)
	}
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Transaction) bool {
	switch f {
	case FilterIncome:
		return t.Kind == KindIncome
	case FilterExpense:
		return t.Kind == KindExpense
	default:
		return true
	}
}

func (f Filter) String() string {
	return string(f)
}
