package models

import (
	"strings"
)

// CategorySet holds the ordered category labels offered for each kind.
// It is reference data: loaded once at startup and never mutated afterwards.
type CategorySet struct {
	Income  []string `yaml:"income"`
	Expense []string `yaml:"expense"`
}

// DefaultCategories returns the built-in category labels.
func DefaultCategories() CategorySet {
	return CategorySet{
		Income: []string{
			"Salary",
			"Freelance",
			"Investments",
			"Sale",
			"Rent Received",
			"Other",
		},
		Expense: []string{
			"Food",
			"Transport",
			"Housing",
			"Health",
			"Education",
			"Entertainment",
			"Shopping",
			"Bills",
			"Other",
		},
	}
}

// For returns a copy of the labels for kind.
func (c CategorySet) For(kind Kind) []string {
	var src []string
	switch kind {
	case KindIncome:
		src = c.Income
	case KindExpense:
		src = c.Expense
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Contains reports whether category is one of kind's labels.
// Matching ignores case and surrounding whitespace.
func (c CategorySet) Contains(kind Kind, category string) bool {
	category = strings.TrimSpace(category)
	for _, label := range c.For(kind) {
		if strings.EqualFold(label, category) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether neither kind has any labels.
func (c CategorySet) IsEmpty() bool {
	return len(c.Income) == 0 && len(c.Expense) == 0
}

// Category policies.
const (
	// CategoryPolicyAdvisory accepts unknown categories and flags them.
	CategoryPolicyAdvisory = "advisory"
	// CategoryPolicyStrict rejects categories outside the kind's set.
	CategoryPolicyStrict = "strict"
)

// legacyCategories maps the browser app's Portuguese labels to ours.
var legacyCategories = map[string]string{
	"Salário":          "Salary",
	"Freelance":        "Freelance",
	"Investimentos":    "Investments",
	"Venda":            "Sale",
	"Aluguel Recebido": "Rent Received",
	"Outros":           "Other",
	"Alimentação":      "Food",
	"Transporte":       "Transport",
	"Moradia":          "Housing",
	"Saúde":            "Health",
	"Educação":         "Education",
	"Diversão":         "Entertainment",
	"Compras":          "Shopping",
	"Contas":           "Bills",
}

// TranslateLegacyCategory returns the English label for a Portuguese one.
// Unknown labels are returned unchanged.
func TranslateLegacyCategory(label string) string {
	if en, ok := legacyCategories[strings.TrimSpace(label)]; ok {
		return en
	}
	return label
}

// legacyKinds maps the browser app's kind values to ours.
var legacyKinds = map[string]Kind{
	"receita": KindIncome,
	"despesa": KindExpense,
}

// TranslateLegacyKind maps receita/despesa to income/expense.
// Other values are returned unchanged.
func TranslateLegacyKind(kind string) string {
	if k, ok := legacyKinds[strings.ToLower(strings.TrimSpace(kind))]; ok {
		return string(k)
	}
	return kind
}
