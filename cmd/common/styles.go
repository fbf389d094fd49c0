// Package common contains shared functionality for command handlers
package common

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// IncomeColor marks income amounts.
	IncomeColor = lipgloss.Color("#2ECC71")
	// ExpenseColor marks expense amounts.
	ExpenseColor = lipgloss.Color("#E74C3C")
	// WarningColor marks warnings.
	WarningColor = lipgloss.Color("#FFE66D")
	// SubtleColor marks less prominent text.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().Foreground(IncomeColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().Foreground(ExpenseColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().Bold(true)
)
