package catalog

import "lanzar/internal/domain"

func inr(category string, amount int64) domain.FinancialItem {
	return domain.FinancialItem{Category: category, Amount: amount, Currency: "INR"}
}

// Statements are the published financial statements
var Statements = []domain.FinancialStatement{
	{
		Year:    2025,
		Quarter: 2,
		Type:    domain.StatementBalanceSheet,
		Data: domain.FinancialData{
			Assets: []domain.FinancialItem{
				inr("Current Assets", 2500000),
				inr("Cash and Cash Equivalents", 1200000),
				inr("Accounts Receivable", 800000),
				inr("Inventory", 300000),
				inr("Prepaid Expenses", 200000),
				inr("Fixed Assets", 1800000),
				inr("Property, Plant & Equipment", 1200000),
				inr("Intangible Assets", 400000),
				inr("Investments", 200000),
			},
			Liabilities: []domain.FinancialItem{
				inr("Current Liabilities", 1200000),
				inr("Accounts Payable", 600000),
				inr("Short-term Debt", 300000),
				inr("Accrued Expenses", 300000),
				inr("Long-term Liabilities", 800000),
				inr("Long-term Debt", 600000),
				inr("Deferred Tax Liabilities", 200000),
			},
			Equity: []domain.FinancialItem{
				inr("Share Capital", 1000000),
				inr("Retained Earnings", 1800000),
				inr("Other Comprehensive Income", 500000),
			},
		},
		DocumentURL: "/documents/balance-sheet-2024-q2.pdf",
	},
}
