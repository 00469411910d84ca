package models

// SalarySlip is one monthly payout entry in the salary ledger.
type SalarySlip struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}
