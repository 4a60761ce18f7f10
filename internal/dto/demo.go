package dto

// DemoDataRequest selects how many days of demo history to generate
type DemoDataRequest struct {
	Days int   `query:"days" json:"days" validate:"omitempty,min=1,max=730"`
	Seed int64 `query:"seed" json:"seed"`
}

// DemoDataResponse summarizes generated demo transactions
type DemoDataResponse struct {
	TransactionsCreated int      `json:"transactions_created"`
	Accounts            []string `json:"accounts"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
}
