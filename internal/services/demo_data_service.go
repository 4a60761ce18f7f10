package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"finance-view/internal/dto"
	"finance-view/internal/formatting"
	"finance-view/internal/models"
	"finance-view/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultDemoDays = 180
	MaxDemoDays     = 730

	biWeeklyDays    = 14
	maxDailyBuys    = 3
	refundRate      = 0.04
	feeRate         = 0.02
	demoAccountMask = "0042"
)

type demoMerchant struct {
	name        string
	category    string
	subcategory string
}

var demoMerchants = []demoMerchant{
	{"Whole Foods Market", models.CategoryGroceries, "Supermarket"},
	{"Trader Joe's", models.CategoryGroceries, "Supermarket"},
	{"Costco Wholesale", models.CategoryGroceries, "Warehouse"},
	{"Corner Bakery", models.CategoryGroceries, ""},
	{"Blue Bottle Coffee", models.CategoryDining, "Coffee Shops"},
	{"Starbucks", models.CategoryDining, "Coffee Shops"},
	{"Chipotle Mexican Grill", models.CategoryDining, "Fast Casual"},
	{"Olive Garden", models.CategoryDining, "Restaurants"},
	{"Uber", models.CategoryTransportation, "Rideshare"},
	{"Shell", models.CategoryTransportation, "Fuel"},
	{"Metro Transit", models.CategoryTransportation, "Public Transit"},
	{"Amazon.com", models.CategoryShopping, "Online"},
	{"Target", models.CategoryShopping, ""},
	{"IKEA", models.CategoryShopping, "Home"},
	{"Netflix", models.CategoryEntertainment, "Streaming"},
	{"AMC Theaters", models.CategoryEntertainment, "Movies"},
	{"CVS Pharmacy", models.CategoryHealthcare, "Pharmacy"},
	{"Delta Air Lines", models.CategoryTravel, "Flights"},
	{"Marriott Hotels", models.CategoryTravel, "Lodging"},
}

var demoBills = []demoMerchant{
	{"City Power & Light", models.CategoryBillsUtilities, "Electric"},
	{"Comcast Xfinity", models.CategoryBillsUtilities, "Internet"},
	{"Verizon Wireless", models.CategoryBillsUtilities, "Phone"},
}

var demoAmountRanges = map[string][2]float64{
	models.CategoryGroceries:      {15, 250},
	models.CategoryDining:         {4, 120},
	models.CategoryTransportation: {3, 80},
	models.CategoryShopping:       {10, 450},
	models.CategoryEntertainment:  {8, 60},
	models.CategoryBillsUtilities: {40, 220},
	models.CategoryHealthcare:     {10, 300},
	models.CategoryTravel:         {120, 900},
}

// demoDataService generates demo transactions into an empty development database
type demoDataService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	invalidator     ViewInvalidator
	location        *time.Location
	now             func() time.Time
	logger          *slog.Logger
}

// NewDemoDataService creates the development demo data generator
func NewDemoDataService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	invalidator ViewInvalidator,
	location *time.Location,
	logger *slog.Logger,
) DemoDataServiceInterface {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &demoDataService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		invalidator:     invalidator,
		location:        location,
		now:             time.Now,
		logger:          logger,
	}
}

// GenerateDemoData writes salary deposits, monthly bills and daily purchases
// for the requested number of days, ending today. The same seed yields the same history.
func (s *demoDataService) GenerateDemoData(req dto.DemoDataRequest) (*dto.DemoDataResponse, error) {
	days := req.Days
	if days <= 0 {
		days = DefaultDemoDays
	}
	if days > MaxDemoDays {
		days = MaxDemoDays
	}
	seed := req.Seed
	if seed == 0 {
		seed = s.now().UnixNano()
	}

	accounts, err := s.demoAccounts()
	if err != nil {
		return nil, err
	}

	end := formatting.StartOfDay(s.now().In(s.location))
	start := end.AddDate(0, 0, -(days - 1))

	g := &demoGenerator{rng: rand.New(rand.NewSource(seed))}
	transactions := g.generate(accounts, start, end)

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		return nil, fmt.Errorf("failed to store demo transactions: %w", err)
	}
	if s.invalidator != nil {
		s.invalidator.Invalidate()
	}

	names := make([]string, 0, len(accounts))
	for i := range accounts {
		names = append(names, accounts[i].DisplayName())
	}

	s.logger.Info("Demo data generated",
		"transactions", len(transactions),
		"days", days,
		"seed", seed,
	)

	return &dto.DemoDataResponse{
		TransactionsCreated: len(transactions),
		Accounts:            names,
		StartDate:           formatting.FormatDate(start),
		EndDate:             formatting.FormatDate(end),
	}, nil
}

// demoAccounts returns the stored accounts, creating a checking account when there are none
func (s *demoDataService) demoAccounts() ([]models.Account, error) {
	accounts, err := s.accountRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if len(accounts) > 0 {
		return accounts, nil
	}

	account := models.Account{
		Name:        "Everyday Checking",
		Institution: "Demo Bank",
		Mask:        demoAccountMask,
	}
	if err := s.accountRepo.Create(&account); err != nil {
		return nil, fmt.Errorf("failed to create demo account: %w", err)
	}
	return []models.Account{account}, nil
}

type demoGenerator struct {
	rng *rand.Rand
}

func (g *demoGenerator) generate(accounts []models.Account, start, end time.Time) []models.Transaction {
	primary := accounts[0].ID

	var transactions []models.Transaction
	transactions = append(transactions, g.salaries(primary, start, end)...)
	transactions = append(transactions, g.bills(primary, start, end)...)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		for i := g.rng.Intn(maxDailyBuys + 1); i > 0; i-- {
			account := accounts[g.rng.Intn(len(accounts))].ID
			transactions = append(transactions, g.purchase(account, day))
		}
	}
	return transactions
}

// salaries are paid every other Friday
func (g *demoGenerator) salaries(accountID uuid.UUID, start, end time.Time) []models.Transaction {
	base := []float64{2500, 3000, 3500, 4000}[g.rng.Intn(4)]

	payday := start
	for payday.Weekday() != time.Friday {
		payday = payday.AddDate(0, 0, 1)
	}

	var transactions []models.Transaction
	for ; !payday.After(end); payday = payday.AddDate(0, 0, biWeeklyDays) {
		transactions = append(transactions, g.transaction(accountID, payday, decimal.NewFromFloat(base), false,
			demoMerchant{"ACME Corporation", models.CategoryIncome, "Paycheck"}, "Direct Deposit - Salary"))
	}
	return transactions
}

// bills fall on a random day of every month in range
func (g *demoGenerator) bills(accountID uuid.UUID, start, end time.Time) []models.Transaction {
	var transactions []models.Transaction
	for month := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location()); !month.After(end); month = month.AddDate(0, 1, 0) {
		for _, bill := range demoBills {
			day := month.AddDate(0, 0, g.rng.Intn(28))
			if day.Before(start) || day.After(end) {
				continue
			}
			transactions = append(transactions, g.transaction(accountID, day, g.amount(bill.category), true,
				bill, "Bill Payment - "+bill.name))
		}
	}
	return transactions
}

func (g *demoGenerator) purchase(accountID uuid.UUID, day time.Time) models.Transaction {
	roll := g.rng.Float64()
	if roll < feeRate {
		fee := []float64{2.50, 3.00, 5.00, 15.00, 35.00}[g.rng.Intn(5)]
		return g.transaction(accountID, day, decimal.NewFromFloat(fee), true,
			demoMerchant{"Demo Bank", models.CategoryFees, "Service Fee"}, "Service Fee")
	}

	merchant := demoMerchants[g.rng.Intn(len(demoMerchants))]
	if roll < feeRate+refundRate {
		return g.transaction(accountID, day, g.amount(merchant.category), false, merchant, "Refund - "+merchant.name)
	}
	return g.transaction(accountID, day, g.amount(merchant.category), true, merchant, "Purchase at "+merchant.name)
}

func (g *demoGenerator) amount(category string) decimal.Decimal {
	bounds, ok := demoAmountRanges[category]
	if !ok {
		bounds = [2]float64{10, 100}
	}
	value := bounds[0] + g.rng.Float64()*(bounds[1]-bounds[0])
	return decimal.NewFromFloat(value).Round(2)
}

func (g *demoGenerator) transaction(accountID uuid.UUID, day time.Time, amount decimal.Decimal, isDebit bool, merchant demoMerchant, description string) models.Transaction {
	id := accountID
	return models.Transaction{
		AccountID:   &id,
		Date:        day,
		Amount:      amount,
		IsDebit:     isDebit,
		Category:    merchant.category,
		Subcategory: merchant.subcategory,
		Merchant:    merchant.name,
		Description: description,
	}
}
