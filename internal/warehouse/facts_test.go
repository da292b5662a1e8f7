package warehouse

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/fmcglabs/warehousegen/internal/datagen"
	"github.com/fmcglabs/warehousegen/internal/store"
)

func newFactGen(seed uint64) *FactGenerator {
	f := datagen.NewFakerWithSeed(seed)
	alloc := NewAllocator(store.NewMemStore(), 1<<62)
	return NewFactGenerator(f, alloc, testPolicy, 800, 2000)
}

func testPools() ([]ProductRow, []EmployeeRow, []RetailerRow, []CampaignRow) {
	products := []ProductRow{
		{Key: 1, Category: "Beverages", RetailPrice: 320, WholesalePrice: 250},
		{Key: 2, Category: "Snacks", RetailPrice: 210, WholesalePrice: 160,
			CreatedDate: datePtr(day(2020, 1, 1))},
		{Key: 3, Category: "Household", RetailPrice: 450, WholesalePrice: 330,
			CreatedDate: datePtr(day(2024, 6, 15))},
	}
	employees := []EmployeeRow{
		{Key: 10, Position: "Sales Representative", MonthlySalary: 20000,
			HireDate: day(2016, 2, 1)},
		{Key: 11, Position: "Account Executive", MonthlySalary: 30000,
			HireDate: day(2019, 5, 1), TerminationDate: datePtr(day(2024, 6, 10))},
	}
	retailers := []RetailerRow{
		{Key: 20, Region: "NCR"},
		{Key: 21, Region: "Region VII"},
	}
	campaigns := []CampaignRow{
		{Key: 30, ID: "MKT0030", Type: "Social Media", Budget: 600000,
			StartDate: day(2024, 6, 1), EndDate: day(2024, 8, 31)},
	}
	return products, employees, retailers, campaigns
}

func TestSalesHitsTarget(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	products, employees, retailers, campaigns := testPools()

	target := 500_000.0
	w := Window{Start: day(2024, 6, 1), End: day(2024, 6, 30)}
	rows, res, err := g.Sales(ctx, w, target, products, employees, retailers, campaigns)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	if res.Fallback {
		t.Fatal("Unexpected fallback")
	}

	var total float64
	for _, r := range rows {
		total += r.TotalAmount
	}
	if dev := math.Abs(total-target) / target; dev > 0.15 {
		t.Errorf("Total %v deviates %.1f%% from target %v", total, dev*100, target)
	}
}

func TestSalesReferentialAndTemporalIntegrity(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	products, employees, retailers, campaigns := testPools()

	productByKey := make(map[int64]ProductRow)
	for _, p := range products {
		productByKey[p.Key] = p
	}
	employeeByKey := make(map[int64]EmployeeRow)
	for _, e := range employees {
		employeeByKey[e.Key] = e
	}
	retailerKeys := map[int64]bool{20: true, 21: true}

	w := Window{Start: day(2024, 6, 1), End: day(2024, 6, 30)}
	rows, _, err := g.Sales(ctx, w, 300_000, products, employees, retailers, campaigns)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("No sales generated")
	}

	seenKeys := make(map[int64]bool)
	for _, r := range rows {
		if seenKeys[r.Key] {
			t.Fatalf("Duplicate sale key %d", r.Key)
		}
		seenKeys[r.Key] = true

		if !w.Contains(r.Date) {
			t.Fatalf("Sale date %v outside window", r.Date)
		}

		p, ok := productByKey[r.ProductKey]
		if !ok {
			t.Fatalf("Sale references unknown product %d", r.ProductKey)
		}
		if p.CreatedDate != nil && r.Date.Before(*p.CreatedDate) {
			t.Fatalf("Sale on %v references product created %v", r.Date, p.CreatedDate)
		}

		e, ok := employeeByKey[r.EmployeeKey]
		if !ok {
			t.Fatalf("Sale references unknown employee %d", r.EmployeeKey)
		}
		if r.Date.Before(e.HireDate) {
			t.Fatalf("Sale on %v predates hire %v", r.Date, e.HireDate)
		}
		if e.TerminationDate != nil && r.Date.After(*e.TerminationDate) {
			t.Fatalf("Sale on %v after termination %v", r.Date, e.TerminationDate)
		}

		if !retailerKeys[r.RetailerKey] {
			t.Fatalf("Sale references unknown retailer %d", r.RetailerKey)
		}
		if r.CampaignKey != nil && *r.CampaignKey != 30 {
			t.Fatalf("Sale references unknown campaign %d", *r.CampaignKey)
		}
	}
}

func TestSalesAmountMath(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	products, employees, retailers, campaigns := testPools()

	w := Window{Start: day(2024, 6, 1), End: day(2024, 6, 7)}
	rows, _, err := g.Sales(ctx, w, 100_000, products, employees, retailers, campaigns)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}

	for _, r := range rows {
		net := float64(r.CaseQuantity) * r.UnitPrice * (1 - r.DiscountPercent)
		wantTotal := net * (1 + VATRate)
		if math.Abs(r.TotalAmount-wantTotal) > 0.02 {
			t.Errorf("Total %v, want %v (qty %d, price %v, disc %v)",
				r.TotalAmount, wantTotal, r.CaseQuantity, r.UnitPrice, r.DiscountPercent)
		}
		if r.TaxRate != VATRate {
			t.Errorf("Tax rate %v, want %v", r.TaxRate, VATRate)
		}
		if r.CommissionAmount <= 0 || r.CommissionAmount >= net*0.05 {
			t.Errorf("Commission %v implausible against net %v", r.CommissionAmount, net)
		}
		if r.ExpectedDelivery.Before(r.Date) {
			t.Errorf("Expected delivery %v before sale date %v", r.ExpectedDelivery, r.Date)
		}
		if r.DeliveryStatus == "Delivered" && r.ActualDelivery == nil {
			t.Error("Delivered sale has no actual delivery date")
		}
		if r.DeliveryStatus != "Delivered" && r.ActualDelivery != nil {
			t.Error("Undelivered sale has an actual delivery date")
		}
	}
}

func TestSalesFallbackWindow(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	_, employees, retailers, campaigns := testPools()

	// Every product becomes valid after the requested window ends.
	products := []ProductRow{
		{Key: 1, Category: "Beverages", RetailPrice: 320, WholesalePrice: 250,
			CreatedDate: datePtr(day(2026, 3, 1))},
	}
	// Make the employee pool unbounded enough for the fallback era.
	employees[1].TerminationDate = nil

	w := Window{Start: day(2026, 1, 1), End: day(2026, 1, 31)}
	rows, res, err := g.Sales(ctx, w, 50_000, products, employees, retailers, campaigns)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	if !res.Fallback {
		t.Fatal("Expected fallback resolution")
	}
	for _, r := range rows {
		if r.Date.After(testPolicy.Cutoff) {
			t.Fatalf("Fallback sale date %v past cutoff %v", r.Date, testPolicy.Cutoff)
		}
		if r.Date.Before(testPolicy.HistoricalStart) {
			t.Fatalf("Fallback sale date %v before historical start", r.Date)
		}
	}
	if len(rows) == 0 {
		t.Fatal("Fallback produced no sales")
	}
}

func TestSalesEmptyPool(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	_, employees, retailers, campaigns := testPools()

	w := Window{Start: day(2024, 6, 1), End: day(2024, 6, 2)}
	_, _, err := g.Sales(ctx, w, 1000, nil, employees, retailers, campaigns)
	if !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Sales with no products = %v, want ErrEmptyPool", err)
	}
}

func TestSalesIgnoresUnpricedProducts(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)
	_, employees, retailers, campaigns := testPools()

	products := []ProductRow{
		{Key: 1, Category: "Beverages", RetailPrice: 320, WholesalePrice: 250},
		{Key: 2, Category: "Snacks", RetailPrice: 0, WholesalePrice: 160},
	}
	w := Window{Start: day(2024, 6, 1), End: day(2024, 6, 7)}
	rows, _, err := g.Sales(ctx, w, 50_000, products, employees, retailers, campaigns)
	if err != nil {
		t.Fatalf("Sales failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("No sales generated")
	}
	for _, r := range rows {
		if r.ProductKey == 2 {
			t.Fatal("Sale references a product without a retail price")
		}
	}

	unpriced := []ProductRow{{Key: 2, Category: "Snacks", RetailPrice: 0}}
	if _, _, err := g.Sales(ctx, w, 1000, unpriced, employees, retailers, campaigns); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("Sales with only unpriced products = %v, want ErrEmptyPool", err)
	}
}

func TestWages(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)

	employees := []EmployeeRow{
		{Key: 10, Position: "QA Analyst", MonthlySalary: 30000,
			HireDate: day(2024, 3, 15)},
		{Key: 11, Position: "QA Lead", MonthlySalary: 50000,
			HireDate: day(2023, 1, 1), TerminationDate: datePtr(day(2024, 2, 10))},
	}
	jobs := []JobRow{
		{Key: 100, Title: "QA Analyst"},
		{Key: 101, Title: "QA Lead"},
	}

	w := Window{Start: day(2024, 1, 1), End: day(2024, 6, 30)}
	rows, err := g.Wages(ctx, employees, jobs, w)
	if err != nil {
		t.Fatalf("Wages failed: %v", err)
	}

	perEmployee := make(map[int64]int)
	for _, r := range rows {
		perEmployee[r.EmployeeKey]++
		if r.EffectiveDate.Day() != 1 {
			t.Errorf("Effective date %v not a month start", r.EffectiveDate)
		}
		if r.MonthlySalary <= 0 {
			t.Errorf("Salary %v not positive", r.MonthlySalary)
		}
		switch r.EmployeeKey {
		case 10:
			if r.JobKey != 100 {
				t.Errorf("Wage row job key %d, want 100", r.JobKey)
			}
		case 11:
			if r.JobKey != 101 {
				t.Errorf("Wage row job key %d, want 101", r.JobKey)
			}
		}
	}
	// Hired mid-March, active through June: March through June.
	if perEmployee[10] != 4 {
		t.Errorf("Employee 10 has %d wage rows, want 4", perEmployee[10])
	}
	// Terminated Feb 10: January and February.
	if perEmployee[11] != 2 {
		t.Errorf("Employee 11 has %d wage rows, want 2", perEmployee[11])
	}
}

func TestWagesSkipsUnknownPosition(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)

	// Position 11 has no job row, as after a ladder change in the
	// destination.
	employees := []EmployeeRow{
		{Key: 10, Position: "QA Analyst", MonthlySalary: 30000,
			HireDate: day(2024, 3, 15)},
		{Key: 11, Position: "Regional Chancellor", MonthlySalary: 90000,
			HireDate: day(2024, 1, 1)},
	}
	jobs := []JobRow{{Key: 100, Title: "QA Analyst"}}

	w := Window{Start: day(2024, 1, 1), End: day(2024, 6, 30)}
	rows, err := g.Wages(ctx, employees, jobs, w)
	if err != nil {
		t.Fatalf("Wages failed: %v", err)
	}
	if len(rows) == 0 {
		t.Fatal("No wage rows for the known position")
	}
	for _, r := range rows {
		if r.EmployeeKey == 11 {
			t.Fatal("Wage row emitted for a position with no job row")
		}
		if r.JobKey != 100 {
			t.Errorf("Wage row job key %d, want 100", r.JobKey)
		}
	}
}

func TestInventory(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)

	products := []ProductRow{
		{Key: 1, WholesalePrice: 200},
		{Key: 2, WholesalePrice: 300, CreatedDate: datePtr(day(2024, 3, 10))},
	}
	w := Window{Start: day(2024, 1, 1), End: day(2024, 4, 30)}
	rows, err := g.Inventory(ctx, products, w)
	if err != nil {
		t.Fatalf("Inventory failed: %v", err)
	}

	// Product 1: 4 months x 4 warehouses. Product 2 only exists from
	// April's snapshot onward: 1 month x 4 warehouses.
	if len(rows) != 20 {
		t.Fatalf("Got %d inventory rows, want 20", len(rows))
	}
	for _, r := range rows {
		if r.ProductKey == 2 && r.Date.Before(day(2024, 4, 1)) {
			t.Errorf("Snapshot %v predates product creation", r.Date)
		}
		wholesale := products[r.ProductKey-1].WholesalePrice
		if r.UnitCost < wholesale*0.6-0.01 || r.UnitCost > wholesale*0.8+0.01 {
			t.Errorf("Unit cost %v outside [%v, %v]", r.UnitCost, wholesale*0.6, wholesale*0.8)
		}
		if r.CasesOnHand < 0 {
			t.Errorf("Negative stock %d", r.CasesOnHand)
		}
	}
}

func TestOperatingCosts(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)

	w := Window{Start: day(2015, 1, 1), End: day(2015, 3, 31)}
	rows, err := g.OperatingCosts(ctx, w, 2015)
	if err != nil {
		t.Fatalf("OperatingCosts failed: %v", err)
	}
	if want := 3 * len(operatingCostCategories); len(rows) != want {
		t.Fatalf("Got %d cost rows, want %d", len(rows), want)
	}

	bounds := make(map[string]costCategory)
	for _, cat := range operatingCostCategories {
		bounds[cat.Category] = cat
	}
	for _, r := range rows {
		cat, ok := bounds[r.Category]
		if !ok {
			t.Fatalf("Unknown cost category %s", r.Category)
		}
		if r.CostType != cat.CostType {
			t.Errorf("%s cost type %s, want %s", r.Category, r.CostType, cat.CostType)
		}
		// Base year: no inflation applied yet.
		if r.Amount < cat.MinAmount-0.01 || r.Amount > cat.MaxAmount+0.01 {
			t.Errorf("%s amount %v outside base band [%v, %v]",
				r.Category, r.Amount, cat.MinAmount, cat.MaxAmount)
		}
	}

	// A decade later the same categories cost measurably more.
	later, err := g.OperatingCosts(ctx, Window{Start: day(2025, 1, 1), End: day(2025, 1, 31)}, 2015)
	if err != nil {
		t.Fatal(err)
	}
	factor := InflationFactor(2015, day(2025, 1, 1))
	for _, r := range later {
		cat := bounds[r.Category]
		if r.Amount < cat.MinAmount*factor-0.01 || r.Amount > cat.MaxAmount*factor+0.01 {
			t.Errorf("%s inflated amount %v outside [%v, %v]",
				r.Category, r.Amount, cat.MinAmount*factor, cat.MaxAmount*factor)
		}
	}
}

func TestMarketingCosts(t *testing.T) {
	ctx := context.Background()
	g := newFactGen(21)

	campaigns := []CampaignRow{
		{Key: 30, ID: "MKT0030", Type: "Billboard", Budget: 900_000,
			StartDate: day(2024, 2, 1), EndDate: day(2024, 4, 30)},
		// Entirely outside the window; contributes nothing.
		{Key: 31, ID: "MKT0031", Type: "Radio Spot", Budget: 100_000,
			StartDate: day(2023, 1, 1), EndDate: day(2023, 2, 28)},
	}
	w := Window{Start: day(2024, 1, 1), End: day(2024, 6, 30)}
	rows, err := g.MarketingCosts(ctx, campaigns, w)
	if err != nil {
		t.Fatalf("MarketingCosts failed: %v", err)
	}

	var campaignRows, overheadRows int
	var campaignSpend float64
	for _, r := range rows {
		if r.CampaignKey != nil {
			campaignRows++
			campaignSpend += r.Amount
			if *r.CampaignKey != 30 {
				t.Errorf("Spend row references campaign %d", *r.CampaignKey)
			}
			if r.CampaignID != "MKT0030" || r.CampaignType != "Billboard" {
				t.Errorf("Spend row carries %s/%s", r.CampaignID, r.CampaignType)
			}
		} else {
			overheadRows++
		}
	}
	if campaignRows != 3 {
		t.Errorf("Got %d campaign spend rows, want 3 (Feb-Apr)", campaignRows)
	}
	// Monthly spend jitters by ±20% around budget/months.
	if campaignSpend < 900_000*0.8 || campaignSpend > 900_000*1.2 {
		t.Errorf("Campaign spend %v far from budget 900000", campaignSpend)
	}
	if want := 6 * len(marketingOverheadCategories); overheadRows != want {
		t.Errorf("Got %d overhead rows, want %d", overheadRows, want)
	}
}
