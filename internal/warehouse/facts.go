//-------------------------------------------------------------------------
//
// FMCG Warehouse Generator
//
// Copyright (c) 2025 - 2026, FMCG Labs
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package warehouse

import (
	"context"
	"errors"
	"time"

	"github.com/fmcglabs/warehousegen/internal/datagen"
	"github.com/fmcglabs/warehousegen/internal/logging"
	"github.com/fmcglabs/warehousegen/internal/store"
)

// ErrEmptyPool is returned when a fact generator has no dimension rows to
// reference.
var ErrEmptyPool = errors.New("warehouse: empty dimension pool")

// VATRate is the Philippine value-added tax applied to every sale.
const VATRate = 0.12

// FactGenerator builds fact rows against in-memory dimension pools so
// every foreign key references a row that exists.
type FactGenerator struct {
	f      *datagen.Faker
	alloc  *Allocator
	policy Policy

	minTxn float64
	maxTxn float64
}

// NewFactGenerator creates a fact generator.
func NewFactGenerator(f *datagen.Faker, alloc *Allocator, policy Policy, minTxn, maxTxn float64) *FactGenerator {
	return &FactGenerator{f: f, alloc: alloc, policy: policy, minTxn: minTxn, maxTxn: maxTxn}
}

// Sales distributes the currency target across the requested window as
// individual transactions. Days where no product or employee is eligible
// produce no rows; a window with no eligible days at all resolves to the
// historical fallback window.
func (g *FactGenerator) Sales(ctx context.Context, req Window, target float64,
	products []ProductRow, employees []EmployeeRow, retailers []RetailerRow,
	campaigns []CampaignRow) ([]SaleRow, Resolution, error) {

	// A non-positive retail price cannot size an order; such rows can
	// appear when the destination was populated by another tool.
	priced := make([]ProductRow, 0, len(products))
	for _, p := range products {
		if p.RetailPrice > 0 {
			priced = append(priced, p)
		}
	}
	if dropped := len(products) - len(priced); dropped > 0 {
		logging.Warn().
			Int("dropped", dropped).
			Msg("Ignoring products without a positive retail price")
	}
	products = priced

	if len(products) == 0 || len(employees) == 0 || len(retailers) == 0 {
		return nil, Resolution{}, ErrEmptyPool
	}

	earliest := latestOf(EarliestStart(products), EarliestStart(employees))
	res := g.policy.Resolve(req, earliest)
	targets := DailyTargets(g.f, res.Window, target)

	var rows []SaleRow
	var grandTotal float64
	day := res.Window.Start
	for _, dayTarget := range targets {
		if grandTotal >= target {
			break
		}
		eligProducts := Eligible(g.policy, res, products, day)
		eligEmployees := Eligible(g.policy, res, employees, day)
		eligCampaigns := Eligible(g.policy, res, campaigns, day)

		if len(eligProducts) == 0 || len(eligEmployees) == 0 {
			logging.Debug().
				Time("day", day).
				Msg("No eligible dimension rows; skipping day")
			day = day.AddDate(0, 0, 1)
			continue
		}

		var dayTotal float64
		for dayTotal < dayTarget && grandTotal < target {
			sale, err := g.sale(ctx, day, eligProducts, eligEmployees, retailers, eligCampaigns)
			if err != nil {
				return nil, res, err
			}
			rows = append(rows, sale)
			dayTotal += sale.TotalAmount
			grandTotal += sale.TotalAmount
		}
		day = day.AddDate(0, 0, 1)
	}
	return rows, res, nil
}

func (g *FactGenerator) sale(ctx context.Context, day time.Time,
	products []ProductRow, employees []EmployeeRow, retailers []RetailerRow,
	campaigns []CampaignRow) (SaleRow, error) {

	key, err := g.alloc.NextKey(ctx, store.FactSales, "sale_key")
	if err != nil {
		return SaleRow{}, err
	}

	product := datagen.Choose(g.f, products)
	employee := datagen.Choose(g.f, employees)
	retailer := datagen.Choose(g.f, retailers)

	// Size the order so its value lands inside the transaction band.
	wantAmount := g.f.Float64(g.minTxn, g.maxTxn)
	qty := int(wantAmount / product.RetailPrice)
	if qty < 1 {
		qty = 1
	}

	discount := 0.0
	if g.f.Chance(0.25) {
		discount = round2(g.f.Float64(0.02, 0.15))
	}
	net := float64(qty) * product.RetailPrice * (1 - discount)
	total := round2(net * (1 + VATRate))
	commission := round2(net * commissionRate(product.Category))

	var campaignKey *int64
	if len(campaigns) > 0 && g.f.Chance(0.30) {
		c := datagen.Choose(g.f, campaigns)
		campaignKey = &c.Key
	}

	lead, ok := deliveryDays[retailer.Region]
	if !ok {
		lead = defaultDeliveryDays
	}
	expected := day.AddDate(0, 0, g.f.Int(lead[0], lead[1]))

	deliveryStatus := datagen.ChooseWeighted(g.f, deliveryStatuses, deliveryStatusWeights)
	var actual *time.Time
	if deliveryStatus == "Delivered" {
		t := expected.AddDate(0, 0, g.f.Int(-1, 2))
		if t.Before(day) {
			t = day
		}
		actual = &t
	}

	return SaleRow{
		Key:              key,
		Date:             day,
		ProductKey:       product.Key,
		EmployeeKey:      employee.Key,
		RetailerKey:      retailer.Key,
		CampaignKey:      campaignKey,
		CaseQuantity:     qty,
		UnitPrice:        product.RetailPrice,
		DiscountPercent:  discount,
		TaxRate:          VATRate,
		TotalAmount:      total,
		CommissionAmount: commission,
		PaymentMethod:    datagen.ChooseWeighted(g.f, paymentMethods, paymentMethodWeights),
		PaymentStatus:    datagen.ChooseWeighted(g.f, paymentStatuses, paymentStatusWeights),
		DeliveryStatus:   deliveryStatus,
		ExpectedDelivery: expected,
		ActualDelivery:   actual,
	}, nil
}

// Wages builds one row per employee per month of service in the window,
// with a yearly raise compounded on the base salary.
func (g *FactGenerator) Wages(ctx context.Context, employees []EmployeeRow, jobs []JobRow, w Window) ([]WageRow, error) {
	if len(employees) == 0 {
		return nil, ErrEmptyPool
	}

	jobByTitle := make(map[string]JobRow, len(jobs))
	for _, j := range jobs {
		jobByTitle[j.Title] = j
	}

	var rows []WageRow
	for _, emp := range employees {
		job, ok := jobByTitle[emp.Position]
		if !ok {
			logging.Warn().
				Int64("employee_key", emp.Key).
				Str("position", emp.Position).
				Msg("No job row for position; skipping wages")
			continue
		}
		end := w.End
		if emp.TerminationDate != nil && emp.TerminationDate.Before(end) {
			end = *emp.TerminationDate
		}
		start := emp.HireDate
		if start.Before(w.Start) {
			start = w.Start
		}

		for _, month := range MonthStarts(Window{Start: start, End: end}) {
			key, err := g.alloc.NextKey(ctx, store.FactEmployeeWages, "wage_key")
			if err != nil {
				return nil, err
			}
			raiseYears := month.Year() - emp.HireDate.Year()
			salary := float64(emp.MonthlySalary)
			for i := 0; i < raiseYears; i++ {
				salary *= 1.03
			}
			rows = append(rows, WageRow{
				Key:           key,
				EmployeeKey:   emp.Key,
				JobKey:        job.Key,
				EffectiveDate: month,
				JobTitle:      emp.Position,
				MonthlySalary: round2(salary),
			})
		}
	}
	return rows, nil
}

// Inventory builds monthly stock snapshots per product per distribution
// center.
func (g *FactGenerator) Inventory(ctx context.Context, products []ProductRow, w Window) ([]InventoryRow, error) {
	if len(products) == 0 {
		return nil, ErrEmptyPool
	}

	var rows []InventoryRow
	for _, month := range MonthStarts(w) {
		for _, wh := range warehouseLocations {
			for _, p := range products {
				if p.CreatedDate != nil && month.Before(*p.CreatedDate) {
					continue
				}
				key, err := g.alloc.NextKey(ctx, store.FactInventory, "inventory_key")
				if err != nil {
					return nil, err
				}
				rows = append(rows, InventoryRow{
					Key:         key,
					Date:        month,
					ProductKey:  p.Key,
					Warehouse:   wh,
					CasesOnHand: g.f.Int(0, 500),
					UnitCost:    round2(p.WholesalePrice * g.f.Float64(0.6, 0.8)),
				})
			}
		}
	}
	return rows, nil
}

// OperatingCosts builds one row per cost category per month, with base
// amounts inflated from the first year of the window.
func (g *FactGenerator) OperatingCosts(ctx context.Context, w Window, baseYear int) ([]OperatingCostRow, error) {
	var rows []OperatingCostRow
	for _, month := range MonthStarts(w) {
		inflation := InflationFactor(baseYear, month)
		for _, cat := range operatingCostCategories {
			key, err := g.alloc.NextKey(ctx, store.FactOperatingCosts, "cost_key")
			if err != nil {
				return nil, err
			}
			rows = append(rows, OperatingCostRow{
				Key:      key,
				Date:     month,
				Category: cat.Category,
				CostType: cat.CostType,
				Amount:   round2(g.f.Float64(cat.MinAmount, cat.MaxAmount) * inflation),
			})
		}
	}
	return rows, nil
}

// MarketingCosts spreads each campaign's budget across its active months
// with jitter, plus campaign-independent overhead per month.
func (g *FactGenerator) MarketingCosts(ctx context.Context, campaigns []CampaignRow, w Window) ([]MarketingCostRow, error) {
	var rows []MarketingCostRow

	for _, c := range campaigns {
		active := Window{Start: maxTime(c.StartDate, w.Start), End: minTime(c.EndDate, w.End)}
		months := MonthStarts(active)
		if len(months) == 0 {
			continue
		}
		monthly := c.Budget / float64(len(months))
		for _, month := range months {
			key, err := g.alloc.NextKey(ctx, store.FactMarketingCosts, "marketing_cost_key")
			if err != nil {
				return nil, err
			}
			campaignKey := c.Key
			rows = append(rows, MarketingCostRow{
				Key:          key,
				Date:         month,
				CampaignKey:  &campaignKey,
				CampaignID:   c.ID,
				CampaignType: c.Type,
				Category:     "Campaign Spend",
				Amount:       round2(monthly * g.f.Float64(0.8, 1.2)),
			})
		}
	}

	for _, month := range MonthStarts(w) {
		for _, cat := range marketingOverheadCategories {
			key, err := g.alloc.NextKey(ctx, store.FactMarketingCosts, "marketing_cost_key")
			if err != nil {
				return nil, err
			}
			rows = append(rows, MarketingCostRow{
				Key:      key,
				Date:     month,
				Category: cat.Category,
				Amount:   round2(g.f.Float64(cat.MinAmount, cat.MaxAmount)),
			})
		}
	}
	return rows, nil
}

func commissionRate(category string) float64 {
	for _, line := range productLines {
		if line.Category == category {
			return line.CommissionRate
		}
	}
	return 0.03
}

func latestOf(times ...*time.Time) *time.Time {
	var latest *time.Time
	for _, t := range times {
		if t == nil {
			continue
		}
		if latest == nil || t.After(*latest) {
			v := *t
			latest = &v
		}
	}
	return latest
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
