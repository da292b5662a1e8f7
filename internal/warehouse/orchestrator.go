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
	"fmt"
	"time"

	"github.com/fmcglabs/warehousegen/internal/config"
	"github.com/fmcglabs/warehousegen/internal/datagen"
	"github.com/fmcglabs/warehousegen/internal/logging"
	"github.com/fmcglabs/warehousegen/internal/store"
)

// ErrAlreadySeeded is returned when seed runs against a destination that
// already holds sales.
var ErrAlreadySeeded = errors.New("warehouse: destination already seeded, use append")

// ErrNotSeeded is returned when append runs against a destination with no
// dimensions to reference.
var ErrNotSeeded = errors.New("warehouse: destination has no dimensions, run seed first")

// Orchestrator drives a complete generation run: dimensions first, then
// fact stages. Dimension failures abort the run; each fact stage fails in
// isolation, and once the run budget is exhausted no further fact stage is
// started.
type Orchestrator struct {
	store  store.Store
	cfg    *config.Config
	f      *datagen.Faker
	alloc  *Allocator
	dims   *DimensionGenerator
	facts  *FactGenerator
	policy Policy

	now func() time.Time
}

// New creates an orchestrator with a randomly seeded faker.
func New(s store.Store, cfg *config.Config) (*Orchestrator, error) {
	return NewWithFaker(s, cfg, datagen.NewFaker())
}

// NewWithFaker creates an orchestrator with the given faker, so runs can
// be made reproducible.
func NewWithFaker(s store.Store, cfg *config.Config, f *datagen.Faker) (*Orchestrator, error) {
	founding, err := cfg.FoundingDate()
	if err != nil {
		return nil, err
	}
	cutoff, err := cfg.AvailabilityCutoff()
	if err != nil {
		return nil, err
	}

	policy := Policy{HistoricalStart: founding, Cutoff: cutoff}
	alloc := NewAllocator(s, cfg.Generate.KeyCeiling)
	return &Orchestrator{
		store:  s,
		cfg:    cfg,
		f:      f,
		alloc:  alloc,
		dims:   NewDimensionGenerator(f, alloc),
		facts: NewFactGenerator(f, alloc, policy,
			cfg.Generate.MinTransactionValue, cfg.Generate.MaxTransactionValue),
		policy: policy,
		now:    time.Now,
	}, nil
}

// EnsureTables creates every destination table that does not exist yet.
func (o *Orchestrator) EnsureTables(ctx context.Context) error {
	for _, table := range store.Tables() {
		schema, ok := store.SchemaFor(table)
		if !ok {
			return fmt.Errorf("no schema registered for %s", table)
		}
		if err := o.store.CreateIfAbsent(ctx, table, schema); err != nil {
			return err
		}
	}
	return nil
}

// Seed performs the initial historical backfill: the full dimension set,
// then facts across [seed start, yesterday].
func (o *Orchestrator) Seed(ctx context.Context) (*RunSummary, error) {
	sum := &RunSummary{Mode: "seed", Started: o.now()}
	defer func() { sum.Duration = o.now().Sub(sum.Started) }()

	seeded, err := o.store.HasRows(ctx, store.FactSales)
	if err != nil {
		return sum, err
	}
	if seeded {
		return sum, ErrAlreadySeeded
	}

	if err := o.EnsureTables(ctx); err != nil {
		return sum, err
	}

	founding, _ := o.cfg.FoundingDate()
	seedStart, err := o.cfg.SeedStartDate()
	if err != nil {
		return sum, err
	}
	today := dateOnly(o.now().UTC())
	yesterday := today.AddDate(0, 0, -1)

	logging.Info().
		Time("start", seedStart).
		Time("end", yesterday).
		Float64("target", o.cfg.Seed.SalesTarget).
		Msg("Starting seed run")

	gen := o.cfg.Generate
	locations, err := o.dims.Locations(ctx)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimLocations, rowsOf(locations))
	}
	if err != nil {
		return sum, err
	}
	departments, err := o.dims.Departments(ctx)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimDepartments, rowsOf(departments))
	}
	if err != nil {
		return sum, err
	}
	jobs, err := o.dims.Jobs(ctx, departments)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimJobs, rowsOf(jobs))
	}
	if err != nil {
		return sum, err
	}
	banks, err := o.dims.Banks(ctx)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimBanks, rowsOf(banks))
	}
	if err != nil {
		return sum, err
	}
	insurers, err := o.dims.Insurers(ctx)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimInsurance, rowsOf(insurers))
	}
	if err != nil {
		return sum, err
	}

	products, err := o.dims.Products(ctx, gen.Products, founding, yesterday)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimProducts, rowsOf(products))
	}
	if err != nil {
		return sum, err
	}
	employees, err := o.dims.Employees(ctx, gen.ActiveEmployees, gen.TotalEmployees, founding, yesterday)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimEmployees, rowsOf(employees))
	}
	if err != nil {
		return sum, err
	}
	retailers, err := o.dims.Retailers(ctx, gen.Retailers)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimRetailers, rowsOf(retailers))
	}
	if err != nil {
		return sum, err
	}
	campaigns, err := o.dims.Campaigns(ctx, gen.Campaigns, founding, yesterday)
	if err == nil {
		err = o.appendDim(ctx, sum, store.DimCampaigns, rowsOf(campaigns))
	}
	if err != nil {
		return sum, err
	}

	window := Window{Start: seedStart, End: yesterday}
	o.runFactStages(ctx, sum, []factStage{
		{store.FactSales, func(ctx context.Context) ([][]any, error) {
			rows, res, err := o.facts.Sales(ctx, window, o.cfg.Seed.SalesTarget,
				products, employees, retailers, campaigns)
			sum.Fallback = res.Fallback
			return rowsOf(rows), err
		}},
		{store.FactEmployeeWages, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.Wages(ctx, employees, jobs, window)
			return rowsOf(rows), err
		}},
		{store.FactInventory, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.Inventory(ctx, products, window)
			return rowsOf(rows), err
		}},
		{store.FactOperatingCosts, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.OperatingCosts(ctx, window, founding.Year())
			return rowsOf(rows), err
		}},
		{store.FactMarketingCosts, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.MarketingCosts(ctx, campaigns, window)
			return rowsOf(rows), err
		}},
	})

	sum.Log()
	return sum, nil
}

// Append performs an incremental run: it reloads the persisted dimension
// pools, optionally adds a few new products and hires, then appends one
// day of sales and any missing monthly facts.
func (o *Orchestrator) Append(ctx context.Context) (*RunSummary, error) {
	sum := &RunSummary{Mode: "append", Started: o.now()}
	defer func() { sum.Duration = o.now().Sub(sum.Started) }()

	seeded, err := o.store.HasRows(ctx, store.DimProducts)
	if err != nil {
		return sum, err
	}
	if !seeded {
		return sum, ErrNotSeeded
	}

	if err := o.EnsureTables(ctx); err != nil {
		return sum, err
	}

	founding, _ := o.cfg.FoundingDate()
	today := dateOnly(o.now().UTC())

	products, err := loadProducts(ctx, o.store)
	if err != nil {
		return sum, err
	}
	employees, err := loadEmployees(ctx, o.store)
	if err != nil {
		return sum, err
	}
	retailers, err := loadRetailers(ctx, o.store)
	if err != nil {
		return sum, err
	}
	campaigns, err := loadCampaigns(ctx, o.store)
	if err != nil {
		return sum, err
	}
	jobs, err := loadJobs(ctx, o.store)
	if err != nil {
		return sum, err
	}

	logging.Info().
		Time("day", today).
		Float64("target", o.cfg.Append.SalesTarget).
		Int("products", len(products)).
		Int("employees", len(employees)).
		Msg("Starting append run")

	if max := o.cfg.Append.NewProductsMax; max > 0 {
		fresh, err := o.dims.Products(ctx, o.f.Int(1, max), today, today)
		if err == nil {
			err = o.appendDim(ctx, sum, store.DimProducts, rowsOf(fresh))
		}
		if err != nil {
			return sum, err
		}
		products = append(products, fresh...)
	}
	if max := o.cfg.Append.NewHiresMax; max > 0 {
		n := 1
		if max >= 2 {
			n = o.f.Int(2, max)
		}
		hires, err := o.dims.Employees(ctx, n, n, today, today)
		if err == nil {
			err = o.appendDim(ctx, sum, store.DimEmployees, rowsOf(hires))
		}
		if err != nil {
			return sum, err
		}
		employees = append(employees, hires...)
	}

	// New sales never predate what is already persisted. A persisted max
	// past today inverts the window, which resolves to the historical
	// fallback.
	salesWindow := Window{Start: today, End: today}
	if maxDate, err := o.maxDate(ctx, store.FactSales, "sale_date"); err == nil && maxDate.After(today) {
		salesWindow.Start = maxDate
	}

	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	month := Window{Start: monthStart, End: today}

	var stages []factStage
	stages = append(stages, factStage{store.FactSales, func(ctx context.Context) ([][]any, error) {
		rows, res, err := o.facts.Sales(ctx, salesWindow, o.cfg.Append.SalesTarget,
			products, employees, retailers, campaigns)
		sum.Fallback = res.Fallback
		return rowsOf(rows), err
	}})

	if o.needsMonthly(ctx, store.FactEmployeeWages, "effective_date", monthStart) {
		stages = append(stages, factStage{store.FactEmployeeWages, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.Wages(ctx, employees, jobs, month)
			return rowsOf(rows), err
		}})
	}
	if o.needsMonthly(ctx, store.FactInventory, "inventory_date", monthStart) {
		stages = append(stages, factStage{store.FactInventory, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.Inventory(ctx, products, month)
			return rowsOf(rows), err
		}})
	}
	if o.needsMonthly(ctx, store.FactOperatingCosts, "cost_date", monthStart) {
		stages = append(stages, factStage{store.FactOperatingCosts, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.OperatingCosts(ctx, month, founding.Year())
			return rowsOf(rows), err
		}})
	}
	if o.needsMonthly(ctx, store.FactMarketingCosts, "cost_date", monthStart) {
		stages = append(stages, factStage{store.FactMarketingCosts, func(ctx context.Context) ([][]any, error) {
			rows, err := o.facts.MarketingCosts(ctx, campaigns, month)
			return rowsOf(rows), err
		}})
	}

	o.runFactStages(ctx, sum, stages)

	// Read-only check of recent deliveries; persisted statuses are not
	// modified.
	if report, err := DeliveryStatus(ctx, o.store, today); err != nil {
		logging.Warn().Err(err).Msg("Delivery status check failed")
	} else {
		sum.Delivery = report
	}

	sum.Log()
	return sum, nil
}

type factStage struct {
	table string
	run   func(ctx context.Context) ([][]any, error)
}

// runFactStages executes fact stages sequentially. A stage error is
// recorded and the next stage still runs; once the run budget is spent the
// remaining stages are skipped.
func (o *Orchestrator) runFactStages(ctx context.Context, sum *RunSummary, stages []factStage) {
	budget := time.Duration(o.cfg.Generate.StageBudget) * time.Minute
	for _, stage := range stages {
		if budget > 0 && o.now().Sub(sum.Started) > budget {
			sum.Skipped = append(sum.Skipped, stage.table)
			continue
		}

		rows, err := stage.run(ctx)
		if err != nil {
			sum.add(stage.table, 0, err)
			continue
		}

		schema, _ := store.SchemaFor(stage.table)
		n, err := o.store.AppendDedup(ctx, stage.table, schema, schema[0].Name, rows)
		sum.add(stage.table, n, err)
	}
}

func (o *Orchestrator) appendDim(ctx context.Context, sum *RunSummary, table string, rows [][]any) error {
	schema, _ := store.SchemaFor(table)
	n, err := o.store.AppendDedup(ctx, table, schema, schema[0].Name, rows)
	sum.add(table, n, err)
	if err != nil {
		return fmt.Errorf("append %s: %w", table, err)
	}
	return nil
}

// needsMonthly reports whether a monthly fact table is missing rows for
// the month starting at monthStart.
func (o *Orchestrator) needsMonthly(ctx context.Context, table, dateColumn string, monthStart time.Time) bool {
	maxDate, err := o.maxDate(ctx, table, dateColumn)
	if err != nil {
		if errors.Is(err, store.ErrNoRows) {
			return true
		}
		logging.Warn().
			Err(err).
			Str("table", table).
			Msg("Could not read latest fact date; generating month")
		return true
	}
	return maxDate.Before(monthStart)
}

func (o *Orchestrator) maxDate(ctx context.Context, table, column string) (time.Time, error) {
	v, err := o.store.Max(ctx, table, column)
	if err != nil {
		return time.Time{}, err
	}
	t, ok := v.(time.Time)
	if !ok {
		return time.Time{}, fmt.Errorf("max(%s.%s): unexpected type %T", table, column, v)
	}
	return dateOnly(t), nil
}

type valuer interface {
	Values() []any
}

func rowsOf[T valuer](items []T) [][]any {
	rows := make([][]any, len(items))
	for i, item := range items {
		rows[i] = item.Values()
	}
	return rows
}
