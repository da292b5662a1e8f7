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
	"fmt"
	"time"

	"github.com/fmcglabs/warehousegen/internal/store"
)

// Pool reloading for incremental runs: dimension rows are read back from
// the destination so new facts reference keys that actually exist. Only
// the columns the fact generators consume are loaded.

func loadProducts(ctx context.Context, s store.Store) ([]ProductRow, error) {
	raw, err := s.Select(ctx, store.DimProducts,
		[]string{"product_key", "category", "wholesale_price", "retail_price", "status", "created_date"})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}
	rows := make([]ProductRow, 0, len(raw))
	for _, r := range raw {
		key, err := asInt64(r[0])
		if err != nil {
			return nil, fmt.Errorf("load products: %w", err)
		}
		rows = append(rows, ProductRow{
			Key:            key,
			Category:       asString(r[1]),
			WholesalePrice: asFloat64(r[2]),
			RetailPrice:    asFloat64(r[3]),
			Status:         asString(r[4]),
			CreatedDate:    asDate(r[5]),
		})
	}
	return rows, nil
}

func loadEmployees(ctx context.Context, s store.Store) ([]EmployeeRow, error) {
	raw, err := s.Select(ctx, store.DimEmployees,
		[]string{"employee_key", "position", "monthly_salary", "hire_date", "termination_date"})
	if err != nil {
		return nil, fmt.Errorf("load employees: %w", err)
	}
	rows := make([]EmployeeRow, 0, len(raw))
	for _, r := range raw {
		key, err := asInt64(r[0])
		if err != nil {
			return nil, fmt.Errorf("load employees: %w", err)
		}
		salary, err := asInt64(r[2])
		if err != nil {
			return nil, fmt.Errorf("load employees: %w", err)
		}
		hire := asDate(r[3])
		if hire == nil {
			return nil, fmt.Errorf("load employees: key %d has no hire date", key)
		}
		rows = append(rows, EmployeeRow{
			Key:             key,
			Position:        asString(r[1]),
			MonthlySalary:   int(salary),
			HireDate:        *hire,
			TerminationDate: asDate(r[4]),
		})
	}
	return rows, nil
}

func loadRetailers(ctx context.Context, s store.Store) ([]RetailerRow, error) {
	raw, err := s.Select(ctx, store.DimRetailers, []string{"retailer_key", "region"})
	if err != nil {
		return nil, fmt.Errorf("load retailers: %w", err)
	}
	rows := make([]RetailerRow, 0, len(raw))
	for _, r := range raw {
		key, err := asInt64(r[0])
		if err != nil {
			return nil, fmt.Errorf("load retailers: %w", err)
		}
		rows = append(rows, RetailerRow{Key: key, Region: asString(r[1])})
	}
	return rows, nil
}

func loadCampaigns(ctx context.Context, s store.Store) ([]CampaignRow, error) {
	raw, err := s.Select(ctx, store.DimCampaigns,
		[]string{"campaign_key", "campaign_id", "campaign_type", "start_date", "end_date", "budget"})
	if err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	rows := make([]CampaignRow, 0, len(raw))
	for _, r := range raw {
		key, err := asInt64(r[0])
		if err != nil {
			return nil, fmt.Errorf("load campaigns: %w", err)
		}
		start := asDate(r[3])
		end := asDate(r[4])
		if start == nil || end == nil {
			return nil, fmt.Errorf("load campaigns: key %d missing window", key)
		}
		rows = append(rows, CampaignRow{
			Key:       key,
			ID:        asString(r[1]),
			Type:      asString(r[2]),
			StartDate: *start,
			EndDate:   *end,
			Budget:    asFloat64(r[5]),
		})
	}
	return rows, nil
}

func loadJobs(ctx context.Context, s store.Store) ([]JobRow, error) {
	raw, err := s.Select(ctx, store.DimJobs, []string{"job_key", "job_title"})
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	rows := make([]JobRow, 0, len(raw))
	for _, r := range raw {
		key, err := asInt64(r[0])
		if err != nil {
			return nil, fmt.Errorf("load jobs: %w", err)
		}
		rows = append(rows, JobRow{Key: key, Title: asString(r[1])})
	}
	return rows, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

func asFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}

func asDate(v any) *time.Time {
	if v == nil {
		return nil
	}
	if t, ok := v.(time.Time); ok {
		d := dateOnly(t)
		return &d
	}
	return nil
}
