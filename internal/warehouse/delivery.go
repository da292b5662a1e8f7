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

// deliveryLookbackDays bounds the delivery survey to recent sales; older
// in-flight rows are stale and would only repeat in every report.
const deliveryLookbackDays = 7

// DeliveryReport counts recent in-flight sales and how many of them are
// due for their next delivery-status transition. Orders progress to
// Processing one day after the sale, to In Transit after two, and to
// Delivered after four.
type DeliveryReport struct {
	InFlight      int
	DueProcessing int
	DueInTransit  int
	DueDelivered  int
}

// Due returns the total number of sales due for a status transition.
func (r *DeliveryReport) Due() int {
	return r.DueProcessing + r.DueInTransit + r.DueDelivered
}

// DeliveryStatus surveys sales from the last week whose delivery is still
// in flight and reports which transitions are due as of today. The
// destination is only read; persisted statuses stay as generated.
func DeliveryStatus(ctx context.Context, s store.Store, today time.Time) (*DeliveryReport, error) {
	raw, err := s.Select(ctx, store.FactSales, []string{"sale_date", "delivery_status"})
	if err != nil {
		return nil, fmt.Errorf("delivery status: %w", err)
	}

	cutoff := today.AddDate(0, 0, -deliveryLookbackDays)
	report := &DeliveryReport{}
	for _, r := range raw {
		saleDate := asDate(r[0])
		if saleDate == nil || saleDate.Before(cutoff) {
			continue
		}
		days := int(today.Sub(*saleDate).Hours() / 24)
		switch asString(r[1]) {
		case "Pending":
			report.InFlight++
			if days >= 1 {
				report.DueProcessing++
			}
		case "Processing":
			report.InFlight++
			if days >= 2 {
				report.DueInTransit++
			}
		case "In Transit":
			report.InFlight++
			if days >= 4 {
				report.DueDelivered++
			}
		}
	}
	return report, nil
}
