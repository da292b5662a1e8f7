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
	"time"

	"github.com/fmcglabs/warehousegen/internal/datagen"
)

// seasonalRange is the multiplier band applied to daily sales targets for
// a month. Christmas season peaks, post-holiday months dip, summer lifts
// beverages and personal care.
type seasonalRange struct {
	Min float64
	Max float64
}

var seasonalRanges = map[time.Month]seasonalRange{
	time.January:  {0.7, 0.9},
	time.February: {0.7, 0.9},
	time.April:    {1.1, 1.3},
	time.May:      {1.1, 1.3},
	time.November: {1.3, 1.8},
	time.December: {1.3, 1.8},
}

// annualInflation compounds on operating cost base amounts year over year.
const annualInflation = 0.028

// SeasonalMultiplier samples the sales multiplier for a month.
func SeasonalMultiplier(f *datagen.Faker, month time.Month) float64 {
	r, ok := seasonalRanges[month]
	if !ok {
		return 1.0
	}
	return f.Float64(r.Min, r.Max)
}

// DailyTargets splits a total currency target across the days of a window,
// weighted by seasonal multipliers with per-day jitter, and normalized so
// the parts sum to the total.
func DailyTargets(f *datagen.Faker, w Window, total float64) []float64 {
	days := w.Days()
	if days <= 0 || total <= 0 {
		return nil
	}

	weights := make([]float64, days)
	var sum float64
	day := w.Start
	for i := 0; i < days; i++ {
		weight := SeasonalMultiplier(f, day.Month()) * f.Float64(0.85, 1.15)
		weights[i] = weight
		sum += weight
		day = day.AddDate(0, 0, 1)
	}

	targets := make([]float64, days)
	for i, weight := range weights {
		targets[i] = total * weight / sum
	}
	return targets
}

// InflationFactor returns the compounded cost inflation between a base
// year and the given date's year.
func InflationFactor(baseYear int, date time.Time) float64 {
	years := date.Year() - baseYear
	if years <= 0 {
		return 1.0
	}
	factor := 1.0
	for i := 0; i < years; i++ {
		factor *= 1 + annualInflation
	}
	return factor
}

// MonthStarts returns the first day of every month touched by the window.
func MonthStarts(w Window) []time.Time {
	if w.End.Before(w.Start) {
		return nil
	}
	var months []time.Time
	m := time.Date(w.Start.Year(), w.Start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(w.End) {
		months = append(months, m)
		m = m.AddDate(0, 1, 0)
	}
	return months
}
