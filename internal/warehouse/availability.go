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

	"github.com/fmcglabs/warehousegen/internal/logging"
)

// Window is an inclusive date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Days returns the number of days in the window, 0 for an inverted window.
func (w Window) Days() int {
	if w.End.Before(w.Start) {
		return 0
	}
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// Contains reports whether day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	return !day.Before(w.Start) && !day.After(w.End)
}

// Resolution is the outcome of resolving a requested fact window against
// dimension availability.
type Resolution struct {
	Window   Window
	Fallback bool
}

// Policy decides which dimension rows may participate in a fact row on a
// given day. The primary rule honors each row's validity window; when the
// requested window has no eligible rows at all (or is inverted), facts are
// generated over the historical window instead and every row is treated as
// available for days at or before the cutoff.
type Policy struct {
	HistoricalStart time.Time
	Cutoff          time.Time
}

// Resolve decides the effective generation window for a request. pools is
// the earliest validity start across all participating dimension pools;
// pass nil when some pool has no validity bound (always available).
func (p Policy) Resolve(req Window, earliest *time.Time) Resolution {
	if req.End.Before(req.Start) {
		logging.Warn().
			Time("start", req.Start).
			Time("end", req.End).
			Msg("Inverted fact window; falling back to historical window")
		return Resolution{Window: Window{Start: p.HistoricalStart, End: p.Cutoff}, Fallback: true}
	}

	if earliest != nil && earliest.After(req.End) {
		logging.Warn().
			Time("earliest", *earliest).
			Time("end", req.End).
			Msg("No dimension rows available in fact window; falling back to historical window")
		return Resolution{Window: Window{Start: p.HistoricalStart, End: p.Cutoff}, Fallback: true}
	}

	return Resolution{Window: req}
}

// EligibleOn applies the primary availability rule: the row's validity
// window must cover the day.
func (p Policy) EligibleOn(d Dated, day time.Time) bool {
	if from := d.ValidFrom(); from != nil && day.Before(*from) {
		return false
	}
	if to := d.ValidTo(); to != nil && day.After(*to) {
		return false
	}
	return true
}

// FallbackEligibleOn applies the relaxed rule used under fallback: any row
// is available for days at or before the cutoff.
func (p Policy) FallbackEligibleOn(_ Dated, day time.Time) bool {
	return !day.After(p.Cutoff)
}

// Eligible selects pool members available on the day under the resolved
// rule set.
func Eligible[T Dated](p Policy, res Resolution, pool []T, day time.Time) []T {
	out := make([]T, 0, len(pool))
	for _, d := range pool {
		ok := p.EligibleOn(d, day)
		if res.Fallback {
			ok = p.FallbackEligibleOn(d, day)
		}
		if ok {
			out = append(out, d)
		}
	}
	return out
}

// EarliestStart returns the earliest validity start across pools, or nil
// when any member is unbounded at the start.
func EarliestStart[T Dated](pool []T) *time.Time {
	if len(pool) == 0 {
		return nil
	}
	var earliest *time.Time
	for _, d := range pool {
		from := d.ValidFrom()
		if from == nil {
			return nil
		}
		if earliest == nil || from.Before(*earliest) {
			t := *from
			earliest = &t
		}
	}
	return earliest
}
