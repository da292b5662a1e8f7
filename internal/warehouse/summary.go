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

// StageResult records the outcome of one generator stage.
type StageResult struct {
	Table string
	Rows  int
	Err   error
}

// RunSummary aggregates the outcome of a seed or append run. A run can
// partially succeed: failed and skipped stages are recorded here rather
// than aborting the run.
type RunSummary struct {
	Mode     string
	Started  time.Time
	Duration time.Duration
	Fallback bool
	Stages   []StageResult
	Skipped  []string
	Delivery *DeliveryReport
}

func (s *RunSummary) add(table string, rows int, err error) {
	s.Stages = append(s.Stages, StageResult{Table: table, Rows: rows, Err: err})
}

// TotalRows returns the number of rows appended across all stages.
func (s *RunSummary) TotalRows() int {
	var total int
	for _, st := range s.Stages {
		total += st.Rows
	}
	return total
}

// Failed returns the stages that ended in error.
func (s *RunSummary) Failed() []StageResult {
	var failed []StageResult
	for _, st := range s.Stages {
		if st.Err != nil {
			failed = append(failed, st)
		}
	}
	return failed
}

// Log writes the run outcome to the structured log.
func (s *RunSummary) Log() {
	for _, st := range s.Stages {
		if st.Err != nil {
			logging.Error().
				Err(st.Err).
				Str("table", st.Table).
				Msg("Stage failed")
		}
	}
	for _, table := range s.Skipped {
		logging.Warn().
			Str("table", table).
			Msg("Stage skipped: run budget exhausted")
	}

	if s.Delivery != nil {
		logging.Info().
			Int("in_flight", s.Delivery.InFlight).
			Int("due_processing", s.Delivery.DueProcessing).
			Int("due_in_transit", s.Delivery.DueInTransit).
			Int("due_delivered", s.Delivery.DueDelivered).
			Msg("Delivery status check")
	}

	event := logging.Info()
	if len(s.Failed()) > 0 {
		event = logging.Warn()
	}
	event.
		Str("mode", s.Mode).
		Int("rows", s.TotalRows()).
		Int("stages", len(s.Stages)).
		Int("failed", len(s.Failed())).
		Int("skipped", len(s.Skipped)).
		Bool("fallback", s.Fallback).
		Dur("duration", s.Duration).
		Msg("Run complete")
}
