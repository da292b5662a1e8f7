package cli

import (
	"github.com/spf13/cobra"

	"github.com/fmcglabs/warehousegen/internal/store"
	"github.com/fmcglabs/warehousegen/internal/warehouse"
)

var (
	appendTarget      float64
	appendNewProducts int
	appendNewHires    int
	appendBudget      int
)

var appendCmd = &cobra.Command{
	Use:   "append",
	Short: "Append one day of incremental facts",
	Long: `Append today's facts to a previously seeded dataset: a day of sales
against the persisted dimensions, a few new products and hires, and any
monthly facts (wages, inventory, costs) the current month is still missing.

The run is safe to retry: keys continue from the persisted maximum and
rows whose keys already exist are filtered before loading. When the
destination already holds sales dated past today, the run falls back to
the bounded historical window instead of writing out-of-order facts.

Example:
  warehousegen append --connection postgres://... --dataset fmcg_analytics
  warehousegen append --sales-target 2000000`,
	RunE: runAppend,
}

func init() {
	appendCmd.Flags().Float64Var(&appendTarget, "sales-target", 0,
		"sales amount to distribute across the incremental day")
	appendCmd.Flags().IntVar(&appendNewProducts, "new-products-max", -1,
		"upper bound on new products per run (0 disables)")
	appendCmd.Flags().IntVar(&appendNewHires, "new-hires-max", -1,
		"upper bound on new hires per run (0 disables)")
	appendCmd.Flags().IntVar(&appendBudget, "budget", 0,
		"wall-clock budget in minutes; fact stages not started in time are skipped")
}

func runAppend(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if appendTarget > 0 {
		cfg.Append.SalesTarget = appendTarget
	}
	if appendNewProducts >= 0 {
		cfg.Append.NewProductsMax = appendNewProducts
	}
	if appendNewHires >= 0 {
		cfg.Append.NewHiresMax = appendNewHires
	}
	if appendBudget > 0 {
		cfg.Generate.StageBudget = appendBudget
	}

	if err := cfg.ValidateAppend(); err != nil {
		return err
	}

	ctx, cancel := signalContext()
	defer cancel()

	pg, err := store.Connect(ctx, cfg.Connection, cfg.Dataset)
	if err != nil {
		return err
	}
	defer pg.Close()

	orch, err := warehouse.New(pg, cfg)
	if err != nil {
		return err
	}

	sum, err := orch.Append(ctx)
	if err != nil {
		return err
	}
	return stageFailures(sum)
}
