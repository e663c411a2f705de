package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/shubhamnexus/samparkmain-dashboard/analytics"
	"github.com/shubhamnexus/samparkmain-dashboard/dataset"
	"github.com/shubhamnexus/samparkmain-dashboard/drilldown"
	"github.com/shubhamnexus/samparkmain-dashboard/models"
	"github.com/shubhamnexus/samparkmain-dashboard/utils"
)

var (
	panelFlag    string
	partnerFlag  string
	stateFlag    string
	periodFlag   string
	districtFlag string
	blockFlag    string
)

type panelFunc func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{}

var panels = map[string]panelFunc{
	"filtered": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		sel, fallbacks := c.Resolve(sel)
		return models.FilteredResponse{Selection: sel, Fallbacks: fallbacks, Seed: seed, Totals: c.FilteredData(sel)}
	},
	"budget": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		sel, fallbacks := c.Resolve(sel)
		period, _ := c.Period(sel.Period)
		j := utils.NewSeededJitter(seed)
		return models.BudgetResponse{
			Selection: sel,
			Fallbacks: fallbacks,
			Seed:      seed,
			Breakdown: analytics.DeriveBudget(c.FilteredData(sel), period, j),
			Trend:     analytics.BudgetTrend(c, sel, j),
		}
	},
	"performance": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		sel, fallbacks := c.Resolve(sel)
		return models.PerformanceResponse{
			Selection: sel,
			Fallbacks: fallbacks,
			Seed:      seed,
			Trend:     analytics.PerformanceTrend(c, sel, utils.NewSeededJitter(seed)),
		}
	},
	"districts": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		sel, fallbacks := c.Resolve(sel)
		return models.CoverageResponse{
			Selection: sel,
			Fallbacks: fallbacks,
			Seed:      seed,
			Rows:      analytics.DistrictCoverage(c, sel, utils.NewSeededJitter(seed)),
		}
	},
	"blocks": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		sel, fallbacks := c.Resolve(sel)
		district, rows := analytics.BlockCoverage(c, sel, utils.NewSeededJitter(seed))
		return models.CoverageResponse{Selection: sel, Fallbacks: fallbacks, Seed: seed, District: district, Rows: rows}
	},
	"summary": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		out := analytics.DeriveSummary(c, sel, utils.NewSeededJitter(seed))
		out.Seed = seed
		return out
	},
	"goals": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		out := analytics.DeriveGoals(c, sel, utils.NewSeededJitter(seed))
		out.Seed = seed
		return out
	},
	"overview": func(c *dataset.Catalog, sel models.FilterSelection, seed uint64) interface{} {
		out := analytics.DeriveOverview(c, sel, utils.NewSeededJitter(seed))
		out.Seed = seed
		return out
	},
}

func panelNames() []string {
	names := make([]string, 0, len(panels))
	for name := range panels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one dashboard panel as JSON",
	Example: `  dashboard snapshot --panel goals --partner edutech --state kerala --period Q4 --seed 42
  dashboard snapshot --panel overview --state delhi`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := dataset.LoadCatalog(cfg.ReferenceFile)
		if err != nil {
			return err
		}
		return writeSnapshot(cmd.OutOrStdout(), catalog, panelFlag, models.FilterSelection{
			Partner: partnerFlag,
			State:   stateFlag,
			Period:  periodFlag,
		}, snapshotSeed())
	},
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Expand a district, and optionally one of its blocks, as JSON",
	Example: `  dashboard drill --state andhra-pradesh --district AP01 --seed 7
  dashboard drill --state andhra-pradesh --district AP01 --block AP01B03`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := dataset.LoadCatalog(cfg.ReferenceFile)
		if err != nil {
			return err
		}
		view, err := drill(catalog, stateFlag, districtFlag, blockFlag, snapshotSeed())
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), view)
	},
}

func init() {
	snapshotCmd.Flags().StringVar(&panelFlag, "panel", "summary", "panel to render")
	snapshotCmd.Flags().StringVar(&partnerFlag, "partner", "all", "partner id")
	snapshotCmd.Flags().StringVar(&stateFlag, "state", dataset.AllStates, "state id")
	snapshotCmd.Flags().StringVar(&periodFlag, "period", "all", "period id")

	drillCmd.Flags().StringVar(&stateFlag, "state", dataset.AllStates, "state id")
	drillCmd.Flags().StringVar(&districtFlag, "district", "", "district code")
	drillCmd.Flags().StringVar(&blockFlag, "block", "", "block code within the district")
	_ = drillCmd.MarkFlagRequired("district")
}

func snapshotSeed() uint64 {
	if cfg.HasSeed {
		return cfg.Seed
	}
	return utils.NewSeed()
}

func writeSnapshot(w io.Writer, c *dataset.Catalog, panel string, sel models.FilterSelection, seed uint64) error {
	fn, ok := panels[panel]
	if !ok {
		return fmt.Errorf("unknown panel %q (want one of %v)", panel, panelNames())
	}
	return encode(w, fn(c, sel, seed))
}

// drill replays a district and optional block selection on a fresh navigator.
func drill(c *dataset.Catalog, state, district, block string, seed uint64) (models.DrillView, error) {
	profile := c.Profile(state)
	nav := drilldown.NewNavigator(profile.ID, profile.Overview, seed)
	if _, err := nav.SelectDistrict(district); err != nil {
		return models.DrillView{}, err
	}
	if block != "" {
		if _, err := nav.SelectBlock(block); err != nil {
			return models.DrillView{}, err
		}
	}
	return nav.View(), nil
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
