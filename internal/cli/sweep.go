package cli

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/keelson/internal/config"
	"github.com/chazu/keelson/pkg/hydro"
	"github.com/chazu/keelson/pkg/sweep"
)

// newSweepCmd evaluates several case files or presets concurrently and
// prints a comparison table.
func newSweepCmd() *cobra.Command {
	var (
		presets []string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "sweep [case.yaml...]",
		Short: "evaluate multiple hull cases and compare equilibria",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			var cases []sweep.Case
			for _, path := range args {
				cfg, err := config.Load(path)
				if err != nil {
					return err
				}
				name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
				cases = append(cases, caseFromConfig(name, cfg))
			}
			for _, name := range presets {
				cfg, ok := config.Presets[name]
				if !ok {
					return fmt.Errorf("unknown preset %q", name)
				}
				cases = append(cases, caseFromConfig(name, cfg))
			}
			if len(cases) == 0 {
				return fmt.Errorf("no cases given; pass case files or --preset names")
			}

			logger.Info("sweeping", "cases", len(cases), "workers", workers)
			outcomes := sweep.Run(cmd.Context(), cases, sweep.Options{Workers: workers})

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CASE\tSTATUS\tDRAFT m\tVOLUME m³\tCB x\tCB z\tINTEGRITY")
			failed := 0
			for _, o := range outcomes {
				if o.Err != nil {
					failed++
					fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t-\t%v\n",
						o.Name, styleFail.Render("ERROR"), o.Err)
					continue
				}
				status := string(o.Equilibrium.Status)
				if o.Equilibrium.Status == hydro.StatusOK {
					status = stylePass.Render(status)
				} else {
					status = styleWarn.Render(status)
				}
				integrity := stylePass.Render("ok")
				if !o.Report.Watertight || !o.Report.WindingConsistent {
					failed++
					integrity = styleFail.Render("defective")
				}
				fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.1f\t%.2f\t%.3f\t%s\n",
					o.Name, status,
					o.Equilibrium.Draft, o.Equilibrium.SubmergedVolume,
					o.Equilibrium.CenterOfBuoyancy.X, o.Equilibrium.CenterOfBuoyancy.Z,
					integrity)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d cases failed", failed, len(cases))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&presets, "preset", "p", nil, "built-in presets to include")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker count (default: number of CPUs)")
	return cmd
}

func caseFromConfig(name string, cfg *config.Config) sweep.Case {
	return sweep.Case{
		Name:         name,
		Params:       cfg.Hull,
		Style:        cfg.Style,
		TargetMass:   cfg.TargetMass,
		FluidDensity: cfg.FluidDensity,
	}
}
