package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/keelson/pkg/hydro"
)

// newVerifyCmd builds the hull, runs the integrity checks and both
// volume paths, and writes the hydrostatics report consumed by the
// case-configuration step.
func newVerifyCmd() *cobra.Command {
	var (
		cfgPath string
		preset  string
		draft   float64
		output  string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "verify surface integrity and report hydrostatics",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadCase(cfgPath, preset)
			if err != nil {
				return err
			}
			surface, err := buildSurface(cfg)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("draft") {
				draft = cfg.ConfiguredDraft
			}
			report := hydro.BuildReport(surface, draft)
			if output != "" {
				if err := report.Save(output); err != nil {
					return err
				}
				logger.Info("report saved", "path", output)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "draft:            %s m\n", styleValue.Render(fmt.Sprintf("%.3f", report.Draft)))
			fmt.Fprintf(w, "submerged volume: %s m³\n", styleValue.Render(fmt.Sprintf("%.2f", report.SubmergedVolume)))
			fmt.Fprintf(w, "total volume:     %s m³\n", styleValue.Render(fmt.Sprintf("%.2f", report.TotalVolume)))
			fmt.Fprintf(w, "center of buoyancy: [%.3f %.3f %.3f]\n",
				report.CenterOfBuoyancy[0], report.CenterOfBuoyancy[1], report.CenterOfBuoyancy[2])
			fmt.Fprintf(w, "watertight: %v  winding: %v  cross-check: %s\n",
				report.Watertight, report.WindingConsistent,
				styleValue.Render(fmt.Sprintf("%.4f%%", report.CrossCheckError*100)))

			if report.Status != hydro.StatusApproved {
				fmt.Fprintln(w, styleFail.Render("REJECTED"))
				return fmt.Errorf("hull verification failed")
			}
			fmt.Fprintln(w, stylePass.Render("APPROVED"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "case configuration YAML")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in hull preset")
	cmd.Flags().Float64Var(&draft, "draft", 0, "waterline height for the displacement report (default: configured draft)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the JSON report to this path")
	return cmd
}
