package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/keelson/pkg/hydro"
)

// newDraftCmd solves the equilibrium draft for a target mass and
// optionally checks it against the configured simulation waterline.
func newDraftCmd() *cobra.Command {
	var (
		cfgPath string
		preset  string
		mass    float64
		density float64
		check   bool
	)

	cmd := &cobra.Command{
		Use:   "draft",
		Short: "solve the equilibrium draft for a target mass",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadCase(cfgPath, preset)
			if err != nil {
				return err
			}
			if mass > 0 {
				cfg.TargetMass = mass
			}
			if density > 0 {
				cfg.FluidDensity = density
			}

			surface, err := buildSurface(cfg)
			if err != nil {
				return err
			}

			res := hydro.SolveDraft(surface, cfg.TargetMass, cfg.FluidDensity)
			w := cmd.OutOrStdout()

			switch res.Status {
			case hydro.StatusBelowMinimum:
				fmt.Fprintln(w, styleWarn.Render("BELOW_MIN"),
					"target displacement is below the minimum draft; hull floats at its lowest point")
			case hydro.StatusOverloaded:
				fmt.Fprintf(w, "%s hull displaces at most %.2f m³ (%.0f kg); no equilibrium within the envelope\n",
					styleFail.Render("OVERLOADED"), res.SubmergedVolume, res.SubmergedVolume*cfg.FluidDensity)
			default:
				fmt.Fprintf(w, "equilibrium draft: %s m  (displacing %.2f m³, CB [%.3f %.3f %.3f])\n",
					styleValue.Render(fmt.Sprintf("%.4f", res.Draft)),
					res.SubmergedVolume,
					res.CenterOfBuoyancy.X, res.CenterOfBuoyancy.Y, res.CenterOfBuoyancy.Z)
			}

			if !check {
				return nil
			}

			dc := hydro.VerifyDraft(surface, cfg.TargetMass, cfg.FluidDensity,
				cfg.ConfiguredDraft, cfg.DraftOffset, cfg.DraftTolerance)

			logger.Debug("draft check",
				"computed", dc.ComputedDraft,
				"offset", cfg.DraftOffset,
				"target", dc.TargetDraft,
				"configured", dc.ConfiguredDraft)

			fmt.Fprintf(w, "configured %.4f m vs target %.4f m, delta %.4f m (tolerance %.3f m)\n",
				dc.ConfiguredDraft, dc.TargetDraft, dc.Delta, dc.Tolerance)
			if !dc.Pass {
				fmt.Fprintln(w, styleFail.Render("FAIL"),
					"starting the simulation this far from equilibrium risks large transients")
				return fmt.Errorf("configured draft differs from equilibrium by %.4f m", dc.Delta)
			}
			fmt.Fprintln(w, stylePass.Render("PASS"), "hydrostatics balanced")
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "case configuration YAML")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in hull preset")
	cmd.Flags().Float64VarP(&mass, "mass", "m", 0, "target mass in kg (default: case targetMass)")
	cmd.Flags().Float64Var(&density, "density", 0, "fluid density in kg/m³ (default: case fluidDensity)")
	cmd.Flags().BoolVar(&check, "check", false, "check the configured draft against the solved equilibrium")
	return cmd
}
