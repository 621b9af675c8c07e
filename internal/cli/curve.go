package cli

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/chazu/keelson/pkg/hydro"
)

// newCurveCmd plots the hydrostatic curves of the hull: waterplane
// area and submerged volume as functions of the waterline height.
func newCurveCmd() *cobra.Command {
	var (
		cfgPath string
		preset  string
		samples int
	)

	cmd := &cobra.Command{
		Use:   "curve",
		Short: "plot waterplane area and volume against waterline height",
		RunE: func(cmd *cobra.Command, args []string) error {
			if samples < 2 {
				return fmt.Errorf("need at least 2 samples, got %d", samples)
			}

			cfg, err := loadCase(cfgPath, preset)
			if err != nil {
				return err
			}
			surface, err := buildSurface(cfg)
			if err != nil {
				return err
			}

			min, max := surface.Bounds()
			span := max.Z - min.Z
			areas := make([]float64, samples)
			vols := make([]float64, samples)
			for i := range areas {
				z := min.Z + span*float64(i)/float64(samples-1)
				areas[i] = hydro.WaterplaneArea(surface, z)
				v, _ := hydro.VolumeByGauss(surface, z)
				vols[i] = v
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, asciigraph.Plot(areas,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("waterplane area, m² (z from %.2f to %.2f m)", min.Z, max.Z)),
			))
			fmt.Fprintln(w)
			fmt.Fprintln(w, asciigraph.Plot(vols,
				asciigraph.Height(10),
				asciigraph.Width(80),
				asciigraph.Caption(fmt.Sprintf("submerged volume, m³ (z from %.2f to %.2f m)", min.Z, max.Z)),
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "case configuration YAML")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in hull preset")
	cmd.Flags().IntVarP(&samples, "samples", "n", 60, "number of waterline samples")
	return cmd
}
