package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// newGenerateCmd lofts a hull and writes the surface as ASCII STL.
func newGenerateCmd() *cobra.Command {
	var (
		cfgPath string
		preset  string
		out     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "loft a hull and write a watertight STL surface",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			cfg, err := loadCase(cfgPath, preset)
			if err != nil {
				return err
			}

			logger.Debug("lofting hull",
				"length", cfg.Hull.Length,
				"beam", cfg.Hull.Beam,
				"stations", cfg.Stations,
				"points", cfg.ProfilePoints)

			surface, err := buildSurface(cfg)
			if err != nil {
				return err
			}

			name := strings.TrimSuffix(filepath.Base(out), filepath.Ext(out))
			if err := surface.SaveSTL(out, name); err != nil {
				return err
			}

			logger.Info("wrote hull surface",
				"path", out,
				"vertices", surface.VertexCount(),
				"triangles", surface.TriangleCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "case configuration YAML")
	cmd.Flags().StringVarP(&preset, "preset", "p", "", "built-in hull preset")
	cmd.Flags().StringVarP(&out, "out", "o", "hull.stl", "output STL path")
	return cmd
}
