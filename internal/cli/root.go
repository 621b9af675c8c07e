package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/chazu/keelson/internal/config"
	"github.com/chazu/keelson/pkg/hull"
	"github.com/chazu/keelson/pkg/loft"
	"github.com/chazu/keelson/pkg/mesh"
)

// Execute runs the keelson CLI under ctx and returns an error if any
// command fails.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "keelson",
		Short:        "parametric hull geometry and hydrostatics",
		Long:         "Keelson lofts parametric ship hulls into watertight surfaces and computes their hydrostatic equilibrium.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newDraftCmd())
	root.AddCommand(newCurveCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newPresetsCmd())

	return root.ExecuteContext(ctx)
}

// loadCase resolves the case configuration from either a YAML file or
// a named preset; the file wins when both are given.
func loadCase(cfgPath, preset string) (*config.Config, error) {
	if cfgPath != "" {
		return config.Load(cfgPath)
	}
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q (see 'keelson presets')", preset)
		}
		out := *cfg
		return &out, nil
	}
	return config.DefaultConfig(), nil
}

// buildSurface runs sections and lofting for a case and validates the
// result. It aborts on any integrity defect: a leaking surface must
// fail here, not be patched downstream.
func buildSurface(cfg *config.Config) (*mesh.Mesh, error) {
	gen, err := hull.NewGenerator(cfg.Hull, cfg.Style)
	if err != nil {
		return nil, err
	}
	stations, err := gen.Stations(cfg.Stations, cfg.ProfilePoints)
	if err != nil {
		return nil, err
	}
	surface, err := loft.Loft(stations)
	if err != nil {
		return nil, err
	}
	if err := surface.Validate().Err(); err != nil {
		return nil, err
	}
	return surface, nil
}

// newPresetsCmd lists the built-in hull presets.
func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "list built-in hull presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := make([]string, 0, len(config.Presets))
			for name := range config.Presets {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				p := config.Presets[name].Hull
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s L=%.1fm B=%.1fm D=%.1fm\n",
					name, p.Length, p.Beam, p.Depth)
			}
		},
	}
}
