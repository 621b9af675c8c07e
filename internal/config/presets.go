package config

import "github.com/chazu/keelson/pkg/hull"

// Presets are ready-made cases for the hull forms used in the
// reference simulations. Callers must copy a preset before mutating it.
var Presets = map[string]*Config{
	// 135 m inland canal barge with a stern tunnel, the primary
	// simulation hull.
	"canal-barge": {
		Hull: hull.Parameters{
			Length:               135.0,
			Beam:                 14.2,
			Depth:                4.0,
			BilgeRadius:          0.8,
			ParallelMidbodyStart: 20.0,
			ParallelMidbodyEnd:   115.0,
			BowRakeLength:        20.0,
			SternRakeLength:      25.0,
			SternTunnelHeight:    1.8,
		},
		Style:          hull.DefaultStyle(),
		TargetMass:     2_010_000,
		FluidDensity:   1025.0,
		DraftOffset:    0.10,
		DraftTolerance: 0.05,
		Stations:       hull.DefaultStationCount,
		ProfilePoints:  hull.DefaultProfilePoints,
	},

	// Europe type IIa push barge, 76.5 x 11.4 x 4.0 m: a squarer hull
	// with short rakes and a small bilge radius.
	"europa-iia": {
		Hull: hull.Parameters{
			Length:               76.5,
			Beam:                 11.4,
			Depth:                4.0,
			BilgeRadius:          0.5,
			ParallelMidbodyStart: 6.0,
			ParallelMidbodyEnd:   70.5,
			BowRakeLength:        6.0,
			SternRakeLength:      6.0,
			SternTunnelHeight:    1.2,
		},
		Style:          hull.DefaultStyle(),
		TargetMass:     1_200_000,
		FluidDensity:   1025.0,
		DraftOffset:    0.10,
		DraftTolerance: 0.05,
		Stations:       hull.DefaultStationCount,
		ProfilePoints:  hull.DefaultProfilePoints,
	},
}
