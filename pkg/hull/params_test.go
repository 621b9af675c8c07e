package hull

import (
	"errors"
	"strings"
	"testing"
)

func bargeParams() Parameters {
	return Parameters{
		Length:               135.0,
		Beam:                 14.2,
		Depth:                4.0,
		BilgeRadius:          0.8,
		ParallelMidbodyStart: 20.0,
		ParallelMidbodyEnd:   115.0,
		BowRakeLength:        20.0,
		SternRakeLength:      25.0,
		SternTunnelHeight:    1.8,
	}
}

func TestParametersValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Parameters)
		wantErr string // substring of the error, "" for valid
	}{
		{"reference barge", func(p *Parameters) {}, ""},
		{"no rake or tunnel", func(p *Parameters) {
			p.SternRakeLength = 0
			p.SternTunnelHeight = 0
		}, ""},
		{"zero length", func(p *Parameters) { p.Length = 0 }, "length"},
		{"negative beam", func(p *Parameters) { p.Beam = -1 }, "beam"},
		{"zero depth", func(p *Parameters) { p.Depth = 0 }, "depth"},
		{"bilge radius beyond half beam", func(p *Parameters) { p.BilgeRadius = 8.0 }, "bilgeRadius"},
		{"negative bilge radius", func(p *Parameters) { p.BilgeRadius = -0.1 }, "bilgeRadius"},
		{"midbody start after end", func(p *Parameters) {
			p.ParallelMidbodyStart = 120
		}, "parallelMidbodyStart"},
		{"midbody end past stem", func(p *Parameters) { p.ParallelMidbodyEnd = 140 }, "parallelMidbodyEnd"},
		{"bow rake overruns stem", func(p *Parameters) { p.BowRakeLength = 30 }, "bowRakeLength"},
		{"negative stern rake", func(p *Parameters) { p.SternRakeLength = -1 }, "sternRakeLength"},
		{"tunnel without rake", func(p *Parameters) {
			p.SternRakeLength = 0
		}, "sternTunnelHeight requires"},
		{"tunnel deeper than hull", func(p *Parameters) { p.SternTunnelHeight = 4.0 }, "sternTunnelHeight"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := bargeParams()
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidParameters) {
				t.Errorf("Validate() error does not wrap ErrInvalidParameters: %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestParametersValidateCollectsAllProblems(t *testing.T) {
	p := Parameters{Length: -1, Beam: -1, Depth: -1}
	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() = nil for all-invalid record")
	}
	for _, want := range []string{"length", "beam", "depth"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, missing %q", err, want)
		}
	}
}

func TestStyleValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Style)
		wantOK bool
	}{
		{"defaults", func(s *Style) {}, true},
		{"no sheer", func(s *Style) {
			s.SternSheerRise, s.BowSheerRise = 0, 0
			s.SternSheerLength, s.BowSheerLength = 0, 0
		}, true},
		{"zero stern taper floor", func(s *Style) { s.SternTaperFloor = 0 }, false},
		{"bow taper floor above one", func(s *Style) { s.BowTaperFloor = 1.5 }, false},
		{"zero keel rise exponent", func(s *Style) { s.KeelRiseExp = 0 }, false},
		{"sheer rise without length", func(s *Style) { s.SternSheerLength = 0 }, false},
		{"zero bilge clamp", func(s *Style) { s.BilgeClampFraction = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStyle()
			tt.mutate(&s)
			err := s.Validate()
			if (err == nil) != tt.wantOK {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.wantOK)
			}
		})
	}
}

func TestNewGeneratorRejectsInvalid(t *testing.T) {
	p := bargeParams()
	p.Length = 0
	if _, err := NewGenerator(p, DefaultStyle()); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("NewGenerator() = %v, want ErrInvalidParameters", err)
	}

	s := DefaultStyle()
	s.BilgeClampFraction = -1
	if _, err := NewGenerator(bargeParams(), s); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("NewGenerator() with bad style = %v, want ErrInvalidParameters", err)
	}
}
