package config

import (
	"corvid/internal/search"
	. "corvid/internal/types"
)

// SearchConfig exposes the search's pruning/reduction/extension toggles and
// their depth thresholds as named, file-overridable settings. The
// finer-grained tuned tables (LMR/LMP curves, per-depth margins) are not
// exposed here - they come from search.DefaultParams and are expected to
// move only when the engine itself is retuned, not from a deployment's
// config file. Nothing in the engine calls ToParams: the search runs on
// search.DefaultParams, and of these settings only TTSizeMB is read (by the
// UCI handler).
type SearchConfig struct {
	TTSizeMB int

	UseIIR   bool
	IIRDepth int

	UseRFP   bool
	RFPDepth int

	UseRazoring   bool
	RazoringDepth int

	UseNMP      bool
	NMPMinDepth int

	UseLMR         bool
	LMRMinDepth    int
	LMRMovesPlayed int

	UseLMP bool

	UseFP   bool
	FPDepth int

	UseSEEPruning bool
	SEEDepth      int

	UseCheckExtension bool
	UseMDP            bool

	UseAspiration   bool
	AspirationDelta int32
}

func init() {
	Settings.Search = SearchConfig{
		TTSizeMB: 64,

		UseIIR:   true,
		IIRDepth: 4,

		UseRFP:   true,
		RFPDepth: 3,

		UseRazoring:   true,
		RazoringDepth: 3,

		UseNMP:      true,
		NMPMinDepth: 3,

		UseLMR:         true,
		LMRMinDepth:    3,
		LMRMovesPlayed: 3,

		UseLMP: true,

		UseFP:   true,
		FPDepth: 6,

		UseSEEPruning: true,
		SEEDepth:      8,

		UseCheckExtension: true,
		UseMDP:            true,

		UseAspiration:   true,
		AspirationDelta: 50,
	}
}

// ToParams builds a search.Params starting from the engine's tuned defaults
// and overriding only the fields this config exposes.
func (c *SearchConfig) ToParams() *search.Params {
	p := search.DefaultParams()
	p.UseIIR, p.IIRDepth = c.UseIIR, c.IIRDepth
	p.UseRFP, p.RFPDepth = c.UseRFP, c.RFPDepth
	p.UseRazoring, p.RazoringDepth = c.UseRazoring, c.RazoringDepth
	p.UseNMP, p.NMPMinDepth = c.UseNMP, c.NMPMinDepth
	p.UseLMR, p.LMRMinDepth, p.LMRMovesPlayed = c.UseLMR, c.LMRMinDepth, c.LMRMovesPlayed
	p.UseLMP = c.UseLMP
	p.UseFP, p.FPDepth = c.UseFP, c.FPDepth
	p.UseSEEPruning, p.SEEDepth = c.UseSEEPruning, c.SEEDepth
	p.UseCheckExtension = c.UseCheckExtension
	p.UseMDP = c.UseMDP
	if c.UseAspiration {
		p.AspirationDelta = Score(c.AspirationDelta)
	} else {
		p.AspirationDelta = 0
	}
	return p
}
