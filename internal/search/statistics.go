package search

// Statistics accumulates counters over one search that are useful for
// tuning and debugging but play no role in the search's own control flow.
type Statistics struct {
	BetaCuts    uint64
	BetaCuts1st uint64

	RFPPrunings     uint64
	RazoringCutoffs uint64
	FPPrunings      uint64
	SEEPrunings     uint64
	LMPCuts         uint64

	NullMoveCuts uint64
	CheckExtensions uint64

	LMRReductions   uint64
	LMRResearches   uint64

	IIRReductions uint64

	AspirationResearches uint64

	TTHits   uint64
	TTMisses uint64
	TTCuts   uint64

	StandPatCuts uint64
	QNodes       uint64
}

// Clear resets every counter to zero, for a fresh search.
func (s *Statistics) Clear() { *s = Statistics{} }
