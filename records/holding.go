package records

import (
	"github.com/kumaryash98110-netizen/investcore/fincalc"
	"github.com/kumaryash98110-netizen/investcore/store"
)

// Holding is one position in the demo portfolio: what was paid for it and
// what it is worth now.
type Holding struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Invested float64 `json:"invested"`
	Current  float64 `json:"current"`
}

func (h Holding) RecordID() string { return h.ID }

func (h Holding) WithID(recordID string) Holding {
	h.ID = recordID
	return h
}

// GainPercent returns the holding's simple return in percent, or
// fincalc.ErrIndeterminate when the invested amount is zero.
func (h Holding) GainPercent() (float64, error) {
	return fincalc.ROI(h.Invested, h.Current)
}

// OpenHoldings opens the holding collection stored under key.
func OpenHoldings(p store.Provider, key string, opts ...store.Option[Holding]) *store.Store[Holding] {
	return store.Open[Holding](p, key, opts...)
}
