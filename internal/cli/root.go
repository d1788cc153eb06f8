package cli

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/lifelog/internal/state"
	"github.com/julianstephens/lifelog/internal/storage"
	"github.com/julianstephens/lifelog/internal/tracker"
)

type Context struct {
	Provider storage.Provider

	trk *tracker.Tracker
}

// Tracker loads the store on first use and returns the mutation layer
// bound to it. Subsequent calls reuse the loaded state.
func (ctx *Context) Tracker() (*tracker.Tracker, error) {
	if ctx.trk != nil {
		return ctx.trk, nil
	}

	snap, err := ctx.Provider.Load()
	if err != nil {
		return nil, err
	}

	store := state.New()
	store.Restore(snap)

	trk := tracker.New(store, ctx.Provider)
	seedLastID(trk, snap)

	ctx.trk = trk
	return trk, nil
}

// seedLastID walks every collection so freshly assigned IDs always
// land after anything already persisted.
func seedLastID(trk *tracker.Tracker, snap state.Snapshot) {
	for _, h := range snap.Habits {
		trk.TrackLastID(h.ID)
	}
	for _, t := range snap.Tasks {
		trk.TrackLastID(t.ID)
	}
	for _, e := range snap.Expenses {
		trk.TrackLastID(e.ID)
	}
	for _, n := range snap.Notes {
		trk.TrackLastID(n.ID)
	}
	for _, m := range snap.Memories {
		trk.TrackLastID(m.ID)
	}
	for _, l := range snap.Loans {
		trk.TrackLastID(l.ID)
	}
	for _, s := range snap.SleepSessions {
		trk.TrackLastID(s.ID)
	}
}

func formatAmount(f float64) string {
	if math.IsNaN(f) {
		return "(invalid)"
	}
	return fmt.Sprintf("%.2f", f)
}

func formatDay(t time.Time) string {
	return t.Format("2006-01-02")
}
