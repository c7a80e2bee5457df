package stats

import (
	"context"

	"github.com/verte-zerg/tuistat/internal/model"
	"github.com/verte-zerg/tuistat/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Sessions []model.SessionAggregate
	Letters  []model.LetterAggregate
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	sessions, err := st.ListSessions(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(sessions) > cfg.Last {
		sessions = sessions[len(sessions)-cfg.Last:]
	}
	letters, err := st.ListLetterAggregates(ctx, sessionIDs(sessions))
	if err != nil {
		return Report{}, err
	}
	return Report{
		Sessions: sessions,
		Letters:  letters,
	}, nil
}

func sessionIDs(sessions []model.SessionAggregate) []int64 {
	ids := make([]int64, len(sessions))
	for i, s := range sessions {
		ids[i] = s.SessionID
	}
	return ids
}
