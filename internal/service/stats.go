package service

import (
	"context"

	"github.com/spendwise/spendwise/internal/domain"
	"github.com/spendwise/spendwise/internal/store"
)

// StatsService computes a user's dashboard aggregates.
type StatsService struct {
	Store store.Store
}

// Summary runs the aggregate queries inside one transaction so a concurrent
// write can't land between them and skew total against the breakdown.
func (s *StatsService) Summary(ctx context.Context, userID int64) (domain.Stats, error) {
	var stats domain.Stats
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		var err error
		stats, err = tx.Stats().Summary(ctx, userID)
		return err
	})
	if err != nil {
		return domain.Stats{}, err
	}

	// Empty accounts still serialize arrays, not nulls.
	if stats.ByCategory == nil {
		stats.ByCategory = []domain.CategoryTotal{}
	}
	if stats.Recent == nil {
		stats.Recent = []domain.Expense{}
	}
	return stats, nil
}
