package sqlite

import (
	"context"

	"github.com/spendwise/spendwise/internal/domain"
)

type statsRepo struct {
	db dbtx
}

// Summary aggregates one user's expenses. Four small queries rather than one
// sprawling statement; the service runs them inside a transaction so they
// share one snapshot.
func (r *statsRepo) Summary(ctx context.Context, userID int64) (domain.Stats, error) {
	var stats domain.Stats

	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = ?`, userID).
		Scan(&stats.Total.Total)
	if err != nil {
		return domain.Stats{}, err
	}

	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM expenses WHERE user_id = ?`, userID).
		Scan(&stats.Count.Count)
	if err != nil {
		return domain.Stats{}, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT c.name, c.color, SUM(e.amount) AS total, COUNT(e.id)
		 FROM expenses e
		 JOIN categories c ON e.category_id = c.id
		 WHERE e.user_id = ?
		 GROUP BY c.id, c.name, c.color
		 ORDER BY total DESC`, userID)
	if err != nil {
		return domain.Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ct domain.CategoryTotal
		if err := rows.Scan(&ct.Name, &ct.Color, &ct.Total, &ct.Count); err != nil {
			return domain.Stats{}, err
		}
		stats.ByCategory = append(stats.ByCategory, ct)
	}
	if err := rows.Err(); err != nil {
		return domain.Stats{}, err
	}

	recent, err := r.db.QueryContext(ctx,
		expenseSelect+` WHERE e.user_id = ? ORDER BY e.created_at DESC, e.id DESC LIMIT 5`,
		userID)
	if err != nil {
		return domain.Stats{}, err
	}
	defer recent.Close()

	stats.Recent, err = scanExpenses(recent)
	if err != nil {
		return domain.Stats{}, err
	}

	return stats, nil
}
