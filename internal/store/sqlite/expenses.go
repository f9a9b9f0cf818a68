package sqlite

import (
	"context"
	"database/sql"

	"github.com/spendwise/spendwise/internal/domain"
)

type expensesRepo struct {
	db dbtx
}

// expenseSelect joins the shared category pool for read paths. LEFT JOIN so
// expenses whose category was deleted (category_id nulled) still list.
const expenseSelect = `
SELECT e.id, e.user_id, e.title, e.amount, e.category_id, e.description, e.date,
       e.created_at, e.updated_at, c.name, c.color
FROM expenses e
LEFT JOIN categories c ON e.category_id = c.id`

func (r *expensesRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		expenseSelect+` WHERE e.user_id = ? ORDER BY e.date DESC, e.created_at DESC, e.id DESC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func (r *expensesRepo) GetByID(ctx context.Context, id, userID int64) (domain.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		expenseSelect+` WHERE e.id = ? AND e.user_id = ?`, id, userID)

	e, err := scanExpense(row.Scan)
	if err != nil {
		return domain.Expense{}, mapNotFound(err)
	}
	return e, nil
}

func (r *expensesRepo) Create(ctx context.Context, e domain.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, title, amount, category_id, description, date)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Title, e.Amount, e.CategoryID, e.Description, e.Date,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *expensesRepo) Update(ctx context.Context, e domain.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses
		 SET title = ?, amount = ?, category_id = ?, description = ?, date = ?,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND user_id = ?`,
		e.Title, e.Amount, e.CategoryID, e.Description, e.Date, e.ID, e.UserID,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.RowsAffected()
}

func (r *expensesRepo) Delete(ctx context.Context, id, userID int64) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM expenses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanExpenses(rows *sql.Rows) ([]domain.Expense, error) {
	var out []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanExpense(scan func(dest ...any) error) (domain.Expense, error) {
	var (
		e          domain.Expense
		categoryID sql.NullInt64
		name       sql.NullString
		color      sql.NullString
	)
	err := scan(&e.ID, &e.UserID, &e.Title, &e.Amount, &categoryID, &e.Description,
		&e.Date, &e.CreatedAt, &e.UpdatedAt, &name, &color)
	if err != nil {
		return domain.Expense{}, err
	}
	e.CategoryID = mapNullInt(categoryID)
	e.CategoryName = mapNullString(name)
	e.CategoryColor = mapNullString(color)
	return e, nil
}
