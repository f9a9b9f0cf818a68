package sqlite

import (
	"context"
	"database/sql"

	"github.com/spendwise/spendwise/internal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, profile_picture, created_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (name, email, password_hash, profile_picture) VALUES (?, ?, ?, ?)`,
		u.Name, u.Email, u.PasswordHash, u.ProfilePicture,
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u       domain.User
		picture sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &picture, &u.CreatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.ProfilePicture = mapNullString(picture)
	return u, nil
}
