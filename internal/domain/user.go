package domain

import "time"

// User is one account holder. PasswordHash is opaque (bcrypt, embedded salt
// and cost) and must never be serialized to a client; handlers return the
// Public projection instead.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	ProfilePicture string
	CreatedAt      time.Time
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		ProfilePicture: u.ProfilePicture,
	}
}
