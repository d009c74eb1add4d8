// repository/user_repository.go
package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/splitr-app/splitr-backend/models"
)

// UserRepository handles database operations for users
type UserRepository struct {
	DB *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// GetUser retrieves a user by id. Returns (nil, nil) when no such
// user exists.
func (r *UserRepository) GetUser(id string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRow(
		"SELECT id, name, email, image_url FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Name, &user.Email, &user.ImageURL)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %v", err)
	}

	return &user, nil
}

// GetUsersByIDs retrieves users for the given ids, keyed by id.
// Missing ids are simply absent from the map.
func (r *UserRepository) GetUsersByIDs(ids []string) (map[string]*models.User, error) {
	users := make(map[string]*models.User, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	rows, err := r.DB.Query(
		"SELECT id, name, email, image_url FROM users WHERE id = ANY($1)",
		pq.Array(ids),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.ImageURL); err != nil {
			return nil, fmt.Errorf("failed to scan user: %v", err)
		}
		users[user.ID] = &user
	}

	return users, rows.Err()
}
