package repository

import (
	"context"

	"github.com/shenikar/shelter_dispatch_system/internal/models"
)

// GetUser возвращает пользователя по идентификатору
func (r *Repository) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, age, family_id
		FROM users
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Age, &user.FamilyID)
	if err != nil {
		return nil, notFoundOr(err, "user", id)
	}
	return user, nil
}
