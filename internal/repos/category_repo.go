package repos

import (
	"shopweaver/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

const categoryCols = `
  id, store_id, COALESCE(parent_id,'') AS parent_id, name,
  COALESCE(description,'') AS description, COALESCE(image,'') AS image,
  created_at, COALESCE(updated_at,'') AS updated_at`

func (r *CategoryRepo) ListByStore(storeID string) ([]domain.Category, error) {
	var out []domain.Category
	err := r.db.Select(&out, `
	  SELECT `+categoryCols+`
	  FROM categories
	  WHERE store_id = ?
	  ORDER BY name
	`, storeID)
	return out, err
}

func (r *CategoryRepo) Get(id string) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT `+categoryCols+` FROM categories WHERE id = ?`, id)
	return c, err
}
