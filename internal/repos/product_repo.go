package repos

import (
	"shopweaver/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, store_id, COALESCE(category_id,'') AS category_id, name,
  COALESCE(description,'') AS description, price, currency,
  COALESCE(images_json,'[]') AS images_json, rating, review_count,
  discount_percent, COALESCE(tags_json,'[]') AS tags_json, in_stock, created_at`

func (r *ProductRepo) ListByStore(storeID string) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE store_id = ?
	  ORDER BY created_at DESC, id
	`, storeID)
	return out, err
}

func (r *ProductRepo) ListByCategory(storeID, catID string, limit, offset int) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE store_id = ? AND category_id = ?
	  ORDER BY created_at DESC, id
	  LIMIT ? OFFSET ?
	`, storeID, catID, limit, offset)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Search(storeID, q, catID string, inStockOnly bool, limit, offset int) ([]domain.Product, error) {
	where := `store_id = ?`
	args := []any{storeID}
	if q != "" {
		where += ` AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ?)`
		args = append(args, "%"+q+"%", "%"+q+"%")
	}
	if catID != "" {
		where += ` AND category_id = ?`
		args = append(args, catID)
	}
	if inStockOnly {
		where += ` AND in_stock = 1`
	}

	query := `
	  SELECT ` + productCols + `
	  FROM products
	  WHERE ` + where + `
	  ORDER BY created_at DESC, id
	  LIMIT ? OFFSET ?`
	args = append(args, limit, offset)

	var out []domain.Product
	err := r.db.Select(&out, query, args...)
	return out, err
}
