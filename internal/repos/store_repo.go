package repos

import (
	"shopweaver/internal/domain"

	"github.com/jmoiron/sqlx"
)

type StoreRepo struct{ db *sqlx.DB }

func NewStoreRepo(db *sqlx.DB) *StoreRepo { return &StoreRepo{db: db} }

const storeCols = `
  id, name, COALESCE(description,'') AS description, COALESCE(logo,'') AS logo,
  domain, theme_id, currency, COALESCE(owner_id,'') AS owner_id, plan, status, created_at`

func (r *StoreRepo) List() ([]domain.Store, error) {
	var out []domain.Store
	err := r.db.Select(&out, `SELECT `+storeCols+` FROM stores ORDER BY name`)
	return out, err
}

func (r *StoreRepo) ListActive() ([]domain.Store, error) {
	var out []domain.Store
	err := r.db.Select(&out, `SELECT `+storeCols+` FROM stores WHERE status='ACTIVE' ORDER BY name`)
	return out, err
}

func (r *StoreRepo) Get(id string) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `SELECT `+storeCols+` FROM stores WHERE id = ?`, id)
	return s, err
}

func (r *StoreRepo) ByDomain(host string) (domain.Store, error) {
	var s domain.Store
	err := r.db.Get(&s, `SELECT `+storeCols+` FROM stores WHERE LOWER(domain) = LOWER(?)`, host)
	return s, err
}
