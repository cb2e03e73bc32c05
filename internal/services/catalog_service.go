package services

import (
	"shopweaver/internal/domain"
	"shopweaver/internal/repos"
)

type CatalogService struct {
	Cats  *repos.CategoryRepo
	Prods *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Prods: prods}
}

func (s *CatalogService) ListCategories(storeID string) ([]domain.Category, error) {
	return s.Cats.ListByStore(storeID)
}

func (s *CatalogService) ListProducts(storeID string) ([]domain.Product, error) {
	return s.Prods.ListByStore(storeID)
}

func (s *CatalogService) ListProductsByCategory(storeID, catID string, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.ListByCategory(storeID, catID, pageSize, offset)
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) Search(storeID, q, category string, inStockOnly bool, page, pageSize int) ([]domain.Product, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 12
	}
	offset := (page - 1) * pageSize
	return s.Prods.Search(storeID, q, category, inStockOnly, pageSize, offset)
}
