package handlers

import (
	"shopweaver/internal/config"
	"shopweaver/internal/landing"
	"shopweaver/internal/pos"
	"shopweaver/internal/repos"
	"shopweaver/internal/services"
	"shopweaver/internal/session"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	Stores   *services.StoreService
	Sessions *session.Manager

	StorefrontHandler   *StorefrontHandler
	CartHandler         *CartHandler
	CheckoutHandler     *CheckoutHandler
	PosHandler          *PosHandler
	ThemeHandler        *ThemeHandler
	AvailabilityHandler *AvailabilityHandler
	AdminHandler        *AdminHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	storeRepo := repos.NewStoreRepo(db)
	prodRepo := repos.NewProductRepo(db)
	catRepo := repos.NewCategoryRepo(db)

	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	storeSvc := services.NewStoreService(storeRepo, cfg.DefaultStore)
	checkoutSvc := services.NewCheckoutService()

	sessions := session.NewManager(catalogSvc)
	terminal := pos.NewTerminal(catalogSvc)
	editor := landing.NewEditor()

	return &Deps{
		Stores:   storeSvc,
		Sessions: sessions,

		StorefrontHandler:   &StorefrontHandler{Catalog: catalogSvc},
		CartHandler:         &CartHandler{},
		CheckoutHandler:     &CheckoutHandler{Checkout: checkoutSvc},
		PosHandler:          &PosHandler{Terminal: terminal},
		ThemeHandler:        &ThemeHandler{},
		AvailabilityHandler: &AvailabilityHandler{Catalog: catalogSvc},
		AdminHandler:        &AdminHandler{Editor: editor},
	}
}
