package http

import (
	"net/http"

	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

// ProductHandler обслуживает витрину: каталог, карточки товаров,
// категории и точки продаж.
type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	res, err := p.catalogUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{
		CategorySlug: r.URL.Query().Get("category"),
		Page:         queryInt(r, "page", 1),
		PerPage:      queryInt(r, "perPage", 20),
	})
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"products": newProductViews(res.Products),
		"total":    res.Total,
	})
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := p.catalogUsecase.GetProductBySlug(r.Context(), slug)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductView(product))
}

func (p *ProductHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": newCategoryViews(categories),
	})
}

func (p *ProductHandler) listLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := p.catalogUsecase.ListLocations(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"locations": newLocationViews(locations),
	})
}
