package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
)

// AdminHandler обслуживает бэк-офис: товары, категории, заказы,
// покупатели и точки продаж.
type AdminHandler struct {
	adminUsecase usecase.AdminUC
	logger       logger.Logger
}

func NewAdminHandler(adminUsecase usecase.AdminUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase, logger: logger}
}

// registerNewProduct принимает multipart/form-data: поля name, slug,
// category_id, price (в найрах, до двух знаков), inventory, variants
// (JSON-массив) и файлы images.
func (a *AdminHandler) registerNewProduct(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	req, err := a.parseProductForm(r)
	if err != nil {
		a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		// товар без изображений допустим, остальные ошибки фатальны
		if !errors.Is(err, e.ErrNoImages) {
			a.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
	}
	req.Images = images

	product, err := a.adminUsecase.RegisterNewProduct(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductView(product))
}

func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body struct {
		Name       string `json:"name"`
		Slug       string `json:"slug"`
		CategoryID int64  `json:"categoryId"`
		Price      string `json:"price"`
		Inventory  int    `json:"inventory"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	price, err := parsePriceToKobo(body.Price)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.adminUsecase.UpdateProduct(r.Context(), &usecase.UpdateProductReq{
		ID:         id,
		Name:       body.Name,
		Slug:       body.Slug,
		CategoryID: body.CategoryID,
		Price:      price,
		Inventory:  body.Inventory,
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductView(product))
}

func (a *AdminHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := a.adminUsecase.ArchiveProduct(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *AdminHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	category, err := a.adminUsecase.CreateCategory(r.Context(), body.Name, body.Slug)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, categoryView{ID: category.ID, Name: category.Name, Slug: category.Slug})
}

func (a *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListOrders(r.Context(), &usecase.ListOrdersReq{
		Status:  r.URL.Query().Get("status"),
		Page:    queryInt(r, "page", 1),
		PerPage: queryInt(r, "perPage", 20),
	})
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders": newOrderViews(res.Orders),
		"total":  res.Total,
	})
}

func (a *AdminHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := a.adminUsecase.GetOrder(r.Context(), id)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderView(order))
}

func (a *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	order, err := a.adminUsecase.UpdateOrderStatus(r.Context(), id, body.Status)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newOrderView(order))
}

func (a *AdminHandler) listCustomers(w http.ResponseWriter, r *http.Request) {
	res, err := a.adminUsecase.ListCustomers(r.Context(), queryInt(r, "page", 1), queryInt(r, "perPage", 20))
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"customers": newCustomerViews(res.Customers),
		"total":     res.Total,
	})
}

func (a *AdminHandler) createLocation(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseLocationBody(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	location, err := a.adminUsecase.CreateLocation(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newLocationView(location))
}

func (a *AdminHandler) updateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	req, err := a.parseLocationBody(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	location, err := a.adminUsecase.UpdateLocation(r.Context(), id, req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newLocationView(location))
}

func (a *AdminHandler) parseLocationBody(r *http.Request) (*usecase.LocationReq, error) {
	var body struct {
		Name     string `json:"name"`
		Address  string `json:"address"`
		City     string `json:"city"`
		State    string `json:"state"`
		Phone    string `json:"phone"`
		Hours    string `json:"hours"`
		IsActive *bool  `json:"isActive"`
	}
	if err := decodeJSON(r, &body); err != nil {
		return nil, err
	}

	isActive := true
	if body.IsActive != nil {
		isActive = *body.IsActive
	}

	return &usecase.LocationReq{
		Name:     body.Name,
		Address:  body.Address,
		City:     body.City,
		State:    body.State,
		Phone:    body.Phone,
		Hours:    body.Hours,
		IsActive: isActive,
	}, nil
}

// parseProductForm разбирает multipart-поля нового товара.
func (a *AdminHandler) parseProductForm(r *http.Request) (*usecase.AddNewProductReq, error) {
	name := r.FormValue("name")
	priceStr := r.FormValue("price")
	categoryStr := r.FormValue("category_id")

	if name == "" || priceStr == "" || categoryStr == "" {
		return nil, e.Wrap("name, price and category_id are required", e.ErrMissingFields)
	}

	price, err := parsePriceToKobo(priceStr)
	if err != nil {
		return nil, err
	}

	categoryID, err := strconv.ParseInt(categoryStr, 10, 64)
	if err != nil || categoryID <= 0 {
		return nil, e.Wrap("category_id", e.ErrStatusBadRequest)
	}

	inventory := 0
	if v := r.FormValue("inventory"); v != "" {
		inventory, err = strconv.Atoi(v)
		if err != nil || inventory < 0 {
			return nil, e.Wrap("inventory", e.ErrStatusBadRequest)
		}
	}

	variants, err := a.parseVariants(r.FormValue("variants"))
	if err != nil {
		return nil, err
	}

	return &usecase.AddNewProductReq{
		Name:       name,
		Slug:       r.FormValue("slug"),
		CategoryID: categoryID,
		Price:      price,
		Inventory:  inventory,
		Variants:   variants,
	}, nil
}

// parseVariants разбирает JSON-массив вариантов из multipart-поля.
// Цена надбавки передаётся строкой в найрах, как и цена товара.
func (a *AdminHandler) parseVariants(raw string) ([]usecase.NewVariant, error) {
	if raw == "" {
		return nil, nil
	}

	var bodies []struct {
		Size            *string `json:"size"`
		Color           *string `json:"color"`
		PriceAdjustment string  `json:"priceAdjustment"`
		Inventory       int     `json:"inventory"`
	}
	if err := json.Unmarshal([]byte(raw), &bodies); err != nil {
		return nil, e.Wrap("variants", e.ErrStatusBadRequest)
	}

	variants := make([]usecase.NewVariant, 0, len(bodies))
	for _, body := range bodies {
		adjustment := int64(0)
		if body.PriceAdjustment != "" {
			var err error
			adjustment, err = parsePriceToKobo(body.PriceAdjustment)
			if err != nil {
				return nil, err
			}
		}
		if body.Inventory < 0 {
			return nil, e.Wrap("variant inventory", e.ErrStatusBadRequest)
		}

		variants = append(variants, usecase.NewVariant{
			Size:            body.Size,
			Color:           body.Color,
			PriceAdjustment: adjustment,
			Inventory:       body.Inventory,
		})
	}

	return variants, nil
}
