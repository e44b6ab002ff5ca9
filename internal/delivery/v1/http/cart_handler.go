package http

import (
	"net/http"

	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// cartTokenHeader идентифицирует корзину покупателя. Клиент без токена
// получает новый в ответе и обязан присылать его в последующих запросах.
const cartTokenHeader = "X-Cart-Token"

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// cartToken возвращает токен корзины из запроса, создавая новый при отсутствии,
// и всегда проставляет его в ответ.
func cartToken(w http.ResponseWriter, r *http.Request) string {
	token := r.Header.Get(cartTokenHeader)
	if token == "" {
		token = uuid.NewString()
	}
	w.Header().Set(cartTokenHeader, token)
	return token
}

func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	res, err := c.cartUsecase.GetCart(r.Context(), token)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart":      newCartView(res.Cart),
		"cartToken": token,
	})
}

func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	var body struct {
		ProductID int64  `json:"productId"`
		VariantID *int64 `json:"variantId"`
		Quantity  int    `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.AddItem(r.Context(), usecase.NewAddItemReq(token, body.ProductID, body.VariantID, body.Quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart":       newCartView(res.Cart),
		"result":     newAddResultView(res.Result),
		"openDrawer": res.OpenDrawer,
		"cartToken":  token,
	})
}

func (c *CartHandler) updateItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)
	lineID := chi.URLParam(r, "lineID")

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.cartUsecase.SetItemQuantity(r.Context(), token, lineID, body.Quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart":      newCartView(res.Cart),
		"cartToken": token,
	})
}

func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)
	lineID := chi.URLParam(r, "lineID")

	res, err := c.cartUsecase.RemoveItem(r.Context(), token, lineID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"cart":      newCartView(res.Cart),
		"cartToken": token,
	})
}

func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	if err := c.cartUsecase.ClearCart(r.Context(), token); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
