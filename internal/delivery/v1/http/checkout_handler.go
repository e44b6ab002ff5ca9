package http

import (
	"net/http"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/internal/usecase"
	"github.com/crownline/shop-backend/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
}

func NewCheckoutHandler(checkoutUsecase usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase, logger: logger}
}

func (c *CheckoutHandler) quoteShipping(w http.ResponseWriter, r *http.Request) {
	var body struct {
		State     string `json:"state"`
		Subtotal  int64  `json:"subtotal"`
		ItemCount int    `json:"itemCount"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	quote, err := c.checkoutUsecase.QuoteShipping(r.Context(), &usecase.ShippingQuoteReq{
		State:     body.State,
		Subtotal:  body.Subtotal,
		ItemCount: body.ItemCount,
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newShippingQuoteView(quote))
}

func (c *CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	token := cartToken(w, r)

	var body struct {
		Reference string `json:"reference"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		Address   string `json:"address"`
		City      string `json:"city"`
		State     string `json:"state"`
	}
	if err := decodeJSON(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	res, err := c.checkoutUsecase.PlaceOrder(r.Context(), &usecase.PlaceOrderReq{
		Token:     token,
		Reference: body.Reference,
		Shipment: domain.ShippingInfo{
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Email:     body.Email,
			Phone:     body.Phone,
			Address:   body.Address,
			City:      body.City,
			State:     body.State,
		},
	})
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"orderId":   res.OrderID,
		"reference": res.Reference,
		"total":     res.Total,
	})
}
