package usecase

import (
	"context"

	"github.com/crownline/shop-backend/internal/domain"
	"github.com/crownline/shop-backend/pkg/e"
	"github.com/crownline/shop-backend/pkg/logger"
)

// CartUseCase реализует бизнес-логику корзины: загрузка, мутация,
// пересчёт сумм и сохранение за один вызов. Ошибки хранилища не
// прерывают операцию — корзина в памяти остаётся авторитетной.
type CartUseCase struct {
	cartStore   CartStore
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCartUC(cartStore CartStore, productRepo ProductRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		cartStore:   cartStore,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart возвращает текущую корзину по токену сессии.
// Отсутствующая или повреждённая корзина — это пустая корзина, не ошибка.
func (c *CartUseCase) GetCart(ctx context.Context, token string) (*CartRes, error) {
	cart, err := c.cartStore.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap("CartUseCase.GetCart", err)
	}

	return NewCartRes(cart, false), nil
}

// AddItem добавляет товар в корзину. Количество сливается с существующей
// строкой той же пары (товар, вариант) и ограничивается остатком.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (*AddItemRes, error) {
	const op = "CartUseCase.AddItem"

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	product, err := c.productRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var variant *domain.ProductVariant
	if req.VariantID != nil {
		variant = product.Variant(*req.VariantID)
		if variant == nil {
			return nil, e.Wrap(op, e.ErrVariantNotFound)
		}
	} else if product.HasVariants() {
		return nil, e.Wrap(op, e.ErrVariantRequired)
	}

	cart, err := c.cartStore.Get(ctx, req.Token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	result := cart.AddItem(product, variant, quantity)

	c.save(ctx, req.Token, cart)

	return &AddItemRes{
		Cart:       cart,
		Result:     result,
		OpenDrawer: true,
	}, nil
}

// SetItemQuantity напрямую задаёт количество строки; <= 0 удаляет строку.
// Количество ограничивается остатком так же, как при добавлении.
func (c *CartUseCase) SetItemQuantity(ctx context.Context, token string, lineID string, quantity int) (*CartRes, error) {
	const op = "CartUseCase.SetItemQuantity"

	cart, err := c.cartStore.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	line := cart.Line(lineID)
	if line == nil {
		// уменьшение несуществующей строки — no-op
		return NewCartRes(cart, false), nil
	}

	available := c.availableFor(ctx, line)
	cart.SetQuantity(lineID, quantity, available)

	c.save(ctx, token, cart)

	return NewCartRes(cart, false), nil
}

// RemoveItem безусловно удаляет строку корзины.
func (c *CartUseCase) RemoveItem(ctx context.Context, token string, lineID string) (*CartRes, error) {
	const op = "CartUseCase.RemoveItem"

	cart, err := c.cartStore.Get(ctx, token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	cart.Remove(lineID)

	c.save(ctx, token, cart)

	return NewCartRes(cart, false), nil
}

// ClearCart сбрасывает корзину в пустое состояние.
func (c *CartUseCase) ClearCart(ctx context.Context, token string) error {
	const op = "CartUseCase.ClearCart"

	if err := c.cartStore.Delete(ctx, token); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// save сохраняет корзину в хранилище. Ошибка записи логируется и
// проглатывается: корзина в памяти остаётся источником истины до конца запроса.
func (c *CartUseCase) save(ctx context.Context, token string, cart *domain.Cart) {
	if err := c.cartStore.Save(ctx, token, cart); err != nil {
		c.logger.Warnf("Failed to persist cart, continuing in-memory: %v", err)
	}
}

// availableFor возвращает актуальный остаток для строки корзины.
// При недоступности каталога возвращает -1 — ограничение пропускается.
func (c *CartUseCase) availableFor(ctx context.Context, line *domain.LineItem) int {
	product, err := c.productRepo.GetByID(ctx, line.Product.ID)
	if err != nil {
		c.logger.Warnf("Inventory lookup failed for product %d, skipping clamp: %v", line.Product.ID, err)
		return -1
	}

	if line.Variant != nil {
		variant := product.Variant(line.Variant.ID)
		if variant == nil {
			c.logger.Warnf("Variant %d no longer exists for product %d, skipping clamp", line.Variant.ID, line.Product.ID)
			return -1
		}
		return variant.Inventory
	}

	return product.Inventory
}
