package domain

import "strconv"

const (
	// VATRateBPS — единая ставка НДС в базисных пунктах (7.5%).
	// Применяется и в корзине, и при оформлении заказа.
	VATRateBPS = 750

	// FreeShippingThreshold — порог бесплатной доставки в кобо для
	// отображаемой оценки в корзине. Итоговая сумма заказа считается
	// по тарифу зоны доставки, а не по этому правилу.
	FreeShippingThreshold int64 = 5_000_000

	// FlatShippingCost — плоская отображаемая стоимость доставки в кобо.
	FlatShippingCost int64 = 350_000
)

// ProductSnapshot — денормализованный срез товара, который хранится в строке корзины.
// Корзина не держит живую ссылку на каталог: цена фиксируется на момент добавления.
type ProductSnapshot struct {
	ID    int64
	Name  string
	Slug  string
	Price int64 // в кобо
	Image *string
}

// VariantSnapshot — срез выбранного варианта товара.
type VariantSnapshot struct {
	ID              int64
	Size            *string
	Color           *string
	PriceAdjustment int64 // в кобо
}

// LineItem — строка корзины: уникальная пара (товар, вариант) и её количество.
type LineItem struct {
	ID       string
	Product  ProductSnapshot
	Variant  *VariantSnapshot
	Quantity int
}

// UnitPrice возвращает цену единицы с учётом надбавки варианта.
func (li *LineItem) UnitPrice() int64 {
	if li.Variant != nil {
		return li.Product.Price + li.Variant.PriceAdjustment
	}
	return li.Product.Price
}

// Total возвращает стоимость строки.
func (li *LineItem) Total() int64 {
	return li.UnitPrice() * int64(li.Quantity)
}

// CartTotals — производные суммы корзины. Никогда не хранятся отдельно
// от списка строк: пересчитываются после каждой мутации.
type CartTotals struct {
	ItemCount     int
	TotalQuantity int
	Subtotal      int64
	Shipping      int64
	Tax           int64
	Total         int64
}

// Cart — упорядоченный список строк с производными суммами.
type Cart struct {
	Items  []LineItem
	Totals CartTotals
}

func NewCart() *Cart {
	c := &Cart{Items: []LineItem{}}
	c.Recompute()
	return c
}

// LineItemID возвращает идентификатор строки для пары (товар, вариант).
func LineItemID(productID int64, variantID *int64) string {
	id := strconv.FormatInt(productID, 10)
	if variantID != nil {
		id += ":" + strconv.FormatInt(*variantID, 10)
	}
	return id
}

// AddResult сообщает вызывающему, сколько единиц реально добавлено
// и сколько осталось на складе, чтобы UI мог предупредить покупателя.
type AddResult struct {
	LineID    string
	Requested int
	Added     int
	Remaining int // доступный остаток после добавления
	Limited   bool
}

// AddItem добавляет quantity единиц пары (товар, вариант) в корзину.
// Существующая строка увеличивает количество вместо создания дубликата.
// Количество ограничивается доступным остатком (остаток варианта, если
// вариант выбран, иначе остаток товара); нулевой остаток не является
// ошибкой — добавление просто урезается до нуля.
func (c *Cart) AddItem(p *Product, v *ProductVariant, quantity int) AddResult {
	if quantity < 0 {
		quantity = 0
	}

	available := p.Inventory
	var variantID *int64
	if v != nil {
		available = v.Inventory
		variantID = &v.ID
	}

	lineID := LineItemID(p.ID, variantID)
	res := AddResult{LineID: lineID, Requested: quantity}

	current := 0
	line := c.Line(lineID)
	if line != nil {
		current = line.Quantity
	}

	canAdd := available - current
	if canAdd < 0 {
		canAdd = 0
	}

	added := quantity
	if added > canAdd {
		added = canAdd
		res.Limited = true
	}
	res.Added = added
	res.Remaining = available - (current + added)

	if added > 0 {
		if line != nil {
			line.Quantity += added
		} else {
			c.Items = append(c.Items, LineItem{
				ID:       lineID,
				Product:  newProductSnapshot(p),
				Variant:  newVariantSnapshot(v),
				Quantity: added,
			})
		}
	}

	c.Recompute()
	return res
}

// SetQuantity напрямую задаёт количество строки. Количество <= 0 удаляет
// строку целиком. Значение ограничивается сверху available; available < 0
// отключает ограничение (остаток неизвестен). Для отсутствующей строки — no-op.
func (c *Cart) SetQuantity(lineID string, quantity int, available int) (removed bool, limited bool) {
	line := c.Line(lineID)
	if line == nil {
		return false, false
	}

	if quantity <= 0 {
		c.Remove(lineID)
		return true, false
	}

	if available >= 0 && quantity > available {
		quantity = available
		limited = true
		if quantity == 0 {
			c.Remove(lineID)
			return true, true
		}
	}

	line.Quantity = quantity
	c.Recompute()
	return false, limited
}

// Remove безусловно удаляет строку; no-op, если такой строки нет.
func (c *Cart) Remove(lineID string) {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			break
		}
	}
	c.Recompute()
}

// Clear сбрасывает корзину в пустое состояние.
func (c *Cart) Clear() {
	c.Items = []LineItem{}
	c.Recompute()
}

// Line возвращает строку по ID, nil если не найдена.
func (c *Cart) Line(lineID string) *LineItem {
	for i := range c.Items {
		if c.Items[i].ID == lineID {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Recompute пересчитывает производные суммы из списка строк.
// Суммы всегда выводятся заново, без накопления.
func (c *Cart) Recompute() {
	t := CartTotals{ItemCount: len(c.Items)}
	for i := range c.Items {
		t.TotalQuantity += c.Items[i].Quantity
		t.Subtotal += c.Items[i].Total()
	}

	t.Tax = t.Subtotal * VATRateBPS / 10_000
	if t.Subtotal > 0 && t.Subtotal < FreeShippingThreshold {
		t.Shipping = FlatShippingCost
	}
	t.Total = t.Subtotal + t.Shipping + t.Tax

	c.Totals = t
}

func newProductSnapshot(p *Product) ProductSnapshot {
	return ProductSnapshot{
		ID:    p.ID,
		Name:  p.Name,
		Slug:  p.Slug,
		Price: p.Price,
		Image: p.MainImage(),
	}
}

func newVariantSnapshot(v *ProductVariant) *VariantSnapshot {
	if v == nil {
		return nil
	}
	return &VariantSnapshot{
		ID:              v.ID,
		Size:            v.Size,
		Color:           v.Color,
		PriceAdjustment: v.PriceAdjustment,
	}
}
