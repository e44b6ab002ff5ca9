package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Внутренние ошибки окружения
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrPriceMustBePositive  = fmt.Errorf("price must be positive")
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrInvalidEmail         = fmt.Errorf("invalid email address")
	ErrVariantRequired      = fmt.Errorf("product variant must be selected")
	ErrEmptyCart            = fmt.Errorf("cart is empty")
	ErrNoImages             = fmt.Errorf("no images provided")
	ErrTooManyImages        = fmt.Errorf("too many images")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrInvalidOrderStatus   = fmt.Errorf("invalid order status")

	// 402 Payment Required
	ErrPaymentNotVerified    = fmt.Errorf("payment is not verified")
	ErrPaymentAmountMismatch = fmt.Errorf("payment amount does not cover order total")

	// 404 Not Found
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrVariantNotFound  = fmt.Errorf("product variant not found")
	ErrCategoryNotFound = fmt.Errorf("category not found")
	ErrOrderNotFound    = fmt.Errorf("order not found")
	ErrLocationNotFound = fmt.Errorf("store location not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
