package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Line is a single product entry on an order: a catalog snapshot of the
// product at the moment of purchase plus the ordered quantity. Lines are
// immutable value objects; the snapshot keeps the order's totals stable
// even if the catalog changes later.
type Line struct {
	productID     string
	name          string
	price         float64
	labelledPrice float64
	quantity      int
	image         string

	isConstructed bool
}

// NewLine creates an order line after validating the snapshot.
//
// Parameters:
//   - productID: catalog identifier of the product (required)
//   - name: product name at the moment of purchase (required)
//   - price: unit selling price, must not be negative
//   - labelledPrice: unit sticker price before discounts, must not be negative
//   - quantity: ordered units, must be positive
//   - image: product image URL, may be empty
func NewLine(productID, name string, price, labelledPrice float64, quantity int, image string) (Line, error) {
	if productID == "" {
		return Line{}, errs.NewValueIsRequiredError("productId")
	}
	if name == "" {
		return Line{}, errs.NewValueIsRequiredError("name")
	}
	if price < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("price is invalid",
			fmt.Errorf("%v is negative", price))
	}
	if labelledPrice < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("labelledPrice is invalid",
			fmt.Errorf("%v is negative", labelledPrice))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	return Line{
		productID:     productID,
		name:          name,
		price:         price,
		labelledPrice: labelledPrice,
		quantity:      quantity,
		image:         image,
		isConstructed: true,
	}, nil
}

// Validate ensures the line came from NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return errs.NewValueIsInvalidError("line must be created via NewLine")
	}
	return nil
}

// ProductID returns the catalog identifier of the product.
func (l Line) ProductID() string {
	return l.productID
}

// Name returns the product name snapshot.
func (l Line) Name() string {
	return l.name
}

// Price returns the unit selling price snapshot.
func (l Line) Price() float64 {
	return l.price
}

// LabelledPrice returns the unit sticker price snapshot.
func (l Line) LabelledPrice() float64 {
	return l.labelledPrice
}

// Quantity returns the ordered units.
func (l Line) Quantity() int {
	return l.quantity
}

// Image returns the product image URL snapshot.
func (l Line) Image() string {
	return l.image
}

// Subtotal returns price multiplied by quantity.
func (l Line) Subtotal() float64 {
	return l.price * float64(l.quantity)
}

// LabelledSubtotal returns the labelled price multiplied by quantity.
func (l Line) LabelledSubtotal() float64 {
	return l.labelledPrice * float64(l.quantity)
}
