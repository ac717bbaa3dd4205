package http

// Request bodies for the write endpoints. Field tags drive binding and the
// structural checks run by RequestValidator; domain rules (known locations,
// legal status transitions) stay in the core and surface via respondError.

// OrderItemRequest is one purchased line inside a checkout.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// CreateOrderRequest is the checkout payload.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" validate:"required,email"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress" validate:"required"`
	Items           []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required"`
	Receipt         string             `json:"receipt"`
}

// CreatedOrderResponse returns the business identifier of a new order.
type CreatedOrderResponse struct {
	OrderID string `json:"orderId"`
}

// AdjustStockRequest changes one ledger record by a signed delta.
type AdjustStockRequest struct {
	Location  string `json:"location" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Delta     int    `json:"delta"`
}

// TransferStockRequest moves quantity between two centers.
type TransferStockRequest struct {
	From      string `json:"from" validate:"required"`
	To        string `json:"to" validate:"required"`
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

// PaymentDecisionRequest records the outcome of a payment review.
type PaymentDecisionRequest struct {
	Decision string `json:"decision" validate:"required"`
}

// AdvanceStatusRequest moves an order to the named status.
type AdvanceStatusRequest struct {
	Target string `json:"target" validate:"required"`
}

// AssignDriverRequest puts a driver on an order.
type AssignDriverRequest struct {
	DriverID string `json:"driverId" validate:"required,uuid"`
}

// AddDriverRequest registers a new driver.
type AddDriverRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	VehicleNo string `json:"vehicleNo" validate:"required"`
	LicenseNo string `json:"licenseNo" validate:"required"`
}

// DriverDutyRequest toggles a driver between Available and OffDuty.
type DriverDutyRequest struct {
	Status string `json:"status" validate:"required"`
}
