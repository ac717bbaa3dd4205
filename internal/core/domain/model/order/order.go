package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// DefaultOriginRDC is the dispatch origin recorded on orders that have not
// been routed to a specific regional distribution center.
const DefaultOriginRDC = "Central RDC (Hub)"

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrEmptyOrder rejects an order with no lines.
	ErrEmptyOrder = errs.NewValueIsInvalidError("order must contain at least one line")

	// ErrMissingReceipt rejects a bank transfer order without an uploaded
	// payment receipt.
	ErrMissingReceipt = errs.NewValueIsRequiredError("bank transfer orders require a payment receipt")

	// ErrDriverNotAssigned rejects a dispatch of an order that has no driver.
	ErrDriverNotAssigned = errors.New("order cannot be dispatched without an assigned driver")
)

// Order is the aggregate root for a wholesale customer order. It manages
// the order lifecycle from checkout through payment review, fulfillment
// and delivery, and owns the append-only tracking history.
//
// Order follows these invariants:
//   - Must have a valid internal UUID and a valid business order ID
//   - Must contain at least one line
//   - Status transitions follow the Status state machine
//   - Tracking history only grows; entries are never edited or removed
//   - A driver snapshot is present exactly from dispatch onwards
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id      kernel.UUID
	orderID kernel.OrderID

	customer      Customer
	lines         []Line
	total         float64
	labelledTotal float64

	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	receipt       string

	status    Status
	originRDC string
	driver    *DriverInfo
	tracking  []TrackingEvent

	placedAt          time.Time
	deliveredAt       *time.Time
	estimatedDelivery *time.Time

	isConstructed bool
}

// NewOrder creates a new Order at checkout. This is the only way to create
// a valid new order, ensuring all business invariants are maintained.
//
// The payment method decides the starting point:
//   - BankTransfer: requires a receipt; the order starts in PaymentReview
//     with payment Pending and a "Waiting for Payment Verification" event.
//   - Card: the order starts Pending with payment Paid.
//   - CashOnDelivery: the order starts Pending with payment Pending.
//
// Parameters:
//   - id: internal unique identifier (must be a valid UUID)
//   - orderID: business identifier shown to customers (e.g. CBC00042)
//   - customer: contact and shipping snapshot
//   - lines: ordered products, at least one
//   - method: how the customer pays
//   - receipt: payment receipt reference, required for bank transfers
//   - now: checkout time, recorded as placedAt and on the first event
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(
	id kernel.UUID,
	orderID kernel.OrderID,
	customer Customer,
	lines []Line,
	method PaymentMethod,
	receipt string,
	now time.Time,
) (*Order, error) {
	order := &Order{
		originRDC:     DefaultOriginRDC,
		placedAt:      now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderID(orderID),
		order.setCustomer(customer),
		order.setLines(lines),
		order.setPaymentMethod(method),
	); err != nil {
		return nil, err
	}

	if method.RequiresReceipt() && receipt == "" {
		return nil, ErrMissingReceipt
	}
	order.receipt = receipt

	if method.RequiresReceipt() {
		order.status = PaymentReview
		order.paymentStatus = PaymentPending
		order.appendEvent(EventAwaitingPayment, now)
	} else {
		order.status = Pending
		if method == Card {
			order.paymentStatus = PaymentPaid
		} else {
			order.paymentStatus = PaymentPending
		}
		order.appendEvent(EventOrderPlaced, now)
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// lifecycle. The stored totals and tracking history are taken as-is.
func RestoreOrder(
	id kernel.UUID,
	orderID kernel.OrderID,
	customer Customer,
	lines []Line,
	total float64,
	labelledTotal float64,
	method PaymentMethod,
	paymentStatus PaymentStatus,
	receipt string,
	status Status,
	originRDC string,
	driver *DriverInfo,
	tracking []TrackingEvent,
	placedAt time.Time,
	deliveredAt *time.Time,
	estimatedDelivery *time.Time,
) (*Order, error) {
	order := &Order{
		originRDC:         originRDC,
		placedAt:          placedAt,
		deliveredAt:       deliveredAt,
		estimatedDelivery: estimatedDelivery,
		isConstructed:     true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderID(orderID),
		order.setCustomer(customer),
		order.setLines(lines),
		order.setPaymentMethod(method),
		paymentStatus.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if driver != nil {
		if err := driver.Validate(); err != nil {
			return nil, err
		}
		info := *driver
		order.driver = &info
	}

	order.total = total
	order.labelledTotal = labelledTotal
	order.paymentStatus = paymentStatus
	order.receipt = receipt
	order.status = status
	order.tracking = append(order.tracking, tracking...)
	if order.originRDC == "" {
		order.originRDC = DefaultOriginRDC
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed otherwise
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their internal identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's internal unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderID returns the business identifier shown to customers.
func (o *Order) OrderID() kernel.OrderID {
	return o.orderID
}

// Customer returns the contact and shipping snapshot.
func (o *Order) Customer() Customer {
	return o.customer
}

// Lines returns a copy of the ordered products.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the order total at selling prices.
func (o *Order) Total() float64 {
	return o.total
}

// LabelledTotal returns the order total at sticker prices, before discounts.
func (o *Order) LabelledTotal() float64 {
	return o.labelledTotal
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// PaymentStatus returns the verification state of the payment.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// Receipt returns the payment receipt reference, empty when none was uploaded.
func (o *Order) Receipt() string {
	return o.receipt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// OriginRDC returns the dispatch origin recorded on the order.
func (o *Order) OriginRDC() string {
	return o.originRDC
}

// Driver returns the driver snapshot for the order. Before a driver is
// assigned it returns the "Pending Assignment" placeholder.
func (o *Order) Driver() DriverInfo {
	if o.driver == nil {
		return UnassignedDriverInfo()
	}
	return *o.driver
}

// HasDriver reports whether a driver has been assigned.
func (o *Order) HasDriver() bool {
	return o.driver != nil
}

// Tracking returns a copy of the append-only tracking history, oldest first.
func (o *Order) Tracking() []TrackingEvent {
	events := make([]TrackingEvent, len(o.tracking))
	copy(events, o.tracking)
	return events
}

// PlacedAt returns the checkout time.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveredAt returns the delivery time, nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// EstimatedDelivery returns the promised delivery date, nil when the order
// runs on the standard delivery window.
func (o *Order) EstimatedDelivery() *time.Time {
	return o.estimatedDelivery
}

// VerifyPayment marks a bank transfer payment as verified and releases the
// order into fulfillment.
//
// Business rules:
//   - The order must be in PaymentReview
//   - Payment becomes Paid, status becomes Pending
//   - "Payment Verified" and "Order Placed" events are appended
//
// Returns an error if the order is not under payment review.
func (o *Order) VerifyPayment(now time.Time) error {
	newStatus, err := o.status.VerifyPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentPaid
	o.appendEvent(EventPaymentVerified, now)
	o.appendEvent(EventOrderPlaced, now)
	return nil
}

// RejectPayment marks a bank transfer payment as rejected and cancels the
// order.
//
// Business rules:
//   - The order must be in PaymentReview
//   - Payment becomes Rejected, status becomes Canceled
//   - A "Payment Rejected" event is appended
//
// Returns an error if the order is not under payment review.
func (o *Order) RejectPayment(now time.Time) error {
	newStatus, err := o.status.RejectPayment()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentStatus = PaymentRejected
	o.appendEvent(EventPaymentRejected, now)
	return nil
}

// AdvanceTo moves the order forward along the fulfillment chain and records
// the change in the tracking history.
//
// Business rules:
//   - The transition must be valid per Status.Advance
//   - Dispatched requires an assigned driver; use AssignDriver for the
//     combined assignment and dispatch
//   - Reaching Delivered records the delivery time
//
// Returns an error if the transition is not allowed.
func (o *Order) AdvanceTo(target Status, now time.Time) error {
	if target == Dispatched && o.driver == nil {
		return ErrDriverNotAssigned
	}

	newStatus, err := o.status.Advance(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	o.appendEvent(newStatus.Display(), now)
	return nil
}

// AssignDriver attaches a driver snapshot to the order and dispatches it.
//
// Business rules:
//   - The driver snapshot must be valid
//   - The order must be able to advance to Dispatched
//
// Returns an error if the snapshot is invalid or dispatch is not allowed.
func (o *Order) AssignDriver(info DriverInfo, now time.Time) error {
	if err := info.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Advance(Dispatched)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driver = &info
	o.appendEvent(newStatus.Display(), now)
	return nil
}

// MarkDelivered moves the order to Delivered and records the delivery time.
// Only dispatched and in-transit orders can be delivered: an order that
// never left the distribution center has nothing to hand over.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.status != Dispatched && o.status != InTransit {
		return NewIllegalTransitionError(o.status, Delivered)
	}
	return o.AdvanceTo(Delivered, now)
}

// Cancel cancels the order.
//
// Business rules:
//   - Allowed from PaymentReview, Pending and Processing only
//   - A "Canceled" event is appended
//
// Returns an error if cancellation is not allowed from the current status.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendEvent(newStatus.Display(), now)
	return nil
}

// MarkReturned records that a delivered order was sent back.
func (o *Order) MarkReturned(now time.Time) error {
	newStatus, err := o.status.Return()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.appendEvent(newStatus.Display(), now)
	return nil
}

func (o *Order) appendEvent(status string, now time.Time) {
	event, _ := NewTrackingEvent(status, now)
	o.tracking = append(o.tracking, event)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	o.orderID = orderID
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrEmptyOrder
	}

	total := 0.0
	labelledTotal := 0.0
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		total += line.Subtotal()
		labelledTotal += line.LabelledSubtotal()
	}

	o.lines = append([]Line(nil), lines...)
	o.total = total
	o.labelledTotal = labelledTotal
	return nil
}

func (o *Order) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	o.paymentMethod = method
	return nil
}
