package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetKPIStatsQueryIsNotConstructed = errors.New(
		"GetKPIStatsQuery must be created via NewGetKPIStatsQuery constructor",
	)
)

// GetKPIStatsQuery retrieves the admin dashboard aggregates: financial
// totals, per-center workload, top drivers by completed deliveries and the
// order status distribution. Only administrators may run it.
//
// Example:
//
//	query, err := queries.NewGetKPIStatsQuery(kernel.RoleAdmin)
//	if err != nil {
//	    return err
//	}
//
//	stats, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve KPI stats: %w", err)
//	}
//
//	fmt.Printf("%d orders, %.2f revenue\n", stats.TotalOrders, stats.TotalRevenue)
type GetKPIStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetKPIStatsQuery creates the dashboard query for the given actor.
// Returns an access denied error for any role other than admin.
func NewGetKPIStatsQuery(role kernel.Role) (GetKPIStatsQuery, error) {
	if err := role.Validate(); err != nil {
		return GetKPIStatsQuery{}, err
	}
	if role != kernel.RoleAdmin {
		return GetKPIStatsQuery{}, fmt.Errorf(
			"%w: KPI stats are restricted to administrators", errs.ErrAccessDenied)
	}

	return GetKPIStatsQuery{guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetKPIStatsQueryIsNotConstructed if validation fails.
func (q GetKPIStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetKPIStatsQueryIsNotConstructed)
}

// KPIBucket is one named aggregate value on the dashboard, e.g. the order
// count of a distribution center or the delivery count of a driver.
type KPIBucket struct {
	Name  string
	Value int
}

// GetKPIStatsQueryResponse is the dashboard read model.
// RDCPerformance counts orders in fulfillment per center, DriverPerformance
// lists the top drivers by completed deliveries, OrderStatus holds the count
// of orders in each lifecycle state.
type GetKPIStatsQueryResponse struct {
	TotalOrders       int
	TotalRevenue      float64
	RDCPerformance    []KPIBucket
	DriverPerformance []KPIBucket
	OrderStatus       []KPIBucket
}
