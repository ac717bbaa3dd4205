package services_test

import (
	"fmt"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionPolicy_Authorize(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("staff may request any transition", func(t *testing.T) {
		staffRoles := []kernel.Role{kernel.RoleAdmin, kernel.RoleRDCStaff, kernel.RoleLogistics}
		transitions := []struct {
			current   order.Status
			requested order.Status
		}{
			{order.Pending, order.Processing},
			{order.Processing, order.Canceled},
			{order.InTransit, order.Delivered},
			{order.Delivered, order.Returned},
		}

		for _, role := range staffRoles {
			for _, tc := range transitions {
				t.Run(fmt.Sprintf("%s: %s to %s", role, tc.current, tc.requested), func(t *testing.T) {
					require.NoError(t, policy.Authorize(role, tc.current, tc.requested))
				})
			}
		}
	})

	t.Run("customer may cancel a pending order", func(t *testing.T) {
		require.NoError(t, policy.Authorize(kernel.RoleCustomer, order.Pending, order.Canceled))
	})

	t.Run("customer may not request forward transitions", func(t *testing.T) {
		err := policy.Authorize(kernel.RoleCustomer, order.Pending, order.Processing)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrAccessDenied)

		var denied *services.AccessDeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, kernel.RoleCustomer, denied.Role)
	})

	t.Run("customer may not cancel after fulfillment starts", func(t *testing.T) {
		for _, current := range []order.Status{order.Processing, order.Dispatched, order.InTransit, order.Delivered} {
			t.Run(fmt.Sprintf("from %s", current), func(t *testing.T) {
				err := policy.Authorize(kernel.RoleCustomer, current, order.Canceled)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrConflict)
			})
		}
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		err := policy.Authorize(kernel.Role("superuser"), order.Pending, order.Canceled)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
