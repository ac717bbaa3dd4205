package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStockQuery_Valid(t *testing.T) {
	query, err := queries.NewGetStockQuery(kernel.RDCNorth)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.RDCNorth, query.Location())
}

func TestNewGetStockQuery_UnknownLocation(t *testing.T) {
	_, err := queries.NewGetStockQuery(kernel.RDC("ATLANTIS"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetStockQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetStockQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStockQueryIsNotConstructed)
}
