package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderIDFromSequence(t *testing.T) {
	t.Run("formats the sequence with the CBC prefix", func(t *testing.T) {
		testCases := []struct {
			seq      int64
			expected string
		}{
			{1, "CBC00001"},
			{2, "CBC00002"},
			{551, "CBC00551"},
			{99999, "CBC99999"},
		}

		for _, tc := range testCases {
			id, err := kernel.OrderIDFromSequence(tc.seq)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, id.String())
			assert.Equal(t, tc.seq, id.Sequence())
		}
	})

	t.Run("rejects non-positive sequences", func(t *testing.T) {
		for _, seq := range []int64{0, -1} {
			_, err := kernel.OrderIDFromSequence(seq)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("rejects sequences past the five-digit range", func(t *testing.T) {
		_, err := kernel.OrderIDFromSequence(100000)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestParseOrderID(t *testing.T) {
	t.Run("accepts canonical identifiers", func(t *testing.T) {
		id, err := kernel.ParseOrderID("CBC00042")

		require.NoError(t, err)
		assert.Equal(t, "CBC00042", id.String())
		assert.Equal(t, int64(42), id.Sequence())
	})

	t.Run("lookup is case-insensitive", func(t *testing.T) {
		id, err := kernel.ParseOrderID("cbc00042")

		require.NoError(t, err)
		assert.Equal(t, "CBC00042", id.String())
	})

	t.Run("rejects malformed identifiers", func(t *testing.T) {
		for _, raw := range []string{"", "00042", "CBC42", "CBC0004X", "XYZ00042", "CBC000001"} {
			t.Run(raw, func(t *testing.T) {
				_, err := kernel.ParseOrderID(raw)
				require.Error(t, err)
			})
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.OrderID

		require.Error(t, id.Validate())
		assert.Equal(t, int64(0), id.Sequence())
	})

	t.Run("constructed value is valid", func(t *testing.T) {
		id, err := kernel.OrderIDFromSequence(7)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, _ := kernel.OrderIDFromSequence(1)
	b, _ := kernel.ParseOrderID("CBC00001")
	c, _ := kernel.OrderIDFromSequence(2)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
