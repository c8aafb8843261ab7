// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package billing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckoutParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		params   CheckoutParams
		wantErr  error
		wantQty  int64
		wantMode string
	}{
		{"defaults", CheckoutParams{PriceID: "price_1"}, nil, 1, "subscription"},
		{"payment", CheckoutParams{PriceID: "price_1", Quantity: 3, Mode: "payment"}, nil, 3, "payment"},
		{"trims price", CheckoutParams{PriceID: "  price_1 "}, nil, 1, "subscription"},
		{"missing price", CheckoutParams{}, ErrInvalidPrice, 0, ""},
		{"blank price", CheckoutParams{PriceID: "   "}, ErrInvalidPrice, 0, ""},
		{"negative quantity", CheckoutParams{PriceID: "p", Quantity: -1}, ErrInvalidQuantity, 0, ""},
		{"too many", CheckoutParams{PriceID: "p", Quantity: MaxQuantity + 1}, ErrInvalidQuantity, 0, ""},
		{"bad mode", CheckoutParams{PriceID: "p", Mode: "setup"}, ErrInvalidMode, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.params
			err := p.Normalize()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "price_1", p.PriceID)
			assert.Equal(t, tt.wantQty, p.Quantity)
			assert.Equal(t, tt.wantMode, p.Mode)
		})
	}
}

func TestErrorWrapsCause(t *testing.T) {
	cause := errors.New("card_declined")
	err := error(&Error{Op: "checkout", Err: cause})

	assert.Equal(t, "billing.checkout: card_declined", err.Error())
	assert.ErrorIs(t, err, cause)

	var be *Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "checkout", be.Op)
}
