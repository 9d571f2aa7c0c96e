package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/portside/seafuzz/model/order"
)

func TestOperationIsFulfillAvailable(t *testing.T) {
	available := map[order.Operation]bool{
		order.FulfillAvailableOrders:         true,
		order.FulfillAvailableAdvancedOrders: true,
	}
	for _, op := range order.Operations {
		assert.Equalf(t, available[op], op.IsFulfillAvailable(), "operation %s", op)
	}
}

func TestOperationValidatesFraction(t *testing.T) {
	advanced := map[order.Operation]bool{
		order.FulfillAdvancedOrder:           true,
		order.FulfillAvailableAdvancedOrders: true,
		order.MatchAdvancedOrders:            true,
	}
	for _, op := range order.Operations {
		assert.Equalf(t, advanced[op], op.ValidatesFraction(), "operation %s", op)
	}
}

func TestOperationStrings(t *testing.T) {
	seen := make(map[string]struct{})
	for _, op := range order.Operations {
		name := op.String()
		assert.NotEqual(t, "unknownOperation", name)
		_, dup := seen[name]
		assert.Falsef(t, dup, "duplicate operation name %s", name)
		seen[name] = struct{}{}
	}
}
