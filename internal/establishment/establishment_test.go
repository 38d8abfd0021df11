package establishment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidModules(t *testing.T) {
	require.NoError(t, ValidModules(nil))
	require.NoError(t, ValidModules([]string{"cashier", "waiter", "kitchen"}))
	require.NoError(t, ValidModules([]string{"stock", "hr", "financial", "equipment"}))

	err := ValidModules([]string{"cashier", "delivery"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery")
}
