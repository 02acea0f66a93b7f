package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkvibe/sparkvibe-cli/internal/domain"
)

func TestAllReturnsACopy(t *testing.T) {
	t.Parallel()

	first := All()
	require.NotEmpty(t, first)

	first[0].Name = "Mutated"
	assert.NotEqual(t, "Mutated", All()[0].Name)
}

func TestByID(t *testing.T) {
	t.Parallel()

	product, err := ByID("creator-toolkit-pro")
	require.NoError(t, err)
	assert.Equal(t, "Creator Toolkit Pro", product.Name)
	assert.True(t, product.InStock)

	_, err = ByID("no-such-product")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCatalogHasUniqueIDs(t *testing.T) {
	t.Parallel()

	seen := map[domain.ProductID]bool{}
	for _, product := range All() {
		assert.False(t, seen[product.ID], "duplicate product id %q", product.ID)
		seen[product.ID] = true
	}
}
