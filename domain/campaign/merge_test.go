package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

func campaignTable(key string, rows ...tabular.Row) *tabular.Table {
	t := tabular.New(append([]string{key}, CampaignSlots...)...)
	for _, r := range rows {
		for _, slot := range CampaignSlots {
			if _, ok := r[slot]; !ok {
				r[slot] = ""
			}
		}
		t.Append(r)
	}
	return t
}

func TestCarryForwardOldValueWins(t *testing.T) {
	newT := campaignTable("op", tabular.Row{"op": "123", "campana_2": "NUEVA"})
	oldT := campaignTable("op", tabular.Row{"op": "123", "campana_1": "X"})

	merged, err := CarryForwardCampaigns(newT, oldT, "op")
	require.NoError(t, err)
	require.Equal(t, 1, merged.Len())

	assert.Equal(t, "X", merged.Cell(0, "campana_1"))
	// the new table keeps its own value where the old side is empty
	assert.Equal(t, "NUEVA", merged.Cell(0, "campana_2"))
}

func TestCarryForwardNoMatchKeepsNewSlots(t *testing.T) {
	newT := campaignTable("op", tabular.Row{"op": "999"})
	oldT := campaignTable("op", tabular.Row{"op": "123", "campana_1": "X"})

	merged, err := CarryForwardCampaigns(newT, oldT, "op")
	require.NoError(t, err)
	assert.Equal(t, "", merged.Cell(0, "campana_1"))
}

func TestCarryForwardFirstDuplicateKeyWins(t *testing.T) {
	newT := campaignTable("op", tabular.Row{"op": "123"})
	oldT := campaignTable("op",
		tabular.Row{"op": "123", "campana_1": "PRIMERA"},
		tabular.Row{"op": "123", "campana_1": "SEGUNDA"},
	)

	merged, err := CarryForwardCampaigns(newT, oldT, "op")
	require.NoError(t, err)
	assert.Equal(t, "PRIMERA", merged.Cell(0, "campana_1"))
}

func TestCarryForwardTrimsKeys(t *testing.T) {
	// numeric-typed vs text-typed operation columns join on trimmed text
	newT := campaignTable("op", tabular.Row{"op": " 123 "})
	oldT := campaignTable("op", tabular.Row{"op": "123", "campana_3": "Y"})

	merged, err := CarryForwardCampaigns(newT, oldT, "op")
	require.NoError(t, err)
	assert.Equal(t, "Y", merged.Cell(0, "campana_3"))
}

func TestCarryForwardPreservesRowCountAndOrder(t *testing.T) {
	newT := campaignTable("op",
		tabular.Row{"op": "1"},
		tabular.Row{"op": "2"},
		tabular.Row{"op": "3"},
	)
	oldT := campaignTable("op", tabular.Row{"op": "2", "campana_1": "Z"})

	merged, err := CarryForwardCampaigns(newT, oldT, "op")
	require.NoError(t, err)
	require.Equal(t, 3, merged.Len())
	assert.Equal(t, "1", merged.Cell(0, "op"))
	assert.Equal(t, "2", merged.Cell(1, "op"))
	assert.Equal(t, "3", merged.Cell(2, "op"))
	assert.Equal(t, "Z", merged.Cell(1, "campana_1"))
}

func TestCarryForwardMissingKeyColumn(t *testing.T) {
	newT := tabular.New("otra")
	oldT := campaignTable("op")

	_, err := CarryForwardCampaigns(newT, oldT, "op")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeMissingKeyColumn, apperrors.GetCode(err))

	_, err = CarryForwardCampaigns(campaignTable("op"), tabular.New("otra"), "op")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeMissingKeyColumn, apperrors.GetCode(err))
}

func TestEnsureCampaignSlots(t *testing.T) {
	table := tabular.New("op", "campana_1")
	table.Append(tabular.Row{"op": "1", "campana_1": "A"})

	out := EnsureCampaignSlots(table)
	for _, slot := range CampaignSlots {
		assert.True(t, out.HasHeader(slot), slot)
	}
	assert.Equal(t, "A", out.Cell(0, "campana_1"))
	assert.Equal(t, "", out.Cell(0, "campana_5"))
	// the input table is left untouched
	assert.False(t, table.HasHeader("campana_5"))
}
