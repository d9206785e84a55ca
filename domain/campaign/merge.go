package campaign

import (
	"strings"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// CampaignSlots are the five mutable campaign tags carried across extracts
var CampaignSlots = []string{"campana_1", "campana_2", "campana_3", "campana_4", "campana_5"}

// EnsureCampaignSlots returns a copy of the table that carries all five
// campaign columns, creating empty ones where absent.
func EnsureCampaignSlots(t *tabular.Table) *tabular.Table {
	out := t.Clone()
	for _, col := range CampaignSlots {
		out.AddHeader(col)
	}
	return out
}

// CarryForwardCampaigns left-joins the new extract against the previous one
// on keyColumn and preserves the old campaign tags: for each slot the old
// value wins whenever it is non-empty, otherwise the new table's own value
// stays. Keys are compared as trimmed text on both sides, so numeric-typed
// and text-typed operation columns join cleanly. Rows without a match keep
// their own slots unchanged. The result has the same row count and order as
// the new table.
func CarryForwardCampaigns(newTable, oldTable *tabular.Table, keyColumn string) (*tabular.Table, error) {
	if !newTable.HasHeader(keyColumn) {
		return nil, apperrors.MissingKeyColumn("nuevo", keyColumn)
	}
	if !oldTable.HasHeader(keyColumn) {
		return nil, apperrors.MissingKeyColumn("antiguo", keyColumn)
	}

	merged := EnsureCampaignSlots(newTable)
	old := EnsureCampaignSlots(oldTable)

	// First row per duplicate key wins on the old side
	lookup := make(map[string]tabular.Row, old.Len())
	for _, row := range old.Rows {
		key := strings.TrimSpace(row[keyColumn])
		if _, seen := lookup[key]; !seen {
			lookup[key] = row
		}
	}

	for _, row := range merged.Rows {
		oldRow, ok := lookup[strings.TrimSpace(row[keyColumn])]
		if !ok {
			continue
		}
		for _, slot := range CampaignSlots {
			if v := oldRow[slot]; v != "" {
				row[slot] = v
			}
		}
	}
	return merged, nil
}
