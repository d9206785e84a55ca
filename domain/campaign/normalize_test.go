package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

func TestCellText(t *testing.T) {
	assert.Equal(t, "987654321", CellText("987654321.0"))
	assert.Equal(t, "987654321", CellText("  987654321  "))
	assert.Equal(t, "12.5", CellText("12.5"))
	assert.Equal(t, "", CellText("  "))
}

func TestTextColumn(t *testing.T) {
	table := tabular.New("Fono")
	table.Append(tabular.Row{"Fono": "912345678.0"})
	table.Append(tabular.Row{"Fono": " 98765 "})

	assert.Equal(t, []string{"912345678", "98765"}, TextColumn(table, "Fono"))
	// unresolved header yields a blank series of matching length
	assert.Equal(t, []string{"", ""}, TextColumn(table, ""))
}

func TestIDDigits(t *testing.T) {
	assert.Equal(t, "12345678", IDDigits("12.345.678-9"))
	assert.Equal(t, "12345678", IDDigits(" 12345678-K "))
	assert.Equal(t, "12345678", IDDigits("12345678"))
	assert.Equal(t, "", IDDigits("sin datos"))
	assert.Equal(t, "", IDDigits(""))
}

func TestRepairDecimalComma(t *testing.T) {
	assert.Equal(t, "1.234", RepairDecimalComma("1,234"))
	assert.Equal(t, "1234", RepairDecimalComma("1234"))
	// single substitution only: further commas are left alone
	assert.Equal(t, "1.234,567", RepairDecimalComma("1,234,567"))
}

func TestGroupThousands(t *testing.T) {
	got, err := GroupThousands("EMI", "1234567")
	require.NoError(t, err)
	assert.Equal(t, "1,234,567", got)

	got, err = GroupThousands("EMI", "1500.75")
	require.NoError(t, err)
	assert.Equal(t, "1,501", got)

	// already-grouped input re-parses after comma stripping
	got, err = GroupThousands("EMI", "12,345")
	require.NoError(t, err)
	assert.Equal(t, "12,345", got)

	got, err = GroupThousands("EMI", "999")
	require.NoError(t, err)
	assert.Equal(t, "999", got)

	_, err = GroupThousands("EMI", "sin datos")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeFormatError, apperrors.GetCode(err))
}
