package campaign

import (
	"fmt"
	"time"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// Collection flow constants. The feeding report names its columns with
// trailing spaces; those spellings are the contract.
const (
	CollectionKeyColumn     = "Agreement Number "
	CollectionBalanceColumn = "POS/Curr. Acc. Bal.* "
	CollectionEMIColumn     = "EMI"
)

// Output is one named workbook produced by a multi-file flow
type Output struct {
	Name  string
	Sheet string
	Table *tabular.Table
}

// ProcessCollection runs the GM collections flow: campaign slots are
// guaranteed on the new extract, prior campaign tags are carried forward
// when a comparison file is supplied, the balance and installment columns
// are re-rendered as grouped integers, and optionally the mass-mailing load
// is derived as a second output. Either every output is produced or none is.
func ProcessCollection(newTable, oldTable *tabular.Table, compare, masividades bool, now time.Time) ([]Output, error) {
	work := EnsureCampaignSlots(newTable)

	if compare {
		if oldTable == nil {
			return nil, apperrors.InvalidInput("Activaste comparación pero no se recibió archivo anterior.")
		}
		merged, err := CarryForwardCampaigns(work, oldTable, CollectionKeyColumn)
		if err != nil {
			return nil, err
		}
		work = merged
	}

	var missing []string
	for _, col := range []string{CollectionBalanceColumn, CollectionEMIColumn} {
		if !work.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns("Faltan columnas en el archivo Collection", missing)
	}

	for _, col := range []string{CollectionBalanceColumn, CollectionEMIColumn} {
		for _, row := range work.Rows {
			grouped, err := GroupThousands(col, row[col])
			if err != nil {
				return nil, err
			}
			row[col] = RepairDecimalComma(grouped)
		}
	}

	fecha := now.Format("02-01")
	outputs := []Output{{
		Name:  fmt.Sprintf("ARCHIVO_COLLECTION_%s.xlsx", fecha),
		Sheet: "Hoja1",
		Table: work,
	}}

	if masividades {
		masividad, err := BuildMasividad(work, now)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, Output{
			Name:  fmt.Sprintf("MASIVIDADES_GM_%s.xlsx", fecha),
			Sheet: "Hoja1",
			Table: masividad,
		})
	}
	return outputs, nil
}
