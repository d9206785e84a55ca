package excel

import (
	"archive/zip"
	"bytes"
	"fmt"

	"golang.org/x/sync/errgroup"

	"cargas/domain/campaign"
)

// Archive packages multiple named workbooks into a single zip. Workbook
// encoding is independent per table, so the encodes fan out on an errgroup
// and the archive is assembled once all of them finish. Either the complete
// archive is returned or an error; no partial zip.
func Archive(outputs []campaign.Output) ([]byte, error) {
	encoded := make([][]byte, len(outputs))

	var g errgroup.Group
	for i, out := range outputs {
		g.Go(func() error {
			data, err := WriteTable(out.Table, out.Sheet)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", out.Name, err)
			}
			encoded[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, out := range outputs {
		w, err := zw.Create(out.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to zip: %w", out.Name, err)
		}
		if _, err := w.Write(encoded[i]); err != nil {
			return nil, fmt.Errorf("failed to write %s to zip: %w", out.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}
