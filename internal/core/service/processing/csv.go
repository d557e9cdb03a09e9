package processing

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

type csvStats struct {
	Rows    int
	Columns int
}

// readCSV streams the stored file and counts its data rows. Ragged rows and
// stray quotes are accepted, only unreadable content fails.
func (p *processingService) readCSV(ctx context.Context, fileRef string) (csvStats, error) {
	obj, err := p.fileStorage.GetObject(ctx, fileRef)
	if err != nil {
		return csvStats{}, err
	}
	defer obj.Close()

	reader := csv.NewReader(obj)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	var stats csvStats
	header := true
	for {
		if err := ctx.Err(); err != nil {
			return csvStats{}, err
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return csvStats{}, fmt.Errorf("read csv: %w", err)
		}

		if header {
			stats.Columns = len(record)
			header = false
			continue
		}
		stats.Rows++
	}

	return stats, nil
}
