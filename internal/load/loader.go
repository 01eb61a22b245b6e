package load

import (
	"fmt"

	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/domain"
)

// Target is a database sink for a generated dataset.
type Target interface {
	Connect() error
	Close() error
	CreateTableIfNotExists(table string, cols []string) error
	TruncateTable(table string) error
	InsertBatch(table string, cols []string, rows [][]string) error
}

// Load writes the dataset into a table on the target. Columns are declared as
// TEXT and values stringified, matching the sql export's semantics. Returns
// the number of rows inserted.
func Load(target Target, table string, ds *domain.Dataset, batchSize int, truncate bool) (int, error) {
	if !columns.IsValidIdentifier(table) {
		return 0, domain.BadRequestf("invalid table name: %s", table)
	}
	if batchSize <= 0 {
		batchSize = 1000
	}

	if err := target.Connect(); err != nil {
		return 0, fmt.Errorf("failed to connect to target: %w", err)
	}
	defer target.Close()

	if err := target.CreateTableIfNotExists(table, ds.Columns); err != nil {
		return 0, fmt.Errorf("failed to create table '%s': %w", table, err)
	}
	if truncate {
		if err := target.TruncateTable(table); err != nil {
			return 0, fmt.Errorf("failed to truncate table '%s': %w", table, err)
		}
	}

	inserted := 0
	batch := make([][]string, 0, batchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := target.InsertBatch(table, ds.Columns, batch); err != nil {
			return fmt.Errorf("failed to insert batch into '%s': %w", table, err)
		}
		inserted += len(batch)
		batch = batch[:0]
		return nil
	}

	for _, rec := range ds.Records {
		row := make([]string, len(ds.Columns))
		for i, col := range ds.Columns {
			row[i] = domain.Stringify(rec.Values[col])
		}
		batch = append(batch, row)

		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return inserted, err
			}
		}
	}
	if err := flush(); err != nil {
		return inserted, err
	}

	return inserted, nil
}
