package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/avelorn/chronline/internal/contract"
)

// ToCSV writes one row per stored entry. The report itself is JSON-only.
func ToCSV(entries []contract.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"id", "date", "app", "minutes", "category", "pickups"}); err != nil {
		return err
	}

	for _, e := range entries {
		row := []string{
			e.ID,
			e.Date,
			e.App,
			strconv.FormatFloat(e.TimeMinutes, 'f', -1, 64),
			e.Category,
			strconv.Itoa(e.Pickups),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
