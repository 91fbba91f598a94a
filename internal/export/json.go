package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/avelorn/chronline/internal/contract"
)

type jsonExport struct {
	ExportedAt string           `json:"exported_at"`
	EntryCount int              `json:"entry_count"`
	Report     contract.Report  `json:"report"`
	Entries    []contract.Entry `json:"entries"`
}

// ToJSON writes the report plus the entries behind it to path as indented
// JSON. Entry fields keep their submit names, so an exported file can be fed
// back through import unchanged.
func ToJSON(report contract.Report, entries []contract.Entry, path string) error {
	export := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		EntryCount: len(entries),
		Report:     report,
		Entries:    entries,
	}
	if export.Entries == nil {
		export.Entries = []contract.Entry{}
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
