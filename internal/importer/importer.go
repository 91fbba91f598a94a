package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/avelorn/chronline/internal/contract"
)

// maxFileSize caps import reads; anything bigger than this is almost
// certainly not an entry file.
const maxFileSize = 10 << 20

// Load reads a bulk entry file. Both the submit body shape
// {"entries": [...]} and a bare entry array are accepted, and unknown keys
// are ignored, so a previously exported report file imports as-is. Field
// validation is left to the service so file and HTTP input share one path.
func Load(path string) ([]contract.EntryInput, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("import file %s is a directory", path)
	}
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("import file %s is %d bytes (limit %d)", path, info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var req contract.SubmitRequest
	if err := json.Unmarshal(data, &req); err == nil && req.Entries != nil {
		return req.Entries, nil
	}

	var entries []contract.EntryInput
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return entries, nil
}
