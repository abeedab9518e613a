package testsupport

import (
	"encoding/json"
	"os"
)

// LoadState reads an editor state fixture and verifies it is valid JSON before
// handing it to the caller, so malformed fixtures fail loudly at load time.
func LoadState(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	return data, nil
}
