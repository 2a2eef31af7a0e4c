package tracker

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cast"
)

// LoadPlaces reads the tracked place-ID list. The file is a JSON array;
// entries may be numbers or numeric strings.
func LoadPlaces(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read places file: %w", err)
	}

	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse places file %s: %w", path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("places file %s contains no place IDs", path)
	}

	ids := make([]int64, 0, len(raw))
	for i, entry := range raw {
		id, err := cast.ToInt64E(entry)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("places file %s: entry %d is not a valid place ID: %v", path, i, entry)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
