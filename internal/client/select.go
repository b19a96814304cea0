package client

import (
	"fmt"
	"strings"

	"github.com/pgtools/pg-config-view/models"
)

// Select filters a full report down to the requested entry names,
// preserving the order the names were requested in. Names are matched
// case-insensitively. An unknown name is an error.
func Select(entries []models.ConfigEntry, names []string) ([]models.ConfigEntry, error) {
	byName := make(map[string]models.ConfigEntry, len(entries))
	for _, entry := range entries {
		byName[entry.Name] = entry
	}

	selected := make([]models.ConfigEntry, 0, len(names))
	for _, name := range names {
		entry, ok := byName[strings.ToUpper(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownEntry, name)
		}
		selected = append(selected, entry)
	}

	return selected, nil
}
