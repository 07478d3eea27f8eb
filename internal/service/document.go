package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/raviraj-mashruwala/calorie-tracker-v1/internal/ledger"
)

// QueryDocument evaluates a gjson path such as "profiles.#.name" against the
// JSON form of the user document. An empty path returns the whole document.
func (s *Session) QueryDocument(path string) (string, error) {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return string(raw), nil
	}
	result := gjson.GetBytes(raw, path)
	if !result.Exists() {
		return "", ledger.Invalidf("no value at path %q", path)
	}
	return result.Raw, nil
}
