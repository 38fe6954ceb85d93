package postgres

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/lib/pq"
)

// isUniqueViolation reports whether err is a unique-constraint failure
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// encodeFeatures serializes a feature list for storage. A nil slice is
// stored as an empty JSON array so reads never produce null.
func encodeFeatures(features []string) (string, error) {
	if features == nil {
		features = []string{}
	}
	data, err := json.Marshal(features)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeFeatures deserializes a stored feature list.
func decodeFeatures(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var features []string
	if err := json.Unmarshal([]byte(raw), &features); err != nil {
		return nil, err
	}
	if features == nil {
		features = []string{}
	}
	return features, nil
}
