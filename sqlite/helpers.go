package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses to a query builder
// if values are > 0. SQLite requires a LIMIT clause before OFFSET, so
// an offset without a limit gets LIMIT -1.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	} else if offset > 0 {
		query.WriteString(" LIMIT -1")
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}

// encodeJSON marshals v to a JSON column value, mapping an absent field
// (nil slice or map) to NULL.
func encodeJSON(v any, absent bool) (any, error) {
	if absent {
		return nil, nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode field: %w", err)
	}
	return string(b), nil
}

// decodeStrings unmarshals a nullable JSON column into a string slice.
// NULL decodes to nil, preserving the "field absent" tag.
func decodeStrings(ns sql.NullString) ([]string, error) {
	if !ns.Valid {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil, fmt.Errorf("failed to decode field: %w", err)
	}
	return out, nil
}

// decodeActors unmarshals a nullable JSON column into the voice actor
// mapping. NULL decodes to nil.
func decodeActors(ns sql.NullString) (map[string][]string, error) {
	if !ns.Valid {
		return nil, nil
	}
	var out map[string][]string
	if err := json.Unmarshal([]byte(ns.String), &out); err != nil {
		return nil, fmt.Errorf("failed to decode field: %w", err)
	}
	return out, nil
}
