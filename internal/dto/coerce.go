package dto

import (
	"fmt"
	"strconv"
	"strings"
)

// Console forms submit select and numeric inputs as strings. These helpers
// convert them into the wire types the upstream expects.

// foreignKey converts a required select value into a numeric foreign key.
func foreignKey(field, raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a numeric id", field)
	}
	return id, nil
}

// optionalForeignKey converts an optional select value. An empty value
// becomes nil, which serializes as an explicit JSON null: the upstream
// rejects "" and treats an omitted key as "leave unchanged".
func optionalForeignKey(field, raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := foreignKey(field, raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func intField(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", field)
	}
	return n, nil
}

func optionalIntField(field, raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := intField(field, raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func numberField(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", field)
	}
	return f, nil
}
