package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// PartLine is one entry of a maintenance item's parts list.
type PartLine struct {
	PartID   string `json:"partId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Attachment is a named link attached to a maintenance item.
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PartLines is an ordered parts list stored as a JSON column.
type PartLines []PartLine

// Value implements driver.Valuer.
func (p PartLines) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return marshalColumn(p)
}

// Scan implements sql.Scanner.
func (p *PartLines) Scan(src interface{}) error {
	return scanColumn(src, p, "parts list")
}

// Attachments is an ordered attachment list stored as a JSON column.
type Attachments []Attachment

// Value implements driver.Valuer.
func (a Attachments) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return marshalColumn(a)
}

// Scan implements sql.Scanner.
func (a *Attachments) Scan(src interface{}) error {
	return scanColumn(src, a, "attachments")
}

// StringList is an ordered list of free-text tags stored as a JSON column.
type StringList []string

// Value implements driver.Valuer.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return marshalColumn(s)
}

// Scan implements sql.Scanner.
func (s *StringList) Scan(src interface{}) error {
	return scanColumn(src, s, "string list")
}

func marshalColumn(v interface{}) (driver.Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("models: marshal column: %w", err)
	}
	return string(data), nil
}

func scanColumn(src, dst interface{}, what string) error {
	if src == nil {
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("models: scan %s: unsupported type %T", what, src)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("models: scan %s: %w", what, err)
	}
	return nil
}
