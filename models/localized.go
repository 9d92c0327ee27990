package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// ═══════════════════════════════════════════════════════════
// Bilingual JSONB Types
// ═══════════════════════════════════════════════════════════

// LocalizedString is a Turkish/English string pair. Every user-facing text
// field in the catalog and the page documents uses this shape. Stored as a
// JSONB object; an empty value for one language is tolerated (the site falls
// back to its bundled translations), it is not an error.
type LocalizedString struct {
	Tr string `json:"tr"`
	En string `json:"en"`
}

// HasBoth reports whether both translations are non-empty.
func (l LocalizedString) HasBoth() bool {
	return l.Tr != "" && l.En != ""
}

func (l *LocalizedString) Scan(value interface{}) error {
	if value == nil {
		*l = LocalizedString{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LocalizedString")
	}
	return json.Unmarshal(bytes, l)
}

func (l LocalizedString) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// LocalizedStringList holds parallel TR/EN string lists (about-page mission
// bullets).
type LocalizedStringList struct {
	Tr []string `json:"tr"`
	En []string `json:"en"`
}

func (l *LocalizedStringList) Scan(value interface{}) error {
	if value == nil {
		*l = LocalizedStringList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LocalizedStringList")
	}
	return json.Unmarshal(bytes, l)
}

func (l LocalizedStringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// StringList is a JSONB array of plain strings (image URL lists).
type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}
