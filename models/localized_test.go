package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalizedStringHasBoth(t *testing.T) {
	assert.True(t, LocalizedString{Tr: "Şömine", En: "Fireplace"}.HasBoth())
	assert.False(t, LocalizedString{Tr: "Şömine"}.HasBoth())
	assert.False(t, LocalizedString{En: "Fireplace"}.HasBoth())
	assert.False(t, LocalizedString{}.HasBoth())
}

func TestLocalizedStringScanValueRoundtrip(t *testing.T) {
	original := LocalizedString{Tr: "Odun Şömineleri", En: "Wood Fireplaces"}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned LocalizedString
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestLocalizedStringScanNil(t *testing.T) {
	scanned := LocalizedString{Tr: "stale"}
	require.NoError(t, scanned.Scan(nil))
	assert.Equal(t, LocalizedString{}, scanned)
}

func TestLocalizedStringScanRejectsNonBytes(t *testing.T) {
	var scanned LocalizedString
	assert.Error(t, scanned.Scan(42))
}

func TestStringListValueNilBecomesEmptyArray(t *testing.T) {
	var list StringList

	value, err := list.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(value.([]byte)))
}

func TestStringListJSONShape(t *testing.T) {
	list := StringList{"https://example.com/a.jpg", "https://example.com/b.jpg"}

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	assert.JSONEq(t, `["https://example.com/a.jpg","https://example.com/b.jpg"]`, string(raw))
}
