package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMapMergeReplacesTopLevelKeys(t *testing.T) {
	stored := JSONMap{
		"hero":  map[string]interface{}{"title": "old"},
		"stats": map[string]interface{}{"yearsValue": 20},
	}
	patch := JSONMap{
		"hero": map[string]interface{}{"title": "new"},
	}

	merged := stored.Merge(patch)

	// Patched key is replaced wholesale, untouched keys survive.
	assert.Equal(t, map[string]interface{}{"title": "new"}, merged["hero"])
	assert.Equal(t, map[string]interface{}{"yearsValue": 20}, merged["stats"])
}

func TestJSONMapMergeDoesNotMutateReceiver(t *testing.T) {
	stored := JSONMap{"hero": "old"}
	patch := JSONMap{"hero": "new", "extra": true}

	merged := stored.Merge(patch)

	assert.Equal(t, "old", stored["hero"])
	assert.NotContains(t, stored, "extra")
	assert.Equal(t, "new", merged["hero"])
}

func TestJSONMapMergeIntoEmpty(t *testing.T) {
	var stored JSONMap
	patch := JSONMap{"faqs": []interface{}{}}

	merged := stored.Merge(patch)
	assert.Len(t, merged, 1)
	assert.Contains(t, merged, "faqs")
}

func TestJSONMapDecode(t *testing.T) {
	doc := JSONMap{
		"selectedProjects": []interface{}{"a", "b"},
		"featuredProducts": map[string]interface{}{
			"selectedProductIds": []interface{}{"x"},
		},
	}

	var home HomePageData
	require.NoError(t, doc.Decode(&home))

	assert.Equal(t, []string{"a", "b"}, home.SelectedProjects)
	require.NotNil(t, home.FeaturedProducts)
	assert.Equal(t, []string{"x"}, home.FeaturedProducts.SelectedProductIDs)
}

func TestToJSONMapRoundtrip(t *testing.T) {
	in := FaqPageData{Faqs: []FaqItem{{
		Question: LocalizedString{Tr: "Soru", En: "Question"},
		Answer:   LocalizedString{Tr: "Cevap", En: "Answer"},
	}}}

	var doc JSONMap
	require.NoError(t, ToJSONMap(in, &doc))
	assert.Contains(t, doc, "faqs")

	var out FaqPageData
	require.NoError(t, doc.Decode(&out))
	assert.Equal(t, in, out)
}

func TestJSONMapScanNil(t *testing.T) {
	var doc JSONMap
	require.NoError(t, doc.Scan(nil))
	assert.NotNil(t, doc)
	assert.Empty(t, doc)
}

func TestJSONMapValueNil(t *testing.T) {
	var doc JSONMap
	value, err := doc.Value()
	require.NoError(t, err)
	assert.JSONEq(t, "{}", string(value.([]byte)))
}
