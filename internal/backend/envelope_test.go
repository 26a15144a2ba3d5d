package backend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeListEquivalentShapes(t *testing.T) {
	// the backend serves the same collection in three shapes; all must
	// unwrap to the identical inner array
	shapes := map[string]string{
		"bare array":   `[{"id":"1"},{"id":"2"}]`,
		"keyed object": `{"categories":[{"id":"1"},{"id":"2"}]}`,
		"data wrapper": `{"data":{"categories":[{"id":"1"},{"id":"2"}]}}`,
		"data array":   `{"data":[{"id":"1"},{"id":"2"}]}`,
	}

	for name, payload := range shapes {
		t.Run(name, func(t *testing.T) {
			out := NormalizeList(json.RawMessage(payload), "categories")
			require.NotNil(t, out)
			assert.JSONEq(t, `[{"id":"1"},{"id":"2"}]`, string(out))
		})
	}
}

func TestNormalizeListFallbackKeys(t *testing.T) {
	out := NormalizeList(json.RawMessage(`{"items":[{"id":"1"}]}`), "categories", "items")
	require.NotNil(t, out)
	assert.JSONEq(t, `[{"id":"1"}]`, string(out))
}

func TestNormalizeListUnrecognizedShape(t *testing.T) {
	assert.Nil(t, NormalizeList(json.RawMessage(`{"weird":{"nested":true}}`), "categories"))
	assert.Nil(t, NormalizeList(json.RawMessage(`"just a string"`), "categories"))
	assert.Nil(t, NormalizeList(json.RawMessage(``), "categories"))
	assert.Nil(t, NormalizeList(json.RawMessage(`{not json`), "categories"))
}

func TestNormalizeObject(t *testing.T) {
	assert.JSONEq(t, `{"id":"1"}`, string(NormalizeObject(json.RawMessage(`{"id":"1"}`))))
	assert.JSONEq(t, `{"id":"1"}`, string(NormalizeObject(json.RawMessage(`{"data":{"id":"1"}}`))))

	// a data field that is not an object stays wrapped
	assert.JSONEq(t, `{"data":[1,2]}`, string(NormalizeObject(json.RawMessage(`{"data":[1,2]}`))))
}

func TestDecodeList(t *testing.T) {
	type row struct {
		ID string `json:"id"`
	}

	var rows []row
	err := DecodeList(json.RawMessage(`{"data":{"items":[{"id":"a"},{"id":"b"}]}}`), &rows, "items")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "a", rows[0].ID)

	// unrecognized shape leaves dst untouched instead of erroring
	var empty []row
	err = DecodeList(json.RawMessage(`{"nope":1}`), &empty, "items")
	require.NoError(t, err)
	assert.Nil(t, empty)
}
