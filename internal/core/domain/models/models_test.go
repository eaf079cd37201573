package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_DecodeKeepsRawDocuments(t *testing.T) {
	body := `{"count":2,"nextPageCursor":"abc","results":[{"id":"1","title":"First","z":1,"a":2},{"id":"2","title":null}]}`

	var page Page
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	assert.Equal(t, 2, page.Count)
	assert.Equal(t, "abc", page.NextPageCursor)
	require.Len(t, page.Results, 2)
	assert.JSONEq(t, `{"id":"1","title":"First","z":1,"a":2}`, string(page.Results[0].Raw()))
	assert.Equal(t, `{"id":"1","title":"First","z":1,"a":2}`, string(page.Results[0].Raw()), "field order must be preserved")
	assert.Equal(t, "First", page.Results[0].StringOr("title", "No title"))
	assert.Equal(t, "No title", page.Results[1].StringOr("title", "No title"), "null counts as missing")
	assert.False(t, page.Results[1].Has("author"))
}

func TestPage_NullCursorIsEmpty(t *testing.T) {
	var page Page
	require.NoError(t, json.Unmarshal([]byte(`{"nextPageCursor":null,"results":[]}`), &page))
	assert.Empty(t, page.NextPageCursor)
	assert.Empty(t, page.Results)
}

func TestDocument_MarshalJSON(t *testing.T) {
	out, err := json.Marshal([]Document{NewDocument([]byte(`{"b":1,"a":"x"}`)), {}})
	require.NoError(t, err)
	assert.Equal(t, `[{"b":1,"a":"x"},null]`, string(out))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(string(c))
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	got, err := ParseCategory("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseCategory("podcast")
	assert.True(t, errors.Is(err, ErrInvalidFlag))
	assert.Contains(t, err.Error(), "article, tweet, video")
}

func TestParseLocation(t *testing.T) {
	got, err := ParseLocation("shortlist")
	require.NoError(t, err)
	assert.Equal(t, LocationShortlist, got)

	_, err = ParseLocation("inbox")
	assert.ErrorIs(t, err, ErrInvalidFlag)
}

func TestAPIError(t *testing.T) {
	var err error = &APIError{StatusCode: 401, Body: `{"detail":"nope"}`}
	assert.Equal(t, "API returned status 401", err.Error())
}
