package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Living Room", CategoryLivingRoom},
		{"living-room", CategoryLivingRoom},
		{"LIVING ROOM", CategoryLivingRoom},
		{"  living   room ", CategoryLivingRoom},
		{"Luxury Collection", CategoryLuxury},
		{"luxury-collection", CategoryLuxury},
		{"bedroom", CategoryBedroom},
		{"Dining", CategoryDining},
		{"OFFICE", CategoryOffice},
		{"all", CategoryAll},
		{"ALL", CategoryAll},
		{"", CategoryAll},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCategory(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	got, err := ParseCategory("garden")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
	assert.Equal(t, CategoryNone, got)
}

func TestCategoryMappingIsTotalAndBidirectional(t *testing.T) {
	for _, c := range Categories() {
		require.True(t, c.Valid(), c.String())

		fromName, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, fromName)

		fromSlug, err := ParseCategory(c.Slug())
		require.NoError(t, err)
		assert.Equal(t, c, fromSlug)
	}
	assert.Len(t, bySlug, len(Categories()))
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		C Category `json:"c"`
	}{CategoryLivingRoom})
	require.NoError(t, err)
	assert.JSONEq(t, `{"c":"Living Room"}`, string(b))

	var v struct {
		C Category `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"c":"luxury-collection"}`), &v))
	assert.Equal(t, CategoryLuxury, v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"c":"garage"}`), &v))

	_, err = json.Marshal(struct{ C Category }{CategoryAll})
	assert.Error(t, err)
}

func TestCategoryMatches(t *testing.T) {
	assert.True(t, CategoryAll.Matches(CategoryOffice))
	assert.True(t, CategoryOffice.Matches(CategoryOffice))
	assert.False(t, CategoryOffice.Matches(CategoryDining))
	assert.False(t, CategoryNone.Matches(CategoryDining))
}
