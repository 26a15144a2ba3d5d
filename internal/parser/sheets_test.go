package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name EN", "Name AR", "Price", "Desc EN", "Desc AR", "Image", "Available"},
		{"Burgers", "برغر", ""},
		{"Classic", "كلاسيك", "25", "Beef patty", "لحم بقري", "https://cdn/classic.jpg", "TRUE"},
		{"Double", "دبل", "35.5", "", "", "", "FALSE"},
		{"Drinks", "مشروبات", ""},
		{"Cola", "كولا", "5"},
	}

	categories, err := MapRows(rows)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	burgers := categories[0]
	assert.Equal(t, "Burgers", burgers.Name.EN)
	assert.Equal(t, "برغر", burgers.Name.AR)
	require.Len(t, burgers.Items, 2)

	classic := burgers.Items[0]
	assert.Equal(t, "Classic", classic.Name.EN)
	assert.Equal(t, 25.0, classic.Price)
	assert.Equal(t, "Beef patty", classic.Description.EN)
	assert.Equal(t, "https://cdn/classic.jpg", classic.ImageURL)
	assert.True(t, classic.Available)

	double := burgers.Items[1]
	assert.Equal(t, 35.5, double.Price)
	assert.False(t, double.Available)

	drinks := categories[1]
	require.Len(t, drinks.Items, 1)
	// the availability column may be missing entirely
	assert.True(t, drinks.Items[0].Available)
}

func TestMapRowsImplicitCategory(t *testing.T) {
	rows := [][]interface{}{
		{"Name EN", "Name AR", "Price"},
		{"Orphan Item", "", "12"},
	}

	categories, err := MapRows(rows)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Menu", categories[0].Name.EN)
	assert.Equal(t, "القائمة", categories[0].Name.AR)
	require.Len(t, categories[0].Items, 1)
}

func TestMapRowsSkipsBlankRows(t *testing.T) {
	rows := [][]interface{}{
		{"Name EN", "Name AR", "Price"},
		{},
		{"", "", ""},
		{"Burgers", "", ""},
		{"Classic", "", "25"},
	}

	categories, err := MapRows(rows)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Len(t, categories[0].Items, 1)
}

func TestMapRowsInvalidPrice(t *testing.T) {
	rows := [][]interface{}{
		{"Name EN", "Name AR", "Price"},
		{"Classic", "", "cheap"},
	}

	_, err := MapRows(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price")
}

func TestMapRowsNoContent(t *testing.T) {
	_, err := MapRows([][]interface{}{{"Name EN", "Name AR", "Price"}})
	require.Error(t, err)
}

func TestMapRowsNumericCells(t *testing.T) {
	// Sheets hands numbers back as float64, not strings
	rows := [][]interface{}{
		{"Name EN", "Name AR", "Price"},
		{"Burgers", "", ""},
		{"Classic", "", 25.0},
	}

	categories, err := MapRows(rows)
	require.NoError(t, err)
	require.Len(t, categories[0].Items, 1)
	assert.Equal(t, 25.0, categories[0].Items[0].Price)
}
