// ABOUTME: Tests for export envelopes and the printable market list.
// ABOUTME: Verifies JSON and YAML formats and HTML escaping.
package storage

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
	"github.com/KarenBrasil/vida-fit/internal/models"
)

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(sampleBundle())
	require.NoError(t, err)

	var export ExportData
	require.NoError(t, json.Unmarshal(data, &export))

	assert.Equal(t, "1.0", export.Version)
	assert.Equal(t, "vidafit", export.Tool)
	assert.False(t, export.ExportedAt.IsZero())
	require.NotNil(t, export.Bundle)
	assert.Equal(t, "Karen", export.Bundle.Profile.Name)
	assert.Len(t, export.Bundle.DailyLogs, 1)
}

func TestExportYAML(t *testing.T) {
	data, err := ExportYAML(sampleBundle())
	require.NoError(t, err)

	var export ExportData
	require.NoError(t, yaml.Unmarshal(data, &export))

	assert.Equal(t, "1.0", export.Version)
	require.NotNil(t, export.Bundle)
	assert.Len(t, export.Bundle.ShoppingItems, 1)
}

func TestShoppingListHTML(t *testing.T) {
	groups := []metrics.ShoppingGroup{
		{Category: "Proteínas", Items: []models.FoodItem{
			{Name: "Frango", Amount: "1kg"},
		}},
		{Category: "Outros", Items: []models.FoodItem{
			{Name: "Creatina", Amount: "1 pote"},
		}},
	}

	html := string(ShoppingListHTML(groups, 2))

	assert.Contains(t, html, "Lista de Mercado")
	assert.Contains(t, html, "Proteínas")
	assert.Contains(t, html, "Frango")
	assert.Contains(t, html, "1kg (x2)")
	assert.Contains(t, html, "Creatina")
}

func TestShoppingListHTMLEscapesContent(t *testing.T) {
	groups := []metrics.ShoppingGroup{
		{Category: "Outros", Items: []models.FoodItem{
			{Name: "<script>alert(1)</script>", Amount: "1"},
		}},
	}

	html := string(ShoppingListHTML(groups, 1))
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestShoppingListHTMLSkipsEmptyGroups(t *testing.T) {
	groups := []metrics.ShoppingGroup{
		{Category: "Vazia"},
		{Category: "Outros", Items: []models.FoodItem{{Name: "Aveia", Amount: "500g"}}},
	}

	html := string(ShoppingListHTML(groups, 1))
	assert.NotContains(t, html, "Vazia")
	assert.Contains(t, html, "Aveia")
}
