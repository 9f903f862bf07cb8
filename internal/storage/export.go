// ABOUTME: Export formats for the state bundle and the printable market list.
// ABOUTME: Supports JSON and YAML bundle exports plus a static HTML document.
package storage

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/KarenBrasil/vida-fit/internal/metrics"
)

// ExportData is the full export envelope for vidafit data.
type ExportData struct {
	Version    string    `json:"version" yaml:"version"`
	ExportedAt time.Time `json:"exported_at" yaml:"exported_at"`
	Tool       string    `json:"tool" yaml:"tool"`
	Bundle     *Bundle   `json:"bundle" yaml:"bundle"`
}

// NewExportData wraps a bundle in the export envelope.
func NewExportData(b *Bundle) *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "vidafit",
		Bundle:     b,
	}
}

// ExportJSON serializes the bundle as indented JSON.
func ExportJSON(b *Bundle) ([]byte, error) {
	data, err := json.MarshalIndent(NewExportData(b), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ExportYAML serializes the bundle as YAML.
func ExportYAML(b *Bundle) ([]byte, error) {
	data, err := yaml.Marshal(NewExportData(b))
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// ShoppingListHTML renders the grouped market list as a static printable
// document. One-way transform: nothing about the rendered subset is
// persisted.
func ShoppingListHTML(groups []metrics.ShoppingGroup, weeks int) []byte {
	var sb strings.Builder
	sb.WriteString("<html><head><title>Lista de Mercado (x")
	sb.WriteString(fmt.Sprint(weeks))
	sb.WriteString(")</title><style>")
	sb.WriteString("body{font-family:sans-serif;padding:40px;color:#334155}")
	sb.WriteString("h1{color:#10b981;border-bottom:2px solid #ecfdf5;padding-bottom:10px}")
	sb.WriteString(".cat{margin-top:25px;font-weight:800;font-size:12px;color:#10b981;text-transform:uppercase}")
	sb.WriteString(".item{padding:10px 0;border-bottom:1px solid #f1f5f9;display:flex;justify-content:space-between}")
	sb.WriteString(".qty{font-weight:bold}")
	sb.WriteString("</style></head><body><h1>Lista de Mercado - VidaFit</h1>")

	for _, g := range groups {
		if len(g.Items) == 0 {
			continue
		}
		sb.WriteString(`<div class="cat">`)
		sb.WriteString(html.EscapeString(g.Category))
		sb.WriteString("</div>")
		for _, item := range g.Items {
			sb.WriteString(`<div class="item"><span>`)
			sb.WriteString(html.EscapeString(item.Name))
			sb.WriteString(`</span><span class="qty">`)
			sb.WriteString(html.EscapeString(item.Amount))
			sb.WriteString(fmt.Sprintf(" (x%d)", weeks))
			sb.WriteString("</span></div>")
		}
	}

	sb.WriteString("</body></html>")
	return []byte(sb.String())
}
