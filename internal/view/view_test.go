package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"markdown", "markdown", false},
		{"html", "html", false},
		{"invalid", "invalid", true},
		{"xml", "xml", true},
		{"TABLE uppercase", "TABLE", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	assert.Contains(t, formats, "table")
	assert.Contains(t, formats, "json")
	assert.Contains(t, formats, "plain")
	assert.Contains(t, formats, "markdown")
	assert.Contains(t, formats, "html")
	assert.Len(t, formats, 5)
}

func TestValidateLocale(t *testing.T) {
	require.NoError(t, ValidateLocale(""))
	require.NoError(t, ValidateLocale("en"))
	require.NoError(t, ValidateLocale("es"))

	err := ValidateLocale("fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestMessagesFor(t *testing.T) {
	assert.Equal(t, "BALANCED", MessagesFor("en").Verdict(true))
	assert.Equal(t, "NOT BALANCED", MessagesFor("en").Verdict(false))
	assert.Equal(t, "BALANCEADA", MessagesFor("es").Verdict(true))
	assert.Equal(t, "NO BALANCEADA", MessagesFor("es").Verdict(false))
	assert.Equal(t, english, MessagesFor("xx"))
}

func TestRenderer_RenderTable_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	headers := []string{"KEY", "VALUE", "SOURCE"}
	rows := [][]string{
		{"input_file", "expresiones.txt", "default"},
		{"locale", "es", "BAL_LOCALE"},
	}

	r.RenderTable(headers, rows)

	output := buf.String()
	assert.Contains(t, output, "KEY")
	assert.Contains(t, output, "SOURCE")
	assert.Contains(t, output, "expresiones.txt")
	assert.Contains(t, output, "BAL_LOCALE")

	// Columns are aligned to the widest cell.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Index(lines[1], "expresiones.txt"), strings.Index(lines[2], "es"))
}

func TestRenderer_RenderTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	headers := []string{"KEY", "VALUE"}
	rows := [][]string{
		{"locale", "en"},
		{"output_format", "table"},
	}

	r.RenderTable(headers, rows)

	var result []map[string]string
	err := json.Unmarshal(buf.Bytes(), &result)
	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "locale", result[0]["key"])
	assert.Equal(t, "en", result[0]["value"])
}

func TestRenderer_RenderTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"KEY", "VALUE"}, [][]string{
		{"locale", "en"},
		{"no_color", "true"},
	})

	// Plain format should use tabs and not include headers
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "locale\ten", lines[0])
	assert.Equal(t, "no_color\ttrue", lines[1])
}

func TestRenderer_RenderJSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	err := r.RenderJSON(map[string]string{"status": "ok"})
	require.NoError(t, err)

	var result map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "ok", result["status"])
}

func TestRenderer_RenderText(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderText("Hello, World!")

	assert.Equal(t, "Hello, World!", strings.TrimSpace(buf.String()))
}

func TestRenderer_Notices(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.Success("Operation completed")
	r.Warning("Careful")
	r.Error("Something went wrong")

	output := buf.String()
	assert.Contains(t, output, "✓ Operation completed")
	assert.Contains(t, output, "! Careful")
	assert.Contains(t, output, "✗ Something went wrong")
}

func TestRenderer_RenderKeyValue(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderKeyValue("Status", "Active")
	assert.Equal(t, "Status: Active\n", buf.String())

	buf.Reset()
	r = NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)
	r.RenderKeyValue("status", "active")
	assert.Equal(t, `{"status":"active"}`, strings.TrimSpace(buf.String()))
}

func TestNewRenderer_DefaultFormat(t *testing.T) {
	r := NewRenderer("", true)
	assert.Equal(t, FormatTable, r.Format())
}
