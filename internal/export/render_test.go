package export_test

import (
	"bytes"
	"testing"

	"github.com/SirTuppy/route-setter-scheduler/internal/export"
	"github.com/SirTuppy/route-setter-scheduler/internal/gym"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func samplePage(t *testing.T) export.YellowPage {
	t.Helper()
	page, err := export.BuildYellowPage("denton", "Denton (Main)", monday, []gym.Wall{slab, lead}, nil)
	require.NoError(t, err)
	return page
}

func TestRenderPDF(t *testing.T) {
	data, err := export.RenderPDF(samplePage(t))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(data, []byte("%%EOF")))
	assert.Contains(t, string(data), `Denton \(Main\)`)
	// The em dash placeholder is written as its WinAnsi byte.
	assert.True(t, bytes.Contains(data, []byte{0x97}))
}

func TestRenderXLSX(t *testing.T) {
	data, err := export.RenderXLSX(samplePage(t))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Yellow Page", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Yellow Page - Denton (Main)", title)

	rows, err := f.GetRows("Yellow Page")
	require.NoError(t, err)
	assert.Equal(t, "ROPE", rows[3][0])
	assert.Equal(t, []string{"1", "6/2", "—", "—", "—"}, rows[5])
}
