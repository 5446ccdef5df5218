package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_RenderAndWrite(t *testing.T) {
	page := NewPage("My Altered collection")
	presenter := NewPresenter(page, DefaultStyle(), DefaultLayout())

	require.NoError(t, presenter.Present(testTotals(), DefaultTargets()))
	assert.Equal(t, []string{"factions", "rarities", "types"}, page.Mounted())

	var buf bytes.Buffer
	require.NoError(t, page.Write(&buf))

	html := buf.String()
	for _, want := range []string{"My Altered collection", "factions", "rarities", "types", "Axiom", "Unique", "Landmark"} {
		assert.True(t, strings.Contains(html, want), "page should contain %q", want)
	}
}

func TestPage_PaletteForEveryTheme(t *testing.T) {
	palette := []string{
		"rgb(140, 67, 42)", "rgb(195, 38, 55)", "rgb(207, 65, 113)",
		"rgb(61, 107, 66)", "rgb(15, 101, 147)", "rgb(118, 72, 145)",
		"rgb(190, 190, 190)", "rgb(0, 102, 255)", "rgb(255, 215, 0)",
	}

	for _, theme := range []string{"dark", "white", "macarons"} {
		t.Run(theme, func(t *testing.T) {
			style := DefaultStyle()
			style.Theme = theme

			page := NewPage("test")
			require.NoError(t, NewPresenter(page, style, DefaultLayout()).Present(testTotals(), DefaultTargets()))

			var buf bytes.Buffer
			require.NoError(t, page.Write(&buf))
			for _, color := range palette {
				assert.Contains(t, buf.String(), color)
			}
		})
	}
}

func TestPage_InvalidTargets(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"Empty target", ""},
		{"Bare hash", "#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage("test")
			err := page.Render(tt.target, PieConfig{})
			assert.Error(t, err)
			assert.Empty(t, page.Mounted())
		})
	}
}

func TestPage_DuplicateTarget(t *testing.T) {
	page := NewPage("test")
	cfg := PieConfig{Title: "A", Labels: []string{"x"}, Values: []int{1}, Layout: DefaultLayout()}

	require.NoError(t, page.Render("#a", cfg))
	assert.Error(t, page.Render("a", cfg))
}

func TestPage_MismatchedSeries(t *testing.T) {
	page := NewPage("test")
	err := page.Render("#a", PieConfig{Labels: []string{"x", "y"}, Values: []int{1}})
	assert.Error(t, err)
}

func TestPage_Save(t *testing.T) {
	page := NewPage("test")
	cfg := PieConfig{Title: "A", Labels: []string{"x"}, Values: []int{1}, Layout: DefaultLayout(), Style: DefaultStyle()}
	require.NoError(t, page.Render("#a", cfg))

	path := filepath.Join(t.TempDir(), "out", "collection.html")
	require.NoError(t, page.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestLegendOpts(t *testing.T) {
	cfg := PieConfig{ShowLegend: true, Layout: DefaultLayout()}
	assert.Equal(t, "0", legendOpts(cfg).Bottom)

	cfg.Layout.LegendPosition = "right"
	legend := legendOpts(cfg)
	assert.Equal(t, "0", legend.Right)
	assert.Equal(t, "vertical", legend.Orient)
}

func TestBrowserCommand(t *testing.T) {
	name, args, err := browserCommand("linux", "/tmp/x.html")
	require.NoError(t, err)
	assert.Equal(t, "xdg-open", name)
	assert.Equal(t, []string{"/tmp/x.html"}, args)

	name, _, err = browserCommand("darwin", "/tmp/x.html")
	require.NoError(t, err)
	assert.Equal(t, "open", name)

	_, _, err = browserCommand("plan9", "/tmp/x.html")
	assert.Error(t, err)
}
