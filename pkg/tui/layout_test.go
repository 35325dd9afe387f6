package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/formcraft/formcraft-cli/pkg/reorder"
	th "github.com/formcraft/formcraft-cli/pkg/tui/testhelpers"
)

func TestSharedLayout_Dimensions(t *testing.T) {
	tests := []struct {
		name        string
		width       int
		height      int
		showPreview bool
		wantCols    int
		wantWidth   int
		wantHeight  int
	}{
		{"three columns", 120, 40, true, 3, 36, 30},
		{"two columns", 120, 40, false, 2, 56, 30},
		{"tiny terminal clamps", 20, 5, true, 3, 10, minContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sl := NewSharedLayout(tt.width, tt.height, tt.showPreview)
			assert.Equal(t, tt.wantCols, sl.ColumnCount())
			assert.Equal(t, tt.wantWidth, sl.GetColumnWidth())
			assert.Equal(t, tt.wantHeight, sl.GetContentHeight())
		})
	}
}

func TestSharedLayout_ColumnAt(t *testing.T) {
	sl := NewSharedLayout(120, 40, true)
	outer := sl.GetColumnWidth() + 2

	tests := []struct {
		x    int
		want column
	}{
		{0, -1},
		{outerPadding, fieldsColumn},
		{outerPadding + outer - 1, fieldsColumn},
		{outerPadding + outer, -1}, // gap
		{outerPadding + outer + columnGap, configColumn},
		{outerPadding + 2*(outer+columnGap), previewColumn},
		{119, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sl.ColumnAt(tt.x), "x=%d", tt.x)
	}
}

func TestSharedLayout_CardSlots(t *testing.T) {
	sl := NewSharedLayout(120, 40, true)

	assert.Equal(t, -1, sl.CardSlotAt(bodyTopRow-1))
	assert.Equal(t, 0, sl.CardSlotAt(bodyTopRow))
	assert.Equal(t, 0, sl.CardSlotAt(bodyTopRow+cardHeight-1))
	assert.Equal(t, 1, sl.CardSlotAt(bodyTopRow+cardHeight))
	assert.Equal(t, -1, sl.CardSlotAt(bodyTopRow+sl.VisibleCards()*cardHeight))

	assert.Equal(t, reorder.Box{Top: 8, Bottom: 11}, sl.CardBox(1))
	assert.True(t, sl.CardBox(1).Contains(float64(bodyTopRow+cardHeight)+0.5))
}

func TestSharedLayout_RenderColumnTruncates(t *testing.T) {
	sl := NewSharedLayout(60, 20, false)
	body := strings.Repeat("x", 200)

	out := th.PlainView(sl.RenderColumn(ColumnHeaderConfig{Heading: "FIELDS", Active: true}, body))

	assert.Contains(t, out, "FIELDS")
	assert.Contains(t, out, "…")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(line)), sl.GetColumnWidth()+2)
	}
}

func TestFormatHelpTextRows_DropsOverflow(t *testing.T) {
	out := th.PlainView(formatHelpTextRows([][]string{{"alpha", "beta", "gamma"}}, 14))

	assert.Equal(t, "alpha • beta", out)
}
