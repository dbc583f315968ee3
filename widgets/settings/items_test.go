package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsettings "sprawl/pkg/settings"
)

func TestBuildMainMenuItems(t *testing.T) {
	t.Parallel()

	items := BuildMainMenuItems(appsettings.Settings{
		ShowLabels:     true,
		EffectsEnabled: false,
		TargetFPS:      30,
	})

	require.Len(t, items, 3)
	assert.Equal(t, "On", items[0].Value)
	assert.Equal(t, "Off", items[1].Value)
	assert.Equal(t, "30 fps", items[2].Value)
}

func TestBuildFPSMenuItemsMarksCurrent(t *testing.T) {
	t.Parallel()

	items := BuildFPSMenuItems(60)

	require.Len(t, items, len(FPSOptions)+1)
	assert.Equal(t, "30 fps", items[0].Title)
	assert.Equal(t, "✓ 60 fps", items[1].Title)
	assert.Equal(t, "Back", items[len(items)-1].Title)
}

func TestParseFPSFromLabel(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		label   string
		want    int
		wantErr bool
	}{
		"plain":       {label: "60 fps", want: 60},
		"checked":     {label: "✓ 30 fps", want: 30},
		"back button": {label: "Back", wantErr: true},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			v, err := ParseFPSFromLabel(tc.label)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
		})
	}
}

func TestMoveSelectionWraps(t *testing.T) {
	t.Parallel()

	w := NewWidget()
	w.SetItems([]Item{{Title: "a"}, {Title: "b"}, {Title: "c"}})

	w.MoveSelection(-1)
	assert.Equal(t, 2, w.Selected())
	w.MoveSelection(1)
	assert.Equal(t, 0, w.Selected())
}
