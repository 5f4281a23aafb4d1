package entry

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTimeline_IsValid(t *testing.T) {
	tl := DefaultTimeline()
	require.NoError(t, tl.Validate())
	assert.Equal(t, StageHint, tl.Final())
	assert.Len(t, tl, 5)
}

func TestTimeline_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tl      Timeline
		wantErr bool
	}{
		{"empty", Timeline{}, true},
		{"single", Timeline{{0, StageGrid}}, false},
		{"negative delay", Timeline{{-time.Second, StageGrid}}, true},
		{"hidden stage", Timeline{{0, StageHidden}}, true},
		{"delay goes back", Timeline{{time.Second, StageGrid}, {0, StageBackground}}, true},
		{"stage goes back", Timeline{{0, StageOrb}, {time.Second, StageGrid}}, true},
		{"repeated stage", Timeline{{0, StageGrid}, {time.Second, StageGrid}}, true},
		{"same delay", Timeline{{time.Second, StageGrid}, {time.Second, StageBackground}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tl.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeline_MarshalJSON(t *testing.T) {
	tl := Timeline{{300 * time.Millisecond, StageGrid}, {1500 * time.Millisecond, StageOrb}}
	data, err := json.Marshal(tl)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"delay":300,"stage":1},{"delay":1500,"stage":4}]`, string(data))
}

func TestStage_String(t *testing.T) {
	assert.Equal(t, "orb", StageOrb.String())
	assert.Equal(t, "stage(9)", Stage(9).String())
}
