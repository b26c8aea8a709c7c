package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWatchCmd_Use(t *testing.T) {
	assert.Equal(t, "watch <directory>", watchCmd.Use)
}

func TestWatchCmd_RequiresService(t *testing.T) {
	old := pipelineSvc
	pipelineSvc = nil
	defer func() { pipelineSvc = old }()

	err := runWatch(watchCmd, []string{"/tmp"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestIsDerivedOutput(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		derived bool
	}{
		{"ok output", "/data/profiles_ok.json", true},
		{"reject output", "/data/profiles_reject.json", true},
		{"datestamped ok output", "/data/profiles_20230417_ok.json", true},
		{"jsonl reject output", "/data/profiles_reject.jsonl", true},
		{"plain input", "/data/profiles.json", false},
		{"name containing ok", "/data/okinawa.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.derived, isDerivedOutput(tt.path))
		})
	}
}
