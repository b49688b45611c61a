package repository_test

import (
	"os"
	"path/filepath"
	"roomcal/internal/domains/room/model"
	"roomcal/internal/domains/room/repository"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultRegistry(t *testing.T) {
	registry, err := repository.Load("")

	require.NoError(t, err)
	assert.Equal(t, []string{"ห้องประชุม A", "ห้องประชุม B", "หอประชุม"}, registry.Names())
	assert.Equal(t, 60, registry.Capacity("ห้องประชุม A"))
	assert.Equal(t, 300, registry.Capacity("ห้องประชุม B"))
	assert.Equal(t, 500, registry.Capacity("หอประชุม"))
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	content := `rooms:
  - name: Studio
    capacity: 12
  - name: Library
    capacity: 40
    label: Lib
    marker: library
  - name: Rooftop
    capacity: 80
  - name: Garage
    capacity: 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	registry, err := repository.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 4, registry.Len())
	assert.Equal(t, []string{"Studio", "Library", "Rooftop", "Garage"}, registry.Names())

	studio, ok := registry.Get("Studio")
	require.True(t, ok)
	assert.Equal(t, "Studio", studio.Label, "label defaults to the name")
	assert.Equal(t, "room-1", studio.Marker)

	library, _ := registry.Get("Library")
	assert.Equal(t, "Lib", library.Label)
	assert.Equal(t, "library", library.Marker)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := repository.Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		target  error
	}{
		{
			name:    "no rooms",
			content: "rooms: []\n",
			target:  model.ErrEmptyRegistry,
		},
		{
			name:    "duplicate",
			content: "rooms:\n  - {name: A, capacity: 1}\n  - {name: A, capacity: 2}\n",
			target:  model.ErrDuplicateRoom,
		},
		{
			name:    "negative capacity",
			content: "rooms:\n  - {name: A, capacity: -5}\n",
			target:  model.ErrNegativeCapacity,
		},
		{
			name:    "blank name",
			content: "rooms:\n  - {name: \"  \", capacity: 5}\n",
			target:  model.ErrInvalidRoomName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := repository.Parse([]byte(tt.content))

			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := repository.Parse([]byte("rooms:\n  - {name: A, seats: 5}\n"))

	assert.Error(t, err)
}
