package repository

import (
	"bytes"
	"fmt"
	"os"
	"roomcal/config"
	"roomcal/internal/domains/room/model"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

type registryFile struct {
	Rooms []model.Room `yaml:"rooms"`
}

// Parse decodes a YAML registry document.
func Parse(data []byte) (*model.Registry, error) {
	var file registryFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode room registry: %w", err)
	}

	registry, err := model.NewRegistry(file.Rooms...)
	if err != nil {
		return nil, fmt.Errorf("invalid room registry: %w", err)
	}

	return registry, nil
}

// Load reads the registry from path. An empty path yields the default rooms.
func Load(path string) (*model.Registry, error) {
	if path == "" {
		return model.NewRegistry(model.DefaultRooms()...)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read room registry %s: %w", path, err)
	}

	return Parse(data)
}

func New(config *config.Config) *model.Registry {
	registry, err := Load(config.Rooms.RegistryFile)
	if err != nil {
		log.Fatal().Err(err).Str("file", config.Rooms.RegistryFile).Msg("Failed to load room registry")
	}

	log.Info().Int("rooms", registry.Len()).Strs("names", registry.Names()).Msg("Room registry loaded")

	return registry
}
