package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	EntityName = "room"

	// MarkerUnknown tags bookings whose room is not in the registry.
	MarkerUnknown = "unknown"
)

var (
	ErrEmptyRegistry    = errors.New("room registry is empty")
	ErrInvalidRoomName  = errors.New("room name is required")
	ErrNegativeCapacity = errors.New("room capacity must not be negative")
	ErrDuplicateRoom    = errors.New("room is registered twice")
	ErrUnknownRoom      = errors.New("unknown room")
)

// Room is one bookable space and its seat capacity.
type Room struct {
	Name     string `yaml:"name"     json:"name"`
	Capacity int    `yaml:"capacity" json:"capacity"`
	Label    string `yaml:"label"    json:"label"`
	Marker   string `yaml:"marker"   json:"marker"`
}

// DefaultRooms are the rooms booked through the reservation sheet.
func DefaultRooms() []Room {
	return []Room{
		{Name: "ห้องประชุม A", Capacity: 60, Label: "A", Marker: "room-a"},
		{Name: "ห้องประชุม B", Capacity: 300, Label: "B", Marker: "room-b"},
		{Name: "หอประชุม", Capacity: 500, Label: "Hall", Marker: "hall"},
	}
}

// Registry is the ordered, read-only set of rooms. Iteration order is registration order.
type Registry struct {
	rooms []Room
	index map[string]int
}

func NewRegistry(rooms ...Room) (*Registry, error) {
	if len(rooms) == 0 {
		return nil, ErrEmptyRegistry
	}

	registry := &Registry{
		rooms: make([]Room, 0, len(rooms)),
		index: make(map[string]int, len(rooms)),
	}

	for i, room := range rooms {
		room.Name = strings.TrimSpace(room.Name)

		if room.Name == "" {
			return nil, fmt.Errorf("room #%d: %w", i+1, ErrInvalidRoomName)
		}

		if room.Capacity < 0 {
			return nil, fmt.Errorf("room %q: %w", room.Name, ErrNegativeCapacity)
		}

		if _, ok := registry.index[room.Name]; ok {
			return nil, fmt.Errorf("room %q: %w", room.Name, ErrDuplicateRoom)
		}

		if room.Label == "" {
			room.Label = room.Name
		}

		if room.Marker == "" {
			room.Marker = fmt.Sprintf("room-%d", i+1)
		}

		registry.index[room.Name] = len(registry.rooms)
		registry.rooms = append(registry.rooms, room)
	}

	return registry, nil
}

// Rooms returns a copy of the registered rooms.
func (r *Registry) Rooms() []Room {
	return append([]Room(nil), r.rooms...)
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.rooms))
	for i, room := range r.rooms {
		names[i] = room.Name
	}

	return names
}

func (r *Registry) Len() int {
	return len(r.rooms)
}

func (r *Registry) Get(name string) (Room, bool) {
	i, ok := r.index[name]
	if !ok {
		return Room{}, false
	}

	return r.rooms[i], true
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.index[name]

	return ok
}

// Capacity returns the seat capacity of name, 0 for rooms outside the registry.
func (r *Registry) Capacity(name string) int {
	room, _ := r.Get(name)

	return room.Capacity
}

// Marker returns the indicator marker of name, MarkerUnknown for rooms outside the registry.
func (r *Registry) Marker(name string) string {
	room, ok := r.Get(name)
	if !ok {
		return MarkerUnknown
	}

	return room.Marker
}

// Ordered keeps the registered names from names in registry order, dropping unknown and repeated entries.
func (r *Registry) Ordered(names []string) []string {
	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	ordered := make([]string, 0, len(names))
	for _, room := range r.rooms {
		if wanted[room.Name] {
			ordered = append(ordered, room.Name)
		}
	}

	return ordered
}

// Resolve maps a room name or its short label to the registered name.
func (r *Registry) Resolve(nameOrLabel string) (string, bool) {
	if r.Contains(nameOrLabel) {
		return nameOrLabel, true
	}

	for _, room := range r.rooms {
		if strings.EqualFold(room.Label, nameOrLabel) {
			return room.Name, true
		}
	}

	return "", false
}

// ResolveAll resolves every entry of namesOrLabels, skipping blanks, and returns the
// registered names in registry order.
func (r *Registry) ResolveAll(namesOrLabels []string) ([]string, error) {
	names := make([]string, 0, len(namesOrLabels))

	for _, value := range namesOrLabels {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}

		name, ok := r.Resolve(value)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownRoom, value)
		}

		names = append(names, name)
	}

	return r.Ordered(names), nil
}
