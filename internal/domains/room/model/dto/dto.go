package dto

import "roomcal/internal/domains/room/model"

type RoomResponse struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Label    string `json:"label"`
	Marker   string `json:"marker"`
}

func (r *RoomResponse) FromModel(room model.Room) {
	r.Name = room.Name
	r.Capacity = room.Capacity
	r.Label = room.Label
	r.Marker = room.Marker
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(rooms []model.Room) {
	r.TotalData = len(rooms)

	r.Rooms = make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		r.Rooms[i].FromModel(room)
	}
}

type StatusLinkResponse struct {
	URL string `json:"url"`
}
