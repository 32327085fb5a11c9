package stations

import (
	"time"

	"transport/internal/core/domain/model/station"
)

// StationResponse is the read model returned by all station operations.
type StationResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Address     string     `json:"address"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	IsDeleted   bool       `json:"isDeleted"`
}

// NewStationResponse projects a station aggregate to its response shape.
func NewStationResponse(st *station.Station) StationResponse {
	return StationResponse{
		ID:          st.ID().String(),
		Name:        st.Name(),
		Latitude:    st.Coordinates().Latitude(),
		Longitude:   st.Coordinates().Longitude(),
		Address:     st.Address(),
		Description: optionalString(st.Description()),
		CreatedAt:   st.CreatedAt(),
		UpdatedAt:   st.UpdatedAt(),
		IsDeleted:   st.IsDeleted(),
	}
}

// NewStationResponses projects a slice of station aggregates.
func NewStationResponses(sts []*station.Station) []StationResponse {
	responses := make([]StationResponse, 0, len(sts))
	for _, st := range sts {
		responses = append(responses, NewStationResponse(st))
	}
	return responses
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
