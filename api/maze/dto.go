package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/beka-birhanu/backtrack-maze/maze"
)

// CreateRequest is the body of POST /mazes. Seed is optional.
type CreateRequest struct {
	Width  int    `json:"width" binding:"required"`
	Height int    `json:"height" binding:"required"`
	Seed   *int64 `json:"seed"`
}

// PreviewQuery holds the query string of GET /mazes/preview.
type PreviewQuery struct {
	Width  int    `form:"width" binding:"required"`
	Height int    `form:"height" binding:"required"`
	Seed   *int64 `form:"seed"`
}

// MazeResponse is the wire form of a maze.
type MazeResponse struct {
	ID        string            `json:"id,omitempty"`
	OwnerID   string            `json:"ownerId,omitempty"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Seed      int64             `json:"seed"`
	Rows      []string          `json:"rows"`
	Entry     maze.TilePosition `json:"entry"`
	Exit      maze.TilePosition `json:"exit"`
	CreatedAt *time.Time        `json:"createdAt,omitempty"`
}

func toResponse(r *dmn.MazeRecord, persisted bool) *MazeResponse {
	resp := &MazeResponse{
		Width:  r.Width,
		Height: r.Height,
		Seed:   r.Seed,
		Rows:   r.Rows,
		Entry:  r.Entry,
		Exit:   r.Exit,
	}
	if persisted {
		createdAt := r.CreatedAt
		resp.ID = r.ID.String()
		resp.OwnerID = r.OwnerID.String()
		resp.CreatedAt = &createdAt
	}
	return resp
}

func toResponses(records []*dmn.MazeRecord) []*MazeResponse {
	out := make([]*MazeResponse, 0, len(records))
	for _, r := range records {
		out = append(out, toResponse(r, true))
	}
	return out
}
