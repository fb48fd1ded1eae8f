// Package mazeapi exposes maze generation and the saved mazes over HTTP.
package mazeapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/backtrack-maze/api/identity"
	dmn "github.com/beka-birhanu/backtrack-maze/domain"
	"github.com/beka-birhanu/backtrack-maze/maze"
	"github.com/beka-birhanu/backtrack-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const defaultListLimit = 20

// Controller serves the /mazes routes.
type Controller struct {
	mazeService i.MazeService
}

// NewController creates a Controller backed by s.
func NewController(s i.MazeService) *Controller {
	return &Controller{mazeService: s}
}

// RegisterPublic registers public routes.
func (c *Controller) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("/preview", c.preview)
		mazes.GET("/recent", c.recent)
		mazes.GET("/:ID", c.byID)
	}
}

// RegisterProtected registers routes that need a signed-in user.
func (c *Controller) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.GET("/mine", c.mine)
		mazes.DELETE("/:ID", c.delete)
	}
}

func (c *Controller) preview(ctx *gin.Context) {
	var query PreviewQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.mazeService.Preview(query.Width, query.Height, query.Seed)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toResponse(record, false))
}

func (c *Controller) recent(ctx *gin.Context) {
	limit, ok := parseLimit(ctx)
	if !ok {
		return
	}

	records, err := c.mazeService.Recent(ctx.Request.Context(), limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toResponses(records))
}

func (c *Controller) byID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	record, err := c.mazeService.ByID(ctx.Request.Context(), id)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toResponse(record, true))
}

func (c *Controller) create(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := c.mazeService.Create(ctx.Request.Context(), owner, request.Width, request.Height, request.Seed)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toResponse(record, true))
}

func (c *Controller) mine(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	limit, ok := parseLimit(ctx)
	if !ok {
		return
	}

	records, err := c.mazeService.ByOwner(ctx.Request.Context(), owner, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toResponses(records))
}

func (c *Controller) delete(ctx *gin.Context) {
	owner, ok := identity.UserID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.mazeService.Delete(ctx.Request.Context(), id, owner); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return id, true
}

func parseLimit(ctx *gin.Context) (int64, bool) {
	raw := ctx.Query("limit")
	if raw == "" {
		return defaultListLimit, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit <= 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
		return 0, false
	}
	return limit, true
}

// writeError maps service errors to status codes. Unknown errors are
// recorded on the context for the access log and hidden from the client.
func writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, maze.ErrInvalidDimensions), errors.Is(err, dmn.ErrDimensionTooLarge):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrMazeNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, dmn.ErrCorruptMazeRecord):
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": dmn.ErrCorruptMazeRecord.Error()})
	default:
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
