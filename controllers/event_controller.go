package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"guest-admin/models"
	"guest-admin/services"
	"guest-admin/utils"
)

// eventRequest keeps has_access optional so a new event defaults to true.
type eventRequest struct {
	EventName string  `json:"event_name"`
	HasAccess *bool   `json:"has_access"`
	Attended  bool    `json:"attended"`
	EventDate *string `json:"event_date"`
	Notes     string  `json:"notes"`
}

func (r eventRequest) model() models.GuestEvent {
	hasAccess := true
	if r.HasAccess != nil {
		hasAccess = *r.HasAccess
	}
	date := r.EventDate
	if date != nil && *date == "" {
		date = nil
	}
	return models.GuestEvent{
		EventName: r.EventName,
		HasAccess: hasAccess,
		Attended:  r.Attended,
		EventDate: date,
		Notes:     r.Notes,
	}
}

type EventController struct {
	EventSvc *services.EventService
}

func NewEventController(svc *services.EventService) *EventController {
	return &EventController{EventSvc: svc}
}

// GET /api/guests/:id/events
func (c *EventController) GetGuestEvents(ctx *gin.Context) {
	events, err := c.EventSvc.ListByGuest(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "list events", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, events)
}

// GET /api/events/:id
func (c *EventController) GetEvent(ctx *gin.Context) {
	event, err := c.EventSvc.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "get event", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, event)
}

// POST /api/guests/:id/events
func (c *EventController) CreateEvent(ctx *gin.Context) {
	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	event := req.model()
	if err := c.EventSvc.Create(ctx.Request.Context(), ctx.Param("id"), &event); err != nil {
		respondError(ctx, "create event", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusCreated, event)
}

// PUT /api/events/:id
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	var req eventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}
	event, err := c.EventSvc.Update(ctx.Request.Context(), ctx.Param("id"), req.model())
	if err != nil {
		respondError(ctx, "update event", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, event)
}

// PATCH /api/events/:id/attendance
func (c *EventController) ToggleAttendance(ctx *gin.Context) {
	event, err := c.EventSvc.ToggleAttendance(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, "toggle attendance", err)
		return
	}
	utils.JSONSuccess(ctx, http.StatusOK, event)
}

// DELETE /api/events/:id
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	if err := c.EventSvc.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, "delete event", err)
		return
	}
	utils.JSONMessage(ctx, http.StatusOK, "event deleted")
}
