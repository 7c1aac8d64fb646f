package api

import (
	"net/http"

	reqdto "room-reservation/internal/handler/dto/request"
	resdto "room-reservation/internal/handler/dto/response"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	q queries.AvailabilityQueries
}

func NewRoomHandler(q queries.AvailabilityQueries) *RoomHandler {
	return &RoomHandler{q: q}
}

// @Summary Room details
// @Description Room details with its slot table for a date (today when omitted)
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.RoomInfoQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}
	date, err := q.DatePtr()
	if err != nil {
		abortBind(c, err)
		return
	}

	view, err := h.q.GetAvailableRoomInfo(c.Request.Context(), id, date)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomAvailabilityView(view))
}

// @Summary Check availability
// @Description Whether the room is free for the whole interval on the date
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start time (HH:MM)"
// @Param end_time query string true "End time (HH:MM)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/availability [get]
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}
	date, start, end, err := q.Parse()
	if err != nil {
		abortBind(c, err)
		return
	}

	available, err := h.q.CheckAvailability(c.Request.Context(), id, date, start, end)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		RoomID:    id,
		Date:      date.String(),
		StartTime: start.String(),
		EndTime:   end.String(),
		Available: available,
	})
}

// @Summary Slot table
// @Description Status of every catalog slot of the room on the date
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SlotTableResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id}/slots [get]
func (h *RoomHandler) SlotStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.SlotStatusQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}
	date, err := q.Parse()
	if err != nil {
		abortBind(c, err)
		return
	}

	slots, err := h.q.GetSlotStatus(c.Request.Context(), id, date)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.SlotTableResponse{
		RoomID: id,
		Date:   date.String(),
		Slots:  resdto.FromSlotStatusViews(slots),
	})
}

// @Summary Search available rooms
// @Description Rooms matching the filters that are free for the interval (the whole opening window when omitted)
// @Tags rooms
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Param start_time query string false "Start time (HH:MM), requires end_time"
// @Param end_time query string false "End time (HH:MM), requires start_time"
// @Param capacity query int false "Minimum capacity"
// @Param features query string false "Feature substring"
// @Param room_type query string false "Room type" Enums(standard, vip)
// @Success 200 {array} resdto.RoomAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/search [get]
func (h *RoomHandler) Search(c *gin.Context) {
	var q reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBind(c, err)
		return
	}
	criteria, err := q.ToCriteria()
	if err != nil {
		abortBind(c, err)
		return
	}

	views, err := h.q.SearchAvailableRooms(c.Request.Context(), criteria)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomAvailabilityViews(views))
}
