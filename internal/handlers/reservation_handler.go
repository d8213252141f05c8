package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reservation-api/internal/dto"
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/httpresp"
	reservationuc "github.com/BruksfildServices01/reservation-api/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	create *reservationuc.CreateReservation
	list   *reservationuc.ListReservations
	update *reservationuc.UpdateReservation
	cancel *reservationuc.CancelReservation
}

func NewReservationHandler(
	create *reservationuc.CreateReservation,
	list *reservationuc.ListReservations,
	update *reservationuc.UpdateReservation,
	cancel *reservationuc.CancelReservation,
) *ReservationHandler {
	return &ReservationHandler{
		create: create,
		list:   list,
		update: update,
		cancel: cancel,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	RestaurantID uint      `json:"restaurantId" binding:"required,gt=0"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	Phone        string    `json:"phone" binding:"required,phone"`
	GuestCount   int       `json:"guestCount" binding:"required,gt=0,max=100"`
	MenuIDs      []uint    `json:"menuIds" binding:"required,min=1,unique,dive,gt=0"`
}

type UpdateReservationRequest struct {
	GuestCount *int   `json:"guestCount" binding:"omitempty,gt=0,max=100"`
	MenuIDs    []uint `json:"menuIds" binding:"omitempty,min=1,unique,dive,gt=0"`
}

type ListReservationsQuery struct {
	Phone         string `form:"phone" binding:"omitempty,max=20"`
	Date          string `form:"date"`
	MinGuestCount *int   `form:"minGuestCount" binding:"omitempty,gt=0"`
	MenuName      string `form:"menuName" binding:"omitempty,max=200"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), actor, reservationuc.CreateReservationInput{
		RestaurantID: req.RestaurantID,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Phone:        req.Phone,
		GuestCount:   req.GuestCount,
		MenuIDs:      req.MenuIDs,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.Created(c, httpresp.MsgReservationCreated, dto.NewReservationDTO(res))
}

// ======================================================
// LIST
// ======================================================

// List serves both /reservations/customer and /reservations/restaurant;
// the route's role guard decides which, the principal decides the scope.
func (h *ReservationHandler) List(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	var q ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindFailed(c, err)
		return
	}

	rs, err := h.list.Execute(c.Request.Context(), actor, reservationuc.ListReservationsInput{
		Phone:         q.Phone,
		Date:          q.Date,
		MinGuestCount: q.MinGuestCount,
		MenuName:      q.MenuName,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.List(c, httpresp.MsgReservationList, dto.NewReservationList(rs))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err)
		return
	}

	res, err := h.update.Execute(c.Request.Context(), actor, id, reservationuc.UpdateReservationInput{
		GuestCount: req.GuestCount,
		MenuIDs:    req.MenuIDs,
	})
	if err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, httpresp.MsgReservationUpdated, dto.NewReservationDTO(res))
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Delete(c *gin.Context) {
	actor, ok := principal(c)
	if !ok {
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), actor, id); err != nil {
		httperr.Write(c, err)
		return
	}

	httpresp.OK(c, httpresp.MsgReservationCancelled, nil)
}
