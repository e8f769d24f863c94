package routes

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/services"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
	"github.com/gvasquezjhon/granhotel/validation"
)

// POST /api/reservations
func CreateReservation(ctx iris.Context) {
	var input validation.ReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateReservation(input, validation.ModeCreate)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}

	var guest models.Guest
	if err := storage.DB.First(&guest, "id = ?", payload.GuestID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
		return
	}
	if guest.IsBlacklisted {
		utils.JSONError(ctx, http.StatusForbidden, "guest_blacklisted", "Guest is blacklisted and cannot book")
		return
	}

	var room models.Room
	if err := storage.DB.First(&room, payload.RoomID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}

	available, err := services.IsRoomAvailable(room.ID, payload.CheckInDate, payload.CheckOutDate, 0)
	if err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	if !available {
		utils.JSONError(ctx, http.StatusConflict, "room_unavailable", "Room is not available for the selected dates")
		return
	}

	totalPrice := services.StayPrice(&room, payload.CheckInDate, payload.CheckOutDate)

	reservation := models.Reservation{
		GuestID:         payload.GuestID,
		RoomID:          payload.RoomID,
		CheckInDate:     payload.CheckInDate,
		CheckOutDate:    payload.CheckOutDate,
		ReservationDate: time.Now(),
		Status:          payload.Status,
		TotalPrice:      &totalPrice,
		Notes:           payload.Notes,
	}
	if err := storage.DB.Create(&reservation).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	storage.DB.Preload("Guest").Preload("Room").First(&reservation, reservation.ID)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": &reservation})
}

// GET /api/reservations
func GetReservations(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	guestID := ctx.URLParamDefault("guest_id", "")
	roomID := ctx.URLParamDefault("room_id", "")
	dateFrom := ctx.URLParamDefault("date_from", "")
	dateTo := ctx.URLParamDefault("date_to", "")

	q := storage.DB.Model(&models.Reservation{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if guestID != "" {
		q = q.Where("guest_id = ?", guestID)
	}
	if roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	// date_from/date_to select reservations whose stay overlaps the window.
	if dateFrom != "" {
		if t, err := time.Parse("2006-01-02", dateFrom); err == nil {
			q = q.Where("check_out_date > ?", t)
		}
	}
	if dateTo != "" {
		if t, err := time.Parse("2006-01-02", dateTo); err == nil {
			q = q.Where("check_in_date < ?", t)
		}
	}

	var total int64
	q.Count(&total)

	var items []models.Reservation
	if err := q.Preload("Guest").Preload("Room").Offset((page - 1) * perPage).Limit(perPage).Order("check_in_date DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// GET /api/reservations/:id
func GetReservation(ctx iris.Context) {
	reservation, ok := findReservation(ctx, true)
	if !ok {
		return
	}
	ctx.JSON(iris.Map{"data": reservation})
}

// PUT /api/reservations/:id
func UpdateReservation(ctx iris.Context) {
	reservation, ok := findReservation(ctx, false)
	if !ok {
		return
	}

	if !validation.CanEdit(reservation.Status) {
		utils.JSONError(ctx, http.StatusConflict, "reservation_terminal", "Cancelled or checked-out reservations cannot be edited")
		return
	}

	var input validation.ReservationInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateReservation(input, validation.ModeEdit)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}

	if !validation.CanTransition(reservation.Status, payload.Status) && payload.Status != reservation.Status {
		utils.JSONError(ctx, http.StatusConflict, "invalid_transition", "Status change not permitted from "+string(reservation.Status))
		return
	}

	// Reassigning the reservation to another guest goes through the same
	// guards as a new booking.
	if payload.GuestID != reservation.GuestID {
		var guest models.Guest
		if err := storage.DB.First(&guest, "id = ?", payload.GuestID).Error; err != nil {
			utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
			return
		}
		if guest.IsBlacklisted {
			utils.JSONError(ctx, http.StatusForbidden, "guest_blacklisted", "Guest is blacklisted and cannot book")
			return
		}
	}

	stayChanged := payload.RoomID != reservation.RoomID ||
		!payload.CheckInDate.Equal(reservation.CheckInDate) ||
		!payload.CheckOutDate.Equal(reservation.CheckOutDate)

	var room models.Room
	if err := storage.DB.First(&room, payload.RoomID).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return
	}

	if stayChanged {
		available, err := services.IsRoomAvailable(payload.RoomID, payload.CheckInDate, payload.CheckOutDate, reservation.ID)
		if err != nil {
			utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
			return
		}
		if !available {
			utils.JSONError(ctx, http.StatusConflict, "room_unavailable", "Room is not available for the new dates")
			return
		}
	}

	reservation.GuestID = payload.GuestID
	reservation.RoomID = payload.RoomID
	reservation.CheckInDate = payload.CheckInDate
	reservation.CheckOutDate = payload.CheckOutDate
	reservation.Status = payload.Status
	reservation.Notes = payload.Notes
	if stayChanged {
		totalPrice := services.StayPrice(&room, payload.CheckInDate, payload.CheckOutDate)
		reservation.TotalPrice = &totalPrice
	}

	if err := storage.DB.Save(reservation).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	storage.DB.Preload("Guest").Preload("Room").First(reservation, reservation.ID)
	ctx.JSON(iris.Map{"data": reservation})
}

// PATCH /api/reservations/:id/status { status }
func UpdateReservationStatus(ctx iris.Context) {
	reservation, ok := findReservation(ctx, false)
	if !ok {
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.Status == "" {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "status required")
		return
	}

	newStatus, err := models.ParseReservationStatus(body.Status)
	if err != nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", err.Error())
		return
	}
	// CHECKED_OUT is reached through the checkout action only.
	if newStatus == models.ReservationCheckedOut {
		utils.JSONError(ctx, http.StatusConflict, "invalid_transition", "Use the checkout action to check a guest out")
		return
	}
	if !validation.CanTransition(reservation.Status, newStatus) {
		utils.JSONError(ctx, http.StatusConflict, "invalid_transition", "Status change not permitted from "+string(reservation.Status))
		return
	}

	before := *reservation
	reservation.Status = newStatus
	if err := storage.DB.Save(reservation).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "reservation.status_update", "reservation", strconv.FormatUint(uint64(reservation.ID), 10), before, reservation)
	ctx.JSON(iris.Map{"data": reservation})
}

// POST /api/reservations/:id/cancel
func CancelReservation(ctx iris.Context) {
	reservation, ok := findReservation(ctx, false)
	if !ok {
		return
	}

	if !validation.CanCancel(reservation.Status) {
		utils.JSONError(ctx, http.StatusConflict, "not_cancellable", "Reservation in status "+string(reservation.Status)+" cannot be cancelled")
		return
	}

	before := *reservation
	reservation.Status = models.ReservationCancelled
	if err := storage.DB.Save(reservation).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "reservation.cancel", "reservation", strconv.FormatUint(uint64(reservation.ID), 10), before, reservation)
	ctx.JSON(iris.Map{"data": reservation})
}

// POST /api/reservations/:id/checkout
func CheckoutReservation(ctx iris.Context) {
	reservation, ok := findReservation(ctx, false)
	if !ok {
		return
	}

	if reservation.Status != models.ReservationCheckedIn {
		utils.JSONError(ctx, http.StatusConflict, "not_checked_in", "Only checked-in reservations can be checked out")
		return
	}

	before := *reservation
	reservation.Status = models.ReservationCheckedOut
	if err := storage.DB.Save(reservation).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	// Hand the room over to housekeeping.
	storage.DB.Model(&models.Room{}).Where("id = ?", reservation.RoomID).
		Update("status", models.RoomCleaning)

	utils.Audit(ctx, "reservation.checkout", "reservation", strconv.FormatUint(uint64(reservation.ID), 10), before, reservation)
	ctx.JSON(iris.Map{"data": reservation})
}

func findReservation(ctx iris.Context, preload bool) (*models.Reservation, bool) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid reservation id")
		return nil, false
	}
	var reservation models.Reservation
	q := storage.DB
	if preload {
		q = q.Preload("Guest").Preload("Room")
	}
	if err := q.First(&reservation, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "reservation not found")
		return nil, false
	}
	return &reservation, true
}
