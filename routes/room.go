package routes

import (
	"net/http"
	"strconv"

	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
	"github.com/gvasquezjhon/granhotel/validation"
)

// POST /api/rooms
func CreateRoom(ctx iris.Context) {
	var input validation.RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateRoom(input)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.Room{}).Where("room_number = ?", payload.RoomNumber).Count(&count)
	if count > 0 {
		utils.JSONError(ctx, http.StatusConflict, "duplicate_room_number", "A room with this number already exists")
		return
	}

	room := models.Room{
		RoomNumber:  payload.RoomNumber,
		Name:        payload.Name,
		Type:        payload.Type,
		Price:       payload.Price,
		Status:      payload.Status,
		Floor:       payload.Floor,
		Building:    payload.Building,
		Description: payload.Description,
	}
	if err := storage.DB.Create(&room).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": room})
}

// GET /api/rooms
func GetRooms(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	floor := ctx.URLParamDefault("floor", "")

	q := storage.DB.Model(&models.Room{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if floor != "" {
		if f, err := strconv.Atoi(floor); err == nil {
			q = q.Where("floor = ?", f)
		}
	}

	var total int64
	q.Count(&total)

	var rooms []models.Room
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("room_number ASC").Find(&rooms).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, rooms, page, perPage, total)
}

// GET /api/rooms/:id
func GetRoom(ctx iris.Context) {
	room, ok := findRoom(ctx)
	if !ok {
		return
	}
	ctx.JSON(iris.Map{"data": room})
}

// PUT /api/rooms/:id
func UpdateRoom(ctx iris.Context) {
	room, ok := findRoom(ctx)
	if !ok {
		return
	}

	var input validation.RoomInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateRoom(input)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}

	var count int64
	storage.DB.Model(&models.Room{}).Where("room_number = ? AND id <> ?", payload.RoomNumber, room.ID).Count(&count)
	if count > 0 {
		utils.JSONError(ctx, http.StatusConflict, "duplicate_room_number", "A room with this number already exists")
		return
	}

	room.RoomNumber = payload.RoomNumber
	room.Name = payload.Name
	room.Type = payload.Type
	room.Price = payload.Price
	room.Status = payload.Status
	room.Floor = payload.Floor
	room.Building = payload.Building
	room.Description = payload.Description

	if err := storage.DB.Save(room).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(iris.Map{"data": room})
}

// DELETE /api/rooms/:id
func DeleteRoom(ctx iris.Context) {
	room, ok := findRoom(ctx)
	if !ok {
		return
	}

	// Rooms referenced by a live reservation cannot disappear underneath it.
	var active int64
	storage.DB.Model(&models.Reservation{}).
		Where("room_id = ?", room.ID).
		Where("status NOT IN ?", []models.ReservationStatus{
			models.ReservationCancelled,
			models.ReservationCheckedOut,
		}).
		Count(&active)
	if active > 0 {
		utils.JSONError(ctx, http.StatusConflict, "room_in_use", "Room has active reservations and cannot be deleted")
		return
	}

	before := *room
	if err := storage.DB.Delete(room).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "room.delete", "room", strconv.FormatUint(uint64(room.ID), 10), before, nil)
	ctx.StatusCode(iris.StatusNoContent)
}

func findRoom(ctx iris.Context) (*models.Room, bool) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid room id")
		return nil, false
	}
	var room models.Room
	if err := storage.DB.First(&room, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "room not found")
		return nil, false
	}
	return &room, true
}
