package routes

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
	"github.com/gvasquezjhon/granhotel/validation"
)

// POST /api/guests
func CreateGuest(ctx iris.Context) {
	var input validation.GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateGuest(input)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}
	// The blacklist flag is toggled through its own endpoint, never set at
	// creation.
	payload.IsBlacklisted = false

	if conflict := guestConflict(payload, uuid.Nil, ctx); conflict {
		return
	}

	guest := guestFromPayload(payload)
	if err := storage.DB.Create(&guest).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": guest})
}

// GET /api/guests
func GetGuests(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	search := ctx.URLParamDefault("search", "")
	blacklisted := ctx.URLParamDefault("is_blacklisted", "")

	q := storage.DB.Model(&models.Guest{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"lower(first_name) LIKE lower(?) OR lower(last_name) LIKE lower(?) OR lower(email) LIKE lower(?) OR document_number LIKE ?",
			like, like, like, like,
		)
	}
	if blacklisted != "" {
		q = q.Where("is_blacklisted = ?", blacklisted == "true")
	}

	var total int64
	q.Count(&total)

	var guests []models.Guest
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&guests).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, guests, page, perPage, total)
}

// GET /api/guests/:id
func GetGuest(ctx iris.Context) {
	guest, ok := findGuest(ctx)
	if !ok {
		return
	}
	ctx.JSON(iris.Map{"data": guest})
}

// PUT /api/guests/:id
func UpdateGuest(ctx iris.Context) {
	guest, ok := findGuest(ctx)
	if !ok {
		return
	}

	var input validation.GuestInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.CreateError(iris.StatusBadRequest, "Bad Request", "Malformed request body", ctx)
		return
	}

	payload, fieldErrs := validation.ValidateGuest(input)
	if !fieldErrs.Valid() {
		utils.CreateFieldErrors(fieldErrs, ctx)
		return
	}

	if conflict := guestConflict(payload, guest.ID, ctx); conflict {
		return
	}

	applyGuestPayload(guest, payload)
	if err := storage.DB.Save(guest).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	ctx.JSON(iris.Map{"data": guest})
}

// PATCH /api/guests/:id/blacklist { blacklist_status }
func ToggleGuestBlacklist(ctx iris.Context) {
	guest, ok := findGuest(ctx)
	if !ok {
		return
	}

	var body struct {
		BlacklistStatus *bool `json:"blacklist_status" validate:"required"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.BlacklistStatus == nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "blacklist_status required")
		return
	}

	before := *guest
	guest.IsBlacklisted = *body.BlacklistStatus
	if err := storage.DB.Save(guest).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "guest.blacklist", "guest", guest.ID.String(), before, guest)
	ctx.JSON(iris.Map{"data": guest})
}

// findGuest resolves the :id parameter; malformed identifiers surface as
// invalid, unknown ones as not found, without touching any state.
func findGuest(ctx iris.Context) (*models.Guest, bool) {
	id, err := uuid.Parse(ctx.Params().Get("id"))
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid guest id")
		return nil, false
	}
	var guest models.Guest
	if err := storage.DB.First(&guest, "id = ?", id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "guest not found")
		return nil, false
	}
	return &guest, true
}

// guestConflict rejects duplicate email or document numbers, excluding the
// guest being edited.
func guestConflict(payload *validation.GuestPayload, selfID uuid.UUID, ctx iris.Context) bool {
	if payload.Email != nil {
		var count int64
		storage.DB.Model(&models.Guest{}).Where("email = ? AND id <> ?", *payload.Email, selfID).Count(&count)
		if count > 0 {
			utils.JSONError(ctx, http.StatusConflict, "duplicate_email", "A guest with this email already exists")
			return true
		}
	}
	if payload.DocumentNumber != nil {
		var count int64
		storage.DB.Model(&models.Guest{}).Where("document_number = ? AND id <> ?", *payload.DocumentNumber, selfID).Count(&count)
		if count > 0 {
			utils.JSONError(ctx, http.StatusConflict, "duplicate_document", "A guest with this document number already exists")
			return true
		}
	}
	return false
}

func guestFromPayload(p *validation.GuestPayload) models.Guest {
	return models.Guest{
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		DocumentType:         p.DocumentType,
		DocumentNumber:       p.DocumentNumber,
		Email:                p.Email,
		PhoneNumber:          p.PhoneNumber,
		AddressStreet:        p.AddressStreet,
		AddressCity:          p.AddressCity,
		AddressStateProvince: p.AddressStateProvince,
		AddressPostalCode:    p.AddressPostalCode,
		AddressCountry:       p.AddressCountry,
		Nationality:          p.Nationality,
		Preferences:          p.Preferences,
		IsBlacklisted:        p.IsBlacklisted,
	}
}

func applyGuestPayload(g *models.Guest, p *validation.GuestPayload) {
	g.FirstName = p.FirstName
	g.LastName = p.LastName
	g.DocumentType = p.DocumentType
	g.DocumentNumber = p.DocumentNumber
	g.Email = p.Email
	g.PhoneNumber = p.PhoneNumber
	g.AddressStreet = p.AddressStreet
	g.AddressCity = p.AddressCity
	g.AddressStateProvince = p.AddressStateProvince
	g.AddressPostalCode = p.AddressPostalCode
	g.AddressCountry = p.AddressCountry
	g.Nationality = p.Nationality
	g.Preferences = p.Preferences
	g.IsBlacklisted = p.IsBlacklisted
}
