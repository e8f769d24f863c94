package routes

import (
	"net/http"
	"strconv"

	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
)

// GET /api/staff
func GetStaff(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.User{})
	if role := ctx.URLParamDefault("role", ""); role != "" {
		parsed, err := models.ParseUserRole(role)
		if err != nil {
			utils.JSONError(ctx, http.StatusBadRequest, "invalid_role", err.Error())
			return
		}
		q = q.Where("role = ?", parsed)
	}
	if active := ctx.URLParamDefault("is_active", ""); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}

	var total int64
	q.Count(&total)

	var staff []models.User
	if err := q.Offset((page - 1) * perPage).Limit(perPage).Order("created_at DESC").Find(&staff).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, staff, page, perPage, total)
}

// GET /api/staff/:id — account details plus the member's recent audited actions
func GetStaffMember(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid staff id")
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "staff member not found")
		return
	}

	var actions []models.AuditLog
	storage.DB.Where("user_id = ?", id).Order("created_at DESC").Limit(50).Find(&actions)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"user":           user,
			"recent_actions": actions,
		},
	})
}

// PATCH /api/staff/:id/active { is_active }
func ToggleStaffActive(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid staff id")
		return
	}

	var body struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.IsActive == nil {
		utils.JSONError(ctx, http.StatusUnprocessableEntity, "invalid_payload", "is_active required")
		return
	}

	var user models.User
	if err := storage.DB.First(&user, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "staff member not found")
		return
	}

	// An admin locking out their own account would strand the console.
	if selfID, ok := ctx.Values().Get("userID").(uint); ok && selfID == user.ID && !*body.IsActive {
		utils.JSONError(ctx, http.StatusConflict, "self_deactivation", "cannot deactivate your own account")
		return
	}

	before := user
	user.IsActive = body.IsActive
	if err := storage.DB.Save(&user).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "staff.active", "user", strconv.FormatUint(uint64(user.ID), 10), before, user)
	ctx.JSON(iris.Map{"data": user})
}
