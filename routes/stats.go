package routes

import (
	"time"

	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
)

type statusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// GET /api/stats
func GetStats(ctx iris.Context) {
	var totalGuests, blacklistedGuests int64
	storage.DB.Model(&models.Guest{}).Count(&totalGuests)
	storage.DB.Model(&models.Guest{}).Where("is_blacklisted = ?", true).Count(&blacklistedGuests)

	var roomsByStatus []statusCount
	storage.DB.Model(&models.Room{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&roomsByStatus)

	var reservationsByStatus []statusCount
	storage.DB.Model(&models.Reservation{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&reservationsByStatus)

	today := time.Now().Format("2006-01-02")
	var arrivalsToday, departuresToday int64
	storage.DB.Model(&models.Reservation{}).
		Where("check_in_date = ? AND status = ?", today, models.ReservationConfirmed).
		Count(&arrivalsToday)
	storage.DB.Model(&models.Reservation{}).
		Where("check_out_date = ? AND status = ?", today, models.ReservationCheckedIn).
		Count(&departuresToday)

	since7 := time.Now().AddDate(0, 0, -7)
	since30 := time.Now().AddDate(0, 0, -30)
	var newReservations7, newReservations30 int64
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since7).Count(&newReservations7)
	storage.DB.Model(&models.Reservation{}).Where("created_at >= ?", since30).Count(&newReservations30)

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"total_guests":           totalGuests,
			"blacklisted_guests":     blacklistedGuests,
			"rooms_by_status":        roomsByStatus,
			"reservations_by_status": reservationsByStatus,
			"arrivals_today":         arrivalsToday,
			"departures_today":       departuresToday,
			"new_reservations_7d":    newReservations7,
			"new_reservations_30d":   newReservations30,
		},
	})
}

// GET /api/stats/activity
func GetActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs})
}
