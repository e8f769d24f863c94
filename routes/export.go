package routes

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/gvasquezjhon/granhotel/models"
	"github.com/gvasquezjhon/granhotel/storage"
	"github.com/gvasquezjhon/granhotel/utils"
)

// GET /api/reservations/export — same filters as the list endpoint, CSV out.
func ExportReservations(ctx iris.Context) {
	q := storage.DB.Model(&models.Reservation{}).Preload("Guest").Preload("Room")

	if status := ctx.URLParamDefault("status", ""); status != "" {
		parsed, err := models.ParseReservationStatus(status)
		if err != nil {
			utils.JSONError(ctx, http.StatusBadRequest, "invalid_status", err.Error())
			return
		}
		q = q.Where("status = ?", parsed)
	}
	// date_from/date_to select stays overlapping the window; malformed values
	// are dropped, as in the list endpoint.
	if from := ctx.URLParamDefault("date_from", ""); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("check_out_date > ?", t)
		}
	}
	if to := ctx.URLParamDefault("date_to", ""); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("check_in_date < ?", t)
		}
	}

	var reservations []models.Reservation
	if err := q.Order("check_in_date DESC").Find(&reservations).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	filename := "reservations-" + time.Now().Format("20060102-150405") + ".csv"
	ctx.ContentType("text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	w := csv.NewWriter(ctx.ResponseWriter())
	w.Write([]string{
		"id", "guest", "document", "room", "check_in", "check_out",
		"status", "total_price", "reserved_at",
	})
	for i := range reservations {
		r := &reservations[i]
		guestName, document := "", ""
		if r.Guest != nil {
			guestName = r.Guest.FirstName + " " + r.Guest.LastName
			if r.Guest.DocumentNumber != nil {
				document = *r.Guest.DocumentNumber
			}
		}
		roomNumber := ""
		if r.Room != nil {
			roomNumber = r.Room.RoomNumber
		}
		price := ""
		if r.TotalPrice != nil {
			price = fmt.Sprintf("%.2f", *r.TotalPrice)
		}
		w.Write([]string{
			fmt.Sprintf("%d", r.ID),
			guestName,
			document,
			roomNumber,
			r.CheckInDate.Format("2006-01-02"),
			r.CheckOutDate.Format("2006-01-02"),
			string(r.Status),
			price,
			r.ReservationDate.Format(time.RFC3339),
		})
	}
	w.Flush()
}
