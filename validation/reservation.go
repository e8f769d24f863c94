package validation

import (
	"math"
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"

	"github.com/gvasquezjhon/granhotel/models"
)

// Mode distinguishes the creation form from the edit form; the selectable
// status subsets differ between the two.
type Mode int

const (
	ModeCreate Mode = iota
	ModeEdit
)

var dateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ReservationInput is the raw reservation form.
type ReservationInput struct {
	GuestID      string     `json:"guest_id"`
	RoomID       FlexString `json:"room_id"`
	CheckInDate  string     `json:"check_in_date"`
	CheckOutDate string     `json:"check_out_date"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
}

type ReservationPayload struct {
	GuestID      uuid.UUID
	RoomID       uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	Status       models.ReservationStatus
	Notes        *string
}

// parseFormDate appends a fixed midnight time before parsing so a bare
// calendar date never shifts across a timezone boundary.
func parseFormDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02T15:04:05", s+"T00:00:00")
}

// ValidateReservation checks a candidate reservation against the form rules
// and the status subset selectable for the given mode. An empty status at
// creation defaults to PENDING, mirroring the backend default.
func ValidateReservation(in ReservationInput, mode Mode) (*ReservationPayload, FieldErrors) {
	errs := FieldErrors{}

	guestID, err := uuid.Parse(in.GuestID)
	if err != nil {
		errs.Add("guest_id", "ID de huésped debe ser un UUID válido.")
	}

	var roomID uint
	if in.RoomID == "" {
		errs.Add("room_id", "ID de habitación es requerido.")
	} else if n, err := strconv.Atoi(string(in.RoomID)); err != nil {
		errs.Add("room_id", "ID de habitación debe ser un número entero.")
	} else if n <= 0 {
		errs.Add("room_id", "ID de habitación debe ser positivo.")
	} else {
		roomID = uint(n)
	}

	checkDateField := func(field, label, value string) bool {
		if len(value) < 10 {
			errs.Add(field, "Fecha de "+label+" es requerida (YYYY-MM-DD).")
			return false
		}
		if !dateShape.MatchString(value) {
			errs.Add(field, "Formato de "+label+" debe ser YYYY-MM-DD.")
			return false
		}
		return true
	}
	inOK := checkDateField("check_in_date", "Check-in", in.CheckInDate)
	outOK := checkDateField("check_out_date", "Check-out", in.CheckOutDate)

	var checkIn, checkOut time.Time
	if inOK && outOK {
		var inErr, outErr error
		checkIn, inErr = parseFormDate(in.CheckInDate)
		checkOut, outErr = parseFormDate(in.CheckOutDate)
		if inErr != nil || outErr != nil {
			errs.Add("check_in_date", "Fechas inválidas.")
		} else {
			if checkOut.Before(checkIn) {
				errs.Add("check_out_date", "Fecha de Check-out debe ser posterior a la fecha de Check-in.")
			}
			// Day-granularity difference, rounded up: a same-day turnaround is
			// not a stay.
			days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
			if days < 1 {
				errs.Add("check_out_date", "La estadía mínima es de 1 noche.")
			}
		}
	}

	status := models.ReservationPending
	if in.Status == "" {
		if mode == ModeEdit {
			errs.Add("status", "Seleccione un estado válido.")
		}
	} else if s, err := models.ParseReservationStatus(in.Status); err != nil {
		errs.Add("status", "Seleccione un estado válido.")
	} else {
		allowed := CreatableStatuses()
		if mode == ModeEdit {
			allowed = EditableStatuses()
		}
		if !slices.Contains(allowed, s) {
			errs.Add("status", "Seleccione un estado válido.")
		} else {
			status = s
		}
	}

	if utf8.RuneCountInString(in.Notes) > 500 {
		errs.Add("notes", "Notas no deben exceder 500 caracteres.")
	}

	if !errs.Valid() {
		return nil, errs
	}

	return &ReservationPayload{
		GuestID:      guestID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
		Notes:        opt(in.Notes),
	}, errs
}
