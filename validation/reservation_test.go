package validation

import (
	"reflect"
	"testing"

	"github.com/gvasquezjhon/granhotel/models"
)

const testGuestID = "6f1c7e2a-8b3d-4c5e-9f0a-1b2c3d4e5f6a"

func validReservationInput() ReservationInput {
	return ReservationInput{
		GuestID:      testGuestID,
		RoomID:       "5",
		CheckInDate:  "2024-06-10",
		CheckOutDate: "2024-06-12",
		Status:       "PENDING",
	}
}

func TestValidateReservationOK(t *testing.T) {
	payload, errs := ValidateReservation(validReservationInput(), ModeCreate)
	if !errs.Valid() {
		t.Fatalf("expected valid reservation, got %v", errs)
	}
	if payload.RoomID != 5 {
		t.Fatalf("expected room id 5, got %d", payload.RoomID)
	}
	if payload.GuestID.String() != testGuestID {
		t.Fatalf("guest id mismatch: %s", payload.GuestID)
	}
	if payload.CheckInDate.Format("2006-01-02") != "2024-06-10" {
		t.Fatalf("check-in parsed wrong: %v", payload.CheckInDate)
	}
	if payload.Status != models.ReservationPending {
		t.Fatalf("unexpected status: %v", payload.Status)
	}
}

func TestValidateReservationMinimumStay(t *testing.T) {
	in := validReservationInput()
	in.CheckOutDate = in.CheckInDate // same-day turnaround
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["check_out_date"] != "La estadía mínima es de 1 noche." {
		t.Fatalf("expected minimum-stay error on check_out_date, got %v", errs)
	}
	if _, ok := errs["check_in_date"]; ok {
		t.Fatalf("error belongs to check_out_date, got %v", errs)
	}
}

func TestValidateReservationOutBeforeIn(t *testing.T) {
	in := validReservationInput()
	in.CheckInDate = "2024-06-12"
	in.CheckOutDate = "2024-06-10"
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["check_out_date"] != "Fecha de Check-out debe ser posterior a la fecha de Check-in." {
		t.Fatalf("expected ordering error, got %v", errs)
	}
}

func TestValidateReservationOneNightIsEnough(t *testing.T) {
	in := validReservationInput()
	in.CheckOutDate = "2024-06-11"
	if _, errs := ValidateReservation(in, ModeCreate); !errs.Valid() {
		t.Fatalf("one night should satisfy the minimum stay, got %v", errs)
	}
}

func TestValidateReservationDateShape(t *testing.T) {
	in := validReservationInput()
	in.CheckInDate = ""
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["check_in_date"] != "Fecha de Check-in es requerida (YYYY-MM-DD)." {
		t.Fatalf("expected required-date error, got %v", errs)
	}

	in = validReservationInput()
	in.CheckOutDate = "12/06/2024"
	_, errs = ValidateReservation(in, ModeCreate)
	if errs["check_out_date"] != "Formato de Check-out debe ser YYYY-MM-DD." {
		t.Fatalf("expected format error, got %v", errs)
	}
}

func TestValidateReservationGuestID(t *testing.T) {
	in := validReservationInput()
	in.GuestID = "not-a-uuid"
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["guest_id"] != "ID de huésped debe ser un UUID válido." {
		t.Fatalf("expected uuid error, got %v", errs)
	}
}

func TestValidateReservationRoomID(t *testing.T) {
	in := validReservationInput()
	in.RoomID = ""
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["room_id"] != "ID de habitación es requerido." {
		t.Fatalf("expected required error, got %v", errs)
	}

	in.RoomID = "five"
	_, errs = ValidateReservation(in, ModeCreate)
	if errs["room_id"] != "ID de habitación debe ser un número entero." {
		t.Fatalf("expected integer error, got %v", errs)
	}

	in.RoomID = "0"
	_, errs = ValidateReservation(in, ModeCreate)
	if errs["room_id"] != "ID de habitación debe ser positivo." {
		t.Fatalf("expected positive error, got %v", errs)
	}
}

func TestValidateReservationCreateStatusSubset(t *testing.T) {
	for _, status := range []string{"PENDING", "CONFIRMED"} {
		in := validReservationInput()
		in.Status = status
		if _, errs := ValidateReservation(in, ModeCreate); !errs.Valid() {
			t.Fatalf("status %s should be creatable, got %v", status, errs)
		}
	}
	for _, status := range []string{"CHECKED_IN", "CHECKED_OUT", "CANCELLED", "NO_SHOW", "WAITLIST"} {
		in := validReservationInput()
		in.Status = status
		_, errs := ValidateReservation(in, ModeCreate)
		if _, ok := errs["status"]; !ok {
			t.Fatalf("status %s must be rejected at creation, got %v", status, errs)
		}
	}
}

func TestValidateReservationEditStatusSubset(t *testing.T) {
	for _, status := range []string{"PENDING", "CONFIRMED", "CHECKED_IN", "NO_SHOW", "CANCELLED", "WAITLIST"} {
		in := validReservationInput()
		in.Status = status
		if _, errs := ValidateReservation(in, ModeEdit); !errs.Valid() {
			t.Fatalf("status %s should be editable, got %v", status, errs)
		}
	}
	// CHECKED_OUT only ever comes from the checkout action.
	in := validReservationInput()
	in.Status = "CHECKED_OUT"
	_, errs := ValidateReservation(in, ModeEdit)
	if _, ok := errs["status"]; !ok {
		t.Fatalf("CHECKED_OUT must not be assignable through edit, got %v", errs)
	}
}

func TestValidateReservationDefaultStatusOnCreate(t *testing.T) {
	in := validReservationInput()
	in.Status = ""
	payload, errs := ValidateReservation(in, ModeCreate)
	if !errs.Valid() {
		t.Fatalf("expected valid, got %v", errs)
	}
	if payload.Status != models.ReservationPending {
		t.Fatalf("empty status should default to PENDING, got %v", payload.Status)
	}

	// Edit mode has no default: an empty status is an error.
	if _, errs := ValidateReservation(in, ModeEdit); errs.Valid() {
		t.Fatal("empty status should be rejected in edit mode")
	}
}

func TestValidateReservationNotes(t *testing.T) {
	in := validReservationInput()
	long := make([]byte, 501)
	for i := range long {
		long[i] = 'n'
	}
	in.Notes = string(long)
	_, errs := ValidateReservation(in, ModeCreate)
	if errs["notes"] != "Notas no deben exceder 500 caracteres." {
		t.Fatalf("expected notes error, got %v", errs)
	}

	in.Notes = "Vista al mar"
	payload, errs := ValidateReservation(in, ModeCreate)
	if !errs.Valid() || payload.Notes == nil || *payload.Notes != "Vista al mar" {
		t.Fatalf("notes not carried: %v %v", payload, errs)
	}
}

func TestValidateReservationIdempotent(t *testing.T) {
	in := validReservationInput()
	first, errs1 := ValidateReservation(in, ModeCreate)
	second, errs2 := ValidateReservation(in, ModeCreate)
	if !errs1.Valid() || !errs2.Valid() {
		t.Fatalf("expected both passes valid: %v %v", errs1, errs2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated validation differed: %+v vs %+v", first, second)
	}

	bad := validReservationInput()
	bad.CheckOutDate = bad.CheckInDate
	_, badErrs1 := ValidateReservation(bad, ModeCreate)
	_, badErrs2 := ValidateReservation(bad, ModeCreate)
	if !reflect.DeepEqual(badErrs1, badErrs2) {
		t.Fatalf("repeated validation produced different error sets: %v vs %v", badErrs1, badErrs2)
	}
}
