package validation

import (
	"encoding/json"
	"testing"

	"github.com/gvasquezjhon/granhotel/models"
)

func validRoomInput() RoomInput {
	return RoomInput{
		Name:       "Suite 1",
		RoomNumber: "101",
		Type:       "Doble",
		Price:      "150,50",
		Status:     "Available",
	}
}

func TestValidateRoomCommaPrice(t *testing.T) {
	payload, errs := ValidateRoom(validRoomInput())
	if !errs.Valid() {
		t.Fatalf("expected valid room, got %v", errs)
	}
	if payload.Price != 150.50 {
		t.Fatalf("expected normalized price 150.50, got %v", payload.Price)
	}
	if payload.Status != models.RoomAvailable {
		t.Fatalf("unexpected status: %v", payload.Status)
	}
}

func TestValidateRoomDotPrice(t *testing.T) {
	in := validRoomInput()
	in.Price = "89.90"
	payload, errs := ValidateRoom(in)
	if !errs.Valid() {
		t.Fatalf("expected valid room, got %v", errs)
	}
	if payload.Price != 89.90 {
		t.Fatalf("expected 89.90, got %v", payload.Price)
	}
}

func TestValidateRoomNumericPriceFromJSON(t *testing.T) {
	var in RoomInput
	body := `{"name":"Suite 1","room_number":"101","type":"Doble","price":120.5,"status":"Available"}`
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	payload, errs := ValidateRoom(in)
	if !errs.Valid() {
		t.Fatalf("expected valid room, got %v", errs)
	}
	if payload.Price != 120.5 {
		t.Fatalf("expected 120.5, got %v", payload.Price)
	}
}

func TestValidateRoomPriceErrorsAreDistinct(t *testing.T) {
	in := validRoomInput()
	in.Price = "abc"
	_, errs := ValidateRoom(in)
	if errs["price"] != "El precio debe ser un número." {
		t.Fatalf("expected non-numeric price error, got %v", errs)
	}

	in.Price = "0"
	_, errs = ValidateRoom(in)
	if errs["price"] != "El precio debe ser mayor que cero." {
		t.Fatalf("expected non-positive price error, got %v", errs)
	}

	in.Price = "-10,00"
	_, errs = ValidateRoom(in)
	if errs["price"] != "El precio debe ser mayor que cero." {
		t.Fatalf("expected non-positive price error, got %v", errs)
	}
}

func TestValidateRoomStatusEnum(t *testing.T) {
	for _, status := range []string{"Available", "Occupied", "Maintenance", "Cleaning"} {
		in := validRoomInput()
		in.Status = status
		if _, errs := ValidateRoom(in); !errs.Valid() {
			t.Fatalf("status %s should be valid, got %v", status, errs)
		}
	}

	in := validRoomInput()
	in.Status = "Ready"
	_, errs := ValidateRoom(in)
	if errs["status"] != "Seleccione un estado válido para la habitación." {
		t.Fatalf("expected status error, got %v", errs)
	}
}

func TestValidateRoomFloor(t *testing.T) {
	// Absent floor is valid and stays absent.
	payload, errs := ValidateRoom(validRoomInput())
	if !errs.Valid() || payload.Floor != nil {
		t.Fatalf("absent floor should be nil, got %v %v", payload.Floor, errs)
	}

	in := validRoomInput()
	in.Floor = "3"
	payload, errs = ValidateRoom(in)
	if !errs.Valid() || payload.Floor == nil || *payload.Floor != 3 {
		t.Fatalf("expected floor 3, got %v %v", payload.Floor, errs)
	}

	// Zero is not "no floor": it is rejected outright.
	in.Floor = "0"
	_, errs = ValidateRoom(in)
	if errs["floor"] != "El piso debe ser un número positivo." {
		t.Fatalf("expected positive-floor error, got %v", errs)
	}

	in.Floor = "two"
	_, errs = ValidateRoom(in)
	if errs["floor"] != "El piso debe ser un número entero." {
		t.Fatalf("expected integer-floor error, got %v", errs)
	}
}

func TestValidateRoomRequiredFields(t *testing.T) {
	in := validRoomInput()
	in.Name = "ab"
	in.RoomNumber = ""
	in.Type = "xy"
	_, errs := ValidateRoom(in)
	if errs["name"] != "El nombre debe tener al menos 3 caracteres." {
		t.Fatalf("expected name error, got %v", errs)
	}
	if errs["room_number"] != "El número de habitación es obligatorio." {
		t.Fatalf("expected room_number error, got %v", errs)
	}
	if errs["type"] != "El tipo de habitación es obligatorio." {
		t.Fatalf("expected type error, got %v", errs)
	}
}

func TestValidateRoomOptionalNormalization(t *testing.T) {
	in := validRoomInput()
	in.Building = ""
	in.Description = ""
	payload, errs := ValidateRoom(in)
	if !errs.Valid() {
		t.Fatalf("expected valid, got %v", errs)
	}
	if payload.Building != nil || payload.Description != nil {
		t.Fatalf("empty optionals should be nil, got %+v", payload)
	}

	in.Building = "Torre A"
	payload, _ = ValidateRoom(in)
	if payload.Building == nil || *payload.Building != "Torre A" {
		t.Fatalf("building not carried: %+v", payload)
	}
}
