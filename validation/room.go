package validation

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gvasquezjhon/granhotel/models"
)

// RoomInput is the raw room form. Price and floor are FlexString because the
// console submits them either as numbers or as text ("150,50").
type RoomInput struct {
	RoomNumber  string     `json:"room_number"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	Price       FlexString `json:"price"`
	Status      string     `json:"status"`
	Floor       FlexString `json:"floor"`
	Building    string     `json:"building"`
	Description string     `json:"description"`
}

type RoomPayload struct {
	RoomNumber  string
	Name        string
	Type        string
	Price       float64
	Status      models.RoomStatus
	Floor       *int
	Building    *string
	Description *string
}

// ValidateRoom checks a candidate room record. The comma-or-dot price text is
// normalized to a float; an absent floor stays absent rather than becoming 0.
func ValidateRoom(in RoomInput) (*RoomPayload, FieldErrors) {
	errs := FieldErrors{}

	if utf8.RuneCountInString(in.Name) < 3 {
		errs.Add("name", "El nombre debe tener al menos 3 caracteres.")
	} else if utf8.RuneCountInString(in.Name) > 100 {
		errs.Add("name", "El nombre no puede exceder los 100 caracteres.")
	}
	if in.RoomNumber == "" {
		errs.Add("room_number", "El número de habitación es obligatorio.")
	} else if utf8.RuneCountInString(in.RoomNumber) > 10 {
		errs.Add("room_number", "El número no puede exceder los 10 caracteres.")
	}
	if utf8.RuneCountInString(in.Type) < 3 {
		errs.Add("type", "El tipo de habitación es obligatorio.")
	} else if utf8.RuneCountInString(in.Type) > 50 {
		errs.Add("type", "El tipo no puede exceder los 50 caracteres.")
	}

	var price float64
	priceText := strings.ReplaceAll(string(in.Price), ",", ".")
	if priceText == "" {
		errs.Add("price", "El precio debe ser un número.")
	} else if p, err := strconv.ParseFloat(priceText, 64); err != nil {
		errs.Add("price", "El precio debe ser un número.")
	} else if p <= 0 {
		errs.Add("price", "El precio debe ser mayor que cero.")
	} else {
		price = p
	}

	var status models.RoomStatus
	if s, err := models.ParseRoomStatus(in.Status); err != nil {
		errs.Add("status", "Seleccione un estado válido para la habitación.")
	} else {
		status = s
	}

	var floor *int
	if in.Floor != "" {
		f, err := strconv.Atoi(string(in.Floor))
		if err != nil {
			errs.Add("floor", "El piso debe ser un número entero.")
		} else if f <= 0 {
			errs.Add("floor", "El piso debe ser un número positivo.")
		} else {
			floor = &f
		}
	}

	if utf8.RuneCountInString(in.Building) > 50 {
		errs.Add("building", "Edificio no puede exceder 50 caracteres.")
	}
	if utf8.RuneCountInString(in.Description) > 500 {
		errs.Add("description", "Descripción no puede exceder 500 caracteres.")
	}

	if !errs.Valid() {
		return nil, errs
	}

	return &RoomPayload{
		RoomNumber:  in.RoomNumber,
		Name:        in.Name,
		Type:        in.Type,
		Price:       price,
		Status:      status,
		Floor:       floor,
		Building:    opt(in.Building),
		Description: opt(in.Description),
	}, errs
}
