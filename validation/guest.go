package validation

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/gvasquezjhon/granhotel/models"
)

var validate = validator.New()

// GuestInput is the raw guest form as submitted by the console. Optional
// fields arrive as empty strings; normalization to null happens in the
// returned payload.
type GuestInput struct {
	FirstName            string `json:"first_name"`
	LastName             string `json:"last_name"`
	DocumentType         string `json:"document_type"`
	DocumentNumber       string `json:"document_number"`
	Email                string `json:"email"`
	PhoneNumber          string `json:"phone_number"`
	AddressStreet        string `json:"address_street"`
	AddressCity          string `json:"address_city"`
	AddressStateProvince string `json:"address_state_province"`
	AddressPostalCode    string `json:"address_postal_code"`
	AddressCountry       string `json:"address_country"`
	Nationality          string `json:"nationality"`
	Preferences          string `json:"preferences"`
	IsBlacklisted        bool   `json:"is_blacklisted"`
}

// GuestPayload is the normalized record handed to persistence: optionals are
// nil when absent, country/nationality fall back to the Peruvian defaults.
type GuestPayload struct {
	FirstName            string
	LastName             string
	DocumentType         *models.DocumentType
	DocumentNumber       *string
	Email                *string
	PhoneNumber          *string
	AddressStreet        *string
	AddressCity          *string
	AddressStateProvince *string
	AddressPostalCode    *string
	AddressCountry       *string
	Nationality          *string
	Preferences          *string
	IsBlacklisted        bool
}

// ValidateGuest checks a candidate guest record and, when valid, returns the
// normalized payload. When invalid the payload is nil and every offending
// field carries its message.
func ValidateGuest(in GuestInput) (*GuestPayload, FieldErrors) {
	errs := FieldErrors{}

	if utf8.RuneCountInString(in.FirstName) < 2 {
		errs.Add("first_name", "El nombre debe tener al menos 2 caracteres.")
	} else if utf8.RuneCountInString(in.FirstName) > 100 {
		errs.Add("first_name", "El nombre no puede exceder los 100 caracteres.")
	}
	if utf8.RuneCountInString(in.LastName) < 2 {
		errs.Add("last_name", "El apellido debe tener al menos 2 caracteres.")
	} else if utf8.RuneCountInString(in.LastName) > 100 {
		errs.Add("last_name", "El apellido no puede exceder los 100 caracteres.")
	}

	if in.Email != "" {
		if err := validate.Var(in.Email, "email"); err != nil {
			errs.Add("email", "Correo electrónico inválido.")
		}
	}
	if utf8.RuneCountInString(in.PhoneNumber) > 30 {
		errs.Add("phone_number", "Teléfono no puede exceder los 30 caracteres.")
	}

	var docType *models.DocumentType
	if in.DocumentType != "" {
		dt, err := models.ParseDocumentType(in.DocumentType)
		if err != nil {
			errs.Add("document_type", "Seleccione un tipo de documento válido.")
		} else {
			docType = &dt
		}
	}
	if utf8.RuneCountInString(in.DocumentNumber) > 20 {
		errs.Add("document_number", "Número de documento no puede exceder los 20 caracteres.")
	}

	// Both-or-none: the error lands on the missing counterpart so the user is
	// steered to the field that needs filling in.
	if docType != nil && in.DocumentNumber == "" {
		errs.Add("document_number", "El número de documento es obligatorio si se selecciona un tipo de documento.")
	}
	if in.DocumentType == "" && in.DocumentNumber != "" {
		errs.Add("document_type", "Seleccione un tipo de documento si ingresa un número.")
	}
	if docType != nil && in.DocumentNumber != "" {
		if *docType == models.DocumentDNI && utf8.RuneCountInString(in.DocumentNumber) != 8 {
			errs.Add("document_number", "DNI debe tener 8 dígitos.")
		}
		if *docType == models.DocumentRUC && utf8.RuneCountInString(in.DocumentNumber) != 11 {
			errs.Add("document_number", "RUC debe tener 11 dígitos.")
		}
		// PASSPORT and CE carry no client-side length rule.
	}

	if utf8.RuneCountInString(in.AddressStreet) > 200 {
		errs.Add("address_street", "Dirección no puede exceder los 200 caracteres.")
	}
	if utf8.RuneCountInString(in.AddressCity) > 100 {
		errs.Add("address_city", "Ciudad no puede exceder los 100 caracteres.")
	}
	if utf8.RuneCountInString(in.AddressStateProvince) > 100 {
		errs.Add("address_state_province", "Región/Provincia no puede exceder los 100 caracteres.")
	}
	if utf8.RuneCountInString(in.AddressPostalCode) > 20 {
		errs.Add("address_postal_code", "Código postal no puede exceder los 20 caracteres.")
	}
	if utf8.RuneCountInString(in.AddressCountry) > 100 {
		errs.Add("address_country", "País no puede exceder los 100 caracteres.")
	}
	if utf8.RuneCountInString(in.Nationality) > 100 {
		errs.Add("nationality", "Nacionalidad no puede exceder los 100 caracteres.")
	}
	if utf8.RuneCountInString(in.Preferences) > 500 {
		errs.Add("preferences", "Preferencias no pueden exceder los 500 caracteres.")
	}

	if !errs.Valid() {
		return nil, errs
	}

	return &GuestPayload{
		FirstName:            in.FirstName,
		LastName:             in.LastName,
		DocumentType:         docType,
		DocumentNumber:       opt(in.DocumentNumber),
		Email:                opt(in.Email),
		PhoneNumber:          opt(in.PhoneNumber),
		AddressStreet:        opt(in.AddressStreet),
		AddressCity:          opt(in.AddressCity),
		AddressStateProvince: opt(in.AddressStateProvince),
		AddressPostalCode:    opt(in.AddressPostalCode),
		AddressCountry:       optDefault(in.AddressCountry, "Perú"),
		Nationality:          optDefault(in.Nationality, "Peruana"),
		Preferences:          opt(in.Preferences),
		IsBlacklisted:        in.IsBlacklisted,
	}, errs
}
