package validation

import (
	"reflect"
	"testing"
)

func validGuestInput() GuestInput {
	return GuestInput{
		FirstName: "Juan",
		LastName:  "Pérez",
	}
}

func TestValidateGuestMinimal(t *testing.T) {
	payload, errs := ValidateGuest(validGuestInput())
	if !errs.Valid() {
		t.Fatalf("expected valid guest, got errors: %v", errs)
	}
	if payload.FirstName != "Juan" || payload.LastName != "Pérez" {
		t.Fatalf("unexpected payload names: %+v", payload)
	}
	if payload.Email != nil || payload.PhoneNumber != nil || payload.DocumentType != nil {
		t.Fatalf("absent optionals should normalize to nil: %+v", payload)
	}
	if payload.AddressCountry == nil || *payload.AddressCountry != "Perú" {
		t.Fatalf("expected default country Perú, got %v", payload.AddressCountry)
	}
	if payload.Nationality == nil || *payload.Nationality != "Peruana" {
		t.Fatalf("expected default nationality Peruana, got %v", payload.Nationality)
	}
	if payload.IsBlacklisted {
		t.Fatal("blacklist flag should default to false")
	}
}

func TestValidateGuestNameLengths(t *testing.T) {
	in := validGuestInput()
	in.FirstName = "J"
	_, errs := ValidateGuest(in)
	if errs["first_name"] != "El nombre debe tener al menos 2 caracteres." {
		t.Fatalf("expected short-name error, got %v", errs)
	}

	in = validGuestInput()
	in.LastName = ""
	_, errs = ValidateGuest(in)
	if _, ok := errs["last_name"]; !ok {
		t.Fatalf("expected last_name error, got %v", errs)
	}
}

func TestValidateGuestEmailFormat(t *testing.T) {
	in := validGuestInput()
	in.Email = "not-an-email"
	_, errs := ValidateGuest(in)
	if errs["email"] != "Correo electrónico inválido." {
		t.Fatalf("expected email format error, got %v", errs)
	}

	in.Email = "juan.perez@example.com"
	payload, errs := ValidateGuest(in)
	if !errs.Valid() {
		t.Fatalf("expected valid email, got %v", errs)
	}
	if payload.Email == nil || *payload.Email != "juan.perez@example.com" {
		t.Fatalf("email not carried into payload: %+v", payload)
	}
}

func TestValidateGuestDocumentBothOrNone(t *testing.T) {
	// Type without number: the error lands on the missing number.
	in := validGuestInput()
	in.DocumentType = "PASSPORT"
	_, errs := ValidateGuest(in)
	if errs["document_number"] != "El número de documento es obligatorio si se selecciona un tipo de documento." {
		t.Fatalf("expected document_number error, got %v", errs)
	}
	if _, ok := errs["document_type"]; ok {
		t.Fatalf("document_type should not carry an error here: %v", errs)
	}

	// Number without type: the error lands on the missing type.
	in = validGuestInput()
	in.DocumentNumber = "X123456"
	_, errs = ValidateGuest(in)
	if errs["document_type"] != "Seleccione un tipo de documento si ingresa un número." {
		t.Fatalf("expected document_type error, got %v", errs)
	}
	if _, ok := errs["document_number"]; ok {
		t.Fatalf("document_number should not carry an error here: %v", errs)
	}
}

func TestValidateGuestDNILength(t *testing.T) {
	in := validGuestInput()
	in.DocumentType = "DNI"
	in.DocumentNumber = "1234567" // 7 digits
	_, errs := ValidateGuest(in)
	if errs["document_number"] != "DNI debe tener 8 dígitos." {
		t.Fatalf("expected DNI length error, got %v", errs)
	}

	in.DocumentNumber = "12345678"
	payload, errs := ValidateGuest(in)
	if !errs.Valid() {
		t.Fatalf("expected valid DNI, got %v", errs)
	}
	if payload.DocumentType == nil || string(*payload.DocumentType) != "DNI" {
		t.Fatalf("document type not carried: %+v", payload)
	}
}

func TestValidateGuestRUCLength(t *testing.T) {
	in := validGuestInput()
	in.DocumentType = "RUC"
	in.DocumentNumber = "123456789" // 9 digits
	_, errs := ValidateGuest(in)
	if errs["document_number"] != "RUC debe tener 11 dígitos." {
		t.Fatalf("expected RUC length error, got %v", errs)
	}

	in.DocumentNumber = "12345678901"
	if _, errs := ValidateGuest(in); !errs.Valid() {
		t.Fatalf("expected valid RUC, got %v", errs)
	}
}

func TestValidateGuestPassportNoLengthRule(t *testing.T) {
	in := validGuestInput()
	in.DocumentType = "PASSPORT"
	in.DocumentNumber = "AB1"
	if _, errs := ValidateGuest(in); !errs.Valid() {
		t.Fatalf("passport numbers carry no length rule, got %v", errs)
	}
	in.DocumentType = "CE"
	if _, errs := ValidateGuest(in); !errs.Valid() {
		t.Fatalf("CE numbers carry no length rule, got %v", errs)
	}
}

func TestValidateGuestUnknownDocumentType(t *testing.T) {
	in := validGuestInput()
	in.DocumentType = "LICENSE"
	in.DocumentNumber = "12345678"
	_, errs := ValidateGuest(in)
	if errs["document_type"] != "Seleccione un tipo de documento válido." {
		t.Fatalf("expected unknown-type error, got %v", errs)
	}
}

func TestValidateGuestLengthCaps(t *testing.T) {
	long := func(n int) string {
		b := make([]byte, n)
		for i := range b {
			b[i] = 'a'
		}
		return string(b)
	}

	in := validGuestInput()
	in.PhoneNumber = long(31)
	in.AddressStreet = long(201)
	in.AddressCity = long(101)
	in.Preferences = long(501)
	_, errs := ValidateGuest(in)
	for _, field := range []string{"phone_number", "address_street", "address_city", "preferences"} {
		if _, ok := errs[field]; !ok {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
}

func TestValidateGuestIdempotent(t *testing.T) {
	in := validGuestInput()
	in.Email = "juan@example.com"
	first, errs1 := ValidateGuest(in)
	second, errs2 := ValidateGuest(in)
	if !errs1.Valid() || !errs2.Valid() {
		t.Fatalf("expected both passes valid: %v %v", errs1, errs2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated validation produced different payloads: %+v vs %+v", first, second)
	}
}
