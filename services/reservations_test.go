package services

import (
	"testing"
	"time"

	"github.com/gvasquezjhon/granhotel/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestNights(t *testing.T) {
	if n := Nights(day("2024-06-10"), day("2024-06-11")); n != 1 {
		t.Fatalf("expected 1 night, got %d", n)
	}
	if n := Nights(day("2024-06-10"), day("2024-06-17")); n != 7 {
		t.Fatalf("expected 7 nights, got %d", n)
	}
}

func TestStayPrice(t *testing.T) {
	room := &models.Room{Price: 150.50}
	got := StayPrice(room, day("2024-06-10"), day("2024-06-12"))
	if got != 301.00 {
		t.Fatalf("expected 301.00, got %v", got)
	}
}
