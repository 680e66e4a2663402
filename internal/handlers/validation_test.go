package handlers

import (
	"testing"
	"time"
)

func TestBDPhoneAcceptsValidNumbers(t *testing.T) {
	valid := []string{
		"01712345678",
		"01313456789",
		"01987654321",
		"8801712345678",
		"+8801712345678",
	}
	for _, phone := range valid {
		if !isValidBDPhone(phone) {
			t.Errorf("expected %q to be valid", phone)
		}
	}
}

func TestBDPhoneRejectsInvalidNumbers(t *testing.T) {
	invalid := []string{
		"",
		"0171234567",     // too short
		"017123456789",   // too long
		"01212345678",    // operator digit 2
		"02712345678",    // not a mobile prefix
		"+8701712345678", // wrong country code
		"phone",
		"০১৭১২৩৪৫৬৭৮", // Bengali digits are not accepted on the wire
	}
	for _, phone := range invalid {
		if isValidBDPhone(phone) {
			t.Errorf("expected %q to be invalid", phone)
		}
	}
}

func TestIsAllowedDeliveryDate(t *testing.T) {
	friday := time.Date(2025, time.June, 6, 0, 0, 0, 0, time.UTC)
	if friday.Weekday() != time.Friday {
		t.Fatal("fixture is not a Friday")
	}

	enabled := []time.Weekday{time.Friday}
	if !isAllowedDeliveryDate(friday, enabled) {
		t.Error("expected Friday to be allowed")
	}

	for offset := 1; offset <= 6; offset++ {
		other := friday.AddDate(0, 0, offset)
		if isAllowedDeliveryDate(other, enabled) {
			t.Errorf("expected %s to be rejected", other.Weekday())
		}
	}
}

func TestIsAllowedDeliveryDateEmptySchedule(t *testing.T) {
	if isAllowedDeliveryDate(time.Now(), nil) {
		t.Error("expected rejection when no delivery day is enabled")
	}
}
