package handlers

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Bangladeshi mobile numbers: optional +88/88 country code, then 01 and an
// operator digit 3-9 followed by eight digits.
var bdPhonePattern = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)

func isValidBDPhone(phone string) bool {
	return bdPhonePattern.MatchString(phone)
}

// RegisterValidations wires the custom rules into gin's binding validator.
// Call once at startup, before the router handles traffic.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("bdphone", func(fl validator.FieldLevel) bool {
			return isValidBDPhone(fl.Field().String())
		})
	}
}

// isAllowedDeliveryDate reports whether date falls on one of the enabled
// weekdays. An empty enabled set rejects every date.
func isAllowedDeliveryDate(date time.Time, enabledDays []time.Weekday) bool {
	for _, day := range enabledDays {
		if date.Weekday() == day {
			return true
		}
	}
	return false
}
