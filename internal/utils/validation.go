package utils

import (
	"errors"
	"regexp"
	"time"

	"eldview.openfreight.org/internal/models"
)

// Allow alphanumeric, underscore, hyphen, dot - common in trip and log IDs
var validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// ValidateID validates that an ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format. Log sheets are
// addressed by date, so an empty value is rejected.
func ValidateDate(date string) error {
	if date == "" {
		return errors.New("date cannot be empty")
	}

	_, err := time.Parse(models.LogDateLayout, date)
	if err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}
