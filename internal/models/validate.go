package models

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var contactNumberPattern = regexp.MustCompile(`^[\d\s\-\+\(\)]+$`)

// nowFn is a test seam for "today" in the birthday check.
var nowFn = time.Now

// Validate checks the draft against the entry field rules and returns a
// validation.Errors map keyed by field name on failure. The check is local
// and synchronous; an invalid draft must never reach a backing store.
func (d EntryDraft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name,
			validation.Required.Error("Name is required"),
			validation.Length(2, 0).Error("Name must be at least 2 characters"),
		),
		validation.Field(&d.Nickname,
			validation.Required.Error("Nickname is required"),
			validation.Length(2, 0).Error("Nickname must be at least 2 characters"),
		),
		validation.Field(&d.Birthday,
			validation.Required.Error("Birthday is required"),
			validation.By(birthdayNotInFuture),
		),
		validation.Field(&d.ContactNumber,
			validation.Required.Error("Contact number is required"),
			validation.Match(contactNumberPattern).Error("Invalid contact number format"),
		),
		validation.Field(&d.About,
			validation.Required.Error("About yourself is required"),
			validation.Length(10, 0).Error("About yourself must be at least 10 characters"),
		),
		validation.Field(&d.Message,
			validation.Required.Error("Message is required"),
			validation.Length(5, 0).Error("Message must be at least 5 characters"),
		),
	)
}

func birthdayNotInFuture(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required already covers the empty case
	}
	t, err := ParseDate(s)
	if err != nil {
		return validation.NewError("validation_birthday_format", "Invalid date format")
	}
	if t.After(nowFn()) {
		return validation.NewError("validation_birthday_future", "Birthday cannot be in the future")
	}
	return nil
}
