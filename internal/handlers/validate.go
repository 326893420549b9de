package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validationMessage maps the first struct validation error to the single
// user-facing message the API returns. Input validation is the only way
// a generation request fails; everything downstream degrades instead.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request."
	}

	fe := verrs[0]
	switch fe.Field() {
	case "Description":
		if fe.Tag() == "required" {
			return "Description is required."
		}
		return "Description is too long (max 2000 characters)."
	case "WebsiteName":
		if fe.Tag() == "required" {
			return "Website name is required."
		}
		return "Website name is too long (max 120 characters)."
	case "Provider":
		return "Provider must be \"primary\", \"secondary\", or \"auto\"."
	case "Industry":
		return "Industry key is too long (max 60 characters)."
	case "Variation":
		return "Variation name is too long (max 60 characters)."
	case "Style":
		return "Style is too long (max 120 characters)."
	}
	return fmt.Sprintf("Field %s is invalid.", fe.Field())
}
