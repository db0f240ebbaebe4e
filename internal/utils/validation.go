package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	otpPattern    = regexp.MustCompile(`^[0-9]{4,6}$`)
	namePattern   = regexp.MustCompile(`^[a-zA-Z0-9\s\-_'&.]+$`)
	urlPattern    = regexp.MustCompile(`^https?://[a-zA-Z0-9\-\.]+(?::[0-9]+)?(?:/.*)?$`)
)

// ValidateRequired validates that a string is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateMobileNumber validates a 10-digit mobile number
func ValidateMobileNumber(mobile string) error {
	if err := ValidateRequired(mobile, "mobile number"); err != nil {
		return err
	}

	if !mobilePattern.MatchString(mobile) {
		return fmt.Errorf("invalid mobile number (expected 10 digits)")
	}

	return nil
}

// ValidateOTP validates a one-time password
func ValidateOTP(otp string) error {
	if err := ValidateRequired(otp, "OTP"); err != nil {
		return err
	}

	if !otpPattern.MatchString(otp) {
		return fmt.Errorf("invalid OTP (expected 4-6 digits)")
	}

	return nil
}

// ValidateName validates a name field
func ValidateName(name, fieldName string) error {
	if err := ValidateRequired(name, fieldName); err != nil {
		return err
	}

	if len(name) > 255 {
		return fmt.Errorf("%s must be less than 255 characters", fieldName)
	}

	if !namePattern.MatchString(name) {
		return fmt.Errorf("%s contains invalid characters", fieldName)
	}

	return nil
}

// ValidateURL validates a URL
func ValidateURL(url string) error {
	if err := ValidateRequired(url, "URL"); err != nil {
		return err
	}

	if !urlPattern.MatchString(url) {
		return fmt.Errorf("invalid URL format")
	}

	return nil
}

// ValidatePrice validates a price string and returns the parsed amount
func ValidatePrice(price string) (decimal.Decimal, error) {
	if err := ValidateRequired(price, "price"); err != nil {
		return decimal.Zero, err
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price format")
	}

	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("price must not be negative")
	}

	return amount, nil
}

// ValidateDate validates a YYYY-MM-DD date string
func ValidateDate(date, fieldName string) error {
	if err := ValidateRequired(date, fieldName); err != nil {
		return err
	}

	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("%s must use YYYY-MM-DD format", fieldName)
	}

	return nil
}
