package utils

import (
	"html"
	"regexp"
	"strings"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	mobileRegex = regexp.MustCompile(`^\+?[1-9]\d{7,14}$`)
	codeRegex   = regexp.MustCompile(`^[A-Z0-9_-]{3,50}$`)
	// Password validation regex patterns
	hasLower  = regexp.MustCompile(`[a-z]`)
	hasUpper  = regexp.MustCompile(`[A-Z]`)
	hasNumber = regexp.MustCompile(`[0-9]`)

	slugStrip    = regexp.MustCompile(`[^a-z0-9]+`)
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)
)

// ValidateEmail checks basic email shape.
func ValidateEmail(email string) (bool, string) {
	if email == "" {
		return false, "Email is required"
	}
	if !emailRegex.MatchString(email) {
		return false, "Invalid email format"
	}
	return true, ""
}

// ValidateMobile checks a mobile number in international or local form.
func ValidateMobile(mobile string) (bool, string) {
	if mobile == "" {
		return false, "Mobile number is required"
	}
	if !mobileRegex.MatchString(mobile) {
		return false, "Invalid mobile number format"
	}
	return true, ""
}

// ValidatePassword enforces the minimum password policy.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	if !hasLower.MatchString(password) {
		return false, "Password must contain at least one lowercase letter"
	}
	if !hasUpper.MatchString(password) {
		return false, "Password must contain at least one uppercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password must contain at least one number"
	}
	return true, ""
}

// ValidateName checks a person or display name.
func ValidateName(name string) (bool, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, "Name is required"
	}
	if len(name) < 2 || len(name) > 100 {
		return false, "Name must be between 2 and 100 characters"
	}
	return true, ""
}

// ValidateCouponCode checks an already upper-cased coupon code.
func ValidateCouponCode(code string) (bool, string) {
	if code == "" {
		return false, "Coupon code is required"
	}
	if !codeRegex.MatchString(code) {
		return false, "Coupon code may only contain letters, numbers, hyphens and underscores"
	}
	return true, ""
}

// NormalizeCouponCode upper-cases and trims a submitted coupon code.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Slugify derives a URL slug from a title.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SanitizeString escapes HTML special characters and strips tags.
func SanitizeString(input string) string {
	sanitized := htmlTagRegex.ReplaceAllString(input, "")
	return html.EscapeString(sanitized)
}
