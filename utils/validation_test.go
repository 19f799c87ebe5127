package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	ok, _ := ValidateEmail("user@example.com")
	assert.True(t, ok)

	ok, msg := ValidateEmail("")
	assert.False(t, ok)
	assert.Equal(t, "Email is required", msg)

	ok, _ = ValidateEmail("not-an-email")
	assert.False(t, ok)
}

func TestValidateMobile(t *testing.T) {
	ok, _ := ValidateMobile("+919876543210")
	assert.True(t, ok)

	ok, _ = ValidateMobile("9876543210")
	assert.True(t, ok)

	ok, _ = ValidateMobile("12ab")
	assert.False(t, ok)

	ok, _ = ValidateMobile("")
	assert.False(t, ok)
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("S3curePass")
	assert.True(t, ok)

	cases := map[string]string{
		"short":        "Sh0rt",
		"no lowercase": "ALLCAPS123",
		"no uppercase": "alllower123",
		"no number":    "NoNumbersHere",
	}
	for name, password := range cases {
		ok, msg := ValidatePassword(password)
		assert.False(t, ok, name)
		assert.NotEmpty(t, msg, name)
	}
}

func TestValidateCouponCode(t *testing.T) {
	ok, _ := ValidateCouponCode("SAVE10")
	assert.True(t, ok)

	ok, _ = ValidateCouponCode("SUMMER_2025-X")
	assert.True(t, ok)

	ok, _ = ValidateCouponCode("ab")
	assert.False(t, ok, "lowercase and too short")

	ok, _ = ValidateCouponCode("")
	assert.False(t, ok)
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SAVE10", NormalizeCouponCode("  save10 "))
	assert.Equal(t, "SAVE10", NormalizeCouponCode("Save10"))
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello World"))
	assert.Equal(t, "some-product-name", Slugify("  Some Product, Name!  "))
	assert.Equal(t, "a-b", Slugify("A---B"))
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "hello", SanitizeString("<script>hello</script>"))
	assert.NotContains(t, SanitizeString(`<img src="x">`), "<")
}
