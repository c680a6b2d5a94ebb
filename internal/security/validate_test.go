package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmailValid(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.NoError(t, ValidateEmail("test.user+tag@subdomain.example.com"))
	assert.NoError(t, ValidateEmail("name123@test.co.uk"))
}

func TestValidateEmailInvalid(t *testing.T) {
	cases := []string{"", "invalid", "@example.com", "user@", "user@domain", "user name@example.com"}
	for _, c := range cases {
		assert.Error(t, ValidateEmail(c), "expected %q to be invalid", c)
	}
}

func TestValidatePasswordValid(t *testing.T) {
	for _, p := range []string{"MyP@ssw0rd", "Secure#Pass123", "C0mpl3x!Pass"} {
		missing, tooShort, err := ValidatePassword(p)
		assert.NoError(t, err)
		assert.False(t, tooShort)
		assert.Empty(t, missing)
	}
}

func TestValidatePasswordTooShort(t *testing.T) {
	_, tooShort, err := ValidatePassword("Sh0rt!")
	assert.Error(t, err)
	assert.True(t, tooShort)
}

func TestValidatePasswordMissingEach(t *testing.T) {
	missing, _, err := ValidatePassword("myp@ssw0rd")
	assert.Error(t, err)
	assert.Contains(t, missing, "uppercase letter")

	missing, _, err = ValidatePassword("MYP@SSW0RD")
	assert.Error(t, err)
	assert.Contains(t, missing, "lowercase letter")

	missing, _, err = ValidatePassword("MyP@ssword")
	assert.Error(t, err)
	assert.Contains(t, missing, "digit")

	missing, _, err = ValidatePassword("MyPassw0rd")
	assert.Error(t, err)
	assert.Contains(t, missing, "special character")
}

func TestValidatePasswordMultipleMissing(t *testing.T) {
	missing, _, err := ValidatePassword("password")
	assert.Error(t, err)
	assert.GreaterOrEqual(t, len(missing), 2)
}
