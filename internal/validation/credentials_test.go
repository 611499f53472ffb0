package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogin(t *testing.T) {
	cases := []struct {
		name          string
		email, pass   string
		wantEmail     string
		wantPassword  string
	}{
		{"valid", "user@test.com", "x", "", ""},
		{"empty email", "", "x", MsgInvalidEmail, ""},
		{"missing tld", "user@test", "x", MsgInvalidEmail, ""},
		{"whitespace", "us er@test.com", "x", MsgInvalidEmail, ""},
		{"leading space", " user@test.com", "x", MsgInvalidEmail, ""},
		{"no password", "user@test.com", "", "", MsgPasswordRequired},
		{"both", "nope", "", MsgInvalidEmail, MsgPasswordRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Login(tc.email, tc.pass)
			assert.Equal(t, tc.wantEmail, got.Email)
			assert.Equal(t, tc.wantPassword, got.Password)
		})
	}
}

func TestSignup(t *testing.T) {
	assert.True(t, Signup("a@b.io", "12345678").Empty())

	got := Signup("a@b.io", "1234567")
	assert.Equal(t, MsgPasswordTooShort, got.Password)
	assert.Empty(t, got.Email)

	got = Signup("a@b.io", "")
	assert.Equal(t, MsgPasswordTooShort, got.Password)

	got = Signup("bad", "12345678")
	assert.Equal(t, MsgInvalidEmail, got.Email)
	assert.Empty(t, got.Password)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("first.last@sub.example.org"))
	assert.False(t, ValidEmail("first@last@example"))
	assert.False(t, ValidEmail(""))
}
