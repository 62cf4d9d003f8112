package auth

import (
	"testing"

	"bastion/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("S3curePass!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "S3curePass!", hash)

	assert.True(t, hasher.Check("S3curePass!", hash))
	assert.False(t, hasher.Check("wrong-password", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("S3curePass!")
	require.NoError(t, err)
	second, err := hasher.Hash("S3curePass!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidateStrength_DefaultPolicy(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.Error(t, hasher.ValidateStrength("short1"))
	assert.Error(t, hasher.ValidateStrength("nodigitshere"))
	assert.NoError(t, hasher.ValidateStrength("longenough1"))
}

func TestBcryptHasher_ValidateStrength_FullPolicy(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        10,
			MaxLength:        64,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	cases := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"meets all requirements", "Str0ng!Password", false},
		{"too short", "Str0ng!Pw", true},
		{"no uppercase", "str0ng!password", true},
		{"no lowercase", "STR0NG!PASSWORD", true},
		{"no digit", "Strong!Password", true},
		{"no special", "Str0ngPassword", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := hasher.ValidateStrength(tc.password)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
