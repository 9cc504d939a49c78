package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *User
		want bool
	}{
		{name: "nil user", user: nil, want: false},
		{name: "no role", user: &User{Email: "a@x.com"}, want: false},
		{name: "admin", user: &User{Role: RoleAdmin}, want: true},
		{name: "other string", user: &User{Role: "member"}, want: false},
		{name: "numeric role", user: &User{Role: int32(1)}, want: false},
		{name: "boolean role", user: &User{Role: true}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.IsAdmin())
		})
	}
}
