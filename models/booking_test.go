package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingValidate(t *testing.T) {
	b := &Booking{
		EventID: primitive.NewObjectID(),
		Email:   "  Alice@Example.COM ",
	}
	require.NoError(t, b.Validate())
	assert.Equal(t, "alice@example.com", b.Email, "email is trimmed and lowercased")
}

func TestBookingValidateRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		booking Booking
	}{
		{"missing event id", Booking{Email: "a@b.co"}},
		{"missing email", Booking{EventID: primitive.NewObjectID()}},
		{"no at sign", Booking{EventID: primitive.NewObjectID(), Email: "nope"}},
		{"no domain dot", Booking{EventID: primitive.NewObjectID(), Email: "a@b"}},
		{"whitespace in address", Booking{EventID: primitive.NewObjectID(), Email: "a b@c.co"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := tc.booking
			assert.Error(t, b.Validate())
		})
	}
}
