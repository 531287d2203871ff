//go:build unit

package checkin_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"agora-server/internal/pkg/checkin"
	"agora-server/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec() (*checkin.Codec, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	return checkin.NewCodec("test-secret", clk), clk
}

func TestCodec_RoundTrip(t *testing.T) {
	codec, _ := newTestCodec()
	reservationID := uuid.New()
	venueID := uuid.New()

	token, err := codec.Encode(reservationID, venueID, time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	assert.Equal(t, "1", parts[0])

	payload, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, reservationID, payload.ReservationID)
	assert.Equal(t, venueID, payload.VenueID)
}

func TestCodec_DefaultTTL(t *testing.T) {
	codec, clk := newTestCodec()

	token, err := codec.Encode(uuid.New(), uuid.New(), 0)
	require.NoError(t, err)

	payload, err := codec.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(checkin.DefaultTTL).Unix(), payload.ExpiresAt)
}

func TestCodec_FormatInvalid(t *testing.T) {
	codec, _ := newTestCodec()

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separators", "notatoken"},
		{"two parts", "1.body"},
		{"four parts", "1.a.b.c"},
		{"wrong version", "2.body.sig"},
		{"missing version", ".body.sig"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Decode(tt.token)
			assert.ErrorIs(t, err, checkin.ErrFormatInvalid)
		})
	}
}

func TestCodec_SignatureInvalid(t *testing.T) {
	codec, clk := newTestCodec()

	token, err := codec.Encode(uuid.New(), uuid.New(), time.Hour)
	require.NoError(t, err)

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(token, ".")
		raw, err := base64.RawURLEncoding.DecodeString(parts[1])
		require.NoError(t, err)

		tampered := strings.Replace(string(raw), "exp", "Exp", 1)
		parts[1] = base64.RawURLEncoding.EncodeToString([]byte(tampered))

		_, err = codec.Decode(strings.Join(parts, "."))
		assert.ErrorIs(t, err, checkin.ErrSignatureInvalid)
	})

	t.Run("tampered signature", func(t *testing.T) {
		_, err := codec.Decode(token + "x")
		assert.ErrorIs(t, err, checkin.ErrSignatureInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := checkin.NewCodec("another-secret", clk)
		_, err := other.Decode(token)
		assert.ErrorIs(t, err, checkin.ErrSignatureInvalid)
	})
}

func TestCodec_PayloadInvalid(t *testing.T) {
	codec, _ := newTestCodec()

	t.Run("zero reservation id", func(t *testing.T) {
		token, err := codec.Encode(uuid.Nil, uuid.New(), time.Hour)
		require.NoError(t, err)
		_, err = codec.Decode(token)
		assert.ErrorIs(t, err, checkin.ErrPayloadInvalid)
	})

	t.Run("zero venue id", func(t *testing.T) {
		token, err := codec.Encode(uuid.New(), uuid.Nil, time.Hour)
		require.NoError(t, err)
		_, err = codec.Decode(token)
		assert.ErrorIs(t, err, checkin.ErrPayloadInvalid)
	})
}

func TestCodec_Expiry(t *testing.T) {
	codec, clk := newTestCodec()

	token, err := codec.Encode(uuid.New(), uuid.New(), time.Hour)
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		clk.Advance(time.Hour)
		_, err := codec.Decode(token)
		assert.NoError(t, err)
	})

	t.Run("expired one second past", func(t *testing.T) {
		clk.Advance(time.Second)
		_, err := codec.Decode(token)
		assert.ErrorIs(t, err, checkin.ErrExpired)
	})
}
