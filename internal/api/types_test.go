package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestResolveHandle_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		tg       *string
		custom   *string
		username string
		id       int64
		want     string
	}{
		{"platform wins", ptr("tg"), ptr("custom"), "generic", 7, "tg"},
		{"custom next", nil, ptr("custom"), "generic", 7, "custom"},
		{"empty platform skipped", ptr(""), ptr("custom"), "generic", 7, "custom"},
		{"generic next", nil, nil, "generic", 7, "generic"},
		{"id fallback", nil, nil, "", 7, "7"},
		{"nothing", nil, ptr(""), "", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveHandle(tt.tg, tt.custom, tt.username, tt.id))
		})
	}
}

func TestUser_Handles(t *testing.T) {
	u := &User{ID: 5, Username: "gen", CustomUsername: ptr("cust")}
	assert.Equal(t, "cust", u.Handle())
	assert.Equal(t, []string{"cust", "gen"}, u.SelfHandles())
	assert.True(t, u.HasHandle("gen"))
	assert.False(t, u.HasHandle("5"))

	var nilUser *User
	assert.Equal(t, "", nilUser.Handle())
	assert.Nil(t, nilUser.Public())

	anon := &User{ID: 9}
	assert.Equal(t, "9", anon.Handle())
	assert.Equal(t, "", anon.DisplayHandle())
}

func TestUser_Public(t *testing.T) {
	u := &User{ID: 1, DisplayName: "Ann", Username: "", TgUsername: ptr("ann_tg"), Bio: ptr("hi")}
	pub := u.Public()
	require.NotNil(t, pub)
	assert.Equal(t, "ann_tg", pub.Username)
	assert.Equal(t, "hi", Str(pub.Bio))
}

func TestWishPatch_OmitsUnset(t *testing.T) {
	status := StatusGifted
	raw, err := json.Marshal(WishPatch{Status: &status})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"gifted"}`, string(raw))
}
