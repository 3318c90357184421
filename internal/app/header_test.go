package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
)

func TestBuildHeader_Wishlist(t *testing.T) {
	tr := i18n.New(i18n.EN)
	user := &api.User{ID: 7, DisplayName: "Alice", TgUsername: api.StrPtr("alice")}
	own := &api.Wishlist{ID: 1, Title: "Birthday", Wishes: []api.Wish{{ID: 1}, {ID: 2}}}

	h := BuildHeader(tr, HeaderInput{Tab: TabWishlist, User: user, OwnWishlist: own, SubscriptionCount: 3})
	assert.Equal(t, "@alice's wishlist", h.Title)
	assert.Equal(t, "Birthday", h.Subtitle)
	assert.Equal(t, []string{"2 wishes", "3 following"}, h.Metrics)
	assert.Equal(t, HeaderActionAdd, h.Action)

	loading := BuildHeader(tr, HeaderInput{
		Tab:               TabWishlist,
		User:              user,
		OwnWishlist:       own,
		Wishlist:          externalWishlist("bob", nil),
		SubscriptionCount: 3,
	})
	assert.Equal(t, "@bob's wishlist", loading.Title)
	assert.Empty(t, loading.Subtitle)
	assert.Equal(t, []string{"0 wishes"}, loading.Metrics, "following count is shown only for the own wishlist")
	assert.Equal(t, HeaderActionBackToMine, loading.Action)
}

func TestBuildHeader_NoHandle(t *testing.T) {
	h := BuildHeader(i18n.New(i18n.EN), HeaderInput{Tab: TabWishlist, User: &api.User{ID: 7}})
	assert.Equal(t, "My wishlist", h.Title)
}

func TestBuildHeader_Profile(t *testing.T) {
	tr := i18n.New(i18n.EN)
	user := &api.User{ID: 7, DisplayName: "Alice"}

	self := BuildHeader(tr, HeaderInput{Tab: TabProfile, User: user})
	assert.Equal(t, "Alice", self.Title)
	assert.Equal(t, "Your public card", self.Subtitle)

	external := BuildHeader(tr, HeaderInput{Tab: TabProfile, User: user, Profile: externalProfile("bob", nil)})
	assert.Equal(t, "@bob", external.Title)
	assert.Equal(t, "Viewing @bob", external.Subtitle)

	loaded := BuildHeader(tr, HeaderInput{
		Tab:     TabProfile,
		User:    user,
		Profile: externalProfile("bob", &api.PublicUser{DisplayName: "Bob B."}),
	})
	assert.Equal(t, "Bob B.", loaded.Title)
}
