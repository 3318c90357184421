package app

import "wishfox-tui/internal/api"

// WishlistView что показывает вкладка вишлиста: свой (нулевое значение)
// или чужой вишлист. Wishlist равен nil, пока идет загрузка.
type WishlistView struct {
	External bool
	Handle   string
	Owner    *api.PublicUser
	Wishlist *api.Wishlist
}

// externalWishlist чужой вишлист с предварительным владельцем
func externalWishlist(handle string, owner *api.PublicUser) WishlistView {
	return WishlistView{External: true, Handle: handle, Owner: owner}
}

// Showing открыт ли сейчас вишлист handle
func (v WishlistView) Showing(handle string) bool {
	return v.External && v.Handle == handle
}

// ProfileView что показывает вкладка профиля, независимо от вишлиста.
// User равен nil, пока идет загрузка.
type ProfileView struct {
	External bool
	Handle   string
	User     *api.PublicUser
}

// externalProfile чужой профиль
func externalProfile(handle string, user *api.PublicUser) ProfileView {
	return ProfileView{External: true, Handle: handle, User: user}
}

// Showing открыт ли сейчас профиль handle
func (v ProfileView) Showing(handle string) bool {
	return v.External && v.Handle == handle
}
