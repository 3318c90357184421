package screens

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/ui/styles"
	"wishfox-tui/internal/wishlist"
)

func testEnv() *Env {
	return &Env{
		T:     i18n.New(i18n.EN),
		Theme: styles.NewTheme(platform.ResolvePalette(platform.SchemeDark, platform.ThemeParams{})),
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+up":
		return tea.KeyMsg{Type: tea.KeyShiftUp}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// msgOf выполняет команду-намерение. Команды ввода (мигание курсора) не нужны.
func msgOf(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(time.Second):
		t.Fatal("command did not finish")
		return nil
	}
}

func sampleWishes() []api.Wish {
	return []api.Wish{
		{ID: 1, Title: "Bike", Priority: api.PriorityHigh, Status: api.StatusPlanned, Position: 0},
		{ID: 2, Title: "Book", Priority: api.PriorityLow, Status: api.StatusOrdered, Position: 1},
		{ID: 3, Title: "Lamp", Priority: api.PriorityMedium, Status: api.StatusPlanned, Position: 2},
	}
}

func TestWishlistScreen_ReorderEmitsRenumberedOrder(t *testing.T) {
	ws := NewWishlistScreen(testEnv())
	ws.SetData(WishlistData{Wishes: sampleWishes(), Own: true})

	_, cmd := ws.Update(key("shift+down"))
	msg, ok := msgOf(t, cmd).(ReorderWishesMsg)
	require.True(t, ok)

	ids := []int64{}
	for i, w := range msg.Ordered {
		ids = append(ids, w.ID)
		assert.Equal(t, i, w.Position)
	}
	assert.Equal(t, []int64{2, 1, 3}, ids)
	assert.Equal(t, 1, ws.Cursor())
	assert.Equal(t, int64(1), ws.Visible()[1].ID)
}

func TestWishlistScreen_ReorderLockedByFilter(t *testing.T) {
	ws := NewWishlistScreen(testEnv())
	ws.SetData(WishlistData{Wishes: sampleWishes(), Own: true})

	ws.Update(key("p"))
	assert.Equal(t, api.PriorityLow, ws.Filters().Priority)
	require.Len(t, ws.Visible(), 1)

	_, cmd := ws.Update(key("shift+up"))
	toast, ok := msgOf(t, cmd).(ShowToastMsg)
	require.True(t, ok)
	assert.Equal(t, "Clear filters to reorder", toast.Text)

	ws.Update(key("x"))
	assert.False(t, ws.Filters().Active())
	assert.Len(t, ws.Visible(), 3)
}

func TestWishlistScreen_ExternalIsReadOnly(t *testing.T) {
	ws := NewWishlistScreen(testEnv())
	ws.SetData(WishlistData{Wishes: sampleWishes(), Own: false, Handle: "bob"})

	_, cmd := ws.Update(key("enter"))
	assert.Nil(t, cmd)
	_, cmd = ws.Update(key(" "))
	assert.Nil(t, cmd)
	_, cmd = ws.Update(key("shift+down"))
	assert.Nil(t, cmd)

	_, cmd = ws.Update(key("b"))
	assert.IsType(t, BackToMyWishlistMsg{}, msgOf(t, cmd))
}

func TestWishlistScreen_SearchCapturesKeys(t *testing.T) {
	ws := NewWishlistScreen(testEnv())
	ws.SetData(WishlistData{Wishes: sampleWishes(), Own: true})

	ws.Update(key("/"))
	assert.True(t, ws.Capturing())
	ws.Update(key("lam"))
	require.Len(t, ws.Visible(), 1)
	assert.Equal(t, "Lamp", ws.Visible()[0].Title)

	ws.Update(key("enter"))
	assert.False(t, ws.Capturing())
}

func TestFeedScreen_OpensActorWishlistAndProfile(t *testing.T) {
	fs := NewFeedScreen(testEnv())
	actor := api.User{ID: 5, Username: "bob"}
	fs.SetItems([]api.FeedItem{{Actor: actor, Wish: api.Wish{Title: "Kite"}, Action: api.FeedCreated}}, false)

	_, cmd := fs.Update(key("enter"))
	assert.Equal(t, ViewWishlistMsg{User: actor}, msgOf(t, cmd))

	_, cmd = fs.Update(key("p"))
	assert.Equal(t, ViewProfileMsg{User: actor}, msgOf(t, cmd))
}

func TestSubscriptionsScreen_AddStripsAt(t *testing.T) {
	ss := NewSubscriptionsScreen(testEnv())
	ss.SetData(nil, "", false)

	ss.Update(key("+"))
	assert.True(t, ss.Capturing())
	ss.Update(key("@carol"))
	_, cmd := ss.Update(key("enter"))

	assert.Equal(t, SubscribeMsg{Handle: "carol"}, msgOf(t, cmd))
	assert.False(t, ss.Capturing())
}

func TestSubscriptionsScreen_FilterAndUnsubscribe(t *testing.T) {
	ss := NewSubscriptionsScreen(testEnv())
	ss.SetData([]api.Subscription{
		{ID: 1, Target: &api.User{ID: 2, Username: "bob", DisplayName: "Bob"}},
		{ID: 2, Target: &api.User{ID: 3, Username: "carol7", TgUsername: api.StrPtr("carol"), DisplayName: "Carol"}},
	}, "", false)

	ss.Update(key("/"))
	ss.Update(key("car"))
	ss.Update(key("enter"))
	require.Len(t, ss.Visible(), 1)

	_, cmd := ss.Update(key("u"))
	assert.Equal(t, UnsubscribeMsg{Handle: "carol"}, msgOf(t, cmd))
}

func TestProfileScreen_EditEmitsPatch(t *testing.T) {
	ps := NewProfileScreen(testEnv())
	ps.SetData(ProfileData{Own: &api.User{ID: 1, DisplayName: "Ann", Username: "ann"}})

	ps.Update(key("e"))
	require.True(t, ps.Editing())
	ps.Update(key("tab"))
	ps.Update(key("@annie"))
	_, cmd := ps.Update(key("ctrl+s"))

	msg, ok := msgOf(t, cmd).(UpdateProfileMsg)
	require.True(t, ok)
	assert.Equal(t, "Ann", api.Str(msg.Patch.DisplayName))
	assert.Equal(t, "annie", api.Str(msg.Patch.CustomUsername))
	assert.False(t, ps.Editing())
}

func TestProfileScreen_ExternalActions(t *testing.T) {
	ps := NewProfileScreen(testEnv())
	ps.SetData(ProfileData{
		External: true,
		Handle:   "bob",
		User:     &api.PublicUser{ID: 2, DisplayName: "Bob", Username: "bob"},
	})

	_, cmd := ps.Update(key("e"))
	assert.Nil(t, cmd)

	_, cmd = ps.Update(key("w"))
	msg, ok := msgOf(t, cmd).(ViewWishlistMsg)
	require.True(t, ok)
	assert.Equal(t, "bob", msg.User.Handle())

	_, cmd = ps.Update(key("b"))
	assert.IsType(t, BackToMyProfileMsg{}, msgOf(t, cmd))
}

func TestWishSheet_SubmitRequiresTitle(t *testing.T) {
	ws := NewWishSheet(testEnv())
	ws.Open(wishlist.NewForm(), false)

	assert.Nil(t, ws.Update(key("ctrl+s")))
	assert.Nil(t, ws.Update(key("ctrl+d")))

	ws.Update(key("Lamp"))
	assert.Equal(t, "Lamp", ws.Form().Title)
	assert.IsType(t, SubmitWishMsg{}, msgOf(t, ws.Update(key("ctrl+s"))))

	ws.SetSubmitting(true)
	assert.Nil(t, ws.Update(key("ctrl+s")))
}

func TestWishSheet_EditingAllowsDeleteAndCycles(t *testing.T) {
	ws := NewWishSheet(testEnv())
	ws.Open(wishlist.FromWish(sampleWishes()[0]), true)

	assert.IsType(t, RequestDeleteWishMsg{}, msgOf(t, ws.Update(key("ctrl+d"))))

	// title → description → url → price → tags → priority
	for i := 0; i < 5; i++ {
		ws.Update(key("tab"))
	}
	ws.Update(key("right"))
	assert.Equal(t, api.PriorityLow, ws.Form().Priority)

	ws.Update(key("tab"))
	ws.Update(key("right"))
	assert.Equal(t, api.StatusOrdered, ws.Form().Status)

	assert.IsType(t, CloseSheetMsg{}, msgOf(t, ws.Update(key("esc"))))
}

func TestWishSheet_ApplyPreviewFillsEmptyFields(t *testing.T) {
	ws := NewWishSheet(testEnv())
	form := wishlist.NewForm()
	form.Title = "Mine"
	form.SetURL("https://shop.example/item")
	ws.Open(form, false)

	ok := ws.ApplyPreview("https://shop.example/item", &api.LinkPreview{
		Title:       api.StrPtr("Theirs"),
		Description: api.StrPtr("Nice item"),
	})
	require.True(t, ok)
	assert.Equal(t, "Mine", ws.Form().Title)
	assert.Equal(t, "Nice item", ws.Form().Description)

	assert.False(t, ws.ApplyPreview("https://other.example", &api.LinkPreview{}))

	ws.Close()
	assert.False(t, ws.Visible())
	assert.Equal(t, wishlist.NewForm(), ws.Form())
}

func TestUsernamePrompt_SavesTrimmedHandle(t *testing.T) {
	up := NewUsernamePrompt(testEnv())
	assert.Nil(t, up.Update(key("enter")))

	up.Open()
	assert.Nil(t, up.Update(key("enter")))
	up.Update(key("@fox"))
	assert.Equal(t, SaveCustomUsernameMsg{Username: "fox"}, msgOf(t, up.Update(key("enter"))))

	up.SetSaving(true)
	assert.Nil(t, up.Update(key("enter")))
	// esc окно не закрывает
	up.Update(key("esc"))
	assert.True(t, up.Visible())
}

func TestCommandPalette_FiltersAndSkipsDisabled(t *testing.T) {
	entries := []CommandEntry{
		{ID: "settings.theme", Title: "Switch theme", Enabled: true},
		{ID: "notifications.test", Title: "Send test notification", Enabled: false},
		{ID: "app.refresh", Title: "Refresh", Enabled: true},
	}
	ps := NewCommandPalette(testEnv(), func() []CommandEntry { return entries })
	ps.Open()
	require.Len(t, ps.Filtered(), 3)

	ps.Update(key("theme"))
	require.NotEmpty(t, ps.Filtered())
	assert.Equal(t, "settings.theme", ps.Filtered()[0].ID)
	assert.Equal(t, CommandExecuteMsg{ID: "settings.theme"}, msgOf(t, ps.Update(key("enter"))))

	ps.Open()
	ps.Update(key("send test"))
	require.NotEmpty(t, ps.Filtered())
	assert.Nil(t, ps.Update(key("enter")))

	assert.IsType(t, CommandPaletteClosedMsg{}, msgOf(t, ps.Update(key("esc"))))
}

func TestSettingsScreen_Actions(t *testing.T) {
	ss := NewSettingsScreen(testEnv())
	ss.SetData(SettingsData{Locale: i18n.EN, Scheme: platform.SchemeDark})

	assert.IsType(t, LoadNotificationsMsg{}, msgOf(t, ss.OnEnter()))

	require.True(t, ss.Toggle("new_wish"))
	ss.Update(key("enter"))
	assert.False(t, ss.Toggle("new_wish"))

	ss.Update(key("down"))
	ss.Update(key("down"))
	ss.Update(key("down"))
	_, cmd := ss.Update(key("enter"))
	assert.Equal(t, SetLocaleMsg{Locale: i18n.RU}, msgOf(t, cmd))

	ss.Update(key("down"))
	_, cmd = ss.Update(key("enter"))
	assert.Equal(t, SetThemeMsg{Scheme: platform.SchemeLight}, msgOf(t, cmd))

	ss.Update(key("down"))
	_, cmd = ss.Update(key("enter"))
	assert.IsType(t, SendTestNotificationMsg{}, msgOf(t, cmd))

	ss.SetData(SettingsData{Locale: i18n.EN, Sending: true})
	_, cmd = ss.Update(key("enter"))
	assert.Nil(t, cmd)
}

func TestUserFromPublic(t *testing.T) {
	u := UserFromPublic(&api.PublicUser{ID: 4, DisplayName: "Dee", Username: "dee"})
	assert.Equal(t, "dee", u.Handle())
	assert.Equal(t, api.User{}, UserFromPublic(nil))
}

func TestShortHelp_FollowsLocale(t *testing.T) {
	env := testEnv()
	ws := NewWishlistScreen(env)
	ws.SetData(WishlistData{Own: true, Wishes: sampleWishes()})
	assert.Contains(t, ws.ShortHelp(), "a add")

	env.T = i18n.New(i18n.RU)
	assert.Contains(t, ws.ShortHelp(), "a добавить")
	ws.SetData(WishlistData{Handle: "bob"})
	assert.Equal(t, env.T.T("help.wishlist_external"), ws.ShortHelp())

	for _, screen := range []Screen{NewFeedScreen(env), NewSubscriptionsScreen(env), NewProfileScreen(env), NewSettingsScreen(env)} {
		help := screen.ShortHelp()
		assert.NotEmpty(t, help)
		assert.NotContains(t, help, "select", "help bar must be translated")
	}
}
