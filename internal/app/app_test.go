package app

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wishfox-tui/internal/api"
	"wishfox-tui/internal/config"
	"wishfox-tui/internal/i18n"
	"wishfox-tui/internal/platform"
	"wishfox-tui/internal/session"
	"wishfox-tui/internal/ui/screens"
	"wishfox-tui/internal/wishlist"
)

// fakeAPI in-memory бэкенд для сценариев приложения
type fakeAPI struct {
	mu            sync.Mutex
	calls         []string
	previews      []string
	reorders      [][]api.ReorderItem
	user          api.User
	wishes        []api.Wish
	feed          []api.FeedItem
	subscriptions []api.Subscription
	users         map[string]int // handle → статус ответа
	creates       []api.WishCreate
	patches       map[int64]api.WishPatch
	uploads       []string
	failSaves     bool
	previewStatus int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		user: api.User{ID: 1, DisplayName: "Ann", Username: "ann", TgUsername: api.StrPtr("ann_tg")},
		wishes: []api.Wish{
			{ID: 1, WishlistID: 10, Title: "Bike", Priority: api.PriorityHigh, Status: api.StatusPlanned, Position: 0},
			{ID: 2, WishlistID: 10, Title: "Book", Priority: api.PriorityLow, Status: api.StatusPlanned, Position: 1},
			{ID: 3, WishlistID: 10, Title: "Lamp", Priority: api.PriorityMedium, Status: api.StatusGifted, Position: 2},
		},
		feed: []api.FeedItem{
			{Actor: api.User{ID: 2, Username: "bob"}, Wish: api.Wish{ID: 20, Title: "Kite"}, Action: api.FeedCreated},
		},
		users:   map[string]int{},
		patches: map[int64]api.WishPatch{},
	}
}

func (f *fakeAPI) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		route := r.Method + " " + r.URL.Path
		f.calls = append(f.calls, route)

		switch {
		case route == "POST /api/auth/telegram":
			writeJSON(w, api.AuthResponse{User: f.user, CSRFToken: "csrf"})
		case route == "GET /api/me":
			writeJSON(w, f.user)
		case route == "GET /api/wishlists/mine":
			writeJSON(w, []api.Wishlist{{ID: 10, Title: "Main", Wishes: f.wishes}})
		case route == "GET /api/feed":
			writeJSON(w, f.feed)
		case route == "GET /api/subscriptions":
			writeJSON(w, f.subscriptions)
		case route == "GET /api/links/preview":
			target := r.URL.Query().Get("url")
			f.previews = append(f.previews, target)
			if f.previewStatus != 0 {
				w.WriteHeader(f.previewStatus)
				return
			}
			writeJSON(w, api.LinkPreview{
				URL:         target,
				Title:       api.StrPtr("Preview title"),
				Description: api.StrPtr("Preview description"),
				Image:       api.StrPtr("https://img.example/b.png"),
			})
		case route == "POST /api/wishes/reorder":
			var items []api.ReorderItem
			require.NoError(t, json.NewDecoder(r.Body).Decode(&items))
			f.reorders = append(f.reorders, items)
			f.applyOrder(items)
			w.WriteHeader(http.StatusNoContent)
		case route == "POST /api/media/upload":
			_, header, err := r.FormFile("file")
			require.NoError(t, err)
			f.uploads = append(f.uploads, header.Filename)
			writeJSON(w, map[string]string{"url": "https://cdn.example/media/" + header.Filename})
		case route == "POST /api/wishes":
			var payload api.WishCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			f.creates = append(f.creates, payload)
			if f.failSaves {
				failSave(w)
				return
			}
			wish := api.Wish{
				ID:         int64(100 + len(f.creates)),
				WishlistID: payload.WishlistID,
				Title:      payload.Title,
				Priority:   payload.Priority,
				Status:     payload.Status,
				Position:   len(f.wishes),
			}
			f.wishes = append(f.wishes, wish)
			writeJSON(w, wish)
		case r.Method == http.MethodPatch && strings.HasPrefix(r.URL.Path, "/api/wishes/"):
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/wishes/"), 10, 64)
			var patch api.WishPatch
			require.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
			f.patches[id] = patch
			if f.failSaves {
				failSave(w)
				return
			}
			for i := range f.wishes {
				if f.wishes[i].ID == id && patch.Title != nil {
					f.wishes[i].Title = *patch.Title
				}
			}
			writeJSON(w, api.Wish{ID: id})
		case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/api/wishes/"):
			id, _ := strconv.ParseInt(strings.TrimPrefix(r.URL.Path, "/api/wishes/"), 10, 64)
			kept := f.wishes[:0]
			for _, wish := range f.wishes {
				if wish.ID != id {
					kept = append(kept, wish)
				}
			}
			f.wishes = kept
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/api/subscriptions/"):
			handle := strings.TrimPrefix(r.URL.Path, "/api/subscriptions/")
			f.subscriptions = append(f.subscriptions, api.Subscription{
				ID:     int64(len(f.subscriptions) + 1),
				Target: &api.User{ID: 99, Username: handle},
			})
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/users/"):
			rest := strings.TrimPrefix(r.URL.Path, "/api/users/")
			handle := strings.TrimSuffix(rest, "/wishlist")
			if status, ok := f.users[handle]; ok && status != http.StatusOK {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(`{"detail":"nope"}`))
				return
			}
			if strings.HasSuffix(rest, "/wishlist") {
				writeJSON(w, api.Wishlist{ID: 50, Title: handle + "'s list", Wishes: []api.Wish{{ID: 51, Title: "Drone"}}})
				return
			}
			writeJSON(w, api.PublicUser{ID: 50, DisplayName: strings.ToUpper(handle), Username: handle})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (f *fakeAPI) applyOrder(items []api.ReorderItem) {
	pos := make(map[int64]int, len(items))
	for _, it := range items {
		pos[it.ID] = it.Position
	}
	for i := range f.wishes {
		f.wishes[i].Position = pos[f.wishes[i].ID]
	}
	sort.SliceStable(f.wishes, func(i, j int) bool {
		return f.wishes[i].Position < f.wishes[j].Position
	})
}

func failSave(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`{"detail":"boom"}`))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeAPI) Previews() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.previews...)
}

func (f *fakeAPI) count(route string) int {
	n := 0
	for _, c := range f.Calls() {
		if c == route {
			n++
		}
	}
	return n
}

// harness прогоняет команды синхронно, подавая сообщения обратно в App.
// Команды, которые ждут дольше cmdWait (таймеры тостов, мигание курсора),
// отбрасываются.
type harness struct {
	t    *testing.T
	app  *App
	fake *fakeAPI
}

const cmdWait = 150 * time.Millisecond

func newHarness(t *testing.T, fake *fakeAPI, startParam string) *harness {
	t.Helper()
	srv := httptest.NewServer(fake.handler(t))
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	bridge := platform.NewBridge(platform.Options{
		InitData:     "query_id=1&hash=abc",
		StartParam:   startParam,
		BotName:      "wishfox_bot",
		LanguageCode: "en",
		Scheme:       platform.SchemeDark,
		Logger:       logger,
		Clipboard:    func(string) error { return nil },
		Fallback:     io.Discard,
	})
	cfg := config.DefaultConfig()
	cfg.Preview.DebounceMs = 20

	client := api.NewClient(srv.URL + "/api")
	a := New(Options{
		Config:  cfg,
		Session: session.New(client, bridge, logger),
		Bridge:  bridge,
		Logger:  logger,
	})
	t.Cleanup(a.Close)

	h := &harness{t: t, app: a, fake: fake}
	h.run(a.Init())
	h.send(tea.WindowSizeMsg{Width: 100, Height: 40})
	return h
}

func (h *harness) send(msg tea.Msg) {
	h.run(h.dispatch(msg))
}

// dispatch отдает сообщение без выполнения команд
func (h *harness) dispatch(msg tea.Msg) tea.Cmd {
	_, cmd := h.app.Update(msg)
	return cmd
}

func (h *harness) run(cmds ...tea.Cmd) {
	queue := append([]tea.Cmd(nil), cmds...)
	for steps := 0; len(queue) > 0 && steps < 500; steps++ {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		msg, ok := execWithin(cmd, cmdWait)
		if !ok || msg == nil {
			continue
		}
		switch m := msg.(type) {
		case tea.BatchMsg:
			queue = append(queue, m...)
		case spinner.TickMsg, tea.QuitMsg:
		default:
			queue = append(queue, h.dispatch(m))
		}
	}
}

func execWithin(cmd tea.Cmd, d time.Duration) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d):
		return nil, false
	}
}

func (h *harness) key(s string) {
	h.send(keyMsg(s))
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+down":
		return tea.KeyMsg{Type: tea.KeyShiftDown}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var en = i18n.New(i18n.EN)

func TestBootstrap_LoadsSessionFeedAndSubscriptions(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	a := h.app

	assert.True(t, a.snapshot.Authenticated())
	assert.False(t, a.bootstrapping)
	assert.Len(t, a.feed, 1)
	assert.True(t, a.subscriptionsLoaded)
	assert.True(t, a.deepLinkHandled)
	assert.Equal(t, TabWishlist, a.tab)
	assert.Len(t, a.wishlistScreen.Visible(), 3)

	calls := h.fake.Calls()
	assert.Equal(t, "POST /api/auth/telegram", calls[0])
	assert.Contains(t, calls, "GET /api/feed")
	assert.Contains(t, calls, "GET /api/subscriptions")
}

func TestDeepLink_SkipsOwnHandle(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "@ann_tg")

	assert.True(t, h.app.deepLinkHandled)
	assert.Zero(t, h.fake.count("POST /api/subscriptions/ann_tg"))
}

func TestDeepLink_SkipsExistingSubscription(t *testing.T) {
	fake := newFakeAPI()
	fake.subscriptions = []api.Subscription{{ID: 1, Target: &api.User{ID: 7, Username: "bob7", CustomUsername: api.StrPtr("bob")}}}
	h := newHarness(t, fake, "bob")

	assert.True(t, h.app.deepLinkHandled)
	assert.Zero(t, fake.count("POST /api/subscriptions/bob"))
}

func TestDeepLink_SubscribesOnce(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "carol")

	assert.Equal(t, 1, fake.count("POST /api/subscriptions/carol"))
	assert.Equal(t, 2, fake.count("GET /api/subscriptions"))
	require.Len(t, h.app.subscriptions, 1)

	// латч не дает подписаться повторно даже после отписки
	h.app.subscriptions = nil
	assert.Nil(t, h.app.maybeAutoSubscribe())
}

func TestReorder_LockedWhileFiltered(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")

	h.key("s")
	require.True(t, h.app.wishlistScreen.Filters().Active())
	h.key("shift+down")

	assert.Equal(t, en.T("wishlist.reorder_locked"), h.app.toast.Text())
	assert.Empty(t, h.fake.reorders)

	h.key("x")
	h.key("shift+down")
	require.Len(t, h.fake.reorders, 1)
	assert.Equal(t, []api.ReorderItem{
		{ID: 2, Position: 0},
		{ID: 1, Position: 1},
		{ID: 3, Position: 2},
	}, h.fake.reorders[0])

	// порядок применен сразу, не дожидаясь сервера
	wl := h.app.snapshot.PrimaryWishlist()
	require.NotNil(t, wl)
	assert.Equal(t, int64(2), wl.Wishes[0].ID)
}

func TestPreview_DebounceRequestsOnlyLatestURL(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.key("a")
	require.True(t, h.app.sheet.Visible())

	h.key("Mine")
	h.key("tab")
	h.key("tab")

	// быстрый ввод: команды копятся и выполняются только потом
	var pending []tea.Cmd
	pending = append(pending, h.dispatch(keyMsg("https://a.com")))
	pending = append(pending, h.dispatch(keyMsg("ctrl+u")))
	pending = append(pending, h.dispatch(keyMsg("https://b.com")))
	h.run(pending...)

	assert.Equal(t, []string{"https://b.com"}, h.fake.Previews())

	form := h.app.sheet.Form()
	assert.Equal(t, "Mine", form.Title)
	assert.Equal(t, "Preview description", form.Description)
	assert.Equal(t, "https://img.example/b.png", form.MetadataImageURL)
	assert.Equal(t, "https://b.com", form.MetadataSourceURL)
}

func TestPreview_DroppedAfterSheetClosed(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.key("a")
	h.key("tab")
	h.key("tab")

	pending := h.dispatch(keyMsg("https://a.com"))
	h.key("esc")
	h.run(pending)

	assert.False(t, h.app.sheet.Visible())
	assert.Empty(t, h.fake.Previews())
}

func TestDelete_ClosesSheetAndRefreshes(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "")
	feedBefore := fake.count("GET /api/feed")

	h.send(screens.EditWishMsg{Wish: fake.wishes[0]})
	require.True(t, h.app.sheet.Editing())

	h.send(screens.RequestDeleteWishMsg{})
	require.True(t, h.app.deleteDialog.Visible())
	h.key("enter")

	assert.Equal(t, 1, fake.count("DELETE /api/wishes/1"))
	assert.False(t, h.app.sheet.Visible())
	assert.Nil(t, h.app.editTarget)
	assert.Equal(t, wishlist.NewForm(), h.app.sheet.Form())
	assert.Equal(t, feedBefore+1, fake.count("GET /api/feed"))
	assert.Len(t, h.app.snapshot.PrimaryWishlist().Wishes, 2)
}

func TestDelete_CancelKeepsSheet(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "")
	h.send(screens.EditWishMsg{Wish: fake.wishes[1]})

	h.send(screens.RequestDeleteWishMsg{})
	h.key("esc")
	assert.False(t, h.app.deleteDialog.Visible())

	assert.Zero(t, fake.count("DELETE /api/wishes/2"))
	assert.True(t, h.app.sheet.Visible())
	require.NotNil(t, h.app.editTarget)
	assert.Equal(t, int64(2), h.app.editTarget.ID)
}

func TestViewWishlist_MissingHandleAlertsOnly(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.send(TabSwitchMsg{Tab: TabFeed})
	alerts := 0
	h.app.bridge.AttachPopups(func(p platform.Popup) {
		alerts++
		h.app.queuePopup(p)
	})
	callsBefore := len(h.fake.Calls())

	h.send(screens.ViewWishlistMsg{User: api.User{DisplayName: "Nameless"}})

	assert.Equal(t, 1, alerts)
	assert.Equal(t, en.T("subscriptions.handle_missing"), h.app.toast.Text())
	assert.Equal(t, TabFeed, h.app.tab)
	assert.False(t, h.app.wishlistView.External)
	assert.Len(t, h.fake.Calls(), callsBefore)
}

func TestViewWishlist_LoadsOwnerAndWishes(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.send(TabSwitchMsg{Tab: TabFeed})

	h.send(screens.ViewWishlistMsg{User: api.User{ID: 2, Username: "bob", CustomUsername: api.StrPtr("bobby")}})

	v := h.app.wishlistView
	assert.Equal(t, TabWishlist, h.app.tab)
	assert.True(t, v.External)
	assert.Equal(t, "bobby", v.Handle)
	require.NotNil(t, v.Wishlist)
	assert.Equal(t, "bobby's list", v.Wishlist.Title)
	require.NotNil(t, v.Owner)
	assert.Equal(t, "BOBBY", v.Owner.DisplayName)
	assert.False(t, h.app.externalLoading)
}

func TestExternalWishlist_ErrorToasts(t *testing.T) {
	fake := newFakeAPI()
	fake.users["ghost"] = http.StatusNotFound
	fake.users["broken"] = http.StatusInternalServerError
	h := newHarness(t, fake, "")

	h.send(screens.ViewWishlistMsg{User: api.User{Username: "ghost"}})
	assert.Equal(t, en.T("app.user_missing"), h.app.toast.Text())
	assert.False(t, h.app.wishlistView.External)

	h.send(screens.ViewWishlistMsg{User: api.User{Username: "broken"}})
	assert.Equal(t, en.T("app.load_failed"), h.app.toast.Text())
	assert.False(t, h.app.wishlistView.External)
}

func TestExternalWishlist_StaleResultDropped(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.app.wishlistView = externalWishlist("new", nil)

	h.send(externalWishlistLoadedMsg{handle: "old", wishlist: &api.Wishlist{Title: "old list"}})

	assert.Equal(t, "new", h.app.wishlistView.Handle)
	assert.Nil(t, h.app.wishlistView.Wishlist)
}

func TestSwitchTab_ClearsOnlyLeftOverlay(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.send(screens.ViewWishlistMsg{User: api.User{Username: "bob"}})
	require.True(t, h.app.wishlistView.External)
	h.app.profileView = externalProfile("carol", nil)

	h.send(TabSwitchMsg{Tab: TabFeed})
	assert.False(t, h.app.wishlistView.External)
	assert.True(t, h.app.profileView.External)

	h.send(TabSwitchMsg{Tab: TabProfile})
	assert.True(t, h.app.profileView.External)
	h.send(TabSwitchMsg{Tab: TabSettings})
	assert.False(t, h.app.profileView.External)
}

func TestViewProfile_ClosesWishlistOverlay(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.send(screens.ViewWishlistMsg{User: api.User{Username: "bob"}})

	h.send(screens.ViewProfileMsg{User: api.User{Username: "dave"}})

	assert.Equal(t, TabProfile, h.app.tab)
	assert.False(t, h.app.wishlistView.External)
	assert.True(t, h.app.profileView.Showing("dave"))
	require.NotNil(t, h.app.profileView.User)
	assert.Equal(t, "DAVE", h.app.profileView.User.DisplayName)
}

func TestBackKey_ReturnsToOwnWishlist(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	h.send(screens.ViewWishlistMsg{User: api.User{Username: "bob"}})
	require.True(t, h.app.wishlistView.External)

	// в чужом вишлисте "a" не открывает форму
	h.key("a")
	assert.False(t, h.app.sheet.Visible())

	h.key("esc")
	assert.False(t, h.app.wishlistView.External)
}

func TestShare_WithoutTelegramUsernameAlerts(t *testing.T) {
	fake := newFakeAPI()
	fake.user.TgUsername = nil
	h := newHarness(t, fake, "")

	h.send(screens.ShareProfileMsg{})
	assert.Equal(t, en.T("share.missing_username"), h.app.toast.Text())
}

func TestQuit_RequiresConfirmation(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")

	h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, h.app.quitDialog.Visible())
	h.key("n")
	assert.False(t, h.app.quitDialog.Visible())
	assert.False(t, h.app.quitting)

	h.send(tea.KeyMsg{Type: tea.KeyCtrlC})
	cmd := h.dispatch(keyMsg("y"))
	require.NotNil(t, cmd)
	msg, ok := execWithin(cmd, time.Second)
	require.True(t, ok)
	assert.Equal(t, quitConfirmedMsg{}, msg)

	_, quit := h.app.Update(msg)
	assert.True(t, h.app.quitting)
	require.NotNil(t, quit)
	assert.IsType(t, tea.QuitMsg{}, quit())
}

func TestSubmit_CreatesWishAndRefreshes(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "")
	feedBefore := fake.count("GET /api/feed")

	h.key("a")
	require.True(t, h.app.sheet.Visible())
	h.key("Gift")
	for i := 0; i < 3; i++ {
		h.key("tab")
	}
	h.key("25")
	h.key("tab")
	h.key("a, b")
	h.key("ctrl+s")

	require.Len(t, fake.creates, 1)
	created := fake.creates[0]
	assert.Equal(t, int64(10), created.WishlistID)
	assert.Equal(t, "Gift", created.Title)
	assert.Equal(t, "25", api.Str(created.Price))
	assert.Equal(t, []string{"a", "b"}, created.Tags)
	assert.Equal(t, api.PriorityMedium, created.Priority)
	assert.Equal(t, api.StatusPlanned, created.Status)
	assert.Nil(t, created.ImageURL)

	assert.False(t, h.app.sheet.Visible())
	assert.False(t, h.app.creating)
	assert.Equal(t, feedBefore+1, fake.count("GET /api/feed"))
	assert.Len(t, h.app.snapshot.PrimaryWishlist().Wishes, 4)
}

func TestSubmit_EditSendsPatch(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "")

	h.send(screens.EditWishMsg{Wish: fake.wishes[0]})
	for i := 0; i < 3; i++ {
		h.key("tab")
	}
	h.key("99")
	h.key("ctrl+s")

	assert.Empty(t, fake.creates)
	require.Equal(t, 1, fake.count("PATCH /api/wishes/1"))
	patch := fake.patches[1]
	assert.Equal(t, "Bike", api.Str(patch.Title))
	assert.Equal(t, "99", api.Str(patch.Price))
	require.NotNil(t, patch.Priority)
	assert.Equal(t, api.PriorityHigh, *patch.Priority)
	require.NotNil(t, patch.Status)
	assert.Equal(t, api.StatusPlanned, *patch.Status)

	assert.False(t, h.app.sheet.Visible())
	assert.Nil(t, h.app.editTarget)
}

func TestSubmit_UploadsImageBeforeCreate(t *testing.T) {
	fake := newFakeAPI()
	h := newHarness(t, fake, "")
	image := filepath.Join(t.TempDir(), "gift.png")
	require.NoError(t, os.WriteFile(image, []byte("png"), 0o600))

	h.key("a")
	h.key("Gift")
	for i := 0; i < 7; i++ {
		h.key("tab")
	}
	h.key(image)
	require.Equal(t, image, h.app.sheet.Form().ImageFile)
	h.key("ctrl+s")

	assert.Equal(t, []string{"gift.png"}, fake.uploads)
	require.Len(t, fake.creates, 1)
	assert.Equal(t, "https://cdn.example/media/gift.png", api.Str(fake.creates[0].ImageURL))

	calls := fake.Calls()
	upload := slices.Index(calls, "POST /api/media/upload")
	create := slices.Index(calls, "POST /api/wishes")
	require.NotEqual(t, -1, upload)
	assert.Less(t, upload, create)
}

func TestSubmit_FailureKeepsSheetOpen(t *testing.T) {
	fake := newFakeAPI()
	fake.failSaves = true
	h := newHarness(t, fake, "")
	feedBefore := fake.count("GET /api/feed")

	h.key("a")
	h.key("Gift")
	h.key("ctrl+s")

	require.Len(t, fake.creates, 1)
	assert.True(t, h.app.sheet.Visible())
	assert.False(t, h.app.creating)
	assert.Equal(t, "Gift", h.app.sheet.Form().Title)
	assert.Equal(t, en.T("app.error"), h.app.toast.Text())
	assert.Equal(t, feedBefore, fake.count("GET /api/feed"))

	// после ошибки можно отправить снова
	h.key("ctrl+s")
	assert.Len(t, fake.creates, 2)
}

func TestPreview_FailureNotRetriedForSameURL(t *testing.T) {
	fake := newFakeAPI()
	fake.previewStatus = http.StatusInternalServerError
	h := newHarness(t, fake, "")

	h.key("a")
	h.key("tab")
	h.key("tab")
	h.key("https://a.com")

	require.Equal(t, []string{"https://a.com"}, fake.Previews())
	assert.Equal(t, "https://a.com", h.app.sheet.Form().MetadataSourceURL)
	assert.Empty(t, h.app.sheet.Form().Title)

	// правка и возврат к той же ссылке не повторяют запрос
	pending := []tea.Cmd{h.dispatch(keyMsg("x")), h.dispatch(keyMsg("backspace"))}
	h.run(pending...)
	assert.Equal(t, "https://a.com", h.app.sheet.Form().URL)
	assert.Len(t, fake.Previews(), 1)
}

func TestViewProfile_MissingHandleAlertsOnly(t *testing.T) {
	h := newHarness(t, newFakeAPI(), "")
	alerts := 0
	h.app.bridge.AttachPopups(func(p platform.Popup) {
		alerts++
		h.app.queuePopup(p)
	})
	callsBefore := len(h.fake.Calls())

	h.send(screens.ViewProfileMsg{User: api.User{DisplayName: "Nameless"}})

	assert.Equal(t, 1, alerts)
	assert.Equal(t, en.T("profile.handle_missing"), h.app.toast.Text())
	assert.Equal(t, TabWishlist, h.app.tab)
	assert.False(t, h.app.profileView.External)
	assert.Len(t, h.fake.Calls(), callsBefore)
}
