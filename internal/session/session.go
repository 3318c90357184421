package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"wishfox-tui/internal/api"
)

// ErrUnauthenticated сессия не прошла рукопожатие
var ErrUnauthenticated = errors.New("session is not authenticated")

// Status состояние сессии
type Status int

const (
	StatusLoading Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// InitDataSource источник init data (мост платформы)
type InitDataSource interface {
	InitData() string
}

// Snapshot копия состояния сессии для отрисовки
type Snapshot struct {
	Status    Status
	User      *api.User
	Wishlists []api.Wishlist
	CSRFToken string
}

// Authenticated есть ли пользователь и токен
func (s Snapshot) Authenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// PrimaryWishlist первый вишлист владельца, в него добавляются желания
func (s Snapshot) PrimaryWishlist() *api.Wishlist {
	if len(s.Wishlists) == 0 {
		return nil
	}
	return &s.Wishlists[0]
}

// Session состояние авторизации: пользователь, CSRF-токен, вишлисты.
// Команды Bubble Tea выполняются в горутинах, поэтому доступ под мьютексом.
type Session struct {
	mu        sync.RWMutex
	base      *api.Client
	client    *api.Client
	source    InitDataSource
	logger    logrus.FieldLogger
	status    Status
	user      *api.User
	wishlists []api.Wishlist
	csrf      string
}

// New создает сессию. До Bootstrap она в состоянии загрузки.
func New(client *api.Client, source InitDataSource, logger logrus.FieldLogger) *Session {
	return &Session{
		base:   client,
		client: client,
		source: source,
		logger: logger.WithField("component", "session"),
		status: StatusLoading,
	}
}

// Bootstrap выполняет рукопожатие по init data. Без init data сессия сразу
// становится неавторизованной; повторных попыток нет.
func (s *Session) Bootstrap(ctx context.Context) error {
	initData := s.source.InitData()
	if initData == "" {
		s.logger.Info("no init data, staying unauthenticated")
		s.setStatus(StatusUnauthenticated)
		return ErrUnauthenticated
	}

	resp, err := s.base.AuthTelegram(ctx, initData)
	if err != nil {
		s.logger.WithError(err).Error("failed to authenticate")
		s.setStatus(StatusUnauthenticated)
		return fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user := resp.User
	s.mu.Lock()
	s.user = &user
	s.csrf = resp.CSRFToken
	s.client = s.base.WithCSRFToken(resp.CSRFToken)
	s.status = StatusAuthenticated
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{"user_id": user.ID, "handle": user.Handle()}).Info("authenticated")

	if err := s.LoadWishlists(ctx); err != nil {
		s.logger.WithError(err).Warn("initial wishlist load failed")
	}
	return nil
}

// Refresh перечитывает пользователя и вишлисты. Без токена ничего не делает.
func (s *Session) Refresh(ctx context.Context) error {
	if s.CSRFToken() == "" {
		return nil
	}
	user, err := s.API().Me(ctx)
	if err != nil {
		return fmt.Errorf("refresh user: %w", err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()

	return s.LoadWishlists(ctx)
}

// UpdateUser частично обновляет профиль. Без токена ничего не делает.
func (s *Session) UpdateUser(ctx context.Context, patch api.UserPatch) error {
	if s.CSRFToken() == "" {
		return nil
	}
	user, err := s.API().UpdateMe(ctx, patch)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// LoadWishlists загружает вишлисты владельца
func (s *Session) LoadWishlists(ctx context.Context) error {
	lists, err := s.API().MyWishlists(ctx)
	if err != nil {
		return fmt.Errorf("load wishlists: %w", err)
	}
	s.mu.Lock()
	s.wishlists = lists
	s.mu.Unlock()
	return nil
}

// ApplyWishOrder оптимистично применяет новый порядок к вишлисту
func (s *Session) ApplyWishOrder(wishlistID int64, ordered []api.Wish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.wishlists {
		if s.wishlists[i].ID == wishlistID {
			s.wishlists[i].Wishes = append([]api.Wish(nil), ordered...)
			return
		}
	}
}

// Snapshot возвращает копию состояния
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Status:    s.status,
		CSRFToken: s.csrf,
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	if s.wishlists != nil {
		snap.Wishlists = make([]api.Wishlist, len(s.wishlists))
		for i, wl := range s.wishlists {
			wl.Wishes = append([]api.Wish(nil), wl.Wishes...)
			snap.Wishlists[i] = wl
		}
	}
	return snap
}

// API клиент с текущим CSRF-токеном
func (s *Session) API() *api.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client
}

// CSRFToken текущий токен, пустой до авторизации
func (s *Session) CSRFToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.csrf
}

// Close сбрасывает состояние сессии
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.wishlists = nil
	s.csrf = ""
	s.client = s.base
	s.status = StatusUnauthenticated
}

func (s *Session) setStatus(status Status) {
	s.mu.Lock()
	s.status = status
	s.mu.Unlock()
}
