package wishlist

import (
	"net/url"
	"strings"

	"wishfox-tui/internal/api"
)

// Form черновик желания, общий для создания и редактирования
type Form struct {
	Title       string
	Description string
	URL         string
	Price       string
	Tags        string // через запятую
	Priority    api.Priority
	Status      api.WishStatus

	// ImageFile локальный файл для загрузки
	ImageFile string
	// ImagePreview что показывать как картинку: файл или URL из превью
	ImagePreview string
	// MetadataImageURL картинка, полученная из превью ссылки
	MetadataImageURL string
	// MetadataSourceURL последний URL, для которого запрашивалось превью
	MetadataSourceURL string
}

// NewForm пустой черновик
func NewForm() Form {
	return Form{
		Priority: api.PriorityMedium,
		Status:   api.StatusPlanned,
	}
}

// FromWish черновик для редактирования существующего желания
func FromWish(w api.Wish) Form {
	return Form{
		Title:             w.Title,
		Description:       api.Str(w.Description),
		URL:               api.Str(w.URL),
		Price:             api.Str(w.Price),
		Tags:              strings.Join(w.Tags, ", "),
		Priority:          w.Priority,
		Status:            w.Status,
		ImagePreview:      api.Str(w.ImageURL),
		MetadataImageURL:  api.Str(w.ImageURL),
		MetadataSourceURL: normalizedOrRaw(api.Str(w.URL)),
	}
}

// CanSubmit отправка возможна с названием и без запроса в полете
func (f Form) CanSubmit(inFlight bool) bool {
	return !inFlight && strings.TrimSpace(f.Title) != ""
}

// ParseTags разбивает строку тегов, пустые отбрасываются
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// imageURL загруженный файл важнее картинки из превью
func (f Form) imageURL(uploaded string) *string {
	if uploaded != "" {
		return &uploaded
	}
	if f.ImageFile == "" {
		return api.StrPtr(f.MetadataImageURL)
	}
	return nil
}

// CreatePayload тело POST /wishes
func (f Form) CreatePayload(wishlistID int64, uploadedImage string) api.WishCreate {
	return api.WishCreate{
		WishlistID:  wishlistID,
		Title:       f.Title,
		Description: api.StrPtr(f.Description),
		URL:         api.StrPtr(f.URL),
		Price:       api.StrPtr(f.Price),
		Priority:    f.Priority,
		Status:      f.Status,
		ImageURL:    f.imageURL(uploadedImage),
		Tags:        ParseTags(f.Tags),
	}
}

// UpdatePayload тело PATCH /wishes/:id
func (f Form) UpdatePayload(uploadedImage string) api.WishPatch {
	priority := f.Priority
	status := f.Status
	tags := ParseTags(f.Tags)
	return api.WishPatch{
		Title:       api.StrPtr(f.Title),
		Description: api.StrPtr(f.Description),
		URL:         api.StrPtr(f.URL),
		Price:       api.StrPtr(f.Price),
		ImageURL:    f.imageURL(uploadedImage),
		Priority:    &priority,
		Status:      &status,
		Tags:        &tags,
	}
}

// SetURL меняет ссылку. Очистка поля сбрасывает отметку превью и картинку
// из превью, если не выбран локальный файл.
func (f *Form) SetURL(value string) {
	f.URL = value
	if value != "" {
		return
	}
	f.MetadataSourceURL = ""
	if f.ImageFile == "" {
		f.MetadataImageURL = ""
		f.ImagePreview = ""
	}
}

// AttachImage выбирает локальный файл. Пустой путь возвращает картинку из превью.
func (f *Form) AttachImage(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		f.ImageFile = ""
		f.ImagePreview = f.MetadataImageURL
		return
	}
	f.ImageFile = path
	f.ImagePreview = path
	f.MetadataImageURL = ""
}

// NormalizePreviewURL проверяет, что это http(s) ссылка, и нормализует ее
func NormalizePreviewURL(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return "", false
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	return u.String(), true
}

func normalizedOrRaw(raw string) string {
	if n, ok := NormalizePreviewURL(raw); ok {
		return n
	}
	return raw
}

// PreviewTarget URL, для которого нужно запросить превью
func (f Form) PreviewTarget() (string, bool) {
	normalized, ok := NormalizePreviewURL(f.URL)
	if !ok || normalized == f.MetadataSourceURL {
		return "", false
	}
	return normalized, true
}

// ApplyPreview дополняет пустые поля данными превью. Ответ для другой
// ссылки игнорируется.
func (f *Form) ApplyPreview(target string, p *api.LinkPreview) bool {
	if normalizedOrRaw(f.URL) != target {
		return false
	}
	f.MetadataSourceURL = target
	if p == nil {
		return true
	}
	if f.Title == "" && api.Str(p.Title) != "" {
		f.Title = api.Str(p.Title)
	}
	if f.Description == "" && api.Str(p.Description) != "" {
		f.Description = api.Str(p.Description)
	}
	if f.ImageFile == "" && api.Str(p.Image) != "" {
		f.MetadataImageURL = api.Str(p.Image)
		f.ImagePreview = api.Str(p.Image)
	}
	return true
}

// MarkPreviewAttempted отмечает ссылку после неудачного запроса,
// чтобы не повторять его для той же ссылки
func (f *Form) MarkPreviewAttempted(target string) bool {
	return f.ApplyPreview(target, nil)
}
