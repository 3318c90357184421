package i18n

var catalog = map[Locale]map[string]string{
	EN: {
		"app.title":         "Wishfox",
		"app.loading":       "Loading…",
		"app.error":         "Something went wrong",
		"app.unauth_title":  "Open Wishfox from Telegram",
		"app.unauth_body":   "No init data was provided, so we could not sign you in. Pass --init-data or configure a bot token and dev user.",
		"app.load_failed":   "Failed to load, try again later",
		"app.user_missing":  "User not found",
		"app.quit_confirm":  "Quit Wishfox?",
		"app.help":          "tab/1-5 switch • ctrl+p commands • ctrl+r refresh • ctrl+c quit",
		"help.wishlist_own":      "↑/↓ select • / search • p/s filter • x clear • a add • enter edit • space status • shift+↑/↓ move",
		"help.wishlist_external": "↑/↓ select • / search • p/s filter • x clear • esc back",
		"help.feed":              "↑/↓ select • enter wishlist • p profile",
		"help.subscriptions":     "↑/↓ select • enter wishlist • p profile • / filter • + follow • u unfollow",
		"help.profile_own":       "e edit • s share",
		"help.profile_external":  "w wishlist • esc back",
		"help.profile_editing":   "tab next field • ctrl+s save • esc cancel",
		"help.settings":          "↑/↓ select • enter toggle • pgup/pgdn history",
		"app.status_ready":  "Ready",
		"app.status_saving": "Saving…",

		"tabs.wishlist":      "Wishlist",
		"tabs.feed":          "Feed",
		"tabs.subscriptions": "Following",
		"tabs.profile":       "Profile",
		"tabs.settings":      "Settings",

		"header.title_default":          "My wishlist",
		"header.title_with_handle":      "@{{handle}}'s wishlist",
		"header.total_wishes":           "{{count}} wishes",
		"header.following":              "{{count}} following",
		"header.feed_title":             "Friends' activity",
		"header.feed_subtitle":          "Fresh wishes from people you follow",
		"header.subscriptions_title":    "Following",
		"header.subscriptions_subtitle": "People whose wishlists you follow",
		"header.profile_title":          "Profile",
		"header.profile_self":           "Your public card",
		"header.profile_external":       "Viewing @{{handle}}",
		"header.settings_title":         "Settings",
		"header.settings_subtitle":      "Notifications, language and look",

		"actions.add":           "Add wish",
		"actions.back_to_mine":  "Back to mine",
		"actions.cancel":        "Cancel",
		"actions.quit":          "Quit",
		"actions.delete":        "Delete",
		"actions.save":          "Save",
		"actions.share":         "Share",
		"actions.subscribe":     "Follow",
		"actions.unsubscribe":   "Unfollow",
		"actions.view":          "View wishlist",
		"actions.view_profile":  "View profile",
		"actions.edit":          "Edit",
		"actions.toggle_status": "Next status",

		"wishlist.empty_title":        "Nothing here yet",
		"wishlist.empty_body":         "Add your first wish so friends know what to gift you.",
		"wishlist.external_empty":     "This wishlist is empty",
		"wishlist.search_placeholder": "Search wishes",
		"wishlist.filter_any":         "any",
		"wishlist.filters":            "priority: {{priority}} • status: {{status}}",
		"wishlist.reorder_locked":     "Clear filters to reorder",
		"wishlist.loading_external":   "Loading @{{handle}}'s wishlist…",
		"wishlist.delete_confirm":     "Delete \"{{title}}\"?",
		"wishlist.form.create_title":  "New wish",
		"wishlist.form.edit_title":    "Edit wish",
		"wishlist.form.title":         "Title",
		"wishlist.form.description":   "Description",
		"wishlist.form.url":           "Link",
		"wishlist.form.price":         "Price",
		"wishlist.form.tags":          "Tags (comma separated)",
		"wishlist.form.priority":      "Priority",
		"wishlist.form.status":        "Status",
		"wishlist.form.image":         "Image file",
		"wishlist.form.preview":       "Fetching link preview…",
		"wishlist.form.submit_hint":   "ctrl+s save • esc close",
		"wishlist.form.delete_hint":   "ctrl+d delete",
		"wishlist.priority.low":       "low",
		"wishlist.priority.medium":    "medium",
		"wishlist.priority.high":      "high",
		"wishlist.status.planned":     "planned",
		"wishlist.status.ordered":     "ordered",
		"wishlist.status.gifted":      "gifted",

		"feed.empty_title":     "Your feed is quiet",
		"feed.empty_body":      "Follow friends to see their new wishes here.",
		"feed.items_count":     "{{count}} updates",
		"feed.activity.created": "added a wish",
		"feed.activity.updated": "updated a wish",

		"subscriptions.count":          "{{count}} following",
		"subscriptions.empty_title":    "You don't follow anyone yet",
		"subscriptions.empty_body":     "Type a username below or open a friend's share link.",
		"subscriptions.handle_missing": "This user has no username yet, so their wishlist can't be opened.",
		"subscriptions.input":          "@username",
		"subscriptions.filter":         "Filter",

		"profile.display_name":         "Display name",
		"profile.username":             "Username",
		"profile.bio":                  "Bio",
		"profile.empty_bio":            "No bio yet",
		"profile.edit_button":          "Edit profile",
		"profile.save":                 "Save profile",
		"profile.custom_username_hint": "Pick a username so friends can find you",
		"profile.custom_username_title": "Choose a username",
		"profile.handle_missing":       "This user has no username yet, so their profile can't be opened.",
		"profile.share_hint":           "Share your wishlist with friends",
		"profile.loading":              "Loading profile…",

		"share.missing_username": "Add a Telegram username in your profile to share your wishlist.",
		"share.copied":           "Link copied. Share it with friends in Telegram!",
		"share.unavailable":      "Share link is unavailable: bot name is not configured.",
		"share.copy_failed":      "Copy this link: {{url}}",

		"settings.notifications":   "Notifications",
		"settings.new_wish":        "New wishes from friends",
		"settings.updated_wish":    "Updated wishes",
		"settings.digest":          "Weekly digest",
		"settings.language":        "Language",
		"settings.theme":           "Theme",
		"settings.test":            "Send test notification",
		"settings.test_sent":       "Test notification queued",
		"settings.history":         "Recent notifications",
		"settings.history_empty":   "No notifications yet",
		"settings.sent":            "sent",
		"settings.pending":         "pending",

		"palette.title":       "Commands",
		"palette.placeholder": "Type a command…",
		"palette.empty":       "No matching commands",
		"palette.global":      "global",

		"commands.quit":          "Quit",
		"commands.next_tab":      "Next tab",
		"commands.prev_tab":      "Previous tab",
		"commands.add_wish":      "Add wish",
		"commands.back":          "Back to my wishlist",
		"commands.refresh":       "Refresh",
		"commands.share":         "Share my wishlist",
		"commands.toggle_locale": "Switch language",
		"commands.toggle_theme":  "Switch theme",
		"commands.test":          "Send test notification",
		"commands.open_tab":      "Open {{tab}}",
	},
	RU: {
		"app.title":         "Wishfox",
		"app.loading":       "Загрузка…",
		"app.error":         "Что-то пошло не так",
		"app.unauth_title":  "Откройте Wishfox из Telegram",
		"app.unauth_body":   "Нет init data, поэтому войти не получилось. Передайте --init-data или настройте токен бота и dev-пользователя.",
		"app.load_failed":   "Не удалось загрузить, попробуйте позже",
		"app.user_missing":  "Пользователь не найден",
		"app.quit_confirm":  "Выйти из Wishfox?",
		"app.help":          "tab/1-5 вкладки • ctrl+p команды • ctrl+r обновить • ctrl+c выход",
		"help.wishlist_own":      "↑/↓ выбор • / поиск • p/s фильтр • x сброс • a добавить • enter изменить • space статус • shift+↑/↓ порядок",
		"help.wishlist_external": "↑/↓ выбор • / поиск • p/s фильтр • x сброс • esc назад",
		"help.feed":              "↑/↓ выбор • enter вишлист • p профиль",
		"help.subscriptions":     "↑/↓ выбор • enter вишлист • p профиль • / фильтр • + подписаться • u отписаться",
		"help.profile_own":       "e изменить • s поделиться",
		"help.profile_external":  "w вишлист • esc назад",
		"help.profile_editing":   "tab следующее поле • ctrl+s сохранить • esc отмена",
		"help.settings":          "↑/↓ выбор • enter переключить • pgup/pgdn история",
		"app.status_ready":  "Готово",
		"app.status_saving": "Сохраняем…",

		"tabs.wishlist":      "Вишлист",
		"tabs.feed":          "Лента",
		"tabs.subscriptions": "Подписки",
		"tabs.profile":       "Профиль",
		"tabs.settings":      "Настройки",

		"header.title_default":          "Мой вишлист",
		"header.title_with_handle":      "Вишлист @{{handle}}",
		"header.total_wishes":           "Желаний: {{count}}",
		"header.following":              "Подписок: {{count}}",
		"header.feed_title":             "Активность друзей",
		"header.feed_subtitle":          "Свежие желания тех, на кого вы подписаны",
		"header.subscriptions_title":    "Подписки",
		"header.subscriptions_subtitle": "Люди, за чьими вишлистами вы следите",
		"header.profile_title":          "Профиль",
		"header.profile_self":           "Ваша публичная карточка",
		"header.profile_external":       "Профиль @{{handle}}",
		"header.settings_title":         "Настройки",
		"header.settings_subtitle":      "Уведомления, язык и внешний вид",

		"actions.add":           "Добавить желание",
		"actions.back_to_mine":  "К моему",
		"actions.cancel":        "Отмена",
		"actions.quit":          "Выйти",
		"actions.delete":        "Удалить",
		"actions.save":          "Сохранить",
		"actions.share":         "Поделиться",
		"actions.subscribe":     "Подписаться",
		"actions.unsubscribe":   "Отписаться",
		"actions.view":          "Открыть вишлист",
		"actions.view_profile":  "Открыть профиль",
		"actions.edit":          "Изменить",
		"actions.toggle_status": "Следующий статус",

		"wishlist.empty_title":        "Здесь пока пусто",
		"wishlist.empty_body":         "Добавьте первое желание, чтобы друзья знали, что подарить.",
		"wishlist.external_empty":     "Этот вишлист пуст",
		"wishlist.search_placeholder": "Поиск желаний",
		"wishlist.filter_any":         "любой",
		"wishlist.filters":            "приоритет: {{priority}} • статус: {{status}}",
		"wishlist.reorder_locked":     "Сбросьте фильтры, чтобы менять порядок",
		"wishlist.loading_external":   "Загружаем вишлист @{{handle}}…",
		"wishlist.delete_confirm":     "Удалить «{{title}}»?",
		"wishlist.form.create_title":  "Новое желание",
		"wishlist.form.edit_title":    "Редактирование",
		"wishlist.form.title":         "Название",
		"wishlist.form.description":   "Описание",
		"wishlist.form.url":           "Ссылка",
		"wishlist.form.price":         "Цена",
		"wishlist.form.tags":          "Теги (через запятую)",
		"wishlist.form.priority":      "Приоритет",
		"wishlist.form.status":        "Статус",
		"wishlist.form.image":         "Файл изображения",
		"wishlist.form.preview":       "Загружаем превью ссылки…",
		"wishlist.form.submit_hint":   "ctrl+s сохранить • esc закрыть",
		"wishlist.form.delete_hint":   "ctrl+d удалить",
		"wishlist.priority.low":       "низкий",
		"wishlist.priority.medium":    "средний",
		"wishlist.priority.high":      "высокий",
		"wishlist.status.planned":     "в планах",
		"wishlist.status.ordered":     "заказано",
		"wishlist.status.gifted":      "подарено",

		"feed.empty_title":      "В ленте тихо",
		"feed.empty_body":       "Подпишитесь на друзей, чтобы видеть их новые желания.",
		"feed.items_count":      "Обновлений: {{count}}",
		"feed.activity.created": "добавил(а) желание",
		"feed.activity.updated": "обновил(а) желание",

		"subscriptions.count":          "Подписок: {{count}}",
		"subscriptions.empty_title":    "Вы пока ни на кого не подписаны",
		"subscriptions.empty_body":     "Введите имя пользователя ниже или откройте ссылку друга.",
		"subscriptions.handle_missing": "У пользователя нет имени, поэтому его вишлист недоступен.",
		"subscriptions.input":          "@имя",
		"subscriptions.filter":         "Фильтр",

		"profile.display_name":          "Имя",
		"profile.username":              "Имя пользователя",
		"profile.bio":                   "О себе",
		"profile.empty_bio":             "Пока ничего о себе",
		"profile.edit_button":           "Редактировать",
		"profile.save":                  "Сохранить профиль",
		"profile.custom_username_hint":  "Выберите имя, чтобы друзья могли вас найти",
		"profile.custom_username_title": "Выберите имя пользователя",
		"profile.handle_missing":        "У пользователя нет имени, поэтому его профиль недоступен.",
		"profile.share_hint":            "Поделитесь вишлистом с друзьями",
		"profile.loading":               "Загружаем профиль…",

		"share.missing_username": "Добавьте username в Telegram, чтобы делиться вишлистом.",
		"share.copied":           "Ссылка скопирована. Отправьте ее друзьям в Telegram!",
		"share.unavailable":      "Ссылка недоступна: не задано имя бота.",
		"share.copy_failed":      "Скопируйте ссылку: {{url}}",

		"settings.notifications": "Уведомления",
		"settings.new_wish":      "Новые желания друзей",
		"settings.updated_wish":  "Изменения желаний",
		"settings.digest":        "Еженедельный дайджест",
		"settings.language":      "Язык",
		"settings.theme":         "Тема",
		"settings.test":          "Отправить тестовое уведомление",
		"settings.test_sent":     "Тестовое уведомление поставлено в очередь",
		"settings.history":       "Последние уведомления",
		"settings.history_empty": "Уведомлений пока нет",
		"settings.sent":          "отправлено",
		"settings.pending":       "в очереди",

		"palette.title":       "Команды",
		"palette.placeholder": "Введите команду…",
		"palette.empty":       "Нет подходящих команд",
		"palette.global":      "везде",

		"commands.quit":          "Выйти",
		"commands.next_tab":      "Следующая вкладка",
		"commands.prev_tab":      "Предыдущая вкладка",
		"commands.add_wish":      "Добавить желание",
		"commands.back":          "К моему вишлисту",
		"commands.refresh":       "Обновить",
		"commands.share":         "Поделиться вишлистом",
		"commands.toggle_locale": "Сменить язык",
		"commands.toggle_theme":  "Сменить тему",
		"commands.test":          "Отправить тестовое уведомление",
		"commands.open_tab":      "Открыть: {{tab}}",
	},
}
