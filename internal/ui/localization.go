package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySearchPlaceholder = "search_placeholder"
	KeyOpenSample        = "open_sample"
	KeyViewCode          = "view_code"
	KeyViewDetails       = "view_details"
	KeyPlayVideo         = "play_video"
	KeyVideo             = "video"
	KeyClose             = "close"
	KeyNoMatches         = "no_matches"
	KeyNoSamples         = "no_samples"
	KeyLoading           = "loading"
	KeyLoadFailed        = "load_failed"
	KeyNoSampleLink      = "no_sample_link"
	KeyLinkFailed        = "link_failed"
	KeyResultCount       = "result_count"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyReload            = "reload"
	KeyCatalogSource     = "catalog_source"
	KeyMaxPreviews       = "max_previews"
	KeySearchDelay       = "search_delay"
	KeyCompactLayout     = "compact_layout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns available languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Sample Gallery",
		KeySearchPlaceholder: "Search samples by name, tag or description",
		KeyOpenSample:        "Preview",
		KeyViewCode:          "View Code",
		KeyViewDetails:       "View Details",
		KeyPlayVideo:         "Play video",
		KeyVideo:             "Video",
		KeyClose:             "Close",
		KeyNoMatches:         "No samples match %q",
		KeyNoSamples:         "No samples available",
		KeyLoading:           "Loading samples...",
		KeyLoadFailed:        "Failed to load sample apps. Please reload the catalog.",
		KeyNoSampleLink:      "This sample has no live preview link",
		KeyLinkFailed:        "Could not open link",
		KeyResultCount:       "%d of %d samples",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyReload:            "Reload Catalog",
		KeyCatalogSource:     "Catalog Source",
		KeyMaxPreviews:       "Parallel Preview Loads",
		KeySearchDelay:       "Search Delay (ms)",
		KeyCompactLayout:     "Compact layout",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Галерея примеров",
		KeySearchPlaceholder: "Поиск по названию, тегу или описанию",
		KeyOpenSample:        "Открыть",
		KeyViewCode:          "Исходный код",
		KeyViewDetails:       "Подробнее",
		KeyPlayVideo:         "Воспроизвести",
		KeyVideo:             "Видео",
		KeyClose:             "Закрыть",
		KeyNoMatches:         "Нет примеров по запросу %q",
		KeyNoSamples:         "Примеры отсутствуют",
		KeyLoading:           "Загрузка примеров...",
		KeyLoadFailed:        "Не удалось загрузить примеры. Перезагрузите каталог.",
		KeyNoSampleLink:      "У этого примера нет ссылки на демо",
		KeyLinkFailed:        "Не удалось открыть ссылку",
		KeyResultCount:       "%d из %d примеров",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyReload:            "Перезагрузить каталог",
		KeyCatalogSource:     "Источник каталога",
		KeyMaxPreviews:       "Параллельных загрузок превью",
		KeySearchDelay:       "Задержка поиска (мс)",
		KeyCompactLayout:     "Компактный вид",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Galeria de Exemplos",
		KeySearchPlaceholder: "Pesquisar por nome, tag ou descrição",
		KeyOpenSample:        "Visualizar",
		KeyViewCode:          "Ver Código",
		KeyViewDetails:       "Ver Detalhes",
		KeyPlayVideo:         "Reproduzir vídeo",
		KeyVideo:             "Vídeo",
		KeyClose:             "Fechar",
		KeyNoMatches:         "Nenhum exemplo corresponde a %q",
		KeyNoSamples:         "Nenhum exemplo disponível",
		KeyLoading:           "Carregando exemplos...",
		KeyLoadFailed:        "Falha ao carregar os exemplos. Recarregue o catálogo.",
		KeyNoSampleLink:      "Este exemplo não tem link de demonstração",
		KeyLinkFailed:        "Não foi possível abrir o link",
		KeyResultCount:       "%d de %d exemplos",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyReload:            "Recarregar Catálogo",
		KeyCatalogSource:     "Fonte do Catálogo",
		KeyMaxPreviews:       "Carregamentos Paralelos",
		KeySearchDelay:       "Atraso da Pesquisa (ms)",
		KeyCompactLayout:     "Layout compacto",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Procurar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
	}
}
