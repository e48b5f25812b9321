package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyDuration          = "duration"
	KeyMilliseconds      = "milliseconds"
	KeyIncludeSeconds    = "include_seconds"
	KeyByteSize          = "byte_size"
	KeyBytes             = "bytes"
	KeyText              = "text"
	KeyAffix             = "affix"
	KeyMaxLength         = "max_length"
	KeyCompareJSON       = "compare_json"
	KeyCompare           = "compare"
	KeyDocumentsEqual    = "documents_equal"
	KeyDocumentsDiffer   = "documents_differ"
	KeyInvalidJSON       = "invalid_json"
	KeyInvalidNumber     = "invalid_number"
	KeyToasts            = "toasts"
	KeySuccess           = "success"
	KeyWarning           = "warning"
	KeyFailure           = "failure"
	KeyRemindMe          = "remind_me"
	KeyReminder          = "reminder"
	KeyToastAutoHide     = "toast_auto_hide"
	KeyToastMaxLength    = "toast_max_length"
	KeySystemNotify      = "system_notifications"
	KeyThemeFile         = "theme_file"
	KeyThemeLoadFailed   = "theme_load_failed"
	KeySampleSuccess     = "sample_success"
	KeySampleWarning     = "sample_warning"
	KeySampleFailure     = "sample_failure"
	KeyCaseInsensitiveEq = "case_insensitive_eq"
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

// GetAvailableLanguages returns map of available languages with their display names
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
		KeyAppTitle:          "UI Kit Playground",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyDuration:          "Duration",
		KeyMilliseconds:      "Milliseconds",
		KeyIncludeSeconds:    "Include seconds",
		KeyByteSize:          "Byte size",
		KeyBytes:             "Bytes",
		KeyText:              "Text",
		KeyAffix:             "Prefix / suffix",
		KeyMaxLength:         "Max length",
		KeyCompareJSON:       "Compare JSON",
		KeyCompare:           "Compare",
		KeyDocumentsEqual:    "Documents are equal",
		KeyDocumentsDiffer:   "Documents differ",
		KeyInvalidJSON:       "Invalid JSON",
		KeyInvalidNumber:     "Not a number",
		KeyToasts:            "Toasts",
		KeySuccess:           "Success",
		KeyWarning:           "Warning",
		KeyFailure:           "Failure",
		KeyRemindMe:          "Remind me",
		KeyReminder:          "Reminder",
		KeyToastAutoHide:     "Toast duration (seconds)",
		KeyToastMaxLength:    "Toast max length",
		KeySystemNotify:      "Mirror failures to the system",
		KeyThemeFile:         "Theme file",
		KeyThemeLoadFailed:   "Could not load theme file",
		KeySampleSuccess:     "Everything went fine",
		KeySampleWarning:     "Something needs a look",
		KeySampleFailure:     "Something broke",
		KeyCaseInsensitiveEq: "Equal ignoring case",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Песочница UI Kit",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyDuration:          "Длительность",
		KeyMilliseconds:      "Миллисекунды",
		KeyIncludeSeconds:    "Показывать секунды",
		KeyByteSize:          "Размер",
		KeyBytes:             "Байты",
		KeyText:              "Текст",
		KeyAffix:             "Префикс / суффикс",
		KeyMaxLength:         "Макс. длина",
		KeyCompareJSON:       "Сравнить JSON",
		KeyCompare:           "Сравнить",
		KeyDocumentsEqual:    "Документы совпадают",
		KeyDocumentsDiffer:   "Документы различаются",
		KeyInvalidJSON:       "Неверный JSON",
		KeyInvalidNumber:     "Не число",
		KeyToasts:            "Уведомления",
		KeySuccess:           "Успех",
		KeyWarning:           "Предупреждение",
		KeyFailure:           "Ошибка",
		KeyRemindMe:          "Напомнить",
		KeyReminder:          "Напоминание",
		KeyToastAutoHide:     "Длительность уведомления (сек)",
		KeyToastMaxLength:    "Макс. длина уведомления",
		KeySystemNotify:      "Дублировать ошибки в систему",
		KeyThemeFile:         "Файл темы",
		KeyThemeLoadFailed:   "Не удалось загрузить файл темы",
		KeySampleSuccess:     "Всё прошло хорошо",
		KeySampleWarning:     "Кое-что требует внимания",
		KeySampleFailure:     "Что-то сломалось",
		KeyCaseInsensitiveEq: "Равны без учёта регистра",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "UI Kit Playground",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyDuration:          "Duração",
		KeyMilliseconds:      "Milissegundos",
		KeyIncludeSeconds:    "Incluir segundos",
		KeyByteSize:          "Tamanho",
		KeyBytes:             "Bytes",
		KeyText:              "Texto",
		KeyAffix:             "Prefixo / sufixo",
		KeyMaxLength:         "Comprimento máximo",
		KeyCompareJSON:       "Comparar JSON",
		KeyCompare:           "Comparar",
		KeyDocumentsEqual:    "Os documentos são iguais",
		KeyDocumentsDiffer:   "Os documentos diferem",
		KeyInvalidJSON:       "JSON inválido",
		KeyInvalidNumber:     "Não é um número",
		KeyToasts:            "Notificações",
		KeySuccess:           "Sucesso",
		KeyWarning:           "Aviso",
		KeyFailure:           "Falha",
		KeyRemindMe:          "Lembrar",
		KeyReminder:          "Lembrete",
		KeyToastAutoHide:     "Duração da notificação (segundos)",
		KeyToastMaxLength:    "Comprimento máximo da notificação",
		KeySystemNotify:      "Enviar falhas ao sistema",
		KeyThemeFile:         "Arquivo de tema",
		KeyThemeLoadFailed:   "Não foi possível carregar o tema",
		KeySampleSuccess:     "Tudo correu bem",
		KeySampleWarning:     "Algo precisa de atenção",
		KeySampleFailure:     "Algo quebrou",
		KeyCaseInsensitiveEq: "Iguais sem diferenciar maiúsculas",
	}
}
