package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyChooseFile      = "choose_file"
	KeyConvert         = "convert"
	KeyReset           = "reset"
	KeySettings        = "settings"
	KeyFile            = "file"
	KeyLanguage        = "language"
	KeyOutputDirectory = "output_directory"
	KeyAskWhereToSave  = "ask_where_to_save"
	KeyAutoReveal      = "auto_reveal"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyBrowse          = "browse"
	KeyDropHint        = "drop_hint"
	KeyDecoding        = "decoding"
	KeyEncoding        = "encoding"
	KeySavedAs         = "saved_as"
	KeyConversionDone  = "conversion_done"
	KeyHistoryTitle    = "history_title"
	KeySettingsSaved   = "settings_saved"
	KeyErrorSavingFile = "error_saving_file"
	KeyErrorOpening    = "error_opening_file"
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
		KeyAppTitle:        "PNGify",
		KeyChooseFile:      "Choose JPG…",
		KeyConvert:         "Convert to PNG",
		KeyReset:           "Reset",
		KeySettings:        "Settings",
		KeyFile:            "File",
		KeyLanguage:        "Language",
		KeyOutputDirectory: "Output Directory",
		KeyAskWhereToSave:  "Ask where to save each file",
		KeyAutoReveal:      "Reveal converted file in file manager",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyBrowse:          "Browse",
		KeyDropHint:        "Drop a JPG here or choose a file",
		KeyDecoding:        "Reading image…",
		KeyEncoding:        "Encoding PNG…",
		KeySavedAs:         "Saved as",
		KeyConversionDone:  "Conversion complete",
		KeyHistoryTitle:    "Recent conversions",
		KeySettingsSaved:   "Settings saved successfully!",
		KeyErrorSavingFile: "Error saving file",
		KeyErrorOpening:    "Error opening file",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "PNGify",
		KeyChooseFile:      "Выбрать JPG…",
		KeyConvert:         "Конвертировать в PNG",
		KeyReset:           "Сброс",
		KeySettings:        "Настройки",
		KeyFile:            "Файл",
		KeyLanguage:        "Язык",
		KeyOutputDirectory: "Папка вывода",
		KeyAskWhereToSave:  "Спрашивать, куда сохранять",
		KeyAutoReveal:      "Показывать файл в файловом менеджере",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyBrowse:          "Обзор",
		KeyDropHint:        "Перетащите JPG сюда или выберите файл",
		KeyDecoding:        "Чтение изображения…",
		KeyEncoding:        "Кодирование PNG…",
		KeySavedAs:         "Сохранено как",
		KeyConversionDone:  "Конвертация завершена",
		KeyHistoryTitle:    "Недавние конвертации",
		KeySettingsSaved:   "Настройки успешно сохранены!",
		KeyErrorSavingFile: "Ошибка сохранения файла",
		KeyErrorOpening:    "Ошибка открытия файла",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "PNGify",
		KeyChooseFile:      "Escolher JPG…",
		KeyConvert:         "Converter para PNG",
		KeyReset:           "Redefinir",
		KeySettings:        "Configurações",
		KeyFile:            "Arquivo",
		KeyLanguage:        "Idioma",
		KeyOutputDirectory: "Diretório de Saída",
		KeyAskWhereToSave:  "Perguntar onde salvar cada arquivo",
		KeyAutoReveal:      "Mostrar arquivo convertido no gerenciador",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyBrowse:          "Navegar",
		KeyDropHint:        "Arraste um JPG aqui ou escolha um arquivo",
		KeyDecoding:        "Lendo imagem…",
		KeyEncoding:        "Codificando PNG…",
		KeySavedAs:         "Salvo como",
		KeyConversionDone:  "Conversão concluída",
		KeyHistoryTitle:    "Conversões recentes",
		KeySettingsSaved:   "Configurações salvas com sucesso!",
		KeyErrorSavingFile: "Erro ao salvar arquivo",
		KeyErrorOpening:    "Erro ao abrir arquivo",
	}
}
