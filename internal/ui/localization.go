package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyFile             = "file"
	KeyEdit             = "edit"
	KeyView             = "view"
	KeyNew              = "new"
	KeyOpen             = "open"
	KeyOpenRecent       = "open_recent"
	KeySave             = "save"
	KeySaveAs           = "save_as"
	KeyExportPNG        = "export_png"
	KeyCopyCode         = "copy_code"
	KeySettings         = "settings"
	KeyUndo             = "undo"
	KeyRedo             = "redo"
	KeyDistribute       = "distribute"
	KeyReset            = "reset"
	KeyShowPoints       = "show_points"
	KeyConstrainEdges   = "constrain_edges"
	KeyLanguage         = "language"
	KeyRows             = "rows"
	KeyCols             = "cols"
	KeyResolution       = "resolution"
	KeyBlur             = "blur"
	KeyBackground       = "background"
	KeyNone             = "none"
	KeyFixedWidth       = "fixed_width"
	KeyFixedHeight      = "fixed_height"
	KeyPalette          = "palette"
	KeyAddColor         = "add_color"
	KeyEditColor        = "edit_color"
	KeyHexPlaceholder   = "hex_placeholder"
	KeyPoint            = "point"
	KeyNoPoint          = "no_point"
	KeyReveal           = "reveal"
	KeyExportStarted    = "export_started"
	KeyExportCompleted  = "export_completed"
	KeyExportFailed     = "export_failed"
	KeyCodeCopied       = "code_copied"
	KeyNoDocuments      = "no_documents"
	KeyDocumentsDir     = "documents_directory"
	KeyExportDir        = "export_directory"
	KeyExportScale      = "export_scale"
	KeyPreviewMaxSide   = "preview_max_side"
	KeyCodeFormat       = "code_format"
	KeyBrowse           = "browse"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeyErrorOpeningFile = "error_opening_file"
	KeyUnsavedTitle     = "unsaved_title"
	KeyUnsavedMessage   = "unsaved_message"
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

	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

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

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Mesh Designer",
		KeyFile:             "File",
		KeyEdit:             "Edit",
		KeyView:             "View",
		KeyNew:              "New",
		KeyOpen:             "Open…",
		KeyOpenRecent:       "Documents",
		KeySave:             "Save",
		KeySaveAs:           "Save As…",
		KeyExportPNG:        "Export PNG",
		KeyCopyCode:         "Copy Code",
		KeySettings:         "Settings",
		KeyUndo:             "Undo",
		KeyRedo:             "Redo",
		KeyDistribute:       "Distribute Evenly",
		KeyReset:            "Reset Mesh",
		KeyShowPoints:       "Show Points",
		KeyConstrainEdges:   "Constrain Edges",
		KeyLanguage:         "Language",
		KeyRows:             "Rows",
		KeyCols:             "Columns",
		KeyResolution:       "Resolution",
		KeyBlur:             "Blur",
		KeyBackground:       "Background",
		KeyNone:             "None",
		KeyFixedWidth:       "Fixed width",
		KeyFixedHeight:      "Fixed height",
		KeyPalette:          "Palette",
		KeyAddColor:         "Add",
		KeyEditColor:        "Edit color",
		KeyHexPlaceholder:   "#RRGGBB",
		KeyPoint:            "Point",
		KeyNoPoint:          "Tap a point to select it",
		KeyReveal:           "Reveal",
		KeyExportStarted:    "Export started",
		KeyExportCompleted:  "Export completed",
		KeyExportFailed:     "Export failed",
		KeyCodeCopied:       "Code copied to clipboard",
		KeyNoDocuments:      "No saved documents",
		KeyDocumentsDir:     "Documents Directory",
		KeyExportDir:        "Export Directory",
		KeyExportScale:      "Export Scale",
		KeyPreviewMaxSide:   "Preview Size Limit",
		KeyCodeFormat:       "Code Format",
		KeyBrowse:           "Browse",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved",
		KeyErrorOpeningFile: "Error opening file",
		KeyUnsavedTitle:     "Unsaved changes",
		KeyUnsavedMessage:   "Discard the changes to the current document?",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Mesh Designer",
		KeyFile:             "Файл",
		KeyEdit:             "Правка",
		KeyView:             "Вид",
		KeyNew:              "Новый",
		KeyOpen:             "Открыть…",
		KeyOpenRecent:       "Документы",
		KeySave:             "Сохранить",
		KeySaveAs:           "Сохранить как…",
		KeyExportPNG:        "Экспорт PNG",
		KeyCopyCode:         "Копировать код",
		KeySettings:         "Настройки",
		KeyUndo:             "Отменить",
		KeyRedo:             "Повторить",
		KeyDistribute:       "Распределить равномерно",
		KeyReset:            "Сбросить сетку",
		KeyShowPoints:       "Показывать точки",
		KeyConstrainEdges:   "Закрепить края",
		KeyLanguage:         "Язык",
		KeyRows:             "Строки",
		KeyCols:             "Столбцы",
		KeyResolution:       "Разрешение",
		KeyBlur:             "Размытие",
		KeyBackground:       "Фон",
		KeyNone:             "Нет",
		KeyFixedWidth:       "Фиксированная ширина",
		KeyFixedHeight:      "Фиксированная высота",
		KeyPalette:          "Палитра",
		KeyAddColor:         "Добавить",
		KeyEditColor:        "Изменить цвет",
		KeyHexPlaceholder:   "#RRGGBB",
		KeyPoint:            "Точка",
		KeyNoPoint:          "Нажмите на точку, чтобы выбрать её",
		KeyReveal:           "Показать",
		KeyExportStarted:    "Экспорт начат",
		KeyExportCompleted:  "Экспорт завершён",
		KeyExportFailed:     "Ошибка экспорта",
		KeyCodeCopied:       "Код скопирован в буфер обмена",
		KeyNoDocuments:      "Нет сохранённых документов",
		KeyDocumentsDir:     "Папка документов",
		KeyExportDir:        "Папка экспорта",
		KeyExportScale:      "Масштаб экспорта",
		KeyPreviewMaxSide:   "Предел размера превью",
		KeyCodeFormat:       "Формат кода",
		KeyBrowse:           "Обзор",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyUnsavedTitle:     "Несохранённые изменения",
		KeyUnsavedMessage:   "Отменить изменения текущего документа?",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Mesh Designer",
		KeyFile:             "Arquivo",
		KeyEdit:             "Editar",
		KeyView:             "Exibir",
		KeyNew:              "Novo",
		KeyOpen:             "Abrir…",
		KeyOpenRecent:       "Documentos",
		KeySave:             "Salvar",
		KeySaveAs:           "Salvar como…",
		KeyExportPNG:        "Exportar PNG",
		KeyCopyCode:         "Copiar código",
		KeySettings:         "Configurações",
		KeyUndo:             "Desfazer",
		KeyRedo:             "Refazer",
		KeyDistribute:       "Distribuir uniformemente",
		KeyReset:            "Redefinir malha",
		KeyShowPoints:       "Mostrar pontos",
		KeyConstrainEdges:   "Fixar bordas",
		KeyLanguage:         "Idioma",
		KeyRows:             "Linhas",
		KeyCols:             "Colunas",
		KeyResolution:       "Resolução",
		KeyBlur:             "Desfoque",
		KeyBackground:       "Fundo",
		KeyNone:             "Nenhum",
		KeyFixedWidth:       "Largura fixa",
		KeyFixedHeight:      "Altura fixa",
		KeyPalette:          "Paleta",
		KeyAddColor:         "Adicionar",
		KeyEditColor:        "Editar cor",
		KeyHexPlaceholder:   "#RRGGBB",
		KeyPoint:            "Ponto",
		KeyNoPoint:          "Toque em um ponto para selecioná-lo",
		KeyReveal:           "Mostrar",
		KeyExportStarted:    "Exportação iniciada",
		KeyExportCompleted:  "Exportação concluída",
		KeyExportFailed:     "Falha na exportação",
		KeyCodeCopied:       "Código copiado",
		KeyNoDocuments:      "Nenhum documento salvo",
		KeyDocumentsDir:     "Diretório de documentos",
		KeyExportDir:        "Diretório de exportação",
		KeyExportScale:      "Escala de exportação",
		KeyPreviewMaxSide:   "Limite da pré-visualização",
		KeyCodeFormat:       "Formato do código",
		KeyBrowse:           "Navegar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyUnsavedTitle:     "Alterações não salvas",
		KeyUnsavedMessage:   "Descartar as alterações do documento atual?",
	}
}
