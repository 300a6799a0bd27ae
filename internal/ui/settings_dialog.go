package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/mesh-designer/internal/config"
	"github.com/ytget/mesh-designer/internal/export"
)

// SettingsDialog edits the stored preferences
type SettingsDialog struct {
	settings *config.Settings
	loc      *Localization
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	documentsDirEntry *widget.Entry
	exportDirEntry    *widget.Entry
	exportScaleSelect *widget.Select
	previewSideEntry  *widget.Entry
	codeFormatSelect  *widget.Select
	languageSelect    *widget.Select
	languageCodes     map[string]string
}

// NewSettingsDialog creates the settings dialog. onSaved runs after the
// preferences were written.
func NewSettingsDialog(settings *config.Settings, loc *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		loc:      loc,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

func (sd *SettingsDialog) createUI() {
	sd.documentsDirEntry = widget.NewEntry()
	sd.exportDirEntry = widget.NewEntry()

	var scales []string
	for s := config.MinExportScale; s <= config.MaxExportScale; s++ {
		scales = append(scales, strconv.Itoa(s)+"x")
	}
	sd.exportScaleSelect = widget.NewSelect(scales, nil)

	sd.previewSideEntry = widget.NewEntry()
	sd.previewSideEntry.SetPlaceHolder(strconv.Itoa(config.MinPreviewMaxSide) + "-" + strconv.Itoa(config.MaxPreviewMaxSide))

	var formats []string
	for _, f := range export.Formats {
		formats = append(formats, string(f))
	}
	sd.codeFormatSelect = widget.NewSelect(formats, nil)

	sd.languageCodes = make(map[string]string)
	var languages []string
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languages = append(languages, name)
	}
	sort.Strings(languages)
	sd.languageSelect = widget.NewSelect(languages, nil)

	form := widget.NewForm(
		widget.NewFormItem(sd.loc.GetText(KeyDocumentsDir), sd.directoryRow(sd.documentsDirEntry)),
		widget.NewFormItem(sd.loc.GetText(KeyExportDir), sd.directoryRow(sd.exportDirEntry)),
		widget.NewFormItem(sd.loc.GetText(KeyExportScale), sd.exportScaleSelect),
		widget.NewFormItem(sd.loc.GetText(KeyPreviewMaxSide), sd.previewSideEntry),
		widget.NewFormItem(sd.loc.GetText(KeyCodeFormat), sd.codeFormatSelect),
		widget.NewFormItem(sd.loc.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.loc.GetText(KeySettings),
		sd.loc.GetText(KeySave),
		sd.loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

func (sd *SettingsDialog) directoryRow(entry *widget.Entry) fyne.CanvasObject {
	browse := widget.NewButton(sd.loc.GetText(KeyBrowse), func() {
		dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
			if err != nil || uri == nil {
				return
			}
			entry.SetText(uri.Path())
		}, sd.window)
	})
	return container.NewBorder(nil, nil, nil, browse, entry)
}

func (sd *SettingsDialog) loadCurrentSettings() {
	sd.documentsDirEntry.SetText(sd.settings.GetDocumentsDirectory())
	sd.exportDirEntry.SetText(sd.settings.GetExportDirectory())
	sd.exportScaleSelect.SetSelected(strconv.Itoa(sd.settings.GetExportScale()) + "x")
	sd.previewSideEntry.SetText(strconv.Itoa(sd.settings.GetPreviewMaxSide()))
	sd.codeFormatSelect.SetSelected(sd.settings.GetCodeFormat())

	lang := sd.settings.GetLanguage()
	for name, code := range sd.languageCodes {
		if code == lang {
			sd.languageSelect.SetSelected(name)
		}
	}
}

func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if dir := sd.documentsDirEntry.Text; dir != "" {
		sd.settings.SetDocumentsDirectory(dir)
	}
	if dir := sd.exportDirEntry.Text; dir != "" {
		sd.settings.SetExportDirectory(dir)
	}
	if scale := sd.exportScaleSelect.SelectedIndex(); scale >= 0 {
		sd.settings.SetExportScale(config.MinExportScale + scale)
	}
	if side, err := strconv.Atoi(sd.previewSideEntry.Text); err == nil {
		sd.settings.SetPreviewMaxSide(side)
	}
	if format := sd.codeFormatSelect.Selected; format != "" {
		sd.settings.SetCodeFormat(format)
	}
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
