package ui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/mesh-designer/internal/config"
	"github.com/ytget/mesh-designer/internal/document"
	"github.com/ytget/mesh-designer/internal/export"
	"github.com/ytget/mesh-designer/internal/model"
	"github.com/ytget/mesh-designer/internal/platform"
	"github.com/ytget/mesh-designer/internal/session"
)

// Keyboard shortcuts
var (
	shortcutNew    = &desktop.CustomShortcut{KeyName: fyne.KeyN, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutOpen   = &desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutSave   = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutSaveAs = &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	shortcutExport = &desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutUndo   = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	shortcutRedo   = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}
	shortcutRedoY  = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}
)

// RootUI represents the main window
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	session      *session.Session
	exporter     export.Exporter
	settings     *config.Settings
	localization *Localization

	canvas *MeshCanvas
	panel  *SidePanel

	undoItem       *fyne.MenuItem
	redoItem       *fyne.MenuItem
	showPointsItem *fyne.MenuItem
	constrainItem  *fyne.MenuItem
	menuState      [4]bool
}

// NewRootUI creates the main window content for s
func NewRootUI(window fyne.Window, app fyne.App, s *session.Session, exporter export.Exporter, settings *config.Settings) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		session:      s,
		exporter:     exporter,
		settings:     settings,
		localization: localization,
	}

	ui.canvas = NewMeshCanvas(s, settings.GetPreviewMaxSide())
	ui.canvas.SetSelectCallback(func(int, int, bool) {
		if ui.panel != nil {
			ui.panel.refreshPoint()
		}
	})

	s.SetUpdateCallback(func() { fyne.Do(ui.refresh) })
	s.SetNotifyCallback(func(n session.Notification) {
		fyne.Do(func() { ui.onNotification(n) })
	})
	exporter.SetUpdateCallback(ui.onExportUpdate)

	if icon := AppIcon(); icon != nil {
		window.SetIcon(icon)
	}
	window.SetCloseIntercept(ui.onClose)
	window.Canvas().AddShortcut(shortcutRedoY, func(fyne.Shortcut) { ui.onRedo() })

	ui.setupUI()
	platform.Logger().Info("ui ready", "language", localization.GetCurrentLanguage())
	return ui
}

// setupUI builds the menu and the window content in the current language
func (ui *RootUI) setupUI() {
	ui.createMenu()
	ui.panel = NewSidePanel(ui.session, ui.canvas, ui.localization, ui.window)
	ui.window.SetContent(adaptiveLayout(ui.canvas, ui.panel.Content(), ui.localization.GetText(KeyPalette)))
	ui.updateTitle()
}

func (ui *RootUI) createMenu() {
	l := ui.localization

	newItem := fyne.NewMenuItem(l.GetText(KeyNew), ui.onNew)
	newItem.Shortcut = shortcutNew
	openItem := fyne.NewMenuItem(l.GetText(KeyOpen), ui.onOpen)
	openItem.Shortcut = shortcutOpen
	documentsItem := fyne.NewMenuItem(l.GetText(KeyOpenRecent), nil)
	documentsItem.ChildMenu = ui.documentsMenu()
	saveItem := fyne.NewMenuItem(l.GetText(KeySave), ui.onSave)
	saveItem.Shortcut = shortcutSave
	saveAsItem := fyne.NewMenuItem(l.GetText(KeySaveAs), ui.onSaveAs)
	saveAsItem.Shortcut = shortcutSaveAs
	exportItem := fyne.NewMenuItem(l.GetText(KeyExportPNG), ui.onExportPNG)
	exportItem.Shortcut = shortcutExport

	codeItem := fyne.NewMenuItem(l.GetText(KeyCopyCode), nil)
	codeMenu := fyne.NewMenu("")
	for _, format := range export.Formats {
		codeMenu.Items = append(codeMenu.Items, fyne.NewMenuItem(string(format), func() {
			ui.onCopyCode(format)
		}))
	}
	codeItem.ChildMenu = codeMenu

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), ui.onShowSettings)

	ui.undoItem = fyne.NewMenuItem(l.GetText(KeyUndo), ui.onUndo)
	ui.undoItem.Shortcut = shortcutUndo
	ui.redoItem = fyne.NewMenuItem(l.GetText(KeyRedo), ui.onRedo)
	ui.redoItem.Shortcut = shortcutRedo
	distributeItem := fyne.NewMenuItem(l.GetText(KeyDistribute), ui.session.DistributeEvenly)
	resetItem := fyne.NewMenuItem(l.GetText(KeyReset), ui.session.Reset)

	ui.showPointsItem = fyne.NewMenuItem(l.GetText(KeyShowPoints), ui.session.ToggleShowPoints)
	ui.constrainItem = fyne.NewMenuItem(l.GetText(KeyConstrainEdges), func() {
		constrain := !ui.session.ConstrainEdges()
		ui.session.SetConstrainEdges(constrain)
		ui.settings.SetConstrainEdges(constrain)
	})

	languageItem := fyne.NewMenuItem(l.GetText(KeyLanguage), nil)
	languageMenu := fyne.NewMenu("")
	for code, name := range l.GetAvailableLanguages() {
		item := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(code)
		})
		item.Checked = l.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, item)
	}
	languageItem.ChildMenu = languageMenu

	ui.menuState = [4]bool{}
	ui.syncMenuState()

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile),
			newItem, openItem, documentsItem,
			fyne.NewMenuItemSeparator(),
			saveItem, saveAsItem,
			fyne.NewMenuItemSeparator(),
			exportItem, codeItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		fyne.NewMenu(l.GetText(KeyEdit),
			ui.undoItem, ui.redoItem,
			fyne.NewMenuItemSeparator(),
			distributeItem, resetItem,
		),
		fyne.NewMenu(l.GetText(KeyView),
			ui.showPointsItem, ui.constrainItem,
			fyne.NewMenuItemSeparator(),
			languageItem,
		),
	))
}

// documentsMenu lists the documents saved in the documents directory
func (ui *RootUI) documentsMenu() *fyne.Menu {
	menu := fyne.NewMenu("")
	entries, err := ui.session.ListDocuments()
	if err != nil {
		platform.Logger().Warn("failed to list documents", "error", err)
	}
	for _, entry := range entries {
		menu.Items = append(menu.Items, fyne.NewMenuItem(entry.Name, func() {
			ui.confirmDiscard(func() { ui.session.LoadDocument(entry.Path) })
		}))
	}
	if len(menu.Items) == 0 {
		empty := fyne.NewMenuItem(ui.localization.GetText(KeyNoDocuments), nil)
		empty.Disabled = true
		menu.Items = append(menu.Items, empty)
	}
	return menu
}

// syncMenuState updates the stateful menu items and reports whether any changed
func (ui *RootUI) syncMenuState() bool {
	state := [4]bool{
		!ui.session.CanUndo(),
		!ui.session.CanRedo(),
		ui.session.ShowPoints(),
		ui.session.ConstrainEdges(),
	}
	if state == ui.menuState {
		return false
	}
	ui.menuState = state
	ui.undoItem.Disabled = state[0]
	ui.redoItem.Disabled = state[1]
	ui.showPointsItem.Checked = state[2]
	ui.constrainItem.Checked = state[3]
	return true
}

// refresh redraws everything after a session change. Runs on the UI thread.
func (ui *RootUI) refresh() {
	ui.canvas.Refresh()
	ui.panel.Refresh()
	ui.updateTitle()

	if show := ui.session.ShowPoints(); show != ui.settings.GetShowPoints() {
		ui.settings.SetShowPoints(show)
	}
	if ui.syncMenuState() {
		if menu := ui.window.MainMenu(); menu != nil {
			menu.Refresh()
		}
	}
}

func (ui *RootUI) updateTitle() {
	title := ui.localization.GetText(KeyAppTitle) + MiddleDotSeparator + ui.session.Name()
	if ui.session.HasUnsavedChanges() {
		title += UnsavedMarker
	}
	ui.window.SetTitle(title)
}

func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.setupUI()
}

// confirmDiscard runs action, asking first when there are unsaved changes
func (ui *RootUI) confirmDiscard(action func()) {
	if !ui.session.HasUnsavedChanges() {
		action()
		return
	}
	dialog.ShowConfirm(
		ui.localization.GetText(KeyUnsavedTitle),
		ui.localization.GetText(KeyUnsavedMessage),
		func(ok bool) {
			if ok {
				action()
			}
		},
		ui.window,
	)
}

func (ui *RootUI) onNew() {
	ui.confirmDiscard(func() {
		ui.canvas.ClearSelection()
		ui.session.NewDocument()
	})
}

func (ui *RootUI) onOpen() {
	ui.confirmDiscard(func() {
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil || reader == nil {
				return
			}
			path := reader.URI().Path()
			reader.Close()
			ui.canvas.ClearSelection()
			ui.session.LoadDocument(path)
		}, ui.window)
		d.SetFilter(storage.NewExtensionFileFilter([]string{document.Extension}))
		ui.setDialogLocation(d, ui.session.DocumentsDir())
		d.Show()
	})
}

// onSave writes to the current path or the documents directory. Results
// arrive as session notifications.
func (ui *RootUI) onSave() {
	ui.session.SaveDocument("")
}

func (ui *RootUI) onSaveAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		ui.session.SaveDocument(path)
	}, ui.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{document.Extension}))
	d.SetFileName(ui.session.Name() + document.Extension)
	ui.setDialogLocation(d, ui.session.DocumentsDir())
	d.Show()
}

// setDialogLocation starts a file dialog in dir when it exists
func (ui *RootUI) setDialogLocation(d *dialog.FileDialog, dir string) {
	if dir == "" {
		return
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	d.SetLocation(lister)
}

func (ui *RootUI) onUndo() {
	if ui.session.Undo() {
		ui.canvas.ClearSelection()
	}
}

func (ui *RootUI) onRedo() {
	if ui.session.Redo() {
		ui.canvas.ClearSelection()
	}
}

func (ui *RootUI) onExportPNG() {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		ui.showToast(ui.localization.GetText(KeyExportFailed), err.Error(), true)
		return
	}

	size := ui.canvas.Size()
	job, err := ui.session.Snapshot().ExportJob(dir, ui.settings.GetExportScale(), int(size.Width), int(size.Height))
	if err != nil {
		ui.showToast(ui.localization.GetText(KeyExportFailed), err.Error(), true)
		return
	}
	task, err := ui.exporter.StartExport(job)
	if err != nil {
		ui.showToast(ui.localization.GetText(KeyExportFailed), err.Error(), true)
		return
	}
	ui.showToast(ui.localization.GetText(KeyExportStarted), filepath.Base(task.OutputPath), false)
}

// onExportUpdate runs on the export goroutine
func (ui *RootUI) onExportUpdate(task *model.ExportTask) {
	switch task.Status {
	case model.TaskStatusCompleted:
		fyne.Do(func() {
			title := ui.localization.GetText(KeyExportCompleted)
			ui.app.SendNotification(fyne.NewNotification(title, task.GetDisplayTitle()))
			ui.showToast(title, task.GetDisplayTitle(), false,
				toastAction{label: ui.localization.GetText(KeyReveal), onTap: func() { ui.onRevealFile(task.OutputPath) }},
				toastAction{label: ui.localization.GetText(KeyOpen), onTap: func() { ui.onOpenFile(task.OutputPath) }},
			)
		})
	case model.TaskStatusError:
		fyne.Do(func() {
			ui.showToast(ui.localization.GetText(KeyExportFailed), task.LastError, true)
		})
	}
}

func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		platform.Logger().Error("failed to reveal file", "path", path, "error", err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile), err.Error(), true)
	}
}

func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		platform.Logger().Error("failed to open file", "path", path, "error", err)
		ui.showToast(ui.localization.GetText(KeyErrorOpeningFile), err.Error(), true)
	}
}

func (ui *RootUI) onCopyCode(format export.Format) {
	code, err := ui.session.Code(format)
	if err != nil {
		ui.showToast(ui.localization.GetText(KeyCopyCode), err.Error(), true)
		return
	}
	ui.app.Clipboard().SetContent(code)
	ui.showToast(ui.localization.GetText(KeyCodeCopied), fmt.Sprintf("%s%s%d B", format, MiddleDotSeparator, len(code)), false)
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.session.SetDocumentsDir(ui.settings.GetDocumentsDirectory())
	ui.canvas.SetPreviewMaxSide(ui.settings.GetPreviewMaxSide())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.setupUI()
	ui.showToast(ui.localization.GetText(KeySettings), ui.localization.GetText(KeySettingsSaved), false)
}

func (ui *RootUI) onNotification(n session.Notification) {
	title := ui.localization.GetText(KeyAppTitle)
	ui.showToast(title, n.Message, n.Kind == session.NotifyError)
	if n.Kind == session.NotifyInfo {
		ui.createMenu()
	}
}

func (ui *RootUI) onClose() {
	ui.confirmDiscard(func() {
		ui.canvas.Close()
		if err := ui.session.Close(); err != nil {
			platform.Logger().Warn("failed to stop document watcher", "error", err)
		}
		ui.window.Close()
	})
}
