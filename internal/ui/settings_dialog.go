package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/uikit/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	autoHideEntry  *widget.Entry
	maxLengthEntry *widget.Entry
	systemCheck    *widget.Check
	themeFileEntry *widget.Entry
	languageSelect *widget.Select
}

// ShowSettingsDialog creates the settings dialog and shows it. onSaved runs after
// the settings were written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.autoHideEntry = widget.NewEntry()
	sd.autoHideEntry.SetPlaceHolder("1-60")

	sd.maxLengthEntry = widget.NewEntry()
	sd.maxLengthEntry.SetPlaceHolder("10-500")

	sd.systemCheck = widget.NewCheck(sd.localization.GetText(KeySystemNotify), nil)

	// Theme file selection
	sd.themeFileEntry = widget.NewEntry()
	sd.themeFileEntry.SetPlaceHolder("themes.yaml")
	browseBtn := widget.NewButton("…", sd.onBrowseThemeFile)
	themeRow := container.NewBorder(nil, nil, nil, browseBtn, sd.themeFileEntry)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyToastAutoHide)+":"),
		sd.autoHideEntry,

		widget.NewLabel(sd.localization.GetText(KeyToastMaxLength)+":"),
		sd.maxLengthEntry,

		sd.systemCheck,

		widget.NewLabel(sd.localization.GetText(KeyThemeFile)+":"),
		themeRow,

		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.autoHideEntry.SetText(strconv.Itoa(int(sd.settings.GetToastAutoHide() / time.Second)))
	sd.maxLengthEntry.SetText(strconv.Itoa(sd.settings.GetToastMaxLength()))
	sd.systemCheck.SetChecked(sd.settings.GetSystemNotifications())
	sd.themeFileEntry.SetText(sd.settings.GetThemeFile())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseThemeFile lets the user pick a YAML theme file
func (sd *SettingsDialog) onBrowseThemeFile() {
	open := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		sd.themeFileEntry.SetText(reader.URI().Path())
	}, sd.window)
	open.SetFilter(storage.NewExtensionFileFilter([]string{".yaml", ".yml"}))
	open.Show()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if seconds, err := strconv.Atoi(sd.autoHideEntry.Text); err == nil {
		sd.settings.SetToastAutoHide(time.Duration(seconds) * time.Second)
	}

	if maxLength, err := strconv.Atoi(sd.maxLengthEntry.Text); err == nil {
		sd.settings.SetToastMaxLength(maxLength)
	}

	sd.settings.SetSystemNotifications(sd.systemCheck.Checked)

	// An empty path switches back to the default themes
	sd.settings.SetThemeFile(sd.themeFileEntry.Text)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
