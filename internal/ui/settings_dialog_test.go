package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/uikit/internal/config"
)

func TestSettingsDialog_LoadAndSave(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := app.NewWindow("settings")

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), window)
	sd.Show()

	assert.Equal(t, "5", sd.autoHideEntry.Text)
	assert.Equal(t, "120", sd.maxLengthEntry.Text)
	assert.True(t, sd.systemCheck.Checked)
	assert.Equal(t, "system", sd.languageSelect.Selected)

	saved := false
	sd.onSaved = func() { saved = true }

	sd.autoHideEntry.SetText("9")
	sd.maxLengthEntry.SetText("200")
	sd.systemCheck.SetChecked(false)
	sd.themeFileEntry.SetText("/tmp/themes.yaml")
	sd.languageSelect.SetSelected("ru")
	sd.onSave(true)

	assert.True(t, saved)
	assert.Equal(t, 9*time.Second, settings.GetToastAutoHide())
	assert.Equal(t, 200, settings.GetToastMaxLength())
	assert.False(t, settings.GetSystemNotifications())
	assert.Equal(t, "/tmp/themes.yaml", settings.GetThemeFile())
	assert.Equal(t, "ru", settings.GetLanguage())
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)

	settings := config.NewSettings(app)
	sd := NewSettingsDialog(settings, NewLocalization(), app.NewWindow("settings"))
	sd.Show()

	sd.autoHideEntry.SetText("30")
	sd.onSave(false)

	assert.Equal(t, config.DefaultToastAutoHide, settings.GetToastAutoHide())
}
