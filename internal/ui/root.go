package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/uikit/internal/config"
	"github.com/ytget/uikit/internal/deep"
	"github.com/ytget/uikit/internal/delay"
	"github.com/ytget/uikit/internal/format"
	"github.com/ytget/uikit/internal/notify"
	"github.com/ytget/uikit/internal/textutil"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	toaster      *notify.Toaster
	notifier     notify.Notifier
	log          logrus.FieldLogger
	remindDelay  time.Duration

	// Duration section
	ageEntry   *widget.Entry
	ageSeconds *widget.Check
	ageResult  *widget.Label

	// Byte size section
	bytesEntry  *widget.Entry
	bytesResult *widget.Label

	// Text section
	textEntry   *widget.Entry
	affixEntry  *widget.Entry
	maxLenEntry *widget.Entry
	textResult  *widget.Label

	// JSON section
	leftJSON   *widget.Entry
	rightJSON  *widget.Entry
	jsonResult *widget.Label

	// Toast section
	remindStatus *widget.Label
}

// RootOption customizes a RootUI
type RootOption func(*RootUI)

// WithNotifier replaces the toaster-backed notifier
func WithNotifier(n notify.Notifier) RootOption {
	return func(ui *RootUI) { ui.notifier = n }
}

// WithLogger sets the logger used by the UI
func WithLogger(log logrus.FieldLogger) RootOption {
	return func(ui *RootUI) { ui.log = log }
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, opts ...RootOption) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		log:          logrus.StandardLogger(),
		remindDelay:  RemindDelay,
	}
	for _, opt := range opts {
		opt(ui)
	}
	ui.log = ui.log.WithField("component", "ui")

	if ui.notifier == nil {
		toasterOpts := append(settings.ToasterOptions(), notify.WithLogger(ui.log))
		ui.toaster = notify.NewToaster(app, window, toasterOpts...)
		ui.notifier = notify.Multi(ui.toaster, notify.NewLogNotifier(ui.log))
	}
	ui.reloadThemes()

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	content := container.NewVBox(
		container.NewBorder(nil, nil, nil, settingsBtn, widget.NewLabel(ui.localization.GetText(KeyAppTitle))),
		widget.NewCard(IconClock+" "+ui.localization.GetText(KeyDuration), "", ui.createAgeSection()),
		widget.NewCard(ui.localization.GetText(KeyByteSize), "", ui.createBytesSection()),
		widget.NewCard(ui.localization.GetText(KeyText), "", ui.createTextSection()),
		widget.NewCard(ui.localization.GetText(KeyCompareJSON), "", ui.createJSONSection()),
		widget.NewCard(IconBell+" "+ui.localization.GetText(KeyToasts), "", ui.createToastSection()),
	)

	ui.window.SetContent(container.NewVScroll(content))

	// Fill results for the sample inputs
	ui.refreshAge()
	ui.refreshBytes()
	ui.refreshText()

	ui.log.Debug("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem)
	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

func (ui *RootUI) createAgeSection() fyne.CanvasObject {
	ui.ageEntry = widget.NewEntry()
	ui.ageEntry.SetPlaceHolder(ui.localization.GetText(KeyMilliseconds))
	ui.ageEntry.SetText(SampleMilliseconds)
	ui.ageEntry.OnChanged = func(string) { ui.refreshAge() }

	ui.ageResult = widget.NewLabel("")
	ui.ageResult.TextStyle = fyne.TextStyle{Bold: true}

	ui.ageSeconds = widget.NewCheck(ui.localization.GetText(KeyIncludeSeconds), func(include bool) {
		ui.settings.SetAgeIncludeSeconds(include)
		ui.refreshAge()
	})
	ui.ageSeconds.SetChecked(ui.settings.GetAgeIncludeSeconds())

	return container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.ageSeconds, ui.ageEntry),
		ui.ageResult,
	)
}

func (ui *RootUI) createBytesSection() fyne.CanvasObject {
	ui.bytesEntry = widget.NewEntry()
	ui.bytesEntry.SetPlaceHolder(ui.localization.GetText(KeyBytes))
	ui.bytesEntry.SetText(SampleBytes)
	ui.bytesEntry.OnChanged = func(string) { ui.refreshBytes() }

	ui.bytesResult = widget.NewLabel("")
	ui.bytesResult.TextStyle = fyne.TextStyle{Bold: true}

	return container.NewVBox(ui.bytesEntry, ui.bytesResult)
}

func (ui *RootUI) createTextSection() fyne.CanvasObject {
	ui.textEntry = widget.NewEntry()
	ui.textEntry.SetPlaceHolder(ui.localization.GetText(KeyText))
	ui.textEntry.SetText(SampleText)
	ui.textEntry.OnChanged = func(string) { ui.refreshText() }

	ui.affixEntry = widget.NewEntry()
	ui.affixEntry.SetPlaceHolder(ui.localization.GetText(KeyAffix))
	ui.affixEntry.SetText(SampleAffix)
	ui.affixEntry.OnChanged = func(string) { ui.refreshText() }

	ui.maxLenEntry = widget.NewEntry()
	ui.maxLenEntry.SetPlaceHolder(ui.localization.GetText(KeyMaxLength))
	ui.maxLenEntry.SetText(SampleMaxLength)
	ui.maxLenEntry.OnChanged = func(string) { ui.refreshText() }

	ui.textResult = widget.NewLabel("")

	return container.NewVBox(
		ui.textEntry,
		container.NewGridWithColumns(2, ui.affixEntry, ui.maxLenEntry),
		ui.textResult,
	)
}

func (ui *RootUI) createJSONSection() fyne.CanvasObject {
	ui.leftJSON = widget.NewMultiLineEntry()
	ui.leftJSON.SetMinRowsVisible(JSONEntryRows)
	ui.leftJSON.SetText(SampleLeftJSON)

	ui.rightJSON = widget.NewMultiLineEntry()
	ui.rightJSON.SetMinRowsVisible(JSONEntryRows)
	ui.rightJSON.SetText(SampleRightJSON)

	ui.jsonResult = widget.NewLabel("")
	ui.jsonResult.Wrapping = fyne.TextWrapWord

	compareBtn := widget.NewButton(ui.localization.GetText(KeyCompare), ui.onCompareJSON)
	compareBtn.Importance = widget.HighImportance

	return container.NewVBox(
		container.NewGridWithColumns(2, ui.leftJSON, ui.rightJSON),
		compareBtn,
		ui.jsonResult,
	)
}

func (ui *RootUI) createToastSection() fyne.CanvasObject {
	successBtn := widget.NewButton(ui.localization.GetText(KeySuccess), func() {
		notify.Success(ui.notifier, ui.localization.GetText(KeySampleSuccess))
	})
	successBtn.Importance = widget.SuccessImportance

	warningBtn := widget.NewButton(ui.localization.GetText(KeyWarning), func() {
		notify.Warning(ui.notifier, ui.localization.GetText(KeySampleWarning))
	})
	warningBtn.Importance = widget.WarningImportance

	failureBtn := widget.NewButton(ui.localization.GetText(KeyFailure), func() {
		notify.Failure(ui.notifier, ui.localization.GetText(KeySampleFailure))
	})
	failureBtn.Importance = widget.DangerImportance

	remindBtn := widget.NewButton(ui.localization.GetText(KeyRemindMe), ui.onRemind)
	ui.remindStatus = widget.NewLabel("")

	return container.NewVBox(
		container.NewHBox(successBtn, warningBtn, failureBtn, remindBtn),
		ui.remindStatus,
	)
}

// refreshAge renders the duration entry with format.Age
func (ui *RootUI) refreshAge() {
	ms, err := strconv.ParseInt(strings.TrimSpace(ui.ageEntry.Text), 10, 64)
	if err != nil {
		ui.ageResult.SetText(ui.localization.GetText(KeyInvalidNumber))
		return
	}
	ui.ageResult.SetText(format.Age(ms, ui.ageSeconds.Checked))
}

// refreshBytes renders the byte entry with format.Bytes
func (ui *RootUI) refreshBytes() {
	n, err := strconv.ParseInt(strings.TrimSpace(ui.bytesEntry.Text), 10, 64)
	if err != nil {
		ui.bytesResult.SetText(ui.localization.GetText(KeyInvalidNumber))
		return
	}
	ui.bytesResult.SetText(format.Bytes(n))
}

// refreshText shows every string helper applied to the text entry
func (ui *RootUI) refreshText() {
	text := ui.textEntry.Text
	affix := ui.affixEntry.Text

	maxLen, err := strconv.Atoi(strings.TrimSpace(ui.maxLenEntry.Text))
	capped := ui.localization.GetText(KeyInvalidNumber)
	if err == nil {
		capped = textutil.MaxLength(text, maxLen)
	}

	lines := []string{
		fmt.Sprintf(ResultLineFormat, "ltrim", textutil.LTrim(text, affix)),
		fmt.Sprintf(ResultLineFormat, "rtrim", textutil.RTrim(text, affix)),
		fmt.Sprintf(ResultLineFormat, ui.localization.GetText(KeyMaxLength), capped),
		fmt.Sprintf(ResultLineFormat, ui.localization.GetText(KeyCaseInsensitiveEq), strconv.FormatBool(textutil.IEquals(text, affix))),
	}
	ui.textResult.SetText(strings.Join(lines, "\n"))
}

// onCompareJSON compares both JSON entries and toasts the outcome
func (ui *RootUI) onCompareJSON() {
	left, err := deep.Parse([]byte(ui.leftJSON.Text))
	if err != nil {
		ui.reportInvalidJSON(err)
		return
	}
	right, err := deep.Parse([]byte(ui.rightJSON.Text))
	if err != nil {
		ui.reportInvalidJSON(err)
		return
	}

	if deep.Equal(left, right) {
		ui.jsonResult.SetText("")
		notify.Success(ui.notifier, ui.localization.GetText(KeyDocumentsEqual))
		return
	}

	patch, err := deep.Diff(left, right)
	if err != nil {
		ui.log.WithError(err).Warn("JSON diff failed")
		ui.jsonResult.SetText(err.Error())
	} else {
		ui.jsonResult.SetText(string(patch))
	}
	notify.Warning(ui.notifier, ui.localization.GetText(KeyDocumentsDiffer))
}

func (ui *RootUI) reportInvalidJSON(err error) {
	ui.log.WithError(err).Debug("JSON compare rejected input")
	ui.jsonResult.SetText(err.Error())
	notify.Failure(ui.notifier, ui.localization.GetText(KeyInvalidJSON))
}

// onRemind counts down in the toast section and shows a toast once
// remindDelay has passed, without blocking the UI
func (ui *RootUI) onRemind() {
	wait := ui.remindDelay
	message := ui.localization.GetText(KeyReminder) + MiddleDotSeparator +
		format.AgeDuration(wait, true)
	deadline := time.Now().Add(wait)
	ui.remindStatus.SetText(format.Clock(secondsLeft(wait)))

	go func() {
		for left := time.Until(deadline); left > 0; left = time.Until(deadline) {
			<-delay.After(min(left, time.Second))
			remaining := secondsLeft(time.Until(deadline))
			fyne.Do(func() { ui.remindStatus.SetText(format.Clock(remaining)) })
		}
		notify.Success(ui.notifier, message)
	}()
}

// secondsLeft rounds a remaining duration up to whole seconds
func secondsLeft(d time.Duration) int {
	return int((d + time.Second - 1) / time.Second)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running toaster and theme
func (ui *RootUI) applySettings() {
	if ui.toaster != nil {
		ui.toaster.Configure(ui.settings.ToasterOptions()...)
	}
	ui.reloadThemes()
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	notify.Success(ui.notifier, ui.localization.GetText(KeySettingsSaved))
}

// reloadThemes loads toast colors from the configured theme file and applies
// them to the toaster and to the app theme
func (ui *RootUI) reloadThemes() {
	path := ui.settings.GetThemeFile()
	themes, err := config.LoadThemes(path)
	if err != nil {
		ui.log.WithError(err).WithField("path", path).Warn("Theme file ignored")
		notify.Warning(ui.notifier, ui.localization.GetText(KeyThemeLoadFailed))
		themes = notify.DefaultThemes()
	}
	if ui.toaster != nil {
		ui.toaster.SetThemes(themes)
	}
	ui.app.Settings().SetTheme(NewCompactTheme(themes))
}
