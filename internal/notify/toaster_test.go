package notify

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestToaster(t *testing.T, opts ...ToasterOption) *Toaster {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := app.NewWindow("toasts")
	window.Resize(fyne.NewSize(800, 600))

	logger, _ := logtest.NewNullLogger()
	opts = append([]ToasterOption{WithLogger(logger)}, opts...)
	return NewToaster(app, window, opts...)
}

func TestToaster_ShowsAndHides(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(50*time.Millisecond))

	Success(toaster, "saved")
	Warning(toaster, "slow")

	assert.Eventually(t, func() bool { return toaster.Active() == 2 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return toaster.Active() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestToaster_NotifyDoesNotBlock(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(time.Hour))

	start := time.Now()
	for i := 0; i < 20; i++ {
		Failure(toaster, "burst")
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestToaster_Theme(t *testing.T) {
	custom := DefaultThemes()
	custom[SeverityWarning] = Theme{Background: namedColors["black"], Text: namedColors["white"], Bar: namedColors["red"]}

	toaster := newTestToaster(t, WithThemes(Themes{SeverityWarning: custom[SeverityWarning]}))

	assert.Equal(t, custom[SeverityWarning], toaster.Theme(SeverityWarning))
	// severities missing from the table fall back to the defaults
	assert.Equal(t, DefaultThemes()[SeveritySuccess], toaster.Theme(SeveritySuccess))

	toaster.SetThemes(DefaultThemes())
	assert.Equal(t, DefaultThemes()[SeverityWarning], toaster.Theme(SeverityWarning))
}

func TestToaster_SystemNotification(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(time.Hour), WithSystemNotifications(true), WithMaxLength(4))

	test.AssertNotificationSent(t, fyne.NewNotification("Failure", "disk ...."), func() {
		Failure(toaster, "disk full")
	})
}

func TestToaster_NilWindow(t *testing.T) {
	app := test.NewApp()
	t.Cleanup(app.Quit)

	logger, _ := logtest.NewNullLogger()
	toaster := NewToaster(nil, nil, WithLogger(logger), WithAutoHide(time.Hour))

	assert.NotPanics(t, func() { Success(toaster, "headless") })
	assert.Equal(t, 0, toaster.Active())
}

func (t *Toaster) shownTexts() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	texts := make([]string, 0, len(t.active))
	for _, shown := range t.active {
		texts = append(texts, shown.text)
	}
	return texts
}

func TestToaster_Configure(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(time.Hour))

	toaster.Configure(WithAutoHide(300*time.Millisecond), WithMaxLength(3))
	Warning(toaster, "reconfigured")

	require.Eventually(t, func() bool { return toaster.Active() == 1 }, 250*time.Millisecond, time.Millisecond)
	assert.Equal(t, []string{"rec ...."}, toaster.shownTexts())
	assert.Eventually(t, func() bool { return toaster.Active() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestToaster_ReusesFreedSlot(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(time.Hour))
	theme := toaster.Theme(SeveritySuccess)

	toaster.show("first", "first", theme)
	toaster.show("second", "second", theme)
	toaster.hide("first")
	toaster.show("third", "third", theme)

	second, third := toaster.active["second"], toaster.active["third"]
	assert.Equal(t, 1, second.slot)
	assert.Equal(t, 0, third.slot, "a new toast takes the row freed at the top")

	toaster.show("fourth", "fourth", theme)
	assert.Equal(t, 2, toaster.active["fourth"].slot)
}

func TestToaster_ConfigureLogger(t *testing.T) {
	toaster := newTestToaster(t, WithAutoHide(time.Hour))

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	toaster.Configure(WithLogger(logger))
	Success(toaster, "traced")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "traced", entry.Message)
	assert.Equal(t, "toaster", entry.Data["component"])
	assert.Equal(t, "success", entry.Data["severity"])
}
