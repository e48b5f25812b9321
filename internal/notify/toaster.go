package notify

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/uikit/internal/textutil"
)

// Toast sizing and behavior
const (
	ToastWidth        float32 = 300
	ToastHeight       float32 = 64
	ToastMargin       float32 = 20
	ToastSpacing      float32 = 8
	ToastBarHeight    float32 = 4
	DefaultAutoHide           = 5 * time.Second
	DefaultMaxLength          = 120
)

// Toaster shows notifications as themed popups in the top-right corner of a
// Fyne window and hides them after a delay. It is safe for concurrent use;
// all widget work runs on the Fyne goroutine through fyne.Do.
type Toaster struct {
	app    fyne.App
	window fyne.Window

	mu        sync.RWMutex
	log       logrus.FieldLogger
	themes    Themes
	autoHide  time.Duration
	maxLength int
	system    bool
	active    map[string]*toast
}

// toast is a popup on screen. slot is its row counted from the top.
type toast struct {
	popup *widget.PopUp
	text  string
	slot  int
}

// ToasterOption configures a Toaster
type ToasterOption func(*Toaster)

// WithThemes replaces the default toast colors
func WithThemes(themes Themes) ToasterOption {
	return func(t *Toaster) { t.themes = themes }
}

// WithAutoHide sets how long a toast stays on screen
func WithAutoHide(d time.Duration) ToasterOption {
	return func(t *Toaster) { t.autoHide = d }
}

// WithMaxLength caps message length; longer messages are cut with textutil.MaxLength
func WithMaxLength(n int) ToasterOption {
	return func(t *Toaster) { t.maxLength = n }
}

// WithSystemNotifications mirrors failures to the operating system notification center
func WithSystemNotifications(enabled bool) ToasterOption {
	return func(t *Toaster) { t.system = enabled }
}

// WithLogger sets the logger used to trace toasts
func WithLogger(log logrus.FieldLogger) ToasterOption {
	return func(t *Toaster) { t.log = log.WithField("component", "toaster") }
}

// NewToaster creates a Toaster drawing on window
func NewToaster(app fyne.App, window fyne.Window, opts ...ToasterOption) *Toaster {
	t := &Toaster{
		app:       app,
		window:    window,
		log:       logrus.StandardLogger().WithField("component", "toaster"),
		themes:    DefaultThemes(),
		autoHide:  DefaultAutoHide,
		maxLength: DefaultMaxLength,
		active:    make(map[string]*toast),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetThemes swaps the toast colors used for future toasts
func (t *Toaster) SetThemes(themes Themes) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.themes = themes
}

// Configure applies opts to future toasts
func (t *Toaster) Configure(opts ...ToasterOption) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, opt := range opts {
		opt(t)
	}
}

// Theme returns the colors used for severity, falling back to the defaults
func (t *Toaster) Theme(severity Severity) Theme {
	t.mu.RLock()
	theme, ok := t.themes[severity]
	t.mu.RUnlock()
	if ok {
		return theme
	}
	return DefaultThemes()[severity]
}

// Active returns the number of toasts currently on screen
func (t *Toaster) Active() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.active)
}

// Notify schedules a toast and returns immediately
func (t *Toaster) Notify(message string, severity Severity) {
	t.mu.RLock()
	text := textutil.MaxLength(message, t.maxLength)
	autoHide := t.autoHide
	system := t.system
	log := t.log
	t.mu.RUnlock()

	id := uuid.NewString()
	theme := t.Theme(severity)

	log.WithFields(logrus.Fields{
		"toast_id": id,
		"severity": severity.String(),
	}).Debug(text)

	fyne.Do(func() {
		t.show(id, text, theme)
	})

	time.AfterFunc(autoHide, func() {
		fyne.Do(func() { t.hide(id) })
	})

	if system && severity == SeverityFailure && t.app != nil {
		t.app.SendNotification(fyne.NewNotification(severity.Title(), text))
	}
}

// show builds and displays the popup. Must run on the Fyne goroutine.
func (t *Toaster) show(id, text string, theme Theme) {
	if t.window == nil {
		return
	}

	background := canvas.NewRectangle(theme.Background)
	label := canvas.NewText(text, theme.Text)
	label.TextStyle = fyne.TextStyle{Bold: true}
	bar := canvas.NewRectangle(theme.Bar)
	bar.SetMinSize(fyne.NewSize(ToastWidth, ToastBarHeight))

	content := container.NewStack(
		background,
		container.NewBorder(nil, bar, nil, nil, container.NewPadded(label)),
	)

	popup := widget.NewPopUp(content, t.window.Canvas())

	t.mu.Lock()
	slot := t.freeSlot()
	t.active[id] = &toast{popup: popup, text: text, slot: slot}
	t.mu.Unlock()

	canvasSize := t.window.Canvas().Size()
	pos := fyne.NewPos(
		canvasSize.Width-ToastWidth-ToastMargin,
		ToastMargin+float32(slot)*(ToastHeight+ToastSpacing),
	)

	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))
	popup.Move(pos)
	popup.Show()
}

// freeSlot returns the topmost row no active toast occupies. Callers hold t.mu.
func (t *Toaster) freeSlot() int {
	taken := make(map[int]bool, len(t.active))
	for _, shown := range t.active {
		taken[shown.slot] = true
	}
	slot := 0
	for taken[slot] {
		slot++
	}
	return slot
}

// hide removes the popup for id. Must run on the Fyne goroutine.
func (t *Toaster) hide(id string) {
	t.mu.Lock()
	shown, ok := t.active[id]
	delete(t.active, id)
	t.mu.Unlock()

	if ok {
		shown.popup.Hide()
	}
}
