package notify

// Package notify shows transient success, warning and failure messages.
// Callers depend on the Notifier interface; Toaster renders themed popups in a
// Fyne window, LogNotifier writes to logrus, and Multi fans out to both.
