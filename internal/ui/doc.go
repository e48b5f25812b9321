package ui

// Package ui contains the Fyne playground window: one card per helper
// (durations, byte sizes, strings, JSON comparison) plus buttons that fire
// success, warning and failure toasts. All UI strings are localized via Localization.
