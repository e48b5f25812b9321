package textutil

// Package textutil holds small string helpers shared by the UI: one-shot prefix
// and suffix trimming, case-insensitive comparison, and length capping for labels
// and toast messages.
