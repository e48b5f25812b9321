package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClock    = "⏱"
	IconBell     = "🔔"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ResultLineFormat   = "%s: %s"
)

// Window sizing
const (
	WindowWidth  float32 = 800
	WindowHeight float32 = 600

	JSONEntryRows = 6
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 360
)

// Delays
const (
	RemindDelay = 3 * time.Second
)

// Sample inputs shown on first start
const (
	SampleMilliseconds = "90061000"
	SampleBytes        = "1536"
	SampleText         = "prefix_hello world_suffix"
	SampleAffix        = "prefix_"
	SampleMaxLength    = "11"
	SampleLeftJSON     = `{"interval":"5m","radarr":{"enabled":true,"items":[1,2]}}`
	SampleRightJSON    = `{"interval":"10m","radarr":{"enabled":true,"items":[2,1]}}`
)
