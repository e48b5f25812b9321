package format

// Package format renders numbers for display: elapsed time as "1d 2h 3m",
// byte counts as "1.50 KB", and countdowns as clock strings.
