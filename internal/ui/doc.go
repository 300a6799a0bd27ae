package ui

// Package ui is the Fyne desktop front end. It draws the mesh preview and
// its control point handles, forwards edits to a session.Session and shows
// the session's notifications as toasts. All UI strings are localized via
// Localization.
