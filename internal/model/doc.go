package model

// Package model defines domain data structures used across the app: control
// points, palette colors, canvas settings, mesh documents, and task status
// enums. Structures are plain values designed for explicit mutation by the
// mesh and session packages and for direct JSON/TOML serialization.
