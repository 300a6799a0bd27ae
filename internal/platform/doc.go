package platform

// Package platform contains OS integration glue: application directories,
// ~ expansion, atomic file writes, reveal-in-file-manager, and the shared
// structured logger.
