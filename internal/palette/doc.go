package palette

// Package palette stores the user's colors under stable ids and resolves
// control point color references for rendering. Ids are never reused within
// a process. Store persists the palette as TOML.
