package interp

// Package interp turns a control point grid into a dense field of positioned,
// colored samples and rasterizes that field into an image. Positions follow a
// Catmull-Rom surface through the control points; colors are blended
// bilinearly between patch corners. Everything here is pure and can run on
// any goroutine given its own grid and resolver.
