package export

// Package export turns a mesh into artifacts that leave the editor: source
// code listing the control points, and PNG images rendered in the background
// by Service.
