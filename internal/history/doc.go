package history

// Package history keeps bounded undo and redo stacks of editor snapshots.
