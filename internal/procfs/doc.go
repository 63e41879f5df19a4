// Package procfs reads the handful of Linux procfs files that the
// report needs. It deliberately stays small: a delimiter-set tokenizer
// ([Cursor]), a rooted filesystem whose reads are bounded to
// [ChunkSize] bytes at a time ([FS]), and an error taxonomy that lets
// callers tell a soft per-file failure apart from an unusable root.
//
// Every path is resolved relative to the root given to [NewFS], so
// tests and the -p flag can point at a synthetic tree instead of /proc.
package procfs
