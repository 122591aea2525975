// Package platform provides cross-platform filesystem operations used when
// writing configuration and scaffold files. On Unix systems whole-file writes
// go through a temp file and rename so readers never observe a truncated file.
// On Windows they fall back to a plain write.
package platform
