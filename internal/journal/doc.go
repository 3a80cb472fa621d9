// Package journal appends created groups to a plain-text log file. Records are
// never rewritten or removed; each append opens, writes and closes the file.
package journal
