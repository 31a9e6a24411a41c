// Package chunk models the output chunks of a bundle and the entry-dependency
// relation between them.
//
// A Graph answers the one query the startup generator needs: given a chunk,
// which chunks have an entry point that requires it to run first. Answers are
// returned in insertion order and are never sorted or deduplicated, so the
// emitted bootstrap code loads chunks exactly in the order the host supplied.
package chunk
