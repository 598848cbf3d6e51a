// Package session drives the two classroom exercises from line-oriented
// input.
//
// The notification session reads a payload line and then one command per
// line (acquire again, append the payload, list). The course session reads
// blocks of a "title; semesters; kind" header followed by a "unit; unit"
// line. Both render their output through the message catalog and report what
// happened to an optional journal Recorder and metrics Observer. Rejected
// input is printed and skipped; only I/O failures end a session early.
package session
