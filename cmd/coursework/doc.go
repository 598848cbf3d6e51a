// Package main hosts the coursework CLI entrypoint and command graph.
//
// The Cobra command tree runs the notification and course sessions on stdin,
// reads back the session journal, and scaffolds configuration. Configuration
// resolution, logger construction, the optional journal and metrics output
// are wired here so the internal packages stay free of process concerns.
package main
