// Package journal records coursework sessions in a SQLite database.
//
// Each CLI invocation that runs a session opens the store, which takes an
// exclusive file lock so only one process writes at a time, and begins a
// session keyed by a random UUID. Notifications, presented courses, and
// rejected course lines are appended as they happen. The journal is an audit
// trail only: nothing in it is loaded back into a registry or course.
//
// When changing tables, update schema.sql and bump schemaVersion.
package journal
