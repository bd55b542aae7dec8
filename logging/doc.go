/*
Package logging offers the loggers used by the interception stub.

Nop returns a logger that discards everything and is the default for stubs
created without one. ForTest routes log entries through a test's own log, so
they only show up for failing or verbose tests.
*/
package logging
