// Package scaffold generates the directory skeleton of a Unity package: the
// package root, Runtime/Editor/Tests code folders with their assembly
// definitions, optional Documentation and Samples folders, the package
// manifest, and the empty README, LICENSE, and CHANGELOG files.
//
// A Scaffolder carries the session state of one interactive run. The first
// request against an existing package root only reports the conflict; the
// next request for the same package overwrites it.
package scaffold
