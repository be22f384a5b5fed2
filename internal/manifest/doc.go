// Package manifest writes, parses, and validates the two structured files a
// Unity package carries: the package manifest (package.json) and the assembly
// definition (*.asmdef) that marks a code folder's compilation boundary.
//
// Both files are emitted by a small ordered encoder rather than encoding/json
// so that key order, indentation, and comma placement match what the Unity
// editor itself writes. Validation runs the generated bytes against JSON
// Schemas embedded from the schema directory.
package manifest
