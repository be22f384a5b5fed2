// Package ignorefile supplies the text written to a generated package's
// ignore file: either the Unity template compiled into the binary or a file
// the user points at.
package ignorefile
