// Package ui is the terminal front end for package generation: the input
// form, the overwrite confirmation, and styled reporting of results. It only
// collects and displays values; generation itself lives in package scaffold.
package ui
