// Package ui renders git command lifecycle events as concise console messages
// when commit-files runs with the console log format.
package ui
