// Package application provides application initialization and dependency wiring.
// It builds the filesystem store and the config resolver for one project root,
// keeping the main package focused on CLI parsing and exit handling.
package application
