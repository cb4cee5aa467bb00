// Package main provides the program that prepares the app's person
// detection assets. It backs up the bundled QR detector once, writes the
// detection config, and downloads pretrained detector weights from the
// configured sources.
package main
