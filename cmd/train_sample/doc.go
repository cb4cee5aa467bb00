// Package main provides the program that fits the four-feature sample
// classifier on rule-labeled synthetic sessions. It exists so the export
// pipeline can be exercised end to end before the clinical corpus lands.
package main
