// Package main provides the program that scores the tracking app's session
// logs with a trained breathing model. It prints a clinical summary per
// session and writes the results CSV and scatter plots next to the model.
package main
