// Package main provides the program that trains the breathing pattern
// classifier on the BIDMC PPG-and-respiration corpus and stores the model
// artifacts the export and classification tools pick up.
package main
