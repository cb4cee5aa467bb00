// Package main provides the program that cross-checks a converted QR
// detector. It prints both models' tensor layouts, runs the ONNX source
// and the TFLite conversion on the same input, and exits nonzero when any
// output drifts past the tolerance.
package main
