// Package main provides the program that renders the synthetic QR corpus
// used to tune QR detectors: rotated QR images with YOLO bounding box
// labels, split into train and val sets.
package main
