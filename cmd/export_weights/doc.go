// Package main provides the program that folds a trained breathing model
// into the JSON weight bundle the mobile app ships in its assets. The app
// scores sessions with plain arithmetic, so the scaler is baked into the
// exported terms.
package main
