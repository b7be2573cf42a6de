// Package util provides small parsing helpers shared by the server
// middleware and configuration layers.
package util
