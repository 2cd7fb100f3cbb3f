// Package gha implements the small slice of the CI platform's file-based
// command protocol this step needs: publishing named step outputs.
package gha
