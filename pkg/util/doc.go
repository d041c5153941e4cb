// Package util provides shared utility functions for xmlsmith.
//
// Includes:
//   - TruncateValue — bound strings for log output
package util
