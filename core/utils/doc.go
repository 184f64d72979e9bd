// Package utils provides common utility functions for the catalog admin service.
// It includes helpers for coercing loosely typed request values into ints, strings
// and money amounts.
package utils
