// Package utils converts loosely typed values, such as decoded JSON bodies
// and path parameters, into the types handlers work with.
package utils
