// Package memory provides the in-memory implementation of the store
// interfaces. All state lives in volatile process memory and is lost on
// exit; the seed dataset makes a fresh store immediately usable for demos
// and fixture-based tests.
package memory
