// Package charpool partitions an alphabet for one pattern atom.
//
// Given the atom's own class expression and the shared alphabet:
//
//   - every alphabet-forbidden character is forbidden for the atom;
//   - every alphabet-allowed character that does not match the expression is
//     locally forbidden (forbidden for this atom only);
//   - the remaining alphabet-allowed characters form the atom's allowed pool.
//
// A Pool is read-only once built. Draws take the random source as an argument,
// so one Pool may serve any number of goroutines as long as each brings its own
// source.
package charpool
