// Package catalog loads named alphabet and field definitions from YAML files
// and turns them into ready-to-compile generators.
//
// File format:
//
//	alphabets:
//	  latin1:
//	    encoding: ISO-8859-1
//	    good: "[A-Za-z0-9 ]"
//	    bad:  "[^A-Za-z0-9 ]"
//	  latin1-inverse:
//	    inverseOf: latin1
//	fields:
//	  postcode:
//	    alphabet: latin1
//	    pattern: "[0-9]{5}"
//
// Definitions may be spread over several files (LoadFS with a doublestar glob);
// a name may only be defined once. Build validates every field by compiling it,
// and Watch rebuilds the catalog whenever the files change.
package catalog
