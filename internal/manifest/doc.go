// Package manifest reads the optional per-project servectl.yaml file, which
// can override the program name, install directory, and cargo settings. The
// file is validated against an embedded JSON Schema before use; a missing
// file means defaults apply.
package manifest
