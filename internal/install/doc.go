// Package install finishes a freshly written project: it installs the
// JavaScript dependencies of a new extension with the chosen package manager
// and initializes a git repository when asked to. Commands run sequentially
// inside the project directory.
package install
