// Package vscode talks to the editor the generated extension targets. It
// resolves the engine range written into package.json from the public
// release feed (with a small on-disk cache) and lists the extensions
// installed in the local editor through its command-line interface.
package vscode
