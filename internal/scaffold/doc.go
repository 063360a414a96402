// Package scaffold writes a new extension project from embedded templates.
// Each extension type has a file plan mapping template paths to their place
// in the project; files ending in .tmpl are rendered with pongo2 against the
// generation record and lose the suffix, everything else is copied verbatim.
// The generated package.json is checked against the manifest schema and any
// issues come back as warnings.
package scaffold
