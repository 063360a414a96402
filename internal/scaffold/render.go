package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/flosch/pongo2/v6"
)

func init() {
	// Templates produce JSON, JavaScript and Markdown, never HTML.
	pongo2.SetAutoescape(false)

	if !pongo2.FilterExists("json") {
		if err := pongo2.RegisterFilter("json", filterJSON); err != nil {
			panic(fmt.Sprintf("scaffold: registering json filter: %v", err))
		}
	}
}

// renderer renders .tmpl files against a generation record.
type renderer struct {
	set *pongo2.TemplateSet
	ctx pongo2.Context
}

func newRenderer(ctx map[string]any) *renderer {
	set := pongo2.NewSet("scaffold", pongo2.NewFSLoader(templatesFS))
	set.Options.TrimBlocks = true
	set.Options.LStripBlocks = true
	return &renderer{set: set, ctx: pongo2.Context(ctx)}
}

func (r *renderer) render(name string, src []byte) ([]byte, error) {
	tpl, err := r.set.FromBytes(src)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	var buf bytes.Buffer
	if err := tpl.ExecuteWriter(r.ctx, &buf); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// filterJSON encodes the value as a JSON literal, so strings carrying quotes
// or backslashes stay valid inside package.json and JavaScript sources.
func filterJSON(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(in.Interface()); err != nil {
		return nil, &pongo2.Error{Sender: "filter:json", OrigError: err}
	}
	return pongo2.AsSafeValue(string(bytes.TrimRight(buf.Bytes(), "\n"))), nil
}
