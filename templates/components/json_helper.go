package components

import (
	"encoding/json"
	"log"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// encoding/json escapes <, > and & so the result can sit inside a <script>.
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("[WARNING] Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}

// ScriptJSON embeds v as a JSON data block: <script type="application/json" id="...">.
func ScriptJSON(id string, v interface{}) g.Node {
	return h.Script(h.Type("application/json"), h.ID(id), g.Raw(JSON(v)))
}
