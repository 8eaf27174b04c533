package script

import "strings"

// The game evaluates scripts where document is not a lexical global, and a
// bundler quirk leaves Evt re-exported through an alias object.
var fixups = strings.NewReplacer(
	`.tsx";`, `.js";`,
	`.ts";`, `.js";`,
	`from "@/`, `from "/`,
	`globalThis.document`, `globalThis['document']`,
	`document.`, `globalThis['document'].`,
	`export { Evt as Evt };`, "const Evt = Ir.Evt;\nexport { Evt };\n",
)

// Fix rewrites import specifiers and global references in transformed code.
// Fix(Fix(s)) == Fix(s).
func Fix(code string) string {
	return fixups.Replace(code)
}
