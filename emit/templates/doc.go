/*
Package templates is the template glue (spec.md §4.G): a thin indirection
between the combinator algebra and the textual shape of the emitted Go
source, so that component C (comb) never formats Go source by hand and
swapping the emission language only ever means swapping this package's
template set.

Grounded on the Python original's render_template/mako_template pair
(original_source/src/combinators/compiled_native/__init__.py lines
112-153): a process-wide, load-once template cache keyed by template
name (spec.md §5: "the template cache [is] process-scoped... write-
monotone... load-once"). text/template is the concern's real-world
choice elsewhere in the retrieved pack too (e.g. the gtigen code
generator), which is why this package reaches for stdlib text/template
rather than a third-party templating engine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package templates

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'adapgen.templates'.
func tracer() tracing.Trace {
	return tracing.Select("adapgen.templates")
}
