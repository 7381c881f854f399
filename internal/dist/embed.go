package dist

import "embed"

// Embedded carries the module's built-in distribution fixtures: TPC-H's
// text-format .dst sources and TPC-DS's tree-text .dst sources. A host
// application can still point a Loader at its own filesystem for the full
// published tables; this is the zero-configuration default the public API
// falls back to when no external path is supplied.
//
//go:embed testdata
var Embedded embed.FS
