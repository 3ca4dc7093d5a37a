// Package material layers effects, materials, and render passes on top
// of the graphics package. An Effect is a compiled shader program with
// named parameter defaults; a Material binds an Effect to ordered
// passes carrying render-state descriptions, sampler assignments, and
// parameter bindings. Semantic parameters (a camera matrix, elapsed
// time) resolve through an explicitly injected BindingRegistry rather
// than process-global state, so two engine instances never share
// providers.
package material
