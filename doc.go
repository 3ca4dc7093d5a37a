// Package kynto is the engine facade: it resolves configuration, picks
// a graphics backend, optionally opens a native window, and drives the
// per-frame loop.
//
// # Quick start
//
//	eng, err := kynto.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	for !eng.Window().ShouldClose() {
//	    err := eng.RunFrame(func(ctx *graphics.RenderContext) error {
//	        return ctx.Clear(graphics.ClearAll(graphics.Color{R: 0.1, G: 0.1, B: 0.1, A: 1}))
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	}
//
// Configuration comes from TOML ([graphics] backend and vsync, [window]
// title, size, resizable) or from functional options; options win over
// config. Logging is silent by default — call SetLogger to enable it
// engine-wide.
package kynto

// Version is the engine version, set at release time.
const Version = "0.1.0"
