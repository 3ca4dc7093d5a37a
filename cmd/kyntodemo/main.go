// Command kyntodemo opens a window and renders a clear-color animation
// driven by the engine's built-in Time semantic.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"
	"runtime"
	"time"

	kynto "github.com/Mattiemus/Kynto2-sub008"
	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

func init() {
	// glfw windows and GL contexts are bound to the main OS thread.
	runtime.LockOSThread()
}

func main() {
	var (
		config  = flag.String("config", "", "path to a TOML config file")
		backend = flag.String("backend", "", "graphics backend name (empty = auto)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		kynto.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []kynto.Option{}
	if *config != "" {
		opts = append(opts, kynto.WithConfigFile(*config))
	}
	if *backend != "" {
		opts = append(opts, kynto.WithBackend(*backend))
	}

	eng, err := kynto.New(opts...)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Close()

	log.Printf("backend: %s", eng.Graphics().Backend().Name())

	start := time.Now()
	for !eng.Window().ShouldClose() {
		err := eng.RunFrame(func(ctx *graphics.RenderContext) error {
			t := time.Since(start).Seconds()
			c := graphics.Color{
				R: float32(0.5 + 0.5*math.Sin(t)),
				G: float32(0.5 + 0.5*math.Sin(t+2*math.Pi/3)),
				B: float32(0.5 + 0.5*math.Sin(t+4*math.Pi/3)),
				A: 1,
			}
			return ctx.Clear(graphics.ClearAll(c))
		})
		if err != nil {
			log.Fatalf("frame: %v", err)
		}
	}
}
