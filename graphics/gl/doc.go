// Package gl implements the OpenGL rendering backend.
//
// The backend drives the driver through the Device interface, a thin
// command and query surface with one method per pipeline slot. The real
// implementation (NewGLDevice) translates to go-gl calls; tests substitute
// a recording device.
//
// Between the logical graphics layer and the device sits the StateCache, a
// shadow copy of the driver state the backend touches. Every mutator
// compares against the shadowed value and only reaches the driver on a
// real transition, so applying the same render state every frame costs a
// handful of comparisons and zero driver calls.
//
// Importing the package registers it under the name "opengl":
//
//	import _ "github.com/Mattiemus/Kynto2-sub008/graphics/gl"
//
//	rs, err := graphics.NewRenderSystemByName("opengl")
//
// The caller owns the GL context: it must be current on the goroutine
// that creates the render system and stays bound to that goroutine for
// every context operation, per the usual GL threading rules.
package gl
