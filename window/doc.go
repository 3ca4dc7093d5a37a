// Package window abstracts the native surface the engine renders into.
// Window state (size, focus, minimization, close request) is polled;
// changes additionally surface as edge events on a bounded channel that
// the frame loop drains once per frame. When the channel fills, the
// oldest event is dropped — consumers re-read the polled state, so a
// collapsed resize storm loses nothing.
//
// The glfw-backed implementation must be created and pumped on the main
// OS thread; callers lock it with runtime.LockOSThread.
package window
