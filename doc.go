// Package squares renders an infinite, slowly scrolling grid of squares with
// a per-cell hover highlight and a radial vignette. It is meant to sit behind
// other UI as an ambient background.
//
// A [Background] owns three pieces of state for as long as it is mounted:
//
//   - the surface size, kept equal to the viewport by [Surface]
//   - the scroll offset, advanced once per frame by [Animator]
//   - the hovered cell, written by [PointerTracker] from viewport-wide
//     pointer events
//
// # Quick start
//
// Hosts adapt a concrete environment to [Host]. The ebitenhost package opens a
// window, termhost draws into a terminal, and [HeadlessHost] drives frames
// by hand for tests and offline rendering:
//
//	bg, err := squares.New(squares.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	host := squares.NewHeadlessHost(640, 480, ggcanvas.New())
//	if err := bg.Mount(host); err != nil {
//		log.Fatal(err)
//	}
//	defer bg.Unmount()
//	host.InjectMove(320, 240)
//	for range 60 {
//		host.Step()
//	}
//
// # Frames
//
// The animator schedules exactly one frame at a time through a
// [FrameSource], in the manner of requestAnimationFrame. Unmount cancels the
// pending frame synchronously, so no state changes after teardown.
//
// # Logging
//
// Nothing is logged until [SetLogger] installs a [log/slog] logger.
package squares
