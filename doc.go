// Package nast provides a headless, VT/xterm-compatible terminal emulator
// core: a byte-stream parser, a dual-screen cell grid with scrollback and
// reflow, an xterm-style key encoder, and the small queue that mediates
// everything the emulator writes back toward the pty.
//
// It emulates a terminal without any display, making it suitable for:
//   - Driving a real pty and rendering the result elsewhere (a GUI, a web
//     socket, a test assertion)
//   - Terminal multiplexers and session recorders
//   - Automated testing of CLI tools that care about cursor position,
//     colors, or wrapped output
//
// # Quick Start
//
//	term := nast.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// The package is organized around these core types:
//
//   - [Terminal]: ties parsing, the cursor, and both screens together; the
//     entry point for everything
//   - [Screen]: a ring buffer of [RLine]s carrying scrollback for the main
//     screen and a fixed row count for the alternate screen
//   - [RLine]: one rendered row; consecutive RLines sharing a line identity
//     are one soft-wrapped logical line
//   - [Glyph]: a single cell - codepoint, colors, and render flags
//   - [Parser]: the byte-stream state machine (C0/C1/CSI/OSC/DCS)
//   - [WritableQueue]: the outbound byte queue every terminal response and
//     key encoding passes through
//
// # Driving a pty
//
//	ptmx, _ := pty.Start(cmd)
//	term := nast.New(
//	    nast.WithSize(24, 80),
//	    nast.WithResponse(ptmx),        // DA/DSR/OSC query replies go here
//	    nast.WithTitle(myTitleSink),
//	)
//	go io.Copy(term, ptmx)
//
// Keyboard input flows the other direction through [Terminal.HandleKey],
// which consults the terminal's live modes (application cursor keys,
// modifyOtherKeys level, bracketed paste) before encoding a key press into
// bytes for the pty.
//
// # Providers
//
// Side channels the core cannot decide on its own - bell, title, clipboard,
// and the three string-sequence kinds (APC/PM/SOS) - are each a small
// interface with a no-op default, set via an [Option] at construction.
//
// # Concurrency
//
// A Terminal is not safe for concurrent use. Callers that write bytes from
// one goroutine and read cursor/cell state from another must serialize
// access themselves; the core assumes a single cooperative event loop,
// matching how a pty's output is naturally consumed.
package nast
