// Package loop provides the main game loop and frame rendering.
package loop

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"targetrange/internal/draw"
	"targetrange/internal/game"
	"targetrange/internal/input"
)

// Options configures a game run.
type Options struct {
	TermSizeFunc draw.TermSizeFunc // Defaults to the local stdout size
	Sound        game.Sound        // Defaults to silence
	Rand         *rand.Rand        // Defaults to a time-seeded source
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle and blocks until the player quits. The final score is written to w
// before returning.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSizeFunc == nil {
		opts.TermSizeFunc = draw.DefaultTermSizeFunc
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	session := game.NewSession(opts.Rand, opts.Sound)
	stream := input.StartStream(r)

	termWidth, termHeight, err := opts.TermSizeFunc()
	if err != nil {
		return fmt.Errorf("query terminal size: %w", err)
	}
	// The game uses a fixed logical resolution; rendering scales to the
	// largest centered area that keeps the field's aspect ratio.
	cols, rows, offCol, offRow := fitCanvas(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(cols, rows, game.FieldWidth, game.FieldHeight)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	draw.HideCursor(w)
	draw.EnableMouse(w)
	defer func() {
		draw.DisableMouse(w)
		draw.ShowCursor(w)
	}()
	draw.ClearScreen(w)

	for session.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		processInput(session, stream, canvas)

		// ===== UPDATE PHASE =====
		if tw, th, sizeErr := opts.TermSizeFunc(); sizeErr == nil {
			cols, rows, offCol, offRow = fitCanvas(tw, th)
			canvas.Resize(cols, rows)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
		}
		session.Advance() // one fixed step; no-op on the selection screen

		// ===== DRAW PHASE =====
		if err := drawFrame(session, w, canvas, cw); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	fmt.Fprintf(w, "Final score: %d\r\n", session.Score)
	return nil
}

// fitCanvas returns the largest canvas that fits the terminal while keeping
// the field's aspect ratio, plus the offsets that center it. A cell is one
// sub-pixel wide and two sub-pixels tall.
func fitCanvas(termW, termH int) (cols, rows, offCol, offRow int) {
	cols = termW
	rows = termH
	if float64(cols)*game.FieldHeight > float64(rows*2)*game.FieldWidth {
		cols = int(float64(rows*2) * game.FieldWidth / game.FieldHeight)
	} else {
		rows = int(float64(cols) * game.FieldHeight / game.FieldWidth / 2)
	}
	offCol = (termW - cols) / 2
	offRow = (termH - rows) / 2
	return cols, rows, offCol, offRow
}

// processInput drains all pending events and folds them into the session in
// arrival order. Pointer coordinates arrive as terminal cells and are mapped
// into logical field coordinates here.
func processInput(s *game.Session, stream *input.Stream, canvas *draw.Canvas) {
	for _, ev := range stream.Poll() {
		switch ev.Kind {
		case input.KindQuit:
			s.Quit()
		case input.KindWeaponCycle:
			s.CycleWeapon()
		case input.KindPointerDown:
			x, y := canvas.TerminalToLogical(ev.Col, ev.Row)
			s.PointerDown(x, y)
		case input.KindPointerMove:
			x, y := canvas.TerminalToLogical(ev.Col, ev.Row)
			s.PointerMove(x, y)
		case input.KindPointerUp:
			x, y := canvas.TerminalToLogical(ev.Col, ev.Row)
			s.PointerUp(x, y)
		}
	}
}
