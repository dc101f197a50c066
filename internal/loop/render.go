package loop

import (
	"fmt"
	"io"
	"math"

	"targetrange/internal/draw"
	"targetrange/internal/game"
)

// drawFrame clears the screen and renders the current mode.
func drawFrame(s *game.Session, w io.Writer, canvas *draw.Canvas, cw *draw.ChunkWriter) error {
	draw.ClearScreen(w)
	canvas.Clear()
	canvas.RenderBorder(w)

	switch s.Mode {
	case game.ModeSelecting:
		renderSelection(canvas, cw)
	case game.ModePlaying:
		renderPlay(s, canvas, cw)
	}

	canvas.Render(w)
	return cw.Flush()
}

// renderSelection draws the archetype grid.
func renderSelection(canvas *draw.Canvas, cw *draw.ChunkWriter) {
	writeCentered(cw, canvas, game.FieldWidth/2, 80, "PICK YOUR TARGET")

	for id, arch := range game.Archetypes {
		x, y, w, h := game.ArchetypeCell(id)
		drawRect(canvas, x, y, w, h)

		cx := x + w/2
		writeCentered(cw, canvas, cx, y+40, arch.Name)
		writeCentered(cw, canvas, cx, y+90, fmt.Sprintf("[%s]", arch.Pattern))
		writeCentered(cw, canvas, cx, y+140, arch.Description)
	}

	writeCentered(cw, canvas, game.FieldWidth/2, game.FieldHeight-60, "Click a target to start | Q to quit")
}

// renderPlay draws the play field and HUD.
func renderPlay(s *game.Session, canvas *draw.Canvas, cw *draw.ChunkWriter) {
	launchY := game.FieldHeight - game.LaunchZoneHeight

	// Launch zone separator
	canvas.DrawLine(draw.Point{X: 0, Y: launchY}, draw.Point{X: game.FieldWidth, Y: launchY})

	// Power-up with a pulsing ring
	if u := s.PowerUp; u != nil {
		pulse := math.Sin(s.Clock*10)*10 + 10
		canvas.DrawCircle(u.X, u.Y, u.Radius/2+pulse, false)
		canvas.DrawCircle(u.X, u.Y, u.Radius/2.5, false)
		writeCentered(cw, canvas, u.X, u.Y-60, "DADDY")
	}

	// Bullseye target
	if t := s.Target; t != nil {
		canvas.DrawCircle(t.X, t.Y, t.Radius, false)
		canvas.DrawCircle(t.X, t.Y, t.Radius*0.6, false)
		canvas.DrawCircle(t.X, t.Y, t.Radius*0.3, true)
	}

	// Projectiles and their trails
	for _, p := range s.Projectiles {
		if !p.Active {
			continue
		}
		for _, tp := range p.Trail {
			canvas.SetFloat(tp.X, tp.Y)
		}
		canvas.DrawCircle(p.X, p.Y, p.HitRadius()/2, true)
		// Seeking shots get a halo ring
		if p.Homing || s.BoostActive {
			canvas.DrawCircle(p.X, p.Y, p.HitRadius()/2+8, false)
		}
	}

	// Aim line and launcher marker
	weaponY := game.FieldHeight - game.LaunchHeight
	if s.Aiming {
		canvas.DrawLine(draw.Point{X: s.WeaponX, Y: weaponY}, draw.Point{X: s.AimX, Y: s.AimY})
	}
	canvas.DrawCircle(s.WeaponX, weaponY, 12, true)

	renderHUD(s, cw)
}

// renderHUD writes the scalar state as text rows in the top-left corner.
func renderHUD(s *game.Session, cw *draw.ChunkWriter) {
	weapon := game.Weapons[s.Weapon]

	row := hudFirstRow
	cw.WriteAt(hudCol, row, fmt.Sprintf("Score: %d", s.Score))
	row += hudRowStep
	cw.WriteAt(hudCol, row, fmt.Sprintf("Weapon: %s", weapon.Name))
	row += hudRowStep
	cw.WriteAt(hudCol, row, fmt.Sprintf("Ammo: %s", weapon.Ammo))
	row += hudRowStep

	switch {
	case s.BoostActive:
		remaining := s.BoostRemaining()
		cw.WriteAt(hudCol, row, fmt.Sprintf("DADDY POWER! %ds", int(remaining)))
		row += hudRowStep
		cw.WriteAt(hudCol, row, boostBar(remaining))
		row += hudRowStep
		cw.WriteAt(hudCol, row, "ALL WEAPONS SEEK! 3X POINTS!")
	case weapon.Homing && s.Target != nil && s.Target.Straight:
		cw.WriteAt(hudCol, row, "SEEKING STRAIGHT TARGET!")
	}
}

// boostBar renders the remaining boost window as a shaded bar.
func boostBar(remaining float64) string {
	cells := remaining / game.BoostDuration * boostBarWidth
	bar := make([]rune, boostBarWidth)
	for i := range bar {
		bar[i] = draw.ShadeLevel(cells - float64(i))
	}
	return string(bar)
}

// drawRect draws an axis-aligned rectangle outline in logical coordinates.
func drawRect(canvas *draw.Canvas, x, y, w, h float64) {
	points := canvas.BorrowPoints(4)
	points[0] = draw.Point{X: x, Y: y}
	points[1] = draw.Point{X: x + w, Y: y}
	points[2] = draw.Point{X: x + w, Y: y + h}
	points[3] = draw.Point{X: x, Y: y + h}
	canvas.DrawPolygon(points, false)
}

// writeCentered writes text horizontally centered on a logical position.
func writeCentered(cw *draw.ChunkWriter, canvas *draw.Canvas, x, y float64, text string) {
	col, row := canvas.LogicalToTerminal(x, y)
	cw.WriteAt(col-len([]rune(text))/2, row, text)
}
