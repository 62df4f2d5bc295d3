//go:build !tinygo

package hal

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"keymatrix/internal/buildinfo"
	"keymatrix/key"
)

// WindowConfig describes the interactive simulator window.
type WindowConfig struct {
	Title string
	// Keys holds the legend for every matrix cell, including the modifier
	// columns; key.None marks cells with no switch.
	Keys  [][]key.Code
	Quiet bool
}

// RunWindow opens a desktop window that visualises the simulated matrix and
// forwards the host keyboard onto it: holding a bound host key closes the
// matching switch. F11 toggles the enable line, F12 the latching lock
// switch. It blocks until the window closes.
func RunWindow(cfg WindowConfig, newApp func(HAL) (func() error, error)) error {
	h := newHostHAL(cfg.Quiet)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{h: h, step: step, binds: bindKeys(cfg.Keys)}
	title := cfg.Title
	if title == "" {
		title = "keymatrix"
	}
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(gridW*2, gridH*2)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

const (
	cellW   = 52
	cellH   = 40
	gridPad = 8
	gridW   = gridPad*2 + MatrixCols*cellW
	gridH   = gridPad*2 + MatrixRows*cellH + 28
)

type keyBinding struct {
	k        ebiten.Key
	row, col int
	legend   string
}

func bindKeys(keys [][]key.Code) []keyBinding {
	var binds []keyBinding
	for r := 0; r < len(keys) && r < MatrixRows; r++ {
		for c := 0; c < len(keys[r]) && c < MatrixCols; c++ {
			code := keys[r][c]
			if code == key.None {
				continue
			}
			if k, ok := hostKeyFor(code); ok {
				binds = append(binds, keyBinding{k: k, row: r, col: c, legend: code.String()})
			}
		}
	}
	return binds
}

func hostKeyFor(code key.Code) (ebiten.Key, bool) {
	switch {
	case code >= 'a' && code <= 'z':
		return ebiten.KeyA + ebiten.Key(code-'a'), true
	case code >= '0' && code <= '9':
		return ebiten.KeyDigit0 + ebiten.Key(code-'0'), true
	}
	switch code {
	case key.Space:
		return ebiten.KeySpace, true
	case key.Enter:
		return ebiten.KeyEnter, true
	case key.Tab:
		return ebiten.KeyTab, true
	case key.Backspace:
		return ebiten.KeyBackspace, true
	case key.Escape:
		return ebiten.KeyEscape, true
	case ',':
		return ebiten.KeyComma, true
	case '.':
		return ebiten.KeyPeriod, true
	case '/':
		return ebiten.KeySlash, true
	case ';':
		return ebiten.KeySemicolon, true
	case key.LeftShift:
		return ebiten.KeyShiftLeft, true
	case key.LeftCtrl:
		return ebiten.KeyControlLeft, true
	case key.LeftAlt:
		return ebiten.KeyAltLeft, true
	}
	return 0, false
}

type hostGame struct {
	h     *hostHAL
	step  func() error
	binds []keyBinding
}

func (g *hostGame) Update() error {
	sim := g.h.Sim()
	for _, b := range g.binds {
		sim.SetKey(b.row, b.col, ebiten.IsKeyPressed(b.k))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		sim.SetEnabled(!sim.Enabled())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		sim.SetLock(!sim.LockOn())
	}
	return g.step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	sim := g.h.Sim()

	for _, b := range g.binds {
		x := float32(gridPad + b.col*cellW)
		y := float32(gridPad + b.row*cellH)
		fill := color.RGBA{0x28, 0x28, 0x30, 0xFF}
		if ebiten.IsKeyPressed(b.k) {
			fill = color.RGBA{0x40, 0x80, 0x40, 0xFF}
		}
		vector.DrawFilledRect(screen, x+1, y+1, cellW-2, cellH-2, fill, false)
		ebitenutil.DebugPrintAt(screen, b.legend, int(x)+4, int(y)+4)
	}

	status := fmt.Sprintf("enable:%s  lock:%s  led:%s   [F11] enable  [F12] lock",
		onOff(sim.Enabled()), onOff(sim.LockOn()), onOff(g.h.led.lit()))
	ebitenutil.DebugPrintAt(screen, status, gridPad, gridPad+MatrixRows*cellH+8)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridW, gridH
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
