package main

import (
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sigilfield/attractor"
	"github.com/lixenwraith/sigilfield/audio"
	"github.com/lixenwraith/sigilfield/render"
	"github.com/lixenwraith/sigilfield/sigil"
	"github.com/lixenwraith/sigilfield/vmath"
)

const hudRows = 2

// config is read from the environment, then overridden by flags
type config struct {
	FPS    int  `env:"SIGIL_FPS" envDefault:"30"`
	Mute   bool `env:"SIGIL_MUTE" envDefault:"false"`
	Glitch bool `env:"SIGIL_GLITCH" envDefault:"false"`
}

var categories = []string{
	"Starhaven Reaches",
	"Drift Anomalies",
	"Lattice Holdings",
	"Wayfarer Crossing",
	"Helix Foundries",
	"Umbral Cartel",
	"Meridian Chorus",
}

var palette = []render.RGB{
	{255, 200, 80},  // gold
	{120, 200, 255}, // ice
	{140, 255, 140}, // verdant
	{255, 120, 180}, // rose
	{200, 140, 255}, // violet
	{255, 140, 80},  // ember
	{160, 220, 220}, // mist
}

// viewer holds all mutable state shared between the frame loop and the
// input loop
type viewer struct {
	mu sync.Mutex

	screen tcell.Screen
	buf    *render.Buffer
	cache  *attractor.Cache
	sound  *audio.Manager

	catIdx   int
	instance int // 0 = category-level sigil
	attrType attractor.Type

	sigilParticles []sigil.Particle
	system         []attractor.Particle

	glitchOn bool
	soundOn  bool
	paused   bool
	pausedAt float64
	pauseOff float64

	width, height int
}

func (v *viewer) category() string {
	return categories[v.catIdx]
}

func (v *viewer) instanceID() string {
	if v.instance == 0 {
		return ""
	}
	return fmt.Sprintf("entity-%03d", v.instance)
}

// rebuild regenerates both particle sets for the current state. Called
// under v.mu.
func (v *viewer) rebuild() {
	viewH := v.height - hudRows
	if viewH < 4 {
		viewH = 4
	}
	sigilSize := float64(viewH) * 2.5
	v.sigilParticles = sigil.Generate(v.category(), v.instanceID(), sigilSize)
	if v.glitchOn {
		key := v.category() + ":" + v.instanceID() + ":glitch"
		v.sigilParticles = sigil.ApplyGlitch(v.sigilParticles, 0.3, vmath.NewKeyRand(key))
	}

	radius := float64(viewH) * 0.9
	system, err := attractor.NewParticleSystem(v.cache, v.attrType, 900, 0.2,
		radius, 1, attractor.DefaultSamplerParams())
	if err != nil {
		// Built-in configurations validate; reaching here is a bug
		panic(err)
	}
	v.system = system

	if v.soundOn {
		v.sound.PlayChime(v.category() + ":" + v.instanceID())
	}
}

// drawFrame renders one frame at animation time t in milliseconds
func (v *viewer) drawFrame(t float64) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.paused {
		if v.pausedAt == 0 {
			v.pausedAt = t
		}
		t = v.pausedAt
	} else if v.pausedAt != 0 {
		v.pauseOff += t - v.pausedAt
		v.pausedAt = 0
	}
	t -= v.pauseOff

	v.buf.Clear()

	color := palette[v.catIdx%len(palette)]
	viewH := v.height - hudRows

	sigilStyle := render.Style{
		Color:   color,
		Opacity: 1,
		CenterX: v.width / 4,
		CenterY: viewH / 2,
	}
	render.DrawSigil(v.buf, v.sigilParticles, sigilStyle, t)

	nebulaStyle := render.Style{
		Color:   color,
		Opacity: 1,
		CenterX: v.width * 3 / 4,
		CenterY: viewH / 2,
	}
	render.DrawNebula(v.buf, v.system, nebulaStyle, t)

	v.drawHUD()

	v.buf.FlushToScreen(v.screen)
	v.screen.Show()
}

func (v *viewer) drawHUD() {
	dim := render.RGB{100, 100, 110}
	bright := palette[v.catIdx%len(palette)]

	statusY := v.height - 2
	label := v.category()
	if id := v.instanceID(); id != "" {
		label += " / " + id
	}
	v.buf.WriteString(1, statusY, label, bright)

	attrLabel := "nebula: " + v.attrType.String()
	v.buf.WriteString(v.width/2+1, statusY, attrLabel, dim)

	flags := ""
	if v.glitchOn {
		flags += " [glitch]"
	}
	if v.paused {
		flags += " [paused]"
	}
	if v.soundOn {
		flags += " [sound]"
	}
	v.buf.WriteString(v.width-len(flags)-1, statusY, flags, render.RGB{255, 200, 50})

	v.buf.WriteString(1, v.height-1,
		"left/right:category  up/down:instance  tab:attractor  g:glitch  s:sound  c:clear-cache  space:pause  q:quit", dim)
}

func startInputReader(screen tcell.Screen) chan tcell.Event {
	ch := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(ch)
				return
			}
			ch <- ev
		}
	}()
	return ch
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.FPS, "fps", cfg.FPS, "target frame rate")
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable the signature chime")
	flag.BoolVar(&cfg.Glitch, "glitch", cfg.Glitch, "start with glitch displacement on")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "screen init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := screen.Size()
	v := &viewer{
		screen:   screen,
		buf:      render.NewBuffer(w, h),
		cache:    attractor.NewCache(),
		sound:    audio.NewManager(),
		glitchOn: cfg.Glitch,
		width:    w,
		height:   h,
	}
	if !cfg.Mute {
		if err := v.sound.Init(); err == nil {
			v.soundOn = true
		}
		defer v.sound.Close()
	}
	v.rebuild()

	loop := render.NewLoop(cfg.FPS)
	loop.Start(v.drawFrame)
	defer loop.Stop()

	for ev := range startInputReader(screen) {
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.mu.Lock()
			v.width, v.height = screen.Size()
			v.buf.Resize(v.width, v.height)
			v.rebuild()
			v.mu.Unlock()
			screen.Sync()

		case *tcell.EventKey:
			if done := v.handleKey(ev); done {
				return
			}
		}
	}
}

// handleKey applies one key event; returns true on quit
func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	switch {
	case ev.Key() == tcell.KeyEscape,
		ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		return true

	case ev.Key() == tcell.KeyLeft:
		v.catIdx = (v.catIdx + len(categories) - 1) % len(categories)
		v.rebuild()
	case ev.Key() == tcell.KeyRight:
		v.catIdx = (v.catIdx + 1) % len(categories)
		v.rebuild()

	case ev.Key() == tcell.KeyUp:
		v.instance++
		v.rebuild()
	case ev.Key() == tcell.KeyDown:
		if v.instance > 0 {
			v.instance--
			v.rebuild()
		}

	case ev.Key() == tcell.KeyTab:
		v.attrType = v.attrType.Next()
		v.rebuild()

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'g':
		v.glitchOn = !v.glitchOn
		v.rebuild()

	case ev.Key() == tcell.KeyRune && ev.Rune() == 's':
		v.soundOn = !v.soundOn

	case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
		v.cache.Clear()
		v.rebuild()

	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		v.paused = !v.paused
	}
	return false
}
