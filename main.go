package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"sort"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/automoto/zoomlens/config"
	"github.com/automoto/zoomlens/display"
	"github.com/automoto/zoomlens/fonts"
	"github.com/automoto/zoomlens/mouse"
	"github.com/automoto/zoomlens/remote"
	"github.com/automoto/zoomlens/zoom"
)

const (
	sourceWidth  = 1920
	sourceHeight = 1080
)

// Game hosts the zoom engine against a generated test pattern. The
// window plays the role of the capture source: the cursor moves over
// the pattern and the crop rectangle chases it.
type Game struct {
	manager  *config.Manager
	cfg      *config.Config
	prefs    *config.Prefs
	watcher  *config.Watcher
	ctrl     *zoom.Controller
	tracker  *mouse.Tracker
	displays *display.Manager
	server   *remote.Server
	udp      *remote.UDPServer
	overlay  *Overlay
	source   *ebiten.Image

	crop   zoom.Rect
	status atomic.Pointer[zoom.Status]

	// commands funnels remote-control callbacks onto the game loop.
	commands chan func(*Game)

	profileNames []string

	winW, winH int
}

func (g *Game) Update() error {
	g.drainCommands()
	g.pollConfigWatcher()
	g.handleKeys()

	cx, cy := ebiten.CursorPosition()
	g.tracker.Set(float64(cx), float64(cy))

	dt := 1.0 / float64(ebiten.TPS())
	pos := g.tracker.Get()
	g.applyResult(g.ctrl.Update(dt, pos.X, pos.Y))

	g.overlay.Update(dt)

	st := g.ctrl.StatusSnapshot()
	g.status.Store(&st)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.crop.Width > 0 && g.crop.Height > 0 {
		r := image.Rect(
			int(g.crop.X), int(g.crop.Y),
			int(g.crop.X+g.crop.Width), int(g.crop.Y+g.crop.Height))
		sub := g.source.SubImage(r).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(
			float64(screen.Bounds().Dx())/g.crop.Width,
			float64(screen.Bounds().Dy())/g.crop.Height)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sub, op)
	}

	st := g.status.Load()
	if st == nil {
		return
	}
	g.overlay.Draw(screen, *st, g.ctrl.SourceInfo(), g.ctrl.Profile().Name)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.winW || outsideHeight != g.winH {
		g.winW, g.winH = outsideWidth, outsideHeight
		g.refreshSourceInfo()
	}
	return outsideWidth, outsideHeight
}

// refreshSourceInfo maps the window onto the test pattern: the window
// is treated as a display showing the full pattern scaled to fit.
func (g *Game) refreshSourceInfo() {
	if g.winW <= 0 || g.winH <= 0 {
		return
	}
	win := display.Info{
		ID:     "window",
		Name:   "demo window",
		Width:  g.winW,
		Height: g.winH,
		ScaleX: float64(sourceWidth) / float64(g.winW),
		ScaleY: float64(sourceHeight) / float64(g.winH),
	}
	g.applyResult(g.ctrl.SetSourceInfo(display.SourceInfoFor(win, sourceWidth, sourceHeight, 0, 0, 0, 0)))
}

func (g *Game) applyResult(res zoom.Result) {
	if res.CropChanged {
		g.crop = res.Crop
		if g.cfg.DebugLogging {
			log.Printf("[host] crop %.0f,%.0f %.0fx%.0f",
				res.Crop.X, res.Crop.Y, res.Crop.Width, res.Crop.Height)
		}
	}
	if res.StateChanged {
		log.Printf("[host] state -> %s", res.State)
		g.overlay.NoteState(res.State)
		if g.server != nil {
			st := g.ctrl.StatusSnapshot()
			g.status.Store(&st)
			g.server.BroadcastState(st)
		}
	}
}

func (g *Game) drainCommands() {
	for {
		select {
		case cmd := <-g.commands:
			cmd(g)
		default:
			return
		}
	}
}

func (g *Game) pollConfigWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case <-g.watcher.Events:
		g.reloadConfig()
	case err := <-g.watcher.Errors:
		log.Printf("[config] watcher error: %v", err)
	default:
	}
}

func (g *Game) reloadConfig() {
	cfg, err := g.manager.Load()
	if err != nil {
		log.Printf("[config] reload failed: %v", err)
		return
	}
	g.cfg = cfg
	g.profileNames = sortedProfileNames(cfg)

	current := g.ctrl.Profile().Name
	if !cfg.HasProfile(current) {
		current = cfg.DefaultProfile
	}
	g.ctrl.SetProfile(cfg.Profile(current))
	log.Printf("[config] reloaded %s (%d profiles)", g.manager.Path(), len(g.profileNames))
}

func (g *Game) handleKeys() {
	pos := g.tracker.Get()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyZ):
		g.applyResult(g.ctrl.ToggleZoom(pos.X, pos.Y))
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.applyResult(g.ctrl.ToggleFollow())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.applyResult(g.ctrl.Reset())
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.cycleProfile()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.overlay.Enabled = !g.overlay.Enabled
		g.prefs.OverlayEnabled = g.overlay.Enabled
		config.SavePrefs(g.prefs)
	}
}

func (g *Game) cycleProfile() {
	if len(g.profileNames) == 0 {
		return
	}
	current := g.ctrl.Profile().Name
	next := 0
	for i, name := range g.profileNames {
		if name == current {
			next = (i + 1) % len(g.profileNames)
			break
		}
	}
	g.setProfile(g.profileNames[next])
}

func (g *Game) setProfile(name string) {
	if !g.cfg.HasProfile(name) {
		log.Printf("[host] unknown profile %q ignored", name)
		return
	}
	g.ctrl.SetProfile(g.cfg.Profile(name))
	g.prefs.Profile = name
	config.SavePrefs(g.prefs)
	log.Printf("[host] profile -> %s", name)
}

func (g *Game) enqueue(cmd func(*Game)) {
	select {
	case g.commands <- cmd:
	default:
		log.Printf("[host] command queue full, dropping command")
	}
}

// remoteBridge adapts remote-control callbacks to the game loop.
// Mouse positions go straight to the tracker; everything else is
// queued and runs on the next Update.
type remoteBridge struct {
	g *Game
}

func (b *remoteBridge) ToggleZoom() {
	b.g.enqueue(func(g *Game) {
		pos := g.tracker.Get()
		g.applyResult(g.ctrl.ToggleZoom(pos.X, pos.Y))
	})
}

func (b *remoteBridge) ToggleFollow() {
	b.g.enqueue(func(g *Game) {
		g.applyResult(g.ctrl.ToggleFollow())
	})
}

func (b *remoteBridge) SetProfile(name string) {
	b.g.enqueue(func(g *Game) {
		g.setProfile(name)
	})
}

func (b *remoteBridge) SetMousePosition(x, y float64) {
	b.g.tracker.SetOverride(x, y)
}

func (b *remoteBridge) ClearMousePosition() {
	b.g.tracker.ClearOverride()
}

// buildTestPattern renders a labeled checkerboard so the zoom level
// and crop position stay readable at any magnification.
func buildTestPattern(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	img.Fill(color.RGBA{30, 30, 40, 255})

	const tile = 120
	palette := []color.RGBA{
		{60, 60, 80, 255},
		{45, 45, 60, 255},
	}
	for ty := 0; ty*tile < h; ty++ {
		for tx := 0; tx*tile < w; tx++ {
			vector.DrawFilledRect(img,
				float32(tx*tile), float32(ty*tile), tile, tile,
				palette[(tx+ty)%2], false)
		}
	}

	// Center cross and frame for orientation.
	vector.StrokeLine(img, float32(w)/2, 0, float32(w)/2, float32(h), 2, color.RGBA{200, 80, 80, 255}, false)
	vector.StrokeLine(img, 0, float32(h)/2, float32(w), float32(h)/2, 2, color.RGBA{200, 80, 80, 255}, false)
	vector.StrokeRect(img, 1, 1, float32(w)-2, float32(h)-2, 2, color.RGBA{220, 220, 100, 255}, false)

	return img
}

func enumerateDisplays() []display.Info {
	monitors := ebiten.AppendMonitors(nil)
	infos := make([]display.Info, 0, len(monitors))
	for i, m := range monitors {
		w, h := m.Size()
		scale := m.DeviceScaleFactor()
		infos = append(infos, display.Info{
			ID:      fmt.Sprintf("monitor-%d", i),
			Name:    m.Name(),
			Width:   w,
			Height:  h,
			ScaleX:  scale,
			ScaleY:  scale,
			Primary: i == 0,
		})
	}
	return infos
}

func sortedProfileNames(cfg *config.Config) []string {
	names := cfg.ProfileNames()
	sort.Strings(names)
	return names
}

func main() {
	configPath := flag.String("config", config.DefaultFilename, "Path to config file")
	flag.Parse()

	log.Printf("[host] zoomlens %s", config.Version)

	fonts.LoadDefaults()

	if err := config.InitPrefs(); err != nil {
		log.Printf("Warning: Could not initialize preferences: %v", err)
	}
	prefs := config.LoadPrefs()

	manager := config.NewManager(*configPath)
	cfg, err := manager.Load()
	if err != nil {
		log.Printf("[config] load failed, using defaults: %v", err)
		cfg = config.Default()
	}

	if !cfg.HasProfile(prefs.Profile) {
		prefs.Profile = cfg.DefaultProfile
	}

	displays := display.NewManager(enumerateDisplays(), cfg.DisplayOverrides)
	for _, d := range displays.Displays() {
		log.Printf("[host] display %s", d)
	}
	log.Printf("[host] primary display: %s", displays.Primary().Name)

	g := &Game{
		manager:      manager,
		cfg:          cfg,
		prefs:        prefs,
		ctrl:         zoom.New(cfg.Profile(prefs.Profile)),
		tracker:      mouse.NewTracker(),
		displays:     displays,
		overlay:      NewOverlay(prefs.OverlayEnabled),
		source:       buildTestPattern(sourceWidth, sourceHeight),
		commands:     make(chan func(*Game), 64),
		profileNames: sortedProfileNames(cfg),
	}
	st := g.ctrl.StatusSnapshot()
	g.status.Store(&st)

	if cfg.Server.Enabled {
		g.server = remote.NewServer(cfg.Server.Port, &remoteBridge{g: g}, func() zoom.Status {
			return *g.status.Load()
		})
		if err := g.server.Start(); err != nil {
			log.Printf("[remote] websocket server failed: %v", err)
			g.server = nil
		}
	}
	if cfg.Server.UDPEnabled {
		g.udp = remote.NewUDPServer(cfg.Server.UDPPort, &remoteBridge{g: g})
		if err := g.udp.Start(); err != nil {
			log.Printf("[remote] udp server failed: %v", err)
			g.udp = nil
		}
	}

	if w, err := config.NewWatcher(manager.Path()); err != nil {
		log.Printf("[config] watcher disabled: %v", err)
	} else {
		g.watcher = w
	}

	ebiten.SetWindowTitle("zoomlens demo")
	ebiten.SetWindowSize(prefs.WindowWidth, prefs.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(g)

	if g.watcher != nil {
		g.watcher.Close()
	}
	if g.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		g.server.Stop(ctx)
		cancel()
	}
	if g.udp != nil {
		g.udp.Stop()
	}

	if g.winW > 0 && g.winH > 0 {
		prefs.WindowWidth = g.winW
		prefs.WindowHeight = g.winH
	}
	config.SavePrefs(prefs)

	if runErr != nil {
		log.Fatal(runErr)
	}
}
