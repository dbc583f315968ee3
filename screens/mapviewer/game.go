package mapviewer

import (
	"fmt"
	"log"
	"time"

	"sprawl/pkg/gradient"
	"sprawl/pkg/input"
	appsettings "sprawl/pkg/settings"
	"sprawl/pkg/stations"
	"sprawl/ui"
	cards "sprawl/widgets/palettes"
	menus "sprawl/widgets/settings"
	"sprawl/widgets/tabs"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// A left button release within this many window pixels of the press counts
// as a click rather than a drag.
const clickSlopPx = 4

// Game glues the map world to the window: it routes input either to the
// map (pan, zoom, inspect) or to the overlay UI, and owns the persisted
// preferences.
type Game struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	screen *Screen
	fonts  *ui.Fonts

	popupVisible bool
	tabBar       *tabs.Widget
	paletteCards *cards.Widget
	menu         *menus.Widget

	prefs appsettings.Settings

	keyTracker   input.KeyPressTracker
	mouseTracker input.MousePressTracker
	dragTracker  input.DragTracker

	keyState     []uint8
	mouseButtons uint32

	lmbWasDown bool
	pressX     int32
	pressY     int32
}

// NewGame creates the game around an already loaded rail network.
func NewGame(window *sdl.Window, renderer *sdl.Renderer, list *stations.List, connections stations.Connections) *Game {
	// Load settings first
	prefs := appsettings.Load()

	g := &Game{
		window:       window,
		renderer:     renderer,
		screen:       NewScreen(list, connections, prefs),
		popupVisible: false,
		tabBar:       tabs.NewWidget(),
		paletteCards: cards.NewWidget(),
		menu:         menus.NewWidget(),
		prefs:        prefs,
		keyTracker:   input.NewKeyPressTracker(),
		mouseTracker: input.NewMousePressTracker(),
		dragTracker:  input.NewDragTracker(),
	}

	fonts, err := ui.LoadFonts()
	if err != nil {
		log.Printf("Warning: Failed to load fonts: %v", err)
		// Continue without labels and overlay text
	} else {
		g.fonts = fonts
		g.screen.SetFonts(fonts)
	}

	return g
}

// HandleEvent processes events the state polling in Update cannot see.
// Currently that is only the mouse wheel.
func (g *Game) HandleEvent(event sdl.Event) {
	wheel, ok := event.(*sdl.MouseWheelEvent)
	if !ok || g.popupVisible || wheel.Y == 0 {
		return
	}

	mouseX, mouseY, _ := sdl.GetMouseState()
	winW, winH := g.window.GetSize()

	cellX, cellY, inside := g.screen.windowToCell(mouseX, mouseY, winW, winH)
	if !inside {
		return
	}

	// One wheel notch is a gentle zoom; fast scrolling hits the higher
	// zoom tiers
	g.screen.Zoom(cellX, cellY, float64(wheel.Y)*5)
}

// Update handles input and advances the world by one frame.
func (g *Game) Update() error {
	frameStart := time.Now()

	// Polling state is cheaper than tracking individual events for held keys
	g.keyState = sdl.GetKeyboardState()
	mouseX, mouseY, buttons := sdl.GetMouseState()
	g.mouseButtons = buttons

	if g.popupVisible {
		g.handleUIInput()
	} else {
		g.handleMapInput(mouseX, mouseY, buttons)
	}

	// The world keeps animating underneath the overlay
	g.screen.Update()

	g.screen.RecordTotalFrameTime(time.Since(frameStart))
	return nil
}

// handleMapInput processes input when no overlay is visible
func (g *Game) handleMapInput(mouseX, mouseY int32, buttons uint32) {
	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_DOWN) {
		g.showOverlay()
		return
	}

	winW, winH := g.window.GetSize()

	// Drag to pan
	held := buttons&sdl.ButtonLMask() != 0
	dx, dy := g.dragTracker.Update(mouseX, mouseY, held)
	if dx != 0 || dy != 0 {
		scale := cellsPerWindowPixel(winW, winH)
		g.screen.Pan(float64(dx)*scale, float64(dy)*scale)
	}

	// Click to inspect; a press that barely moved is a click
	if held && !g.lmbWasDown {
		g.pressX, g.pressY = mouseX, mouseY
	}
	if !held && g.lmbWasDown {
		if abs32(mouseX-g.pressX) <= clickSlopPx && abs32(mouseY-g.pressY) <= clickSlopPx {
			if cellX, cellY, inside := g.screen.windowToCell(mouseX, mouseY, winW, winH); inside {
				g.screen.Inspect(cellX, cellY)
			}
		}
	}
	g.lmbWasDown = held
}

// handleUIInput processes input while the overlay is visible
func (g *Game) handleUIInput() {
	// Up/Down arrow navigation - navigate items within current tab
	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_DOWN) {
		g.moveSelection(1)
	}

	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_UP) {
		g.moveSelection(-1)
	}

	// Left/Right arrow navigation - switch between tabs
	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_LEFT) {
		g.tabBar.Switch(-1)
	}

	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_RIGHT) {
		g.tabBar.Switch(1)
	}

	// Multiple activation methods for cross-platform support
	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_RETURN) ||
		g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_SPACE) ||
		g.mouseTracker.IsPressed(g.mouseButtons, sdl.ButtonRMask()) ||
		g.mouseTracker.IsPressed(g.mouseButtons, sdl.ButtonLMask()) {
		g.activateSelection()
	}

	// Back/Cancel/Exit
	if g.keyTracker.IsPressed(g.keyState, sdl.SCANCODE_ESCAPE) {
		g.hideOverlay()
	}
}

func (g *Game) moveSelection(delta int) {
	switch g.tabBar.ActiveTab() {
	case tabs.PalettesTab:
		g.paletteCards.MoveSelection(delta)
	case tabs.SettingsTab:
		g.menu.MoveSelection(delta)
	case tabs.CloseTab:
		// Single item, nothing to move
	}
}

// showOverlay builds the overlay content from the current state and opens it
func (g *Game) showOverlay() {
	rampCards := make([]cards.Card, 0, len(palettes)+1)

	rampCards = append(rampCards, cards.Card{
		Title:       "Rotation",
		Description: "Each station keeps its own ramp",
		Ramp:        gradient.Ramp(stationColor),
	})
	for i, ramp := range palettes {
		rampCards = append(rampCards, cards.Card{
			Title:       paletteNames[i],
			Description: fmt.Sprintf("Fades up to #%s", paletteEnds[i].Hex()),
			Ramp:        ramp,
		})
	}

	g.paletteCards.SetCards(rampCards)
	g.paletteCards.SetSelected(g.prefs.PaletteOverride + 1)

	g.menu.SetCurrentMenu(menus.MainMenu)
	g.menu.SetItems(menus.BuildMainMenuItems(g.prefs))

	g.tabBar.SetActiveTab(tabs.PalettesTab)
	g.popupVisible = true
}

func (g *Game) hideOverlay() {
	g.popupVisible = false
	g.menu.SetCurrentMenu(menus.MainMenu)
}

// activateSelection applies the selected overlay item
func (g *Game) activateSelection() {
	switch g.tabBar.ActiveTab() {
	case tabs.PalettesTab:
		// Card 0 is the per-station rotation, the rest force one ramp
		override := g.paletteCards.Selected() - 1
		g.prefs.PaletteOverride = override
		g.screen.SetPaletteOverride(override)
		g.savePrefs()
		g.hideOverlay()

	case tabs.SettingsTab:
		g.activateMenuSelection()

	case tabs.CloseTab:
		g.hideOverlay()
	}
}

func (g *Game) activateMenuSelection() {
	switch g.menu.CurrentMenu() {
	case menus.MainMenu:
		switch g.menu.Selected() {
		case 0: // Station Labels
			g.prefs.ShowLabels = !g.prefs.ShowLabels
			g.screen.SetShowLabels(g.prefs.ShowLabels)
			g.savePrefs()
			g.menu.SetItems(menus.BuildMainMenuItems(g.prefs))
		case 1: // Effects
			g.prefs.EffectsEnabled = !g.prefs.EffectsEnabled
			g.screen.SetEffectsEnabled(g.prefs.EffectsEnabled)
			g.savePrefs()
			g.menu.SetItems(menus.BuildMainMenuItems(g.prefs))
		case 2: // Frame Cap
			g.menu.SetCurrentMenu(menus.FPSMenu)
			g.menu.SetItems(menus.BuildFPSMenuItems(g.prefs.TargetFPS))
		}

	case menus.FPSMenu:
		item := g.menu.SelectedItem()
		if menus.CleanLabel(item.Title) == "Back" {
			g.menu.SetCurrentMenu(menus.MainMenu)
			g.menu.SetItems(menus.BuildMainMenuItems(g.prefs))
			return
		}

		fps, err := menus.ParseFPSFromLabel(item.Title)

		g.menu.SetCurrentMenu(menus.MainMenu)
		g.menu.SetItems(menus.BuildMainMenuItems(g.prefs))

		if err == nil {
			g.prefs.TargetFPS = fps
			g.savePrefs()
			g.menu.SetStatusMessage(fmt.Sprintf("Frame cap set to %d fps", fps))
		}
	}
}

func (g *Game) savePrefs() {
	if err := appsettings.Save(g.prefs); err != nil {
		log.Printf("Warning: Failed to save settings: %v", err)
	}
}

// Draw renders the complete frame
func (g *Game) Draw() error {
	w, h := g.window.GetSize()

	// Letterbox bars stay black
	g.renderer.SetDrawColor(0, 0, 0, 255)
	g.renderer.Clear()

	if err := g.screen.Draw(g.renderer, w, h); err != nil {
		return err
	}

	if g.popupVisible {
		g.drawOverlay(w, h)
	}

	g.renderer.Present()
	return nil
}

// drawOverlay dims the map and draws the tabbed popup on top
func (g *Game) drawOverlay(winW, winH int32) {
	g.renderer.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	g.renderer.SetDrawColor(0, 0, 0, 180)
	g.renderer.FillRect(&sdl.Rect{X: 0, Y: 0, W: winW, H: winH})

	// Centered panel with a 10% margin on every side
	panelX := winW / 10
	panelY := winH / 10
	panelW := winW - 2*panelX
	panelH := winH - 2*panelY

	g.renderer.SetDrawColor(15, 23, 42, 255)
	g.renderer.FillRect(&sdl.Rect{X: panelX, Y: panelY, W: panelW, H: panelH})
	g.renderer.SetDrawColor(51, 65, 85, 255)
	g.renderer.DrawRect(&sdl.Rect{X: panelX, Y: panelY, W: panelW, H: panelH})

	g.tabBar.Draw(g.renderer, panelX, panelY, panelW, g.fontMedium())

	contentY := panelY + 60
	contentH := panelH - 60

	switch g.tabBar.ActiveTab() {
	case tabs.PalettesTab:
		g.paletteCards.Draw(g.renderer, panelX, contentY, panelW, contentH, g.fontLarge(), g.fontSmall())
	case tabs.SettingsTab:
		g.menu.Draw(g.renderer, panelX, contentY, panelW, contentH, g.fontLarge(), g.fontMedium(), g.fontSmall())
	case tabs.CloseTab:
		menus.DrawCloseTab(g.renderer, panelX, contentY, panelW, contentH, g.fontMedium())
	}
}

func (g *Game) fontLarge() *ttf.Font {
	if g.fonts == nil {
		return nil
	}
	return g.fonts.Large
}

func (g *Game) fontMedium() *ttf.Font {
	if g.fonts == nil {
		return nil
	}
	return g.fonts.Medium
}

func (g *Game) fontSmall() *ttf.Font {
	if g.fonts == nil {
		return nil
	}
	return g.fonts.Small
}

// TargetFPS returns the configured frame cap for the main loop.
func (g *Game) TargetFPS() int {
	return g.prefs.TargetFPS
}

// Close cleans up resources
func (g *Game) Close() {
	g.screen.Close()
	if g.fonts != nil {
		g.fonts.Close()
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
