package settings

// Item represents a settings menu item
type Item struct {
	Title string
	Value string
}

// MenuType represents the type of settings menu being displayed
type MenuType string

const (
	MainMenu MenuType = "main"
	FPSMenu  MenuType = "fps"
)
