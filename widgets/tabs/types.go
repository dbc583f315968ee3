package tabs

// TabID represents the different available tabs
type TabID int

const (
	PalettesTab TabID = 0
	SettingsTab TabID = 1
	CloseTab    TabID = 2
)
