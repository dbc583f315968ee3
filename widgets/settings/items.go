package settings

import (
	"fmt"
	"strconv"
	"strings"

	appsettings "sprawl/pkg/settings"
)

// FPSOptions are the frame caps selectable from the menu
var FPSOptions = []string{"30 fps", "60 fps"}

// BuildMainMenuItems creates the main settings menu items
func BuildMainMenuItems(current appsettings.Settings) []Item {
	return []Item{
		{
			Title: "Station Labels",
			Value: onOff(current.ShowLabels),
		},
		{
			Title: "Effects",
			Value: onOff(current.EffectsEnabled),
		},
		{
			Title: "Frame Cap",
			Value: fmt.Sprintf("%d fps", current.TargetFPS),
		},
	}
}

// BuildFPSMenuItems creates the frame cap selection menu items
func BuildFPSMenuItems(currentFPS int) []Item {
	items := make([]Item, 0, len(FPSOptions)+1)

	for _, opt := range FPSOptions {
		title := opt
		if v, err := ParseFPSFromLabel(opt); err == nil && v == currentFPS {
			title = "✓ " + opt
		}
		items = append(items, Item{Title: title, Value: ""})
	}

	// Add back option
	items = append(items, Item{Title: "Back", Value: ""})
	return items
}

// ParseFPSFromLabel extracts the frame cap value from a label string
func ParseFPSFromLabel(label string) (int, error) {
	cleanLabel := strings.TrimPrefix(label, "✓ ")
	cleanLabel = strings.TrimSuffix(cleanLabel, " fps")

	v, err := strconv.Atoi(cleanLabel)
	if err != nil {
		return 0, fmt.Errorf("invalid fps label format")
	}
	return v, nil
}

// CleanLabel removes the checkmark from a menu label
func CleanLabel(label string) string {
	return strings.TrimPrefix(label, "✓ ")
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
