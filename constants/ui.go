package constants

// UI Layout Constants
const (
	// ListTop is the first row of building/upgrade lists
	ListTop = 4

	// Column offsets for list rows
	ColumnOwned      = 24
	ColumnCost       = 34
	ColumnProduction = 62

	// UpgradeRowHeight is the number of rows per upgrade entry (name, description, gap)
	UpgradeRowHeight = 3

	// ColumnUpgradeStatus is where the purchased marker is drawn
	ColumnUpgradeStatus = 66
)

// Menu banner text
const (
	TitleMain      = "Cthulhu's Dominion"
	TitleBuildings = "Minions of Cthulhu"
	TitleUpgrades  = "Eldritch Artifacts"

	FooterMain      = "The Sanctum"
	FooterBuildings = "Minions Menu"
	FooterUpgrades  = "Artifacts Menu"
)
