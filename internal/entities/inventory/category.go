package inventory

// ItemCategory classifies an item for display and tool handling
type ItemCategory string

// Item categories
const (
	CategorySeed            ItemCategory = "seed"
	CategoryCommodity       ItemCategory = "commodity"
	CategoryWateringTool    ItemCategory = "watering_tool"
	CategoryHoeingTool      ItemCategory = "hoeing_tool"
	CategoryChoppingTool    ItemCategory = "chopping_tool"
	CategoryBreakingTool    ItemCategory = "breaking_tool"
	CategoryReapingTool     ItemCategory = "reaping_tool"
	CategoryCollectingTool  ItemCategory = "collecting_tool"
	CategoryReapableScenery ItemCategory = "reapable_scenery"
	CategoryFurniture       ItemCategory = "furniture"
	CategoryNone            ItemCategory = "none"
)

// String returns the string representation of the category
func (c ItemCategory) String() string {
	return string(c)
}

// IsValid checks if the category is one of the known categories
func (c ItemCategory) IsValid() bool {
	switch c {
	case CategorySeed, CategoryCommodity, CategoryWateringTool, CategoryHoeingTool,
		CategoryChoppingTool, CategoryBreakingTool, CategoryReapingTool,
		CategoryCollectingTool, CategoryReapableScenery, CategoryFurniture, CategoryNone:
		return true
	default:
		return false
	}
}

// IsTool reports whether items of this category are used as tools
func (c ItemCategory) IsTool() bool {
	switch c {
	case CategoryWateringTool, CategoryHoeingTool, CategoryChoppingTool,
		CategoryBreakingTool, CategoryReapingTool, CategoryCollectingTool:
		return true
	default:
		return false
	}
}

// AllItemCategories returns every valid category in declaration order
func AllItemCategories() []ItemCategory {
	return []ItemCategory{
		CategorySeed,
		CategoryCommodity,
		CategoryWateringTool,
		CategoryHoeingTool,
		CategoryChoppingTool,
		CategoryBreakingTool,
		CategoryReapingTool,
		CategoryCollectingTool,
		CategoryReapableScenery,
		CategoryFurniture,
		CategoryNone,
	}
}

// ItemCategoryFromString converts a string to an ItemCategory
// Returns the category and true if valid, empty category and false if invalid
func ItemCategoryFromString(s string) (ItemCategory, bool) {
	category := ItemCategory(s)
	if category.IsValid() {
		return category, true
	}
	return "", false
}

// Location identifies which inventory a manager owns
type Location string

// Inventory locations
const (
	LocationPlayer Location = "player"
	LocationChest  Location = "chest"
)

// IsValid checks if the location is known
func (l Location) IsValid() bool {
	return l == LocationPlayer || l == LocationChest
}
