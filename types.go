package compendium

import "encoding/json"

// Mode selects which endpoint an operation queries.
type Mode int

const (
	// ModeAuto probes the primary endpoint first and falls back to the
	// master mode endpoint when it is enabled. List operations merge
	// results where the API splits them across endpoints.
	ModeAuto Mode = iota
	// ModePrimary queries only the primary endpoint.
	ModePrimary
	// ModeMaster queries only the master mode endpoint.
	ModeMaster
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case ModePrimary:
		return "primary"
	case ModeMaster:
		return "master"
	default:
		return "auto"
	}
}

// Category represents a compendium category.
type Category string

const (
	// CategoryCreatures covers animals and other wildlife, split by the
	// API into food and non-food sub lists.
	CategoryCreatures Category = "creatures"
	// CategoryEquipment covers weapons, bows, shields and armor.
	CategoryEquipment Category = "equipment"
	// CategoryMaterials covers cooking and upgrade ingredients.
	CategoryMaterials Category = "materials"
	// CategoryMonsters covers hostile creatures.
	CategoryMonsters Category = "monsters"
	// CategoryTreasure covers treasure chests and ore deposits.
	CategoryTreasure Category = "treasure"
)

// Valid reports whether the category is one of the fixed compendium set.
func (c Category) Valid() bool {
	switch c {
	case CategoryCreatures, CategoryEquipment, CategoryMaterials, CategoryMonsters, CategoryTreasure:
		return true
	}
	return false
}

// String returns the category name as used in API paths.
func (c Category) String() string {
	return string(c)
}

// Categories returns all valid compendium categories.
func Categories() []Category {
	return []Category{
		CategoryCreatures,
		CategoryEquipment,
		CategoryMaterials,
		CategoryMonsters,
		CategoryTreasure,
	}
}

// Entry is the metadata document for a single compendium entry. The API
// schema varies per category, so the document stays loosely typed with
// accessors for the fields this client reads.
type Entry map[string]any

// Name returns the entry name, or an empty string if absent.
func (e Entry) Name() string {
	name, _ := e["name"].(string)
	return name
}

// ID returns the numeric entry ID, or 0 if absent.
func (e Entry) ID() int {
	// encoding/json decodes untyped numbers as float64
	id, _ := e["id"].(float64)
	return int(id)
}

// Category returns the category the entry belongs to, or an empty string
// if absent.
func (e Entry) Category() string {
	category, _ := e["category"].(string)
	return category
}

// ImageURL returns the URL of the entry's image, or an empty string if
// the entry carries no image field.
func (e Entry) ImageURL() string {
	image, _ := e["image"].(string)
	return image
}

// Creatures holds the creatures category, which the API splits into food
// and non-food sub lists.
type Creatures struct {
	Food    []Entry `json:"food"`
	NonFood []Entry `json:"non_food"`
}

// All returns the food and non-food lists concatenated.
func (c Creatures) All() []Entry {
	all := make([]Entry, 0, len(c.Food)+len(c.NonFood))
	all = append(all, c.Food...)
	all = append(all, c.NonFood...)
	return all
}

// Compendium is the full nested-by-category dump returned by GetAll.
type Compendium struct {
	Creatures Creatures `json:"creatures"`
	Equipment []Entry   `json:"equipment"`
	Materials []Entry   `json:"materials"`
	Monsters  []Entry   `json:"monsters"`
	Treasure  []Entry   `json:"treasure"`
}

// CategoryEntries holds the result of a single category lookup. For the
// creatures category the Food and NonFood lists are populated; for every
// other category Entries holds the full list.
type CategoryEntries struct {
	Entries []Entry
	Food    []Entry
	NonFood []Entry
}

// All returns every entry in the category as a single list.
func (ce *CategoryEntries) All() []Entry {
	if len(ce.Food) == 0 && len(ce.NonFood) == 0 {
		return ce.Entries
	}
	all := make([]Entry, 0, len(ce.Entries)+len(ce.Food)+len(ce.NonFood))
	all = append(all, ce.Entries...)
	all = append(all, ce.Food...)
	all = append(all, ce.NonFood...)
	return all
}

// decodeEntries decodes a raw JSON list of entry documents.
func decodeEntries(raw json.RawMessage) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
