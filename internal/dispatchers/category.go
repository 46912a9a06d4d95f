package dispatchers

// CommandCategory groups commands in the help listing.
type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryGeneral                       // help, version, history
	CategoryModules                       // vane list/reload/enable/disable
	CategoryActors                        // connections, operators, grants
	CategoryWorld                         // give, tp, msg, time
	CategoryConfig                        // config get/set/unset/list
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryGeneral:
		return "general"
	case CategoryModules:
		return "manage modules"
	case CategoryActors:
		return "actors and permissions"
	case CategoryWorld:
		return "world commands"
	case CategoryConfig:
		return "configure vane"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryGeneral,
	CategoryWorld,
	CategoryActors,
	CategoryModules,
	CategoryConfig,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
