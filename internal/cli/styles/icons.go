package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconHeart     = "\uf004" // heart
	IconGo        = "\ue627" // go gopher

	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database

	IconCursor = "\uf054" // chevron-right

	// Layouts
	IconLayout = "\uf24d" // clone/stack
	IconPane   = "\uf0db" // columns
	IconSplitH = "\uf07e" // arrows-h
	IconSplitV = "\uf07d" // arrows-v
	IconZoom   = "\uf065" // expand
	IconActive = "\uf04b" // play
	IconClock  = "\uf017" // clock
)
