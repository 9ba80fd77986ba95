package domain

// CommandID identifies a user-invocable command
type CommandID string

const (
	CmdLong            CommandID = "long"
	CmdOpenStats       CommandID = "open-stats"
	CmdReset           CommandID = "reset"
	CmdShort           CommandID = "short"
	CmdStartPause      CommandID = "start-pause"
	CmdToggleAutoBreak CommandID = "toggle-auto-break"
	CmdWork            CommandID = "work"
)

// Command describes an entry of the command surface.
// UIOnly commands are handled by the interactive host, not the clock.
type Command struct {
	ID       CommandID
	Shortcut string
	Title    string
	UIOnly   bool
}

// Commands is the canonical registry, in palette order
var Commands = []Command{
	{ID: CmdStartPause, Title: "Start / Pause timer", Shortcut: "P"},
	{ID: CmdReset, Title: "Reset timer", Shortcut: "R"},
	{ID: CmdWork, Title: "Switch to Work", Shortcut: "W"},
	{ID: CmdShort, Title: "Start Short Break", Shortcut: "S"},
	{ID: CmdLong, Title: "Start Long Break", Shortcut: "L"},
	{ID: CmdToggleAutoBreak, Title: "Toggle Auto-break", Shortcut: "A"},
	{ID: CmdOpenStats, Title: "Statistics", Shortcut: ".", UIOnly: true},
}

var commandAliases = map[string]CommandID{
	"toggle-auto": CmdToggleAutoBreak,
}

// NormalizeCommandID resolves aliases to their canonical identifier
func NormalizeCommandID(id string) CommandID {
	if canonical, ok := commandAliases[id]; ok {
		return canonical
	}
	return CommandID(id)
}

// GetCommandByID returns a command by id or alias, or nil if not found.
func GetCommandByID(id string) *Command {
	canonical := NormalizeCommandID(id)
	for i := range Commands {
		if Commands[i].ID == canonical {
			return &Commands[i]
		}
	}
	return nil
}

// ClockCommands returns the commands the session clock handles
func ClockCommands() []Command {
	var filtered []Command
	for _, c := range Commands {
		if !c.UIOnly {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
