package console

type HelpCommand struct {
}

func NewHelpCommand() *HelpCommand {
	cmd := HelpCommand{}
	return &cmd
}

func (cmd *HelpCommand) Name() string {
	return "help"
}

func (cmd *HelpCommand) Description() string {
	return "prints this help"
}

// Run does nothing, usage is printed by the caller
func (cmd *HelpCommand) Run([]string) error {
	return nil
}
