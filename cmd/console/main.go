package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/kettari/news-agency/internal/config"
	"github.com/kettari/news-agency/internal/console"
)

type Commands []console.Command

func main() {
	// Reads .env and sets the log level before anything is logged
	config.GetConfig()
	slog.Info("starting console command")

	commands := initCommands()
	if len(os.Args) > 1 {
		runCommand(commands, os.Args[1], os.Args[2:])
	} else {
		printHelp(commands)
	}

	slog.Info("command finished")
}

func initCommands() *Commands {
	return &Commands{
		console.NewHelpCommand(),
		console.NewNewsDemoCommand(os.Stdout),
		console.NewNewsPublishCommand(os.Stdout),
		console.NewMigrateCommand(),
	}
}

func runCommand(commands *Commands, arg string, args []string) {
	found := false
	for _, cmd := range *commands {
		if arg == cmd.Name() {
			slog.Info("command found", "command", cmd.Name())
			found = true
			if cmd.Name() == "help" {
				printHelp(commands)
			}
			if err := cmd.Run(args); err != nil {
				slog.Error(err.Error())
				os.Exit(1)
			}
			break
		}
	}
	if !found {
		fmt.Printf("command '%s' not found\n", arg)
	}
}

func printHelp(commands *Commands) {
	fmt.Println("Usage: news_console <command> [arguments]")
	for _, cmd := range *commands {
		fmt.Printf("\t%s - %s\n", cmd.Name(), cmd.Description())
	}
}
