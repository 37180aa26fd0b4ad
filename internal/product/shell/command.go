package shell

import (
	"fmt"
	"strconv"
	"strings"

	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
)

// Command is one entry of the numbered menu. The zero value is not a valid command.
type Command int

const (
	CommandAdd Command = iota + 1
	CommandEdit
	CommandRemove
	CommandSell
	CommandView
	CommandSearch
	CommandSort
	CommandFilter
	CommandTotalValue
	CommandLoad
	CommandSave
	CommandVisualize
	CommandExit
)

type commandInfo struct {
	name  string // used in logs
	title string // shown in the menu
}

var commands = map[Command]commandInfo{
	CommandAdd:        {name: "add", title: "Add Product"},
	CommandEdit:       {name: "edit", title: "Edit Product"},
	CommandRemove:     {name: "remove", title: "Remove Product"},
	CommandSell:       {name: "sell", title: "Sell Product"},
	CommandView:       {name: "view", title: "View Products"},
	CommandSearch:     {name: "search", title: "Search Product"},
	CommandSort:       {name: "sort", title: "Sort Products"},
	CommandFilter:     {name: "filter", title: "Filter Products"},
	CommandTotalValue: {name: "total_value", title: "Total Inventory Value"},
	CommandLoad:       {name: "load", title: "Load Data from File"},
	CommandSave:       {name: "save", title: "Save Data to File"},
	CommandVisualize:  {name: "visualize", title: "Visualize Stock"},
	CommandExit:       {name: "exit", title: "Exit"},
}

// ParseCommand maps a menu selection such as "4" to its Command.
// Returns ErrInvalidOption for anything that is not a listed number.
func ParseCommand(choice string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(choice))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", producterrors.ErrInvalidOption, choice)
	}
	cmd := Command(n)
	if _, ok := commands[cmd]; !ok {
		return 0, fmt.Errorf("%w: %q", producterrors.ErrInvalidOption, choice)
	}
	return cmd, nil
}

// String returns the command name used in logs.
func (c Command) String() string {
	if info, ok := commands[c]; ok {
		return info.name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// Title returns the menu label.
func (c Command) Title() string {
	return commands[c].title
}
