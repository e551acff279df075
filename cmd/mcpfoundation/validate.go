package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/urfave/cli/v3"

	"github.com/atlanticdynamic/mcpfoundation/internal/config"
	"github.com/atlanticdynamic/mcpfoundation/internal/fancy"
	"github.com/atlanticdynamic/mcpfoundation/internal/prompts"
	"github.com/atlanticdynamic/mcpfoundation/internal/resources"
	"github.com/atlanticdynamic/mcpfoundation/internal/tools"
)

var validateCmd = &cli.Command{
	Name:            "validate",
	Aliases:         []string{"lint"},
	Usage:           "Validate the effective configuration and print it",
	SkipFlagParsing: true,
	HideHelp:        true,
	Action: func(ctx context.Context, cmd *cli.Command) error {
		err := validate(cmd.Args().Slice(), cmd.Root().Writer, nil)
		if err == nil || errors.Is(err, errHelpShown) {
			return nil
		}
		return cli.Exit(fmt.Errorf("validation failed: %w", err), 1)
	},
}

// validate resolves the configuration exactly as serve would and prints it,
// followed by the capabilities a server built from it would register.
func validate(argv []string, out, logOut io.Writer) error {
	st, err := prepare(argv, out, logOut)
	if err != nil {
		return err
	}

	status := fancy.ValidText("Configuration is valid")
	if st.configPath != "" {
		status += " " + fancy.PathText("("+st.configPath+")")
	}
	if _, err := fmt.Fprintln(out, status); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out, st.cfg); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, capabilitiesTree(st.cfg.Features))
	return err
}

func capabilitiesTree(f config.Features) *tree.Tree {
	root := fancy.RootTree("Capabilities")
	root.Child(capabilityBranch("Tools", f.EnableTools, tools.Names(), fancy.ToolText))
	root.Child(capabilityBranch("Resources", f.EnableResources, resources.Templates(), fancy.ResourceText))
	root.Child(capabilityBranch("Prompts", f.EnablePrompts, prompts.Names(), fancy.PromptText))
	return root
}

func capabilityBranch(title string, enabled bool, names []string, style func(string) string) *tree.Tree {
	if !enabled {
		return fancy.BranchNode(title, "(disabled)")
	}
	branch := fancy.BranchNode(title, fmt.Sprintf("(%d)", len(names)))
	for _, name := range names {
		branch.Child(style(name))
	}
	return branch
}
