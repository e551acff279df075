// Package fancy provides pretty printing utilities and styling for CLI output
package fancy

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
)

// Tree returns a new tree with common styling applied
func Tree() *tree.Tree {
	t := tree.New()
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// RootTree returns a styled tree whose root is title
func RootTree(title string) *tree.Tree {
	return Tree().Root(RootStyle.Render(title))
}

// BranchNode creates a styled section header node
func BranchNode(title string, count string) *tree.Tree {
	root := HeaderStyle.Render(title)
	if count != "" {
		root = lipgloss.JoinHorizontal(lipgloss.Top, root, " ", InfoStyle.Render(count))
	}
	t := tree.New().Root(root)
	t.EnumeratorStyle(BranchStyle)
	t.Enumerator(tree.RoundedEnumerator)
	return t
}

// MaskSecret hides all but the last four characters of a secret. Empty or
// short secrets are fully hidden.
func MaskSecret(secret string) string {
	switch {
	case secret == "":
		return InfoStyle.Render("(not set)")
	case len(secret) <= 8:
		return "********"
	default:
		return "****" + secret[len(secret)-4:]
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case []string:
		if len(v) == 0 {
			return InfoStyle.Render("(none)")
		}
		return strings.Join(v, ", ")
	case string:
		if v == "" {
			return InfoStyle.Render("(empty)")
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
