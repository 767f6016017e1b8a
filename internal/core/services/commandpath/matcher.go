/*
Package commandpath locates commands in the command tree from the words a
user typed.
*/
package commandpath

import (
	"github.com/AntonioJCosta/trove/internal/core/ports"
)

/*
Match walks the command tree from root, consuming one token per level for as
long as the token names a subcommand of the current node. It returns the
deepest node reached and the number of tokens consumed.

The walk stops at the first token that is not a subcommand, so trailing flags
and arguments meant for the target command (as in "log -r @") are tolerated.
An empty token list, or a first token that matches nothing, yields root at
depth 0.
*/
func Match(root ports.CommandNode, tokens []string) (ports.CommandNode, int) {
	node := root
	depth := 0
	for _, token := range tokens {
		child, ok := node.Child(token)
		if !ok {
			break
		}
		node = child
		depth++
	}
	return node, depth
}
