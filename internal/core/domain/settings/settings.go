/*
Package settings describes where configuration was read from.
*/
package settings

const (
	ScopeUser = "user"
	ScopeRepo = "repo"
)

// Source is one configuration file that was considered while loading.
type Source struct {
	Path   string
	Scope  string
	Exists bool
}
