package ports

import "context"

/*
CommandExecutor defines an interface for running external programs.
A program that exits unsuccessfully yields a *process.ExitError; a program
that cannot be found yields an error matching process.ErrExecutableNotFound.
*/
type CommandExecutor interface {
	Execute(ctx context.Context, name string, args ...string) (stdout []byte, stderr []byte, err error)
}
