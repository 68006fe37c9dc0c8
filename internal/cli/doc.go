// Package cli implements the ger command line tool.
//
// Commands:
//
//	ger remote [-v...]                          list registered remotes
//	ger remote add <name> <url> [port] [-u ID] [-p[=STRING]]
//	ger remote show [-v...] [remote...]
//	ger remote remove|rm <remote...>
//	ger remote check [remote...]                 query the server version of each remote
//	ger change query <query...> [-r remote] [-n limit] [-o option...]
//	ger change show <change> [-r remote]
//	ger change topic <change> [-r remote]
//	ger version
//
// Global flags come from [config.RegisterFlags].
package cli
