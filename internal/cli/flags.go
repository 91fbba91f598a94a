package cli

import "github.com/spf13/pflag"

// GlobalFlags are the persistent flags main needs before the command tree
// runs, because they decide how the stack is wired.
type GlobalFlags struct {
	ConfigPath string
	DBPath     string
	LogLevel   string
}

// ParseGlobalFlags peeks at the arguments ahead of cobra. Flags belonging to
// subcommands are unknown here and skipped.
func ParseGlobalFlags(args []string) GlobalFlags {
	var gf GlobalFlags

	fs := pflag.NewFlagSet("chronline", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	fs.StringVar(&gf.ConfigPath, "config", "", "")
	fs.StringVar(&gf.DBPath, "db", "", "")
	fs.StringVar(&gf.LogLevel, "log-level", "", "")
	_ = fs.Parse(args)

	return gf
}
