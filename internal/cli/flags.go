package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	JSON    bool `long:"json" description:"Output in JSON format"`
	Verbose bool `long:"verbose" description:"Log debug diagnostics to stderr"`
	Version bool `long:"version" description:"Show version and exit"`
}

// SummarizeCommand aggregates an exported click list.
type SummarizeCommand struct {
	File   string   `long:"file" short:"f" description:"Click export to read, - for stdin" default:"-"`
	Window string   `long:"window" short:"w" description:"Time window: 1h | 1d | 7d | 30d | 90d | 1y" default:"7d"`
	Now    string   `long:"now" description:"Reference time (RFC3339), defaults to the current time"`
	TZ     string   `long:"tz" description:"Time zone for hour-of-day buckets" default:"Local"`
	All    bool     `long:"all" description:"Ignore the window and summarize every click"`
	YAML   bool     `long:"yaml" description:"Output in YAML format"`
	Field  []string `long:"field" description:"Only report this dimension (repeatable): continent, country, state, city, device, browser, os"`
	Top    int      `long:"top" description:"Show at most N categories per dimension in the text report (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// WindowsCommand lists the supported window labels.
type WindowsCommand struct {
	globals *GlobalFlags
	version string
}
