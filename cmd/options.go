package cmd

// Options is the root for the CLI.  Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"configuration YAML path or URL"`
	LogLevel string `short:"l" long:"log-level" description:"trace, debug, info, warn, error or off"`

	Demo    *DemoCmd    `command:"demo"    description:"Replay the transport walkthrough through the singleton"`
	Stress  *StressCmd  `command:"stress"  description:"Acquire a singleton from many goroutines and verify the invariants"`
	Inspect *InspectCmd `command:"inspect" description:"Print the Prometheus metrics of the shared singletons"`
}

// Init instantiates the sub-command referenced by name so that go-flags can
// populate its fields.
func (o *Options) Init(name string) {
	switch name {
	case "demo":
		o.Demo = &DemoCmd{}
	case "stress":
		o.Stress = &StressCmd{}
	case "inspect":
		o.Inspect = &InspectCmd{}
	}
}
