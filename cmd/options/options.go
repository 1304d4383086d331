package options

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/viant/afs/url"
)

// Options represents CLI options
type Options struct {
	Resolve *Resolve `command:"resolve" description:"locates module source files"`
	Import  *Import  `command:"import" description:"parses and type checks modules with their imports"`
	Version *Version `command:"version" description:"prints version"`
}

// Session represents session options shared by commands
type Session struct {
	ConfigURL  string   `short:"c" long:"conf" description:"session config URL (yaml or json)"`
	Modules    []string `short:"m" long:"module" description:"fully qualified module name, i.e. foo.bar"`
	Roots      []string `short:"r" long:"root" description:"additional search root"`
	WorkingDir string   `short:"w" long:"wd" description:"working directory"`
	LogLevel   string   `short:"l" long:"log" description:"log level: debug, info, warn, error"`
	Diagnose   bool     `short:"d" long:"diagnose" description:"starts diagnostics agent"`
}

// Resolve represents resolve command
type Resolve struct {
	Session
}

// Import represents import command
type Import struct {
	Session
	Workers int    `short:"W" long:"workers" description:"max modules imported concurrently, overrides config"`
	Metrics bool   `short:"M" long:"metrics" description:"include operation metrics in report"`
	Report  string `short:"o" long:"report" description:"JSON report destination URL, stdout when empty"`
}

// Version represents version command
type Version struct{}

// Init initialises session options
func (s *Session) Init() error {
	if len(s.Modules) == 0 {
		return fmt.Errorf("module was empty")
	}
	if s.ConfigURL != "" {
		s.ConfigURL = ensureAbsPath(s.ConfigURL)
	}
	for i, root := range s.Roots {
		s.Roots[i] = ensureAbsPath(root)
	}
	if s.WorkingDir != "" {
		s.WorkingDir = ensureAbsPath(s.WorkingDir)
	}
	return nil
}

// Init initialises import options
func (i *Import) Init() error {
	if i.Workers < 0 {
		return fmt.Errorf("invalid workers: %v", i.Workers)
	}
	if i.Report != "" {
		i.Report = ensureAbsPath(i.Report)
	}
	return i.Session.Init()
}

// Session returns options of the selected command
func (o *Options) Session() *Session {
	if o.Resolve != nil {
		return &o.Resolve.Session
	}
	if o.Import != nil {
		return &o.Import.Session
	}
	return nil
}

// Init initialises selected command
func (o *Options) Init(_ context.Context) error {
	if o.Resolve != nil {
		return o.Resolve.Init()
	}
	if o.Import != nil {
		return o.Import.Init()
	}
	return nil
}

// NewOptions creates options for the command named by the first argument
func NewOptions(args Arguments) *Options {
	ret := &Options{}
	if len(args) == 0 {
		return ret
	}
	switch args[0] {
	case "resolve":
		ret.Resolve = &Resolve{}
	case "import":
		ret.Import = &Import{}
	case "version":
		ret.Version = &Version{}
	}
	return ret
}

func ensureAbsPath(location string) string {
	if url.IsRelative(location) {
		if wd, err := os.Getwd(); err == nil {
			return filepath.Join(wd, location)
		}
	}
	return location
}
