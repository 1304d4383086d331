package command

import (
	"github.com/francoispqt/gojay"
	"github.com/viant/dslx/importer"
	"github.com/viant/dslx/module"
)

// Report represents import command result
type Report struct {
	SessionID string
	Modules   Modules
	Stats     *Stats
	Error     string
}

// Stats represents session statistics
type Stats struct {
	importer.Stats
	Metrics []*Metric
}

// Metric represents operation counter summary
type Metric struct {
	Name  string
	Count int64
}

// ModuleReport represents a loaded module
type ModuleReport struct {
	Name    string
	Path    string
	Imports Strings
	Symbols Strings
}

// Modules represents module reports
type Modules []*ModuleReport

// Strings represents JSON string array
type Strings []string

func (r *Report) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("sessionId", r.SessionID)
	enc.ArrayKey("modules", r.Modules)
	if r.Stats != nil {
		enc.ObjectKey("stats", r.Stats)
	}
	enc.StringKeyOmitEmpty("error", r.Error)
}

func (r *Report) IsNil() bool {
	return r == nil
}

func (s *Stats) MarshalJSONObject(enc *gojay.Encoder) {
	enc.Int64Key("hits", s.Hits)
	enc.Int64Key("misses", s.Misses)
	enc.IntKey("modules", s.Modules)
	if len(s.Metrics) > 0 {
		enc.ArrayKey("metrics", metrics(s.Metrics))
	}
}

func (s *Stats) IsNil() bool {
	return s == nil
}

type metrics []*Metric

func (m metrics) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range m {
		enc.Object(item)
	}
}

func (m metrics) IsNil() bool {
	return len(m) == 0
}

func (m *Metric) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", m.Name)
	enc.Int64Key("count", m.Count)
}

func (m *Metric) IsNil() bool {
	return m == nil
}

func (m *ModuleReport) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("name", m.Name)
	enc.StringKey("path", m.Path)
	enc.ArrayKey("imports", m.Imports)
	enc.ArrayKey("symbols", m.Symbols)
}

func (m *ModuleReport) IsNil() bool {
	return m == nil
}

func (m Modules) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range m {
		enc.Object(item)
	}
}

func (m Modules) IsNil() bool {
	return m == nil
}

func (s Strings) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range s {
		enc.String(item)
	}
}

func (s Strings) IsNil() bool {
	return s == nil
}

// NewModuleReport creates module report from artifact
func NewModuleReport(artifact *module.Artifact) *ModuleReport {
	ret := &ModuleReport{
		Name:    artifact.Identity().String(),
		Path:    artifact.Path(),
		Imports: Strings{},
		Symbols: Strings{},
	}
	for _, anImport := range artifact.Module().Imports() {
		ret.Imports = append(ret.Imports, anImport.Subject)
	}
	for _, symbol := range artifact.TypeInfo().Symbols() {
		if symbol.Public {
			ret.Symbols = append(ret.Symbols, symbol.Name)
		}
	}
	return ret
}

// Encode encodes report as JSON
func (r *Report) Encode() ([]byte, error) {
	return gojay.MarshalJSONObject(r)
}
