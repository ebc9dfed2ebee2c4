package environ

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/srlehn/dpiscale/internal/errors"
	"github.com/srlehn/dpiscale/internal/propkeys"
	"github.com/srlehn/dpiscale/internal/util"
)

type Properties interface {
	Enver
	PropertyExporter
	Property(key string) (string, bool)
	SetProperty(key, value string)
	MergeProperties(PropertyExporter)
	String() string
}

type Enver interface {
	Environ() []string
	LookupEnv(v string) (string, bool)
	Getenv(string) string
}

type PropertyExporter interface {
	ExportProperties() map[string]string
}

var _ Properties = (*propertiesGeneric)(nil)

type propertiesGeneric struct {
	mu         sync.Mutex
	properties map[string]string
}

func NewProperties() Properties {
	return &propertiesGeneric{properties: make(map[string]string)}
}

func CloneProperties(pr PropertyExporter) Properties {
	if pr == nil {
		return nil
	}
	p := &propertiesGeneric{properties: make(map[string]string)}
	p.MergeProperties(pr)
	return p
}

// Property ...
func (p *propertiesGeneric) Property(key string) (string, bool) {
	if p == nil {
		return ``, false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	v, ok := p.properties[key]
	return v, ok
}

// SetProperty ...
func (p *propertiesGeneric) SetProperty(key, value string) {
	if p == nil {
		panic(errors.NilReceiver())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.properties == nil {
		p.properties = make(map[string]string)
	}
	p.properties[key] = value
}

// ExportProperties returns a copy of all properties.
func (p *propertiesGeneric) ExportProperties() map[string]string {
	if p == nil {
		panic(errors.NilReceiver())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	m := make(map[string]string, len(p.properties))
	for k, v := range p.properties {
		m[k] = v
	}
	return m
}

func (p *propertiesGeneric) LookupEnv(v string) (string, bool) {
	return p.Property(propkeys.EnvPrefix + v)
}

func (p *propertiesGeneric) Getenv(v string) string {
	s, _ := p.LookupEnv(v)
	return s
}

func (p *propertiesGeneric) Environ() []string {
	if p == nil {
		panic(errors.NilReceiver())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	envSep := make([][2]string, 0, len(p.properties))
	for k, v := range p.properties {
		after, found := strings.CutPrefix(k, propkeys.EnvPrefix)
		if !found {
			continue
		}
		envSep = append(envSep, [2]string{after, v})
	}
	sort.Slice(envSep, func(i, j int) bool { return envSep[i][0] < envSep[j][0] })
	env := make([]string, 0, len(envSep))
	for _, entry := range envSep {
		env = append(env, entry[0]+`=`+entry[1])
	}
	return env
}

// MergeProperties copies all properties of pr into p, values from pr win.
func (p *propertiesGeneric) MergeProperties(pr PropertyExporter) {
	if p == nil || pr == nil {
		return
	}
	m := pr.ExportProperties()
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.properties == nil {
		p.properties = make(map[string]string)
	}
	for k, v := range m {
		p.properties[k] = v
	}
}

func (p *propertiesGeneric) String() string {
	if p == nil {
		return `<nil>`
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.properties == nil {
		return `<nil>`
	}
	s := &strings.Builder{}
	_, _ = s.WriteString("properties: {\n")
	for _, k := range util.MapsKeysSorted(p.properties) {
		_, _ = s.WriteString(fmt.Sprintf("\t\"%s\": %q\n", k, p.properties[k]))
	}
	_, _ = s.WriteString("}")
	return s.String()
}
