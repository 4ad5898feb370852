package config

import (
	"io/ioutil"
	"os"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"
)

// FileName is the project file written by `lovego init`.
const FileName = "Love Story Information"

type Module struct {
	Package string `yaml:"Package"`
	Entry   string `yaml:"Entry,omitempty"`
	Color   *bool  `yaml:"Color,omitempty"`
}

func Default(name string) Module {
	return Module{
		Package: name,
		Entry:   name + ".love",
	}
}

// UseColor reports whether coloured output is enabled; it defaults to on.
func (m Module) UseColor() bool {
	return m.Color == nil || *m.Color
}

func Load(path string) (Module, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Module{}, tracerr.Wrap(err)
	}

	var doc Module
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Module{}, tracerr.Wrap(err)
	}
	if doc.Entry == "" && doc.Package != "" {
		doc.Entry = doc.Package + ".love"
	}
	return doc, nil
}

func Save(path string, m Module) error {
	out, err := yaml.Marshal(m)
	if err != nil {
		return tracerr.Wrap(err)
	}

	fi, err := os.Create(path)
	if err != nil {
		return tracerr.Wrap(err)
	}
	defer fi.Close()

	if _, err := fi.Write(out); err != nil {
		return tracerr.Wrap(err)
	}
	return nil
}
