package shellexec

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed codes.yaml
var codesYAML []byte

// Code is one entry of the shell-open result table.
type Code struct {
	Code    int64  `yaml:"code"`
	Name    string `yaml:"name"`
	Message string `yaml:"message"`
}

// Table maps shell-open results to their documented meaning.
type Table struct {
	Version int    `yaml:"version"`
	Codes   []Code `yaml:"codes"`

	byCode map[int64]Code
}

// ParseTable decodes a YAML result table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, errors.Wrap(err, "parse result table")
	}
	if t.Version < 1 {
		return nil, errors.Errorf("result table: unsupported version %d", t.Version)
	}

	t.byCode = make(map[int64]Code, len(t.Codes))
	for _, c := range t.Codes {
		if c.Code >= SuccessThreshold {
			return nil, errors.Errorf("result table: code %d is not a failure code", c.Code)
		}
		if _, dup := t.byCode[c.Code]; dup {
			return nil, errors.Errorf("result table: duplicate code %d", c.Code)
		}
		t.byCode[c.Code] = c
	}
	return &t, nil
}

// Lookup returns the entry for result, if the table has one.
func (t *Table) Lookup(result int64) (Code, bool) {
	c, ok := t.byCode[result]
	return c, ok
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// DefaultTable returns the embedded result table. It panics if the embedded
// file is malformed.
func DefaultTable() *Table {
	defaultOnce.Do(func() {
		t, err := ParseTable(codesYAML)
		if err != nil {
			panic(err)
		}
		defaultTable = t
	})
	return defaultTable
}

// Describe returns the documented message for a shell-open result.
func Describe(result int64) string {
	if c, ok := DefaultTable().Lookup(result); ok {
		return c.Message
	}
	return fmt.Sprintf("unknown shell-open result %d", result)
}
