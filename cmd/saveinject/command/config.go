package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-saveinject/internal/report"
)

type Config struct {
	SavePath       string          `json:"save_path"`
	BackupSuffix   string          `json:"backup_suffix"`
	Catalog        CatalogConfig   `json:"catalog"`
	Requests       []RequestConfig `json:"requests"`
	Conflicts      ConflictPolicy  `json:"conflicts"`
	ReportTemplate string          `json:"report_template"`

	// Interactive asks on the terminal for more requests before committing.
	Interactive bool `json:"interactive"`
}

func (c *Config) Validate() error {
	el := errors.NewErrorList()

	if c.SavePath == "" {
		el.Add(fmt.Errorf("save_path is required"))
	} else {
		info, err := os.Stat(c.SavePath)
		if err != nil {
			el.Add(fmt.Errorf("save_path: invalid path %q: %w", c.SavePath, err))
		} else if !info.Mode().IsRegular() {
			el.Add(fmt.Errorf("save_path: %q is not a regular file", c.SavePath))
		}
	}

	if c.BackupSuffix != "" && !strings.Contains(c.BackupSuffix, ".") {
		el.Add(fmt.Errorf("backup_suffix %q must include a file extension", c.BackupSuffix))
	}

	el.Add(c.Catalog.validate())

	for i, r := range c.Requests {
		err := r.validate()
		if err != nil {
			el.Add(fmt.Errorf("request %d: %w", i, err))
		}
	}

	if c.ReportTemplate != "" {
		if _, err := report.Expand(c.ReportTemplate, report.Summary{}); err != nil {
			el.Add(fmt.Errorf("report_template: %w", err))
		}
	}

	return el.Err()
}

type ConflictPolicy int

const (
	ConflictPrompt ConflictPolicy = iota
	ConflictOverwrite
	ConflictAbort
)

func (cp *ConflictPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "", "prompt":
		*cp = ConflictPrompt
	case "overwrite":
		*cp = ConflictOverwrite
	case "abort":
		*cp = ConflictAbort
	default:
		return fmt.Errorf("unknown conflict policy: %s", text)
	}
	return nil
}
