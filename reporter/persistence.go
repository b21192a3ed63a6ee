package reporter

import (
	"os"

	"reportkit/domain/report"
	"reportkit/internal/errors"
	"reportkit/internal/fsutil"
)

// DumpReports writes each resolved report, values included, to <dir>/<name>.<ext>.
// With no names every report is dumped.
func (c *Composer) DumpReports(names ...string) error {
	for _, rep := range c.registry.Query(names...) {
		if err := c.dump(rep.Name, rep); err != nil {
			return errors.Wrapf(err, "failed to dump report %s", rep.Name)
		}
	}
	return nil
}

// DumpVariable writes value to <dir>/<file>.<ext> for later reload
func (c *Composer) DumpVariable(file string, value any) error {
	if err := c.dump(file, value); err != nil {
		return errors.Wrapf(err, "failed to dump variable %s", file)
	}
	return nil
}

// DumpPath is where a dump named file is written
func (c *Composer) DumpPath(file string) (string, error) {
	if c.codec == nil {
		return "", errors.InternalError("no codec configured")
	}
	return c.registry.Path(file + "." + c.codec.Extension()), nil
}

func (c *Composer) dump(file string, value any) error {
	path, err := c.DumpPath(file)
	if err != nil {
		return err
	}
	data, err := c.codec.Marshal(value)
	if err != nil {
		return errors.ExternalServiceError("codec", err)
	}
	if err := fsutil.WriteBytesAtomic(path, data); err != nil {
		return errors.ExternalServiceError("filesystem", err)
	}
	c.logger.Debug("dumped %s", path)
	return nil
}

// LoadVariable decodes the dump at path into target, which must be a pointer
func (c *Composer) LoadVariable(path string, target any) error {
	if c.codec == nil {
		return errors.InternalError("no codec configured")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.ExternalServiceError("filesystem", err)
	}
	if err := c.codec.Unmarshal(data, target); err != nil {
		return errors.ExternalServiceError("codec", err)
	}
	return nil
}

// LoadReport reloads a report written by DumpReports
func (c *Composer) LoadReport(path string) (*report.Report, error) {
	rep := &report.Report{}
	if err := c.LoadVariable(path, rep); err != nil {
		return nil, err
	}
	if !rep.Kind.Valid() {
		return nil, errors.Wrapf(errors.UnsupportedKind(rep.Kind), "report %s in %s", rep.Name, path)
	}
	return rep, nil
}

// ExportWorkbook writes the resolved reports to an .xlsx workbook under the output directory
func (c *Composer) ExportWorkbook(file string, names ...string) error {
	if c.workbook == nil {
		return errors.InternalError("no workbook writer configured")
	}
	path := c.registry.Path(file)
	if err := c.workbook.WriteReports(path, c.registry.Query(names...)); err != nil {
		return errors.Wrapf(err, "failed to export workbook %s", path)
	}
	c.logger.Info("workbook saved in %s", path)
	return nil
}

// ExportComparisonWorkbook writes comparison datasets, one sheet per label, under the output directory
func (c *Composer) ExportComparisonWorkbook(file string, datasets map[string]report.Matrix, order ...string) error {
	if c.workbook == nil {
		return errors.InternalError("no workbook writer configured")
	}
	path := c.registry.Path(file)
	if err := c.workbook.WriteMatrices(path, orderLabels(datasets, order), datasets); err != nil {
		return errors.Wrapf(err, "failed to export workbook %s", path)
	}
	c.logger.Info("workbook saved in %s", path)
	return nil
}
