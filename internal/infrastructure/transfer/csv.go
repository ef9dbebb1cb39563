package transfer

import (
	"encoding/csv"
	"fmt"
	"io"

	"netmotive-switcher/internal/domain/entities"
	"netmotive-switcher/internal/domain/errors"
)

// csvHeader is the canonical column set of the interchange format.
// Columns are matched by name on import, so their order in the source
// file does not matter.
var csvHeader = []string{"ProfileName", "IP", "Subnet", "Gateway", "DNS1", "DNS2"}

// RowError describes a single malformed row that was skipped during import
type RowError struct {
	Line int
	Err  error
}

// Error implements the error interface
func (e RowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// CSVCodec reads and writes the profile interchange format
type CSVCodec struct{}

// NewCSVCodec creates a new CSVCodec
func NewCSVCodec() *CSVCodec {
	return &CSVCodec{}
}

// ReadProfiles parses profiles from a CSV source. Malformed rows are
// skipped and reported individually; the scan continues with the rest.
// A source whose header cannot be read at all fails as a whole.
func (c *CSVCodec) ReadProfiles(r io.Reader) ([]entities.Profile, []RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, errors.NewFormatError("CSV source is empty", nil)
	}
	if err != nil {
		return nil, nil, errors.NewFormatError("failed to parse CSV header", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	if _, ok := columns["ProfileName"]; !ok {
		return nil, nil, errors.NewFormatError("CSV header has no ProfileName column", nil)
	}

	var (
		profiles  []entities.Profile
		rowErrors []RowError
	)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Err: err})
			continue
		}

		profile := entities.Profile{
			Name:    field(record, columns, "ProfileName"),
			IP:      field(record, columns, "IP"),
			Subnet:  field(record, columns, "Subnet"),
			Gateway: field(record, columns, "Gateway"),
			DNS1:    field(record, columns, "DNS1"),
			DNS2:    field(record, columns, "DNS2"),
		}
		if err := profile.Validate(); err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Err: err})
			continue
		}

		profiles = append(profiles, profile)
	}

	return profiles, rowErrors, nil
}

// WriteProfiles serializes profiles with the canonical header row
func (c *CSVCodec) WriteProfiles(w io.Writer, profiles []entities.Profile) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return errors.NewIOError("failed to write CSV header", err)
	}
	for _, p := range profiles {
		row := []string{p.Name, p.IP, p.Subnet, p.Gateway, p.DNS1, p.DNS2}
		if err := writer.Write(row); err != nil {
			return errors.NewIOError("failed to write CSV row", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewIOError("failed to flush CSV output", err)
	}
	return nil
}

// ExampleProfile returns the illustrative row used by the example export
func ExampleProfile() entities.Profile {
	return entities.Profile{
		Name:    "OfficeLAN",
		IP:      "192.168.1.100",
		Subnet:  "255.255.255.0",
		Gateway: "192.168.1.1",
		DNS1:    "8.8.8.8",
		DNS2:    "1.1.1.1",
	}
}

// field returns the named column of a record, tolerating short rows and
// columns absent from the source header.
func field(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
