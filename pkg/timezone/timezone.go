// Package timezone resolves countries to the IANA time zones that are
// in use within them.
package timezone

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:embed tz.csv
var embeddedDataset []byte

var datasetHeader = []string{"alpha_2_code", "alpha_3_code", "continent", "capital", "name", "timezones"}

// Record of a single country.
type Record struct {
	Alpha2Code string   `json:"alpha_2_code"`
	Alpha3Code string   `json:"alpha_3_code"`
	Continent  string   `json:"continent"`
	Capital    string   `json:"capital"`
	Name       string   `json:"name"`
	Timezones  []string `json:"timezones"`
}

// Parse a dataset of countries in CSV format. The timezones column
// contains a comma separated list of IANA time zone identifiers.
func Parse(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(datasetHeader)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, status.Error(codes.InvalidArgument, "Dataset does not contain a header")
	} else if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "Failed to read header: %s", err)
	}
	if !slices.Equal(header, datasetHeader) {
		return nil, status.Errorf(codes.InvalidArgument, "Dataset has header %#v, while %#v was expected", header, datasetHeader)
	}

	var records []Record
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			return records, nil
		} else if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "Failed to read record: %s", err)
		}
		var timezones []string
		if fields[5] != "" {
			timezones = strings.Split(fields[5], ",")
		}
		records = append(records, Record{
			Alpha2Code: fields[0],
			Alpha3Code: fields[1],
			Continent:  fields[2],
			Capital:    fields[3],
			Name:       fields[4],
			Timezones:  timezones,
		})
	}
}

// matches returns whether a record corresponds to a query. Queries of
// length two and three are compared against ISO 3166 codes. All other
// queries are compared against the name of the country.
func (r *Record) matches(query string) bool {
	switch len(query) {
	case 2:
		return strings.EqualFold(r.Alpha2Code, query)
	case 3:
		return strings.EqualFold(r.Alpha3Code, query)
	default:
		return strings.EqualFold(r.Name, query)
	}
}

// Resolver of countries to time zones. The dataset is parsed every
// time it is consulted.
type Resolver struct {
	dataset []byte
}

// NewResolver creates a Resolver that is backed by a dataset in CSV
// format.
func NewResolver(dataset []byte) *Resolver {
	return &Resolver{dataset: dataset}
}

// DefaultResolver is backed by the dataset that is embedded into the
// binary.
var DefaultResolver = NewResolver(embeddedDataset)

// Load all records from the dataset. Failures to parse the dataset are
// reported as internal errors, as the dataset is not provided by the
// caller.
func (r *Resolver) Load() ([]Record, error) {
	records, err := Parse(bytes.NewReader(r.dataset))
	if err != nil {
		return nil, util.StatusWrapWithCode(err, codes.Internal, "Invalid time zone dataset")
	}
	return records, nil
}

// Lookup returns a comma separated list of time zones used by the
// countries matching a query. The boolean return value is false if no
// country matches.
func (r *Resolver) Lookup(query string) (string, bool, error) {
	records, err := r.Load()
	if err != nil {
		return "", false, err
	}
	var timezones []string
	for i := range records {
		if records[i].matches(query) {
			timezones = append(timezones, records[i].Timezones...)
		}
	}
	if len(timezones) == 0 {
		return "", false, nil
	}
	return strings.Join(timezones, ","), true, nil
}

// ByISOCode returns the time zones of a country, identified by its
// ISO 3166 alpha-2 or alpha-3 code.
func (r *Resolver) ByISOCode(code string) (string, bool, error) {
	return r.Lookup(code)
}

// ByCountry returns the time zones of a country, identified by its
// name.
func (r *Resolver) ByCountry(name string) (string, bool, error) {
	return r.Lookup(name)
}

// Random returns the record of a country picked uniformly at random.
func (r *Resolver) Random(generator random.SingleThreadedGenerator) (Record, error) {
	records, err := r.Load()
	if err != nil {
		return Record{}, err
	}
	if len(records) == 0 {
		return Record{}, status.Error(codes.Internal, "Time zone dataset contains no records")
	}
	return records[generator.IntN(len(records))], nil
}
