package tables_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildbarn/bb-synthgen/internal/mock"
	"github.com/buildbarn/bb-synthgen/pkg/tables"
	"github.com/buildbarn/bb-synthgen/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const minimalTables = `
tlds: [com]
all_tlds: [com, net]
corp_locations: [hq]
windows_hostnames: [DESKTOP]
nix_hostnames: [ubuntu]
brands: [DELL]
server_prefixes: [prd]
server_suffixes: [a]
server_application_codes: [web]
server_types: [vm]
fortune_cookies: [Hello]
`

func TestDefault(t *testing.T) {
	d := tables.Default()
	require.Same(t, d, tables.Default())

	require.Contains(t, d.TLDs, "com")
	require.Contains(t, d.AllTLDs, "com")
	require.NotEmpty(t, d.CorpLocations)
	require.NotEmpty(t, d.WindowsHostnames)
	require.NotEmpty(t, d.NixHostnames)
	require.NotEmpty(t, d.Brands)
	require.NotEmpty(t, d.ServerPrefixes)
	require.NotEmpty(t, d.ServerSuffixes)
	require.NotEmpty(t, d.ServerApplicationCodes)
	require.NotEmpty(t, d.ServerTypes)
	require.NotEmpty(t, d.FortuneCookies)

	// Labels must be usable as part of a domain name.
	for _, tld := range d.AllTLDs {
		require.NotContains(t, tld, ".")
		require.Equal(t, strings.ToLower(tld), tld)
	}
}

func TestParse(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		parsed, err := tables.Parse(strings.NewReader(minimalTables))
		require.NoError(t, err)
		require.Equal(t, []string{"com", "net"}, parsed.AllTLDs)
		require.Equal(t, []string{"Hello"}, parsed.FortuneCookies)
	})

	t.Run("EmptyTable", func(t *testing.T) {
		_, err := tables.Parse(strings.NewReader(strings.Replace(minimalTables, "brands: [DELL]", "brands: []", 1)))
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Table \"brands\" is empty"), err)
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := tables.Parse(strings.NewReader(minimalTables + "colors: [red]\n"))
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to parse tables: "), err)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := tables.Parse(strings.NewReader("tlds: [com"))
		testutil.RequirePrefixedStatus(t, status.Error(codes.InvalidArgument, "Failed to parse tables: "), err)
	})
}

func TestLoad(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tables.yaml")
		require.NoError(t, os.WriteFile(path, []byte(minimalTables), 0o644))

		loaded, err := tables.Load(path)
		require.NoError(t, err)
		require.Equal(t, []string{"ubuntu"}, loaded.NixHostnames)
	})

	t.Run("NonExistent", func(t *testing.T) {
		_, err := tables.Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.Equal(t, codes.NotFound, status.Code(err))
	})
}

func TestChoose(t *testing.T) {
	ctrl := gomock.NewController(t)
	generator := mock.NewMockSingleThreadedGenerator(ctrl)
	generator.EXPECT().IntN(3).Return(2)

	require.Equal(t, "c", tables.Choose(generator, []string{"a", "b", "c"}))
}
