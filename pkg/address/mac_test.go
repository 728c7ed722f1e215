package address_test

import (
	"net"
	"testing"

	"github.com/buildbarn/bb-synthgen/internal/mock"
	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMACAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Digits", func(t *testing.T) {
		generator := mock.NewMockSingleThreadedGenerator(ctrl)
		var calls []any
		for _, digit := range []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11} {
			calls = append(calls, generator.EXPECT().IntN(16).Return(digit))
		}
		gomock.InOrder(calls...)

		mac, err := address.MACAddress(generator, true, "")
		require.NoError(t, err)
		require.Equal(t, "01:23:45:67:89:AB", mac)
	})

	t.Run("Parseable", func(t *testing.T) {
		generator := random.NewFastSingleThreadedGenerator()
		for i := 0; i < 100; i++ {
			mac, err := address.MACAddress(generator, false, "")
			require.NoError(t, err)
			_, err = net.ParseMAC(mac)
			require.NoError(t, err)
		}
	})

	t.Run("OUI", func(t *testing.T) {
		generator := random.NewFastSingleThreadedGenerator()

		mac, err := address.MACAddress(generator, false, "00:1A:2b")
		require.NoError(t, err)
		require.Regexp(t, `^00:1a:2b(:[0-9a-f]{2}){3}$`, mac)

		mac, err = address.MACAddress(generator, true, "ac-de")
		require.NoError(t, err)
		require.Regexp(t, `^AC:DE(:[0-9A-F]{2}){4}$`, mac)
	})

	t.Run("InvalidOUI", func(t *testing.T) {
		generator := random.NewFastSingleThreadedGenerator()

		_, err := address.MACAddress(generator, false, "00:1a:2b:3c")
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Invalid OUI \"00:1a:2b:3c\": Expected up to three hexadecimal octets"), err)
	})
}
