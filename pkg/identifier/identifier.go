// Package identifier generates batches of unique identifiers in
// various well-known formats.
package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/hexpattern"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/util"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/nrednav/cuid2"
	"github.com/oklog/ulid/v2"
	"github.com/segmentio/ksuid"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind of identifier.
type Kind int

const (
	KindUUID Kind = iota
	KindLogonID
	KindObjectID
	KindULID
	KindKSUID
	KindNanoID
	KindCUID2
)

var kindNames = map[string]Kind{
	"uuid":     KindUUID,
	"logon_id": KindLogonID,
	"objectid": KindObjectID,
	"ulid":     KindULID,
	"ksuid":    KindKSUID,
	"nanoid":   KindNanoID,
	"cuid2":    KindCUID2,
}

// ParseKind converts the textual name of a kind of identifier, such as
// "uuid" or "ulid", to a Kind.
func ParseKind(s string) (Kind, error) {
	if kind, ok := kindNames[strings.ToLower(s)]; ok {
		return kind, nil
	}
	return 0, status.Errorf(codes.InvalidArgument, "Unknown identifier kind %#v", s)
}

func (k Kind) String() string {
	for name, kind := range kindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

const (
	logonIDPattern = "0x^^^^^^^"
	cuid2Length    = 24
)

// Generator of identifiers.
type Generator struct {
	generator random.SingleThreadedGenerator
	clock     clock.Clock

	cuid2Lock sync.Mutex
	cuid2     func() string
}

// NewGenerator creates a Generator of identifiers. Identifiers that
// embed a timestamp obtain it from the clock.
func NewGenerator(generator random.SingleThreadedGenerator, clock clock.Clock) *Generator {
	return &Generator{
		generator: generator,
		clock:     clock,
	}
}

func checkCount(count int) error {
	if count < 0 {
		return status.Errorf(codes.InvalidArgument, "Count %d is negative", count)
	}
	return nil
}

func (g *Generator) batch(count int, generate func() (string, error)) ([]string, error) {
	if err := checkCount(count); err != nil {
		return nil, err
	}
	ids := make([]string, 0, count)
	for i := 0; i < count; i++ {
		id, err := generate()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// UUIDs generates version 4 UUIDs in their canonical textual form.
func (g *Generator) UUIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		id, err := uuid.NewRandomFromReader(g.generator)
		if err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate UUID")
		}
		return id.String(), nil
	})
}

// LogonIDs generates Windows logon identifiers, consisting of seven
// hexadecimal digits.
func (g *Generator) LogonIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		return hexpattern.Expand(g.generator, logonIDPattern, false), nil
	})
}

// ObjectIDs generates identifiers having the same layout as MongoDB
// ObjectIDs: a 32-bit timestamp in seconds, followed by eight random
// bytes.
func (g *Generator) ObjectIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		var id [12]byte
		binary.BigEndian.PutUint32(id[:4], uint32(g.clock.Now().Unix()))
		if _, err := g.generator.Read(id[4:]); err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate ObjectID")
		}
		return hex.EncodeToString(id[:]), nil
	})
}

// ULIDs generates Universally Unique Lexicographically Sortable
// Identifiers.
func (g *Generator) ULIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		id, err := ulid.New(ulid.Timestamp(g.clock.Now()), g.generator)
		if err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate ULID")
		}
		return id.String(), nil
	})
}

// KSUIDs generates K-Sortable Unique Identifiers.
func (g *Generator) KSUIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		var payload [16]byte
		if _, err := g.generator.Read(payload[:]); err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate KSUID")
		}
		id, err := ksuid.FromParts(g.clock.Now(), payload[:])
		if err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate KSUID")
		}
		return id.String(), nil
	})
}

// NanoIDs generates NanoIDs of the default size and alphabet. These
// are always obtained from a cryptographically secure source.
func (g *Generator) NanoIDs(count int) ([]string, error) {
	return g.batch(count, func() (string, error) {
		id, err := gonanoid.New()
		if err != nil {
			return "", util.StatusWrapWithCode(err, codes.Internal, "Failed to generate NanoID")
		}
		return id, nil
	})
}

// CUID2s generates collision-resistant identifiers. The CUID2
// fingerprint and session counter are derived from the random number
// generator upon first use.
func (g *Generator) CUID2s(count int) ([]string, error) {
	g.cuid2Lock.Lock()
	defer g.cuid2Lock.Unlock()

	if g.cuid2 == nil {
		g.cuid2 = util.Must(cuid2.Init(
			cuid2.WithRandomFunc(g.generator.Float64),
			cuid2.WithLength(cuid2Length)))
	}
	return g.batch(count, func() (string, error) {
		return g.cuid2(), nil
	})
}

// Identifiers generates a batch of identifiers of a given kind.
func (g *Generator) Identifiers(kind Kind, count int) ([]string, error) {
	switch kind {
	case KindUUID:
		return g.UUIDs(count)
	case KindLogonID:
		return g.LogonIDs(count)
	case KindObjectID:
		return g.ObjectIDs(count)
	case KindULID:
		return g.ULIDs(count)
	case KindKSUID:
		return g.KSUIDs(count)
	case KindNanoID:
		return g.NanoIDs(count)
	case KindCUID2:
		return g.CUID2s(count)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown identifier kind %d", kind)
	}
}
