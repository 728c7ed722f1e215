// Package dga generates domain names in the style of the Domain
// Generation Algorithms used by malware to locate command and control
// servers. Labels are a deterministic function of a date-like seed.
package dga

import (
	"strings"

	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/tables"
)

// Seed from which a label is derived. The fields are not validated
// against the calendar. Day 30 of February is an acceptable seed.
type Seed struct {
	Year  uint32
	Month uint32
	Day   uint32
}

// next applies one round of the mixing function to every field of the
// seed independently. All arithmetic wraps at 32 bits.
func (s Seed) next() Seed {
	y, m, d := s.Year, s.Month, s.Day
	return Seed{
		Year:  ((y ^ 8*y) >> 11) ^ ((y & 0xfffffff0) << 17),
		Month: ((m ^ 4*m) >> 25) ^ 16*(m&0xfffffff8),
		Day:   ((d ^ (d << 13)) >> 19) ^ ((d & 0xfffffffe) << 12),
	}
}

// MaximumLabelLength is the longest label permitted by DNS.
const MaximumLabelLength = 63

// Label derives a label of a given length from a seed. Every
// character is in range 'a' to 'y'.
func Label(seed Seed, length uint32) string {
	var sb strings.Builder
	sb.Grow(int(length))
	for i := uint32(0); i < length; i++ {
		seed = seed.next()
		sb.WriteByte(byte((seed.Year^seed.Month^seed.Day)%25) + 'a')
	}
	return sb.String()
}

// Parameters of a domain name. Fields that are left unset are
// randomized.
type Parameters struct {
	Year   *uint32
	Month  *uint32
	Day    *uint32
	Length *uint32
	TLD    string
}

// Generator of domain names.
type Generator struct {
	generator random.SingleThreadedGenerator
	tlds      []string
}

// NewGenerator creates a Generator of domain names. The list of
// top-level domains is used when parameters don't specify one. It must
// be non-empty.
func NewGenerator(generator random.SingleThreadedGenerator, tlds []string) *Generator {
	return &Generator{
		generator: generator,
		tlds:      tlds,
	}
}

func (g *Generator) valueOrRandom(v *uint32, low, high int) uint32 {
	if v != nil {
		return *v
	}
	return uint32(low + g.generator.IntN(high-low+1))
}

// Domain returns a domain name consisting of a single label followed
// by a top-level domain.
func (g *Generator) Domain(parameters Parameters) string {
	seed := Seed{
		Year:  g.valueOrRandom(parameters.Year, 1, 9999),
		Month: g.valueOrRandom(parameters.Month, 1, 12),
		Day:   g.valueOrRandom(parameters.Day, 1, 30),
	}
	tld := parameters.TLD
	if tld == "" {
		tld = tables.Choose(g.generator, g.tlds)
	}
	length := g.valueOrRandom(parameters.Length, 10, 25)
	return Label(seed, length) + "." + tld
}
