package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/buildbarn/bb-synthgen/pkg/address"
	"github.com/buildbarn/bb-synthgen/pkg/clock"
	"github.com/buildbarn/bb-synthgen/pkg/dga"
	"github.com/buildbarn/bb-synthgen/pkg/identifier"
	"github.com/buildbarn/bb-synthgen/pkg/naming"
	"github.com/buildbarn/bb-synthgen/pkg/random"
	"github.com/buildbarn/bb-synthgen/pkg/synth"
	"github.com/buildbarn/bb-synthgen/pkg/tables"
	"github.com/buildbarn/bb-synthgen/pkg/timezone"
	"github.com/charmbracelet/log"
)

// sampler prints a handful of values of every kind that can be
// generated. It is used to eyeball the output of the generators.
type sampler struct {
	generator synth.Generator
	clock     clock.Clock
	count     int
	w         *tabwriter.Writer
}

func (s *sampler) row(label string, value any) {
	fmt.Fprintf(s.w, "%s\t%v\n", label, value)
}

func (s *sampler) addresses() error {
	for _, version := range []int{4, 6} {
		for i := 0; i < s.count; i++ {
			public, err := s.generator.PublicAddress(version, address.ClassRandom, "")
			if err != nil {
				return err
			}
			private, err := s.generator.PrivateAddress(version, "")
			if err != nil {
				return err
			}
			s.row(fmt.Sprintf("IPv%d public/private", version), fmt.Sprintf("%s\t%s", public, private))
		}
	}
	for _, scope := range []address.PortScope{address.PortScopeSystem, address.PortScopeUser, address.PortScopeDynamic} {
		s.row("Port", s.generator.PortNumber(scope))
	}
	mac, err := s.generator.MACAddress(true, "")
	if err != nil {
		return err
	}
	s.row("MAC address", mac)
	return nil
}

func (s *sampler) names() {
	for i := 0; i < s.count; i++ {
		s.row("DGA domain", s.generator.DGADomain(dga.Parameters{}))
	}
	if fqdn, ok := s.generator.FQDN("contoso"); ok {
		s.row("FQDN", fqdn.FQDN)
	}
	s.row("Hostname", s.generator.Hostname(naming.HostnameParameters{Prefix: "jsmith"}))
	for _, platform := range []naming.Platform{naming.PlatformWindows, naming.PlatformLinux, naming.PlatformMixed} {
		s.row("Server name", s.generator.ServerName(platform))
	}
	if names, err := s.generator.LocalhostNames(naming.LocalhostParameters{SuffixLocal: true}, s.count); err == nil {
		s.row("Localhost names", strings.Join(names, " "))
	}
	s.row("Fortune cookie", s.generator.FortuneCookie())
}

func (s *sampler) identifiers() error {
	for _, kind := range []identifier.Kind{
		identifier.KindUUID,
		identifier.KindLogonID,
		identifier.KindObjectID,
		identifier.KindULID,
		identifier.KindKSUID,
		identifier.KindNanoID,
		identifier.KindCUID2,
	} {
		ids, err := s.generator.Identifiers(kind, 1)
		if err != nil {
			return err
		}
		s.row(kind.String(), ids[0])
	}
	return nil
}

func (s *sampler) timeSeries() error {
	end := s.clock.Now()
	start := end.Add(-2 * time.Minute)
	series, err := s.generator.GenerateUntilWithLimit(start, end, s.count)
	if err != nil {
		return err
	}
	for _, t := range series {
		s.row("Timestamp", t.Format("2006-01-02T15:04:05.000000000Z07:00"))
	}

	record, err := s.generator.RandomTimezone()
	if err != nil {
		return err
	}
	s.row("Random time zone", fmt.Sprintf("%s (%s): %s", record.Name, record.Alpha2Code, strings.Join(record.Timezones, ",")))
	for _, query := range []string{"US", "GBR", "Australia"} {
		zones, _, err := s.generator.TZByISOCode(query)
		if len(query) > 3 {
			zones, _, err = s.generator.TZByCountry(query)
		}
		if err != nil {
			return err
		}
		s.row("Time zones of "+query, zones)
	}
	return nil
}

func run(w io.Writer, generator random.ThreadSafeGenerator, count int) error {
	s := &sampler{
		generator: synth.NewLocalGenerator(generator, clock.SystemClock, tables.Default(), timezone.DefaultResolver, address.ExclusionModeSubtract),
		clock:     clock.SystemClock,
		count:     count,
		w:         tabwriter.NewWriter(w, 0, 8, 2, ' ', 0),
	}
	if err := s.addresses(); err != nil {
		return err
	}
	s.names()
	if err := s.identifiers(); err != nil {
		return err
	}
	if err := s.timeSeries(); err != nil {
		return err
	}
	return s.w.Flush()
}

func main() {
	seed := flag.Uint64("seed", 0, "Seed of the random number generator. Zero uses a randomly seeded generator.")
	count := flag.Int("count", 3, "Number of values to print per category.")
	flag.Parse()

	generator := random.FastThreadSafeGenerator
	if *seed != 0 {
		generator = random.NewThreadSafeGenerator(random.NewSeededGenerator(*seed))
	}
	if err := run(os.Stdout, generator, *count); err != nil {
		log.Fatal("Failed to generate samples", "err", err)
	}
}
