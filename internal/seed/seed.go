// Package seed loads operator fixtures. Rooms have no form, so this is the
// only way they enter the store.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/KeisukeTTTT/estate-management/internal/models"
	"github.com/KeisukeTTTT/estate-management/internal/pipeline"
	"github.com/KeisukeTTTT/estate-management/internal/validation"
)

type Fixture struct {
	Properties []PropertyFixture `yaml:"properties"`
}

type PropertyFixture struct {
	Name    string        `yaml:"name"`
	Address string        `yaml:"address"`
	Type    string        `yaml:"type"`
	Rooms   []RoomFixture `yaml:"rooms"`
}

type RoomFixture struct {
	RoomNumber    *string `yaml:"roomNumber"`
	Rent          int64   `yaml:"rent"`
	ManagementFee int64   `yaml:"managementFee"`
}

// Summary counts what a run inserted.
type Summary struct {
	Properties int
	Rooms      int
}

func Parse(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("failed to decode fixture: %w", err)
	}
	return &f, nil
}

func ParseFile(path string) (*Fixture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer file.Close()
	return Parse(file)
}

// Validate reports every invalid property and room in one error.
func (f *Fixture) Validate() error {
	var errs []error
	for i, p := range f.Properties {
		_, fieldErrs := validation.ValidateProperty(p.raw())
		for _, field := range fieldErrs.Fields() {
			errs = append(errs, fmt.Errorf("properties[%d].%s: %s", i, field, strings.Join(fieldErrs[field], " ")))
		}
		for j, room := range p.Rooms {
			if room.Rent < 0 {
				errs = append(errs, fmt.Errorf("properties[%d].rooms[%d].rent: must be 0 or more", i, j))
			}
			if room.ManagementFee < 0 {
				errs = append(errs, fmt.Errorf("properties[%d].rooms[%d].managementFee: must be 0 or more", i, j))
			}
		}
	}
	return errors.Join(errs...)
}

func (p PropertyFixture) raw() validation.Raw {
	return validation.FromMap(map[string]string{
		"name":    p.Name,
		"address": p.Address,
		"type":    p.Type,
	})
}

type Seeder struct {
	store       pipeline.Inserter
	invalidator pipeline.Invalidator
	logger      *zap.Logger
}

// NewSeeder wires the seeder. invalidator may be nil when no cache is configured.
func NewSeeder(store pipeline.Inserter, invalidator pipeline.Invalidator, logger *zap.Logger) *Seeder {
	return &Seeder{store: store, invalidator: invalidator, logger: logger}
}

// Run validates the whole fixture before writing anything, then inserts each
// property followed by its rooms. Inserts are not rolled back on failure.
func (s *Seeder) Run(ctx context.Context, f *Fixture) (Summary, error) {
	var sum Summary
	if err := f.Validate(); err != nil {
		return sum, fmt.Errorf("invalid fixture: %w", err)
	}

	if len(f.Properties) > 0 {
		defer s.invalidate(ctx)
	}

	for _, pf := range f.Properties {
		in, _ := validation.ValidateProperty(pf.raw())
		property := &models.Property{Name: in.Name, Address: in.Address, Type: in.Type}
		property.GenIDIfEmpty()
		if err := s.store.Insert(ctx, models.KindProperty, property); err != nil {
			return sum, fmt.Errorf("failed to insert property %q: %w", pf.Name, err)
		}
		sum.Properties++

		for _, rf := range pf.Rooms {
			room := &models.Room{
				PropertyID:    property.ID,
				RoomNumber:    rf.RoomNumber,
				Rent:          rf.Rent,
				ManagementFee: rf.ManagementFee,
			}
			if err := s.store.Insert(ctx, models.KindRoom, room); err != nil {
				return sum, fmt.Errorf("failed to insert room of property %q: %w", pf.Name, err)
			}
			sum.Rooms++
		}
	}

	s.logger.Info("seed complete", zap.Int("properties", sum.Properties), zap.Int("rooms", sum.Rooms))
	return sum, nil
}

// Room options are cached under the rooms path, so both listings go stale.
func (s *Seeder) invalidate(ctx context.Context) {
	if s.invalidator == nil {
		return
	}
	for _, kind := range []models.Kind{models.KindProperty, models.KindRoom} {
		if err := s.invalidator.Invalidate(ctx, kind.ListingPath()); err != nil {
			s.logger.Warn("failed to invalidate listing cache", zap.String("path", kind.ListingPath()), zap.Error(err))
		}
	}
}
