package di

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-dao-mapper/daogen"
	"github.com/goliatone/go-dao-mapper/internal/diag"
	"github.com/goliatone/go-dao-mapper/internal/fieldreg"
	"github.com/goliatone/go-dao-mapper/mapper"
)

// Container provides dependency injection for the generation pipeline.
// It manages the shared diagnostics sink and hands out per-class field
// allocators and factory method generators wired to it.
type Container struct {
	logger      *zap.Logger
	diagnostics mapper.Diagnostics
}

// NewContainer creates a container reporting diagnostics through the
// provided logger. A nil logger discards diagnostics output but still
// drives the per-method skip behavior.
func NewContainer(logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Container{
		logger:      logger,
		diagnostics: diag.NewZapSink(logger),
	}, nil
}

// NewContainerWithDefaults creates a container with a production zap
// logger. This is a convenience constructor for typical use cases where
// custom logging configuration is not required.
func NewContainerWithDefaults() (*Container, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewContainer(logger)
}

// Diagnostics returns the shared diagnostics sink.
func (c *Container) Diagnostics() mapper.Diagnostics {
	return c.diagnostics
}

// Logger returns the logger the container was built with.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// NewClassAllocator creates a fresh field allocator scoped to one
// generated mapper type. Each generated class gets its own allocator so
// field names are deduplicated per class, never across classes.
func (c *Container) NewClassAllocator(class string) daogen.FieldAllocator {
	return fieldreg.New(class)
}

// NewFactoryMethodGenerator builds a generator for one factory method,
// filling in the container's diagnostics sink when the config leaves it
// unset. Validation failures are reported and returned; callers skip the
// method and continue with its siblings.
func (c *Container) NewFactoryMethodGenerator(cfg daogen.Config) (*daogen.FactoryMethodGenerator, error) {
	if cfg.Diagnostics == nil {
		cfg.Diagnostics = c.diagnostics
	}
	return daogen.NewFactoryMethodGenerator(cfg)
}
