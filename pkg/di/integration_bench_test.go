package di_test

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/goliatone/go-dao-mapper/daocache"
	"github.com/goliatone/go-dao-mapper/daogen"
	"github.com/goliatone/go-dao-mapper/mapper"
	"github.com/goliatone/go-dao-mapper/pkg/di"
	"github.com/goliatone/go-dao-mapper/pkg/testsupport"
)

// BenchmarkGenerateFactoryMethod measures the cost of validating and
// rendering one keyed factory method end to end.
func BenchmarkGenerateFactoryMethod(b *testing.B) {
	container, err := di.NewContainer(zap.NewNop())
	if err != nil {
		b.Fatalf("Failed to create DI container: %v", err)
	}

	cfg := daogen.Config{
		Signature: mapper.MethodSignature{
			Name: "ProductDao",
			Params: []mapper.Param{
				{Name: "keyspace", Type: mapper.TypeText, Role: mapper.RoleKeyspace},
				{Name: "table", Type: mapper.TypeIdentifier, Role: mapper.RoleTable},
			},
			Returns: mapper.TypeRef{Pkg: "github.com/acme/store/db", Name: "ProductDao"},
		},
		DaoImpl: mapper.TypeRef{Pkg: "github.com/acme/store/db", Name: "ProductDaoImpl"},
		Class:   "StoreMapper",
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cfg.Allocator = container.NewClassAllocator("StoreMapper")
		gen, err := container.NewFactoryMethodGenerator(cfg)
		if err != nil {
			b.Fatalf("generation failed: %v", err)
		}
		_ = gen.Render()
	}
}

// BenchmarkCacheGetOrInit compares the cold and warm paths of the keyed
// runtime cache the generated bodies read through.
func BenchmarkCacheGetOrInit(b *testing.B) {
	outer := daocache.NewMapperContext(daocache.NewIdentifier("default_ks"), daocache.Identifier{})
	init := func(k daocache.Key) *testsupport.FakeDao {
		return testsupport.NewFakeDao(outer.WithKeyspaceAndTable(k.Keyspace(), k.Table()))
	}

	b.Run("cold_miss", func(b *testing.B) {
		cache := daocache.New[*testsupport.FakeDao]()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			key := daocache.NewKey(daocache.NewIdentifier(fmt.Sprintf("ks-%d", i)), daocache.Identifier{})
			_ = cache.GetOrInit(key, init)
		}
	})

	b.Run("warm_hit", func(b *testing.B) {
		cache := daocache.New[*testsupport.FakeDao]()
		key := daocache.NewKey(daocache.NewIdentifier("ks1"), daocache.NewIdentifier("tbl1"))
		cache.GetOrInit(key, init)

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = cache.GetOrInit(key, init)
		}
	})

	b.Run("concurrent_warm_hits", func(b *testing.B) {
		cache := daocache.New[*testsupport.FakeDao]()
		keys := make([]daocache.Key, 100)
		for i := range keys {
			keys[i] = daocache.NewKey(daocache.NewIdentifier(fmt.Sprintf("ks-%d", i)), daocache.Identifier{})
			cache.GetOrInit(keys[i], init)
		}

		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			i := 0
			for pb.Next() {
				_ = cache.GetOrInit(keys[i%len(keys)], init)
				i++
			}
		})
	})
}
