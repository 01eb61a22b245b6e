package generate

import (
	"fmt"
	"math/rand"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmrzaf/dataforge/internal/columns"
	"github.com/mmrzaf/dataforge/internal/domain"
)

type Generator struct {
	registry *columns.Registry
}

func NewGenerator(registry *columns.Registry) *Generator {
	return &Generator{registry: registry}
}

// GenerateOne produces a single record for the plan. Values are computed in
// plan order so every dependent rule sees its prerequisites; the emitted
// record carries only the requested columns, in the requested order.
func (g *Generator) GenerateOne(rng *rand.Rand, plan *Plan) (domain.Record, error) {
	values := make(map[string]any, len(plan.Order))

	for _, name := range plan.Order {
		rule, err := g.registry.Get(name)
		if err != nil {
			return domain.Record{}, err
		}

		var inputs map[string]any
		if prereqs := rule.Prerequisites(); len(prereqs) > 0 {
			inputs = make(map[string]any, len(prereqs))
			for _, p := range prereqs {
				inputs[p] = values[p]
			}
		}

		v, err := rule.Generate(rng, inputs)
		if err != nil {
			return domain.Record{}, fmt.Errorf("column '%s': %w", name, err)
		}
		values[name] = v
	}

	rec := domain.Record{
		Columns: slices.Clone(plan.Emit),
		Values:  make(map[string]any, len(plan.Emit)),
	}
	for _, name := range plan.Emit {
		rec.Values[name] = values[name]
	}
	return rec, nil
}

// GenerateMany produces count records. Records are independent, so generation
// fans out across workers; each worker has its own rand source and writes
// results by index, keeping row order deterministic rather than
// completion-ordered.
func (g *Generator) GenerateMany(count int, plan *Plan, workers int) (*domain.Dataset, error) {
	if count <= 0 {
		return domain.NewDataset(plan.Emit), nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}

	records := make([]domain.Record, count)
	seed := time.Now().UnixNano()

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(w)))
			for i := w; i < count; i += workers {
				rec, err := g.GenerateOne(rng, plan)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
				records[i] = rec
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return domain.FromRecords(plan.Emit, records)
}
