package loader

import (
	"context"
	"sync"
	"testing"

	"github.com/lycosa9527/mindgraph/pkg/errors"
	"github.com/lycosa9527/mindgraph/pkg/measure"
	"github.com/lycosa9527/mindgraph/pkg/spec"
)

func testLoader() *Loader {
	return New(measure.NewFallback(), nil)
}

func TestLoad(t *testing.T) {
	l := testLoader()

	mod, err := l.Load(context.Background(), "bubble_map")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if mod.Type != spec.TypeBubbleMap {
		t.Errorf("Type = %q, want %q", mod.Type, spec.TypeBubbleMap)
	}
	if mod.Config.Family != spec.FamilyRadial {
		t.Errorf("Family = %q, want %q", mod.Config.Family, spec.FamilyRadial)
	}
	if mod.Engine == nil {
		t.Error("Engine should be constructed")
	}
}

func TestLoadAlias(t *testing.T) {
	l := testLoader()

	mod, err := l.Load(context.Background(), "flow")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if mod.Type != spec.TypeFlowMap {
		t.Errorf("Type = %q, want %q", mod.Type, spec.TypeFlowMap)
	}
}

func TestLoadUnknownType(t *testing.T) {
	l := testLoader()

	_, err := l.Load(context.Background(), "starburst")
	if err == nil {
		t.Fatal("Load(starburst) = nil, want error")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeUnknownType {
		t.Errorf("code = %v, want %v", code, errors.ErrCodeUnknownType)
	}
}

func TestLoadMemoized(t *testing.T) {
	l := testLoader()
	ctx := context.Background()

	first, err := l.Load(ctx, "tree_map")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	second, err := l.Load(ctx, "tree_map")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first != second {
		t.Error("repeated loads should return the same module")
	}

	// An alias resolves to the same memoized module.
	aliased, err := l.Load(ctx, "tree")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if aliased != first {
		t.Error("alias should resolve to the canonical module")
	}
}

func TestLoadConcurrent(t *testing.T) {
	l := testLoader()
	ctx := context.Background()

	const workers = 16
	mods := make([]*Module, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			mod, err := l.Load(ctx, "mindmap")
			if err != nil {
				t.Errorf("Load() error = %v", err)
				return
			}
			mods[i] = mod
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if mods[i] != mods[0] {
			t.Fatalf("worker %d got a different module instance", i)
		}
	}
}
