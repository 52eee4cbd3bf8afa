package tools_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"skideal/internal/adapters/observability"
	"skideal/internal/adapters/tools"
)

func echoTool(name string) *tools.Tool {
	return &tools.Tool{
		Name:   name,
		Schema: tools.ToolSchema{Required: []string{"q"}},
		Execute: func(_ context.Context, args map[string]any) (string, error) {
			return name + ":" + args["q"].(string), nil
		},
	}
}

func TestRegister_RejectsInvalidAndDuplicates(t *testing.T) {
	reg := tools.NewRegistry(0)
	if err := reg.Register(&tools.Tool{Name: "x"}); !errors.Is(err, tools.ErrToolExecuteNil) {
		t.Fatalf("nil execute: %v", err)
	}
	if err := reg.Register(&tools.Tool{Execute: echoTool("x").Execute}); !errors.Is(err, tools.ErrToolNameEmpty) {
		t.Fatalf("empty name: %v", err)
	}
	reg.MustRegister(echoTool("b"))
	reg.MustRegister(echoTool("a"))
	if err := reg.Register(echoTool("a")); !errors.Is(err, tools.ErrToolAlreadyRegistered) {
		t.Fatalf("duplicate: %v", err)
	}

	var names []string
	for _, tl := range reg.All() {
		names = append(names, tl.Name)
	}
	if !slices.Equal(names, []string{"a", "b"}) {
		t.Fatalf("All() = %v", names)
	}
	if reg.Get("missing") != nil {
		t.Fatalf("Get(missing) should be nil")
	}
}

func TestInvoke_NeverFails(t *testing.T) {
	reg := tools.NewRegistry(0)
	reg.MustRegister(echoTool("echo"))
	reg.MustRegister(&tools.Tool{
		Name:    "boom",
		Execute: func(context.Context, map[string]any) (string, error) { panic("kaboom") },
	})
	reg.MustRegister(&tools.Tool{
		Name: "broken",
		Execute: func(context.Context, map[string]any) (string, error) {
			return "", errors.New("disk on fire")
		},
	})
	ctx := context.Background()

	if r := reg.Invoke(ctx, "echo", map[string]any{"q": "hi"}); r.Failed || r.Output != "echo:hi" {
		t.Fatalf("echo = %+v", r)
	}
	cases := map[string]struct {
		tool string
		args map[string]any
		want string
	}{
		"unknown tool":  {"nope", nil, "nope"},
		"missing arg":   {"echo", nil, "'q'"},
		"null arg":      {"echo", map[string]any{"q": nil}, "'q'"},
		"panic":         {"boom", nil, "שגיאה"},
		"generic error": {"broken", nil, "disk on fire"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := reg.Invoke(ctx, tc.tool, tc.args)
			if !r.Failed || r.Empty {
				t.Fatalf("expected failed result, got %+v", r)
			}
			if !strings.Contains(r.Output, tc.want) {
				t.Fatalf("output %q does not mention %q", r.Output, tc.want)
			}
		})
	}
}

func toolCallSeries() int {
	ch := make(chan prometheus.Metric, 4096)
	observability.ToolCalls.Collect(ch)
	close(ch)
	return len(ch)
}

func TestInvoke_UnknownNamesShareOneMetricLabel(t *testing.T) {
	reg := tools.NewRegistry(0)
	var calls []tools.Call
	for i := 0; i < 500; i++ {
		calls = append(calls, tools.Call{Tool: fmt.Sprintf("junk_%d", i)})
	}

	before := toolCallSeries()
	res := reg.InvokeBatch(context.Background(), calls, 8)
	if got := toolCallSeries() - before; got > 1 {
		t.Fatalf("unknown tools added %d series, want at most 1", got)
	}
	if !res[42].Failed || !strings.Contains(res[42].Output, "junk_42") {
		t.Fatalf("unknown tool result = %+v", res[42])
	}
}

func TestInvoke_AppliesTimeout(t *testing.T) {
	reg := tools.NewRegistry(20 * time.Millisecond)
	reg.MustRegister(&tools.Tool{
		Name: "slow",
		Execute: func(ctx context.Context, _ map[string]any) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		},
	})
	r := reg.Invoke(context.Background(), "slow", nil)
	if !r.Failed || !strings.Contains(r.Output, "deadline") {
		t.Fatalf("timeout result = %+v", r)
	}
}

func TestInvokeBatch_KeepsOrderAndBoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int32
	reg := tools.NewRegistry(0)
	reg.MustRegister(&tools.Tool{
		Name: "work",
		Execute: func(_ context.Context, args map[string]any) (string, error) {
			n := inFlight.Add(1)
			defer inFlight.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return args["id"].(string), nil
		},
	})

	var calls []tools.Call
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		calls = append(calls, tools.Call{Tool: "work", Args: map[string]any{"id": id}})
	}
	calls = append(calls, tools.Call{Tool: "nope"})

	res := reg.InvokeBatch(context.Background(), calls, 2)
	if len(res) != len(calls) {
		t.Fatalf("got %d results", len(res))
	}
	for i, id := range []string{"a", "b", "c", "d", "e", "f"} {
		if res[i].Output != id {
			t.Fatalf("result %d = %q, want %q", i, res[i].Output, id)
		}
	}
	if !res[6].Failed {
		t.Fatalf("unknown tool in batch should fail: %+v", res[6])
	}
	if p := peak.Load(); p > 2 {
		t.Fatalf("peak concurrency %d exceeds workers", p)
	}
}

func TestInvokeBatch_CanceledContext(t *testing.T) {
	reg := tools.NewRegistry(0)
	reg.MustRegister(echoTool("echo"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := reg.InvokeBatch(ctx, []tools.Call{{Tool: "echo", Args: map[string]any{"q": "x"}}}, 1)
	if len(res) != 1 || !res[0].Failed {
		t.Fatalf("canceled batch = %+v", res)
	}
}
