package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"skideal/internal/adapters/observability"
)

// Registry holds all available tools and provides lookup functionality.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	tools   map[string]*Tool
	timeout time.Duration
}

// NewRegistry creates an empty registry. A positive timeout bounds every
// invocation.
func NewRegistry(timeout time.Duration) *Registry {
	return &Registry{tools: make(map[string]*Tool), timeout: timeout}
}

// Register adds a tool to the registry.
// Returns an error if a tool with the same name already exists.
func (r *Registry) Register(tool *Tool) error {
	if err := tool.Validate(); err != nil {
		return fmt.Errorf("invalid tool: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("%w: %s", ErrToolAlreadyRegistered, tool.Name)
	}
	r.tools[tool.Name] = tool
	log.Debug().Str("tool", tool.Name).Msg("registered tool")
	return nil
}

// MustRegister registers a tool and panics on error.
func (r *Registry) MustRegister(tool *Tool) {
	if err := r.Register(tool); err != nil {
		panic(fmt.Sprintf("failed to register tool %s: %v", tool.Name, err))
	}
}

// Get returns a tool by name, or nil if not found.
func (r *Registry) Get(name string) *Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tools[name]
}

// All returns all registered tools ordered by name.
func (r *Registry) All() []*Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Tool, 0, len(r.tools))
	for _, t := range r.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Unregistered names share one metric label so callers cannot grow the
// series set.
const unknownToolLabel = "unknown"

// Invoke runs the named tool and converts every failure mode, including
// panics, into text for the agent.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (res Result) {
	start := time.Now()
	res.Tool = name
	var cause error
	label := unknownToolLabel

	defer func() {
		if p := recover(); p != nil {
			log.Error().Str("tool", name).Interface("panic", p).Msg("tool panicked")
			res.Output, res.Failed, res.Empty = "שגיאה פנימית בהפעלת הכלי. נסה שוב.", true, false
		}
		res.Duration = time.Since(start)
		observability.ObserveTool(label, res.outcome(), res.Duration)
		if res.Failed {
			log.Warn().Str("tool", name).Str("err_type", observability.LabelErr(cause)).
				Str("output", res.Output).Dur("took", res.Duration).Msg("tool call failed")
			return
		}
		log.Debug().Str("tool", name).Bool("empty", res.Empty).Dur("took", res.Duration).Msg("tool call")
	}()

	tool := r.Get(name)
	if tool == nil {
		cause = unknownTool{name: name}
		res.Output, _ = describe(cause)
		res.Failed = true
		return res
	}
	label = tool.Name
	if args == nil {
		args = map[string]any{}
	}
	if err := validateArgs(tool, args); err != nil {
		cause = err
		res.Output, res.Empty = describe(err)
		res.Failed = !res.Empty
		return res
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	out, err := tool.Execute(ctx, args)
	if err != nil {
		cause = err
		res.Output, res.Empty = describe(err)
		res.Failed = !res.Empty
		return res
	}
	res.Output = out
	return res
}

// InvokeBatch runs independent calls with at most workers in flight.
// Results keep the order of calls.
func (r *Registry) InvokeBatch(ctx context.Context, calls []Call, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	out := make([]Result, len(calls))
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for i, c := range calls {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			for j := i; j < len(calls); j++ {
				out[j] = Result{Tool: calls[j].Tool, Output: "שגיאה: הבקשה בוטלה", Failed: true}
			}
			break
		}
		wg.Add(1)
		go func(i int, c Call) {
			defer wg.Done()
			defer sem.Release(1)
			out[i] = r.Invoke(ctx, c.Tool, c.Args)
		}(i, c)
	}

	wg.Wait()
	return out
}

// validateArgs checks that all required arguments are present.
func validateArgs(tool *Tool, args map[string]any) error {
	for _, required := range tool.Schema.Required {
		if v, ok := args[required]; !ok || v == nil {
			return missingArg(required)
		}
	}
	return nil
}

// renderJSON produces the indented, unescaped JSON the agent reads.
func renderJSON(v any) (string, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("render result: %w", err)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
