// Package enginetest provides fakes for testing introspection code against
// canned catalog rows.
package enginetest

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Querier answers catalog queries from canned rows. A query is matched by the
// first registered fragment it contains.
type Querier struct {
	mu     sync.Mutex
	rules  []rule
	Calls  []Call
	Strict bool
}

// Call records one QueryRows invocation.
type Call struct {
	Query string
	Args  []any
}

type rule struct {
	fragment string
	rows     []map[string]any
	err      error
}

// NewQuerier returns a strict querier: unmatched queries fail the call.
func NewQuerier() *Querier {
	return &Querier{Strict: true}
}

// On registers rows for queries containing fragment.
func (q *Querier) On(fragment string, rows ...map[string]any) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	if rows == nil {
		rows = []map[string]any{}
	}
	q.rules = append(q.rules, rule{fragment: fragment, rows: rows})
	return q
}

// Fail makes queries containing fragment return err.
func (q *Querier) Fail(fragment string, err error) *Querier {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rules = append(q.rules, rule{fragment: fragment, err: err})
	return q
}

// QueryRows implements engine.Querier.
func (q *Querier) QueryRows(_ context.Context, query string, args ...any) ([]map[string]any, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.Calls = append(q.Calls, Call{Query: query, Args: args})
	for _, r := range q.rules {
		if strings.Contains(query, r.fragment) {
			return r.rows, r.err
		}
	}
	if q.Strict {
		return nil, fmt.Errorf("enginetest: no rows registered for query %q", strings.TrimSpace(query))
	}
	return []map[string]any{}, nil
}

// Called reports whether any recorded query contains fragment.
func (q *Querier) Called(fragment string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, c := range q.Calls {
		if strings.Contains(c.Query, fragment) {
			return true
		}
	}
	return false
}
