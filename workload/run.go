// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/bitmark-inc/logger"
	"golang.org/x/sync/errgroup"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/serialize"
)

// how often a worker looks for cancellation
const cancelPollInterval = 1024

// Result - totals over all workers
type Result struct {
	Operations int `json:"operations"`
	Inserted   int `json:"inserted"` // nodes created by any operation
	Assigned   int `json:"assigned"`
	Erased     int `json:"erased"`
	Checks     int `json:"checks"`
	Items      int `json:"items"`      // left in the trees before they were cleared
	MaxHeight  int `json:"max_height"` // tallest final tree
	PoolTotal  int `json:"pool_total"`
	PoolFree   int `json:"pool_free"`
}

func (r *Result) add(other Result) {
	r.Operations += other.Operations
	r.Inserted += other.Inserted
	r.Assigned += other.Assigned
	r.Erased += other.Erased
	r.Checks += other.Checks
	r.Items += other.Items
	r.MaxHeight = max(r.MaxHeight, other.MaxHeight)
}

// Run - start the configured workers and wait for all of them
//
// the first failure cancels the remaining workers and is returned
// along with the totals reached so far
func Run(ctx context.Context, cfg Configuration, log *logger.L) (Result, error) {
	if err := cfg.Validate(); nil != err {
		return Result{}, err
	}

	var pool *avl.PoolAllocator[int, int64]
	if cfg.Pool {
		pool = avl.NewPoolAllocator[int, int64]()
	}

	log.Infof("start: workers: %d  operations: %d  key space: %d  seed: %d  pool: %t",
		cfg.Workers, cfg.Operations, cfg.KeySpace, cfg.Seed, cfg.Pool)

	results := make([]Result, cfg.Workers)
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < cfg.Workers; i += 1 {
		g.Go(func() error {
			w := newWorker(i, cfg, pool, log)
			err := w.run(ctx)
			results[i] = w.result
			return err
		})
	}
	err := g.Wait()

	total := Result{}
	for _, r := range results {
		total.add(r)
	}
	if nil != pool {
		total.PoolTotal, total.PoolFree = pool.Stats()
		if nil == err && total.PoolTotal != total.PoolFree {
			err = fmt.Errorf("%w: pool: total: %d  free: %d", fault.ErrWorkloadMismatch, total.PoolTotal, total.PoolFree)
		}
	}

	if nil != err {
		log.Errorf("failed: %s", err)
		return total, err
	}
	log.Infof("finished: operations: %d  checks: %d  max height: %d", total.Operations, total.Checks, total.MaxHeight)
	return total, nil
}

type worker struct {
	id     int
	cfg    Configuration
	rng    *rand.Rand
	tree   *avl.Tree[int, int64]
	model  map[int]int64
	log    *logger.L
	result Result
}

func newWorker(id int, cfg Configuration, pool *avl.PoolAllocator[int, int64], log *logger.L) *worker {
	options := []avl.Option[int, int64]{}
	if nil != pool {
		options = append(options, avl.WithAllocator[int, int64](pool, avl.Retain))
	}
	return &worker{
		id:    id,
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(cfg.Seed, uint64(id))),
		tree:  avl.New(options...),
		model: make(map[int]int64),
		log:   log,
	}
}

func (w *worker) run(ctx context.Context) error {
	defer w.tree.Clear()

	for n := 1; n <= w.cfg.Operations; n += 1 {
		if 0 == n%cancelPollInterval {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		if err := w.step(); nil != err {
			return err
		}
		w.result.Operations += 1
		if w.cfg.CheckEvery > 0 && 0 == n%w.cfg.CheckEvery {
			if err := w.verify(); nil != err {
				return err
			}
		}
	}

	if err := w.verify(); nil != err {
		return err
	}
	if err := w.roundTrip(); nil != err {
		return err
	}
	if err := w.cloneIsolation(); nil != err {
		return err
	}
	w.result.Items = w.tree.Len()
	w.result.MaxHeight = w.tree.Height()
	return nil
}

func (w *worker) mismatch(operation string, key int) error {
	return fmt.Errorf("%w: worker: %d  %s  key: %d", fault.ErrWorkloadMismatch, w.id, operation, key)
}

// one random operation applied to both tree and model
func (w *worker) step() error {
	key := w.rng.IntN(w.cfg.KeySpace)
	value := w.rng.Int64()
	expected, present := w.model[key]

	r := w.rng.IntN(w.cfg.totalWeight())
	switch {
	case r < w.cfg.InsertWeight:
		it, added := w.tree.Insert(key, value)
		if added == present || it.Key() != key {
			return w.mismatch("insert", key)
		}
		if present && it.Value() != expected {
			return w.mismatch("insert overwrote", key)
		}

	case r < w.cfg.InsertWeight+w.cfg.HintWeight:
		hint := w.tree.LowerBound(key)
		if n := w.tree.Len(); n > 0 && 0 == w.rng.IntN(2) {
			hint = w.tree.Select(w.rng.IntN(n))
		}
		it := w.tree.InsertHint(hint, key, value)
		if it.Key() != key {
			return w.mismatch("hint", key)
		}
		if present && it.Value() != expected {
			return w.mismatch("hint overwrote", key)
		}

	case r < w.cfg.InsertWeight+w.cfg.HintWeight+w.cfg.AssignWeight:
		if _, added := w.tree.InsertOrAssign(key, value); added == present {
			return w.mismatch("assign", key)
		}
		if !present {
			w.result.Inserted += 1
		}
		w.model[key] = value
		w.result.Assigned += 1
		return nil

	default:
		it := w.tree.Find(key)
		if it.Valid() != present {
			return w.mismatch("find", key)
		}
		if !present {
			return nil
		}
		next, err := w.tree.Erase(it)
		if nil != err {
			return fmt.Errorf("worker: %d  erase key: %d  error: %w", w.id, key, err)
		}
		if !next.Equal(w.tree.UpperBound(key)) {
			return w.mismatch("erase successor", key)
		}
		delete(w.model, key)
		w.result.Erased += 1
		return nil
	}

	// both plain insert forms
	if !present {
		w.model[key] = value
		w.result.Inserted += 1
	}
	return nil
}

// full structural check and comparison with the model
func (w *worker) verify() error {
	if err := w.tree.Check(); nil != err {
		return fmt.Errorf("worker: %d  check: %w", w.id, err)
	}
	if w.tree.Len() != len(w.model) {
		return fmt.Errorf("%w: worker: %d  count: %d  expected: %d", fault.ErrWorkloadMismatch, w.id, w.tree.Len(), len(w.model))
	}
	for key, value := range w.tree.All() {
		if expected, ok := w.model[key]; !ok || expected != value {
			return w.mismatch("contents", key)
		}
	}
	w.result.Checks += 1
	w.log.Debugf("worker: %d  operations: %d  items: %d  height: %d", w.id, w.result.Operations, w.tree.Len(), w.tree.Height())
	return nil
}

// encode then decode must give an equal tree
func (w *worker) roundTrip() error {
	data, err := serialize.Marshal(w.tree, serialize.Int, serialize.Int64)
	if nil != err {
		return err
	}
	decoded := avl.New[int, int64]()
	if err := serialize.Unmarshal(data, decoded, serialize.Int, serialize.Int64); nil != err {
		return fmt.Errorf("worker: %d  decode: %w", w.id, err)
	}
	if err := decoded.Check(); nil != err {
		return fmt.Errorf("worker: %d  decoded: %w", w.id, err)
	}
	if !avl.Equal(w.tree, decoded) {
		return fmt.Errorf("%w: worker: %d  round trip", fault.ErrWorkloadMismatch, w.id)
	}
	w.log.Debugf("worker: %d  round trip: %d bytes", w.id, len(data))
	return nil
}

// changes to a clone must not reach the original
func (w *worker) cloneIsolation() error {
	c := w.tree.Clone()
	defer c.Clear()

	c.InsertOrAssign(-1, 0)
	if first := w.tree.Begin(); first.Valid() {
		c.Delete(first.Key())
		if !w.tree.Contains(first.Key()) {
			return w.mismatch("clone delete", first.Key())
		}
	}
	if w.tree.Contains(-1) {
		return w.mismatch("clone insert", -1)
	}
	return nil
}
