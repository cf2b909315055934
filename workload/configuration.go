// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload

import (
	"fmt"

	"github.com/bitmark-inc/avlmap/fault"
)

// limits
const (
	maximumWorkers = 256
)

// Configuration - shape of a workload, mapped from the "workload"
// table of a configuration file
type Configuration struct {
	Seed         uint64 `gluamapper:"seed" json:"seed"`
	Operations   int    `gluamapper:"operations" json:"operations"`
	KeySpace     int    `gluamapper:"key_space" json:"key_space"`
	InsertWeight int    `gluamapper:"insert_weight" json:"insert_weight"`
	HintWeight   int    `gluamapper:"hint_weight" json:"hint_weight"`
	AssignWeight int    `gluamapper:"assign_weight" json:"assign_weight"`
	EraseWeight  int    `gluamapper:"erase_weight" json:"erase_weight"`
	Workers      int    `gluamapper:"workers" json:"workers"`
	CheckEvery   int    `gluamapper:"check_every" json:"check_every"`
	Pool         bool   `gluamapper:"pool" json:"pool"`
}

// Default - a small mixed workload
func Default() Configuration {
	return Configuration{
		Seed:         1,
		Operations:   100000,
		KeySpace:     10000,
		InsertWeight: 4,
		HintWeight:   2,
		AssignWeight: 2,
		EraseWeight:  3,
		Workers:      4,
		CheckEvery:   5000,
		Pool:         true,
	}
}

// Validate - reject configurations that cannot run
func (c Configuration) Validate() error {
	if c.Operations < 0 {
		return fmt.Errorf("%w: operations: %d", fault.ErrInvalidConfiguration, c.Operations)
	}
	if c.KeySpace <= 0 {
		return fmt.Errorf("%w: key_space: %d", fault.ErrInvalidConfiguration, c.KeySpace)
	}
	if c.InsertWeight < 0 || c.HintWeight < 0 || c.AssignWeight < 0 || c.EraseWeight < 0 {
		return fmt.Errorf("%w: negative weight", fault.ErrInvalidConfiguration)
	}
	if 0 == c.totalWeight() {
		return fault.ErrWorkloadWeightsAreZero
	}
	if c.Workers <= 0 || c.Workers > maximumWorkers {
		return fmt.Errorf("%w: %d", fault.ErrWorkloadWorkersRange, c.Workers)
	}
	if c.CheckEvery < 0 {
		return fmt.Errorf("%w: check_every: %d", fault.ErrInvalidConfiguration, c.CheckEvery)
	}
	return nil
}

func (c Configuration) totalWeight() int {
	return c.InsertWeight + c.HintWeight + c.AssignWeight + c.EraseWeight
}
