// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// channel for the last message before a program aborts
var log *logger.L

// Initialise - open the PANIC log channel
//
// must be called after logger.Initialise
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush the PANIC channel
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Criticalf - log a formatted message prefixed by the caller's location
func Criticalf(format string, arguments ...interface{}) {
	criticalf(2, format, arguments...)
}

// PanicIfError - log and abort if err is not nil
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	criticalf(2, "%s", s)
	time.Sleep(100 * time.Millisecond) // let the log writer drain
	panic(s)
}

func criticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		format = "(%q:%d) " + format
		arguments = append([]interface{}{file, line}, arguments...)
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
