// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bclog wraps glog for the VM's opcode tracing (SPEC_FULL.md
// §10), so the rest of the module never imports glog directly and the
// verbosity-gated Infof calls in vm.exec cost nothing when -v isn't
// raised. The vm package is its only user.
package bclog

import "github.com/golang/glog"

// Level names the glog verbosity levels this module's instrumentation
// uses, documented here since they are scattered across packages.
const (
	LevelTrace   glog.Level = 2 // per-instruction opcode trace
	LevelVerbose glog.Level = 3 // per-statement print/assignment trace
)

// V reports whether glog verbosity level is at least level, matching the
// call sites' use of bclog.V(2) as a cheap guard before building a trace
// string.
func V(level glog.Level) bool {
	return bool(glog.V(level))
}

// Infof logs at the Info severity, exactly mirroring glog.Infof.
func Infof(format string, args ...interface{}) {
	glog.Infof(format, args...)
}

// Warningf logs at the Warning severity.
func Warningf(format string, args ...interface{}) {
	glog.Warningf(format, args...)
}

// Errorf logs at the Error severity.
func Errorf(format string, args ...interface{}) {
	glog.Errorf(format, args...)
}
