//go:build cgo

// Command libdml is the DaggerML core as a C shared library, for hosts that
// load native extensions (ctypes, cffi, dlopen):
//
//	go build -buildmode=c-shared -o libdml.so ./cmd/libdml
//
// The generated libdml.h declares:
//
//	char* dml_version(void);
//	int dml_version_check(void);
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"

	"github.com/flarebyte/daggerml"
)

var (
	versionOnce sync.Once
	versionC    *C.char
)

// cVersion returns a NUL-terminated copy of the version that lives for the
// whole process. It is allocated once and never freed.
func cVersion() *C.char {
	versionOnce.Do(func() {
		versionC = C.CString(daggerml.Version)
	})
	return versionC
}

//export dml_version
func dml_version() *C.char {
	return cVersion()
}

// dml_version_check returns 0 when the exported string matches the core
// constant and 1 otherwise.
//
//export dml_version_check
func dml_version_check() C.int {
	if goVersion() != daggerml.Version {
		return 1
	}
	return 0
}

func goVersion() string {
	v := dml_version()
	if v == nil {
		return ""
	}
	return C.GoString(v)
}

func main() {}
