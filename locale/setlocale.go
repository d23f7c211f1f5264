// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package locale wraps the setlocale(3) and nl_langinfo(3) facilities
// of the C library. The locale is process-wide state: a change made
// here is visible to every goroutine and to any C code in the same
// process. Callers that modify the locale concurrently must serialize
// those calls themselves.
package locale

// #include <locale.h>
// #include <langinfo.h>
// #include <stdlib.h>
import "C"

import (
	"errors"
	"os/exec"
	"strings"
	"unsafe"
)

// Category selects which part of the locale an operation addresses.
// The values mirror the LC_* constants of the platform C library.
type Category int

// ErrUnavailable reports that the C library has no definition for the
// requested locale and kept the previous locale in place.
var ErrUnavailable = errors.New("locale: requested locale not available")

/*
man setlocale

If locale is an empty string, "", each part of the locale that should
be modified is set according to the environment variables.

If its value is not a valid locale specification, the locale is
unchanged, and setlocale() returns NULL.

for alpine: musl setlocale doesn't return NULL for an unknown name, so
ErrUnavailable cannot happen there. check the charset when the
distinction matters.
*/

// Setlocale installs the named locale for category and returns the
// string the C library uses for the new locale. The empty name selects
// the locale named by the environment. An unknown name leaves the
// locale unchanged and returns ErrUnavailable. A category outside the
// platform LC_* range also returns ErrUnavailable on glibc; other C
// libraries may accept it.
func Setlocale(category Category, name string) (string, error) {
	param := C.CString(name)
	defer C.free(unsafe.Pointer(param))

	ret := C.setlocale(C.int(category), param)
	if ret == nil {
		return "", ErrUnavailable
	}
	return C.GoString(ret), nil
}

// Current reports the locale installed for category without changing
// anything.
func Current(category Category) (string, error) {
	ret := C.setlocale(C.int(category), nil)
	if ret == nil {
		return "", ErrUnavailable
	}
	return C.GoString(ret), nil
}

// man nl_langinfo
//
// CODESET (LC_CTYPE)
//
//	Return a string with the name of the character encoding used in
//	the selected locale, such as "UTF-8", "ISO-8859-1", or
//	"ANSI_X3.4-1968" (better known as US-ASCII).  This is the same
//	string that you get with "locale charmap".
func nl_langinfo(item C.int) string {
	ret := C.nl_langinfo(item)
	return C.GoString(ret)
}

func nl_langinfo2(cmd string, args []string) (string, error) {
	out, err := exec.Command(cmd, args...).Output()
	if err != nil {
		return "", err
	}

	charmap := strings.TrimSuffix(string(out), "\n")
	return charmap, nil
}
