// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package locale

const (
	// https://codeberg.org/FreeBSD/freebsd-src/src/branch/main/include/langinfo.h
	CODESET = 0

	// https://codeberg.org/FreeBSD/freebsd-src/src/branch/main/include/locale.h
	LC_ALL      Category = 0
	LC_COLLATE  Category = 1
	LC_CTYPE    Category = 2
	LC_MONETARY Category = 3
	LC_NUMERIC  Category = 4
	LC_TIME     Category = 5
	LC_MESSAGES Category = 6
)
