// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package locale

// glibc and musl use the same values.
const (
	CODESET = 14

	LC_CTYPE    Category = 0
	LC_NUMERIC  Category = 1
	LC_TIME     Category = 2
	LC_COLLATE  Category = 3
	LC_MONETARY Category = 4
	LC_MESSAGES Category = 5
	LC_ALL      Category = 6
)
