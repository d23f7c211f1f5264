// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestT(t *testing.T) {
	Init("en")

	tc := []struct {
		label  string
		id     string
		expect string
	}{
		{"known id", "report.not-a-tty", "stdin is not a terminal, IUTF8 flag unknown"},
		{"unknown id", "no.such-message", "no.such-message"},
	}

	for _, v := range tc {
		if got := T(v.id); got != v.expect {
			t.Errorf("#test %q expect %q, got %q\n", v.label, v.expect, got)
		}
	}
}

func TestTf(t *testing.T) {
	Init("en")

	got := Tf("check.localegen", map[string]interface{}{"Value": "en_US.UTF-8"})
	expect := "Running 'locale-gen en_US.UTF-8' may be necessary."
	if got != expect {
		t.Errorf("#test expect %q, got %q\n", expect, got)
	}

	// template data for an unknown id falls back to the id
	if got = Tf("no.such-message", nil); got != "no.such-message" {
		t.Errorf("#test expect %q, got %q\n", "no.such-message", got)
	}
}

func TestInitChinese(t *testing.T) {
	Init("zh")

	got := T("report.not-a-tty")
	expect := "标准输入不是终端，IUTF8 标志未知"
	if got != expect {
		t.Errorf("#test expect %q, got %q\n", expect, got)
	}

	// leave english selected for the other tests
	Init("en")
}
