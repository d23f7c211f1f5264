// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package locale

import (
	"os"
	"strings"
)

// Variable is one locale environment variable and its value.
type Variable struct {
	Name  string
	Value string
}

func (v Variable) String() string {
	if v.Name == "" {
		return "[no charset variables]"
	}
	return v.Name + "=" + v.Value
}

// GetCtype reports the environment variable that selects the character
// type locale, honoring the POSIX precedence LC_ALL, LC_CTYPE, LANG.
func GetCtype() Variable {
	if all := os.Getenv("LC_ALL"); all != "" {
		return Variable{"LC_ALL", all}
	} else if ctype := os.Getenv("LC_CTYPE"); ctype != "" {
		return Variable{"LC_CTYPE", ctype}
	} else if lang := os.Getenv("LANG"); lang != "" {
		return Variable{"LANG", lang}
	}

	return Variable{"", ""}
}

// Charset reports the character encoding of the current locale, the
// same string that "locale charmap" prints.
func Charset() (ret string) {
	ret = nl_langinfo(CODESET)
	if ret == "ANSI_X3.4-1968" {
		ret = "US-ASCII"
	}
	return
}

// return true if current locale charset is utf-8, otherwise false.
func IsUtf8Locale() bool {
	cs := Charset()

	if strings.Compare(strings.ToLower(cs), "utf-8") == 0 {
		return true
	}
	return false
}

// SetNativeLocale installs the locale named by the environment for all
// categories and returns the C library locale string. The empty string
// means the requested locale isn't available here.
func SetNativeLocale() (ret string) {
	ret, _ = Setlocale(LC_ALL, "")
	return
}

// ClearLocaleVariables removes every locale variable from the
// environment.
func ClearLocaleVariables() {
	list := []string{
		"LANG", "LANGUAGE", "LC_CTYPE", "LC_NUMERIC", "LC_TIME", "LC_COLLATE",
		"LC_MONETARY", "LC_MESSAGES", "LC_PAPER", "LC_NAME", "LC_ADDRESS",
		"LC_TELEPHONE", "LC_MEASUREMENT", "LC_IDENTIFICATION", "LC_ALL",
	}
	for _, v := range list {
		os.Unsetenv(v)
	}
}
