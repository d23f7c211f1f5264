// Copyright 2026 haguenau. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"log/slog"

	"github.com/ericwq/terminfo"
	_ "github.com/ericwq/terminfo/base"
	"github.com/ericwq/terminfo/dynamic"
	"github.com/haguenau/wyrd/i18n"
	"github.com/haguenau/wyrd/locale"
	"github.com/haguenau/wyrd/util"
	"github.com/rivo/uniseg"
	"golang.org/x/exp/maps"
	"golang.org/x/term"
)

const (
	_PACKAGE_STRING = "wyrd"
	_COMMAND_NAME   = "wyrd-locale"

	_VERBOSE_LOG_TMPFILE = 2 // log to tmp file
)

var (
	BuildVersion = "0.1.0" // ready for ldflags

	buildConfigTest = false
)

var usage = `Usage:
  ` + _COMMAND_NAME + ` [-v] [-h] [--colors]
  ` + _COMMAND_NAME + ` [-q] [-c CATEGORY]
  ` + _COMMAND_NAME + ` [-s NAME] [-c CATEGORY] [--lang L]
  ` + _COMMAND_NAME + ` [--verbose V] [-l NAME=VALUE] [--iutf8] [--lang L]
Options:
  -h, --help      print this message
  -v, --version   print version information
      --colors    print the number of colors of terminal
  -q, --query     print the current locale without changing it
  -s, --set       install the named locale (empty NAME follows the environment)
  -c, --category  locale category (such as LC_ALL or LC_TIME, default LC_ALL)
  -l, --locale    key-value pairs (such as LANG=UTF-8, you can have multiple -l options)
      --lang      message language (such as en or zh)
      --iutf8     set the IUTF8 flag on stdin
      --verbose   verbose output (such as 1)
`

func printVersion() {
	fmt.Printf("%s (%s) [build %s]\n\n", _COMMAND_NAME, _PACKAGE_STRING, BuildVersion)
	fmt.Println("Copyright (c) 2026 haguenau")
	fmt.Println("This is free software: you are free to change and redistribute it.")
	fmt.Printf("There is NO WARRANTY, to the extent permitted by law.\n\n")
	fmt.Println("locale helper for the wyrd calendar")
}

func printUsage(hint string, usage ...string) {
	if hint != "" {
		var header string
		if len(usage) != 0 {
			header = "Hints: "
		}
		fmt.Printf("%s%s\n", header, hint)
	}
	if len(usage) > 0 {
		fmt.Printf("%s", usage[0])
	}
}

func printColors() {
	value, ok := os.LookupEnv("TERM")
	if ok {
		if value != "" {
			ti, err := lookupTerminfo(value)
			if err == nil {
				fmt.Printf("%s %d\n", value, ti.Colors)
			} else {
				fmt.Printf("Dynamic load terminfo failed. %s Install infocmp (ncurses package) first.\n", err)
			}
		} else {
			fmt.Println("The TERM is empty string.")
		}
	} else {
		fmt.Println("The TERM doesn't exist.")
	}
}

// lookup the terminfo entry, load it with infocmp if the built-in
// database doesn't know the terminal.
func lookupTerminfo(name string) (ti *terminfo.Terminfo, err error) {
	ti, err = terminfo.LookupTerminfo(name)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(name)
		if err != nil {
			return nil, err
		}
		terminfo.AddTerminfo(ti)
	}
	return ti, nil
}

// https://www.antoniojgutierrez.com/posts/2021-05-14-short-and-long-options-in-go-flags-pkg/
type localeFlag map[string]string

func (lv *localeFlag) String() string {
	return fmt.Sprint(*lv)
}

func (lv *localeFlag) Set(value string) error {
	kv := strings.Split(value, "=")
	if len(kv) != 2 {
		return errors.New("malform locale parameter: " + value)
	}

	(*lv)[kv[0]] = kv[1]
	return nil
}

func (lv *localeFlag) IsBoolFlag() bool {
	return false
}

var categories = map[string]locale.Category{
	"LC_ALL":      locale.LC_ALL,
	"LC_COLLATE":  locale.LC_COLLATE,
	"LC_CTYPE":    locale.LC_CTYPE,
	"LC_MESSAGES": locale.LC_MESSAGES,
	"LC_MONETARY": locale.LC_MONETARY,
	"LC_NUMERIC":  locale.LC_NUMERIC,
	"LC_TIME":     locale.LC_TIME,
}

func parseCategory(name string) (locale.Category, error) {
	if c, ok := categories[strings.ToUpper(name)]; ok {
		return c, nil
	}

	names := maps.Keys(categories)
	slices.Sort(names)
	return 0, errors.New("unknown locale category: " + name + ", try one of " + strings.Join(names, ", "))
}

// parseFlags parses the command-line arguments provided to the program.
// Typically os.Args[0] is provided as 'progname' and os.args[1:] as 'args'.
// Returns the Config in case parsing succeeded, or an error. In any case, the
// output of the flag.Parse is returned in output.
// A special case is usage requests with -h or -help: then the error
// flag.ErrHelp is returned and output will contain the usage message.
func parseFlags(progname string, args []string) (config *Config, output string, err error) {
	// https://eli.thegreenplace.net/2020/testing-flag-parsing-in-go-programs/
	flagSet := flag.NewFlagSet(progname, flag.ContinueOnError)
	var buf bytes.Buffer
	flagSet.SetOutput(&buf)

	var conf Config
	conf.locales = make(localeFlag)

	flagSet.IntVar(&conf.verbose, "verbose", 0, "verbose output")

	flagSet.BoolVar(&conf.version, "version", false, "print version information")
	flagSet.BoolVar(&conf.version, "v", false, "print version information")

	flagSet.BoolVar(&conf.colors, "colors", false, "terminal number of colors")

	flagSet.BoolVar(&conf.query, "query", false, "print the current locale")
	flagSet.BoolVar(&conf.query, "q", false, "print the current locale")

	flagSet.StringVar(&conf.setName, "set", "", "install the named locale")
	flagSet.StringVar(&conf.setName, "s", "", "install the named locale")

	flagSet.StringVar(&conf.category, "category", "LC_ALL", "locale category")
	flagSet.StringVar(&conf.category, "c", "LC_ALL", "locale category")

	flagSet.StringVar(&conf.lang, "lang", "", "message language")

	flagSet.BoolVar(&conf.iutf8, "iutf8", false, "set IUTF8 flag on stdin")

	flagSet.Var(&conf.locales, "locale", "locale list, key=value pair")
	flagSet.Var(&conf.locales, "l", "locale list, key=value pair")

	err = flagSet.Parse(args)
	if err != nil {
		return nil, buf.String(), err
	}

	// -s with an empty name is still a set request
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "s" || f.Name == "set" {
			conf.setGiven = true
		}
	})

	return &conf, buf.String(), nil
}

type Config struct {
	version  bool       // print version information
	verbose  int        // verbose output
	colors   bool       // print terminal number of colors
	query    bool       // print the current locale, change nothing
	setName  string     // locale name for the set request
	setGiven bool       // the set flag was present
	category string     // locale category name
	lang     string     // message language
	iutf8    bool       // set the IUTF8 flag on stdin
	locales  localeFlag // locale environment overrides
}

// build the config instance and check the utf-8 locale. return a hint
// and false if the native locale can't provide utf-8.
func (conf *Config) buildConfig() (string, bool) {
	if _, err := parseCategory(conf.category); err != nil {
		return err.Error(), false
	}

	// these requests run without the utf-8 check
	if conf.version || conf.colors || conf.query || conf.setGiven {
		return "", true
	}

	// Adopt implementation locale
	locale.SetNativeLocale()
	if !locale.IsUtf8Locale() || buildConfigTest {
		nativeType := locale.GetCtype()
		nativeCharset := locale.Charset()

		// apply locale-related environment overrides
		locale.ClearLocaleVariables()
		for k, v := range conf.locales {
			os.Setenv(k, v)
		}

		// check again
		ret := locale.SetNativeLocale()
		if !locale.IsUtf8Locale() || buildConfigTest {
			overrideType := locale.GetCtype()
			overrideCharset := locale.Charset()

			fmt.Println(i18n.Tf("check.need-utf8", map[string]interface{}{"Cmd": _COMMAND_NAME}))
			fmt.Println(i18n.Tf("check.native-charset",
				map[string]interface{}{"Ctype": nativeType.String(), "Charset": nativeCharset}))
			fmt.Println(i18n.Tf("check.override-charset",
				map[string]interface{}{"Ctype": overrideType.String(), "Charset": overrideCharset}))
			if ret == "" {
				fmt.Println(i18n.Tf("check.unavailable", map[string]interface{}{"Ctype": overrideType.String()}))
				if overrideType.Name != "" {
					fmt.Println(i18n.Tf("check.localegen", map[string]interface{}{"Value": overrideType.Value}))
				}
			}

			return "UTF-8 locale fail.", false
		}
	}
	return "", true
}

func doSet(conf *Config, category locale.Category) {
	name, err := locale.Setlocale(category, conf.setName)
	if err != nil {
		if conf.setName == "" { // cognizant of the locale environment variable
			ctype := locale.GetCtype()
			fmt.Println(i18n.Tf("check.unavailable", map[string]interface{}{"Ctype": ctype.String()}))
			if ctype.Name != "" {
				fmt.Println(i18n.Tf("check.localegen", map[string]interface{}{"Value": ctype.Value}))
			}
		} else {
			fmt.Println(i18n.Tf("set.fail", map[string]interface{}{"Name": conf.setName}))
		}
		return
	}
	fmt.Println(name)
}

func setStdinIUTF8() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Println(i18n.T("report.not-a-tty"))
		return
	}

	if err := util.SetIUTF8(fd); err != nil {
		util.Log.With("error", err).Warn("set IUTF8 fail")
	}
}

func cells(sample string) int {
	n := 0
	graphemes := uniseg.NewGraphemes(sample)
	for graphemes.Next() {
		n += uniseg.StringWidth(string(graphemes.Runes()))
	}
	return n
}

func report(category locale.Category) {
	name, err := locale.Current(category)
	if err != nil {
		name = err.Error()
	}
	fmt.Println(i18n.Tf("report.locale", map[string]interface{}{"Locale": name}))
	fmt.Println(i18n.Tf("report.charset", map[string]interface{}{"Charset": locale.Charset()}))
	fmt.Println(i18n.Tf("report.ctype", map[string]interface{}{"Ctype": locale.GetCtype().String()}))

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		if flag, err := util.CheckIUTF8(fd); err == nil {
			fmt.Println(i18n.Tf("report.iutf8", map[string]interface{}{"Flag": flag}))
		}
		if cols, rows, err := term.GetSize(fd); err == nil {
			fmt.Println(i18n.Tf("report.size", map[string]interface{}{"Cols": cols, "Rows": rows}))
		}
	} else {
		fmt.Println(i18n.T("report.not-a-tty"))
	}

	sample := "Wyrd 世界"
	fmt.Println(i18n.Tf("report.width", map[string]interface{}{"Sample": sample, "Cells": cells(sample)}))
}

// parse the flags first, print help or version based on flags, then
// check the native locale and report what the C library sees.
func main() {
	conf, _, err := parseFlags(os.Args[0], os.Args[1:])
	if err == flag.ErrHelp {
		printUsage("", usage)
		return
	} else if err != nil {
		printUsage(err.Error(), usage)
		return
	}

	i18n.Init(conf.lang)

	if hint, ok := conf.buildConfig(); !ok {
		printUsage(hint, usage)
		return
	}

	if conf.version {
		printVersion()
		return
	}

	if conf.colors {
		printColors()
		return
	}

	// setup log
	if conf.verbose > 0 {
		util.Log.SetLevel(slog.LevelDebug)
	} else {
		util.Log.SetLevel(slog.LevelInfo)
	}
	util.Log.SetOutput(os.Stderr)
	if conf.verbose == _VERBOSE_LOG_TMPFILE {
		logf, err := util.Log.CreateLogFile(_COMMAND_NAME)
		if err != nil {
			fmt.Printf("can't create log file. %s\n", err)
			return
		}
		defer logf.Close()
		util.Log.SetOutput(logf)
	}

	category, _ := parseCategory(conf.category)

	if conf.query {
		name, err := locale.Current(category)
		if err != nil {
			printUsage(err.Error())
			return
		}
		fmt.Println(name)
		return
	}

	if conf.setGiven {
		doSet(conf, category)
		return
	}

	if conf.iutf8 {
		setStdinIUTF8()
	}

	report(category)
}
