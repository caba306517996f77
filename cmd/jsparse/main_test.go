package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GuyLewin/meriyah"
	"github.com/GuyLewin/meriyah/js"
	"github.com/tdewolff/test"
)

func TestRender(t *testing.T) {
	var tests = []struct {
		js       string
		cfg      config
		expected string
	}{
		{"x = y ?? 5 + 3", config{}, "Stmt(x=(y??(5+3)))\n"},
		{"a = ;\nb", config{recover: true}, "error: Unexpected token: ';'\nStmt(a=Error) Stmt(b)\n"},
		{"x=1", config{tokens: true}, "identifier 0-1 \"x\"\n= 1-2 \"=\"\nnumber 2-3 \"1\"\n"},
		{"`a`", config{Options: js.Options{Module: true}, tokens: true}, "template 0-3 \"`a`\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			out, err := render(tt.cfg, tt.js)
			test.Error(t, err)
			test.String(t, out, tt.expected)
		})
	}
}

func TestRenderError(t *testing.T) {
	_, err := render(config{}, "a = ;")
	test.That(t, err != nil, "expected syntax error")
}

func TestParseFiles(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.js")
	bad := filepath.Join(dir, "bad.js")
	test.Error(t, os.WriteFile(good, []byte("a + b"), 0644))
	test.Error(t, os.WriteFile(bad, []byte("a b"), 0644))

	buf := &bytes.Buffer{}
	test.Error(t, parseFiles(context.Background(), buf, config{}, []string{good}))
	test.String(t, buf.String(), "Stmt(a+b)\n")

	buf.Reset()
	err := parseFiles(context.Background(), buf, config{}, []string{good, bad})
	test.That(t, err != nil, "expected syntax error")
	test.That(t, strings.HasPrefix(err.Error(), bad+": "), err.Error())
	var perr *meriyah.Error
	test.That(t, errors.As(err, &perr), "expected *meriyah.Error")
	test.T(t, perr.Offset, 2)
	test.String(t, buf.String(), "== "+good+"\nStmt(a+b)\n== "+bad+"\n")

	err = parseFiles(context.Background(), buf, config{}, []string{filepath.Join(dir, "missing.js")})
	test.That(t, errors.Is(err, os.ErrNotExist), "expected missing file")
}

func TestIncomplete(t *testing.T) {
	var tests = []struct {
		js         string
		incomplete bool
	}{
		{"a = 1", false},
		{"a = ", true},
		{"function f() {", true},
		{"a = ;", false},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			test.T(t, incomplete(config{}, tt.js), tt.incomplete)
		})
	}
}
